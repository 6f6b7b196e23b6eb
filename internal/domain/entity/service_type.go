package entity

import (
	"slices"
	"strings"
)

// ServiceType is a category of work a workshop offers.
type ServiceType string

const (
	ServiceTypeOilChange          ServiceType = "OIL_CHANGE"
	ServiceTypeTyreReplacement    ServiceType = "TYRE_REPLACEMENT"
	ServiceTypeACRepair           ServiceType = "AC_REPAIR"
	ServiceTypeGeneralService     ServiceType = "GENERAL_SERVICE"
	ServiceTypeBrakeRepair        ServiceType = "BRAKE_REPAIR"
	ServiceTypeBatteryReplacement ServiceType = "BATTERY_REPLACEMENT"
)

// String returns the string representation of the ServiceType.
func (s ServiceType) String() string {
	return string(s)
}

// IsValid checks if the ServiceType is a known value.
func (s ServiceType) IsValid() bool {
	switch s {
	case ServiceTypeOilChange, ServiceTypeTyreReplacement, ServiceTypeACRepair,
		ServiceTypeGeneralService, ServiceTypeBrakeRepair, ServiceTypeBatteryReplacement:
		return true
	default:
		return false
	}
}

// ParseServiceType parses an enum name case-insensitively.
func ParseServiceType(s string) (ServiceType, bool) {
	st := ServiceType(strings.ToUpper(strings.TrimSpace(s)))

	return st, st.IsValid()
}

// ServiceTypes is the set of services a workshop offers, kept in insertion order.
type ServiceTypes []ServiceType

// Contains checks if the set contains a service type.
func (ss ServiceTypes) Contains(s ServiceType) bool {
	return slices.Contains(ss, s)
}

// Without returns a copy of the set with s removed.
func (ss ServiceTypes) Without(s ServiceType) ServiceTypes {
	result := make(ServiceTypes, 0, len(ss))
	for _, existing := range ss {
		if existing != s {
			result = append(result, existing)
		}
	}

	return result
}

// ToStrings converts ServiceTypes to plain strings for storage.
func (ss ServiceTypes) ToStrings() []string {
	result := make([]string, len(ss))
	for i, s := range ss {
		result[i] = s.String()
	}

	return result
}

// ServiceTypesFromStrings converts stored strings, dropping unknown values.
func ServiceTypesFromStrings(values []string) ServiceTypes {
	result := make(ServiceTypes, 0, len(values))
	for _, v := range values {
		if st, ok := ParseServiceType(v); ok && !result.Contains(st) {
			result = append(result, st)
		}
	}

	return result
}
