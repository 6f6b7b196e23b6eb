package entity

import "strings"

// VehicleType is the category of vehicle a workshop services.
type VehicleType string

const (
	VehicleTypeTwoWheeler  VehicleType = "TWO_WHEELER"
	VehicleTypeFourWheeler VehicleType = "FOUR_WHEELER"
	VehicleTypeBoth        VehicleType = "BOTH"
)

// String returns the string representation of the VehicleType.
func (v VehicleType) String() string {
	return string(v)
}

// IsValid checks if the VehicleType is a known value.
func (v VehicleType) IsValid() bool {
	switch v {
	case VehicleTypeTwoWheeler, VehicleTypeFourWheeler, VehicleTypeBoth:
		return true
	default:
		return false
	}
}

// Accepts reports whether a workshop supporting v can serve a vehicle of type requested.
func (v VehicleType) Accepts(requested VehicleType) bool {
	return v == requested || v == VehicleTypeBoth
}

// ParseVehicleType parses an enum name case-insensitively.
func ParseVehicleType(s string) (VehicleType, bool) {
	v := VehicleType(strings.ToUpper(strings.TrimSpace(s)))

	return v, v.IsValid()
}

// SearchVehicleTypes returns the rule vehicle types that cover a request for v.
func SearchVehicleTypes(v VehicleType) []VehicleType {
	if v == VehicleTypeBoth {
		return []VehicleType{VehicleTypeBoth}
	}

	return []VehicleType{VehicleTypeBoth, v}
}
