// Package entity contains the core business objects of the project.
package entity

import "strings"

// Role represents the kind of account acting on the system.
type Role string

const (
	// RoleCustomer searches for workshops and requests quotes.
	RoleCustomer Role = "customer"
	// RoleWorkshop manages its own location and capabilities.
	RoleWorkshop Role = "workshop"
	// RoleAdmin maintains pricing reference data.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleWorkshop, RoleAdmin:
		return true
	default:
		return false
	}
}

// ParseRole converts a header or stored value into a Role.
func ParseRole(s string) (Role, bool) {
	role := Role(strings.ToLower(strings.TrimSpace(s)))

	return role, role.IsValid()
}

// OwnerType maps an account role to the address owner type it stores.
func (r Role) OwnerType() OwnerType {
	if r == RoleWorkshop {
		return OwnerTypeWorkshop
	}

	return OwnerTypeCustomer
}
