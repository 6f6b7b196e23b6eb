// Package entity contains the core business objects of the project.
package entity

// OwnerType represents the kind of account that owns an address.
type OwnerType string

const (
	// OwnerTypeCustomer indicates the address belongs to a customer account.
	OwnerTypeCustomer OwnerType = "customer"
	// OwnerTypeWorkshop indicates the address is the service location of a workshop.
	OwnerTypeWorkshop OwnerType = "workshop"
)

// String returns the string representation of the OwnerType.
func (o OwnerType) String() string {
	return string(o)
}

// IsValid checks if the OwnerType is a valid value.
func (o OwnerType) IsValid() bool {
	switch o {
	case OwnerTypeCustomer, OwnerTypeWorkshop:
		return true
	default:
		return false
	}
}
