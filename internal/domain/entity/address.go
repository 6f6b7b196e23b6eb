// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Address is a saved location owned exclusively by one account.
type Address struct {
	ID               uuid.UUID   // The Global Unique Identifier (GUID) for the address.
	OwnerID          uuid.UUID   // The account that owns this address.
	OwnerType        OwnerType   // Whether the owner is a customer or a workshop.
	FormattedAddress string      // Human-readable address text, as returned by geocoding.
	Coordinate       *Coordinate // Nil until the address has been resolved to a position.
	IsDefault        bool        // Reference address for discovery; at most one per owner.
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// HasCoordinate reports whether the address has been resolved to a position.
func (a *Address) HasCoordinate() bool {
	return a != nil && a.Coordinate != nil
}

// SameText reports whether two formatted addresses are equal ignoring case.
func SameText(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// DefaultAddress picks the reference address of a collection.
// The single flagged entry wins; with zero or several flagged entries the
// first address in stored order is returned. Nil for an empty collection.
func DefaultAddress(addresses []*Address) *Address {
	if len(addresses) == 0 {
		return nil
	}

	var flagged *Address
	count := 0
	for _, addr := range addresses {
		if addr.IsDefault {
			flagged = addr
			count++
		}
	}

	if count == 1 {
		return flagged
	}

	return addresses[0]
}

// CountDefaults returns how many addresses carry the default flag.
func CountDefaults(addresses []*Address) int {
	count := 0
	for _, addr := range addresses {
		if addr.IsDefault {
			count++
		}
	}

	return count
}
