// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Account holds the identity fields shared by customers and workshops.
type Account struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the account.
	Username  string    // Unique login identifier, supplied by the gateway on every request.
	Name      string    // Display name; may be blank.
	Email     string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time // Last-modified timestamp, bumped by every mutation.
}

// DisplayName returns the name when set, otherwise the username.
func (a *Account) DisplayName() string {
	if strings.TrimSpace(a.Name) != "" {
		return a.Name
	}

	return a.Username
}

// Touch bumps the last-modified timestamp.
func (a *Account) Touch(now time.Time) {
	a.UpdatedAt = now
}

// Customer is an account that searches for workshops. It owns an ordered address list.
type Customer struct {
	Account
	Addresses []*Address
}

// Workshop is a service provider account with a single service location.
type Workshop struct {
	Account
	Address     *Address       // Zero-or-one service location; always the default.
	Status      WorkshopStatus // OPEN or CLOSED.
	VehicleType *VehicleType   // Nil when the workshop has not declared a vehicle type.
	Services    ServiceTypes
	IsPremium   bool
}

// Coordinate returns the workshop position when its address is resolved.
func (w *Workshop) Coordinate() (Coordinate, bool) {
	if !w.Address.HasCoordinate() {
		return Coordinate{}, false
	}

	return *w.Address.Coordinate, true
}

// SupportsVehicle reports whether the workshop accepts the requested vehicle type,
// counting BOTH as compatible.
func (w *Workshop) SupportsVehicle(requested VehicleType) bool {
	return w.VehicleType != nil && w.VehicleType.Accepts(requested)
}

// HasVehicleType reports whether the stored vehicle type equals v exactly.
func (w *Workshop) HasVehicleType(v VehicleType) bool {
	return w.VehicleType != nil && *w.VehicleType == v
}
