package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DiscoveryResult is one workshop that matched a search, priced for the request.
type DiscoveryResult struct {
	WorkshopID       uuid.UUID       `json:"workshop_id"`
	DisplayName      string          `json:"display_name"`
	DistanceKm       float64         `json:"distance_km"`
	VehicleType      VehicleType     `json:"vehicle_type"` // The workshop's declared vehicle type.
	ServiceType      ServiceType     `json:"service_type"`
	FormattedAddress string          `json:"formatted_address"`
	Coordinate       Coordinate      `json:"coordinate"`
	Price            decimal.Decimal `json:"price"`
	PremiumApplied   bool            `json:"premium_applied"`
}
