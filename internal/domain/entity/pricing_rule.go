package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PricingRule is the reference price for one (vehicle type, service type) pair.
type PricingRule struct {
	ID            uuid.UUID
	VehicleType   VehicleType
	ServiceType   ServiceType
	BaseAmount    decimal.Decimal
	PremiumAmount decimal.Decimal // Surcharge added for premium workshops.
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PriceFor returns the final amount for a workshop with the given premium flag.
func (r *PricingRule) PriceFor(premium bool) decimal.Decimal {
	if premium {
		return r.BaseAmount.Add(r.PremiumAmount)
	}

	return r.BaseAmount
}

// PriceQuote is the outcome of a pricing request.
type PriceQuote struct {
	VehicleType    VehicleType     `json:"vehicle_type"`
	ServiceType    ServiceType     `json:"service_type"`
	WorkshopID     *uuid.UUID      `json:"workshop_id,omitempty"`
	BaseAmount     decimal.Decimal `json:"base_amount"`
	PremiumAmount  decimal.Decimal `json:"premium_amount"`
	FinalAmount    decimal.Decimal `json:"final_amount"`
	PremiumApplied bool            `json:"premium_applied"`
	Estimate       bool            `json:"estimate"` // True when no workshop was given; not a bindable quote.
	Message        string          `json:"message"`
}
