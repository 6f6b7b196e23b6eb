package handler

import (
	"time"

	"pitstop/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AddressRequest locates an address by coordinate or by free text.
type AddressRequest struct {
	Latitude         *float64 `json:"latitude,omitempty" validate:"required_with=Longitude,omitempty,gte=-90,lte=90"`
	Longitude        *float64 `json:"longitude,omitempty" validate:"required_with=Latitude,omitempty,gte=-180,lte=180"`
	FormattedAddress string   `json:"formatted_address,omitempty" validate:"max=512"`
}

// AddressResponse is the public view of a saved address.
type AddressResponse struct {
	ID               uuid.UUID          `json:"id"`
	FormattedAddress string             `json:"formatted_address"`
	Coordinate       *entity.Coordinate `json:"coordinate,omitempty"`
	IsDefault        bool               `json:"is_default"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

func newAddressResponse(address *entity.Address) *AddressResponse {
	if address == nil {
		return nil
	}

	return &AddressResponse{
		ID:               address.ID,
		FormattedAddress: address.FormattedAddress,
		Coordinate:       address.Coordinate,
		IsDefault:        address.IsDefault,
		CreatedAt:        address.CreatedAt,
		UpdatedAt:        address.UpdatedAt,
	}
}

func newAddressResponses(addresses []*entity.Address) []*AddressResponse {
	result := make([]*AddressResponse, 0, len(addresses))
	for _, address := range addresses {
		result = append(result, newAddressResponse(address))
	}

	return result
}

// PricingRuleResponse is the public view of a pricing rule.
type PricingRuleResponse struct {
	ID            uuid.UUID          `json:"id"`
	VehicleType   entity.VehicleType `json:"vehicle_type"`
	ServiceType   entity.ServiceType `json:"service_type"`
	BaseAmount    decimal.Decimal    `json:"base_amount"`
	PremiumAmount decimal.Decimal    `json:"premium_amount"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

func newPricingRuleResponse(rule *entity.PricingRule) *PricingRuleResponse {
	return &PricingRuleResponse{
		ID:            rule.ID,
		VehicleType:   rule.VehicleType,
		ServiceType:   rule.ServiceType,
		BaseAmount:    rule.BaseAmount,
		PremiumAmount: rule.PremiumAmount,
		UpdatedAt:     rule.UpdatedAt,
	}
}
