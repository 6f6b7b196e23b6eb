package usecase

import (
	"context"

	"pitstop/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// QuoteInput requests a price; WorkshopID is optional.
type QuoteInput struct {
	VehicleType string
	ServiceType string
	WorkshopID  *uuid.UUID
}

// PricingRuleInput creates a rule.
type PricingRuleInput struct {
	VehicleType   string
	ServiceType   string
	BaseAmount    decimal.Decimal
	PremiumAmount decimal.Decimal
}

// PricingAmountsInput replaces the amounts of an existing rule.
type PricingAmountsInput struct {
	BaseAmount    decimal.Decimal
	PremiumAmount decimal.Decimal
}

// PricingUsecase resolves prices and administers pricing rules.
type PricingUsecase interface {
	Quote(ctx context.Context, input *QuoteInput) (*entity.PriceQuote, error)

	// Pricing rule administration
	ListPricingRules(ctx context.Context) ([]*entity.PricingRule, error)
	GetPricingRule(ctx context.Context, vehicleType, serviceType string) (*entity.PricingRule, error)
	CreatePricingRule(ctx context.Context, input *PricingRuleInput) (*entity.PricingRule, error)
	UpdatePricingRule(ctx context.Context, id uuid.UUID, input *PricingAmountsInput) (*entity.PricingRule, error)
	DeletePricingRule(ctx context.Context, id uuid.UUID) error
}
