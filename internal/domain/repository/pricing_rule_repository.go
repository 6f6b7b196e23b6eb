package repository

import (
	"context"

	"pitstop/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrPricingRuleNotFound is returned when no rule matches the lookup.
	ErrPricingRuleNotFound = errors.New("pricing rule not found")
	// ErrPricingRuleConflict is returned when a rule already exists for a (vehicle, service) key.
	ErrPricingRuleConflict = errors.New("pricing rule already exists")
)

// PricingRuleRepository provides access to the pricing reference data.
type PricingRuleRepository interface {
	// FindPricingRule returns the unique rule for a (vehicle type, service type) pair.
	FindPricingRule(ctx context.Context, vehicleType entity.VehicleType, serviceType entity.ServiceType) (*entity.PricingRule, error)

	// FindPricingRulesByVehicleTypeIn returns rules for any of the vehicle types, in scan order.
	FindPricingRulesByVehicleTypeIn(ctx context.Context, vehicleTypes []entity.VehicleType) ([]*entity.PricingRule, error)

	FindPricingRuleByID(ctx context.Context, id uuid.UUID) (*entity.PricingRule, error)

	ListPricingRules(ctx context.Context) ([]*entity.PricingRule, error)

	CreatePricingRule(ctx context.Context, rule *entity.PricingRule) error

	UpdatePricingRule(ctx context.Context, rule *entity.PricingRule) error

	DeletePricingRule(ctx context.Context, id uuid.UUID) error
}
