package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PricingRuleModel mirrors the 'pricing_rules' table; one row per (vehicle, service) pair.
type PricingRuleModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	VehicleType   string          `gorm:"type:varchar(20);not null;uniqueIndex:idx_pricing_rules_vehicle_service"`
	ServiceType   string          `gorm:"type:varchar(40);not null;uniqueIndex:idx_pricing_rules_vehicle_service"`
	BaseAmount    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PremiumAmount decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (PricingRuleModel) TableName() string {
	return "pricing_rules"
}

// All lists every model managed by AutoMigrate, in dependency order.
func All() []any {
	return []any{
		&AccountModel{},
		&WorkshopProfileModel{},
		&AddressModel{},
		&PricingRuleModel{},
	}
}
