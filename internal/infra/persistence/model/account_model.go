package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table shared by customers, workshops and admins.
type AccountModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username  string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Name      string    `gorm:"type:varchar(100)"`
	Email     string    `gorm:"type:varchar(255)"`
	Role      string    `gorm:"type:varchar(20);not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Workshop *WorkshopProfileModel `gorm:"foreignKey:AccountID"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// WorkshopProfileModel mirrors the 'workshop_profiles' table. AccountID references accounts.id.
type WorkshopProfileModel struct {
	AccountID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Status      string    `gorm:"type:varchar(10);not null;default:'CLOSED';index"`
	VehicleType *string   `gorm:"type:varchar(20)"`
	Services    []string  `gorm:"serializer:json;type:jsonb;not null"`
	IsPremium   bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (WorkshopProfileModel) TableName() string {
	return "workshop_profiles"
}

// AddressModel mirrors the 'addresses' table. Position keeps the owner's
// insertion order, which is significant for default-address fallback.
type AddressModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID          uuid.UUID `gorm:"type:uuid;not null;index:idx_addresses_on_owner"`
	OwnerType        string    `gorm:"type:varchar(20);not null;index:idx_addresses_on_owner"`
	FormattedAddress string    `gorm:"type:text;not null"`
	Latitude         *float64  `gorm:"type:double precision"`
	Longitude        *float64  `gorm:"type:double precision"`
	IsDefault        bool      `gorm:"not null;default:false"`
	Position         int       `gorm:"not null;default:0"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
