package usecase

import (
	"context"

	"pitstop/internal/domain/entity"

	"github.com/google/uuid"
)

// AddressInput locates a new address either by coordinate or by free text.
// A complete coordinate takes precedence over text.
type AddressInput struct {
	Latitude         *float64 `json:"latitude,omitempty"`
	Longitude        *float64 `json:"longitude,omitempty"`
	FormattedAddress string   `json:"formatted_address,omitempty"`
}

// Coordinate returns the input coordinate when both components are present.
func (in *AddressInput) Coordinate() (entity.Coordinate, bool) {
	if in == nil || in.Latitude == nil || in.Longitude == nil {
		return entity.Coordinate{}, false
	}

	return entity.Coordinate{Latitude: *in.Latitude, Longitude: *in.Longitude}, true
}

// AddressBookUsecase manages the addresses owned by customers and workshops.
// Every operation acts on the account named by username.
type AddressBookUsecase interface {
	AddCustomerAddress(ctx context.Context, username string, input *AddressInput) (*entity.Address, error)
	ListCustomerAddresses(ctx context.Context, username string) ([]*entity.Address, error)
	SetDefaultAddress(ctx context.Context, username string, addressID uuid.UUID) (*entity.Address, error)
	GetDefaultAddress(ctx context.Context, username string) (*entity.Address, error)

	SetWorkshopAddress(ctx context.Context, username string, input *AddressInput) (*entity.Address, error)
	GetWorkshopAddress(ctx context.Context, username string) (*entity.Address, error)
}
