package usecase

import (
	"context"

	"pitstop/internal/domain/entity"
)

// DiscoveryInput describes a workshop search. A nil MaxDistanceKm uses the
// configured default radius.
type DiscoveryInput struct {
	VehicleType   string
	ServiceType   string
	MaxDistanceKm *float64
}

// DiscoveryOutput holds the ranked matches and the customer address they were measured from.
type DiscoveryOutput struct {
	Origin        *entity.Address
	MaxDistanceKm float64
	Results       []*entity.DiscoveryResult
}

// DiscoveryUsecase finds priced workshops near a customer.
type DiscoveryUsecase interface {
	Discover(ctx context.Context, username string, input *DiscoveryInput) (*DiscoveryOutput, error)

	// ListAvailableServiceTypes returns the services priced for the vehicle type, BOTH rules included.
	ListAvailableServiceTypes(ctx context.Context, vehicleType string) ([]entity.ServiceType, error)
}
