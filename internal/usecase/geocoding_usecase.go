package usecase

import (
	"context"

	"pitstop/internal/domain/entity"
)

// Placeholder texts returned by ResolveAddress instead of an error.
const (
	AddressNotFoundText    = "Address not found"
	AddressLookupErrorText = "Error fetching address: "
)

// GeocodedLocation is a coordinate together with its canonical address text.
type GeocodedLocation struct {
	Coordinate       entity.Coordinate
	FormattedAddress string
}

// GeocodingUsecase wraps the external geocoding providers.
type GeocodingUsecase interface {
	// ResolveAddress never fails; lookup problems are reported as placeholder text.
	ResolveAddress(ctx context.Context, coord entity.Coordinate) string

	// ResolveCoordinate fails when the provider returns no result or an error.
	ResolveCoordinate(ctx context.Context, text string) (*GeocodedLocation, error)
}
