package service

import (
	"context"

	"pitstop/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrNoGeocodeResult is returned by providers when a lookup succeeds at the
// transport level but the response carries no usable result.
var ErrNoGeocodeResult = errors.New("no geocoding result")

// GeocodeResult is the provider-independent answer of a geocoding lookup.
type GeocodeResult struct {
	Coordinate  entity.Coordinate
	DisplayName string
}

// ReverseGeocoder turns a coordinate into address text.
type ReverseGeocoder interface {
	Reverse(ctx context.Context, coord entity.Coordinate) (*GeocodeResult, error)
}

// ForwardGeocoder turns free-text addresses into a coordinate.
type ForwardGeocoder interface {
	Forward(ctx context.Context, address string) (*GeocodeResult, error)
}
