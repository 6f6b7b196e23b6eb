package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"pitstop/config"
	deliverycontext "pitstop/internal/delivery/context"
	"pitstop/internal/domain/entity"
	domainerrors "pitstop/internal/domain/errors"
	"pitstop/internal/domain/service"
	"pitstop/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultGeocodingTimeout = 5 * time.Second

type geocodingService struct {
	reverse service.ReverseGeocoder
	forward service.ForwardGeocoder
	timeout time.Duration
	logger  *slog.Logger
}

// GeocodingServiceParams holds dependencies for GeocodingService, injected by Fx.
type GeocodingServiceParams struct {
	fx.In

	Reverse service.ReverseGeocoder
	Forward service.ForwardGeocoder
	Config  *config.Config
	Logger  *slog.Logger
}

// NewGeocodingService creates the resolver around the configured providers.
func NewGeocodingService(params GeocodingServiceParams) usecase.GeocodingUsecase {
	timeout := defaultGeocodingTimeout
	if params.Config != nil && params.Config.Geocoding != nil && params.Config.Geocoding.Timeout > 0 {
		timeout = params.Config.Geocoding.Timeout
	}

	return &geocodingService{
		reverse: params.Reverse,
		forward: params.Forward,
		timeout: timeout,
		logger:  params.Logger,
	}
}

func (srv *geocodingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ResolveAddress degrades to placeholder text on any failure.
func (srv *geocodingService) ResolveAddress(ctx context.Context, coord entity.Coordinate) string {
	ctx, cancel := context.WithTimeout(ctx, srv.timeout)
	defer cancel()

	result, err := srv.reverse.Reverse(ctx, coord)
	if err != nil {
		if errors.Is(err, service.ErrNoGeocodeResult) {
			return usecase.AddressNotFoundText
		}

		srv.log(ctx).Warn("Reverse geocoding failed",
			slog.Float64("lat", coord.Latitude),
			slog.Float64("lon", coord.Longitude),
			slog.Any("error", err),
		)

		return usecase.AddressLookupErrorText + err.Error()
	}

	if strings.TrimSpace(result.DisplayName) == "" {
		return usecase.AddressNotFoundText
	}

	return result.DisplayName
}

// ResolveCoordinate fails with ErrGeocodingFailed naming the input text.
func (srv *geocodingService) ResolveCoordinate(ctx context.Context, text string) (*usecase.GeocodedLocation, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domainerrors.ErrInvalidAddressInput.WithDetails("address text is empty")
	}

	ctx, cancel := context.WithTimeout(ctx, srv.timeout)
	defer cancel()

	result, err := srv.forward.Forward(ctx, text)
	if err != nil {
		srv.log(ctx).Warn("Forward geocoding failed", slog.String("address", text), slog.Any("error", err))

		return nil, errors.WithMessage(
			domainerrors.ErrGeocodingFailed.WithDetails("error fetching coordinates for: "+text),
			err.Error(),
		)
	}

	formatted := result.DisplayName
	if strings.TrimSpace(formatted) == "" {
		formatted = text
	}

	return &usecase.GeocodedLocation{
		Coordinate:       result.Coordinate,
		FormattedAddress: formatted,
	}, nil
}
