// Package geocoding selects the configured geocoding providers.
package geocoding

import (
	"log/slog"
	"net/http"

	"pitstop/config"
	"pitstop/internal/domain/constants"
	"pitstop/internal/domain/service"
	"pitstop/internal/infra/geocoding/nominatim"
	"pitstop/internal/infra/geocoding/trueway"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the geocoding providers, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newHTTPClient(cfg *config.GeocodingConfig) *http.Client {
	// Callers also bound each lookup with a context deadline; this is the outer limit.
	return &http.Client{Timeout: cfg.Timeout}
}

// NewReverseGeocoder creates the reverse geocoder named by geocoding.reverse.provider.
func NewReverseGeocoder(params Params) (service.ReverseGeocoder, error) {
	cfg := params.Config.Geocoding
	if cfg == nil {
		return nil, errors.New("geocoding configuration is required")
	}

	provider := cfg.Reverse
	switch provider.Provider {
	case constants.GeocodingProviderNominatim, "":
		if provider.BaseURL == "" {
			return nil, errors.New("base URL is required for nominatim reverse geocoding")
		}
		params.Logger.Info("Using Nominatim reverse geocoder", slog.String("base_url", provider.BaseURL))

		return nominatim.NewClient(provider.BaseURL, provider.UserAgent, newHTTPClient(cfg), params.Logger), nil

	default:
		return nil, errors.Errorf("unsupported reverse geocoding provider: %s", provider.Provider)
	}
}

// NewForwardGeocoder creates the forward geocoder named by geocoding.forward.provider.
func NewForwardGeocoder(params Params) (service.ForwardGeocoder, error) {
	cfg := params.Config.Geocoding
	if cfg == nil {
		return nil, errors.New("geocoding configuration is required")
	}

	provider := cfg.Forward
	switch provider.Provider {
	case constants.GeocodingProviderTrueWay:
		if provider.BaseURL == "" || provider.APIHost == "" {
			return nil, errors.New("base URL and API host are required for trueway geocoding")
		}
		if provider.APIKey == "" {
			params.Logger.Warn("TrueWay API key is empty, forward geocoding requests will be rejected")
		}
		params.Logger.Info("Using TrueWay forward geocoder", slog.String("base_url", provider.BaseURL))

		return trueway.NewClient(provider.BaseURL, provider.APIKey, provider.APIHost, newHTTPClient(cfg), params.Logger), nil

	case constants.GeocodingProviderNominatim:
		if provider.BaseURL == "" {
			return nil, errors.New("base URL is required for nominatim forward geocoding")
		}
		params.Logger.Info("Using Nominatim forward geocoder", slog.String("base_url", provider.BaseURL))

		return nominatim.NewClient(provider.BaseURL, provider.UserAgent, newHTTPClient(cfg), params.Logger), nil

	default:
		return nil, errors.Errorf("unsupported forward geocoding provider: %s", provider.Provider)
	}
}

// Module provides the geocoding FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewReverseGeocoder, NewForwardGeocoder),
)
