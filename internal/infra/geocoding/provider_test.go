package geocoding

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"pitstop/config"
	"pitstop/internal/infra/geocoding/nominatim"
	"pitstop/internal/infra/geocoding/trueway"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParams(geo *config.GeocodingConfig) Params {
	return Params{
		Config: &config.Config{Geocoding: geo},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestNewReverseGeocoder(t *testing.T) {
	geo := &config.GeocodingConfig{
		Timeout: time.Second,
		Reverse: config.GeocodingProviderConfig{Provider: "nominatim", BaseURL: "http://localhost/reverse"},
	}

	got, err := NewReverseGeocoder(testParams(geo))
	require.NoError(t, err)
	assert.IsType(t, &nominatim.Client{}, got)

	geo.Reverse.Provider = "mapbox"
	_, err = NewReverseGeocoder(testParams(geo))
	assert.ErrorContains(t, err, "unsupported reverse geocoding provider")

	_, err = NewReverseGeocoder(testParams(nil))
	assert.Error(t, err)
}

func TestNewForwardGeocoder(t *testing.T) {
	tests := []struct {
		name     string
		provider config.GeocodingProviderConfig
		wantType any
		wantErr  string
	}{
		{
			name:     "trueway",
			provider: config.GeocodingProviderConfig{Provider: "trueway", BaseURL: "http://localhost/geocode", APIHost: "host", APIKey: "k"},
			wantType: &trueway.Client{},
		},
		{
			name:     "nominatim",
			provider: config.GeocodingProviderConfig{Provider: "nominatim", BaseURL: "http://localhost/search"},
			wantType: &nominatim.Client{},
		},
		{
			name:     "trueway without host",
			provider: config.GeocodingProviderConfig{Provider: "trueway", BaseURL: "http://localhost/geocode"},
			wantErr:  "API host",
		},
		{
			name:     "unknown",
			provider: config.GeocodingProviderConfig{Provider: "carrier-pigeon"},
			wantErr:  "unsupported forward geocoding provider",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewForwardGeocoder(testParams(&config.GeocodingConfig{Timeout: time.Second, Forward: tt.provider}))
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.wantType, got)
		})
	}
}
