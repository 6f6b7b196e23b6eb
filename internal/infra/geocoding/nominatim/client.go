// Package nominatim implements reverse and forward geocoding against an
// OpenStreetMap Nominatim endpoint.
package nominatim

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"pitstop/internal/domain/entity"
	"pitstop/internal/domain/service"

	"github.com/pkg/errors"
)

const maxErrorBodyBytes = 4 << 10

// Client calls a Nominatim endpoint. baseURL is the full path of the
// operation, e.g. https://nominatim.openstreetmap.org/reverse.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a Nominatim client.
func NewClient(baseURL, userAgent string, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:    baseURL,
		userAgent:  userAgent,
		httpClient: httpClient,
		logger:     logger,
	}
}

type reverseResponse struct {
	DisplayName string         `json:"display_name"`
	Address     map[string]any `json:"address"`
	Error       string         `json:"error"`
}

type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Reverse looks up the display name for a coordinate. A response without both
// display_name and address details yields service.ErrNoGeocodeResult.
func (c *Client) Reverse(ctx context.Context, coord entity.Coordinate) (*service.GeocodeResult, error) {
	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(coord.Latitude, 'f', 6, 64))
	query.Set("lon", strconv.FormatFloat(coord.Longitude, 'f', 6, 64))
	query.Set("format", "json")
	query.Set("addressdetails", "1")

	var resp reverseResponse
	if err := c.get(ctx, query, &resp); err != nil {
		return nil, err
	}

	if resp.DisplayName == "" || resp.Address == nil {
		c.logger.Debug("Nominatim reverse lookup returned no address",
			slog.Float64("lat", coord.Latitude),
			slog.Float64("lon", coord.Longitude),
			slog.String("provider_error", resp.Error),
		)

		return nil, errors.WithStack(service.ErrNoGeocodeResult)
	}

	return &service.GeocodeResult{
		Coordinate:  coord,
		DisplayName: resp.DisplayName,
	}, nil
}

// Forward resolves free text through the search endpoint and returns the best match.
func (c *Client) Forward(ctx context.Context, address string) (*service.GeocodeResult, error) {
	query := url.Values{}
	query.Set("q", address)
	query.Set("format", "json")
	query.Set("limit", "1")

	var results []searchResult
	if err := c.get(ctx, query, &results); err != nil {
		return nil, err
	}

	if len(results) == 0 {
		return nil, errors.Wrapf(service.ErrNoGeocodeResult, "no results found for: %s", address)
	}

	first := results[0]
	lat, err := strconv.ParseFloat(first.Lat, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid latitude %q", first.Lat)
	}
	lon, err := strconv.ParseFloat(first.Lon, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid longitude %q", first.Lon)
	}

	displayName := first.DisplayName
	if strings.TrimSpace(displayName) == "" {
		displayName = address
	}

	return &service.GeocodeResult{
		Coordinate:  entity.Coordinate{Latitude: lat, Longitude: lon},
		DisplayName: displayName,
	}, nil
}

func (c *Client) get(ctx context.Context, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return errors.WithStack(err)
	}
	// Nominatim usage policy requires an identifying User-Agent.
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "nominatim request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))

		return errors.Errorf("geocoding API error: status %d, body: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decode nominatim response")
	}

	return nil
}
