// Package trueway implements forward geocoding through the TrueWay Geocoding
// API published on RapidAPI.
package trueway

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"pitstop/internal/domain/entity"
	"pitstop/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	headerAPIKey  = "x-rapidapi-key"
	headerAPIHost = "x-rapidapi-host"

	maxErrorBodyBytes = 4 << 10
)

// Client resolves address text to coordinates.
type Client struct {
	baseURL    string
	apiKey     string
	apiHost    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a TrueWay client.
func NewClient(baseURL, apiKey, apiHost string, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		apiHost:    apiHost,
		httpClient: httpClient,
		logger:     logger,
	}
}

type geocodeResponse struct {
	Results []struct {
		Address  string `json:"address"`
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"results"`
}

// Forward returns the first result for the address text.
func (c *Client) Forward(ctx context.Context, address string) (*service.GeocodeResult, error) {
	endpoint := c.baseURL + "?address=" + url.QueryEscape(address)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set(headerAPIKey, c.apiKey)
	req.Header.Set(headerAPIHost, c.apiHost)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "trueway request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))

		return nil, errors.Errorf("geocoding API error: status %d, body: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrap(err, "decode trueway response")
	}

	if len(payload.Results) == 0 {
		return nil, errors.Wrapf(service.ErrNoGeocodeResult, "no results found for: %s", address)
	}

	first := payload.Results[0]
	displayName := first.Address
	if strings.TrimSpace(displayName) == "" {
		displayName = address
	}

	c.logger.Debug("TrueWay geocode resolved",
		slog.String("query", address),
		slog.Float64("lat", first.Location.Lat),
		slog.Float64("lng", first.Location.Lng),
	)

	return &service.GeocodeResult{
		Coordinate:  entity.Coordinate{Latitude: first.Location.Lat, Longitude: first.Location.Lng},
		DisplayName: displayName,
	}, nil
}
