package handler

import (
	"log/slog"
	"net/http"

	"pitstop/internal/delivery/api/middleware"
	"pitstop/internal/delivery/api/response"
	"pitstop/internal/domain/entity"
	"pitstop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/fx"
)

const formatGeoJSON = "geojson"

// DiscoveryHandlerParams holds dependencies for DiscoveryHandler, injected by Fx.
type DiscoveryHandlerParams struct {
	fx.In

	DiscoveryUC usecase.DiscoveryUsecase
	Logger      *slog.Logger
}

// DiscoveryHandler serves workshop searches.
type DiscoveryHandler struct {
	discoveryUC usecase.DiscoveryUsecase
	logger      *slog.Logger
}

// NewDiscoveryHandler is the constructor for DiscoveryHandler
func NewDiscoveryHandler(params DiscoveryHandlerParams) *DiscoveryHandler {
	return &DiscoveryHandler{
		discoveryUC: params.DiscoveryUC,
		logger:      params.Logger,
	}
}

// SearchRequest is the body of a workshop search.
type SearchRequest struct {
	VehicleType   string   `json:"vehicle_type" validate:"required,vehicle_type"`
	ServiceType   string   `json:"service_type" validate:"required,service_type"`
	MaxDistanceKm *float64 `json:"max_distance_km,omitempty" validate:"omitempty,gt=0"`
}

// SearchResponse lists the matches nearest first.
type SearchResponse struct {
	Origin        *AddressResponse          `json:"origin"`
	MaxDistanceKm float64                   `json:"max_distance_km"`
	Count         int                       `json:"count"`
	Results       []*entity.DiscoveryResult `json:"results"`
}

// Search handles POST /discovery/search. With ?format=geojson the results are
// returned as a FeatureCollection of points.
func (h *DiscoveryHandler) Search(c echo.Context) error {
	var req SearchRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.discoveryUC.Discover(c.Request().Context(), middleware.Username(c), &usecase.DiscoveryInput{
		VehicleType:   req.VehicleType,
		ServiceType:   req.ServiceType,
		MaxDistanceKm: req.MaxDistanceKm,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if c.QueryParam("format") == formatGeoJSON {
		return response.GeoJSON(c, http.StatusOK, newResultsFeatureCollection(output))
	}

	return response.Success(c, http.StatusOK, &SearchResponse{
		Origin:        newAddressResponse(output.Origin),
		MaxDistanceKm: output.MaxDistanceKm,
		Count:         len(output.Results),
		Results:       output.Results,
	})
}

func newResultsFeatureCollection(output *usecase.DiscoveryOutput) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	var points orb.MultiPoint
	if output.Origin.HasCoordinate() {
		origin := output.Origin.Coordinate.Point()
		points = append(points, origin)
		fc.ExtraMembers = geojson.Properties{"origin": origin}
	}

	for rank, result := range output.Results {
		point := result.Coordinate.Point()
		points = append(points, point)

		feature := geojson.NewFeature(point)
		feature.ID = result.WorkshopID.String()
		feature.Properties["rank"] = rank + 1
		feature.Properties["display_name"] = result.DisplayName
		feature.Properties["distance_km"] = result.DistanceKm
		feature.Properties["vehicle_type"] = result.VehicleType
		feature.Properties["service_type"] = result.ServiceType
		feature.Properties["formatted_address"] = result.FormattedAddress
		feature.Properties["price"] = result.Price.String()
		feature.Properties["premium_applied"] = result.PremiumApplied
		fc.Append(feature)
	}

	if len(fc.Features) > 0 {
		fc.BBox = geojson.NewBBox(points.Bound())
	}

	return fc
}

// ListServices handles GET /discovery/services?vehicleType=
func (h *DiscoveryHandler) ListServices(c echo.Context) error {
	services, err := h.discoveryUC.ListAvailableServiceTypes(c.Request().Context(), c.QueryParam("vehicleType"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, services)
}
