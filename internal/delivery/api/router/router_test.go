package router

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pitstop/internal/delivery/api/middleware"
	"pitstop/internal/delivery/api/response"
	"pitstop/internal/delivery/api/router/handler"
	"pitstop/internal/delivery/api/validator"
	deliverycontext "pitstop/internal/delivery/context"
	"pitstop/internal/domain/entity"
	domainerrors "pitstop/internal/domain/errors"
	mockUsecase "pitstop/internal/mocks/usecase"
	"pitstop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb/geojson"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testAPI struct {
	echo      *echo.Echo
	address   *mockUsecase.MockAddressBookUsecase
	discovery *mockUsecase.MockDiscoveryUsecase
	pricing   *mockUsecase.MockPricingUsecase
	workshop  *mockUsecase.MockWorkshopUsecase
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	api := &testAPI{
		echo:      echo.New(),
		address:   mockUsecase.NewMockAddressBookUsecase(t),
		discovery: mockUsecase.NewMockDiscoveryUsecase(t),
		pricing:   mockUsecase.NewMockPricingUsecase(t),
		workshop:  mockUsecase.NewMockWorkshopUsecase(t),
	}
	api.echo.Validator = validator.New()
	api.echo.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	NewRouter(RouterParams{
		AddressHandler:     handler.NewAddressHandler(handler.AddressHandlerParams{AddressUC: api.address, Logger: logger}),
		DiscoveryHandler:   handler.NewDiscoveryHandler(handler.DiscoveryHandlerParams{DiscoveryUC: api.discovery, Logger: logger}),
		PricingHandler:     handler.NewPricingHandler(handler.PricingHandlerParams{PricingUC: api.pricing, Logger: logger}),
		WorkshopHandler:    handler.NewWorkshopHandler(handler.WorkshopHandlerParams{WorkshopUC: api.workshop, Logger: logger}),
		IdentityMiddleware: middleware.NewIdentityMiddleware(logger),
	}).RegisterRoutes(api.echo)

	return api
}

func (a *testAPI) do(method, target, body string, role entity.Role) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if role != "" {
		req.Header.Set(deliverycontext.HeaderXAccountUsername, "alice")
		req.Header.Set(deliverycontext.HeaderXAccountRole, role.String())
	}

	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)

	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, data any) {
	t.Helper()

	body := response.SuccessResponse{Data: data}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
}

func decodeErrorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body.Error.Code
}

func TestHealthIsPublic(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouteAccess(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		target   string
		role     entity.Role
		wantCode int
		wantErr  string
	}{
		{name: "no identity", method: http.MethodGet, target: "/api/v1/customers/me/addresses", wantCode: http.StatusUnauthorized, wantErr: "MISSING_IDENTITY"},
		{name: "workshop on customer route", method: http.MethodGet, target: "/api/v1/customers/me/addresses", role: entity.RoleWorkshop, wantCode: http.StatusForbidden, wantErr: "FORBIDDEN"},
		{name: "customer on workshop route", method: http.MethodGet, target: "/api/v1/workshops/me/status", role: entity.RoleCustomer, wantCode: http.StatusForbidden, wantErr: "FORBIDDEN"},
		{name: "workshop on admin route", method: http.MethodGet, target: "/api/v1/admin/pricing-rules", role: entity.RoleWorkshop, wantCode: http.StatusForbidden, wantErr: "FORBIDDEN"},
		{name: "admin on search", method: http.MethodPost, target: "/api/v1/discovery/search", role: entity.RoleAdmin, wantCode: http.StatusForbidden, wantErr: "FORBIDDEN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)

			rec := api.do(tt.method, tt.target, "", tt.role)
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantErr, decodeErrorCode(t, rec))
		})
	}
}

func TestAddCustomerAddress(t *testing.T) {
	api := newTestAPI(t)
	addressID := uuid.New()

	api.address.EXPECT().
		AddCustomerAddress(mock.Anything, "alice", mock.MatchedBy(func(in *usecase.AddressInput) bool {
			return in.Latitude != nil && *in.Latitude == 22.5726 && in.Longitude != nil && *in.Longitude == 88.3639
		})).
		Return(&entity.Address{
			ID:               addressID,
			FormattedAddress: "Park Street, Kolkata",
			Coordinate:       &entity.Coordinate{Latitude: 22.5726, Longitude: 88.3639},
			IsDefault:        true,
		}, nil)

	rec := api.do(http.MethodPost, "/api/v1/customers/me/addresses", `{"latitude":22.5726,"longitude":88.3639}`, entity.RoleCustomer)
	require.Equal(t, http.StatusCreated, rec.Code)

	var got handler.AddressResponse
	decodeData(t, rec, &got)
	assert.Equal(t, addressID, got.ID)
	assert.True(t, got.IsDefault)
}

func TestAddCustomerAddress_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "latitude without longitude", body: `{"latitude":10}`},
		{name: "latitude out of range", body: `{"latitude":91,"longitude":10}`},
		{name: "malformed body", body: `{"latitude":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)

			rec := api.do(http.MethodPost, "/api/v1/customers/me/addresses", tt.body, entity.RoleCustomer)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "VALIDATION_FAILED", decodeErrorCode(t, rec))
		})
	}
}

func TestSetDefaultAddress_UnknownID(t *testing.T) {
	api := newTestAPI(t)
	addressID := uuid.New()

	api.address.EXPECT().
		SetDefaultAddress(mock.Anything, "alice", addressID).
		Return(nil, domainerrors.ErrAddressNotFound)

	rec := api.do(http.MethodPut, "/api/v1/customers/me/addresses/default", `{"address_id":"`+addressID.String()+`"}`, entity.RoleCustomer)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "ADDRESS_NOT_FOUND", decodeErrorCode(t, rec))
}

func newSearchOutput() *usecase.DiscoveryOutput {
	return &usecase.DiscoveryOutput{
		Origin: &entity.Address{
			ID:               uuid.New(),
			FormattedAddress: "Home",
			Coordinate:       &entity.Coordinate{Latitude: 22.5726, Longitude: 88.3639},
			IsDefault:        true,
		},
		MaxDistanceKm: 5,
		Results: []*entity.DiscoveryResult{
			{
				WorkshopID:       uuid.New(),
				DisplayName:      "Speedy Motors",
				DistanceKm:       0.31,
				VehicleType:      entity.VehicleTypeFourWheeler,
				ServiceType:      entity.ServiceTypeOilChange,
				FormattedAddress: "Speedy street",
				Coordinate:       entity.Coordinate{Latitude: 22.5750, Longitude: 88.3650},
				Price:            decimal.NewFromInt(100),
			},
		},
	}
}

func TestSearch(t *testing.T) {
	api := newTestAPI(t)
	output := newSearchOutput()

	api.discovery.EXPECT().
		Discover(mock.Anything, "alice", &usecase.DiscoveryInput{
			VehicleType: "FOUR_WHEELER",
			ServiceType: "OIL_CHANGE",
		}).
		Return(output, nil)

	rec := api.do(http.MethodPost, "/api/v1/discovery/search", `{"vehicle_type":"FOUR_WHEELER","service_type":"OIL_CHANGE"}`, entity.RoleCustomer)
	require.Equal(t, http.StatusOK, rec.Code)

	var got handler.SearchResponse
	decodeData(t, rec, &got)
	assert.Equal(t, 1, got.Count)
	assert.InDelta(t, 5.0, got.MaxDistanceKm, 1e-9)
	require.Len(t, got.Results, 1)
	assert.Equal(t, "Speedy Motors", got.Results[0].DisplayName)
	assert.True(t, decimal.NewFromInt(100).Equal(got.Results[0].Price))
}

func TestSearch_GeoJSON(t *testing.T) {
	api := newTestAPI(t)
	output := newSearchOutput()

	api.discovery.EXPECT().Discover(mock.Anything, "alice", mock.Anything).Return(output, nil)

	rec := api.do(http.MethodPost, "/api/v1/discovery/search?format=geojson", `{"vehicle_type":"FOUR_WHEELER","service_type":"OIL_CHANGE"}`, entity.RoleCustomer)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, response.MIMEGeoJSON, rec.Header().Get(echo.HeaderContentType))

	fc, err := geojson.UnmarshalFeatureCollection(rec.Body.Bytes())
	require.NoError(t, err)
	require.Len(t, fc.Features, 1)

	feature := fc.Features[0]
	assert.Equal(t, output.Results[0].WorkshopID.String(), feature.ID)
	assert.Equal(t, "Speedy Motors", feature.Properties.MustString("display_name"))
	assert.Equal(t, "100", feature.Properties.MustString("price"))
	assert.InDelta(t, 1, feature.Properties.MustFloat64("rank"), 1e-9)
	assert.InDelta(t, 88.3650, feature.Point().Lon(), 1e-9)

	bound := fc.BBox.Bound()
	assert.InDelta(t, 88.3639, bound.Min.Lon(), 1e-9)
	assert.InDelta(t, 22.5750, bound.Max.Lat(), 1e-9)
	assert.Contains(t, fc.ExtraMembers, "origin")
}

func TestSearch_InvalidEnum(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPost, "/api/v1/discovery/search", `{"vehicle_type":"TRUCK","service_type":"OIL_CHANGE"}`, entity.RoleCustomer)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeErrorCode(t, rec))
}

func TestSearch_FailureHidesDetails(t *testing.T) {
	api := newTestAPI(t)

	api.discovery.EXPECT().
		Discover(mock.Anything, "alice", mock.Anything).
		Return(nil, domainerrors.ErrSearchFailed.WrapMessage("connection refused"))

	rec := api.do(http.MethodPost, "/api/v1/discovery/search", `{"vehicle_type":"FOUR_WHEELER","service_type":"OIL_CHANGE"}`, entity.RoleCustomer)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "SEARCH_FAILED", decodeErrorCode(t, rec))
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestListDiscoveryServices(t *testing.T) {
	api := newTestAPI(t)

	api.discovery.EXPECT().
		ListAvailableServiceTypes(mock.Anything, "TWO_WHEELER").
		Return([]entity.ServiceType{entity.ServiceTypeOilChange, entity.ServiceTypeBrakeRepair}, nil)

	rec := api.do(http.MethodGet, "/api/v1/discovery/services?vehicleType=TWO_WHEELER", "", entity.RoleWorkshop)
	require.Equal(t, http.StatusOK, rec.Code)

	var got []entity.ServiceType
	decodeData(t, rec, &got)
	assert.Equal(t, []entity.ServiceType{entity.ServiceTypeOilChange, entity.ServiceTypeBrakeRepair}, got)
}

func TestQuote(t *testing.T) {
	api := newTestAPI(t)
	workshopID := uuid.New()

	api.pricing.EXPECT().
		Quote(mock.Anything, mock.MatchedBy(func(in *usecase.QuoteInput) bool {
			return in.WorkshopID != nil && *in.WorkshopID == workshopID && in.VehicleType == "FOUR_WHEELER"
		})).
		Return(&entity.PriceQuote{
			VehicleType:    entity.VehicleTypeFourWheeler,
			ServiceType:    entity.ServiceTypeOilChange,
			WorkshopID:     &workshopID,
			BaseAmount:     decimal.NewFromInt(100),
			PremiumAmount:  decimal.NewFromInt(50),
			FinalAmount:    decimal.NewFromInt(150),
			PremiumApplied: true,
		}, nil)

	body := `{"vehicle_type":"FOUR_WHEELER","service_type":"OIL_CHANGE","workshop_id":"` + workshopID.String() + `"}`
	rec := api.do(http.MethodPost, "/api/v1/pricing/quote", body, entity.RoleCustomer)
	require.Equal(t, http.StatusOK, rec.Code)

	var got entity.PriceQuote
	decodeData(t, rec, &got)
	assert.True(t, decimal.NewFromInt(150).Equal(got.FinalAmount))
	assert.True(t, got.PremiumApplied)
}

func TestQuote_InvalidWorkshopID(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPost, "/api/v1/pricing/quote", `{"vehicle_type":"FOUR_WHEELER","service_type":"OIL_CHANGE","workshop_id":"nope"}`, entity.RoleCustomer)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeErrorCode(t, rec))
}

func TestPricingRuleAdmin(t *testing.T) {
	ruleID := uuid.New()
	rule := &entity.PricingRule{
		ID:            ruleID,
		VehicleType:   entity.VehicleTypeTwoWheeler,
		ServiceType:   entity.ServiceTypeBrakeRepair,
		BaseAmount:    decimal.NewFromInt(40),
		PremiumAmount: decimal.NewFromInt(10),
	}

	t.Run("create", func(t *testing.T) {
		api := newTestAPI(t)
		api.pricing.EXPECT().
			CreatePricingRule(mock.Anything, mock.MatchedBy(func(in *usecase.PricingRuleInput) bool {
				return in.BaseAmount.Equal(decimal.NewFromInt(40)) && in.ServiceType == "BRAKE_REPAIR"
			})).
			Return(rule, nil)

		rec := api.do(http.MethodPost, "/api/v1/admin/pricing-rules",
			`{"vehicle_type":"TWO_WHEELER","service_type":"BRAKE_REPAIR","base_amount":"40","premium_amount":"10"}`, entity.RoleAdmin)
		require.Equal(t, http.StatusCreated, rec.Code)

		var got handler.PricingRuleResponse
		decodeData(t, rec, &got)
		assert.Equal(t, ruleID, got.ID)
	})

	t.Run("create conflict", func(t *testing.T) {
		api := newTestAPI(t)
		api.pricing.EXPECT().CreatePricingRule(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrPricingRuleExists)

		rec := api.do(http.MethodPost, "/api/v1/admin/pricing-rules",
			`{"vehicle_type":"TWO_WHEELER","service_type":"BRAKE_REPAIR","base_amount":"40","premium_amount":"10"}`, entity.RoleAdmin)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "PRICING_RULE_ALREADY_EXISTS", decodeErrorCode(t, rec))
	})

	t.Run("delete", func(t *testing.T) {
		api := newTestAPI(t)
		api.pricing.EXPECT().DeletePricingRule(mock.Anything, ruleID).Return(nil)

		rec := api.do(http.MethodDelete, "/api/v1/admin/pricing-rules/"+ruleID.String(), "", entity.RoleAdmin)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("lookup missing", func(t *testing.T) {
		api := newTestAPI(t)
		api.pricing.EXPECT().
			GetPricingRule(mock.Anything, "TWO_WHEELER", "AC_REPAIR").
			Return(nil, domainerrors.ErrPricingRuleNotFound.WithDetails("pricing rule not defined for vehicle type TWO_WHEELER and service type AC_REPAIR"))

		rec := api.do(http.MethodGet, "/api/v1/admin/pricing-rules/lookup?vehicleType=TWO_WHEELER&serviceType=AC_REPAIR", "", entity.RoleAdmin)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "AC_REPAIR")
	})
}

func TestWorkshopCapabilities(t *testing.T) {
	t.Run("add service", func(t *testing.T) {
		api := newTestAPI(t)
		api.workshop.EXPECT().
			AddServiceType(mock.Anything, "alice", "AC_REPAIR").
			Return(entity.ServiceTypes{entity.ServiceTypeOilChange, entity.ServiceTypeACRepair}, nil)

		rec := api.do(http.MethodPost, "/api/v1/workshops/me/services", `{"service_type":"AC_REPAIR"}`, entity.RoleWorkshop)
		require.Equal(t, http.StatusCreated, rec.Code)

		var got handler.ServicesResponse
		decodeData(t, rec, &got)
		assert.Equal(t, entity.ServiceTypes{entity.ServiceTypeOilChange, entity.ServiceTypeACRepair}, got.ServiceTypes)
	})

	t.Run("remove service not offered", func(t *testing.T) {
		api := newTestAPI(t)
		api.workshop.EXPECT().
			RemoveServiceType(mock.Anything, "alice", "AC_REPAIR").
			Return(nil, domainerrors.ErrServiceTypeNotOffered.WithDetails("workshop does not offer this service: AC_REPAIR"))

		rec := api.do(http.MethodDelete, "/api/v1/workshops/me/services/AC_REPAIR", "", entity.RoleWorkshop)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "SERVICE_TYPE_NOT_OFFERED", decodeErrorCode(t, rec))
	})

	t.Run("unset vehicle type is null", func(t *testing.T) {
		api := newTestAPI(t)
		api.workshop.EXPECT().GetVehicleType(mock.Anything, "alice").Return(nil, nil)

		rec := api.do(http.MethodGet, "/api/v1/workshops/me/vehicle-type", "", entity.RoleWorkshop)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"vehicle_type":null`)
	})

	t.Run("set vehicle type rejects unknown value", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(http.MethodPut, "/api/v1/workshops/me/vehicle-type", `{"vehicle_type":"BUS"}`, entity.RoleWorkshop)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decodeErrorCode(t, rec))
	})

	t.Run("clear vehicle type", func(t *testing.T) {
		api := newTestAPI(t)
		api.workshop.EXPECT().ClearVehicleType(mock.Anything, "alice").Return(nil)

		rec := api.do(http.MethodDelete, "/api/v1/workshops/me/vehicle-type", "", entity.RoleWorkshop)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("close", func(t *testing.T) {
		api := newTestAPI(t)
		api.workshop.EXPECT().CloseWorkshop(mock.Anything, "alice").Return(entity.WorkshopStatusClosed, nil)

		rec := api.do(http.MethodPost, "/api/v1/workshops/me/close", "", entity.RoleWorkshop)
		require.Equal(t, http.StatusOK, rec.Code)

		var got handler.StatusResponse
		decodeData(t, rec, &got)
		assert.Equal(t, entity.WorkshopStatusClosed, got.Status)
	})

	t.Run("busy account", func(t *testing.T) {
		api := newTestAPI(t)
		api.workshop.EXPECT().OpenWorkshop(mock.Anything, "alice").Return("", domainerrors.ErrAccountBusy)

		rec := api.do(http.MethodPost, "/api/v1/workshops/me/open", "", entity.RoleWorkshop)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "ACCOUNT_BUSY", decodeErrorCode(t, rec))
	})
}
