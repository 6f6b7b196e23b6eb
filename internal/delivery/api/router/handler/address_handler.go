package handler

import (
	"log/slog"
	"net/http"

	"pitstop/internal/delivery/api/middleware"
	"pitstop/internal/delivery/api/response"
	domainerrors "pitstop/internal/domain/errors"
	"pitstop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AddressHandlerParams holds dependencies for AddressHandler, injected by Fx.
type AddressHandlerParams struct {
	fx.In

	AddressUC usecase.AddressBookUsecase
	Logger    *slog.Logger
}

// AddressHandler serves the customer address book and the workshop address.
type AddressHandler struct {
	addressUC usecase.AddressBookUsecase
	logger    *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler
func NewAddressHandler(params AddressHandlerParams) *AddressHandler {
	return &AddressHandler{
		addressUC: params.AddressUC,
		logger:    params.Logger,
	}
}

// SetDefaultAddressRequest selects the default address.
type SetDefaultAddressRequest struct {
	AddressID string `json:"address_id" validate:"required,uuid"`
}

func (h *AddressHandler) bindAddress(c echo.Context) (*usecase.AddressInput, error) {
	var req AddressRequest
	if err := bindAndValidate(c, &req); err != nil {
		return nil, err
	}

	return &usecase.AddressInput{
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		FormattedAddress: req.FormattedAddress,
	}, nil
}

// AddCustomerAddress handles POST /customers/me/addresses
func (h *AddressHandler) AddCustomerAddress(c echo.Context) error {
	input, err := h.bindAddress(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	address, err := h.addressUC.AddCustomerAddress(c.Request().Context(), middleware.Username(c), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newAddressResponse(address))
}

// ListCustomerAddresses handles GET /customers/me/addresses
func (h *AddressHandler) ListCustomerAddresses(c echo.Context) error {
	addresses, err := h.addressUC.ListCustomerAddresses(c.Request().Context(), middleware.Username(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAddressResponses(addresses))
}

// GetDefaultAddress handles GET /customers/me/addresses/default
func (h *AddressHandler) GetDefaultAddress(c echo.Context) error {
	address, err := h.addressUC.GetDefaultAddress(c.Request().Context(), middleware.Username(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAddressResponse(address))
}

// SetDefaultAddress handles PUT /customers/me/addresses/default
func (h *AddressHandler) SetDefaultAddress(c echo.Context) error {
	var req SetDefaultAddressRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	addressID, err := uuid.Parse(req.AddressID)
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("invalid address_id"))
	}

	address, err := h.addressUC.SetDefaultAddress(c.Request().Context(), middleware.Username(c), addressID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAddressResponse(address))
}

// SetWorkshopAddress handles PUT /workshops/me/address
func (h *AddressHandler) SetWorkshopAddress(c echo.Context) error {
	input, err := h.bindAddress(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	address, err := h.addressUC.SetWorkshopAddress(c.Request().Context(), middleware.Username(c), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAddressResponse(address))
}

// GetWorkshopAddress handles GET /workshops/me/address
func (h *AddressHandler) GetWorkshopAddress(c echo.Context) error {
	address, err := h.addressUC.GetWorkshopAddress(c.Request().Context(), middleware.Username(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAddressResponse(address))
}
