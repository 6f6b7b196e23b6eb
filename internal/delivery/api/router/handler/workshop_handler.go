package handler

import (
	"log/slog"
	"net/http"

	"pitstop/internal/delivery/api/middleware"
	"pitstop/internal/delivery/api/response"
	"pitstop/internal/domain/entity"
	"pitstop/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WorkshopHandlerParams holds dependencies for WorkshopHandler, injected by Fx.
type WorkshopHandlerParams struct {
	fx.In

	WorkshopUC usecase.WorkshopUsecase
	Logger     *slog.Logger
}

// WorkshopHandler serves the capabilities of the calling workshop.
type WorkshopHandler struct {
	workshopUC usecase.WorkshopUsecase
	logger     *slog.Logger
}

// NewWorkshopHandler is the constructor for WorkshopHandler
func NewWorkshopHandler(params WorkshopHandlerParams) *WorkshopHandler {
	return &WorkshopHandler{
		workshopUC: params.WorkshopUC,
		logger:     params.Logger,
	}
}

// ServiceTypeRequest names a service to add.
type ServiceTypeRequest struct {
	ServiceType string `json:"service_type" validate:"required,service_type"`
}

// VehicleTypeRequest names the vehicle type to declare.
type VehicleTypeRequest struct {
	VehicleType string `json:"vehicle_type" validate:"required,vehicle_type"`
}

// ServicesResponse lists the offered services.
type ServicesResponse struct {
	ServiceTypes entity.ServiceTypes `json:"service_types"`
}

// VehicleTypeResponse carries the declared vehicle type; null when unset.
type VehicleTypeResponse struct {
	VehicleType *entity.VehicleType `json:"vehicle_type"`
}

// StatusResponse carries the operational status.
type StatusResponse struct {
	Status entity.WorkshopStatus `json:"status"`
}

func (h *WorkshopHandler) ListServiceTypes(c echo.Context) error {
	services, err := h.workshopUC.ListServiceTypes(c.Request().Context(), middleware.Username(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &ServicesResponse{ServiceTypes: services})
}

func (h *WorkshopHandler) AddServiceType(c echo.Context) error {
	var req ServiceTypeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	services, err := h.workshopUC.AddServiceType(c.Request().Context(), middleware.Username(c), req.ServiceType)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, &ServicesResponse{ServiceTypes: services})
}

func (h *WorkshopHandler) RemoveServiceType(c echo.Context) error {
	services, err := h.workshopUC.RemoveServiceType(c.Request().Context(), middleware.Username(c), c.Param("serviceType"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &ServicesResponse{ServiceTypes: services})
}

func (h *WorkshopHandler) GetVehicleType(c echo.Context) error {
	vehicleType, err := h.workshopUC.GetVehicleType(c.Request().Context(), middleware.Username(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &VehicleTypeResponse{VehicleType: vehicleType})
}

func (h *WorkshopHandler) SetVehicleType(c echo.Context) error {
	var req VehicleTypeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	vehicleType, err := h.workshopUC.SetVehicleType(c.Request().Context(), middleware.Username(c), req.VehicleType)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &VehicleTypeResponse{VehicleType: &vehicleType})
}

func (h *WorkshopHandler) ClearVehicleType(c echo.Context) error {
	if err := h.workshopUC.ClearVehicleType(c.Request().Context(), middleware.Username(c)); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *WorkshopHandler) GetStatus(c echo.Context) error {
	status, err := h.workshopUC.GetStatus(c.Request().Context(), middleware.Username(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &StatusResponse{Status: status})
}

func (h *WorkshopHandler) Open(c echo.Context) error {
	status, err := h.workshopUC.OpenWorkshop(c.Request().Context(), middleware.Username(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &StatusResponse{Status: status})
}

func (h *WorkshopHandler) Close(c echo.Context) error {
	status, err := h.workshopUC.CloseWorkshop(c.Request().Context(), middleware.Username(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &StatusResponse{Status: status})
}
