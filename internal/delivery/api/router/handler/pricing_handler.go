package handler

import (
	"log/slog"
	"net/http"

	"pitstop/internal/delivery/api/response"
	domainerrors "pitstop/internal/domain/errors"
	"pitstop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// PricingHandlerParams holds dependencies for PricingHandler, injected by Fx.
type PricingHandlerParams struct {
	fx.In

	PricingUC usecase.PricingUsecase
	Logger    *slog.Logger
}

// PricingHandler serves quotes and the pricing rule administration.
type PricingHandler struct {
	pricingUC usecase.PricingUsecase
	logger    *slog.Logger
}

// NewPricingHandler is the constructor for PricingHandler
func NewPricingHandler(params PricingHandlerParams) *PricingHandler {
	return &PricingHandler{
		pricingUC: params.PricingUC,
		logger:    params.Logger,
	}
}

// QuoteRequest asks for a price, optionally at a specific workshop.
type QuoteRequest struct {
	VehicleType string `json:"vehicle_type" validate:"required,vehicle_type"`
	ServiceType string `json:"service_type" validate:"required,service_type"`
	WorkshopID  string `json:"workshop_id,omitempty" validate:"omitempty,uuid"`
}

// PricingRuleRequest creates a rule. Amounts accept JSON numbers or strings.
type PricingRuleRequest struct {
	VehicleType   string          `json:"vehicle_type" validate:"required,vehicle_type"`
	ServiceType   string          `json:"service_type" validate:"required,service_type"`
	BaseAmount    decimal.Decimal `json:"base_amount"`
	PremiumAmount decimal.Decimal `json:"premium_amount"`
}

// PricingAmountsRequest replaces the amounts of a rule.
type PricingAmountsRequest struct {
	BaseAmount    decimal.Decimal `json:"base_amount"`
	PremiumAmount decimal.Decimal `json:"premium_amount"`
}

// Quote handles POST /pricing/quote
func (h *PricingHandler) Quote(c echo.Context) error {
	var req QuoteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.QuoteInput{
		VehicleType: req.VehicleType,
		ServiceType: req.ServiceType,
	}
	if req.WorkshopID != "" {
		workshopID, err := uuid.Parse(req.WorkshopID)
		if err != nil {
			return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("invalid workshop_id"))
		}
		input.WorkshopID = &workshopID
	}

	quote, err := h.pricingUC.Quote(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, quote)
}

// ListPricingRules handles GET /admin/pricing-rules
func (h *PricingHandler) ListPricingRules(c echo.Context) error {
	rules, err := h.pricingUC.ListPricingRules(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result := make([]*PricingRuleResponse, 0, len(rules))
	for _, rule := range rules {
		result = append(result, newPricingRuleResponse(rule))
	}

	return response.Success(c, http.StatusOK, result)
}

// LookupPricingRule handles GET /admin/pricing-rules/lookup?vehicleType=&serviceType=
func (h *PricingHandler) LookupPricingRule(c echo.Context) error {
	rule, err := h.pricingUC.GetPricingRule(c.Request().Context(), c.QueryParam("vehicleType"), c.QueryParam("serviceType"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPricingRuleResponse(rule))
}

// CreatePricingRule handles POST /admin/pricing-rules
func (h *PricingHandler) CreatePricingRule(c echo.Context) error {
	var req PricingRuleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	rule, err := h.pricingUC.CreatePricingRule(c.Request().Context(), &usecase.PricingRuleInput{
		VehicleType:   req.VehicleType,
		ServiceType:   req.ServiceType,
		BaseAmount:    req.BaseAmount,
		PremiumAmount: req.PremiumAmount,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newPricingRuleResponse(rule))
}

// UpdatePricingRule handles PUT /admin/pricing-rules/:id
func (h *PricingHandler) UpdatePricingRule(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req PricingAmountsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	rule, err := h.pricingUC.UpdatePricingRule(c.Request().Context(), id, &usecase.PricingAmountsInput{
		BaseAmount:    req.BaseAmount,
		PremiumAmount: req.PremiumAmount,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPricingRuleResponse(rule))
}

// DeletePricingRule handles DELETE /admin/pricing-rules/:id
func (h *PricingHandler) DeletePricingRule(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.pricingUC.DeletePricingRule(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
