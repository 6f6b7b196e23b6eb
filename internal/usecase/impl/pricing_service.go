package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "pitstop/internal/delivery/context"
	"pitstop/internal/domain/entity"
	domainerrors "pitstop/internal/domain/errors"
	"pitstop/internal/domain/repository"
	"pitstop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// Quote messages.
const (
	msgEstimatedPrice  = "Estimated base price"
	msgPremiumPricing  = "Premium workshop pricing applied"
	msgStandardPricing = "Standard workshop pricing applied"
)

type pricingService struct {
	pricingRepo repository.PricingRuleRepository
	accountRepo repository.AccountRepository
	logger      *slog.Logger
}

// PricingServiceParams holds dependencies for PricingService, injected by Fx.
type PricingServiceParams struct {
	fx.In

	PricingRepo repository.PricingRuleRepository
	AccountRepo repository.AccountRepository
	Logger      *slog.Logger
}

// NewPricingService is the constructor for pricingService.
func NewPricingService(params PricingServiceParams) usecase.PricingUsecase {
	return &pricingService{
		pricingRepo: params.PricingRepo,
		accountRepo: params.AccountRepo,
		logger:      params.Logger,
	}
}

func (srv *pricingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func parseVehicleType(value string) (entity.VehicleType, error) {
	vehicleType, ok := entity.ParseVehicleType(value)
	if !ok {
		return "", domainerrors.ErrInvalidVehicleType.WithDetails("invalid vehicle type: " + value)
	}

	return vehicleType, nil
}

func parseServiceType(value string) (entity.ServiceType, error) {
	serviceType, ok := entity.ParseServiceType(value)
	if !ok {
		return "", domainerrors.ErrInvalidServiceType.WithDetails("invalid service type: " + value)
	}

	return serviceType, nil
}

// findPricingRule looks up the rule for a pair, translating a miss into ErrPricingRuleNotFound.
func findPricingRule(ctx context.Context, repo repository.PricingRuleRepository, vehicleType entity.VehicleType, serviceType entity.ServiceType) (*entity.PricingRule, error) {
	rule, err := repo.FindPricingRule(ctx, vehicleType, serviceType)
	if err != nil {
		if errors.Is(err, repository.ErrPricingRuleNotFound) {
			return nil, domainerrors.ErrPricingRuleNotFound.WithDetails(
				"pricing rule not defined for vehicle type " + vehicleType.String() + " and service type " + serviceType.String(),
			)
		}

		return nil, errors.Wrap(err, "failed to find pricing rule")
	}

	return rule, nil
}

// Quote prices a service, optionally for a specific workshop. The workshop
// must offer the service and declare exactly the requested vehicle type.
func (srv *pricingService) Quote(ctx context.Context, input *usecase.QuoteInput) (*entity.PriceQuote, error) {
	vehicleType, err := parseVehicleType(input.VehicleType)
	if err != nil {
		return nil, err
	}
	serviceType, err := parseServiceType(input.ServiceType)
	if err != nil {
		return nil, err
	}

	rule, err := findPricingRule(ctx, srv.pricingRepo, vehicleType, serviceType)
	if err != nil {
		return nil, err
	}

	quote := &entity.PriceQuote{
		VehicleType:   vehicleType,
		ServiceType:   serviceType,
		BaseAmount:    rule.BaseAmount,
		PremiumAmount: rule.PremiumAmount,
	}

	if input.WorkshopID == nil {
		quote.FinalAmount = rule.BaseAmount
		quote.Estimate = true
		quote.Message = msgEstimatedPrice

		return quote, nil
	}

	workshopID := *input.WorkshopID
	workshop, err := srv.accountRepo.FindWorkshopByID(ctx, workshopID)
	if err != nil {
		return nil, workshopLookupError(err, workshopID.String())
	}

	if !workshop.Services.Contains(serviceType) {
		return nil, domainerrors.ErrServiceUnsupported.WithDetails("workshop does not offer " + serviceType.String())
	}
	if !workshop.HasVehicleType(vehicleType) {
		return nil, domainerrors.ErrVehicleUnsupported.WithDetails("workshop does not service " + vehicleType.String())
	}

	quote.WorkshopID = &workshopID
	quote.PremiumApplied = workshop.IsPremium
	quote.FinalAmount = rule.PriceFor(workshop.IsPremium)
	quote.Message = msgStandardPricing
	if workshop.IsPremium {
		quote.Message = msgPremiumPricing
	}

	return quote, nil
}

func (srv *pricingService) ListPricingRules(ctx context.Context) ([]*entity.PricingRule, error) {
	rules, err := srv.pricingRepo.ListPricingRules(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pricing rules")
	}

	return rules, nil
}

func (srv *pricingService) GetPricingRule(ctx context.Context, vehicleType, serviceType string) (*entity.PricingRule, error) {
	vt, err := parseVehicleType(vehicleType)
	if err != nil {
		return nil, err
	}
	st, err := parseServiceType(serviceType)
	if err != nil {
		return nil, err
	}

	return findPricingRule(ctx, srv.pricingRepo, vt, st)
}

func validateAmounts(base, premium decimal.Decimal) error {
	if base.IsNegative() {
		return domainerrors.ErrValidationFailed.WithDetails("base_amount must not be negative")
	}
	if premium.IsNegative() {
		return domainerrors.ErrValidationFailed.WithDetails("premium_amount must not be negative")
	}

	return nil
}

func (srv *pricingService) CreatePricingRule(ctx context.Context, input *usecase.PricingRuleInput) (*entity.PricingRule, error) {
	vehicleType, err := parseVehicleType(input.VehicleType)
	if err != nil {
		return nil, err
	}
	serviceType, err := parseServiceType(input.ServiceType)
	if err != nil {
		return nil, err
	}
	if err := validateAmounts(input.BaseAmount, input.PremiumAmount); err != nil {
		return nil, err
	}

	now := time.Now()
	rule := &entity.PricingRule{
		ID:            uuid.New(),
		VehicleType:   vehicleType,
		ServiceType:   serviceType,
		BaseAmount:    input.BaseAmount,
		PremiumAmount: input.PremiumAmount,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := srv.pricingRepo.CreatePricingRule(ctx, rule); err != nil {
		if errors.Is(err, repository.ErrPricingRuleConflict) {
			return nil, domainerrors.ErrPricingRuleExists.WithDetails(
				"pricing rule already exists for vehicle type " + vehicleType.String() + " and service type " + serviceType.String(),
			)
		}

		return nil, errors.Wrap(err, "failed to create pricing rule")
	}

	srv.log(ctx).Info("Pricing rule created",
		slog.String("rule_id", rule.ID.String()),
		slog.String("vehicle_type", vehicleType.String()),
		slog.String("service_type", serviceType.String()),
	)

	return rule, nil
}

func (srv *pricingService) UpdatePricingRule(ctx context.Context, id uuid.UUID, input *usecase.PricingAmountsInput) (*entity.PricingRule, error) {
	if err := validateAmounts(input.BaseAmount, input.PremiumAmount); err != nil {
		return nil, err
	}

	rule, err := srv.pricingRepo.FindPricingRuleByID(ctx, id)
	if err != nil {
		return nil, pricingRuleByIDError(err, id)
	}

	rule.BaseAmount = input.BaseAmount
	rule.PremiumAmount = input.PremiumAmount
	rule.UpdatedAt = time.Now()

	if err := srv.pricingRepo.UpdatePricingRule(ctx, rule); err != nil {
		return nil, pricingRuleByIDError(err, id)
	}

	return rule, nil
}

func (srv *pricingService) DeletePricingRule(ctx context.Context, id uuid.UUID) error {
	if err := srv.pricingRepo.DeletePricingRule(ctx, id); err != nil {
		return pricingRuleByIDError(err, id)
	}

	srv.log(ctx).Info("Pricing rule deleted", slog.String("rule_id", id.String()))

	return nil
}

func pricingRuleByIDError(err error, id uuid.UUID) error {
	if errors.Is(err, repository.ErrPricingRuleNotFound) {
		return domainerrors.ErrPricingRuleNotFound.WithDetails("pricing rule id: " + id.String())
	}

	return errors.Wrap(err, "pricing rule operation failed")
}
