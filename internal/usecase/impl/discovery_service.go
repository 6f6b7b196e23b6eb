package impl

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"strings"

	"pitstop/config"
	deliverycontext "pitstop/internal/delivery/context"
	"pitstop/internal/domain/entity"
	domainerrors "pitstop/internal/domain/errors"
	"pitstop/internal/domain/repository"
	"pitstop/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type discoveryService struct {
	accountRepo repository.AccountRepository
	pricingRepo repository.PricingRuleRepository
	addressBook usecase.AddressBookUsecase
	config      *config.DiscoveryConfig
	logger      *slog.Logger
}

// DiscoveryServiceParams holds dependencies for DiscoveryService, injected by Fx.
type DiscoveryServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	PricingRepo repository.PricingRuleRepository
	AddressBook usecase.AddressBookUsecase
	Config      *config.Config
	Logger      *slog.Logger
}

// NewDiscoveryService is the constructor for discoveryService.
func NewDiscoveryService(params DiscoveryServiceParams) usecase.DiscoveryUsecase {
	cfg := params.Config.Discovery
	if cfg == nil {
		cfg = &config.DiscoveryConfig{}
	}

	return &discoveryService{
		accountRepo: params.AccountRepo,
		pricingRepo: params.PricingRepo,
		addressBook: params.AddressBook,
		config:      cfg,
		logger:      params.Logger,
	}
}

func (srv *discoveryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Discover ranks the open workshops around the customer's default address.
// Domain errors are returned as is; anything unexpected becomes ErrSearchFailed.
func (srv *discoveryService) Discover(ctx context.Context, username string, input *usecase.DiscoveryInput) (*usecase.DiscoveryOutput, error) {
	output, err := srv.discover(ctx, username, input)
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}

		srv.log(ctx).Error("Workshop search failed",
			slog.String("username", username),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrSearchFailed.WrapMessage(err.Error())
	}

	return output, nil
}

func (srv *discoveryService) discover(ctx context.Context, username string, input *usecase.DiscoveryInput) (*usecase.DiscoveryOutput, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("search request is required")
	}

	origin, err := srv.addressBook.GetDefaultAddress(ctx, username)
	if err != nil {
		return nil, err
	}
	if !origin.HasCoordinate() {
		return nil, domainerrors.ErrAddressRequired.WithDetails("default address has no coordinate")
	}

	vehicleType, err := parseVehicleType(input.VehicleType)
	if err != nil {
		return nil, err
	}
	serviceType, err := parseServiceType(input.ServiceType)
	if err != nil {
		return nil, err
	}

	maxDistance, err := srv.maxDistance(input.MaxDistanceKm)
	if err != nil {
		return nil, err
	}

	rule, err := findPricingRule(ctx, srv.pricingRepo, vehicleType, serviceType)
	if err != nil {
		return nil, err
	}

	workshops, err := srv.accountRepo.FindAllWorkshops(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load workshops")
	}

	criteria := searchCriteria{
		origin:      *origin.Coordinate,
		vehicleType: vehicleType,
		serviceType: serviceType,
		maxDistance: maxDistance,
	}
	results := srv.match(ctx, workshops, criteria, rule)

	srv.log(ctx).Info("Workshop search completed",
		slog.String("vehicle_type", vehicleType.String()),
		slog.String("service_type", serviceType.String()),
		slog.Float64("max_distance_km", maxDistance),
		slog.Int("scanned", len(workshops)),
		slog.Int("matched", len(results)),
	)

	return &usecase.DiscoveryOutput{
		Origin:        origin,
		MaxDistanceKm: maxDistance,
		Results:       results,
	}, nil
}

// maxDistance applies the configured default and upper bound to the requested radius.
func (srv *discoveryService) maxDistance(requested *float64) (float64, error) {
	if requested == nil {
		return srv.config.DefaultMaxDistanceKm, nil
	}

	distance := *requested
	if math.IsNaN(distance) || distance <= 0 {
		return 0, domainerrors.ErrInvalidDistance.WithDetails("max_distance_km must be greater than zero")
	}
	if srv.config.MaxDistanceKm > 0 && distance > srv.config.MaxDistanceKm {
		return 0, domainerrors.ErrInvalidDistance.WithDetails("max_distance_km exceeds the allowed maximum")
	}

	return distance, nil
}

type searchCriteria struct {
	origin      entity.Coordinate
	vehicleType entity.VehicleType
	serviceType entity.ServiceType
	maxDistance float64
}

// match filters the workshop population and returns priced results ordered by distance.
func (srv *discoveryService) match(ctx context.Context, workshops []*entity.Workshop, criteria searchCriteria, rule *entity.PricingRule) []*entity.DiscoveryResult {
	logger := srv.log(ctx)
	results := make([]*entity.DiscoveryResult, 0, len(workshops))

	for _, workshop := range workshops {
		if workshop.Status != entity.WorkshopStatusOpen {
			continue
		}

		coord, ok := workshop.Coordinate()
		if !ok {
			logger.Debug("Skipping workshop without coordinate", slog.String("workshop_id", workshop.ID.String()))

			continue
		}

		if !workshop.SupportsVehicle(criteria.vehicleType) || !workshop.Services.Contains(criteria.serviceType) {
			continue
		}

		distance := criteria.origin.DistanceKm(coord)
		if distance > criteria.maxDistance {
			continue
		}

		results = append(results, &entity.DiscoveryResult{
			WorkshopID:       workshop.ID,
			DisplayName:      resultDisplayName(workshop),
			DistanceKm:       distance,
			VehicleType:      *workshop.VehicleType,
			ServiceType:      criteria.serviceType,
			FormattedAddress: workshop.Address.FormattedAddress,
			Coordinate:       coord,
			Price:            rule.PriceFor(workshop.IsPremium),
			PremiumApplied:   workshop.IsPremium,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].DistanceKm < results[j].DistanceKm
	})

	return results
}

// resultDisplayName is the workshop name, or its account ID when the name is blank.
func resultDisplayName(workshop *entity.Workshop) string {
	if strings.TrimSpace(workshop.Name) != "" {
		return workshop.Name
	}

	return workshop.ID.String()
}

// ListAvailableServiceTypes returns the distinct services with a rule for the
// vehicle type or for BOTH, in the order the rules are returned.
func (srv *discoveryService) ListAvailableServiceTypes(ctx context.Context, vehicleType string) ([]entity.ServiceType, error) {
	vt, err := parseVehicleType(vehicleType)
	if err != nil {
		return nil, err
	}

	rules, err := srv.pricingRepo.FindPricingRulesByVehicleTypeIn(ctx, entity.SearchVehicleTypes(vt))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pricing rules")
	}

	seen := make(map[entity.ServiceType]struct{}, len(rules))
	services := make([]entity.ServiceType, 0, len(rules))
	for _, rule := range rules {
		if _, ok := seen[rule.ServiceType]; ok {
			continue
		}
		seen[rule.ServiceType] = struct{}{}
		services = append(services, rule.ServiceType)
	}

	return services, nil
}
