package impl

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"pitstop/internal/domain/entity"
	domainerrors "pitstop/internal/domain/errors"
	"pitstop/internal/domain/repository"
	mockRepo "pitstop/internal/mocks/repository"
	mockUsecase "pitstop/internal/mocks/usecase"
	"pitstop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testCustomer = "alice"

type discoveryFixture struct {
	accountRepo *mockRepo.MockAccountRepository
	pricingRepo *mockRepo.MockPricingRuleRepository
	addressBook *mockUsecase.MockAddressBookUsecase
	service     usecase.DiscoveryUsecase
}

func newDiscoveryFixture(t *testing.T) *discoveryFixture {
	t.Helper()

	f := &discoveryFixture{
		accountRepo: mockRepo.NewMockAccountRepository(t),
		pricingRepo: mockRepo.NewMockPricingRuleRepository(t),
		addressBook: mockUsecase.NewMockAddressBookUsecase(t),
	}
	f.service = NewDiscoveryService(DiscoveryServiceParams{
		AccountRepo: f.accountRepo,
		PricingRepo: f.pricingRepo,
		AddressBook: f.addressBook,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	return f
}

func customerOrigin() *entity.Address {
	return &entity.Address{
		ID:               uuid.New(),
		FormattedAddress: "Salt Lake, Kolkata",
		Coordinate:       &entity.Coordinate{Latitude: 22.60, Longitude: 88.40},
		IsDefault:        true,
	}
}

func ruleFor(vehicle entity.VehicleType, service entity.ServiceType) *entity.PricingRule {
	return &entity.PricingRule{
		ID:            uuid.New(),
		VehicleType:   vehicle,
		ServiceType:   service,
		BaseAmount:    decimal.NewFromInt(100),
		PremiumAmount: decimal.NewFromInt(50),
	}
}

func (f *discoveryFixture) expectSearch(vehicle entity.VehicleType, service entity.ServiceType, workshops []*entity.Workshop) {
	f.addressBook.EXPECT().GetDefaultAddress(mock.Anything, testCustomer).Return(customerOrigin(), nil)
	f.pricingRepo.EXPECT().FindPricingRule(mock.Anything, vehicle, service).Return(ruleFor(vehicle, service), nil)
	f.accountRepo.EXPECT().FindAllWorkshops(mock.Anything).Return(workshops, nil)
}

func TestDiscoveryService_Discover_NearbyWorkshop(t *testing.T) {
	f := newDiscoveryFixture(t)
	workshop := newTestWorkshop("workshop1", &entity.Coordinate{Latitude: 22.602, Longitude: 88.402},
		entity.VehicleTypeTwoWheeler, entity.ServiceTypeOilChange)
	f.expectSearch(entity.VehicleTypeTwoWheeler, entity.ServiceTypeOilChange, []*entity.Workshop{workshop})

	output, err := f.service.Discover(context.Background(), testCustomer, &usecase.DiscoveryInput{
		VehicleType:   "TWO_WHEELER",
		ServiceType:   "OIL_CHANGE",
		MaxDistanceKm: ptr(5.0),
	})
	require.NoError(t, err)
	require.Len(t, output.Results, 1)

	result := output.Results[0]
	assert.Equal(t, workshop.ID, result.WorkshopID)
	assert.Equal(t, "workshop1", result.DisplayName)
	assert.InDelta(t, 0.31, result.DistanceKm, 0.05)
	assert.True(t, result.Price.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, "workshop1 street", result.FormattedAddress)
	assert.InDelta(t, 5.0, output.MaxDistanceKm, 1e-9)
}

func TestDiscoveryService_Discover_ExcludesDistantWorkshop(t *testing.T) {
	f := newDiscoveryFixture(t)
	workshop := newTestWorkshop("workshop3", &entity.Coordinate{Latitude: 22.80, Longitude: 88.36},
		entity.VehicleTypeTwoWheeler, entity.ServiceTypeOilChange)
	f.expectSearch(entity.VehicleTypeTwoWheeler, entity.ServiceTypeOilChange, []*entity.Workshop{workshop})

	output, err := f.service.Discover(context.Background(), testCustomer, &usecase.DiscoveryInput{
		VehicleType:   "TWO_WHEELER",
		ServiceType:   "OIL_CHANGE",
		MaxDistanceKm: ptr(1.0),
	})
	require.NoError(t, err)
	assert.Empty(t, output.Results)
}

func TestDiscoveryService_Discover_NoWorkshopOffersService(t *testing.T) {
	f := newDiscoveryFixture(t)
	workshop := newTestWorkshop("workshop1", &entity.Coordinate{Latitude: 22.602, Longitude: 88.402},
		entity.VehicleTypeTwoWheeler, entity.ServiceTypeOilChange)
	f.expectSearch(entity.VehicleTypeTwoWheeler, entity.ServiceTypeACRepair, []*entity.Workshop{workshop})

	output, err := f.service.Discover(context.Background(), testCustomer, &usecase.DiscoveryInput{
		VehicleType: "TWO_WHEELER",
		ServiceType: "AC_REPAIR",
	})
	require.NoError(t, err)
	assert.NotNil(t, output.Results)
	assert.Empty(t, output.Results)
}

func TestDiscoveryService_Discover_PremiumAndDisplayName(t *testing.T) {
	f := newDiscoveryFixture(t)
	workshop := newTestWorkshop("", &entity.Coordinate{Latitude: 22.601, Longitude: 88.401},
		entity.VehicleTypeBoth, entity.ServiceTypeOilChange)
	workshop.IsPremium = true
	f.expectSearch(entity.VehicleTypeTwoWheeler, entity.ServiceTypeOilChange, []*entity.Workshop{workshop})

	output, err := f.service.Discover(context.Background(), testCustomer, &usecase.DiscoveryInput{
		VehicleType: "two_wheeler",
		ServiceType: "oil_change",
	})
	require.NoError(t, err)
	require.Len(t, output.Results, 1)
	assert.Equal(t, workshop.ID.String(), output.Results[0].DisplayName)
	assert.Equal(t, entity.VehicleTypeBoth, output.Results[0].VehicleType)
	assert.True(t, output.Results[0].PremiumApplied)
	assert.True(t, output.Results[0].Price.Equal(decimal.NewFromInt(150)))
}

func TestDiscoveryService_Discover_StableOrdering(t *testing.T) {
	f := newDiscoveryFixture(t)
	coord := func(lat float64) *entity.Coordinate { return &entity.Coordinate{Latitude: lat, Longitude: 88.40} }

	far := newTestWorkshop("far", coord(22.62), entity.VehicleTypeTwoWheeler, entity.ServiceTypeOilChange)
	tieA := newTestWorkshop("tie-a", coord(22.61), entity.VehicleTypeTwoWheeler, entity.ServiceTypeOilChange)
	tieB := newTestWorkshop("tie-b", coord(22.61), entity.VehicleTypeBoth, entity.ServiceTypeOilChange)
	near := newTestWorkshop("near", coord(22.601), entity.VehicleTypeTwoWheeler, entity.ServiceTypeOilChange)
	f.expectSearch(entity.VehicleTypeTwoWheeler, entity.ServiceTypeOilChange, []*entity.Workshop{far, tieA, tieB, near})

	output, err := f.service.Discover(context.Background(), testCustomer, &usecase.DiscoveryInput{
		VehicleType: "TWO_WHEELER",
		ServiceType: "OIL_CHANGE",
	})
	require.NoError(t, err)

	names := make([]string, 0, len(output.Results))
	for _, result := range output.Results {
		names = append(names, result.DisplayName)
	}
	assert.Equal(t, []string{"near", "tie-a", "tie-b", "far"}, names)
}

// TestDiscoveryService_Discover_FilterCorrectness checks a generated population:
// every returned workshop passes all filters, every skipped one fails at least one.
func TestDiscoveryService_Discover_FilterCorrectness(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	vehicles := []entity.VehicleType{entity.VehicleTypeTwoWheeler, entity.VehicleTypeFourWheeler, entity.VehicleTypeBoth}
	services := []entity.ServiceType{entity.ServiceTypeOilChange, entity.ServiceTypeBrakeRepair, entity.ServiceTypeACRepair}

	workshops := make([]*entity.Workshop, 0, 200)
	for i := range 200 {
		var coord *entity.Coordinate
		if rng.Intn(10) > 0 {
			coord = &entity.Coordinate{
				Latitude:  22.60 + (rng.Float64()-0.5)*0.2,
				Longitude: 88.40 + (rng.Float64()-0.5)*0.2,
			}
		}
		workshop := newTestWorkshop(uuid.NewString(), coord, vehicles[rng.Intn(len(vehicles))], services[rng.Intn(len(services))])
		if i%7 == 0 {
			workshop.Status = entity.WorkshopStatusClosed
		}
		if i%11 == 0 {
			workshop.VehicleType = nil
		}
		workshops = append(workshops, workshop)
	}

	f := newDiscoveryFixture(t)
	f.expectSearch(entity.VehicleTypeTwoWheeler, entity.ServiceTypeOilChange, workshops)

	const maxDistance = 4.0
	output, err := f.service.Discover(context.Background(), testCustomer, &usecase.DiscoveryInput{
		VehicleType:   "TWO_WHEELER",
		ServiceType:   "OIL_CHANGE",
		MaxDistanceKm: ptr(maxDistance),
	})
	require.NoError(t, err)

	origin := entity.Coordinate{Latitude: 22.60, Longitude: 88.40}
	matches := func(w *entity.Workshop) bool {
		coord, ok := w.Coordinate()

		return w.Status == entity.WorkshopStatusOpen && ok &&
			w.SupportsVehicle(entity.VehicleTypeTwoWheeler) &&
			w.Services.Contains(entity.ServiceTypeOilChange) &&
			origin.DistanceKm(coord) <= maxDistance
	}

	returned := make(map[uuid.UUID]bool, len(output.Results))
	previous := math.Inf(-1)
	for _, result := range output.Results {
		returned[result.WorkshopID] = true
		assert.GreaterOrEqual(t, result.DistanceKm, previous)
		previous = result.DistanceKm
	}

	for _, w := range workshops {
		assert.Equal(t, matches(w), returned[w.ID], "workshop %s", w.Username)
	}
}

func TestDiscoveryService_Discover_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   *usecase.DiscoveryInput
		setup   func(f *discoveryFixture)
		wantErr error
	}{
		{
			name:  "no default address",
			input: &usecase.DiscoveryInput{VehicleType: "TWO_WHEELER", ServiceType: "OIL_CHANGE"},
			setup: func(f *discoveryFixture) {
				f.addressBook.EXPECT().GetDefaultAddress(mock.Anything, testCustomer).Return(nil, domainerrors.ErrAddressRequired)
			},
			wantErr: domainerrors.ErrAddressRequired,
		},
		{
			name:  "invalid vehicle type",
			input: &usecase.DiscoveryInput{VehicleType: "SPACESHIP", ServiceType: "OIL_CHANGE"},
			setup: func(f *discoveryFixture) {
				f.addressBook.EXPECT().GetDefaultAddress(mock.Anything, testCustomer).Return(customerOrigin(), nil)
			},
			wantErr: domainerrors.ErrInvalidVehicleType,
		},
		{
			name:  "zero distance",
			input: &usecase.DiscoveryInput{VehicleType: "TWO_WHEELER", ServiceType: "OIL_CHANGE", MaxDistanceKm: ptr(0.0)},
			setup: func(f *discoveryFixture) {
				f.addressBook.EXPECT().GetDefaultAddress(mock.Anything, testCustomer).Return(customerOrigin(), nil)
			},
			wantErr: domainerrors.ErrInvalidDistance,
		},
		{
			name:  "distance above maximum",
			input: &usecase.DiscoveryInput{VehicleType: "TWO_WHEELER", ServiceType: "OIL_CHANGE", MaxDistanceKm: ptr(500.0)},
			setup: func(f *discoveryFixture) {
				f.addressBook.EXPECT().GetDefaultAddress(mock.Anything, testCustomer).Return(customerOrigin(), nil)
			},
			wantErr: domainerrors.ErrInvalidDistance,
		},
		{
			name:  "missing rule fails before scanning",
			input: &usecase.DiscoveryInput{VehicleType: "TWO_WHEELER", ServiceType: "OIL_CHANGE"},
			setup: func(f *discoveryFixture) {
				f.addressBook.EXPECT().GetDefaultAddress(mock.Anything, testCustomer).Return(customerOrigin(), nil)
				f.pricingRepo.EXPECT().FindPricingRule(mock.Anything, mock.Anything, mock.Anything).
					Return(nil, repository.ErrPricingRuleNotFound)
			},
			wantErr: domainerrors.ErrPricingRuleNotFound,
		},
		{
			name:  "store failure is wrapped",
			input: &usecase.DiscoveryInput{VehicleType: "TWO_WHEELER", ServiceType: "OIL_CHANGE"},
			setup: func(f *discoveryFixture) {
				f.addressBook.EXPECT().GetDefaultAddress(mock.Anything, testCustomer).Return(customerOrigin(), nil)
				f.pricingRepo.EXPECT().FindPricingRule(mock.Anything, mock.Anything, mock.Anything).
					Return(ruleFor(entity.VehicleTypeTwoWheeler, entity.ServiceTypeOilChange), nil)
				f.accountRepo.EXPECT().FindAllWorkshops(mock.Anything).Return(nil, errors.New("connection reset"))
			},
			wantErr: domainerrors.ErrSearchFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newDiscoveryFixture(t)
			tt.setup(f)

			output, err := f.service.Discover(context.Background(), testCustomer, tt.input)
			require.Error(t, err)
			assert.Nil(t, output)
			assert.True(t, errors.Is(err, tt.wantErr), err.Error())
		})
	}
}

func TestDiscoveryService_ListAvailableServiceTypes(t *testing.T) {
	f := newDiscoveryFixture(t)
	ctx := context.Background()

	f.pricingRepo.EXPECT().
		FindPricingRulesByVehicleTypeIn(ctx, []entity.VehicleType{entity.VehicleTypeBoth, entity.VehicleTypeFourWheeler}).
		Return([]*entity.PricingRule{
			ruleFor(entity.VehicleTypeBoth, entity.ServiceTypeGeneralService),
			ruleFor(entity.VehicleTypeFourWheeler, entity.ServiceTypeACRepair),
			ruleFor(entity.VehicleTypeFourWheeler, entity.ServiceTypeGeneralService),
		}, nil)

	services, err := f.service.ListAvailableServiceTypes(ctx, "four_wheeler")
	require.NoError(t, err)
	assert.Equal(t, []entity.ServiceType{entity.ServiceTypeGeneralService, entity.ServiceTypeACRepair}, services)

	_, err = f.service.ListAvailableServiceTypes(ctx, "tractor")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidVehicleType))
}
