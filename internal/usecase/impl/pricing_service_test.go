package impl

import (
	"context"
	"testing"

	"pitstop/internal/domain/entity"
	domainerrors "pitstop/internal/domain/errors"
	"pitstop/internal/domain/repository"
	mockRepo "pitstop/internal/mocks/repository"
	"pitstop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pricingFixture struct {
	pricingRepo *mockRepo.MockPricingRuleRepository
	accountRepo *mockRepo.MockAccountRepository
	service     usecase.PricingUsecase
}

func newPricingFixture(t *testing.T) *pricingFixture {
	t.Helper()

	f := &pricingFixture{
		pricingRepo: mockRepo.NewMockPricingRuleRepository(t),
		accountRepo: mockRepo.NewMockAccountRepository(t),
	}
	f.service = NewPricingService(PricingServiceParams{
		PricingRepo: f.pricingRepo,
		AccountRepo: f.accountRepo,
		Logger:      newDiscardLogger(),
	})

	return f
}

func oilChangeRule() *entity.PricingRule {
	return &entity.PricingRule{
		ID:            uuid.New(),
		VehicleType:   entity.VehicleTypeTwoWheeler,
		ServiceType:   entity.ServiceTypeOilChange,
		BaseAmount:    decimal.RequireFromString("100.00"),
		PremiumAmount: decimal.RequireFromString("50.00"),
	}
}

func TestPricingService_Quote_Estimate(t *testing.T) {
	f := newPricingFixture(t)
	ctx := context.Background()

	f.pricingRepo.EXPECT().
		FindPricingRule(ctx, entity.VehicleTypeTwoWheeler, entity.ServiceTypeOilChange).
		Return(oilChangeRule(), nil)

	quote, err := f.service.Quote(ctx, &usecase.QuoteInput{VehicleType: "two_wheeler", ServiceType: "oil_change"})
	require.NoError(t, err)
	assert.True(t, quote.Estimate)
	assert.False(t, quote.PremiumApplied)
	assert.Nil(t, quote.WorkshopID)
	assert.True(t, quote.FinalAmount.Equal(decimal.RequireFromString("100.00")))
	assert.Equal(t, "Estimated base price", quote.Message)
}

func TestPricingService_Quote_Workshop(t *testing.T) {
	tests := []struct {
		name        string
		premium     bool
		wantFinal   string
		wantMessage string
	}{
		{name: "premium workshop", premium: true, wantFinal: "150.00", wantMessage: "Premium workshop pricing applied"},
		{name: "standard workshop", premium: false, wantFinal: "100.00", wantMessage: "Standard workshop pricing applied"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPricingFixture(t)
			ctx := context.Background()

			workshop := newTestWorkshop("w1", nil, entity.VehicleTypeTwoWheeler, entity.ServiceTypeOilChange)
			workshop.IsPremium = tt.premium

			f.pricingRepo.EXPECT().FindPricingRule(ctx, entity.VehicleTypeTwoWheeler, entity.ServiceTypeOilChange).Return(oilChangeRule(), nil)
			f.accountRepo.EXPECT().FindWorkshopByID(ctx, workshop.ID).Return(workshop, nil)

			quote, err := f.service.Quote(ctx, &usecase.QuoteInput{
				VehicleType: "TWO_WHEELER",
				ServiceType: "OIL_CHANGE",
				WorkshopID:  &workshop.ID,
			})
			require.NoError(t, err)
			assert.False(t, quote.Estimate)
			assert.Equal(t, tt.premium, quote.PremiumApplied)
			assert.True(t, quote.FinalAmount.Equal(decimal.RequireFromString(tt.wantFinal)), quote.FinalAmount.String())
			assert.Equal(t, tt.wantMessage, quote.Message)
			require.NotNil(t, quote.WorkshopID)
			assert.Equal(t, workshop.ID, *quote.WorkshopID)
		})
	}
}

func TestPricingService_Quote_Idempotent(t *testing.T) {
	f := newPricingFixture(t)
	ctx := context.Background()

	workshop := newTestWorkshop("w1", nil, entity.VehicleTypeTwoWheeler, entity.ServiceTypeOilChange)
	workshop.IsPremium = true
	rule := oilChangeRule()

	f.pricingRepo.EXPECT().FindPricingRule(ctx, entity.VehicleTypeTwoWheeler, entity.ServiceTypeOilChange).Return(rule, nil).Times(2)
	f.accountRepo.EXPECT().FindWorkshopByID(ctx, workshop.ID).Return(workshop, nil).Times(2)

	input := &usecase.QuoteInput{VehicleType: "TWO_WHEELER", ServiceType: "OIL_CHANGE", WorkshopID: &workshop.ID}
	first, err := f.service.Quote(ctx, input)
	require.NoError(t, err)
	second, err := f.service.Quote(ctx, input)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPricingService_Quote_Errors(t *testing.T) {
	bothWorkshop := newTestWorkshop("both", nil, entity.VehicleTypeBoth, entity.ServiceTypeOilChange)
	noServiceWorkshop := newTestWorkshop("tyres", nil, entity.VehicleTypeTwoWheeler, entity.ServiceTypeTyreReplacement)
	unknownID := uuid.New()

	tests := []struct {
		name    string
		input   *usecase.QuoteInput
		setup   func(f *pricingFixture)
		wantErr error
	}{
		{
			name:    "unknown vehicle type",
			input:   &usecase.QuoteInput{VehicleType: "TRUCK", ServiceType: "OIL_CHANGE"},
			wantErr: domainerrors.ErrInvalidVehicleType,
		},
		{
			name:    "unknown service type",
			input:   &usecase.QuoteInput{VehicleType: "TWO_WHEELER", ServiceType: "WASH"},
			wantErr: domainerrors.ErrInvalidServiceType,
		},
		{
			name:  "no rule",
			input: &usecase.QuoteInput{VehicleType: "TWO_WHEELER", ServiceType: "OIL_CHANGE"},
			setup: func(f *pricingFixture) {
				f.pricingRepo.EXPECT().FindPricingRule(mock.Anything, entity.VehicleTypeTwoWheeler, entity.ServiceTypeOilChange).
					Return(nil, repository.ErrPricingRuleNotFound)
			},
			wantErr: domainerrors.ErrPricingRuleNotFound,
		},
		{
			name:  "unknown workshop",
			input: &usecase.QuoteInput{VehicleType: "TWO_WHEELER", ServiceType: "OIL_CHANGE", WorkshopID: &unknownID},
			setup: func(f *pricingFixture) {
				f.pricingRepo.EXPECT().FindPricingRule(mock.Anything, mock.Anything, mock.Anything).Return(oilChangeRule(), nil)
				f.accountRepo.EXPECT().FindWorkshopByID(mock.Anything, unknownID).Return(nil, repository.ErrAccountNotFound)
			},
			wantErr: domainerrors.ErrWorkshopNotFound,
		},
		{
			name:  "workshop without the service",
			input: &usecase.QuoteInput{VehicleType: "TWO_WHEELER", ServiceType: "OIL_CHANGE", WorkshopID: &noServiceWorkshop.ID},
			setup: func(f *pricingFixture) {
				f.pricingRepo.EXPECT().FindPricingRule(mock.Anything, mock.Anything, mock.Anything).Return(oilChangeRule(), nil)
				f.accountRepo.EXPECT().FindWorkshopByID(mock.Anything, noServiceWorkshop.ID).Return(noServiceWorkshop, nil)
			},
			wantErr: domainerrors.ErrServiceUnsupported,
		},
		{
			name:  "BOTH workshop is not an exact vehicle match",
			input: &usecase.QuoteInput{VehicleType: "TWO_WHEELER", ServiceType: "OIL_CHANGE", WorkshopID: &bothWorkshop.ID},
			setup: func(f *pricingFixture) {
				f.pricingRepo.EXPECT().FindPricingRule(mock.Anything, mock.Anything, mock.Anything).Return(oilChangeRule(), nil)
				f.accountRepo.EXPECT().FindWorkshopByID(mock.Anything, bothWorkshop.ID).Return(bothWorkshop, nil)
			},
			wantErr: domainerrors.ErrVehicleUnsupported,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPricingFixture(t)
			if tt.setup != nil {
				tt.setup(f)
			}

			quote, err := f.service.Quote(context.Background(), tt.input)
			require.Error(t, err)
			assert.Nil(t, quote)
			assert.True(t, errors.Is(err, tt.wantErr), err.Error())
		})
	}
}

func TestPricingService_Quote_NoRuleMessage(t *testing.T) {
	f := newPricingFixture(t)
	f.pricingRepo.EXPECT().FindPricingRule(mock.Anything, entity.VehicleTypeFourWheeler, entity.ServiceTypeACRepair).
		Return(nil, repository.ErrPricingRuleNotFound)

	_, err := f.service.Quote(context.Background(), &usecase.QuoteInput{VehicleType: "FOUR_WHEELER", ServiceType: "AC_REPAIR"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pricing rule not defined for vehicle type FOUR_WHEELER and service type AC_REPAIR")
}

func TestPricingService_CreatePricingRule(t *testing.T) {
	f := newPricingFixture(t)
	ctx := context.Background()

	f.pricingRepo.EXPECT().
		CreatePricingRule(ctx, mock.MatchedBy(func(rule *entity.PricingRule) bool {
			return rule.VehicleType == entity.VehicleTypeBoth &&
				rule.ServiceType == entity.ServiceTypeBrakeRepair &&
				rule.ID != uuid.Nil
		})).
		Return(nil)

	rule, err := f.service.CreatePricingRule(ctx, &usecase.PricingRuleInput{
		VehicleType:   "both",
		ServiceType:   "brake_repair",
		BaseAmount:    decimal.NewFromInt(300),
		PremiumAmount: decimal.NewFromInt(75),
	})
	require.NoError(t, err)
	assert.True(t, rule.PriceFor(true).Equal(decimal.NewFromInt(375)))
}

func TestPricingService_CreatePricingRule_Errors(t *testing.T) {
	t.Run("negative amount", func(t *testing.T) {
		f := newPricingFixture(t)

		_, err := f.service.CreatePricingRule(context.Background(), &usecase.PricingRuleInput{
			VehicleType:   "BOTH",
			ServiceType:   "OIL_CHANGE",
			BaseAmount:    decimal.NewFromInt(-1),
			PremiumAmount: decimal.Zero,
		})
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("conflict", func(t *testing.T) {
		f := newPricingFixture(t)
		f.pricingRepo.EXPECT().CreatePricingRule(mock.Anything, mock.Anything).Return(repository.ErrPricingRuleConflict)

		_, err := f.service.CreatePricingRule(context.Background(), &usecase.PricingRuleInput{
			VehicleType: "BOTH",
			ServiceType: "OIL_CHANGE",
			BaseAmount:  decimal.NewFromInt(10),
		})
		assert.True(t, errors.Is(err, domainerrors.ErrPricingRuleExists))
	})
}

func TestPricingService_UpdatePricingRule(t *testing.T) {
	f := newPricingFixture(t)
	ctx := context.Background()
	rule := oilChangeRule()

	f.pricingRepo.EXPECT().FindPricingRuleByID(ctx, rule.ID).Return(rule, nil)
	f.pricingRepo.EXPECT().UpdatePricingRule(ctx, rule).Return(nil)

	updated, err := f.service.UpdatePricingRule(ctx, rule.ID, &usecase.PricingAmountsInput{
		BaseAmount:    decimal.NewFromInt(120),
		PremiumAmount: decimal.NewFromInt(30),
	})
	require.NoError(t, err)
	assert.True(t, updated.BaseAmount.Equal(decimal.NewFromInt(120)))
	assert.True(t, updated.PremiumAmount.Equal(decimal.NewFromInt(30)))
}

func TestPricingService_UpdatePricingRule_NotFound(t *testing.T) {
	f := newPricingFixture(t)
	id := uuid.New()

	f.pricingRepo.EXPECT().FindPricingRuleByID(mock.Anything, id).Return(nil, repository.ErrPricingRuleNotFound)

	_, err := f.service.UpdatePricingRule(context.Background(), id, &usecase.PricingAmountsInput{})
	assert.True(t, errors.Is(err, domainerrors.ErrPricingRuleNotFound))
}

func TestPricingService_DeletePricingRule(t *testing.T) {
	f := newPricingFixture(t)
	id := uuid.New()

	f.pricingRepo.EXPECT().DeletePricingRule(mock.Anything, id).Return(repository.ErrPricingRuleNotFound).Once()
	err := f.service.DeletePricingRule(context.Background(), id)
	assert.True(t, errors.Is(err, domainerrors.ErrPricingRuleNotFound))

	f.pricingRepo.EXPECT().DeletePricingRule(mock.Anything, id).Return(nil).Once()
	assert.NoError(t, f.service.DeletePricingRule(context.Background(), id))
}

func TestPricingService_GetPricingRule(t *testing.T) {
	f := newPricingFixture(t)
	rule := oilChangeRule()

	f.pricingRepo.EXPECT().FindPricingRule(mock.Anything, entity.VehicleTypeTwoWheeler, entity.ServiceTypeOilChange).Return(rule, nil)

	got, err := f.service.GetPricingRule(context.Background(), "two_wheeler", "oil_change")
	require.NoError(t, err)
	assert.Equal(t, rule, got)

	_, err = f.service.GetPricingRule(context.Background(), "bus", "oil_change")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidVehicleType))
}
