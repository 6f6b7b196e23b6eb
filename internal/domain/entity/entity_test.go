package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDefaultAddress(t *testing.T) {
	first := &Address{ID: uuid.New(), FormattedAddress: "first"}
	second := &Address{ID: uuid.New(), FormattedAddress: "second"}
	third := &Address{ID: uuid.New(), FormattedAddress: "third"}

	t.Run("empty collection", func(t *testing.T) {
		assert.Nil(t, DefaultAddress(nil))
	})

	t.Run("single flagged entry wins", func(t *testing.T) {
		second.IsDefault = true
		defer func() { second.IsDefault = false }()

		assert.Same(t, second, DefaultAddress([]*Address{first, second, third}))
	})

	t.Run("no flagged entry falls back to first", func(t *testing.T) {
		assert.Same(t, first, DefaultAddress([]*Address{first, second, third}))
	})

	t.Run("several flagged entries fall back to first", func(t *testing.T) {
		second.IsDefault = true
		third.IsDefault = true
		defer func() {
			second.IsDefault = false
			third.IsDefault = false
		}()

		assert.Same(t, first, DefaultAddress([]*Address{first, second, third}))
		assert.Equal(t, 2, CountDefaults([]*Address{first, second, third}))
	})
}

func TestSameText(t *testing.T) {
	assert.True(t, SameText("12 Park Street, Kolkata", "12 PARK STREET, kolkata"))
	assert.True(t, SameText(" Salt Lake ", "salt lake"))
	assert.False(t, SameText("Salt Lake", "Salt Lake Sector V"))
}

func TestParseVehicleType(t *testing.T) {
	tests := []struct {
		input string
		want  VehicleType
		ok    bool
	}{
		{"two_wheeler", VehicleTypeTwoWheeler, true},
		{"FOUR_WHEELER", VehicleTypeFourWheeler, true},
		{" Both ", VehicleTypeBoth, true},
		{"truck", VehicleType("TRUCK"), false},
		{"", VehicleType(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseVehicleType(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVehicleType_Accepts(t *testing.T) {
	assert.True(t, VehicleTypeTwoWheeler.Accepts(VehicleTypeTwoWheeler))
	assert.True(t, VehicleTypeBoth.Accepts(VehicleTypeTwoWheeler))
	assert.True(t, VehicleTypeBoth.Accepts(VehicleTypeFourWheeler))
	assert.False(t, VehicleTypeFourWheeler.Accepts(VehicleTypeTwoWheeler))
	assert.False(t, VehicleTypeTwoWheeler.Accepts(VehicleTypeBoth))
}

func TestSearchVehicleTypes(t *testing.T) {
	assert.Equal(t, []VehicleType{VehicleTypeBoth, VehicleTypeTwoWheeler}, SearchVehicleTypes(VehicleTypeTwoWheeler))
	assert.Equal(t, []VehicleType{VehicleTypeBoth}, SearchVehicleTypes(VehicleTypeBoth))
}

func TestServiceTypes(t *testing.T) {
	parsed, ok := ParseServiceType("oil_change")
	assert.True(t, ok)
	assert.Equal(t, ServiceTypeOilChange, parsed)

	_, ok = ParseServiceType("paint_job")
	assert.False(t, ok)

	services := ServiceTypesFromStrings([]string{"OIL_CHANGE", "bogus", "AC_REPAIR", "OIL_CHANGE"})
	assert.Equal(t, ServiceTypes{ServiceTypeOilChange, ServiceTypeACRepair}, services)
	assert.True(t, services.Contains(ServiceTypeACRepair))
	assert.Equal(t, ServiceTypes{ServiceTypeACRepair}, services.Without(ServiceTypeOilChange))
	assert.Equal(t, []string{"OIL_CHANGE", "AC_REPAIR"}, services.ToStrings())
}

func TestWorkshop_VehicleSupport(t *testing.T) {
	both := VehicleTypeBoth
	two := VehicleTypeTwoWheeler

	unset := &Workshop{}
	assert.False(t, unset.SupportsVehicle(VehicleTypeTwoWheeler))
	assert.False(t, unset.HasVehicleType(VehicleTypeTwoWheeler))

	bothShop := &Workshop{VehicleType: &both}
	assert.True(t, bothShop.SupportsVehicle(VehicleTypeTwoWheeler))
	assert.False(t, bothShop.HasVehicleType(VehicleTypeTwoWheeler))

	twoShop := &Workshop{VehicleType: &two}
	assert.True(t, twoShop.HasVehicleType(VehicleTypeTwoWheeler))
}

func TestAccount_DisplayName(t *testing.T) {
	assert.Equal(t, "Speedy Motors", (&Account{Username: "speedy", Name: "Speedy Motors"}).DisplayName())
	assert.Equal(t, "speedy", (&Account{Username: "speedy", Name: "   "}).DisplayName())
}

func TestPricingRule_PriceFor(t *testing.T) {
	rule := &PricingRule{
		BaseAmount:    decimal.NewFromInt(100),
		PremiumAmount: decimal.NewFromInt(50),
	}

	assert.True(t, decimal.NewFromInt(100).Equal(rule.PriceFor(false)))
	assert.True(t, decimal.NewFromInt(150).Equal(rule.PriceFor(true)))
}
