package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	VehicleType string   `json:"vehicle_type" validate:"required,vehicle_type"`
	ServiceType string   `json:"service_type" validate:"required,service_type"`
	Latitude    *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()
	lat := 95.0

	tests := []struct {
		name     string
		input    sample
		wantErrs []string
	}{
		{name: "valid, case-insensitive", input: sample{VehicleType: "two_wheeler", ServiceType: "oil_change"}},
		{name: "missing", input: sample{}, wantErrs: []string{"VehicleType is required", "ServiceType is required"}},
		{name: "unknown enums", input: sample{VehicleType: "TRUCK", ServiceType: "WASH"}, wantErrs: []string{"TWO_WHEELER, FOUR_WHEELER, BOTH", "not a known service type"}},
		{name: "latitude out of range", input: sample{VehicleType: "BOTH", ServiceType: "AC_REPAIR", Latitude: &lat}, wantErrs: []string{"Latitude must be at most 90"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.input)
			if len(tt.wantErrs) == 0 {
				assert.NoError(t, err)

				return
			}
			for _, want := range tt.wantErrs {
				assert.ErrorContains(t, err, want)
			}
		})
	}
}
