// Package validator adapts go-playground/validator to echo and registers the
// enum checks used by request bodies.
package validator

import (
	"strings"

	"pitstop/internal/domain/entity"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Custom tags.
const (
	TagVehicleType = "vehicle_type"
	TagServiceType = "service_type"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator with the custom tags registered.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// Registration only fails on an empty tag or nil func.
	_ = validate.RegisterValidation(TagVehicleType, func(fl validator.FieldLevel) bool {
		_, ok := entity.ParseVehicleType(fl.Field().String())

		return ok
	})
	_ = validate.RegisterValidation(TagServiceType, func(fl validator.FieldLevel) bool {
		_, ok := entity.ParseServiceType(fl.Field().String())

		return ok
	})

	return &CustomValidator{validate: validate}
}

// Validate checks the struct and flattens field errors into one readable message.
func (v *CustomValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, fieldMessage(fe))
	}

	return errors.New(strings.Join(messages, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case TagVehicleType:
		return field + " must be one of TWO_WHEELER, FOUR_WHEELER, BOTH"
	case TagServiceType:
		return field + " is not a known service type"
	case "gt", "gte", "min":
		return field + " must be at least " + fe.Param()
	case "lte", "max":
		return field + " must be at most " + fe.Param()
	default:
		return field + " failed " + fe.Tag() + " validation"
	}
}
