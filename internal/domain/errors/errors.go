package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches errors by business code so that copies made by WithDetails
// still compare equal to the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	// Validation
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrInvalidVehicleType = NewBaseError(
		http.StatusBadRequest,
		"INVALID_VEHICLE_TYPE",
		"Invalid vehicle type",
		"",
	)

	ErrInvalidServiceType = NewBaseError(
		http.StatusBadRequest,
		"INVALID_SERVICE_TYPE",
		"Invalid service type",
		"",
	)

	ErrInvalidAddressInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ADDRESS_DATA",
		"Invalid address data",
		"",
	)

	ErrInvalidDistance = NewBaseError(
		http.StatusBadRequest,
		"INVALID_DISTANCE",
		"Maximum distance must be greater than zero",
		"",
	)

	// Accounts
	ErrAccountNotFound = NewBaseError(
		http.StatusNotFound,
		"ACCOUNT_NOT_FOUND",
		"Account not found",
		"",
	)

	ErrWorkshopNotFound = NewBaseError(
		http.StatusNotFound,
		"WORKSHOP_NOT_FOUND",
		"Workshop not found",
		"",
	)

	// Address book
	ErrNoAddresses = NewBaseError(
		http.StatusNotFound,
		"NO_ADDRESSES",
		"No addresses found",
		"",
	)

	ErrAddressNotFound = NewBaseError(
		http.StatusNotFound,
		"ADDRESS_NOT_FOUND",
		"Address not found",
		"",
	)

	ErrAddressRequired = NewBaseError(
		http.StatusUnprocessableEntity,
		"ADDRESS_REQUIRED",
		"Address required before searching workshops",
		"",
	)

	ErrDuplicateAddress = NewBaseError(
		http.StatusConflict,
		"ADDRESS_ALREADY_EXISTS",
		"Address already exists",
		"",
	)

	// Pricing
	ErrPricingRuleNotFound = NewBaseError(
		http.StatusNotFound,
		"PRICING_RULE_NOT_FOUND",
		"Pricing rule not defined",
		"",
	)

	ErrPricingRuleExists = NewBaseError(
		http.StatusConflict,
		"PRICING_RULE_ALREADY_EXISTS",
		"Pricing rule already exists for this vehicle and service type",
		"",
	)

	ErrServiceUnsupported = NewBaseError(
		http.StatusConflict,
		"SERVICE_NOT_SUPPORTED",
		"Workshop does not support this service",
		"",
	)

	ErrVehicleUnsupported = NewBaseError(
		http.StatusConflict,
		"VEHICLE_TYPE_NOT_SUPPORTED",
		"Workshop does not support this vehicle type",
		"",
	)

	// Workshop capabilities
	ErrServiceTypeExists = NewBaseError(
		http.StatusConflict,
		"SERVICE_TYPE_ALREADY_EXISTS",
		"Service type already exists",
		"",
	)

	ErrServiceTypeNotOffered = NewBaseError(
		http.StatusNotFound,
		"SERVICE_TYPE_NOT_OFFERED",
		"Workshop does not offer this service",
		"",
	)

	ErrVehicleTypeExists = NewBaseError(
		http.StatusConflict,
		"VEHICLE_TYPE_ALREADY_EXISTS",
		"Vehicle type already exists",
		"",
	)

	ErrVehicleTypeNotSet = NewBaseError(
		http.StatusNotFound,
		"VEHICLE_TYPE_NOT_SET",
		"No vehicle type configured",
		"",
	)

	// External services
	ErrGeocodingFailed = NewBaseError(
		http.StatusBadGateway,
		"GEOCODING_FAILED",
		"Error fetching coordinates",
		"",
	)

	// Discovery
	ErrSearchFailed = NewBaseError(
		http.StatusInternalServerError,
		"SEARCH_FAILED",
		"Failed to search workshops",
		"",
	)

	// Concurrency
	ErrAccountBusy = NewBaseError(
		http.StatusConflict,
		"ACCOUNT_BUSY",
		"Another update for this account is in progress, please retry",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Account identity is missing",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// IsClientError reports whether err carries a 4xx AppError.
func IsClientError(err error) bool {
	var appErr AppError
	if !errors.As(err, &appErr) {
		return false
	}

	return appErr.HTTPCode() >= 400 && appErr.HTTPCode() < 500
}
