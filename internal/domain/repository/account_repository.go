// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"pitstop/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for account persistence.
var (
	// ErrAccountNotFound is returned when no account matches the lookup.
	ErrAccountNotFound = errors.New("account not found")
)

// AccountRepository reads and writes customer and workshop accounts together
// with the addresses they own.
type AccountRepository interface {
	// FindCustomerByUsername loads a customer and its addresses in stored order.
	FindCustomerByUsername(ctx context.Context, username string) (*entity.Customer, error)

	// FindWorkshopByUsername loads a workshop with its capabilities and address.
	FindWorkshopByUsername(ctx context.Context, username string) (*entity.Workshop, error)

	// FindWorkshopByID loads a workshop by account ID.
	FindWorkshopByID(ctx context.Context, id uuid.UUID) (*entity.Workshop, error)

	// FindAllWorkshops returns the full workshop population. No filtering is applied.
	FindAllWorkshops(ctx context.Context) ([]*entity.Workshop, error)

	// SaveCustomer persists the account row and every address of the customer.
	SaveCustomer(ctx context.Context, customer *entity.Customer) error

	// SaveWorkshop persists the account row, the workshop profile and its address.
	SaveWorkshop(ctx context.Context, workshop *entity.Workshop) error
}
