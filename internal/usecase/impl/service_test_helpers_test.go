package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"pitstop/config"
	"pitstop/internal/domain/entity"
	"pitstop/internal/domain/repository"
	mockRepo "pitstop/internal/mocks/repository"
	mockService "pitstop/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Discovery: &config.DiscoveryConfig{DefaultMaxDistanceKm: 5, MaxDistanceKm: 50},
	}
}

// expectTransaction makes the transaction manager run its callback against factory.
func expectTransaction(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

// expectLock grants the account lock for username and counts releases.
func expectLock(t *testing.T, locker *mockService.MockAccountLocker, username string) *int {
	t.Helper()

	released := 0
	locker.EXPECT().
		Lock(mock.Anything, accountLockKey(username)).
		Return(func() { released++ }, nil)

	return &released
}

func ptr[T any](v T) *T {
	return &v
}

func newTestWorkshop(name string, coord *entity.Coordinate, vehicle entity.VehicleType, services ...entity.ServiceType) *entity.Workshop {
	workshop := &entity.Workshop{
		Account: entity.Account{
			ID:       uuid.New(),
			Username: name,
			Name:     name,
			Role:     entity.RoleWorkshop,
		},
		Status:      entity.WorkshopStatusOpen,
		VehicleType: ptr(vehicle),
		Services:    entity.ServiceTypes(services),
	}
	if coord != nil {
		workshop.Address = &entity.Address{
			ID:               uuid.New(),
			OwnerID:          workshop.ID,
			OwnerType:        entity.OwnerTypeWorkshop,
			FormattedAddress: name + " street",
			Coordinate:       coord,
			IsDefault:        true,
		}
	}

	return workshop
}
