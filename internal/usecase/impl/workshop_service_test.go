package impl

import (
	"context"
	"testing"
	"time"

	"pitstop/internal/domain/entity"
	domainerrors "pitstop/internal/domain/errors"
	"pitstop/internal/domain/repository"
	"pitstop/internal/domain/service"
	mockRepo "pitstop/internal/mocks/repository"
	mockService "pitstop/internal/mocks/service"
	"pitstop/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testWorkshopUser = "fixit"

type workshopFixture struct {
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	accountRepo *mockRepo.MockAccountRepository
	locker      *mockService.MockAccountLocker
	publisher   *mockService.MockEventPublisher
	service     usecase.WorkshopUsecase
}

func newWorkshopFixture(t *testing.T) *workshopFixture {
	t.Helper()

	f := &workshopFixture{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		accountRepo: mockRepo.NewMockAccountRepository(t),
		locker:      mockService.NewMockAccountLocker(t),
		publisher:   mockService.NewMockEventPublisher(t),
	}
	f.service = NewWorkshopService(WorkshopServiceParams{
		TxManager:   f.txManager,
		AccountRepo: f.accountRepo,
		Locker:      f.locker,
		Publisher:   f.publisher,
		Logger:      newDiscardLogger(),
	})

	return f
}

// expectUpdate wires lock, transaction and lookup for one mutation of workshop.
func (f *workshopFixture) expectUpdate(t *testing.T, workshop *entity.Workshop) *int {
	t.Helper()

	released := expectLock(t, f.locker, testWorkshopUser)
	expectTransaction(f.txManager, f.factory)
	f.factory.EXPECT().AccountRepo().Return(f.accountRepo)
	f.accountRepo.EXPECT().FindWorkshopByUsername(mock.Anything, testWorkshopUser).Return(workshop, nil)

	return released
}

func TestWorkshopService_AddServiceType(t *testing.T) {
	f := newWorkshopFixture(t)
	workshop := newTestWorkshop(testWorkshopUser, nil, entity.VehicleTypeTwoWheeler, entity.ServiceTypeOilChange)
	before := workshop.UpdatedAt
	released := f.expectUpdate(t, workshop)

	f.accountRepo.EXPECT().SaveWorkshop(mock.Anything, workshop).Return(nil)
	f.publisher.EXPECT().
		PublishWorkshopEvent(mock.Anything, mock.MatchedBy(func(event *service.WorkshopEvent) bool {
			return event.Kind == service.WorkshopEventServicesChanged &&
				event.WorkshopID == workshop.ID.String() &&
				len(event.ServiceTypes) == 2
		})).
		Return(nil)

	services, err := f.service.AddServiceType(context.Background(), testWorkshopUser, "brake_repair")
	require.NoError(t, err)
	assert.Equal(t, entity.ServiceTypes{entity.ServiceTypeOilChange, entity.ServiceTypeBrakeRepair}, services)
	assert.True(t, workshop.UpdatedAt.After(before))
	assert.Equal(t, 1, *released)
}

func TestWorkshopService_AddServiceType_AlreadyOffered(t *testing.T) {
	f := newWorkshopFixture(t)
	workshop := newTestWorkshop(testWorkshopUser, nil, entity.VehicleTypeTwoWheeler, entity.ServiceTypeOilChange)
	released := f.expectUpdate(t, workshop)

	_, err := f.service.AddServiceType(context.Background(), testWorkshopUser, "OIL_CHANGE")
	assert.True(t, errors.Is(err, domainerrors.ErrServiceTypeExists))
	assert.Equal(t, 1, *released)
}

func TestWorkshopService_RemoveServiceType(t *testing.T) {
	t.Run("removes offered service", func(t *testing.T) {
		f := newWorkshopFixture(t)
		workshop := newTestWorkshop(testWorkshopUser, nil, entity.VehicleTypeTwoWheeler,
			entity.ServiceTypeOilChange, entity.ServiceTypeACRepair)
		f.expectUpdate(t, workshop)
		f.accountRepo.EXPECT().SaveWorkshop(mock.Anything, workshop).Return(nil)
		f.publisher.EXPECT().PublishWorkshopEvent(mock.Anything, mock.Anything).Return(nil)

		services, err := f.service.RemoveServiceType(context.Background(), testWorkshopUser, "OIL_CHANGE")
		require.NoError(t, err)
		assert.Equal(t, entity.ServiceTypes{entity.ServiceTypeACRepair}, services)
	})

	t.Run("service not offered", func(t *testing.T) {
		f := newWorkshopFixture(t)
		workshop := newTestWorkshop(testWorkshopUser, nil, entity.VehicleTypeTwoWheeler, entity.ServiceTypeOilChange)
		f.expectUpdate(t, workshop)

		_, err := f.service.RemoveServiceType(context.Background(), testWorkshopUser, "AC_REPAIR")
		assert.True(t, errors.Is(err, domainerrors.ErrServiceTypeNotOffered))
	})

	t.Run("invalid service type never takes the lock", func(t *testing.T) {
		f := newWorkshopFixture(t)

		_, err := f.service.RemoveServiceType(context.Background(), testWorkshopUser, "PAINT")
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidServiceType))
	})
}

func TestWorkshopService_VehicleType(t *testing.T) {
	t.Run("set", func(t *testing.T) {
		f := newWorkshopFixture(t)
		workshop := newTestWorkshop(testWorkshopUser, nil, entity.VehicleTypeTwoWheeler)
		f.expectUpdate(t, workshop)
		f.accountRepo.EXPECT().SaveWorkshop(mock.Anything, workshop).Return(nil)
		f.publisher.EXPECT().PublishWorkshopEvent(mock.Anything, mock.Anything).Return(nil)

		got, err := f.service.SetVehicleType(context.Background(), testWorkshopUser, "both")
		require.NoError(t, err)
		assert.Equal(t, entity.VehicleTypeBoth, got)
		assert.True(t, workshop.HasVehicleType(entity.VehicleTypeBoth))
	})

	t.Run("set to current value conflicts", func(t *testing.T) {
		f := newWorkshopFixture(t)
		workshop := newTestWorkshop(testWorkshopUser, nil, entity.VehicleTypeTwoWheeler)
		f.expectUpdate(t, workshop)

		_, err := f.service.SetVehicleType(context.Background(), testWorkshopUser, "TWO_WHEELER")
		assert.True(t, errors.Is(err, domainerrors.ErrVehicleTypeExists))
	})

	t.Run("clear", func(t *testing.T) {
		f := newWorkshopFixture(t)
		workshop := newTestWorkshop(testWorkshopUser, nil, entity.VehicleTypeFourWheeler)
		f.expectUpdate(t, workshop)
		f.accountRepo.EXPECT().SaveWorkshop(mock.Anything, workshop).Return(nil)
		f.publisher.EXPECT().PublishWorkshopEvent(mock.Anything, mock.Anything).Return(nil)

		require.NoError(t, f.service.ClearVehicleType(context.Background(), testWorkshopUser))
		assert.Nil(t, workshop.VehicleType)
	})

	t.Run("clear when unset", func(t *testing.T) {
		f := newWorkshopFixture(t)
		workshop := newTestWorkshop(testWorkshopUser, nil, entity.VehicleTypeFourWheeler)
		workshop.VehicleType = nil
		f.expectUpdate(t, workshop)

		err := f.service.ClearVehicleType(context.Background(), testWorkshopUser)
		assert.True(t, errors.Is(err, domainerrors.ErrVehicleTypeNotSet))
	})

	t.Run("get unset", func(t *testing.T) {
		f := newWorkshopFixture(t)
		workshop := newTestWorkshop(testWorkshopUser, nil, entity.VehicleTypeFourWheeler)
		workshop.VehicleType = nil
		f.accountRepo.EXPECT().FindWorkshopByUsername(mock.Anything, testWorkshopUser).Return(workshop, nil)

		got, err := f.service.GetVehicleType(context.Background(), testWorkshopUser)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestWorkshopService_Status(t *testing.T) {
	f := newWorkshopFixture(t)
	workshop := newTestWorkshop(testWorkshopUser, nil, entity.VehicleTypeTwoWheeler)
	f.expectUpdate(t, workshop)
	f.accountRepo.EXPECT().SaveWorkshop(mock.Anything, workshop).Return(nil)
	f.publisher.EXPECT().
		PublishWorkshopEvent(mock.Anything, mock.MatchedBy(func(event *service.WorkshopEvent) bool {
			return event.Kind == service.WorkshopEventStatusChanged && event.Status == "CLOSED"
		})).
		Return(nil)

	status, err := f.service.CloseWorkshop(context.Background(), testWorkshopUser)
	require.NoError(t, err)
	assert.Equal(t, entity.WorkshopStatusClosed, status)
}

func TestWorkshopService_PublishFailureIsNotReturned(t *testing.T) {
	f := newWorkshopFixture(t)
	workshop := newTestWorkshop(testWorkshopUser, nil, entity.VehicleTypeTwoWheeler)
	workshop.Status = entity.WorkshopStatusClosed
	f.expectUpdate(t, workshop)
	f.accountRepo.EXPECT().SaveWorkshop(mock.Anything, workshop).Return(nil)
	f.publisher.EXPECT().PublishWorkshopEvent(mock.Anything, mock.Anything).Return(errors.New("broker down"))

	status, err := f.service.OpenWorkshop(context.Background(), testWorkshopUser)
	require.NoError(t, err)
	assert.Equal(t, entity.WorkshopStatusOpen, status)
}

func TestWorkshopService_SaveFailure(t *testing.T) {
	f := newWorkshopFixture(t)
	workshop := newTestWorkshop(testWorkshopUser, nil, entity.VehicleTypeTwoWheeler)
	f.expectUpdate(t, workshop)
	f.accountRepo.EXPECT().SaveWorkshop(mock.Anything, workshop).Return(errors.New("deadlock detected"))

	_, err := f.service.OpenWorkshop(context.Background(), testWorkshopUser)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save workshop")
}

func TestWorkshopService_LockTimeout(t *testing.T) {
	f := newWorkshopFixture(t)
	f.locker.EXPECT().Lock(mock.Anything, accountLockKey(testWorkshopUser)).Return(nil, context.DeadlineExceeded)

	_, err := f.service.OpenWorkshop(context.Background(), testWorkshopUser)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountBusy))
}

func TestWorkshopService_NotFound(t *testing.T) {
	f := newWorkshopFixture(t)
	f.accountRepo.EXPECT().FindWorkshopByUsername(mock.Anything, "ghost").Return(nil, repository.ErrAccountNotFound)

	_, err := f.service.GetStatus(context.Background(), "ghost")
	assert.True(t, errors.Is(err, domainerrors.ErrWorkshopNotFound))
}

func TestNewWorkshopEvent(t *testing.T) {
	coord := &entity.Coordinate{Latitude: 22.5, Longitude: 88.3}
	workshop := newTestWorkshop("w", coord, entity.VehicleTypeBoth, entity.ServiceTypeOilChange)
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.FixedZone("IST", 19800))

	event := newWorkshopEvent(context.Background(), service.WorkshopEventAddressChanged, workshop, at)
	assert.NotEmpty(t, event.EventID)
	assert.Equal(t, "BOTH", event.VehicleType)
	assert.Equal(t, []string{"OIL_CHANGE"}, event.ServiceTypes)
	require.NotNil(t, event.Latitude)
	assert.InDelta(t, 22.5, *event.Latitude, 1e-9)
	assert.Equal(t, time.UTC, event.OccurredAt.Location())
}
