package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "pitstop/internal/delivery/context"
	"pitstop/internal/domain/entity"
	domainerrors "pitstop/internal/domain/errors"
	"pitstop/internal/domain/repository"
	"pitstop/internal/domain/service"
	"pitstop/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type workshopService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	locker      service.AccountLocker
	events      *workshopEvents
	logger      *slog.Logger
}

// WorkshopServiceParams holds dependencies for WorkshopService, injected by Fx.
type WorkshopServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	Locker      service.AccountLocker
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewWorkshopService is the constructor for workshopService.
func NewWorkshopService(params WorkshopServiceParams) usecase.WorkshopUsecase {
	return &workshopService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		locker:      params.Locker,
		events:      &workshopEvents{publisher: params.Publisher, logger: params.Logger},
		logger:      params.Logger,
	}
}

func (srv *workshopService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *workshopService) find(ctx context.Context, username string) (*entity.Workshop, error) {
	workshop, err := srv.accountRepo.FindWorkshopByUsername(ctx, username)
	if err != nil {
		return nil, workshopLookupError(err, username)
	}

	return workshop, nil
}

// update applies change to the workshop under the account lock, stores it and
// publishes an event of the given kind once committed.
func (srv *workshopService) update(ctx context.Context, username, kind string, change func(*entity.Workshop) error) (*entity.Workshop, error) {
	var workshop *entity.Workshop

	err := withAccountLock(ctx, srv.locker, username, func() error {
		return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			accountRepo := repoFactory.AccountRepo()

			found, err := accountRepo.FindWorkshopByUsername(ctx, username)
			if err != nil {
				return workshopLookupError(err, username)
			}

			if err := change(found); err != nil {
				return err
			}
			found.Touch(time.Now())

			if err := accountRepo.SaveWorkshop(ctx, found); err != nil {
				return errors.Wrap(err, "failed to save workshop")
			}
			workshop = found

			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Workshop updated",
		slog.String("username", username),
		slog.String("kind", kind),
	)
	srv.events.publish(ctx, kind, workshop)

	return workshop, nil
}

func (srv *workshopService) ListServiceTypes(ctx context.Context, username string) (entity.ServiceTypes, error) {
	workshop, err := srv.find(ctx, username)
	if err != nil {
		return nil, err
	}

	if workshop.Services == nil {
		return entity.ServiceTypes{}, nil
	}

	return workshop.Services, nil
}

func (srv *workshopService) AddServiceType(ctx context.Context, username, serviceType string) (entity.ServiceTypes, error) {
	st, err := parseServiceType(serviceType)
	if err != nil {
		return nil, err
	}

	workshop, err := srv.update(ctx, username, service.WorkshopEventServicesChanged, func(w *entity.Workshop) error {
		if w.Services.Contains(st) {
			return domainerrors.ErrServiceTypeExists.WithDetails("workshop already offers " + st.String())
		}
		w.Services = append(w.Services, st)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return workshop.Services, nil
}

func (srv *workshopService) RemoveServiceType(ctx context.Context, username, serviceType string) (entity.ServiceTypes, error) {
	st, err := parseServiceType(serviceType)
	if err != nil {
		return nil, err
	}

	workshop, err := srv.update(ctx, username, service.WorkshopEventServicesChanged, func(w *entity.Workshop) error {
		if !w.Services.Contains(st) {
			return domainerrors.ErrServiceTypeNotOffered.WithDetails("workshop does not offer this service: " + st.String())
		}
		w.Services = w.Services.Without(st)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return workshop.Services, nil
}

// GetVehicleType returns nil when the workshop has not declared one.
func (srv *workshopService) GetVehicleType(ctx context.Context, username string) (*entity.VehicleType, error) {
	workshop, err := srv.find(ctx, username)
	if err != nil {
		return nil, err
	}

	return workshop.VehicleType, nil
}

func (srv *workshopService) SetVehicleType(ctx context.Context, username, vehicleType string) (entity.VehicleType, error) {
	vt, err := parseVehicleType(vehicleType)
	if err != nil {
		return "", err
	}

	_, err = srv.update(ctx, username, service.WorkshopEventVehicleChanged, func(w *entity.Workshop) error {
		if w.HasVehicleType(vt) {
			return domainerrors.ErrVehicleTypeExists.WithDetails("vehicle type already set to " + vt.String())
		}
		w.VehicleType = &vt

		return nil
	})
	if err != nil {
		return "", err
	}

	return vt, nil
}

func (srv *workshopService) ClearVehicleType(ctx context.Context, username string) error {
	_, err := srv.update(ctx, username, service.WorkshopEventVehicleChanged, func(w *entity.Workshop) error {
		if w.VehicleType == nil {
			return domainerrors.ErrVehicleTypeNotSet.WithDetails("no vehicle type configured")
		}
		w.VehicleType = nil

		return nil
	})

	return err
}

func (srv *workshopService) GetStatus(ctx context.Context, username string) (entity.WorkshopStatus, error) {
	workshop, err := srv.find(ctx, username)
	if err != nil {
		return "", err
	}

	return workshop.Status, nil
}

func (srv *workshopService) OpenWorkshop(ctx context.Context, username string) (entity.WorkshopStatus, error) {
	return srv.setStatus(ctx, username, entity.WorkshopStatusOpen)
}

func (srv *workshopService) CloseWorkshop(ctx context.Context, username string) (entity.WorkshopStatus, error) {
	return srv.setStatus(ctx, username, entity.WorkshopStatusClosed)
}

// setStatus is idempotent: setting the current status still stores and publishes.
func (srv *workshopService) setStatus(ctx context.Context, username string, status entity.WorkshopStatus) (entity.WorkshopStatus, error) {
	workshop, err := srv.update(ctx, username, service.WorkshopEventStatusChanged, func(w *entity.Workshop) error {
		w.Status = status

		return nil
	})
	if err != nil {
		return "", err
	}

	return workshop.Status, nil
}
