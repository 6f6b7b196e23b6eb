package usecase

import (
	"context"

	"pitstop/internal/domain/entity"
)

// WorkshopUsecase manages the capabilities a workshop advertises to discovery.
// Mutations publish a workshop event after they are stored.
type WorkshopUsecase interface {
	ListServiceTypes(ctx context.Context, username string) (entity.ServiceTypes, error)
	AddServiceType(ctx context.Context, username, serviceType string) (entity.ServiceTypes, error)
	RemoveServiceType(ctx context.Context, username, serviceType string) (entity.ServiceTypes, error)

	GetVehicleType(ctx context.Context, username string) (*entity.VehicleType, error)
	SetVehicleType(ctx context.Context, username, vehicleType string) (entity.VehicleType, error)
	ClearVehicleType(ctx context.Context, username string) error

	GetStatus(ctx context.Context, username string) (entity.WorkshopStatus, error)
	OpenWorkshop(ctx context.Context, username string) (entity.WorkshopStatus, error)
	CloseWorkshop(ctx context.Context, username string) (entity.WorkshopStatus, error)
}
