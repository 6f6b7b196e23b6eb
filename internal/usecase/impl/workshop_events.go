package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "pitstop/internal/delivery/context"
	"pitstop/internal/domain/entity"
	"pitstop/internal/domain/service"

	"github.com/google/uuid"
)

// workshopEvents publishes change notifications for workshops. Publishing is
// best effort: the change is already committed, so failures are only logged.
type workshopEvents struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

func newWorkshopEvent(ctx context.Context, kind string, workshop *entity.Workshop, at time.Time) *service.WorkshopEvent {
	event := &service.WorkshopEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		EventID:      uuid.NewString(),
		Kind:         kind,
		WorkshopID:   workshop.ID.String(),
		Status:       workshop.Status.String(),
		ServiceTypes: workshop.Services.ToStrings(),
		OccurredAt:   at.UTC(),
	}
	if workshop.VehicleType != nil {
		event.VehicleType = workshop.VehicleType.String()
	}
	if coord, ok := workshop.Coordinate(); ok {
		lat, lon := coord.Latitude, coord.Longitude
		event.Latitude = &lat
		event.Longitude = &lon
	}

	return event
}

func (e *workshopEvents) publish(ctx context.Context, kind string, workshop *entity.Workshop) {
	if e == nil || e.publisher == nil {
		return
	}

	event := newWorkshopEvent(ctx, kind, workshop, time.Now())
	if err := e.publisher.PublishWorkshopEvent(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, e.logger).Warn("Failed to publish workshop event",
			slog.String("kind", kind),
			slog.String("workshop_id", event.WorkshopID),
			slog.Any("error", err),
		)
	}
}
