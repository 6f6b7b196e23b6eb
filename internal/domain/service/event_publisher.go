package service

import (
	"context"
	"time"
)

// Workshop event kinds.
const (
	WorkshopEventStatusChanged   = "workshop.status_changed"
	WorkshopEventServicesChanged = "workshop.services_changed"
	WorkshopEventVehicleChanged  = "workshop.vehicle_type_changed"
	WorkshopEventAddressChanged  = "workshop.address_changed"
)

// WorkshopEvent is emitted after a workshop changes data that affects discovery.
type WorkshopEvent struct {
	RequestID    string    `json:"request_id,omitempty"` // For distributed tracing
	EventID      string    `json:"event_id"`
	Kind         string    `json:"kind"`
	WorkshopID   string    `json:"workshop_id"`
	Status       string    `json:"status"`
	VehicleType  string    `json:"vehicle_type,omitempty"`
	ServiceTypes []string  `json:"service_types"`
	Latitude     *float64  `json:"latitude,omitempty"`
	Longitude    *float64  `json:"longitude,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishWorkshopEvent publishes a workshop change event
	PublishWorkshopEvent(ctx context.Context, event *WorkshopEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
