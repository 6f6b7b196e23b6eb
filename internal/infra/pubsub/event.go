package pubsub

import (
	"encoding/json"

	"pitstop/internal/domain/service"

	"github.com/pkg/errors"
)

// Attribute keys carried next to the JSON payload so consumers can filter
// without decoding the body.
const (
	attrEventID    = "event_id"
	attrKind       = "kind"
	attrWorkshopID = "workshop_id"
	attrRequestID  = "request_id"
)

func eventAttributes(event *service.WorkshopEvent) map[string]string {
	attributes := map[string]string{
		attrEventID:    event.EventID,
		attrKind:       event.Kind,
		attrWorkshopID: event.WorkshopID,
	}
	if event.RequestID != "" {
		attributes[attrRequestID] = event.RequestID
	}

	return attributes
}

func encodeEvent(event *service.WorkshopEvent) ([]byte, error) {
	if event == nil {
		return nil, errors.New("workshop event is nil")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return data, nil
}

// routingKey is "<kind>.<workshop id>", e.g. workshop.status_changed.7f3c...
func routingKey(event *service.WorkshopEvent) string {
	return event.Kind + "." + event.WorkshopID
}
