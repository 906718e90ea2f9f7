// Package eventlog keeps an append-only audit trail of inventory events.
package eventlog

import (
	"context"
	"encoding/json"

	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/event"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/logger"
)

// Service handles event logging business logic
type Service interface {
	// Subscribe registers the event logger to listen to all events
	Subscribe(bus event.Bus) error

	// List returns audited events, newest first.
	List(ctx context.Context, filter EventFilter) ([]Event, error)

	// CleanupOldEvents removes events older than retention period
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}

type service struct {
	repo Repository
}

// NewService creates a new event logging service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// AuditedTypes are the event types written to the log.
var AuditedTypes = []event.Type{
	event.BatchReceived,
	event.BatchDeleted,
	event.DeploymentCreated,
	event.DeploymentReturned,
	event.SerialStatusChanged,
	event.NotificationCreated,
}

func (s *service) Subscribe(bus event.Bus) error {
	for _, eventType := range AuditedTypes {
		bus.Subscribe(eventType, s.handleEvent)
	}
	return nil
}

func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := flatten(evt.Payload)
	if err != nil {
		log.Warn(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
		return nil
	}
	metadata, _ := evt.Metadata.(map[string]interface{})

	entry := Event{
		EventType: string(evt.Type),
		ItemID:    int64Field(payload, PayloadKeyItemID),
		ActorID:   actorOf(payload),
		Payload:   payload,
		Metadata:  metadata,
	}
	if entry.ItemID == nil {
		// Notifications nest their item id.
		if n, ok := payload["notification"].(map[string]interface{}); ok {
			entry.ItemID = int64Field(n, PayloadKeyItemID)
		}
	}

	if err := s.repo.LogEvent(ctx, entry); err != nil {
		log.Error(LogMsgFailedToLogEvent, "error", err, "type", evt.Type)
		return err
	}

	log.Debug(LogMsgEventLogged, "type", evt.Type, "item_id", entry.ItemID)
	return nil
}

func (s *service) List(ctx context.Context, filter EventFilter) ([]Event, error) {
	if filter.Limit <= 0 || filter.Limit > DefaultListLimit {
		filter.Limit = DefaultListLimit
	}
	return s.repo.GetEvents(ctx, filter)
}

// CleanupOldEvents removes events older than the retention period
func (s *service) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	return s.repo.CleanupOldEvents(ctx, retentionDays)
}

// flatten turns a typed payload into the JSON object that gets stored.
func flatten(payload interface{}) (map[string]interface{}, error) {
	if m, ok := payload.(map[string]interface{}); ok {
		return m, nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func actorOf(payload map[string]interface{}) *int64 {
	for _, key := range []string{PayloadKeyActorID, PayloadKeyReceivedBy, PayloadKeyDeployedBy} {
		if id := int64Field(payload, key); id != nil && *id != 0 {
			return id
		}
	}
	return nil
}

func int64Field(m map[string]interface{}, key string) *int64 {
	var id int64
	switch v := m[key].(type) {
	case float64:
		id = int64(v)
	case int64:
		id = v
	case int:
		id = int64(v)
	default:
		return nil
	}
	return &id
}
