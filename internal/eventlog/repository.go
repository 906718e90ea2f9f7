package eventlog

import (
	"context"
	"time"
)

// Event is one audited domain event.
type Event struct {
	ID        int64                  `json:"id"`
	EventType string                 `json:"event_type"`
	ItemID    *int64                 `json:"item_id,omitempty"`
	ActorID   *int64                 `json:"actor_id,omitempty"`
	Payload   map[string]interface{} `json:"payload"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

// EventFilter filters events for queries
type EventFilter struct {
	ItemID    *int64
	EventType *string
	Since     *time.Time
	Until     *time.Time
	Limit     int
}

// Repository defines the interface for event logging storage
type Repository interface {
	// LogEvent stores an event. ID and CreatedAt are ignored.
	LogEvent(ctx context.Context, evt Event) error

	// GetEvents retrieves events, newest first.
	GetEvents(ctx context.Context, filter EventFilter) ([]Event, error)

	// CleanupOldEvents removes events older than the specified number of days
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}
