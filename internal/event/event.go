package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Inventory event types
const (
	BatchReceived       Type = domain.EventTypeBatchReceived
	BatchDeleted        Type = domain.EventTypeBatchDeleted
	DeploymentCreated   Type = domain.EventTypeDeploymentCreated
	DeploymentReturned  Type = domain.EventTypeDeploymentReturned
	SerialStatusChanged Type = domain.EventTypeSerialStatusChanged
	NotificationCreated Type = domain.EventTypeNotificationCreated
)

// Type-safe event constructors

// NewBatchReceivedEvent creates a batch receipt event
func NewBatchReceivedEvent(b *domain.Batch, item *domain.InventoryItem, serialized bool, newStock int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    BatchReceived,
		Payload: domain.BatchReceivedPayload{
			BatchID:     b.ID,
			BatchNumber: b.BatchNumber,
			ItemID:      item.ID,
			ItemName:    item.Name,
			Quantity:    b.Quantity,
			Serialized:  serialized,
			NewStock:    newStock,
			ReceivedBy:  b.ReceivedBy,
			Timestamp:   time.Now(),
		},
		Metadata: map[string]interface{}{
			"item_id": item.ID,
		},
	}
}

// NewBatchDeletedEvent creates a batch deletion event
func NewBatchDeletedEvent(b *domain.Batch, newStock int, actorID int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    BatchDeleted,
		Payload: domain.BatchDeletedPayload{
			BatchID:   b.ID,
			ItemID:    b.ItemID,
			Quantity:  b.Quantity,
			NewStock:  newStock,
			ActorID:   actorID,
			Timestamp: time.Now(),
		},
		Metadata: map[string]interface{}{
			"item_id": b.ItemID,
		},
	}
}

// NewDeploymentCreatedEvent creates a deployment event
func NewDeploymentCreatedEvent(d *domain.Deployment, newStock int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    DeploymentCreated,
		Payload: domain.DeploymentCreatedPayload{
			DeploymentID:   d.ID,
			ItemID:         d.ItemID,
			DeploymentType: d.DeploymentType,
			Quantity:       d.QuantityDeployed,
			Serialized:     d.IsSerialized,
			NewStock:       newStock,
			DeployedBy:     d.DeployedBy,
			Timestamp:      time.Now(),
		},
		Metadata: map[string]interface{}{
			"item_id": d.ItemID,
		},
	}
}

// NewDeploymentReturnedEvent creates a return reconciliation event
func NewDeploymentReturnedEvent(payload domain.DeploymentReturnedPayload) Event {
	if payload.Timestamp.IsZero() {
		payload.Timestamp = time.Now()
	}
	return Event{
		Version: EventSchemaVersion,
		Type:    DeploymentReturned,
		Payload: payload,
		Metadata: map[string]interface{}{
			"item_id": payload.ItemID,
		},
	}
}

// NewSerialStatusChangedEvent creates an administrative status change event
func NewSerialStatusChangedEvent(unit *domain.SerializedItem, from domain.SerializedItemStatus, actorID int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SerialStatusChanged,
		Payload: domain.SerialStatusChangedPayload{
			SerializedItemID: unit.ID,
			ItemID:           unit.ItemID,
			From:             from,
			To:               unit.Status,
			ActorID:          actorID,
			Timestamp:        time.Now(),
		},
		Metadata: map[string]interface{}{
			"item_id": unit.ItemID,
		},
	}
}

// NewNotificationCreatedEvent wraps a persisted notification
func NewNotificationCreatedEvent(n domain.Notification) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    NotificationCreated,
		Payload: domain.NotificationCreatedPayload{Notification: n},
		Metadata: map[string]interface{}{
			"priority": string(n.Priority),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// Publisher accepts events for best-effort delivery. Implementations never
// report delivery failures to the caller.
type Publisher interface {
	PublishWithRetry(ctx context.Context, event Event)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	// Handlers run synchronously, in subscription order.
	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
