package sse

import (
	"context"
	"log/slog"

	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/event"
)

// StreamedTypes are the bus events forwarded to stream clients.
var StreamedTypes = []event.Type{
	event.BatchReceived,
	event.BatchDeleted,
	event.DeploymentCreated,
	event.DeploymentReturned,
	event.SerialStatusChanged,
	event.NotificationCreated,
}

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers the bridge for every streamed event type.
func (s *Subscriber) Subscribe() {
	names := make([]string, len(StreamedTypes))
	for i, t := range StreamedTypes {
		s.bus.Subscribe(t, s.forward)
		names[i] = string(t)
	}
	slog.Info(LogMsgSubscriberRegistered, "types", names)
}

// forward rebroadcasts the event payload as is; payloads are the typed
// domain structs and encode straight to JSON.
func (s *Subscriber) forward(ctx context.Context, evt event.Event) error {
	if !s.hub.Broadcast(string(evt.Type), evt.Payload) {
		slog.WarnContext(ctx, LogMsgEventDropped, "event_type", evt.Type)
		return nil
	}
	slog.DebugContext(ctx, LogMsgEventBroadcast, "event_type", evt.Type, "clients", s.hub.ClientCount())
	return nil
}
