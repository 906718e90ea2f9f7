package notify

import (
	"context"

	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/domain"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/event"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/logger"
)

// Sink delivers a committed notification outside the process.
type Sink interface {
	Name() string
	Send(ctx context.Context, n domain.Notification) error
}

func priorityRank(p domain.NotificationPriority) int {
	switch p {
	case domain.PriorityHigh:
		return 2
	case domain.PriorityMedium:
		return 1
	default:
		return 0
	}
}

// Subscribe routes notification.created events with at least minPriority to the sink.
func Subscribe(bus event.Bus, sink Sink, minPriority domain.NotificationPriority) {
	bus.Subscribe(event.NotificationCreated, func(ctx context.Context, e event.Event) error {
		payload, err := event.DecodePayload[domain.NotificationCreatedPayload](e.Payload)
		if err != nil {
			return err
		}
		n := payload.Notification
		log := logger.FromContext(ctx)
		if priorityRank(n.Priority) < priorityRank(minPriority) {
			log.Debug(LogMsgSinkSkipped, "sink", sink.Name(), "priority", n.Priority)
			return nil
		}
		if err := sink.Send(ctx, n); err != nil {
			return err
		}
		log.Debug(LogMsgSinkDelivered, "sink", sink.Name(), "notification_id", n.ID)
		return nil
	})
}
