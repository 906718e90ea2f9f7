// Package notify builds inventory notifications, records them inside the
// triggering transaction and fans them out to external sinks.
//
// Recording is best-effort: a failed insert is logged and dropped, and the
// surrounding transaction carries on.
package notify

import (
	"context"
	"time"

	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/domain"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/event"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/logger"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/repository"
)

// Recorder writes notifications through one transaction and keeps the ones
// that were stored so they can be published once the transaction commits.
type Recorder struct {
	w       repository.NotificationWriter
	created []domain.Notification
}

// NewRecorder creates a Recorder bound to an open transaction.
func NewRecorder(w repository.NotificationWriter) *Recorder {
	return &Recorder{w: w}
}

// Record stores n. It reports whether the insert succeeded.
func (r *Recorder) Record(ctx context.Context, n *domain.Notification) bool {
	if err := r.w.CreateNotification(ctx, n); err != nil {
		logger.FromContext(ctx).Warn(LogMsgNotificationFailed,
			"type", n.Type,
			"priority", n.Priority,
			"error", err)
		return false
	}
	r.created = append(r.created, *n)
	return true
}

// RecordOnce stores n unless a notification of the same type for the same
// item and deployment was stored since the given time.
func (r *Recorder) RecordOnce(ctx context.Context, n *domain.Notification, since time.Time) bool {
	exists, err := r.w.HasRecentNotification(ctx, n.Type, n.ItemID, n.DeploymentID, since)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgNotificationDedup, "type", n.Type, "error", err)
		return false
	}
	if exists {
		return false
	}
	return r.Record(ctx, n)
}

// Created returns the notifications stored so far.
func (r *Recorder) Created() []domain.Notification {
	return r.created
}

// Publish announces committed notifications. A nil publisher is a no-op.
func Publish(ctx context.Context, pub event.Publisher, ns []domain.Notification) {
	if pub == nil {
		return
	}
	for _, n := range ns {
		pub.PublishWithRetry(ctx, event.NewNotificationCreatedEvent(n))
	}
}
