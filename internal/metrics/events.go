package metrics

import (
	"context"
	"strconv"

	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/domain"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/event"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/ledger"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/logger"
)

// EventMetricsCollector subscribes to inventory events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all inventory events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.BatchReceived,
		event.BatchDeleted,
		event.DeploymentCreated,
		event.DeploymentReturned,
		event.SerialStatusChanged,
		event.NotificationCreated,
	}
	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
	return nil
}

// HandleEvent processes events and updates metrics. Payloads that cannot be
// decoded are counted and otherwise ignored.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.BatchReceived:
		var p domain.BatchReceivedPayload
		if p, err = event.DecodePayload[domain.BatchReceivedPayload](evt.Payload); err == nil {
			BatchesReceived.WithLabelValues(strconv.FormatBool(p.Serialized)).Inc()
			UnitsReceived.Add(float64(p.Quantity))
			setStock(p.ItemID, p.NewStock)
		}

	case event.BatchDeleted:
		var p domain.BatchDeletedPayload
		if p, err = event.DecodePayload[domain.BatchDeletedPayload](evt.Payload); err == nil {
			setStock(p.ItemID, p.NewStock)
		}

	case event.DeploymentCreated:
		var p domain.DeploymentCreatedPayload
		if p, err = event.DecodePayload[domain.DeploymentCreatedPayload](evt.Payload); err == nil {
			DeploymentsCreated.WithLabelValues(string(p.DeploymentType), strconv.FormatBool(p.Serialized)).Inc()
			UnitsDeployed.Add(float64(p.Quantity))
			setStock(p.ItemID, p.NewStock)
		}

	case event.DeploymentReturned:
		var p domain.DeploymentReturnedPayload
		if p, err = event.DecodePayload[domain.DeploymentReturnedPayload](evt.Payload); err == nil {
			UnitsReturned.WithLabelValues(ConditionGood).Add(float64(p.Good))
			UnitsReturned.WithLabelValues(ConditionDamaged).Add(float64(p.Damaged))
			UnitsReturned.WithLabelValues(ConditionLost).Add(float64(p.Lost))
		}

	case event.SerialStatusChanged:
		var p domain.SerialStatusChangedPayload
		if p, err = event.DecodePayload[domain.SerialStatusChangedPayload](evt.Payload); err == nil {
			SerialStatusChanges.WithLabelValues(string(p.To)).Inc()
		}

	case event.NotificationCreated:
		var p domain.NotificationCreatedPayload
		if p, err = event.DecodePayload[domain.NotificationCreatedPayload](evt.Payload); err == nil {
			NotificationsCreated.WithLabelValues(string(p.Notification.Type), string(p.Notification.Priority)).Inc()
		}
	}

	log := logger.FromContext(ctx)
	if err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgEventPayloadDecodeFailed, "type", evt.Type, "error", err)
		return nil
	}
	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

// RecordLedgerCheck exports the drift of a ledger report.
func (e *EventMetricsCollector) RecordLedgerCheck(r ledger.Report) {
	LedgerDrift.WithLabelValues(itemLabel(r.ItemID)).Set(float64(r.Drift))
	setStock(r.ItemID, r.QuantityInStock)
}

func setStock(itemID int64, stock int) {
	StockLevel.WithLabelValues(itemLabel(itemID)).Set(float64(stock))
}

func itemLabel(id int64) string {
	return strconv.FormatInt(id, 10)
}
