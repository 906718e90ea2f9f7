package bootstrap

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/config"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/domain"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/event"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/eventlog"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/metrics"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/notify"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/sse"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus        event.Bus
	EventLogService eventlog.Service
	Config          *config.Config
}

// EventHandlers is what registration produced that the rest of startup needs.
type EventHandlers struct {
	Metrics *metrics.EventMetricsCollector
	Stream  *sse.Hub
	Closers []io.Closer
}

// RegisterEventHandlers sets up all event subscribers:
//   - metrics collector (event counters and stock gauges)
//   - event logger (persists the audit trail)
//   - Discord webhook sink, when a webhook URL is configured
//   - Kafka sink, when brokers are configured
//   - live SSE stream hub
func RegisterEventHandlers(deps EventHandlerDependencies) (*EventHandlers, error) {
	out := &EventHandlers{}

	out.Metrics = metrics.NewEventMetricsCollector()
	if err := out.Metrics.Register(deps.EventBus); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	if err := deps.EventLogService.Subscribe(deps.EventBus); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedSubscribeEventLogger, err)
	}
	slog.Info(LogMsgEventLoggerInitialized)

	cfg := deps.Config
	minPriority := domain.NotificationPriority(cfg.DiscordMinPriority)

	if cfg.DiscordWebhookURL != "" {
		sink, err := notify.NewDiscordSink(cfg.DiscordWebhookURL, DiscordSinkUsername)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDiscordSink, err)
		}
		notify.Subscribe(deps.EventBus, sink, minPriority)
		slog.Info(LogMsgDiscordSinkRegistered, "min_priority", minPriority)
	}

	if len(cfg.KafkaBrokers) > 0 {
		sink := notify.NewKafkaSink(cfg.KafkaBrokers, cfg.KafkaTopic)
		// Every notification goes to Kafka; consumers filter.
		notify.Subscribe(deps.EventBus, sink, domain.PriorityLow)
		out.Closers = append(out.Closers, sink)
		slog.Info(LogMsgKafkaSinkRegistered, "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	out.Stream = sse.NewHub()
	out.Stream.Start()
	sse.NewSubscriber(out.Stream, deps.EventBus).Subscribe()

	return out, nil
}
