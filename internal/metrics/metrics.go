package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Inventory Metrics
var (
	BatchesReceived = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBatchesReceived,
			Help: HelpTextBatchesReceived,
		},
		[]string{LabelSerialized},
	)

	UnitsReceived = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameUnitsReceived,
			Help: HelpTextUnitsReceived,
		},
	)

	DeploymentsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDeploymentsCreated,
			Help: HelpTextDeploymentsCreated,
		},
		[]string{LabelType, LabelSerialized},
	)

	UnitsDeployed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameUnitsDeployed,
			Help: HelpTextUnitsDeployed,
		},
	)

	UnitsReturned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUnitsReturned,
			Help: HelpTextUnitsReturned,
		},
		[]string{LabelCondition},
	)

	SerialStatusChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSerialStatusChanges,
			Help: HelpTextSerialStatusChanges,
		},
		[]string{LabelStatus},
	)

	NotificationsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameNotificationsCreated,
			Help: HelpTextNotificationsCreated,
		},
		[]string{LabelType, LabelPriority},
	)

	StockLevel = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameStockLevel,
			Help: HelpTextStockLevel,
		},
		[]string{LabelItem},
	)

	LedgerDrift = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameLedgerDrift,
			Help: HelpTextLedgerDrift,
		},
		[]string{LabelItem},
	)
)
