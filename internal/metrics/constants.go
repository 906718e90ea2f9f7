package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Inventory metric names
const (
	MetricNameBatchesReceived      = "inventory_batches_received_total"
	MetricNameUnitsReceived        = "inventory_units_received_total"
	MetricNameDeploymentsCreated   = "inventory_deployments_created_total"
	MetricNameUnitsDeployed        = "inventory_units_deployed_total"
	MetricNameUnitsReturned        = "inventory_units_returned_total"
	MetricNameSerialStatusChanges  = "inventory_serial_status_changes_total"
	MetricNameNotificationsCreated = "inventory_notifications_created_total"
	MetricNameStockLevel           = "inventory_stock_level"
	MetricNameLedgerDrift          = "inventory_ledger_drift"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Inventory metric help text
const (
	HelpTextBatchesReceived      = "Total number of batches received"
	HelpTextUnitsReceived        = "Total number of units received across all batches"
	HelpTextDeploymentsCreated   = "Total number of deployments created"
	HelpTextUnitsDeployed        = "Total number of units sent out on deployments"
	HelpTextUnitsReturned        = "Total number of deployed units reported back, by condition class"
	HelpTextSerialStatusChanges  = "Total number of operator status changes on serialized units"
	HelpTextNotificationsCreated = "Total number of inventory notifications created"
	HelpTextStockLevel           = "Stock on hand after the last movement of an item"
	HelpTextLedgerDrift          = "Stock counter minus the stock implied by recorded movements"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod     = "method"
	LabelPath       = "path"
	LabelStatus     = "status"
	LabelType       = "type"
	LabelItem       = "item_id"
	LabelSerialized = "serialized"
	LabelCondition  = "condition"
	LabelPriority   = "priority"
)

// Condition class label values
const (
	ConditionGood    = "good"
	ConditionDamaged = "damaged"
	ConditionLost    = "lost"
)

// UnmatchedRoute labels requests that did not match a route.
const UnmatchedRoute = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgEventPayloadDecodeFailed = "Failed to decode event payload for metrics"
	LogMsgMetricsRecorded          = "Metrics recorded for event"
)
