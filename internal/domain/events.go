package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "batch.received")
const (
	// EventTypeBatchReceived is published after a batch receipt commits
	EventTypeBatchReceived = "batch.received"

	// EventTypeBatchDeleted is published after a batch is soft-deleted
	EventTypeBatchDeleted = "batch.deleted"

	// EventTypeDeploymentCreated is published after a deployment commits
	EventTypeDeploymentCreated = "deployment.created"

	// EventTypeDeploymentReturned is published after a return is reconciled
	EventTypeDeploymentReturned = "deployment.returned"

	// EventTypeSerialStatusChanged is published after an administrative status change
	EventTypeSerialStatusChanged = "serial.status_changed"

	// EventTypeNotificationCreated is published for every persisted notification
	EventTypeNotificationCreated = "notification.created"
)
