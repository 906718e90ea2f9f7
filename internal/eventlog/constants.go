package eventlog

// Payload keys that identify the item and the acting user.
const (
	PayloadKeyItemID     = "item_id"
	PayloadKeyActorID    = "actor_id"
	PayloadKeyReceivedBy = "received_by"
	PayloadKeyDeployedBy = "deployed_by"
)

// DefaultListLimit caps List when the filter has no limit.
const DefaultListLimit = 100

// JobNameCleanup names the retention job in logs.
const JobNameCleanup = "event_log_cleanup"

// Log messages - service events
const (
	LogMsgEventPayloadInvalid = "Event payload could not be flattened, skipping log"
	LogMsgFailedToLogEvent    = "Failed to log event to database"
	LogMsgEventLogged         = "Event logged to database"
)

// Log messages - cleanup job
const (
	LogMsgCleanupJobStarting  = "Starting event log cleanup job"
	LogMsgCleanupJobFailed    = "Event log cleanup failed"
	LogMsgCleanupJobCompleted = "Event log cleanup completed"
)
