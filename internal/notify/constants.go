package notify

import "time"

// Expiry thresholds in days
const (
	ExpiryWarningDays = 30
	ExpiryUrgentDays  = 7
)

// DedupWindow is how long a sweep-generated notification suppresses an identical one.
const DedupWindow = 24 * time.Hour

// Message formats
const (
	MsgLowStock          = "%s is low on stock: %d %s remaining (minimum %d)"
	MsgOutOfStock        = "%s is out of stock"
	MsgExpiringSoon      = "Batch %s of %s expires in %d day(s) on %s"
	MsgExpired           = "Batch %s of %s expired on %s"
	MsgExpiringSummary   = "%d batch(es) of %s expire within %d days, earliest on %s"
	MsgEquipmentReturn   = "%s returned from %s: %d good, %d damaged, %d lost"
	MsgOverdueReturn     = "Deployment #%d of %s to %s was due back on %s"
	MsgMaintenanceDue    = "%s unit %s moved to maintenance"
	DateDisplayLayout    = "2006-01-02"
	DiscordEmbedTitleFmt = "%s (%s)"
)

// Log messages
const (
	LogMsgNotificationFailed  = "Failed to record notification"
	LogMsgNotificationDedup   = "Failed to check recent notifications"
	LogMsgSinkDelivered       = "Notification delivered"
	LogMsgSinkSkipped         = "Notification below sink priority, skipping"
	LogMsgDiscordWebhookParse = "Invalid Discord webhook URL"
)

// Discord embed colors by priority
const (
	ColorLow    = 0x95A5A6
	ColorMedium = 0xF1C40F
	ColorHigh   = 0xE74C3C
)
