package inventory

import "github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/domain"

// Log messages
const (
	LogMsgCategoryCreated    = "Category created"
	LogMsgItemCreated        = "Inventory item created"
	LogMsgSerialStatusChange = "Serialized item status changed"
	LogMsgNotificationRead   = "Notification marked read"
)

// Statuses an operator may set on a unit directly. DEPLOYED is reached only
// through a deployment.
var settableStatuses = map[domain.SerializedItemStatus]bool{
	domain.SerialAvailable:   true,
	domain.SerialMaintenance: true,
	domain.SerialDamaged:     true,
	domain.SerialLost:        true,
	domain.SerialRetired:     true,
}
