package domain

import "time"

// NotificationType identifies what an inventory notification is about.
type NotificationType string

const (
	NotificationLowStock        NotificationType = "LOW_STOCK"
	NotificationExpiringSoon    NotificationType = "EXPIRING_SOON"
	NotificationMaintenanceDue  NotificationType = "MAINTENANCE_DUE"
	NotificationEquipmentReturn NotificationType = "EQUIPMENT_RETURN"
	NotificationOverdueReturn   NotificationType = "OVERDUE_RETURN"
)

// NotificationPriority orders notifications by urgency.
type NotificationPriority string

const (
	PriorityLow    NotificationPriority = "LOW"
	PriorityMedium NotificationPriority = "MEDIUM"
	PriorityHigh   NotificationPriority = "HIGH"
)

// Notification is a persisted alert for inventory staff.
type Notification struct {
	ID           int64                `json:"id"`
	Type         NotificationType     `json:"type"`
	ItemID       *int64               `json:"item_id,omitempty"`
	DeploymentID *int64               `json:"deployment_id,omitempty"`
	Message      string               `json:"message"`
	Priority     NotificationPriority `json:"priority"`
	IsRead       bool                 `json:"is_read"`
	CreatedAt    time.Time            `json:"created_at"`
}

// NotificationFilter narrows notification listings.
type NotificationFilter struct {
	UnreadOnly bool
	Limit      int
	Offset     int
}
