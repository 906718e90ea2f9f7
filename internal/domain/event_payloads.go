package domain

import "time"

// BatchReceivedPayload describes a committed batch receipt.
type BatchReceivedPayload struct {
	BatchID     int64     `json:"batch_id"`
	BatchNumber string    `json:"batch_number"`
	ItemID      int64     `json:"item_id"`
	ItemName    string    `json:"item_name"`
	Quantity    int       `json:"quantity"`
	Serialized  bool      `json:"serialized"`
	NewStock    int       `json:"new_stock"`
	ReceivedBy  int64     `json:"received_by"`
	Timestamp   time.Time `json:"timestamp"`
}

// BatchDeletedPayload describes a soft-deleted batch.
type BatchDeletedPayload struct {
	BatchID   int64     `json:"batch_id"`
	ItemID    int64     `json:"item_id"`
	Quantity  int       `json:"quantity"`
	NewStock  int       `json:"new_stock"`
	ActorID   int64     `json:"actor_id"`
	Timestamp time.Time `json:"timestamp"`
}

// DeploymentCreatedPayload describes a committed deployment.
type DeploymentCreatedPayload struct {
	DeploymentID   int64          `json:"deployment_id"`
	ItemID         int64          `json:"item_id"`
	DeploymentType DeploymentType `json:"deployment_type"`
	Quantity       int            `json:"quantity"`
	Serialized     bool           `json:"serialized"`
	NewStock       int            `json:"new_stock"`
	DeployedBy     int64          `json:"deployed_by"`
	Timestamp      time.Time      `json:"timestamp"`
}

// DeploymentReturnedPayload describes a reconciled return.
type DeploymentReturnedPayload struct {
	DeploymentID int64            `json:"deployment_id"`
	ItemID       int64            `json:"item_id"`
	Status       DeploymentStatus `json:"status"`
	Good         int              `json:"good"`
	Damaged      int              `json:"damaged"`
	Lost         int              `json:"lost"`
	Skipped      int              `json:"skipped"`
	StockDelta   int              `json:"stock_delta"`
	ActorID      int64            `json:"actor_id"`
	Timestamp    time.Time        `json:"timestamp"`
}

// SerialStatusChangedPayload describes an administrative unit status change.
type SerialStatusChangedPayload struct {
	SerializedItemID int64                `json:"serialized_item_id"`
	ItemID           int64                `json:"item_id"`
	From             SerializedItemStatus `json:"from"`
	To               SerializedItemStatus `json:"to"`
	ActorID          int64                `json:"actor_id"`
	Timestamp        time.Time            `json:"timestamp"`
}

// NotificationCreatedPayload carries a persisted notification to external sinks.
type NotificationCreatedPayload struct {
	Notification Notification `json:"notification"`
}
