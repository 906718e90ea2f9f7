package repository

import (
	"context"
	"time"

	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/domain"
)

// Tx defines the interface for transactional operations
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// StockTx locks and adjusts the stock counter of an item. The item row
// stays locked until the transaction ends.
type StockTx interface {
	GetItemForUpdate(ctx context.Context, id int64) (*domain.InventoryItem, error)
	// AdjustStock applies delta and returns the resulting stock level.
	AdjustStock(ctx context.Context, itemID int64, delta int) (int, error)
}

// NotificationWriter persists notifications inside an open transaction.
// A failed CreateNotification must leave the surrounding transaction usable.
type NotificationWriter interface {
	CreateNotification(ctx context.Context, n *domain.Notification) error
	HasRecentNotification(ctx context.Context, t domain.NotificationType, itemID, deploymentID *int64, since time.Time) (bool, error)
}

// SerialStatusTx rewrites serialized unit statuses.
type SerialStatusTx interface {
	UpdateSerializedItemStatus(ctx context.Context, id int64, status domain.SerializedItemStatus, note string) error
}
