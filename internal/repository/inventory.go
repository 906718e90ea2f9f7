package repository

import (
	"context"

	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/domain"
)

// Inventory defines the interface for item, category and unit persistence
type Inventory interface {
	CreateCategory(ctx context.Context, c *domain.Category) error
	GetCategory(ctx context.Context, id int64) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)

	CreateItem(ctx context.Context, item *domain.InventoryItem) error
	GetItem(ctx context.Context, id int64) (*domain.InventoryItem, error)
	ListItems(ctx context.Context, f domain.ItemFilter) ([]domain.InventoryItem, error)

	GetSerializedItem(ctx context.Context, id int64) (*domain.SerializedItem, error)
	ListSerializedItems(ctx context.Context, f domain.SerialFilter) ([]domain.SerializedItem, error)

	ListNotifications(ctx context.Context, f domain.NotificationFilter) ([]domain.Notification, error)
	MarkNotificationRead(ctx context.Context, id int64) error

	BeginTx(ctx context.Context) (InventoryTx, error)
}

// InventoryTx defines the interface for administrative unit status changes
type InventoryTx interface {
	Tx
	StockTx
	NotificationWriter
	SerialStatusTx
	GetSerializedItemForUpdate(ctx context.Context, id int64) (*domain.SerializedItem, error)
}
