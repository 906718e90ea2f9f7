package repository

import (
	"context"
	"time"

	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/domain"
)

// Batch defines the interface for batch receipt persistence
type Batch interface {
	GetBatch(ctx context.Context, id int64) (*domain.Batch, error)
	ListBatches(ctx context.Context, f domain.BatchFilter) ([]domain.Batch, error)
	ListBatchesExpiringBefore(ctx context.Context, until time.Time) ([]domain.Batch, error)
	GetItem(ctx context.Context, id int64) (*domain.InventoryItem, error)
	GetItemByName(ctx context.Context, name string) (*domain.InventoryItem, error)
	BeginTx(ctx context.Context) (BatchTx, error)
}

// BatchTx defines the interface for batch receipt transactions
type BatchTx interface {
	Tx
	StockTx
	NotificationWriter
	SerialStatusTx
	GetCategory(ctx context.Context, id int64) (*domain.Category, error)
	CreateBatch(ctx context.Context, b *domain.Batch) error
	CreateSerializedItems(ctx context.Context, items []domain.SerializedItem) error
	GetBatchForUpdate(ctx context.Context, id int64) (*domain.Batch, error)
	ListSerializedItemsByBatchForUpdate(ctx context.Context, batchID int64) ([]domain.SerializedItem, error)
	DeactivateBatch(ctx context.Context, id int64) error
}
