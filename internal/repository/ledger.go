package repository

import (
	"context"

	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/domain"
)

// Ledger defines the interface for stock identity reads
type Ledger interface {
	GetLedgerSnapshot(ctx context.Context, itemID int64) (*domain.LedgerSnapshot, error)
	ListItemIDs(ctx context.Context) ([]int64, error)
}
