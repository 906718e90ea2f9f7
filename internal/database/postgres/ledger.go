package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/database/generated"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/domain"
)

// LedgerRepository implements repository.Ledger for PostgreSQL
type LedgerRepository struct {
	q *generated.Queries
}

// NewLedgerRepository creates a new LedgerRepository
func NewLedgerRepository(db *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{q: generated.New(db)}
}

// GetLedgerSnapshot reads the stock counter and the movement totals in one statement
func (r *LedgerRepository) GetLedgerSnapshot(ctx context.Context, itemID int64) (*domain.LedgerSnapshot, error) {
	row, err := r.q.GetStockLedger(ctx, itemID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetLedger, err)
	}
	return &domain.LedgerSnapshot{
		ItemID:                row.ID,
		ItemName:              row.Name,
		QuantityInStock:       int(row.QuantityInStock),
		ReceivedActive:        int(row.ReceivedActive),
		OutstandingBulk:       int(row.OutstandingBulk),
		UnavailableSerialized: int(row.UnavailableSerialized),
	}, nil
}

// ListItemIDs returns the ids of all active items
func (r *LedgerRepository) ListItemIDs(ctx context.Context) ([]int64, error) {
	ids, err := r.q.ListInventoryItemIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListItems, err)
	}
	return ids, nil
}
