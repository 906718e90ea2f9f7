package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/database/generated"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/domain"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/repository"
)

// BatchRepository implements repository.Batch for PostgreSQL
type BatchRepository struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

// NewBatchRepository creates a new BatchRepository
func NewBatchRepository(db *pgxpool.Pool) *BatchRepository {
	return &BatchRepository{
		db: db,
		q:  generated.New(db),
	}
}

// BeginTx starts a new transaction
func (r *BatchRepository) BeginTx(ctx context.Context) (repository.BatchTx, error) {
	tx, err := beginStoreTx(ctx, r.db, r.q)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// GetBatch retrieves a batch by ID
func (r *BatchRepository) GetBatch(ctx context.Context, id int64) (*domain.Batch, error) {
	row, err := r.q.GetBatch(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBatchNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetBatch, err)
	}
	b := toBatch(row)
	return &b, nil
}

// ListBatches returns batches matching the filter, newest first
func (r *BatchRepository) ListBatches(ctx context.Context, f domain.BatchFilter) ([]domain.Batch, error) {
	limit, offset := domain.NormalizePage(f.Limit, f.Offset)
	rows, err := r.q.ListBatches(ctx, generated.ListBatchesParams{
		ItemID:          ptrToInt8(f.ItemID),
		IncludeInactive: f.IncludeInactive,
		Limit:           int32(limit),
		Offset:          int32(offset),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListBatches, err)
	}
	return mapAll(rows, toBatch), nil
}

// ListBatchesExpiringBefore returns active batches whose expiry date is on or before until
func (r *BatchRepository) ListBatchesExpiringBefore(ctx context.Context, until time.Time) ([]domain.Batch, error) {
	rows, err := r.q.ListBatchesExpiringBefore(ctx, timeToDate(until))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListBatches, err)
	}
	return mapAll(rows, toBatch), nil
}

// GetItem retrieves an item by ID
func (r *BatchRepository) GetItem(ctx context.Context, id int64) (*domain.InventoryItem, error) {
	return getItem(ctx, r.q, id)
}

// GetItemByName retrieves an item by case-insensitive name
func (r *BatchRepository) GetItemByName(ctx context.Context, name string) (*domain.InventoryItem, error) {
	row, err := r.q.GetInventoryItemByName(ctx, name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetItem, err)
	}
	item := toItem(row)
	return &item, nil
}
