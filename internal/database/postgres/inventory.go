package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/database/generated"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/domain"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/repository"
)

// InventoryRepository implements repository.Inventory for PostgreSQL using sqlc
type InventoryRepository struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

// NewInventoryRepository creates a new InventoryRepository
func NewInventoryRepository(db *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{
		db: db,
		q:  generated.New(db),
	}
}

// BeginTx starts a new transaction
func (r *InventoryRepository) BeginTx(ctx context.Context) (repository.InventoryTx, error) {
	tx, err := beginStoreTx(ctx, r.db, r.q)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// CreateCategory inserts a category and fills in its generated fields
func (r *InventoryRepository) CreateCategory(ctx context.Context, c *domain.Category) error {
	row, err := r.q.CreateCategory(ctx, generated.CreateCategoryParams{Name: c.Name, Type: string(c.Type)})
	if err != nil {
		return writeError(err, ErrMsgFailedToCreateCategory)
	}
	*c = toCategory(row)
	return nil
}

// GetCategory retrieves a category by ID
func (r *InventoryRepository) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	row, err := r.q.GetCategory(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetCategory, err)
	}
	c := toCategory(row)
	return &c, nil
}

// ListCategories returns all categories ordered by name
func (r *InventoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.q.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListCategories, err)
	}
	return mapAll(rows, toCategory), nil
}

// CreateItem inserts an item with zero stock
func (r *InventoryRepository) CreateItem(ctx context.Context, item *domain.InventoryItem) error {
	row, err := r.q.CreateInventoryItem(ctx, generated.CreateInventoryItemParams{
		Name:          item.Name,
		CategoryID:    ptrToInt8(item.CategoryID),
		Description:   item.Description,
		Unit:          item.Unit,
		MinStockLevel: int32(item.MinStockLevel),
		IsReturnable:  ptrToBool(item.IsReturnable),
		CreatedBy:     item.CreatedBy,
	})
	if err != nil {
		return writeError(err, ErrMsgFailedToCreateItem)
	}
	*item = toItem(row)
	return nil
}

// GetItem retrieves an item by ID
func (r *InventoryRepository) GetItem(ctx context.Context, id int64) (*domain.InventoryItem, error) {
	return getItem(ctx, r.q, id)
}

// ListItems returns active items matching the filter
func (r *InventoryRepository) ListItems(ctx context.Context, f domain.ItemFilter) ([]domain.InventoryItem, error) {
	limit, offset := domain.NormalizePage(f.Limit, f.Offset)
	rows, err := r.q.ListInventoryItems(ctx, generated.ListInventoryItemsParams{
		CategoryID:   ptrToInt8(f.CategoryID),
		LowStockOnly: f.LowStockOnly,
		Limit:        int32(limit),
		Offset:       int32(offset),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListItems, err)
	}
	return mapAll(rows, toItem), nil
}

// GetSerializedItem retrieves a serialized unit by ID
func (r *InventoryRepository) GetSerializedItem(ctx context.Context, id int64) (*domain.SerializedItem, error) {
	row, err := r.q.GetSerializedItem(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSerializedItemNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetSerializedItem, err)
	}
	unit := toSerializedItem(row)
	return &unit, nil
}

// ListSerializedItems returns serialized units matching the filter
func (r *InventoryRepository) ListSerializedItems(ctx context.Context, f domain.SerialFilter) ([]domain.SerializedItem, error) {
	limit, offset := domain.NormalizePage(f.Limit, f.Offset)
	rows, err := r.q.ListSerializedItems(ctx, generated.ListSerializedItemsParams{
		ItemID:  ptrToInt8(f.ItemID),
		BatchID: ptrToInt8(f.BatchID),
		Status:  ptrToText(f.Status),
		Limit:   int32(limit),
		Offset:  int32(offset),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListSerializedItems, err)
	}
	return mapAll(rows, toSerializedItem), nil
}

// ListNotifications returns notifications, newest first
func (r *InventoryRepository) ListNotifications(ctx context.Context, f domain.NotificationFilter) ([]domain.Notification, error) {
	limit, offset := domain.NormalizePage(f.Limit, f.Offset)
	rows, err := r.q.ListNotifications(ctx, generated.ListNotificationsParams{
		UnreadOnly: f.UnreadOnly,
		Limit:      int32(limit),
		Offset:     int32(offset),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListNotifications, err)
	}
	return mapAll(rows, toNotification), nil
}

// MarkNotificationRead flags a notification as read
func (r *InventoryRepository) MarkNotificationRead(ctx context.Context, id int64) error {
	n, err := r.q.MarkNotificationRead(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarkNotification, err)
	}
	if n == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}

func getItem(ctx context.Context, q *generated.Queries, id int64) (*domain.InventoryItem, error) {
	row, err := q.GetInventoryItem(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetItem, err)
	}
	item := toItem(row)
	return &item, nil
}
