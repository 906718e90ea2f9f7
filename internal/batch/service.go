package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/cache"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/domain"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/event"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/logger"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/notify"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/repository"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/serial"
)

// Service defines the batch receipt interface
type Service interface {
	ReceiveBatch(ctx context.Context, in ReceiveBatchInput) (*ReceiveResult, error)
	GetBatch(ctx context.Context, id int64) (*domain.Batch, error)
	ListBatches(ctx context.Context, f domain.BatchFilter) ([]domain.Batch, error)
	DeleteBatch(ctx context.Context, id, actorID int64) error
	ImportCSV(ctx context.Context, r io.Reader, actorID int64) (*ImportResult, error)
	NotifyExpiring(ctx context.Context) (int, error)
}

// ReceiveBatchInput describes one incoming delivery.
type ReceiveBatchInput struct {
	ItemID     int64           `json:"item_id" validate:"required,gt=0"`
	Quantity   int             `json:"quantity" validate:"required,gt=0,lte=10000"`
	Supplier   string          `json:"supplier" validate:"max=255"`
	UnitCost   decimal.Decimal `json:"unit_cost" swaggertype:"string"`
	ExpiryDate *time.Time      `json:"expiry_date,omitempty"`
	Notes      string          `json:"notes" validate:"max=2000"`
	ReceivedBy int64           `json:"-"`
}

// ReceiveResult is a committed receipt.
type ReceiveResult struct {
	Batch         domain.Batch `json:"batch"`
	Serialized    bool         `json:"serialized"`
	SerialNumbers []string     `json:"serial_numbers,omitempty"`
	NewStock      int          `json:"new_stock"`
}

type service struct {
	repo      repository.Batch
	publisher event.Publisher
	cache     *cache.Layer
	now       func() time.Time
}

// NewService creates a new batch service. publisher and cache may be nil.
func NewService(repo repository.Batch, publisher event.Publisher, cacheLayer *cache.Layer) Service {
	return &service{
		repo:      repo,
		publisher: publisher,
		cache:     cacheLayer,
		now:       time.Now,
	}
}

// ReceiveBatch records a delivery, mints serial numbers when the item is
// tracked per unit and raises stock, all in one transaction.
func (s *service) ReceiveBatch(ctx context.Context, in ReceiveBatchInput) (*ReceiveResult, error) {
	if err := checkQuantity(in.Quantity); err != nil {
		return nil, err
	}

	res, notes, err := s.receive(ctx, in)
	if err != nil {
		return nil, err
	}

	s.afterCommit(ctx, notes)
	if s.publisher != nil {
		item := &domain.InventoryItem{ID: res.Batch.ItemID}
		if it, err := s.repo.GetItem(ctx, res.Batch.ItemID); err == nil {
			item = it
		}
		s.publisher.PublishWithRetry(ctx, event.NewBatchReceivedEvent(&res.Batch, item, res.Serialized, res.NewStock))
	}

	logger.FromContext(ctx).Info(LogMsgBatchReceived,
		"batch_id", res.Batch.ID,
		"batch_number", res.Batch.BatchNumber,
		"item_id", res.Batch.ItemID,
		"quantity", res.Batch.Quantity,
		"serialized", res.Serialized)
	return res, nil
}

func checkQuantity(qty int) error {
	if qty <= 0 {
		return domain.ErrInvalidQuantity
	}
	if qty > MaxBatchQuantity {
		return fmt.Errorf("%w: at most %d units per batch", domain.ErrInvalidQuantity, MaxBatchQuantity)
	}
	return nil
}

func (s *service) receive(ctx context.Context, in ReceiveBatchInput) (*ReceiveResult, []domain.Notification, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	item, err := tx.GetItemForUpdate(ctx, in.ItemID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
		}
		return nil, nil, fmt.Errorf("failed to lock item: %w", err)
	}

	category, err := s.category(ctx, tx, item)
	if err != nil {
		return nil, nil, err
	}
	serialized := serial.RequiresSerialization(*item, category)

	now := s.now()
	b := &domain.Batch{
		ItemID:      item.ID,
		BatchNumber: serial.BatchNumber(item.Name, now),
		Quantity:    in.Quantity,
		Supplier:    in.Supplier,
		UnitCost:    in.UnitCost,
		ExpiryDate:  in.ExpiryDate,
		ReceivedAt:  now,
		ReceivedBy:  in.ReceivedBy,
		Notes:       in.Notes,
	}
	if err := tx.CreateBatch(ctx, b); err != nil {
		return nil, nil, fmt.Errorf("failed to create batch: %w", err)
	}

	res := &ReceiveResult{Serialized: serialized}
	if serialized {
		categoryName := ""
		if category != nil {
			categoryName = category.Name
		}
		res.SerialNumbers = serial.Generate(serial.CategoryCode(categoryName), b.BatchNumber, in.Quantity, now)
		units := make([]domain.SerializedItem, len(res.SerialNumbers))
		for i, sn := range res.SerialNumbers {
			units[i] = domain.SerializedItem{
				SerialNumber: sn,
				BatchID:      b.ID,
				ItemID:       item.ID,
				Status:       domain.SerialAvailable,
			}
		}
		if err := tx.CreateSerializedItems(ctx, units); err != nil {
			return nil, nil, fmt.Errorf("failed to create serialized items: %w", err)
		}
	}

	res.NewStock, err = tx.AdjustStock(ctx, item.ID, in.Quantity)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to update stock: %w", err)
	}

	rec := notify.NewRecorder(tx)
	if n, ok := notify.ExpiringSoon(item, b, now); ok {
		rec.Record(ctx, n)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, fmt.Errorf("failed to commit: %w", err)
	}

	res.Batch = *b
	return res, rec.Created(), nil
}

func (s *service) category(ctx context.Context, tx repository.BatchTx, item *domain.InventoryItem) (*domain.Category, error) {
	if item.CategoryID == nil {
		return nil, nil
	}
	c, err := tx.GetCategory(ctx, *item.CategoryID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return c, nil
}

func (s *service) GetBatch(ctx context.Context, id int64) (*domain.Batch, error) {
	return cache.GetOrLoad(ctx, s.cache, cache.Key(cache.PrefixBatches, "id", id), func(ctx context.Context) (*domain.Batch, error) {
		return s.repo.GetBatch(ctx, id)
	})
}

func (s *service) ListBatches(ctx context.Context, f domain.BatchFilter) ([]domain.Batch, error) {
	f.Limit, f.Offset = domain.NormalizePage(f.Limit, f.Offset)
	key := cache.Key(cache.PrefixBatches, "list", itemKey(f.ItemID), f.IncludeInactive, f.Limit, f.Offset)
	return cache.GetOrLoad(ctx, s.cache, key, func(ctx context.Context) ([]domain.Batch, error) {
		return s.repo.ListBatches(ctx, f)
	})
}

func itemKey(id *int64) string {
	if id == nil {
		return "all"
	}
	return fmt.Sprint(*id)
}

// DeleteBatch soft-deletes a batch whose units are all still on the shelf,
// retiring its units and reversing the stock it added.
func (s *service) DeleteBatch(ctx context.Context, id, actorID int64) error {
	current, err := s.repo.GetBatch(ctx, id)
	if err != nil {
		return err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	item, err := tx.GetItemForUpdate(ctx, current.ItemID)
	if err != nil {
		return fmt.Errorf("failed to lock item: %w", err)
	}
	b, err := tx.GetBatchForUpdate(ctx, id)
	if err != nil {
		return err
	}
	if !b.IsActive {
		return domain.ErrBatchInactive
	}

	units, err := tx.ListSerializedItemsByBatchForUpdate(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to lock batch units: %w", err)
	}
	var busy []int64
	for _, u := range units {
		if u.Status != domain.SerialAvailable {
			busy = append(busy, u.ID)
		}
	}
	if len(busy) > 0 {
		return domain.WithIDs(domain.ErrBatchInUse, busy)
	}

	note := fmt.Sprintf(MsgBatchDeletedUnitNote, b.BatchNumber)
	for _, u := range units {
		if err := tx.UpdateSerializedItemStatus(ctx, u.ID, domain.SerialRetired, note); err != nil {
			return fmt.Errorf("failed to retire unit %d: %w", u.ID, err)
		}
	}
	if err := tx.DeactivateBatch(ctx, id); err != nil {
		return fmt.Errorf("failed to deactivate batch: %w", err)
	}
	newStock, err := tx.AdjustStock(ctx, item.ID, -b.Quantity)
	if err != nil {
		return fmt.Errorf("failed to update stock: %w", err)
	}

	rec := notify.NewRecorder(tx)
	if n, ok := notify.LowStock(item, newStock); ok {
		rec.Record(ctx, n)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	s.afterCommit(ctx, rec.Created())
	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, event.NewBatchDeletedEvent(b, newStock, actorID))
	}
	logger.FromContext(ctx).Info(LogMsgBatchDeleted, "batch_id", id, "item_id", item.ID, "actor_id", actorID)
	return nil
}

func (s *service) afterCommit(ctx context.Context, notes []domain.Notification) {
	s.cache.Invalidate(ctx, cache.StockPatterns()...)
	notify.Publish(ctx, s.publisher, notes)
}
