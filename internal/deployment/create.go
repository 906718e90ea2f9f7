package deployment

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/domain"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/event"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/logger"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/notify"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/repository"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/serial"
)

// CreateDeploymentInput sends stock out. Exactly one of Quantity and
// SerializedItemIDs must be set.
type CreateDeploymentInput struct {
	ItemID             int64                 `json:"item_id" validate:"required,gt=0"`
	DeploymentType     domain.DeploymentType `json:"deployment_type" validate:"required,deployment_type"`
	Quantity           int                   `json:"quantity,omitempty" validate:"gte=0"`
	SerializedItemIDs  []int64               `json:"serialized_item_ids,omitempty" validate:"omitempty,dive,gt=0"`
	Location           string                `json:"deployment_location" validate:"required,max=255"`
	DeployedTo         *int64                `json:"deployed_to,omitempty"`
	ExpectedReturnDate *time.Time            `json:"expected_return_date,omitempty"`
	Notes              string                `json:"notes,omitempty" validate:"max=2000"`
	DeployedBy         int64                 `json:"-"`
}

// CreateResult is a committed deployment.
type CreateResult struct {
	Deployment        domain.Deployment `json:"deployment"`
	SerializedItemIDs []int64           `json:"serialized_item_ids,omitempty"`
	NewStock          int               `json:"new_stock"`
}

func (in *CreateDeploymentInput) check() error {
	if !in.DeploymentType.Valid() {
		return domain.ErrInvalidDeploymentType
	}
	if strings.TrimSpace(in.Location) == "" {
		return domain.ErrMissingLocation
	}
	if in.Quantity < 0 {
		return domain.ErrInvalidQuantity
	}
	if (in.Quantity > 0) == (len(in.SerializedItemIDs) > 0) {
		return domain.ErrInvalidDeploymentRequest
	}
	return nil
}

// CreateDeployment takes stock out for a bulk quantity or a set of
// serialized units. The item row is locked before any unit rows.
func (s *service) CreateDeployment(ctx context.Context, in CreateDeploymentInput) (*CreateResult, error) {
	if err := in.check(); err != nil {
		return nil, err
	}

	var ids []int64
	if len(in.SerializedItemIDs) > 0 {
		var err error
		if ids, err = uniqueSorted(in.SerializedItemIDs); err != nil {
			return nil, err
		}
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	item, err := tx.GetItemForUpdate(ctx, in.ItemID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	d := &domain.Deployment{
		ItemID:             item.ID,
		DeployedBy:         in.DeployedBy,
		DeployedTo:         in.DeployedTo,
		DeploymentType:     in.DeploymentType,
		Location:           strings.TrimSpace(in.Location),
		DeploymentDate:     now,
		ExpectedReturnDate: in.ExpectedReturnDate,
		Status:             domain.DeploymentDeployed,
		Notes:              in.Notes,
	}

	var newStock int
	if ids == nil {
		newStock, err = s.deployBulk(ctx, tx, item, d, in.Quantity)
	} else {
		newStock, err = s.deploySerialized(ctx, tx, item, d, ids, now)
	}
	if err != nil {
		return nil, err
	}

	rec := notify.NewRecorder(tx)
	if n, ok := notify.LowStock(item, newStock); ok {
		rec.Record(ctx, n)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}

	s.afterCommit(ctx, event.NewDeploymentCreatedEvent(d, newStock), rec.Created())
	logger.FromContext(ctx).Info(LogMsgDeploymentCreated,
		"deployment_id", d.ID,
		"item_id", d.ItemID,
		"quantity", d.QuantityDeployed,
		"serialized", d.IsSerialized,
		"new_stock", newStock)

	return &CreateResult{Deployment: *d, SerializedItemIDs: ids, NewStock: newStock}, nil
}

func (s *service) deployBulk(ctx context.Context, tx repository.DeploymentTx, item *domain.InventoryItem, d *domain.Deployment, qty int) (int, error) {
	category, err := itemCategory(ctx, tx, item)
	if err != nil {
		return 0, err
	}
	if serial.RequiresSerialization(*item, category) {
		return 0, domain.ErrBulkDeploySerialized
	}
	if qty > item.QuantityInStock {
		return 0, fmt.Errorf("%w: requested %d, available %d", domain.ErrInsufficientStock, qty, item.QuantityInStock)
	}

	newStock, err := tx.AdjustStock(ctx, item.ID, -qty)
	if err != nil {
		return 0, fmt.Errorf("failed to update stock: %w", err)
	}

	d.QuantityDeployed = qty
	if err := tx.CreateDeployment(ctx, d); err != nil {
		return 0, fmt.Errorf("failed to create deployment: %w", err)
	}
	return newStock, nil
}

func (s *service) deploySerialized(ctx context.Context, tx repository.DeploymentTx, item *domain.InventoryItem, d *domain.Deployment, ids []int64, now time.Time) (int, error) {
	units, err := tx.GetSerializedItemsForUpdate(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to lock serialized items: %w", err)
	}

	byID := make(map[int64]domain.SerializedItem, len(units))
	for _, u := range units {
		byID[u.ID] = u
	}
	var foreign, unavailable []int64
	for _, id := range ids {
		u, ok := byID[id]
		switch {
		case !ok || u.ItemID != item.ID:
			foreign = append(foreign, id)
		case u.Status != domain.SerialAvailable:
			unavailable = append(unavailable, id)
		}
	}
	if len(foreign) > 0 {
		return 0, domain.WithIDs(domain.ErrSerialNotInItem, foreign)
	}
	if len(unavailable) > 0 {
		return 0, domain.WithIDs(domain.ErrSerialNotAvailable, unavailable)
	}
	if len(ids) > item.QuantityInStock {
		return 0, fmt.Errorf("%w: requested %d, available %d", domain.ErrInsufficientStock, len(ids), item.QuantityInStock)
	}

	newStock, err := tx.AdjustStock(ctx, item.ID, -len(ids))
	if err != nil {
		return 0, fmt.Errorf("failed to update stock: %w", err)
	}

	d.QuantityDeployed = len(ids)
	d.IsSerialized = true
	if err := tx.CreateDeployment(ctx, d); err != nil {
		return 0, fmt.Errorf("failed to create deployment: %w", err)
	}
	if err := tx.CreateDeploymentLinks(ctx, d.ID, ids, now); err != nil {
		return 0, fmt.Errorf("failed to link serialized items: %w", err)
	}
	for _, id := range ids {
		if err := tx.UpdateSerializedItemStatus(ctx, id, domain.SerialDeployed, ""); err != nil {
			return 0, fmt.Errorf("failed to update serialized item %d: %w", id, err)
		}
	}
	return newStock, nil
}

// uniqueSorted returns ids in ascending order, which is also the row lock order.
func uniqueSorted(ids []int64) ([]int64, error) {
	out := append([]int64(nil), ids...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	var dupes []int64
	for i := 1; i < len(out); i++ {
		if out[i] == out[i-1] && (len(dupes) == 0 || dupes[len(dupes)-1] != out[i]) {
			dupes = append(dupes, out[i])
		}
	}
	if len(dupes) > 0 {
		return nil, domain.WithIDs(domain.ErrDuplicateSerialIDs, dupes)
	}
	return out, nil
}

func itemCategory(ctx context.Context, tx repository.DeploymentTx, item *domain.InventoryItem) (*domain.Category, error) {
	if item.CategoryID == nil {
		return nil, nil
	}
	c, err := tx.GetCategory(ctx, *item.CategoryID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return c, nil
}
