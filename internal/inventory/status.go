package inventory

import (
	"context"
	"fmt"

	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/cache"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/domain"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/event"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/logger"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/notify"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/repository"
)

// UpdateSerialStatusInput moves one unit between maintenance states.
type UpdateSerialStatusInput struct {
	SerializedItemID int64                       `json:"-"`
	Status           domain.SerializedItemStatus `json:"status" validate:"required"`
	Notes            string                      `json:"notes,omitempty" validate:"max=1000"`
	ActorID          int64                       `json:"-"`
}

// StatusChangeResult is a committed unit status change.
type StatusChangeResult struct {
	Unit     domain.SerializedItem       `json:"unit"`
	From     domain.SerializedItemStatus `json:"from"`
	NewStock int                         `json:"new_stock"`
}

// availability is 1 for a unit that counts towards stock.
func availability(s domain.SerializedItemStatus) int {
	if s == domain.SerialAvailable {
		return 1
	}
	return 0
}

// UpdateSerialStatus applies an operator status change to a unit that is
// not out on a deployment. Stock moves by one when the unit enters or
// leaves AVAILABLE.
func (s *service) UpdateSerialStatus(ctx context.Context, in UpdateSerialStatusInput) (*StatusChangeResult, error) {
	if !settableStatuses[in.Status] {
		return nil, domain.ErrInvalidStatus
	}

	current, err := s.repo.GetSerializedItem(ctx, in.SerializedItemID)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	item, err := tx.GetItemForUpdate(ctx, current.ItemID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock item: %w", err)
	}
	unit, err := tx.GetSerializedItemForUpdate(ctx, in.SerializedItemID)
	if err != nil {
		return nil, err
	}

	from := unit.Status
	if from == domain.SerialDeployed || from == domain.SerialRetired {
		return nil, fmt.Errorf("%w: %s to %s", domain.ErrSerialStatusTransition, from, in.Status)
	}
	res := &StatusChangeResult{Unit: *unit, From: from, NewStock: item.QuantityInStock}
	if from == in.Status && in.Notes == "" {
		return res, nil
	}

	if delta := availability(in.Status) - availability(from); delta != 0 {
		if res.NewStock, err = tx.AdjustStock(ctx, item.ID, delta); err != nil {
			return nil, fmt.Errorf("failed to update stock: %w", err)
		}
	}
	if err := tx.UpdateSerializedItemStatus(ctx, unit.ID, in.Status, in.Notes); err != nil {
		return nil, fmt.Errorf("failed to update serialized item: %w", err)
	}
	res.Unit.Status = in.Status
	res.Unit.ConditionNotes = domain.AppendNote(unit.ConditionNotes, in.Notes)

	rec := notify.NewRecorder(tx)
	if in.Status == domain.SerialMaintenance && from != domain.SerialMaintenance {
		rec.Record(ctx, notify.MaintenanceDue(item, &res.Unit))
	}
	if res.NewStock < item.QuantityInStock {
		if n, ok := notify.LowStock(item, res.NewStock); ok {
			rec.Record(ctx, n)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}

	s.cache.Invalidate(ctx, cache.StockPatterns()...)
	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, event.NewSerialStatusChangedEvent(&res.Unit, from, in.ActorID))
	}
	notify.Publish(ctx, s.publisher, rec.Created())

	logger.FromContext(ctx).Info(LogMsgSerialStatusChange,
		"serialized_item_id", unit.ID,
		"serial_number", unit.SerialNumber,
		"from", from,
		"to", in.Status,
		"new_stock", res.NewStock)
	return res, nil
}
