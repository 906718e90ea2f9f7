package batch

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/domain"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/logger"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/notify"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/repository"
)

type expiringItem struct {
	itemID   int64
	count    int
	earliest time.Time
}

// NotifyExpiring raises one EXPIRING_SOON notification per item with active
// batches expiring inside the warning window. Items notified within the last
// day are skipped. It returns how many notifications were stored.
func (s *service) NotifyExpiring(ctx context.Context) (int, error) {
	now := s.now()
	batches, err := s.repo.ListBatchesExpiringBefore(ctx, now.AddDate(0, 0, notify.ExpiryWarningDays))
	if err != nil {
		return 0, fmt.Errorf("failed to list expiring batches: %w", err)
	}
	if len(batches) == 0 {
		return 0, nil
	}
	groups := groupExpiring(batches)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	log := logger.FromContext(ctx)
	rec := notify.NewRecorder(tx)
	for _, g := range groups {
		item, err := s.repo.GetItem(ctx, g.itemID)
		if err != nil {
			log.Warn(LogMsgExpiryItemSkipped, "item_id", g.itemID, "error", err)
			continue
		}
		rec.RecordOnce(ctx, notify.ExpiringSummary(item, g.count, g.earliest, now), now.Add(-notify.DedupWindow))
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit: %w", err)
	}
	notify.Publish(ctx, s.publisher, rec.Created())

	log.Info(LogMsgExpirySweepDone, "items", len(groups), "notified", len(rec.Created()))
	return len(rec.Created()), nil
}

func groupExpiring(batches []domain.Batch) []expiringItem {
	byItem := make(map[int64]*expiringItem)
	for _, b := range batches {
		if b.ExpiryDate == nil {
			continue
		}
		g, ok := byItem[b.ItemID]
		if !ok {
			g = &expiringItem{itemID: b.ItemID, earliest: *b.ExpiryDate}
			byItem[b.ItemID] = g
		}
		g.count++
		if b.ExpiryDate.Before(g.earliest) {
			g.earliest = *b.ExpiryDate
		}
	}
	out := make([]expiringItem, 0, len(byItem))
	for _, g := range byItem {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].itemID < out[j].itemID })
	return out
}
