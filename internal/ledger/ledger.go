// Package ledger checks that every item's stock counter agrees with the
// receipts, deployments and unit states recorded against it.
package ledger

import (
	"context"
	"fmt"
	"sort"

	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/domain"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/logger"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/repository"
)

// Log messages
const (
	LogMsgLedgerDrift    = "Stock ledger out of balance"
	LogMsgLedgerVerified = "Stock ledger verified"
)

// Service defines the stock identity check interface
type Service interface {
	Verify(ctx context.Context, itemID int64) (*Report, error)
	VerifyAll(ctx context.Context) (*Summary, error)
}

// Report compares an item's stock counter with what its history implies.
type Report struct {
	ItemID                int64  `json:"item_id"`
	ItemName              string `json:"item_name"`
	QuantityInStock       int    `json:"quantity_in_stock"`
	ExpectedStock         int    `json:"expected_stock"`
	ReceivedActive        int    `json:"received_active"`
	OutstandingBulk       int    `json:"outstanding_bulk"`
	UnavailableSerialized int    `json:"unavailable_serialized"`
	Drift                 int    `json:"drift"`
	Balanced              bool   `json:"balanced"`
}

// Summary is the outcome of checking every active item.
type Summary struct {
	Checked    int      `json:"checked"`
	Unbalanced []Report `json:"unbalanced"`
}

// DriftObserver is told about every report produced.
type DriftObserver interface {
	RecordLedgerCheck(r Report)
}

type service struct {
	repo     repository.Ledger
	observer DriftObserver
}

// NewService creates a ledger service. observer may be nil.
func NewService(repo repository.Ledger, observer DriftObserver) Service {
	return &service{repo: repo, observer: observer}
}

// NewReport derives a report from a snapshot.
func NewReport(s domain.LedgerSnapshot) Report {
	expected := s.ExpectedStock()
	return Report{
		ItemID:                s.ItemID,
		ItemName:              s.ItemName,
		QuantityInStock:       s.QuantityInStock,
		ExpectedStock:         expected,
		ReceivedActive:        s.ReceivedActive,
		OutstandingBulk:       s.OutstandingBulk,
		UnavailableSerialized: s.UnavailableSerialized,
		Drift:                 s.QuantityInStock - expected,
		Balanced:              s.QuantityInStock == expected,
	}
}

func (s *service) Verify(ctx context.Context, itemID int64) (*Report, error) {
	snap, err := s.repo.GetLedgerSnapshot(ctx, itemID)
	if err != nil {
		return nil, err
	}
	r := NewReport(*snap)
	s.observe(ctx, r)
	return &r, nil
}

// VerifyAll checks every active item and returns the unbalanced ones
// ordered by the size of their drift.
func (s *service) VerifyAll(ctx context.Context) (*Summary, error) {
	ids, err := s.repo.ListItemIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	sum := &Summary{Unbalanced: []Report{}}
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		r, err := s.Verify(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to verify item %d: %w", id, err)
		}
		sum.Checked++
		if !r.Balanced {
			sum.Unbalanced = append(sum.Unbalanced, *r)
		}
	}
	sort.Slice(sum.Unbalanced, func(i, j int) bool {
		return abs(sum.Unbalanced[i].Drift) > abs(sum.Unbalanced[j].Drift)
	})

	logger.FromContext(ctx).Info(LogMsgLedgerVerified, "checked", sum.Checked, "unbalanced", len(sum.Unbalanced))
	return sum, nil
}

func (s *service) observe(ctx context.Context, r Report) {
	if !r.Balanced {
		logger.FromContext(ctx).Warn(LogMsgLedgerDrift,
			"item_id", r.ItemID,
			"quantity_in_stock", r.QuantityInStock,
			"expected_stock", r.ExpectedStock,
			"drift", r.Drift)
	}
	if s.observer != nil {
		s.observer.RecordLedgerCheck(r)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
