package deployment

import (
	"context"
	"fmt"
	"time"

	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/domain"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/event"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/logger"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/notify"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/repository"
)

// ReturnDeploymentInput reports a return. Condition applies to a bulk
// deployment and to every serialized unit without its own condition.
type ReturnDeploymentInput struct {
	DeploymentID int64                  `json:"-"`
	Condition    domain.ReturnCondition `json:"return_condition,omitempty" validate:"omitempty,return_condition"`
	Items        []ReturnRequest        `json:"items,omitempty" validate:"omitempty,dive"`
	Notes        string                 `json:"notes,omitempty" validate:"max=2000"`
	ActorID      int64                  `json:"-"`
}

// ReturnResult is a committed return reconciliation.
type ReturnResult struct {
	Deployment domain.Deployment `json:"deployment"`
	Processed  []UnitReturn      `json:"processed,omitempty"`
	Skipped    []int64           `json:"skipped,omitempty"`
	Good       int               `json:"good"`
	Damaged    int               `json:"damaged"`
	Lost       int               `json:"lost"`
	StockDelta int               `json:"stock_delta"`
	NewStock   int               `json:"new_stock"`
}

type returnTx struct {
	tx   repository.DeploymentTx
	item *domain.InventoryItem
	d    *domain.Deployment
	now  time.Time
	in   ReturnDeploymentInput
	rec  *notify.Recorder
}

// ReturnDeployment reconciles returned stock against a deployment in one
// transaction holding the item, deployment and unit row locks.
func (s *service) ReturnDeployment(ctx context.Context, in ReturnDeploymentInput) (*ReturnResult, error) {
	if in.Condition != "" && !in.Condition.Valid() {
		return nil, domain.ErrInvalidCondition
	}

	// Unlocked read to learn the item; the item row must be locked first.
	current, err := s.repo.GetDeployment(ctx, in.DeploymentID)
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
	d, err := tx.GetDeploymentForUpdate(ctx, in.DeploymentID)
	if err != nil {
		return nil, err
	}

	rt := &returnTx{tx: tx, item: item, d: d, now: s.now(), in: in, rec: notify.NewRecorder(tx)}
	var res *ReturnResult
	if d.IsSerialized {
		res, err = rt.serialized(ctx)
	} else {
		res, err = rt.bulk(ctx)
	}
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	if d.IsSerialized && len(res.Processed) == 0 {
		log.Info(LogMsgReturnNoop, "deployment_id", d.ID, "skipped", len(res.Skipped))
		res.Deployment = *d
		res.NewStock = item.QuantityInStock
		return res, nil
	}

	updated, err := tx.GetDeployment(ctx, d.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload deployment: %w", err)
	}
	res.Deployment = *updated

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}

	s.afterCommit(ctx, event.NewDeploymentReturnedEvent(domain.DeploymentReturnedPayload{
		DeploymentID: d.ID,
		ItemID:       d.ItemID,
		Status:       updated.Status,
		Good:         res.Good,
		Damaged:      res.Damaged,
		Lost:         res.Lost,
		Skipped:      len(res.Skipped),
		StockDelta:   res.StockDelta,
		ActorID:      in.ActorID,
	}), rt.rec.Created())

	log.Info(LogMsgDeploymentReturned,
		"deployment_id", d.ID,
		"status", updated.Status,
		"good", res.Good,
		"damaged", res.Damaged,
		"lost", res.Lost,
		"stock_delta", res.StockDelta)
	return res, nil
}

func (rt *returnTx) bulk(ctx context.Context) (*ReturnResult, error) {
	if len(rt.in.Items) > 0 {
		ids := make([]int64, len(rt.in.Items))
		for i, it := range rt.in.Items {
			ids[i] = it.SerializedItemID
		}
		return nil, domain.WithIDs(domain.ErrSerialNotInDeployment, ids)
	}
	if rt.d.Status != domain.DeploymentDeployed {
		return nil, domain.ErrDeploymentClosed
	}

	cond := rt.in.Condition
	if cond == "" {
		cond = domain.ConditionGood
	}
	res := &ReturnResult{NewStock: rt.item.QuantityInStock}
	qty := rt.d.QuantityDeployed
	switch Classify(cond) {
	case ClassGood:
		res.Good, res.StockDelta = qty, qty
	case ClassDamaged:
		res.Damaged = qty
	case ClassLost:
		res.Lost = qty
	}

	if res.StockDelta != 0 {
		newStock, err := rt.tx.AdjustStock(ctx, rt.item.ID, res.StockDelta)
		if err != nil {
			return nil, fmt.Errorf("failed to update stock: %w", err)
		}
		res.NewStock = newStock
	}

	if err := rt.tx.UpdateDeploymentReturn(ctx, domain.DeploymentReturnUpdate{
		DeploymentID:     rt.d.ID,
		Status:           BulkStatusFor(cond),
		ReturnCondition:  &cond,
		ActualReturnDate: &rt.now,
		Note:             rt.in.Notes,
	}); err != nil {
		return nil, fmt.Errorf("failed to update deployment: %w", err)
	}

	rt.rec.Record(ctx, notify.EquipmentReturn(rt.item, rt.d, res.Good, res.Damaged, res.Lost))
	return res, nil
}

func (rt *returnTx) serialized(ctx context.Context) (*ReturnResult, error) {
	links, err := rt.tx.ListDeploymentLinksForUpdate(ctx, rt.d.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock deployment items: %w", err)
	}

	plan, err := PlanReturn(links, rt.in.Items, rt.in.Condition, rt.in.Notes)
	if err != nil {
		return nil, err
	}
	res := &ReturnResult{
		Deployment: *rt.d,
		Processed:  plan.Units,
		Skipped:    plan.Skipped,
		Good:       plan.Good,
		Damaged:    plan.Damaged,
		Lost:       plan.Lost,
		StockDelta: plan.StockDelta,
		NewStock:   rt.item.QuantityInStock,
	}
	if len(plan.Units) == 0 {
		return res, nil
	}

	if err := rt.checkUnits(ctx, plan); err != nil {
		return nil, err
	}

	if plan.StockDelta != 0 {
		if res.NewStock, err = rt.tx.AdjustStock(ctx, rt.item.ID, plan.StockDelta); err != nil {
			return nil, fmt.Errorf("failed to update stock: %w", err)
		}
	}

	for _, u := range plan.Units {
		if err := rt.tx.UpdateDeploymentLinkReturn(ctx, u.Link.ID, rt.now, u.Condition, u.Notes); err != nil {
			return nil, fmt.Errorf("failed to update deployment item %d: %w", u.SerializedItemID, err)
		}
		if err := rt.tx.UpdateSerializedItemStatus(ctx, u.SerializedItemID, UnitStatusFor(u.Condition), u.Notes); err != nil {
			return nil, fmt.Errorf("failed to update serialized item %d: %w", u.SerializedItemID, err)
		}
	}

	links, err = rt.tx.ListDeploymentLinks(ctx, rt.d.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload deployment items: %w", err)
	}
	status := DeriveStatus(links)
	update := domain.DeploymentReturnUpdate{
		DeploymentID: rt.d.ID,
		Status:       status,
		Note:         rt.in.Notes,
	}
	if status != domain.DeploymentDeployed {
		update.ActualReturnDate = &rt.now
	}
	if err := rt.tx.UpdateDeploymentReturn(ctx, update); err != nil {
		return nil, fmt.Errorf("failed to update deployment: %w", err)
	}

	rt.rec.Record(ctx, notify.EquipmentReturn(rt.item, rt.d, plan.Good, plan.Damaged, plan.Lost))
	if plan.StockDelta < 0 {
		if n, ok := notify.LowStock(rt.item, res.NewStock); ok {
			rt.rec.Record(ctx, n)
		}
	}
	return res, nil
}

// checkUnits locks the units a plan touches and verifies each one is still in
// the state its link implies: DEPLOYED while outstanding, or the status its
// recorded return condition produced.
func (rt *returnTx) checkUnits(ctx context.Context, plan Plan) error {
	units, err := rt.tx.GetSerializedItemsForUpdate(ctx, plan.UnitIDs())
	if err != nil {
		return fmt.Errorf("failed to lock serialized items: %w", err)
	}
	byID := make(map[int64]domain.SerializedItem, len(units))
	for _, u := range units {
		byID[u.ID] = u
	}

	var changed []int64
	for _, u := range plan.Units {
		want := domain.SerialDeployed
		if u.Link.Returned() {
			want = UnitStatusFor(u.Link.ReturnCondition)
		}
		if unit, ok := byID[u.SerializedItemID]; !ok || unit.Status != want {
			changed = append(changed, u.SerializedItemID)
		}
	}
	if len(changed) > 0 {
		return domain.WithIDs(domain.ErrSerialStateChanged, changed)
	}
	return nil
}
