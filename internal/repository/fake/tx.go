package fake

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/domain"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/repository"
)

var errNotificationInsert = errors.New("fake: notification insert failed")

// Tx is a transaction over a Store. Writes land in the store directly and
// are undone by Rollback.
type Tx struct {
	s        *Store
	snapshot state
	done     bool
}

func (t *Tx) fail(method string) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	return t.s.failures[method]
}

func (t *Tx) Commit(context.Context) error {
	if t.done {
		return domain.ErrTxClosed
	}
	if err := t.fail("Commit"); err != nil {
		return err
	}
	t.done = true
	t.s.mu.Lock()
	t.s.commits++
	t.s.mu.Unlock()
	t.s.txMu.Unlock()
	return nil
}

func (t *Tx) Rollback(context.Context) error {
	if t.done {
		return domain.ErrTxClosed
	}
	t.done = true
	t.s.mu.Lock()
	t.s.data = t.snapshot
	t.s.mu.Unlock()
	t.s.txMu.Unlock()
	return nil
}

func (t *Tx) GetItemForUpdate(ctx context.Context, id int64) (*domain.InventoryItem, error) {
	if err := t.fail("GetItemForUpdate"); err != nil {
		return nil, err
	}
	return t.s.GetItem(ctx, id)
}

func (t *Tx) AdjustStock(_ context.Context, itemID int64, delta int) (int, error) {
	if err := t.fail("AdjustStock"); err != nil {
		return 0, err
	}
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	item, ok := t.s.data.items[itemID]
	if !ok {
		return 0, domain.ErrItemNotFound
	}
	if item.QuantityInStock+delta < 0 {
		return 0, domain.ErrInsufficientStock
	}
	item.QuantityInStock += delta
	item.UpdatedAt = time.Now()
	t.s.data.items[itemID] = item
	return item.QuantityInStock, nil
}

func (t *Tx) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	return t.s.GetCategory(ctx, id)
}

func (t *Tx) CreateNotification(_ context.Context, n *domain.Notification) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if t.s.failNotifications {
		return errNotificationInsert
	}
	n.ID = t.s.data.id()
	n.CreatedAt = time.Now()
	t.s.data.notifications = append(t.s.data.notifications, *n)
	return nil
}

func (t *Tx) HasRecentNotification(_ context.Context, typ domain.NotificationType, itemID, deploymentID *int64, since time.Time) (bool, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	for _, n := range t.s.data.notifications {
		if n.Type != typ || n.CreatedAt.Before(since) {
			continue
		}
		if !sameID(n.ItemID, itemID) || !sameID(n.DeploymentID, deploymentID) {
			continue
		}
		return true, nil
	}
	return false, nil
}

func sameID(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func (t *Tx) UpdateSerializedItemStatus(_ context.Context, id int64, status domain.SerializedItemStatus, note string) error {
	if err := t.fail("UpdateSerializedItemStatus"); err != nil {
		return err
	}
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	u, ok := t.s.data.units[id]
	if !ok {
		return domain.ErrSerializedItemNotFound
	}
	u.Status = status
	u.ConditionNotes = domain.AppendNote(u.ConditionNotes, note)
	u.UpdatedAt = time.Now()
	t.s.data.units[id] = u
	return nil
}

func (t *Tx) GetSerializedItemForUpdate(_ context.Context, id int64) (*domain.SerializedItem, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	u, ok := t.s.data.units[id]
	if !ok {
		return nil, domain.ErrSerializedItemNotFound
	}
	return &u, nil
}

// GetSerializedItemsForUpdate returns the units that exist, ordered by id.
func (t *Tx) GetSerializedItemsForUpdate(_ context.Context, ids []int64) ([]domain.SerializedItem, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	var out []domain.SerializedItem
	seen := make(map[int64]bool, len(ids))
	for _, id := range ids {
		if u, ok := t.s.data.units[id]; ok && !seen[id] {
			seen[id] = true
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (t *Tx) CreateBatch(_ context.Context, b *domain.Batch) error {
	if err := t.fail("CreateBatch"); err != nil {
		return err
	}
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	for _, existing := range t.s.data.batches {
		if existing.BatchNumber == b.BatchNumber {
			return domain.ErrDuplicateBatchNumber
		}
	}
	b.ID = t.s.data.id()
	b.IsActive = true
	b.CreatedAt = time.Now()
	if b.ReceivedAt.IsZero() {
		b.ReceivedAt = b.CreatedAt
	}
	t.s.data.batches[b.ID] = *b
	return nil
}

func (t *Tx) CreateSerializedItems(_ context.Context, items []domain.SerializedItem) error {
	if err := t.fail("CreateSerializedItems"); err != nil {
		return err
	}
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	numbers := make(map[string]bool, len(t.s.data.units)+len(items))
	for _, u := range t.s.data.units {
		numbers[u.SerialNumber] = true
	}
	for _, u := range items {
		if numbers[u.SerialNumber] {
			return domain.ErrDuplicateSerialNumber
		}
		numbers[u.SerialNumber] = true
	}
	now := time.Now()
	for _, u := range items {
		u.ID = t.s.data.id()
		if u.Status == "" {
			u.Status = domain.SerialAvailable
		}
		u.CreatedAt, u.UpdatedAt = now, now
		t.s.data.units[u.ID] = u
	}
	return nil
}

func (t *Tx) GetBatchForUpdate(_ context.Context, id int64) (*domain.Batch, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	b, ok := t.s.data.batches[id]
	if !ok {
		return nil, domain.ErrBatchNotFound
	}
	return &b, nil
}

func (t *Tx) ListSerializedItemsByBatchForUpdate(_ context.Context, batchID int64) ([]domain.SerializedItem, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	var out []domain.SerializedItem
	for _, u := range t.s.data.units {
		if u.BatchID == batchID {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (t *Tx) DeactivateBatch(_ context.Context, id int64) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	b, ok := t.s.data.batches[id]
	if !ok {
		return domain.ErrBatchNotFound
	}
	b.IsActive = false
	t.s.data.batches[id] = b
	return nil
}

func (t *Tx) GetDeployment(ctx context.Context, id int64) (*domain.Deployment, error) {
	return t.s.GetDeployment(ctx, id)
}

func (t *Tx) GetDeploymentForUpdate(ctx context.Context, id int64) (*domain.Deployment, error) {
	if err := t.fail("GetDeploymentForUpdate"); err != nil {
		return nil, err
	}
	return t.s.GetDeployment(ctx, id)
}

func (t *Tx) CreateDeployment(_ context.Context, d *domain.Deployment) error {
	if err := t.fail("CreateDeployment"); err != nil {
		return err
	}
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	d.ID = t.s.data.id()
	d.CreatedAt = time.Now()
	d.UpdatedAt = d.CreatedAt
	t.s.data.deployments[d.ID] = *d
	return nil
}

func (t *Tx) CreateDeploymentLinks(_ context.Context, deploymentID int64, serialIDs []int64, deployedAt time.Time) error {
	if err := t.fail("CreateDeploymentLinks"); err != nil {
		return err
	}
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	for _, id := range serialIDs {
		l := domain.SerialItemDeployment{
			ID:               t.s.data.id(),
			DeploymentID:     deploymentID,
			SerializedItemID: id,
			DeployedAt:       deployedAt,
		}
		t.s.data.links[l.ID] = l
	}
	return nil
}

func (t *Tx) ListDeploymentLinks(ctx context.Context, deploymentID int64) ([]domain.SerialItemDeployment, error) {
	return t.s.ListDeploymentLinks(ctx, deploymentID)
}

func (t *Tx) ListDeploymentLinksForUpdate(ctx context.Context, deploymentID int64) ([]domain.SerialItemDeployment, error) {
	return t.s.ListDeploymentLinks(ctx, deploymentID)
}

func (t *Tx) UpdateDeploymentLinkReturn(_ context.Context, linkID int64, returnedAt time.Time, c domain.ReturnCondition, note string) error {
	if err := t.fail("UpdateDeploymentLinkReturn"); err != nil {
		return err
	}
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	l, ok := t.s.data.links[linkID]
	if !ok {
		return domain.ErrSerializedItemNotFound
	}
	l.ReturnedAt = &returnedAt
	l.ReturnCondition = c
	l.Notes = domain.AppendNote(l.Notes, note)
	t.s.data.links[linkID] = l
	return nil
}

func (t *Tx) UpdateDeploymentReturn(_ context.Context, u domain.DeploymentReturnUpdate) error {
	if err := t.fail("UpdateDeploymentReturn"); err != nil {
		return err
	}
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	d, ok := t.s.data.deployments[u.DeploymentID]
	if !ok {
		return domain.ErrDeploymentNotFound
	}
	d.Status = u.Status
	d.ReturnCondition = u.ReturnCondition
	d.ActualReturnDate = u.ActualReturnDate
	d.Notes = domain.AppendNote(d.Notes, u.Note)
	d.UpdatedAt = time.Now()
	t.s.data.deployments[u.DeploymentID] = d
	return nil
}

var (
	_ repository.Inventory    = inventoryView{}
	_ repository.Batch        = batchView{}
	_ repository.Deployment   = deploymentView{}
	_ repository.Ledger       = ledgerView{}
	_ repository.InventoryTx  = (*Tx)(nil)
	_ repository.BatchTx      = (*Tx)(nil)
	_ repository.DeploymentTx = (*Tx)(nil)
)
