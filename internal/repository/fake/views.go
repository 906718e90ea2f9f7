package fake

import (
	"context"
	"sort"
	"time"

	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/domain"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/repository"
)

type inventoryView struct{ *Store }

func (v inventoryView) BeginTx(context.Context) (repository.InventoryTx, error) {
	return v.begin(), nil
}

func (v inventoryView) CreateCategory(_ context.Context, c *domain.Category) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, existing := range v.data.categories {
		if existing.Name == c.Name {
			return domain.ErrDuplicateCategory
		}
	}
	c.ID = v.data.id()
	c.CreatedAt = time.Now()
	v.data.categories[c.ID] = *c
	return nil
}

func (v inventoryView) ListCategories(context.Context) ([]domain.Category, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]domain.Category, 0, len(v.data.categories))
	for _, c := range v.data.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (v inventoryView) CreateItem(ctx context.Context, item *domain.InventoryItem) error {
	if _, err := v.GetItemByName(ctx, item.Name); err == nil {
		return domain.ErrDuplicateItem
	}
	item.QuantityInStock = 0
	*item = v.AddItem(*item)
	return nil
}

func (v inventoryView) ListItems(_ context.Context, f domain.ItemFilter) ([]domain.InventoryItem, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	var out []domain.InventoryItem
	for _, item := range v.data.items {
		if !item.IsActive {
			continue
		}
		if f.CategoryID != nil && (item.CategoryID == nil || *item.CategoryID != *f.CategoryID) {
			continue
		}
		if f.LowStockOnly && !item.IsLowStock() {
			continue
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return page(out, f.Limit, f.Offset), nil
}

func (v inventoryView) GetSerializedItem(_ context.Context, id int64) (*domain.SerializedItem, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	u, ok := v.data.units[id]
	if !ok {
		return nil, domain.ErrSerializedItemNotFound
	}
	return &u, nil
}

func (v inventoryView) ListSerializedItems(_ context.Context, f domain.SerialFilter) ([]domain.SerializedItem, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	var out []domain.SerializedItem
	for _, u := range v.data.units {
		if f.ItemID != nil && u.ItemID != *f.ItemID {
			continue
		}
		if f.BatchID != nil && u.BatchID != *f.BatchID {
			continue
		}
		if f.Status != nil && u.Status != *f.Status {
			continue
		}
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return page(out, f.Limit, f.Offset), nil
}

func (v inventoryView) ListNotifications(_ context.Context, f domain.NotificationFilter) ([]domain.Notification, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	var out []domain.Notification
	for i := len(v.data.notifications) - 1; i >= 0; i-- {
		n := v.data.notifications[i]
		if f.UnreadOnly && n.IsRead {
			continue
		}
		out = append(out, n)
	}
	return page(out, f.Limit, f.Offset), nil
}

func (v inventoryView) MarkNotificationRead(_ context.Context, id int64) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i := range v.data.notifications {
		if v.data.notifications[i].ID == id {
			v.data.notifications[i].IsRead = true
			return nil
		}
	}
	return domain.ErrNotificationNotFound
}

type batchView struct{ *Store }

func (v batchView) BeginTx(context.Context) (repository.BatchTx, error) {
	return v.begin(), nil
}

func (v batchView) GetBatch(_ context.Context, id int64) (*domain.Batch, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	b, ok := v.data.batches[id]
	if !ok {
		return nil, domain.ErrBatchNotFound
	}
	return &b, nil
}

func (v batchView) ListBatches(_ context.Context, f domain.BatchFilter) ([]domain.Batch, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	var out []domain.Batch
	for _, b := range v.data.batches {
		if f.ItemID != nil && b.ItemID != *f.ItemID {
			continue
		}
		if !f.IncludeInactive && !b.IsActive {
			continue
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return page(out, f.Limit, f.Offset), nil
}

func (v batchView) ListBatchesExpiringBefore(_ context.Context, until time.Time) ([]domain.Batch, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	var out []domain.Batch
	for _, b := range v.data.batches {
		if b.IsActive && b.ExpiryDate != nil && !b.ExpiryDate.After(until) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ExpiryDate.Before(*out[j].ExpiryDate) })
	return out, nil
}

type deploymentView struct{ *Store }

func (v deploymentView) BeginTx(context.Context) (repository.DeploymentTx, error) {
	return v.begin(), nil
}

func (v deploymentView) ListDeployments(_ context.Context, f domain.DeploymentFilter) ([]domain.Deployment, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	var out []domain.Deployment
	for _, d := range v.data.deployments {
		if f.ItemID != nil && d.ItemID != *f.ItemID {
			continue
		}
		if f.Status != nil && d.Status != *f.Status {
			continue
		}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return page(out, f.Limit, f.Offset), nil
}

func (v deploymentView) ListOverdueDeployments(_ context.Context, now time.Time) ([]domain.Deployment, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	var out []domain.Deployment
	for _, d := range v.data.deployments {
		if d.Status.IsOpen() && d.ExpectedReturnDate != nil && d.ExpectedReturnDate.Before(now) {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type ledgerView struct{ *Store }

func (v ledgerView) GetLedgerSnapshot(_ context.Context, itemID int64) (*domain.LedgerSnapshot, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	item, ok := v.data.items[itemID]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	snap := &domain.LedgerSnapshot{ItemID: item.ID, ItemName: item.Name, QuantityInStock: item.QuantityInStock}
	for _, b := range v.data.batches {
		if b.ItemID == itemID && b.IsActive {
			snap.ReceivedActive += b.Quantity
		}
	}
	for _, d := range v.data.deployments {
		if d.ItemID == itemID && !d.IsSerialized && d.Status != domain.DeploymentReturned {
			snap.OutstandingBulk += d.QuantityDeployed
		}
	}
	for _, u := range v.data.units {
		if u.ItemID == itemID && u.Status != domain.SerialAvailable && v.data.batches[u.BatchID].IsActive {
			snap.UnavailableSerialized++
		}
	}
	return snap, nil
}

func (v ledgerView) ListItemIDs(context.Context) ([]int64, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	var ids []int64
	for id, item := range v.data.items {
		if item.IsActive {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}
