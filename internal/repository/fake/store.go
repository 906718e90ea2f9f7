// Package fake provides a stateful in-memory implementation of the
// repository interfaces for service tests.
//
// Transactions are serialized on a single mutex, which stands in for the row
// locks PostgreSQL takes. Rollback restores a snapshot taken at BeginTx.
package fake

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/domain"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/repository"
)

type state struct {
	nextID        int64
	categories    map[int64]domain.Category
	items         map[int64]domain.InventoryItem
	batches       map[int64]domain.Batch
	units         map[int64]domain.SerializedItem
	deployments   map[int64]domain.Deployment
	links         map[int64]domain.SerialItemDeployment
	notifications []domain.Notification
}

func newState() state {
	return state{
		categories:  make(map[int64]domain.Category),
		items:       make(map[int64]domain.InventoryItem),
		batches:     make(map[int64]domain.Batch),
		units:       make(map[int64]domain.SerializedItem),
		deployments: make(map[int64]domain.Deployment),
		links:       make(map[int64]domain.SerialItemDeployment),
	}
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (s state) clone() state {
	return state{
		nextID:        s.nextID,
		categories:    cloneMap(s.categories),
		items:         cloneMap(s.items),
		batches:       cloneMap(s.batches),
		units:         cloneMap(s.units),
		deployments:   cloneMap(s.deployments),
		links:         cloneMap(s.links),
		notifications: append([]domain.Notification(nil), s.notifications...),
	}
}

func (s *state) id() int64 {
	s.nextID++
	return s.nextID
}

// Store is the in-memory backing state shared by all repository views.
type Store struct {
	txMu sync.Mutex
	mu   sync.Mutex
	data state

	failures          map[string]error
	failNotifications bool
	commits           int
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{data: newState(), failures: make(map[string]error)}
}

// FailOn makes the named transaction method return err until cleared with a nil err.
func (s *Store) FailOn(method string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failures, method)
		return
	}
	s.failures[method] = err
}

// FailNotifications makes every notification insert fail.
func (s *Store) FailNotifications(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failNotifications = fail
}

// Commits reports how many transactions have committed.
func (s *Store) Commits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commits
}

// Inventory returns the store as a repository.Inventory.
func (s *Store) Inventory() repository.Inventory { return inventoryView{s} }

// Batches returns the store as a repository.Batch.
func (s *Store) Batches() repository.Batch { return batchView{s} }

// Deployments returns the store as a repository.Deployment.
func (s *Store) Deployments() repository.Deployment { return deploymentView{s} }

// Ledger returns the store as a repository.Ledger.
func (s *Store) Ledger() repository.Ledger { return ledgerView{s} }

func (s *Store) begin() *Tx {
	s.txMu.Lock()
	s.mu.Lock()
	snap := s.data.clone()
	s.mu.Unlock()
	return &Tx{s: s, snapshot: snap}
}

// ---- seeding helpers ----

// AddCategory stores a category and returns it with its id.
func (s *Store) AddCategory(name string, t domain.CategoryType) domain.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := domain.Category{ID: s.data.id(), Name: name, Type: t, CreatedAt: time.Now()}
	s.data.categories[c.ID] = c
	return c
}

// AddItem stores an item as given (including its stock) and returns it with its id.
func (s *Store) AddItem(item domain.InventoryItem) domain.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	item.ID = s.data.id()
	item.IsActive = true
	item.CreatedAt = time.Now()
	item.UpdatedAt = item.CreatedAt
	s.data.items[item.ID] = item
	return item
}

// Item returns the stored item.
func (s *Store) Item(id int64) domain.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.items[id]
}

// Unit returns the stored serialized item.
func (s *Store) Unit(id int64) domain.SerializedItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.units[id]
}

// UnitsForItem returns every serialized unit of an item ordered by id.
func (s *Store) UnitsForItem(itemID int64) []domain.SerializedItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.SerializedItem
	for _, u := range s.data.units {
		if u.ItemID == itemID {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Deployment returns the stored deployment.
func (s *Store) Deployment(id int64) domain.Deployment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.deployments[id]
}

// Notifications returns every stored notification in insertion order.
func (s *Store) Notifications() []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Notification(nil), s.data.notifications...)
}

// ---- shared reads ----

func (s *Store) GetItem(_ context.Context, id int64) (*domain.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.data.items[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	return &item, nil
}

func (s *Store) GetItemByName(_ context.Context, name string) (*domain.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.data.items {
		if strings.EqualFold(item.Name, name) {
			it := item
			return &it, nil
		}
	}
	return nil, domain.ErrItemNotFound
}

func (s *Store) GetCategory(_ context.Context, id int64) (*domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.data.categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	return &c, nil
}

func (s *Store) GetDeployment(_ context.Context, id int64) (*domain.Deployment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.data.deployments[id]
	if !ok {
		return nil, domain.ErrDeploymentNotFound
	}
	return &d, nil
}

func (s *Store) ListDeploymentLinks(_ context.Context, deploymentID int64) ([]domain.SerialItemDeployment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.linksFor(deploymentID), nil
}

func (st *state) linksFor(deploymentID int64) []domain.SerialItemDeployment {
	var out []domain.SerialItemDeployment
	for _, l := range st.links {
		if l.DeploymentID == deploymentID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SerializedItemID < out[j].SerializedItemID })
	return out
}

func page[T any](rows []T, limit, offset int) []T {
	limit, offset = domain.NormalizePage(limit, offset)
	if offset >= len(rows) {
		return nil
	}
	end := offset + limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[offset:end]
}

// LedgerBalanced reports whether an item's stock equals what its batches,
// open bulk deployments and unavailable units imply.
func (s *Store) LedgerBalanced(itemID int64) (domain.LedgerSnapshot, bool) {
	snap, err := ledgerView{s}.GetLedgerSnapshot(context.Background(), itemID)
	if err != nil {
		return domain.LedgerSnapshot{}, false
	}
	return *snap, snap.ExpectedStock() == snap.QuantityInStock
}
