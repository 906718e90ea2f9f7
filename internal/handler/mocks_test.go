package handler

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/batch"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/deployment"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/domain"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/event"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/eventlog"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/inventory"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/ledger"
)

// ret returns the typed first result of a mocked call, tolerating nil.
func ret[T any](args mock.Arguments, i int) T {
	v, _ := args.Get(i).(T)
	return v
}

type MockDeploymentService struct{ mock.Mock }

func (m *MockDeploymentService) CreateDeployment(ctx context.Context, in deployment.CreateDeploymentInput) (*deployment.CreateResult, error) {
	args := m.Called(ctx, in)
	return ret[*deployment.CreateResult](args, 0), args.Error(1)
}

func (m *MockDeploymentService) ReturnDeployment(ctx context.Context, in deployment.ReturnDeploymentInput) (*deployment.ReturnResult, error) {
	args := m.Called(ctx, in)
	return ret[*deployment.ReturnResult](args, 0), args.Error(1)
}

func (m *MockDeploymentService) GetDeployment(ctx context.Context, id int64) (*deployment.Detail, error) {
	args := m.Called(ctx, id)
	return ret[*deployment.Detail](args, 0), args.Error(1)
}

func (m *MockDeploymentService) ListDeployments(ctx context.Context, f domain.DeploymentFilter) ([]domain.Deployment, error) {
	args := m.Called(ctx, f)
	return ret[[]domain.Deployment](args, 0), args.Error(1)
}

func (m *MockDeploymentService) ListOverdue(ctx context.Context) ([]domain.Deployment, error) {
	args := m.Called(ctx)
	return ret[[]domain.Deployment](args, 0), args.Error(1)
}

func (m *MockDeploymentService) NotifyOverdue(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockBatchService struct{ mock.Mock }

func (m *MockBatchService) ReceiveBatch(ctx context.Context, in batch.ReceiveBatchInput) (*batch.ReceiveResult, error) {
	args := m.Called(ctx, in)
	return ret[*batch.ReceiveResult](args, 0), args.Error(1)
}

func (m *MockBatchService) GetBatch(ctx context.Context, id int64) (*domain.Batch, error) {
	args := m.Called(ctx, id)
	return ret[*domain.Batch](args, 0), args.Error(1)
}

func (m *MockBatchService) ListBatches(ctx context.Context, f domain.BatchFilter) ([]domain.Batch, error) {
	args := m.Called(ctx, f)
	return ret[[]domain.Batch](args, 0), args.Error(1)
}

func (m *MockBatchService) DeleteBatch(ctx context.Context, id, actorID int64) error {
	return m.Called(ctx, id, actorID).Error(0)
}

func (m *MockBatchService) ImportCSV(ctx context.Context, r io.Reader, actorID int64) (*batch.ImportResult, error) {
	body, _ := io.ReadAll(r)
	args := m.Called(ctx, string(body), actorID)
	return ret[*batch.ImportResult](args, 0), args.Error(1)
}

func (m *MockBatchService) NotifyExpiring(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockInventoryService struct{ mock.Mock }

func (m *MockInventoryService) CreateCategory(ctx context.Context, in inventory.CreateCategoryInput) (*domain.Category, error) {
	args := m.Called(ctx, in)
	return ret[*domain.Category](args, 0), args.Error(1)
}

func (m *MockInventoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	return ret[[]domain.Category](args, 0), args.Error(1)
}

func (m *MockInventoryService) CreateItem(ctx context.Context, in inventory.CreateItemInput) (*inventory.ItemDetail, error) {
	args := m.Called(ctx, in)
	return ret[*inventory.ItemDetail](args, 0), args.Error(1)
}

func (m *MockInventoryService) GetItem(ctx context.Context, id int64) (*inventory.ItemDetail, error) {
	args := m.Called(ctx, id)
	return ret[*inventory.ItemDetail](args, 0), args.Error(1)
}

func (m *MockInventoryService) ListItems(ctx context.Context, f domain.ItemFilter) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, f)
	return ret[[]domain.InventoryItem](args, 0), args.Error(1)
}

func (m *MockInventoryService) GetSerializedItem(ctx context.Context, id int64) (*domain.SerializedItem, error) {
	args := m.Called(ctx, id)
	return ret[*domain.SerializedItem](args, 0), args.Error(1)
}

func (m *MockInventoryService) ListSerializedItems(ctx context.Context, f domain.SerialFilter) ([]domain.SerializedItem, error) {
	args := m.Called(ctx, f)
	return ret[[]domain.SerializedItem](args, 0), args.Error(1)
}

func (m *MockInventoryService) UpdateSerialStatus(ctx context.Context, in inventory.UpdateSerialStatusInput) (*inventory.StatusChangeResult, error) {
	args := m.Called(ctx, in)
	return ret[*inventory.StatusChangeResult](args, 0), args.Error(1)
}

func (m *MockInventoryService) ListNotifications(ctx context.Context, f domain.NotificationFilter) ([]domain.Notification, error) {
	args := m.Called(ctx, f)
	return ret[[]domain.Notification](args, 0), args.Error(1)
}

func (m *MockInventoryService) MarkNotificationRead(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockLedgerService struct{ mock.Mock }

func (m *MockLedgerService) Verify(ctx context.Context, itemID int64) (*ledger.Report, error) {
	args := m.Called(ctx, itemID)
	return ret[*ledger.Report](args, 0), args.Error(1)
}

func (m *MockLedgerService) VerifyAll(ctx context.Context) (*ledger.Summary, error) {
	args := m.Called(ctx)
	return ret[*ledger.Summary](args, 0), args.Error(1)
}

type MockEventLogService struct{ mock.Mock }

func (m *MockEventLogService) Subscribe(bus event.Bus) error {
	return m.Called(bus).Error(0)
}

func (m *MockEventLogService) List(ctx context.Context, f eventlog.EventFilter) ([]eventlog.Event, error) {
	args := m.Called(ctx, f)
	return ret[[]eventlog.Event](args, 0), args.Error(1)
}

func (m *MockEventLogService) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	args := m.Called(ctx, retentionDays)
	return args.Get(0).(int64), args.Error(1)
}
