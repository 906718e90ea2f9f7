package postgres

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/batch"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/deployment"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/domain"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/inventory"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/ledger"
)

type services struct {
	inventory  inventory.Service
	batches    batch.Service
	deployment deployment.Service
	ledger     ledger.Service
}

func newServices(t *testing.T) services {
	pool := requirePool(t)
	return services{
		inventory:  inventory.NewService(NewInventoryRepository(pool), nil, nil),
		batches:    batch.NewService(NewBatchRepository(pool), nil, nil),
		deployment: deployment.NewService(NewDeploymentRepository(pool), nil, nil),
		ledger:     ledger.NewService(NewLedgerRepository(pool), nil),
	}
}

func (s services) item(t *testing.T, name string, ct domain.CategoryType) *inventory.ItemDetail {
	t.Helper()
	ctx := context.Background()
	cat, err := s.inventory.CreateCategory(ctx, inventory.CreateCategoryInput{Name: name + " category", Type: ct})
	require.NoError(t, err)
	item, err := s.inventory.CreateItem(ctx, inventory.CreateItemInput{Name: name, CategoryID: &cat.ID, Unit: "pcs"})
	require.NoError(t, err)
	return item
}

func (s services) assertBalanced(t *testing.T, itemID int64) {
	t.Helper()
	r, err := s.ledger.Verify(context.Background(), itemID)
	require.NoError(t, err)
	assert.True(t, r.Balanced, "ledger out of balance: %+v", r)
}

func TestInventoryLifecycle_Integration(t *testing.T) {
	svc := newServices(t)
	ctx := context.Background()
	radio := svc.item(t, "VHF Radio", domain.CategoryCommunicationDevices)
	require.True(t, radio.Serialized)

	expiry := time.Now().AddDate(0, 0, 5)
	received, err := svc.batches.ReceiveBatch(ctx, batch.ReceiveBatchInput{
		ItemID:     radio.ID,
		Quantity:   4,
		Supplier:   "Comms Depot",
		UnitCost:   decimal.RequireFromString("3499.99"),
		ExpiryDate: &expiry,
		ReceivedBy: 1,
	})
	require.NoError(t, err)
	require.Len(t, received.SerialNumbers, 4)
	assert.Equal(t, 4, received.NewStock)
	assert.True(t, received.Batch.UnitCost.Equal(decimal.RequireFromString("3499.99")))
	svc.assertBalanced(t, radio.ID)

	notes, err := svc.inventory.ListNotifications(ctx, domain.NotificationFilter{})
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, domain.NotificationExpiringSoon, notes[0].Type)
	assert.Equal(t, domain.PriorityHigh, notes[0].Priority)

	units, err := svc.inventory.ListSerializedItems(ctx, domain.SerialFilter{ItemID: &radio.ID})
	require.NoError(t, err)
	require.Len(t, units, 4)

	created, err := svc.deployment.CreateDeployment(ctx, deployment.CreateDeploymentInput{
		ItemID:            radio.ID,
		DeploymentType:    domain.DeploymentEmergency,
		SerializedItemIDs: []int64{units[0].ID, units[1].ID, units[2].ID},
		Location:          "Evacuation Center B",
		DeployedBy:        1,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.NewStock)
	svc.assertBalanced(t, radio.ID)

	res, err := svc.deployment.ReturnDeployment(ctx, deployment.ReturnDeploymentInput{
		DeploymentID: created.Deployment.ID,
		Items: []deployment.ReturnRequest{
			{SerializedItemID: units[0].ID, Condition: domain.ConditionGood},
			{SerializedItemID: units[1].ID, Condition: domain.ConditionDamaged, Notes: "antenna snapped"},
		},
		Notes: "first truck back",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.DeploymentPartialReturn, res.Deployment.Status)
	assert.NotNil(t, res.Deployment.ActualReturnDate)
	assert.Equal(t, 2, res.NewStock)
	svc.assertBalanced(t, radio.ID)

	res, err = svc.deployment.ReturnDeployment(ctx, deployment.ReturnDeploymentInput{DeploymentID: created.Deployment.ID})
	require.NoError(t, err)
	assert.Len(t, res.Processed, 1)
	assert.Equal(t, 3, res.NewStock)
	svc.assertBalanced(t, radio.ID)

	detail, err := svc.deployment.GetDeployment(ctx, created.Deployment.ID)
	require.NoError(t, err)
	require.Len(t, detail.Items, 3)
	assert.Contains(t, detail.Notes, "first truck back")

	damaged, err := svc.inventory.GetSerializedItem(ctx, units[1].ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SerialDamaged, damaged.Status)
	assert.Contains(t, damaged.ConditionNotes, "antenna snapped")

	// Repaired and back in service.
	changed, err := svc.inventory.UpdateSerialStatus(ctx, inventory.UpdateSerialStatusInput{SerializedItemID: units[1].ID, Status: domain.SerialAvailable})
	require.NoError(t, err)
	assert.Equal(t, 4, changed.NewStock)
	svc.assertBalanced(t, radio.ID)
}

func TestBulkLifecycle_Integration(t *testing.T) {
	svc := newServices(t)
	ctx := context.Background()
	rice := svc.item(t, "Rice 25kg", domain.CategoryReliefGoods)
	require.False(t, rice.Serialized)

	_, err := svc.batches.ReceiveBatch(ctx, batch.ReceiveBatchInput{ItemID: rice.ID, Quantity: 200})
	require.NoError(t, err)

	created, err := svc.deployment.CreateDeployment(ctx, deployment.CreateDeploymentInput{
		ItemID: rice.ID, DeploymentType: domain.DeploymentReliefOperation, Quantity: 120, Location: "Barangay 12",
	})
	require.NoError(t, err)
	assert.Equal(t, 80, created.NewStock)

	res, err := svc.deployment.ReturnDeployment(ctx, deployment.ReturnDeploymentInput{DeploymentID: created.Deployment.ID, Condition: domain.ConditionLost})
	require.NoError(t, err)
	assert.Equal(t, domain.DeploymentLost, res.Deployment.Status)
	assert.Equal(t, 80, res.NewStock)
	svc.assertBalanced(t, rice.ID)

	sum, err := svc.ledger.VerifyAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Checked)
	assert.Empty(t, sum.Unbalanced)
}

func TestConcurrentSerialDeployments_Integration(t *testing.T) {
	svc := newServices(t)
	ctx := context.Background()
	truck := svc.item(t, "Fire Truck", domain.CategoryVehicles)
	_, err := svc.batches.ReceiveBatch(ctx, batch.ReceiveBatchInput{ItemID: truck.ID, Quantity: 2})
	require.NoError(t, err)
	units, err := svc.inventory.ListSerializedItems(ctx, domain.SerialFilter{ItemID: &truck.ID})
	require.NoError(t, err)

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.deployment.CreateDeployment(ctx, deployment.CreateDeploymentInput{
				ItemID:            truck.ID,
				DeploymentType:    domain.DeploymentEmergency,
				SerializedItemIDs: []int64{units[1].ID, units[0].ID},
				Location:          "Warehouse fire",
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, domain.ErrSerialNotAvailable):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, workers-1, conflicts)
	svc.assertBalanced(t, truck.ID)
}

func TestConcurrentBulkDeployments_Integration(t *testing.T) {
	svc := newServices(t)
	ctx := context.Background()
	water := svc.item(t, "Water Jug", domain.CategoryReliefGoods)
	_, err := svc.batches.ReceiveBatch(ctx, batch.ReceiveBatchInput{ItemID: water.ID, Quantity: 10})
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.deployment.CreateDeployment(ctx, deployment.CreateDeploymentInput{
				ItemID: water.ID, DeploymentType: domain.DeploymentReliefOperation, Quantity: 1, Location: "Purok 5",
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var ok, short int
	for err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, domain.ErrInsufficientStock):
			short++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 10, ok)
	assert.Equal(t, 10, short)

	item, err := svc.inventory.GetItem(ctx, water.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, item.QuantityInStock)
	svc.assertBalanced(t, water.ID)
}

func TestConstraintMapping_Integration(t *testing.T) {
	svc := newServices(t)
	ctx := context.Background()

	_, err := svc.inventory.CreateCategory(ctx, inventory.CreateCategoryInput{Name: "Medical", Type: domain.CategorySupplies})
	require.NoError(t, err)
	_, err = svc.inventory.CreateCategory(ctx, inventory.CreateCategoryInput{Name: "Medical", Type: domain.CategorySupplies})
	assert.ErrorIs(t, err, domain.ErrDuplicateCategory)

	_, err = svc.inventory.CreateItem(ctx, inventory.CreateItemInput{Name: "Oximeter"})
	require.NoError(t, err)
	_, err = svc.inventory.CreateItem(ctx, inventory.CreateItemInput{Name: "Oximeter"})
	assert.ErrorIs(t, err, domain.ErrDuplicateItem)

	_, err = svc.deployment.GetDeployment(ctx, 12345)
	assert.ErrorIs(t, err, domain.ErrDeploymentNotFound)
}

func TestDeleteBatch_Integration(t *testing.T) {
	svc := newServices(t)
	ctx := context.Background()
	saw := svc.item(t, "Chainsaw", domain.CategoryEquipment)

	first, err := svc.batches.ReceiveBatch(ctx, batch.ReceiveBatchInput{ItemID: saw.ID, Quantity: 2})
	require.NoError(t, err)
	_, err = svc.batches.ReceiveBatch(ctx, batch.ReceiveBatchInput{ItemID: saw.ID, Quantity: 3})
	require.NoError(t, err)

	require.NoError(t, svc.batches.DeleteBatch(ctx, first.Batch.ID, 1))
	item, err := svc.inventory.GetItem(ctx, saw.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, item.QuantityInStock)
	svc.assertBalanced(t, saw.ID)

	err = svc.batches.DeleteBatch(ctx, first.Batch.ID, 1)
	assert.ErrorIs(t, err, domain.ErrBatchInactive)
}

func TestLinkReturnConsistency_Integration(t *testing.T) {
	pool := requirePool(t)
	svc := newServices(t)
	ctx := context.Background()
	kit := svc.item(t, "Trauma Kit", domain.CategoryEquipment)
	_, err := svc.batches.ReceiveBatch(ctx, batch.ReceiveBatchInput{ItemID: kit.ID, Quantity: 1})
	require.NoError(t, err)
	units, err := svc.inventory.ListSerializedItems(ctx, domain.SerialFilter{ItemID: &kit.ID})
	require.NoError(t, err)
	created, err := svc.deployment.CreateDeployment(ctx, deployment.CreateDeploymentInput{
		ItemID: kit.ID, DeploymentType: domain.DeploymentTraining, SerializedItemIDs: []int64{units[0].ID}, Location: "Drill ground",
	})
	require.NoError(t, err)

	for name, stmt := range map[string]string{
		"returned without condition": `UPDATE serial_item_deployments SET returned_at = now() WHERE deployment_id = $1`,
		"condition without return":   `UPDATE serial_item_deployments SET return_condition = 'GOOD' WHERE deployment_id = $1`,
	} {
		_, err := pool.Exec(ctx, stmt, created.Deployment.ID)
		var pgErr *pgconn.PgError
		require.ErrorAs(t, err, &pgErr, name)
		assert.Equal(t, PgErrorCodeCheckViolation, pgErr.Code, name)
	}

	detail, err := svc.deployment.GetDeployment(ctx, created.Deployment.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DeploymentDeployed, detail.Deployment.Status)
}
