package deployment

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/batch"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/cache"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/domain"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/event"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/repository/fake"
)

type fixture struct {
	store   *fake.Store
	pub     *fake.Publisher
	svc     *service
	batches batch.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := fake.NewStore()
	pub := &fake.Publisher{}
	layer := cache.NewLayer(cache.NewMemoryStore(64, time.Minute), time.Minute)
	return &fixture{
		store:   store,
		pub:     pub,
		svc:     NewService(store.Deployments(), pub, layer).(*service),
		batches: batch.NewService(store.Batches(), nil, layer),
	}
}

// radios stocks a serialized item with n units and returns the item and unit ids.
func (f *fixture) radios(t *testing.T, n int) (domain.InventoryItem, []int64) {
	t.Helper()
	cat := f.store.AddCategory("Communication", domain.CategoryCommunicationDevices)
	item := f.store.AddItem(domain.InventoryItem{Name: "Handheld Radio", CategoryID: &cat.ID, Unit: "pcs"})
	_, err := f.batches.ReceiveBatch(context.Background(), batch.ReceiveBatchInput{ItemID: item.ID, Quantity: n})
	require.NoError(t, err)

	var ids []int64
	for _, u := range f.store.UnitsForItem(item.ID) {
		ids = append(ids, u.ID)
	}
	require.Len(t, ids, n)
	return f.store.Item(item.ID), ids
}

// rice stocks a bulk item with qty units.
func (f *fixture) rice(t *testing.T, qty, min int) domain.InventoryItem {
	t.Helper()
	cat := f.store.AddCategory("Relief Goods", domain.CategoryReliefGoods)
	item := f.store.AddItem(domain.InventoryItem{Name: "Rice Sack", CategoryID: &cat.ID, Unit: "sack", MinStockLevel: min})
	_, err := f.batches.ReceiveBatch(context.Background(), batch.ReceiveBatchInput{ItemID: item.ID, Quantity: qty})
	require.NoError(t, err)
	return f.store.Item(item.ID)
}

func (f *fixture) deployUnits(t *testing.T, itemID int64, ids ...int64) domain.Deployment {
	t.Helper()
	res, err := f.svc.CreateDeployment(context.Background(), CreateDeploymentInput{
		ItemID:            itemID,
		DeploymentType:    domain.DeploymentReliefOperation,
		SerializedItemIDs: ids,
		Location:          "Barangay Hall",
		DeployedBy:        7,
	})
	require.NoError(t, err)
	return res.Deployment
}

func (f *fixture) notificationsOf(typ domain.NotificationType) []domain.Notification {
	var out []domain.Notification
	for _, n := range f.store.Notifications() {
		if n.Type == typ {
			out = append(out, n)
		}
	}
	return out
}

func assertBalanced(t *testing.T, store *fake.Store, itemID int64) {
	t.Helper()
	snap, ok := store.LedgerBalanced(itemID)
	assert.True(t, ok, "ledger out of balance: %+v (expected %d)", snap, snap.ExpectedStock())
}

func TestBulkDeploymentRoundTrip(t *testing.T) {
	f := newFixture(t)
	item := f.rice(t, 100, 10)
	ctx := context.Background()

	created, err := f.svc.CreateDeployment(ctx, CreateDeploymentInput{
		ItemID:         item.ID,
		DeploymentType: domain.DeploymentReliefOperation,
		Quantity:       30,
		Location:       "Evacuation Center A",
		DeployedBy:     3,
	})
	require.NoError(t, err)
	assert.Equal(t, 70, created.NewStock)
	assert.False(t, created.Deployment.IsSerialized)
	assert.Equal(t, domain.DeploymentDeployed, created.Deployment.Status)
	assertBalanced(t, f.store, item.ID)

	res, err := f.svc.ReturnDeployment(ctx, ReturnDeploymentInput{DeploymentID: created.Deployment.ID, Notes: "all sacks intact"})
	require.NoError(t, err)
	assert.Equal(t, 30, res.Good)
	assert.Equal(t, 30, res.StockDelta)
	assert.Equal(t, 100, res.NewStock)
	assert.Equal(t, domain.DeploymentReturned, res.Deployment.Status)
	require.NotNil(t, res.Deployment.ReturnCondition)
	assert.Equal(t, domain.ConditionGood, *res.Deployment.ReturnCondition)
	assert.NotNil(t, res.Deployment.ActualReturnDate)
	assert.Contains(t, res.Deployment.Notes, "all sacks intact")
	assert.Equal(t, 100, f.store.Item(item.ID).QuantityInStock)
	assertBalanced(t, f.store, item.ID)

	returns := f.notificationsOf(domain.NotificationEquipmentReturn)
	require.Len(t, returns, 1)
	assert.Equal(t, domain.PriorityLow, returns[0].Priority)
	assert.Len(t, f.pub.Events(event.DeploymentReturned), 1)

	_, err = f.svc.ReturnDeployment(ctx, ReturnDeploymentInput{DeploymentID: created.Deployment.ID})
	assert.ErrorIs(t, err, domain.ErrDeploymentClosed)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestBulkReturn_DamagedKeepsStockOut(t *testing.T) {
	f := newFixture(t)
	item := f.rice(t, 50, 0)
	ctx := context.Background()

	created, err := f.svc.CreateDeployment(ctx, CreateDeploymentInput{
		ItemID: item.ID, DeploymentType: domain.DeploymentEmergency, Quantity: 20, Location: "Riverside",
	})
	require.NoError(t, err)

	res, err := f.svc.ReturnDeployment(ctx, ReturnDeploymentInput{DeploymentID: created.Deployment.ID, Condition: domain.ConditionDamaged})
	require.NoError(t, err)
	assert.Equal(t, 0, res.StockDelta)
	assert.Equal(t, 20, res.Damaged)
	assert.Equal(t, domain.DeploymentDamaged, res.Deployment.Status)
	assert.Equal(t, 30, f.store.Item(item.ID).QuantityInStock)
	assertBalanced(t, f.store, item.ID)

	returns := f.notificationsOf(domain.NotificationEquipmentReturn)
	require.Len(t, returns, 1)
	assert.Equal(t, domain.PriorityMedium, returns[0].Priority)
}

func TestBulkReturn_RejectsUnitConditions(t *testing.T) {
	f := newFixture(t)
	item := f.rice(t, 10, 0)
	created, err := f.svc.CreateDeployment(context.Background(), CreateDeploymentInput{
		ItemID: item.ID, DeploymentType: domain.DeploymentTraining, Quantity: 2, Location: "Gym",
	})
	require.NoError(t, err)

	_, err = f.svc.ReturnDeployment(context.Background(), ReturnDeploymentInput{
		DeploymentID: created.Deployment.ID,
		Items:        []ReturnRequest{{SerializedItemID: 99, Condition: domain.ConditionGood}},
	})
	assert.ErrorIs(t, err, domain.ErrSerialNotInDeployment)
	assert.Contains(t, err.Error(), "[99]")
}

func TestCreateDeployment_Validation(t *testing.T) {
	f := newFixture(t)
	item := f.rice(t, 10, 0)
	radio, ids := f.radios(t, 2)

	tests := []struct {
		name string
		in   CreateDeploymentInput
		want error
	}{
		{"neither quantity nor units", CreateDeploymentInput{ItemID: item.ID, DeploymentType: domain.DeploymentEmergency, Location: "X"}, domain.ErrInvalidDeploymentRequest},
		{"both quantity and units", CreateDeploymentInput{ItemID: radio.ID, DeploymentType: domain.DeploymentEmergency, Location: "X", Quantity: 1, SerializedItemIDs: ids[:1]}, domain.ErrInvalidDeploymentRequest},
		{"missing location", CreateDeploymentInput{ItemID: item.ID, DeploymentType: domain.DeploymentEmergency, Location: "  ", Quantity: 1}, domain.ErrMissingLocation},
		{"bad type", CreateDeploymentInput{ItemID: item.ID, DeploymentType: "PICNIC", Location: "X", Quantity: 1}, domain.ErrInvalidDeploymentType},
		{"too much", CreateDeploymentInput{ItemID: item.ID, DeploymentType: domain.DeploymentEmergency, Location: "X", Quantity: 11}, domain.ErrInsufficientStock},
		{"bulk of serialized item", CreateDeploymentInput{ItemID: radio.ID, DeploymentType: domain.DeploymentEmergency, Location: "X", Quantity: 1}, domain.ErrBulkDeploySerialized},
		{"duplicate units", CreateDeploymentInput{ItemID: radio.ID, DeploymentType: domain.DeploymentEmergency, Location: "X", SerializedItemIDs: []int64{ids[0], ids[0]}}, domain.ErrDuplicateSerialIDs},
		{"unknown item", CreateDeploymentInput{ItemID: 9999, DeploymentType: domain.DeploymentEmergency, Location: "X", Quantity: 1}, domain.ErrItemNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.CreateDeployment(context.Background(), tt.in)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	assert.Equal(t, 10, f.store.Item(item.ID).QuantityInStock)
	assert.Equal(t, 2, f.store.Item(radio.ID).QuantityInStock)
	assert.Empty(t, f.pub.Events(event.DeploymentCreated))
}

func TestCreateDeployment_SerializedUnits(t *testing.T) {
	f := newFixture(t)
	radio, ids := f.radios(t, 4)

	d := f.deployUnits(t, radio.ID, ids[2], ids[0])
	assert.True(t, d.IsSerialized)
	assert.Equal(t, 2, d.QuantityDeployed)
	assert.Equal(t, 2, f.store.Item(radio.ID).QuantityInStock)
	assert.Equal(t, domain.SerialDeployed, f.store.Unit(ids[0]).Status)
	assert.Equal(t, domain.SerialDeployed, f.store.Unit(ids[2]).Status)
	assert.Equal(t, domain.SerialAvailable, f.store.Unit(ids[1]).Status)
	assertBalanced(t, f.store, radio.ID)

	detail, err := f.svc.GetDeployment(context.Background(), d.ID)
	require.NoError(t, err)
	require.Len(t, detail.Items, 2)
	assert.Equal(t, ids[0], detail.Items[0].SerializedItemID)
	assert.Equal(t, ids[2], detail.Items[1].SerializedItemID)
}

func TestCreateDeployment_UnitsOfAnotherItem(t *testing.T) {
	f := newFixture(t)
	radio, _ := f.radios(t, 1)
	cat := f.store.AddCategory("Equipment", domain.CategoryEquipment)
	other := f.store.AddItem(domain.InventoryItem{Name: "Chainsaw", CategoryID: &cat.ID})
	_, err := f.batches.ReceiveBatch(context.Background(), batch.ReceiveBatchInput{ItemID: other.ID, Quantity: 1})
	require.NoError(t, err)
	foreign := f.store.UnitsForItem(other.ID)[0].ID

	_, err = f.svc.CreateDeployment(context.Background(), CreateDeploymentInput{
		ItemID: radio.ID, DeploymentType: domain.DeploymentEmergency, Location: "X", SerializedItemIDs: []int64{foreign, 12345},
	})
	assert.ErrorIs(t, err, domain.ErrSerialNotInItem)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), fmt.Sprint([]int64{foreign, 12345}))
	assert.Equal(t, domain.SerialAvailable, f.store.Unit(foreign).Status)
}

func TestCreateDeployment_UnitsNotAvailable(t *testing.T) {
	f := newFixture(t)
	radio, ids := f.radios(t, 3)
	f.deployUnits(t, radio.ID, ids[0])

	_, err := f.svc.CreateDeployment(context.Background(), CreateDeploymentInput{
		ItemID: radio.ID, DeploymentType: domain.DeploymentEmergency, Location: "X", SerializedItemIDs: []int64{ids[0], ids[1]},
	})
	assert.ErrorIs(t, err, domain.ErrSerialNotAvailable)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Contains(t, err.Error(), fmt.Sprint([]int64{ids[0]}))

	// Nothing from the failed request stuck.
	assert.Equal(t, domain.SerialAvailable, f.store.Unit(ids[1]).Status)
	assert.Equal(t, 2, f.store.Item(radio.ID).QuantityInStock)
	assertBalanced(t, f.store, radio.ID)
}

func TestCreateDeployment_RollsBackOnLinkFailure(t *testing.T) {
	f := newFixture(t)
	radio, ids := f.radios(t, 2)
	f.store.FailOn("UpdateSerializedItemStatus", errors.New("connection reset"))

	_, err := f.svc.CreateDeployment(context.Background(), CreateDeploymentInput{
		ItemID: radio.ID, DeploymentType: domain.DeploymentEmergency, Location: "X", SerializedItemIDs: ids,
	})
	require.Error(t, err)
	assert.Equal(t, 2, f.store.Item(radio.ID).QuantityInStock)
	for _, id := range ids {
		assert.Equal(t, domain.SerialAvailable, f.store.Unit(id).Status)
	}
	assertBalanced(t, f.store, radio.ID)
	assert.Empty(t, f.pub.Events(event.DeploymentCreated))
}

func TestCreateDeployment_LowStockNotification(t *testing.T) {
	f := newFixture(t)
	item := f.rice(t, 12, 5)

	_, err := f.svc.CreateDeployment(context.Background(), CreateDeploymentInput{
		ItemID: item.ID, DeploymentType: domain.DeploymentReliefOperation, Quantity: 8, Location: "Purok 3",
	})
	require.NoError(t, err)

	low := f.notificationsOf(domain.NotificationLowStock)
	require.Len(t, low, 1)
	assert.Equal(t, domain.PriorityMedium, low[0].Priority)
	assert.Len(t, f.pub.Events(event.NotificationCreated), 1)
}

func TestCreateDeployment_NotificationFailureIsSwallowed(t *testing.T) {
	f := newFixture(t)
	item := f.rice(t, 5, 5)
	f.store.FailNotifications(true)

	res, err := f.svc.CreateDeployment(context.Background(), CreateDeploymentInput{
		ItemID: item.ID, DeploymentType: domain.DeploymentReliefOperation, Quantity: 5, Location: "Purok 1",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, res.NewStock)
	assert.Empty(t, f.store.Notifications())
	assertBalanced(t, f.store, item.ID)
}

func TestSerializedReturn_PartialThenRest(t *testing.T) {
	f := newFixture(t)
	radio, ids := f.radios(t, 3)
	d := f.deployUnits(t, radio.ID, ids...)
	ctx := context.Background()

	res, err := f.svc.ReturnDeployment(ctx, ReturnDeploymentInput{
		DeploymentID: d.ID,
		Items: []ReturnRequest{
			{SerializedItemID: ids[0], Condition: domain.ConditionGood},
			{SerializedItemID: ids[1], Condition: domain.ConditionDamaged, Notes: "cracked screen"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.DeploymentPartialReturn, res.Deployment.Status)
	assert.Equal(t, 1, res.StockDelta)
	assert.Equal(t, 1, res.NewStock)
	assert.Equal(t, domain.SerialAvailable, f.store.Unit(ids[0]).Status)
	assert.Equal(t, domain.SerialDamaged, f.store.Unit(ids[1]).Status)
	assert.Contains(t, f.store.Unit(ids[1]).ConditionNotes, "cracked screen")
	assert.Equal(t, domain.SerialDeployed, f.store.Unit(ids[2]).Status)
	assert.Nil(t, res.Deployment.ReturnCondition)
	assertBalanced(t, f.store, radio.ID)

	// No explicit items: the one still out comes back in the uniform condition.
	res, err = f.svc.ReturnDeployment(ctx, ReturnDeploymentInput{DeploymentID: d.ID, Condition: domain.ConditionFair})
	require.NoError(t, err)
	require.Len(t, res.Processed, 1)
	assert.Equal(t, ids[2], res.Processed[0].SerializedItemID)
	assert.Equal(t, domain.SerialAvailable, f.store.Unit(ids[2]).Status)
	assert.Equal(t, 2, f.store.Item(radio.ID).QuantityInStock)
	assert.Equal(t, domain.DeploymentPartialReturn, res.Deployment.Status)
	assert.NotNil(t, res.Deployment.ActualReturnDate)
	assertBalanced(t, f.store, radio.ID)

	assert.Len(t, f.notificationsOf(domain.NotificationEquipmentReturn), 2)
	assert.Len(t, f.pub.Events(event.DeploymentReturned), 2)
}

func TestSerializedReturn_AllGood(t *testing.T) {
	f := newFixture(t)
	radio, ids := f.radios(t, 2)
	d := f.deployUnits(t, radio.ID, ids...)

	res, err := f.svc.ReturnDeployment(context.Background(), ReturnDeploymentInput{DeploymentID: d.ID})
	require.NoError(t, err)
	assert.Equal(t, domain.DeploymentReturned, res.Deployment.Status)
	assert.Equal(t, 2, res.Good)
	assert.Equal(t, 2, f.store.Item(radio.ID).QuantityInStock)
	assertBalanced(t, f.store, radio.ID)

	// The cached detail is dropped on return.
	detail, err := f.svc.GetDeployment(context.Background(), d.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DeploymentReturned, detail.Status)
	for _, l := range detail.Items {
		assert.True(t, l.Returned())
	}
}

func TestSerializedReturn_RepeatedGoodIsNoop(t *testing.T) {
	f := newFixture(t)
	radio, ids := f.radios(t, 2)
	d := f.deployUnits(t, radio.ID, ids...)
	ctx := context.Background()

	_, err := f.svc.ReturnDeployment(ctx, ReturnDeploymentInput{DeploymentID: d.ID})
	require.NoError(t, err)
	commits := f.store.Commits()
	notes := len(f.store.Notifications())

	res, err := f.svc.ReturnDeployment(ctx, ReturnDeploymentInput{
		DeploymentID: d.ID,
		Items: []ReturnRequest{
			{SerializedItemID: ids[0], Condition: domain.ConditionGood},
			{SerializedItemID: ids[1], Condition: domain.ConditionGood},
		},
	})
	require.NoError(t, err)
	assert.Empty(t, res.Processed)
	assert.ElementsMatch(t, ids, res.Skipped)
	assert.Equal(t, 0, res.StockDelta)
	assert.Equal(t, domain.DeploymentReturned, res.Deployment.Status)
	assert.Equal(t, commits, f.store.Commits())
	assert.Len(t, f.store.Notifications(), notes)
	assert.Len(t, f.pub.Events(event.DeploymentReturned), 1)
	assert.Equal(t, 2, f.store.Item(radio.ID).QuantityInStock)
	assertBalanced(t, f.store, radio.ID)
}

func TestSerializedReturn_Reclassify(t *testing.T) {
	f := newFixture(t)
	radio, ids := f.radios(t, 2)
	d := f.deployUnits(t, radio.ID, ids...)
	ctx := context.Background()

	_, err := f.svc.ReturnDeployment(ctx, ReturnDeploymentInput{DeploymentID: d.ID})
	require.NoError(t, err)

	// Inspection later finds one unit was damaged.
	res, err := f.svc.ReturnDeployment(ctx, ReturnDeploymentInput{
		DeploymentID: d.ID,
		Items:        []ReturnRequest{{SerializedItemID: ids[1], Condition: domain.ConditionDamaged}},
		Notes:        "water damage found on inspection",
	})
	require.NoError(t, err)
	assert.Equal(t, -1, res.StockDelta)
	assert.Equal(t, 1, res.NewStock)
	assert.Equal(t, domain.SerialDamaged, f.store.Unit(ids[1]).Status)
	assert.Equal(t, domain.DeploymentPartialReturn, res.Deployment.Status)
	assert.Contains(t, res.Deployment.Notes, "water damage")
	assertBalanced(t, f.store, radio.ID)

	// And then recovered after repair.
	res, err = f.svc.ReturnDeployment(ctx, ReturnDeploymentInput{
		DeploymentID: d.ID,
		Items:        []ReturnRequest{{SerializedItemID: ids[1], Condition: domain.ConditionGood}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.StockDelta)
	assert.Equal(t, domain.DeploymentReturned, res.Deployment.Status)
	assertBalanced(t, f.store, radio.ID)
}

func TestSerializedReturn_ReclassifyAfterRedeployConflicts(t *testing.T) {
	f := newFixture(t)
	radio, ids := f.radios(t, 1)
	first := f.deployUnits(t, radio.ID, ids[0])
	ctx := context.Background()

	_, err := f.svc.ReturnDeployment(ctx, ReturnDeploymentInput{DeploymentID: first.ID})
	require.NoError(t, err)
	f.deployUnits(t, radio.ID, ids[0])

	_, err = f.svc.ReturnDeployment(ctx, ReturnDeploymentInput{
		DeploymentID: first.ID,
		Items:        []ReturnRequest{{SerializedItemID: ids[0], Condition: domain.ConditionLost}},
	})
	assert.ErrorIs(t, err, domain.ErrSerialStateChanged)
	assert.Equal(t, domain.SerialDeployed, f.store.Unit(ids[0]).Status)
	assertBalanced(t, f.store, radio.ID)
}

func TestSerializedReturn_ForeignUnits(t *testing.T) {
	f := newFixture(t)
	radio, ids := f.radios(t, 3)
	d := f.deployUnits(t, radio.ID, ids[0])

	_, err := f.svc.ReturnDeployment(context.Background(), ReturnDeploymentInput{
		DeploymentID: d.ID,
		Items: []ReturnRequest{
			{SerializedItemID: ids[0], Condition: domain.ConditionGood},
			{SerializedItemID: ids[2], Condition: domain.ConditionGood},
		},
	})
	assert.ErrorIs(t, err, domain.ErrSerialNotInDeployment)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), fmt.Sprint([]int64{ids[2]}))
	assert.Equal(t, domain.SerialDeployed, f.store.Unit(ids[0]).Status)
}

func TestSerializedReturn_LostRaisesHighPriority(t *testing.T) {
	f := newFixture(t)
	radio, ids := f.radios(t, 2)
	d := f.deployUnits(t, radio.ID, ids...)

	res, err := f.svc.ReturnDeployment(context.Background(), ReturnDeploymentInput{DeploymentID: d.ID, Condition: domain.ConditionLost})
	require.NoError(t, err)
	assert.Equal(t, domain.DeploymentLost, res.Deployment.Status)
	assert.Equal(t, 0, f.store.Item(radio.ID).QuantityInStock)
	assertBalanced(t, f.store, radio.ID)

	returns := f.notificationsOf(domain.NotificationEquipmentReturn)
	require.Len(t, returns, 1)
	assert.Equal(t, domain.PriorityHigh, returns[0].Priority)
}

func TestSerializedReturn_RollsBackOnFailure(t *testing.T) {
	f := newFixture(t)
	radio, ids := f.radios(t, 2)
	d := f.deployUnits(t, radio.ID, ids...)
	f.store.FailOn("UpdateDeploymentReturn", errors.New("deadlock detected"))

	_, err := f.svc.ReturnDeployment(context.Background(), ReturnDeploymentInput{DeploymentID: d.ID})
	require.Error(t, err)
	assert.Equal(t, 0, f.store.Item(radio.ID).QuantityInStock)
	for _, id := range ids {
		assert.Equal(t, domain.SerialDeployed, f.store.Unit(id).Status)
	}
	assert.Equal(t, domain.DeploymentDeployed, f.store.Deployment(d.ID).Status)
	assertBalanced(t, f.store, radio.ID)
}

func TestReturnDeployment_Errors(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.ReturnDeployment(context.Background(), ReturnDeploymentInput{DeploymentID: 404})
	assert.ErrorIs(t, err, domain.ErrDeploymentNotFound)

	_, err = f.svc.ReturnDeployment(context.Background(), ReturnDeploymentInput{DeploymentID: 1, Condition: "SOGGY"})
	assert.ErrorIs(t, err, domain.ErrInvalidCondition)
}

func TestListDeployments(t *testing.T) {
	f := newFixture(t)
	item := f.rice(t, 20, 0)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := f.svc.CreateDeployment(ctx, CreateDeploymentInput{
			ItemID: item.ID, DeploymentType: domain.DeploymentReliefOperation, Quantity: 1, Location: "Zone",
		})
		require.NoError(t, err)
	}

	all, err := f.svc.ListDeployments(ctx, domain.DeploymentFilter{ItemID: &item.ID})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	bad := domain.DeploymentStatus("MISSING")
	_, err = f.svc.ListDeployments(ctx, domain.DeploymentFilter{Status: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestNotifyOverdue(t *testing.T) {
	f := newFixture(t)
	item := f.rice(t, 10, 0)
	ctx := context.Background()
	past := time.Now().Add(-48 * time.Hour)
	future := time.Now().Add(48 * time.Hour)

	late, err := f.svc.CreateDeployment(ctx, CreateDeploymentInput{
		ItemID: item.ID, DeploymentType: domain.DeploymentEmergency, Quantity: 2, Location: "North", ExpectedReturnDate: &past,
	})
	require.NoError(t, err)
	_, err = f.svc.CreateDeployment(ctx, CreateDeploymentInput{
		ItemID: item.ID, DeploymentType: domain.DeploymentEmergency, Quantity: 2, Location: "South", ExpectedReturnDate: &future,
	})
	require.NoError(t, err)

	overdue, err := f.svc.ListOverdue(ctx)
	require.NoError(t, err)
	require.Len(t, overdue, 1)
	assert.Equal(t, late.Deployment.ID, overdue[0].ID)

	n, err := f.svc.NotifyOverdue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = f.svc.NotifyOverdue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n, "second sweep within a day must not repeat the alert")

	alerts := f.notificationsOf(domain.NotificationOverdueReturn)
	require.Len(t, alerts, 1)
	assert.Equal(t, domain.PriorityHigh, alerts[0].Priority)
	require.NotNil(t, alerts[0].DeploymentID)
	assert.Equal(t, late.Deployment.ID, *alerts[0].DeploymentID)
}
