package batch

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/domain"
)

func TestImportCSV(t *testing.T) {
	f := newFixture(t)
	stretcher := f.equipmentItem("Stretcher")
	water := f.bulkItem("Bottled Water", 0)

	csvData := strings.Join([]string{
		"item_name,quantity,supplier,unit_cost,expiry_date,notes",
		"Stretcher,2,MedSupply,1500.00,,donation",
		"bottled water,24,Aqua,12.5,2030-01-01,",
		"Unknown Thing,1,,,,",
		"Stretcher,-3,,,,",
		"Bottled Water,5,,abc,,",
		"Bottled Water,5,,,01/02/2030,",
	}, "\n")

	res, err := f.svc.ImportCSV(context.Background(), strings.NewReader(csvData), 7)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, 4, res.Failed)
	require.Len(t, res.Errors, 4)
	assert.Equal(t, []int{4, 5, 6, 7}, []int{res.Errors[0].Row, res.Errors[1].Row, res.Errors[2].Row, res.Errors[3].Row})
	assert.Contains(t, res.Errors[0].Message, "Unknown Thing")
	assert.Contains(t, res.Errors[1].Message, domain.ErrMsgInvalidQuantity)

	assert.Equal(t, 2, f.store.Item(stretcher.ID).QuantityInStock)
	assert.Len(t, f.store.UnitsForItem(stretcher.ID), 2)
	assert.Equal(t, 24, f.store.Item(water.ID).QuantityInStock)
	assert.Equal(t, int64(7), res.Batches[0].Batch.ReceivedBy)
	assert.Equal(t, time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), *res.Batches[1].Batch.ExpiryDate)

	assertBalanced(t, f.store, stretcher.ID)
	assertBalanced(t, f.store, water.ID)
}

func TestImportCSV_RowFailureKeepsEarlierRows(t *testing.T) {
	f := newFixture(t)
	item := f.bulkItem("Rice", 0)

	csvData := "item_name,quantity\nRice,10\nRice,0\nRice,5\n"
	res, err := f.svc.ImportCSV(context.Background(), strings.NewReader(csvData), 1)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, 15, f.store.Item(item.ID).QuantityInStock)
	assertBalanced(t, f.store, item.ID)
}

func TestImportCSV_InternalErrorsAreMasked(t *testing.T) {
	f := newFixture(t)
	f.bulkItem("Rice", 0)
	f.store.FailOn("CreateBatch", assert.AnError)

	res, err := f.svc.ImportCSV(context.Background(), strings.NewReader("item_name,quantity\nRice,10\n"), 1)
	require.NoError(t, err)

	require.Len(t, res.Errors, 1)
	assert.Equal(t, MsgImportRowInternalFail, res.Errors[0].Message)
}

func TestImportCSV_QuantityOverCap(t *testing.T) {
	f := newFixture(t)
	item := f.bulkItem("Rice", 0)

	csvData := "item_name,quantity\nRice,10001\nRice,4294967301\nRice,10000\n"
	res, err := f.svc.ImportCSV(context.Background(), strings.NewReader(csvData), 1)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Imported)
	assert.Equal(t, 2, res.Failed)
	assert.Contains(t, res.Errors[0].Message, domain.ErrMsgInvalidQuantity)
	assert.Equal(t, 10000, f.store.Item(item.ID).QuantityInStock)
	assertBalanced(t, f.store, item.ID)
}

func TestImportCSV_BadHeader(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.ImportCSV(context.Background(), strings.NewReader(""), 1)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.svc.ImportCSV(context.Background(), strings.NewReader("name,qty\nRice,1\n"), 1)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
