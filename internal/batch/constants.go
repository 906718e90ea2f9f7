package batch

// Log messages
const (
	LogMsgBatchReceived      = "Batch received"
	LogMsgBatchDeleted       = "Batch deleted"
	LogMsgImportRowFailed    = "Import row failed"
	LogMsgImportFinished     = "Batch import finished"
	LogMsgExpirySweepDone    = "Expiry sweep finished"
	LogMsgExpiryItemSkipped  = "Expiry sweep skipped item"
	MsgBatchDeletedUnitNote  = "retired: batch %s deleted"
	MsgImportRowInternalFail = "failed to import row"
)

// CSV import columns. item_name and quantity are required.
const (
	ColItemName   = "item_name"
	ColQuantity   = "quantity"
	ColSupplier   = "supplier"
	ColUnitCost   = "unit_cost"
	ColExpiryDate = "expiry_date"
	ColNotes      = "notes"

	ExpiryDateLayout = "2006-01-02"
	MaxImportRows    = 5000
)

// MaxBatchQuantity caps a single receipt. Keep the validate tag on
// ReceiveBatchInput.Quantity in step.
const MaxBatchQuantity = 10000
