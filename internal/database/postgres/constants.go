package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
	// PgErrorCodeCheckViolation is raised when a CHECK constraint (e.g. non-negative stock) fails
	PgErrorCodeCheckViolation = "23514"
)

// Constraint names the repositories translate into domain errors
const (
	ConstraintBatchNumber      = "batches_batch_number_key"
	ConstraintSerialNumber     = "serialized_items_serial_number_key"
	ConstraintCategoryName     = "categories_name_key"
	ConstraintItemName         = "idx_inventory_items_name"
	ConstraintStockNonNegative = "inventory_items_quantity_in_stock_check"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
	ErrMsgFailedToBeginSavepoint    = "failed to begin savepoint"
)

// Error Messages - Inventory Operations
const (
	ErrMsgFailedToCreateCategory = "failed to create category"
	ErrMsgFailedToGetCategory    = "failed to get category"
	ErrMsgFailedToListCategories = "failed to list categories"
	ErrMsgFailedToCreateItem     = "failed to create item"
	ErrMsgFailedToGetItem        = "failed to get item"
	ErrMsgFailedToListItems      = "failed to list items"
	ErrMsgFailedToLockItem       = "failed to lock item"
	ErrMsgFailedToAdjustStock    = "failed to adjust stock"
	ErrMsgFailedToGetLedger      = "failed to get stock ledger"
)

// Error Messages - Batch Operations
const (
	ErrMsgFailedToCreateBatch     = "failed to create batch"
	ErrMsgFailedToGetBatch        = "failed to get batch"
	ErrMsgFailedToListBatches     = "failed to list batches"
	ErrMsgFailedToDeactivateBatch = "failed to deactivate batch"
)

// Error Messages - Serialized Item Operations
const (
	ErrMsgFailedToCreateSerializedItems = "failed to create serialized items"
	ErrMsgFailedToGetSerializedItem     = "failed to get serialized item"
	ErrMsgFailedToListSerializedItems   = "failed to list serialized items"
	ErrMsgFailedToLockSerializedItems   = "failed to lock serialized items"
	ErrMsgFailedToUpdateSerializedItem  = "failed to update serialized item"
)

// Error Messages - Deployment Operations
const (
	ErrMsgFailedToCreateDeployment      = "failed to create deployment"
	ErrMsgFailedToGetDeployment         = "failed to get deployment"
	ErrMsgFailedToListDeployments       = "failed to list deployments"
	ErrMsgFailedToCreateDeploymentLinks = "failed to create deployment links"
	ErrMsgFailedToListDeploymentLinks   = "failed to list deployment links"
	ErrMsgFailedToUpdateDeploymentLink  = "failed to update deployment link"
	ErrMsgFailedToUpdateDeployment      = "failed to update deployment"
)

// Error Messages - Notification Operations
const (
	ErrMsgFailedToCreateNotification = "failed to create notification"
	ErrMsgFailedToCheckNotification  = "failed to check recent notifications"
	ErrMsgFailedToListNotifications  = "failed to list notifications"
	ErrMsgFailedToMarkNotification   = "failed to mark notification read"
)

// Error Messages - Event Log Operations
const (
	ErrMsgFailedToEncodeEvent = "failed to encode event"
	ErrMsgFailedToDecodeEvent = "failed to decode event"
	ErrMsgFailedToWriteEvent  = "failed to write event log"
	ErrMsgFailedToListEvents  = "failed to list event log"
	ErrMsgFailedToPurgeEvents = "failed to purge event log"
)
