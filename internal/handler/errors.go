package handler

// Client-facing messages. Internal error details are never returned.
const (
	ErrMsgGenericServerError    = "Something went wrong"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidID             = "Invalid %s"
	ErrMsgInvalidQueryParam     = "Invalid %s query parameter"
	ErrMsgMissingCSVFile        = "Missing CSV file"
	ErrMsgUnauthorized          = "Authentication required"
	ErrMsgForbidden             = "Admin role required"
)

// Success messages
const (
	MsgCategoryCreated    = "Category created"
	MsgItemCreated        = "Item created"
	MsgBatchReceived      = "Batch received"
	MsgBatchDeleted       = "Batch deleted"
	MsgBatchesImported    = "Import finished"
	MsgDeploymentCreated  = "Deployment created"
	MsgDeploymentReturned = "Deployment returned"
	MsgNothingToReturn    = "No units needed updating"
	MsgStatusUpdated      = "Status updated"
	MsgNotificationRead   = "Notification marked as read"
)

// Log messages
const (
	LogMsgEncodeResponseFailed = "Failed to encode JSON response"
	LogMsgWriteResponseFailed  = "Failed to write response buffer"
	LogMsgDecodeFailed         = "Failed to decode request"
	LogMsgReadinessFailed      = "Readiness check failed"
)

// MaxImportBytes caps the size of an uploaded CSV file.
const MaxImportBytes = 5 << 20
