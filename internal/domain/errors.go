package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Categories understood by the HTTP layer
	ErrMsgValidation = "validation failed"
	ErrMsgNotFound   = "not found"
	ErrMsgConflict   = "conflict"
	ErrMsgForbidden  = "insufficient permissions"

	// Transaction errors
	ErrMsgTxClosed = "tx is closed"

	// Input errors
	ErrMsgInvalidQuantity          = "quantity must be greater than zero"
	ErrMsgInvalidDeploymentRequest = "provide exactly one of quantity or serialized_item_ids"
	ErrMsgInsufficientStock        = "insufficient stock"
	ErrMsgSerialNotInItem          = "serialized items do not belong to item"
	ErrMsgSerialNotInDeployment    = "serialized items are not part of this deployment"
	ErrMsgDuplicateSerialIDs       = "duplicate serialized item ids"
	ErrMsgInvalidCondition         = "invalid return condition"
	ErrMsgInvalidStatus            = "invalid status"
	ErrMsgInvalidCategoryType      = "invalid category type"
	ErrMsgInvalidDeploymentType    = "invalid deployment type"
	ErrMsgBulkDeploySerialized     = "item is serialized; deploy it by serialized_item_ids"
	ErrMsgSerialIDsOnBulk          = "bulk deployment has no serialized items"
	ErrMsgMissingLocation          = "deployment location is required"
	ErrMsgMissingName              = "name is required"

	// Conflict errors
	ErrMsgSerialNotAvailable     = "serialized items are not available"
	ErrMsgSerialStateChanged     = "serialized items changed state since their return"
	ErrMsgDeploymentClosed       = "deployment has already been returned"
	ErrMsgDuplicateBatchNumber   = "batch number already exists"
	ErrMsgDuplicateSerialNumber  = "serial number already exists"
	ErrMsgDuplicateCategory      = "category already exists"
	ErrMsgDuplicateItem          = "item with this name already exists"
	ErrMsgBatchInUse             = "batch units are no longer all available"
	ErrMsgBatchInactive          = "batch is already inactive"
	ErrMsgSerialStatusTransition = "status change not allowed"
)

// Category errors. Every specific error below wraps exactly one of these, so
// callers can classify with errors.Is.
var (
	ErrValidation = errors.New(ErrMsgValidation)
	ErrNotFound   = errors.New(ErrMsgNotFound)
	ErrConflict   = errors.New(ErrMsgConflict)
	ErrForbidden  = errors.New(ErrMsgForbidden)
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrTxClosed = errors.New(ErrMsgTxClosed)

	// Not found
	ErrItemNotFound           = fmt.Errorf("item %w", ErrNotFound)
	ErrCategoryNotFound       = fmt.Errorf("category %w", ErrNotFound)
	ErrBatchNotFound          = fmt.Errorf("batch %w", ErrNotFound)
	ErrSerializedItemNotFound = fmt.Errorf("serialized item %w", ErrNotFound)
	ErrDeploymentNotFound     = fmt.Errorf("deployment %w", ErrNotFound)
	ErrNotificationNotFound   = fmt.Errorf("notification %w", ErrNotFound)

	// Validation
	ErrInvalidQuantity          = validation(ErrMsgInvalidQuantity)
	ErrInvalidDeploymentRequest = validation(ErrMsgInvalidDeploymentRequest)
	ErrInsufficientStock        = validation(ErrMsgInsufficientStock)
	ErrSerialNotInItem          = validation(ErrMsgSerialNotInItem)
	ErrSerialNotInDeployment    = validation(ErrMsgSerialNotInDeployment)
	ErrDuplicateSerialIDs       = validation(ErrMsgDuplicateSerialIDs)
	ErrInvalidCondition         = validation(ErrMsgInvalidCondition)
	ErrInvalidStatus            = validation(ErrMsgInvalidStatus)
	ErrInvalidCategoryType      = validation(ErrMsgInvalidCategoryType)
	ErrInvalidDeploymentType    = validation(ErrMsgInvalidDeploymentType)
	ErrBulkDeploySerialized     = validation(ErrMsgBulkDeploySerialized)
	ErrSerialIDsOnBulk          = validation(ErrMsgSerialIDsOnBulk)
	ErrMissingLocation          = validation(ErrMsgMissingLocation)
	ErrMissingName              = validation(ErrMsgMissingName)

	// Conflict
	ErrSerialNotAvailable     = conflict(ErrMsgSerialNotAvailable)
	ErrSerialStateChanged     = conflict(ErrMsgSerialStateChanged)
	ErrDeploymentClosed       = conflict(ErrMsgDeploymentClosed)
	ErrDuplicateBatchNumber   = conflict(ErrMsgDuplicateBatchNumber)
	ErrDuplicateSerialNumber  = conflict(ErrMsgDuplicateSerialNumber)
	ErrDuplicateCategory      = conflict(ErrMsgDuplicateCategory)
	ErrDuplicateItem          = conflict(ErrMsgDuplicateItem)
	ErrBatchInUse             = conflict(ErrMsgBatchInUse)
	ErrBatchInactive          = conflict(ErrMsgBatchInactive)
	ErrSerialStatusTransition = conflict(ErrMsgSerialStatusTransition)
)

type categorized struct {
	msg      string
	category error
}

func (e *categorized) Error() string { return e.msg }
func (e *categorized) Unwrap() error { return e.category }

func validation(msg string) error { return &categorized{msg: msg, category: ErrValidation} }
func conflict(msg string) error   { return &categorized{msg: msg, category: ErrConflict} }

// WithIDs annotates err with the offending ids, keeping err matchable.
func WithIDs(err error, ids []int64) error {
	return fmt.Errorf("%w: %v", err, ids)
}
