package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/domain"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"validation", domain.ErrInsufficientStock, http.StatusBadRequest, domain.ErrMsgInsufficientStock},
		{"validation with ids", domain.WithIDs(domain.ErrSerialNotInItem, []int64{4, 5}), http.StatusBadRequest, "[4 5]"},
		{"unknown item on create is validation", fmt.Errorf("%w: %w", domain.ErrValidation, domain.ErrItemNotFound), http.StatusBadRequest, "item not found"},
		{"conflict", domain.WithIDs(domain.ErrSerialNotAvailable, []int64{9}), http.StatusConflict, domain.ErrMsgSerialNotAvailable},
		{"wrapped conflict", fmt.Errorf("failed to deploy: %w", domain.ErrDeploymentClosed), http.StatusConflict, domain.ErrMsgDeploymentClosed},
		{"not found", domain.ErrDeploymentNotFound, http.StatusNotFound, "deployment not found"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, domain.ErrMsgForbidden},
		{"database text hidden", errors.New(`pq: relation "deployments" does not exist`), http.StatusInternalServerError, ErrMsgGenericServerError},
		{"nil", nil, http.StatusInternalServerError, ErrMsgGenericServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := StatusForError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Contains(t, msg, tt.wantMsg)
		})
	}
}

func TestValidator_CustomTags(t *testing.T) {
	type probe struct {
		Condition domain.ReturnCondition      `json:"condition" validate:"omitempty,return_condition"`
		Type      domain.DeploymentType       `json:"type" validate:"omitempty,deployment_type"`
		Category  domain.CategoryType         `json:"category" validate:"omitempty,category_type"`
		Status    domain.SerializedItemStatus `json:"status" validate:"omitempty,serial_status"`
	}

	v := GetValidator()
	assert.NoError(t, v.ValidateStruct(probe{}))
	assert.NoError(t, v.ValidateStruct(probe{Condition: domain.ConditionFair, Type: domain.DeploymentTraining, Category: domain.CategoryVehicles, Status: domain.SerialRetired}))

	err := v.ValidateStruct(probe{Condition: "BROKEN", Type: "PARADE", Category: "TOYS", Status: "GONE"})
	fields := FormatValidationError(err)
	assert.Len(t, fields, 4)
	assert.Contains(t, fields["condition"], "GOOD")
	assert.Contains(t, fields["type"], "RELIEF_OPERATION")
	assert.Contains(t, fields, "category")
	assert.Contains(t, fields, "status")
}

func TestFormatValidationError_NonValidatorError(t *testing.T) {
	fields := FormatValidationError(errors.New("boom"))
	assert.Equal(t, "Invalid request format", fields["error"])
	assert.Nil(t, FormatValidationError(nil))
}
