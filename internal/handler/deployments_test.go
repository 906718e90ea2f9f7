package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/deployment"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/domain"
)

func TestHandleCreateDeployment(t *testing.T) {
	t.Run("serialized deployment carries the actor", func(t *testing.T) {
		svc := &MockDeploymentService{}
		h := NewDeploymentHandler(svc)
		svc.On("CreateDeployment", mock.Anything, mock.MatchedBy(func(in deployment.CreateDeploymentInput) bool {
			return in.DeployedBy == 7 && len(in.SerializedItemIDs) == 2 && in.DeploymentType == domain.DeploymentEmergency
		})).Return(&deployment.CreateResult{
			Deployment:        domain.Deployment{ID: 31, ItemID: 3, QuantityDeployed: 2, IsSerialized: true, Status: domain.DeploymentDeployed},
			SerializedItemIDs: []int64{10, 11},
			NewStock:          4,
		}, nil)

		body := `{"item_id":3,"deployment_type":"EMERGENCY","serialized_item_ids":[10,11],"deployment_location":"Riverside"}`
		w := call(t, http.MethodPost, "/deployments", "/deployments", body, h.HandleCreateDeployment)

		assert.Equal(t, http.StatusCreated, w.Code)
		resp := decode(t, w)
		assert.True(t, resp.Success)
		assert.Equal(t, MsgDeploymentCreated, resp.Message)
		svc.AssertExpectations(t)
	})

	t.Run("invalid deployment type never reaches the service", func(t *testing.T) {
		svc := &MockDeploymentService{}
		h := NewDeploymentHandler(svc)

		body := `{"item_id":3,"deployment_type":"PARADE","quantity":2,"deployment_location":"Plaza"}`
		w := call(t, http.MethodPost, "/deployments", "/deployments", body, h.HandleCreateDeployment)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decode(t, w)
		assert.False(t, resp.Success)
		assert.Contains(t, resp.Errors, "deployment_type")
		svc.AssertNotCalled(t, "CreateDeployment", mock.Anything, mock.Anything)
	})

	t.Run("unknown fields are rejected", func(t *testing.T) {
		h := NewDeploymentHandler(&MockDeploymentService{})
		body := `{"item_id":3,"deployment_type":"TRAINING","quantity":1,"deployment_location":"Gym","deployed_by":99}`
		w := call(t, http.MethodPost, "/deployments", "/deployments", body, h.HandleCreateDeployment)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unavailable units map to 409", func(t *testing.T) {
		svc := &MockDeploymentService{}
		h := NewDeploymentHandler(svc)
		svc.On("CreateDeployment", mock.Anything, mock.Anything).
			Return(nil, domain.WithIDs(domain.ErrSerialNotAvailable, []int64{11}))

		body := `{"item_id":3,"deployment_type":"EMERGENCY","serialized_item_ids":[10,11],"deployment_location":"Riverside"}`
		w := call(t, http.MethodPost, "/deployments", "/deployments", body, h.HandleCreateDeployment)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, decode(t, w).Message, "[11]")
	})
}

func TestHandleReturnDeployment(t *testing.T) {
	t.Run("empty body returns everything outstanding", func(t *testing.T) {
		svc := &MockDeploymentService{}
		h := NewDeploymentHandler(svc)
		svc.On("ReturnDeployment", mock.Anything, deployment.ReturnDeploymentInput{DeploymentID: 31, ActorID: 7}).
			Return(&deployment.ReturnResult{
				Deployment: domain.Deployment{ID: 31, IsSerialized: true, Status: domain.DeploymentReturned},
				Processed:  []deployment.UnitReturn{{SerializedItemID: 10, Condition: domain.ConditionGood, Delta: 1}},
				Good:       1,
			}, nil)

		w := call(t, http.MethodPost, "/deployments/{id}/return", "/deployments/31/return", "", h.HandleReturnDeployment)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, MsgDeploymentReturned, decode(t, w).Message)
		svc.AssertExpectations(t)
	})

	t.Run("nothing processed", func(t *testing.T) {
		svc := &MockDeploymentService{}
		h := NewDeploymentHandler(svc)
		svc.On("ReturnDeployment", mock.Anything, mock.Anything).
			Return(&deployment.ReturnResult{
				Deployment: domain.Deployment{ID: 31, IsSerialized: true, Status: domain.DeploymentReturned},
				Skipped:    []int64{10},
			}, nil)

		body := `{"items":[{"serialized_item_id":10,"condition":"GOOD"}]}`
		w := call(t, http.MethodPost, "/deployments/{id}/return", "/deployments/31/return", body, h.HandleReturnDeployment)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, MsgNothingToReturn, decode(t, w).Message)
	})

	t.Run("bad condition", func(t *testing.T) {
		h := NewDeploymentHandler(&MockDeploymentService{})
		w := call(t, http.MethodPost, "/deployments/{id}/return", "/deployments/31/return", `{"return_condition":"SOGGY"}`, h.HandleReturnDeployment)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decode(t, w).Errors, "return_condition")
	})

	t.Run("bad id", func(t *testing.T) {
		h := NewDeploymentHandler(&MockDeploymentService{})
		w := call(t, http.MethodPost, "/deployments/{id}/return", "/deployments/abc/return", "", h.HandleReturnDeployment)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("closed deployment", func(t *testing.T) {
		svc := &MockDeploymentService{}
		h := NewDeploymentHandler(svc)
		svc.On("ReturnDeployment", mock.Anything, mock.Anything).Return(nil, domain.ErrDeploymentClosed)

		w := call(t, http.MethodPost, "/deployments/{id}/return", "/deployments/31/return", `{"return_condition":"GOOD"}`, h.HandleReturnDeployment)
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestHandleListDeployments(t *testing.T) {
	svc := &MockDeploymentService{}
	h := NewDeploymentHandler(svc)
	itemID := int64(3)
	status := domain.DeploymentPartialReturn
	svc.On("ListDeployments", mock.Anything, domain.DeploymentFilter{ItemID: &itemID, Status: &status, Limit: 20}).
		Return([]domain.Deployment{{ID: 1}}, nil)

	w := call(t, http.MethodGet, "/deployments", "/deployments?item_id=3&status=PARTIAL_RETURN&limit=20", "", h.HandleListDeployments)
	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)

	w = call(t, http.MethodGet, "/deployments", "/deployments?item_id=x", "", h.HandleListDeployments)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w).Message, "item_id")
}

func TestHandleGetDeployment_NotFound(t *testing.T) {
	svc := &MockDeploymentService{}
	h := NewDeploymentHandler(svc)
	svc.On("GetDeployment", mock.Anything, int64(404)).Return(nil, domain.ErrDeploymentNotFound)

	w := call(t, http.MethodGet, "/deployments/{id}", "/deployments/404", "", h.HandleGetDeployment)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, decode(t, w).Success)
}
