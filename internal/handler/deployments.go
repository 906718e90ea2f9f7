package handler

import (
	"net/http"

	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/auth"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/deployment"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/domain"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/logger"
)

// DeploymentHandler serves the deployment lifecycle.
type DeploymentHandler struct {
	svc deployment.Service
}

// NewDeploymentHandler creates a DeploymentHandler.
func NewDeploymentHandler(svc deployment.Service) *DeploymentHandler {
	return &DeploymentHandler{svc: svc}
}

// HandleCreateDeployment sends stock out
// @Summary Create deployment
// @Description Deploys either a bulk quantity or a list of serialized units, never both.
// @Tags deployments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body deployment.CreateDeploymentInput true "Deployment"
// @Success 201 {object} Response{data=deployment.CreateResult}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Failure 409 {object} Response
// @Router /deployments [post]
func (h *DeploymentHandler) HandleCreateDeployment(w http.ResponseWriter, r *http.Request) {
	var in deployment.CreateDeploymentInput
	if err := DecodeAndValidateRequest(r, w, &in, "Create deployment"); err != nil {
		return
	}
	in.DeployedBy = auth.ActorID(r.Context())

	res, err := h.svc.CreateDeployment(r.Context(), in)
	if err != nil {
		respondServiceError(w, r, "Create deployment", err)
		return
	}
	logger.FromContext(r.Context()).Info("Deployment created",
		"deployment_id", res.Deployment.ID,
		"item_id", in.ItemID,
		"quantity", res.Deployment.QuantityDeployed,
		"new_stock", res.NewStock)
	respondData(w, http.StatusCreated, MsgDeploymentCreated, res)
}

// HandleReturnDeployment reconciles returned stock
// @Summary Return deployment
// @Description Records returned conditions. Without items every outstanding unit is returned in return_condition (default GOOD).
// @Tags deployments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Deployment ID"
// @Param request body deployment.ReturnDeploymentInput true "Return"
// @Success 200 {object} Response{data=deployment.ReturnResult}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Failure 409 {object} Response
// @Router /deployments/{id}/return [post]
func (h *DeploymentHandler) HandleReturnDeployment(w http.ResponseWriter, r *http.Request) {
	id, ok := URLInt64(w, r, "id")
	if !ok {
		return
	}
	var in deployment.ReturnDeploymentInput
	if r.ContentLength != 0 {
		if err := DecodeAndValidateRequest(r, w, &in, "Return deployment"); err != nil {
			return
		}
	}
	in.DeploymentID = id
	in.ActorID = auth.ActorID(r.Context())

	res, err := h.svc.ReturnDeployment(r.Context(), in)
	if err != nil {
		respondServiceError(w, r, "Return deployment", err)
		return
	}
	msg := MsgDeploymentReturned
	if res.Deployment.IsSerialized && len(res.Processed) == 0 {
		msg = MsgNothingToReturn
	}
	respondData(w, http.StatusOK, msg, res)
}

// HandleGetDeployment returns a deployment with its unit links
// @Summary Get deployment
// @Tags deployments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Deployment ID"
// @Success 200 {object} Response{data=deployment.Detail}
// @Failure 404 {object} Response
// @Router /deployments/{id} [get]
func (h *DeploymentHandler) HandleGetDeployment(w http.ResponseWriter, r *http.Request) {
	id, ok := URLInt64(w, r, "id")
	if !ok {
		return
	}
	d, err := h.svc.GetDeployment(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Get deployment", err)
		return
	}
	respondData(w, http.StatusOK, "", d)
}

// HandleListDeployments lists deployments
// @Summary List deployments
// @Tags deployments
// @Produce json
// @Security BearerAuth
// @Param item_id query int false "Item filter"
// @Param status query string false "Status filter"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} Response{data=[]domain.Deployment}
// @Failure 400 {object} Response
// @Router /deployments [get]
func (h *DeploymentHandler) HandleListDeployments(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r)
	f := domain.DeploymentFilter{
		ItemID: q.int64Ptr("item_id"),
		Limit:  q.int("limit"),
		Offset: q.int("offset"),
	}
	if s := q.string("status"); s != "" {
		status := domain.DeploymentStatus(s)
		f.Status = &status
	}
	if !q.ok(w) {
		return
	}
	list, err := h.svc.ListDeployments(r.Context(), f)
	if err != nil {
		respondServiceError(w, r, "List deployments", err)
		return
	}
	respondData(w, http.StatusOK, "", list)
}

// HandleListOverdue lists deployments past their expected return date
// @Summary List overdue deployments
// @Tags deployments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]domain.Deployment}
// @Router /deployments/overdue [get]
func (h *DeploymentHandler) HandleListOverdue(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListOverdue(r.Context())
	if err != nil {
		respondServiceError(w, r, "List overdue deployments", err)
		return
	}
	respondData(w, http.StatusOK, "", list)
}
