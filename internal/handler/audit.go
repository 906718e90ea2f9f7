package handler

import (
	"net/http"

	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/eventlog"
)

// AuditHandler exposes the event log.
type AuditHandler struct {
	svc eventlog.Service
}

// NewAuditHandler creates an AuditHandler.
func NewAuditHandler(svc eventlog.Service) *AuditHandler {
	return &AuditHandler{svc: svc}
}

// HandleListEvents lists audited inventory events, newest first
// @Summary List audit events
// @Tags audit
// @Produce json
// @Security BearerAuth
// @Param item_id query int false "Item filter"
// @Param type query string false "Event type, e.g. deployment.returned"
// @Param since query string false "RFC3339 lower bound"
// @Param until query string false "RFC3339 upper bound"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} Response{data=[]eventlog.Event}
// @Failure 400 {object} Response
// @Router /events [get]
func (h *AuditHandler) HandleListEvents(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r)
	f := eventlog.EventFilter{
		ItemID: q.int64Ptr("item_id"),
		Since:  q.timePtr("since"),
		Until:  q.timePtr("until"),
		Limit:  q.int("limit"),
	}
	if t := q.string("type"); t != "" {
		f.EventType = &t
	}
	if !q.ok(w) {
		return
	}
	events, err := h.svc.List(r.Context(), f)
	if err != nil {
		respondServiceError(w, r, "List events", err)
		return
	}
	respondData(w, http.StatusOK, "", events)
}
