package handler

import (
	"net/http"

	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/ledger"
)

// LedgerHandler exposes stock ledger verification.
type LedgerHandler struct {
	svc ledger.Service
}

// NewLedgerHandler creates a LedgerHandler.
func NewLedgerHandler(svc ledger.Service) *LedgerHandler {
	return &LedgerHandler{svc: svc}
}

// HandleVerifyItem checks one item's stock counter against its movements
// @Summary Verify item ledger
// @Tags ledger
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Success 200 {object} Response{data=ledger.Report}
// @Failure 404 {object} Response
// @Router /ledger/items/{id} [get]
func (h *LedgerHandler) HandleVerifyItem(w http.ResponseWriter, r *http.Request) {
	id, ok := URLInt64(w, r, "id")
	if !ok {
		return
	}
	report, err := h.svc.Verify(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Verify ledger", err)
		return
	}
	respondData(w, http.StatusOK, "", report)
}

// HandleVerifyAll checks every item
// @Summary Verify all ledgers
// @Tags ledger
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=ledger.Summary}
// @Router /ledger [get]
func (h *LedgerHandler) HandleVerifyAll(w http.ResponseWriter, r *http.Request) {
	sum, err := h.svc.VerifyAll(r.Context())
	if err != nil {
		respondServiceError(w, r, "Verify ledgers", err)
		return
	}
	respondData(w, http.StatusOK, "", sum)
}
