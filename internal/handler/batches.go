package handler

import (
	"io"
	"mime"
	"net/http"

	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/auth"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/batch"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/domain"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/logger"
)

// BatchHandler serves batch receipt, listing, deletion and CSV import.
type BatchHandler struct {
	svc batch.Service
}

// NewBatchHandler creates a BatchHandler.
func NewBatchHandler(svc batch.Service) *BatchHandler {
	return &BatchHandler{svc: svc}
}

// HandleReceiveBatch records an incoming delivery
// @Summary Receive batch
// @Description Records a delivery, increments stock and, for serialized items, generates one unit per quantity.
// @Tags batches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body batch.ReceiveBatchInput true "Delivery"
// @Success 201 {object} Response{data=batch.ReceiveResult}
// @Failure 400 {object} Response
// @Failure 409 {object} Response
// @Router /batches [post]
func (h *BatchHandler) HandleReceiveBatch(w http.ResponseWriter, r *http.Request) {
	var in batch.ReceiveBatchInput
	if err := DecodeAndValidateRequest(r, w, &in, "Receive batch"); err != nil {
		return
	}
	in.ReceivedBy = auth.ActorID(r.Context())

	res, err := h.svc.ReceiveBatch(r.Context(), in)
	if err != nil {
		respondServiceError(w, r, "Receive batch", err)
		return
	}
	logger.FromContext(r.Context()).Info("Batch received",
		"batch_id", res.Batch.ID,
		"item_id", in.ItemID,
		"quantity", in.Quantity,
		"new_stock", res.NewStock)
	respondData(w, http.StatusCreated, MsgBatchReceived, res)
}

// HandleGetBatch returns one batch
// @Summary Get batch
// @Tags batches
// @Produce json
// @Security BearerAuth
// @Param id path int true "Batch ID"
// @Success 200 {object} Response{data=domain.Batch}
// @Failure 404 {object} Response
// @Router /batches/{id} [get]
func (h *BatchHandler) HandleGetBatch(w http.ResponseWriter, r *http.Request) {
	id, ok := URLInt64(w, r, "id")
	if !ok {
		return
	}
	b, err := h.svc.GetBatch(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Get batch", err)
		return
	}
	respondData(w, http.StatusOK, "", b)
}

// HandleListBatches lists batches
// @Summary List batches
// @Tags batches
// @Produce json
// @Security BearerAuth
// @Param item_id query int false "Item filter"
// @Param include_inactive query bool false "Include deleted batches"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} Response{data=[]domain.Batch}
// @Router /batches [get]
func (h *BatchHandler) HandleListBatches(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r)
	f := domain.BatchFilter{
		ItemID:          q.int64Ptr("item_id"),
		IncludeInactive: q.bool("include_inactive"),
		Limit:           q.int("limit"),
		Offset:          q.int("offset"),
	}
	if !q.ok(w) {
		return
	}
	batches, err := h.svc.ListBatches(r.Context(), f)
	if err != nil {
		respondServiceError(w, r, "List batches", err)
		return
	}
	respondData(w, http.StatusOK, "", batches)
}

// HandleDeleteBatch soft-deletes a batch whose units are all still in the warehouse
// @Summary Delete batch
// @Tags batches
// @Produce json
// @Security BearerAuth
// @Param id path int true "Batch ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Failure 409 {object} Response
// @Router /batches/{id} [delete]
func (h *BatchHandler) HandleDeleteBatch(w http.ResponseWriter, r *http.Request) {
	id, ok := URLInt64(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteBatch(r.Context(), id, auth.ActorID(r.Context())); err != nil {
		respondServiceError(w, r, "Delete batch", err)
		return
	}
	respondData(w, http.StatusOK, MsgBatchDeleted, nil)
}

// HandleImportBatches receives batches from a CSV file
// @Summary Import batches from CSV
// @Description Each row is received in its own transaction; failed rows are reported and do not stop the import.
// @Tags batches
// @Accept multipart/form-data
// @Accept text/csv
// @Produce json
// @Security BearerAuth
// @Param file formData file false "CSV file with item_name, quantity and optional supplier, unit_cost, expiry_date, notes columns"
// @Success 200 {object} Response{data=batch.ImportResult}
// @Failure 400 {object} Response
// @Router /batches/import [post]
func (h *BatchHandler) HandleImportBatches(w http.ResponseWriter, r *http.Request) {
	body, closeFn, ok := csvBody(w, r)
	if !ok {
		return
	}
	defer closeFn()

	res, err := h.svc.ImportCSV(r.Context(), body, auth.ActorID(r.Context()))
	if err != nil {
		respondServiceError(w, r, "Import batches", err)
		return
	}
	logger.FromContext(r.Context()).Info("Batch import finished", "imported", res.Imported, "failed", res.Failed)
	respondData(w, http.StatusOK, MsgBatchesImported, res)
}

// csvBody returns the uploaded CSV either from a multipart "file" field or
// from a raw text/csv body.
func csvBody(w http.ResponseWriter, r *http.Request) (io.Reader, func(), bool) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		return r.Body, func() {}, true
	}
	if err := r.ParseMultipartForm(MaxImportBytes); err != nil {
		RespondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return nil, nil, false
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		RespondError(w, http.StatusBadRequest, ErrMsgMissingCSVFile)
		return nil, nil, false
	}
	return file, func() { _ = file.Close() }, true
}
