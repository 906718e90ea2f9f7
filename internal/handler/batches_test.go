package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/auth"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/batch"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/domain"
)

const sampleCSV = "item_name,quantity,unit_cost\nRice 25kg,40,1250.50\nTarp,abc,\n"

func TestHandleReceiveBatch(t *testing.T) {
	svc := &MockBatchService{}
	h := NewBatchHandler(svc)
	svc.On("ReceiveBatch", mock.Anything, mock.MatchedBy(func(in batch.ReceiveBatchInput) bool {
		return in.ReceivedBy == 7 && in.Quantity == 3 && in.UnitCost.Equal(decimal.RequireFromString("99.95"))
	})).Return(&batch.ReceiveResult{
		Batch:         domain.Batch{ID: 5, BatchNumber: "BATCH-20261015-AB12CD34", Quantity: 3},
		Serialized:    true,
		SerialNumbers: []string{"COM-1", "COM-2", "COM-3"},
		NewStock:      3,
	}, nil)

	w := call(t, http.MethodPost, "/batches", "/batches", `{"item_id":2,"quantity":3,"unit_cost":"99.95"}`, h.HandleReceiveBatch)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "COM-3")
	svc.AssertExpectations(t)
}

func TestHandleReceiveBatch_Validation(t *testing.T) {
	for _, body := range []string{
		`{"item_id":2,"quantity":0}`,
		`{"item_id":2,"quantity":10001}`,
		`{"item_id":2,"quantity":4294967301}`,
	} {
		h := NewBatchHandler(&MockBatchService{})
		w := call(t, http.MethodPost, "/batches", "/batches", body, h.HandleReceiveBatch)

		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Contains(t, decode(t, w).Errors, "quantity", body)
	}
}

func TestHandleDeleteBatch(t *testing.T) {
	svc := &MockBatchService{}
	h := NewBatchHandler(svc)
	svc.On("DeleteBatch", mock.Anything, int64(5), int64(7)).Return(nil).Once()
	svc.On("DeleteBatch", mock.Anything, int64(6), int64(7)).Return(domain.ErrBatchInUse).Once()

	w := call(t, http.MethodDelete, "/batches/{id}", "/batches/5", "", h.HandleDeleteBatch)
	assert.Equal(t, http.StatusOK, w.Code)

	w = call(t, http.MethodDelete, "/batches/{id}", "/batches/6", "", h.HandleDeleteBatch)
	assert.Equal(t, http.StatusConflict, w.Code)
	svc.AssertExpectations(t)
}

func TestHandleImportBatches_RawBody(t *testing.T) {
	svc := &MockBatchService{}
	h := NewBatchHandler(svc)
	svc.On("ImportCSV", mock.Anything, sampleCSV, int64(7)).Return(&batch.ImportResult{
		Imported: 1,
		Failed:   1,
		Errors:   []batch.ImportRowError{{Row: 3, Message: "invalid quantity"}},
	}, nil)

	w := call(t, http.MethodPost, "/batches/import", "/batches/import", sampleCSV, h.HandleImportBatches)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"failed":1`)
	svc.AssertExpectations(t)
}

func TestHandleImportBatches_Multipart(t *testing.T) {
	svc := &MockBatchService{}
	h := NewBatchHandler(svc)
	svc.On("ImportCSV", mock.Anything, sampleCSV, int64(7)).Return(&batch.ImportResult{Imported: 1, Failed: 1}, nil)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "delivery.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(sampleCSV))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	r := chi.NewRouter()
	r.Post("/batches/import", h.HandleImportBatches)
	req := httptest.NewRequest(http.MethodPost, "/batches/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req = req.WithContext(auth.WithClaims(req.Context(), &auth.Claims{UserID: 7, Role: auth.RoleAdmin}))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestHandleImportBatches_MissingFile(t *testing.T) {
	h := NewBatchHandler(&MockBatchService{})

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("note", "no file here"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/batches/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	h.HandleImportBatches(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, ErrMsgMissingCSVFile, decode(t, w).Message)
}
