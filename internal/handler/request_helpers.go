package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// If it returns an error the response has already been written.
//
// Example usage:
//
//	var in deployment.CreateDeploymentInput
//	if err := DecodeAndValidateRequest(r, w, &in, "Create deployment"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		log.Warn(LogMsgDecodeFailed, "action", actionName, "error", err)
		RespondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		log.Debug("Request failed validation", "action", actionName, "error", err)
		respondValidationErrors(w, FormatValidationError(err))
		return err
	}

	return nil
}

// URLInt64 parses a positive integer path parameter. If ok is false the
// response has already been written.
func URLInt64(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		RespondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidID, name))
		return 0, false
	}
	return id, true
}

// queryParser collects optional query parameters and remembers the first
// malformed one.
type queryParser struct {
	r   *http.Request
	bad string
}

func newQueryParser(r *http.Request) *queryParser {
	return &queryParser{r: r}
}

func (q *queryParser) int64Ptr(name string) *int64 {
	raw := q.r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		q.fail(name)
		return nil
	}
	return &v
}

func (q *queryParser) int(name string) int {
	raw := q.r.URL.Query().Get(name)
	if raw == "" {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		q.fail(name)
		return 0
	}
	return v
}

func (q *queryParser) bool(name string) bool {
	raw := q.r.URL.Query().Get(name)
	if raw == "" {
		return false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		q.fail(name)
	}
	return v
}

func (q *queryParser) timePtr(name string) *time.Time {
	raw := q.r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	v, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		q.fail(name)
		return nil
	}
	return &v
}

func (q *queryParser) string(name string) string {
	return q.r.URL.Query().Get(name)
}

func (q *queryParser) fail(name string) {
	if q.bad == "" {
		q.bad = name
	}
}

// ok writes a 400 for the first malformed parameter and reports whether
// parsing succeeded.
func (q *queryParser) ok(w http.ResponseWriter) bool {
	if q.bad == "" {
		return true
	}
	RespondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, q.bad))
	return false
}
