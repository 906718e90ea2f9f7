package batch

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/domain"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/logger"
)

// ImportRowError explains why one CSV row was not imported. Row is 1-based
// and counts the header.
type ImportRowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// ImportResult summarizes a bulk import.
type ImportResult struct {
	Imported int              `json:"imported"`
	Failed   int              `json:"failed"`
	Batches  []ReceiveResult  `json:"batches"`
	Errors   []ImportRowError `json:"errors,omitempty"`
}

// ImportCSV receives one batch per row. Each row is its own transaction, so a
// bad row never undoes the rows before it.
func (s *service) ImportCSV(ctx context.Context, r io.Reader, actorID int64) (*ImportResult, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: missing CSV header", domain.ErrValidation)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{ColItemName, ColQuantity} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", domain.ErrValidation, required)
		}
	}

	log := logger.FromContext(ctx)
	res := &ImportResult{}
	for row := 2; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if row-1 > MaxImportRows {
			return nil, fmt.Errorf("%w: import is limited to %d rows", domain.ErrValidation, MaxImportRows)
		}
		if err == nil {
			var received *ReceiveResult
			received, err = s.importRow(ctx, cols, record, actorID)
			if err == nil {
				res.Imported++
				res.Batches = append(res.Batches, *received)
				continue
			}
		}
		log.Warn(LogMsgImportRowFailed, "row", row, "error", err)
		res.Failed++
		res.Errors = append(res.Errors, ImportRowError{Row: row, Message: rowMessage(err)})
	}

	log.Info(LogMsgImportFinished, "imported", res.Imported, "failed", res.Failed)
	return res, nil
}

func (s *service) importRow(ctx context.Context, cols map[string]int, record []string, actorID int64) (*ReceiveResult, error) {
	field := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	name := field(ColItemName)
	if name == "" {
		return nil, domain.ErrMissingName
	}
	qty, err := strconv.Atoi(field(ColQuantity))
	if err != nil {
		return nil, domain.ErrInvalidQuantity
	}
	if err := checkQuantity(qty); err != nil {
		return nil, err
	}

	in := ReceiveBatchInput{
		Quantity:   qty,
		Supplier:   field(ColSupplier),
		Notes:      field(ColNotes),
		ReceivedBy: actorID,
	}
	if raw := field(ColUnitCost); raw != "" {
		cost, err := decimal.NewFromString(raw)
		if err != nil || cost.IsNegative() {
			return nil, fmt.Errorf("%w: invalid unit_cost %q", domain.ErrValidation, raw)
		}
		in.UnitCost = cost
	}
	if raw := field(ColExpiryDate); raw != "" {
		expiry, err := time.Parse(ExpiryDateLayout, raw)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid expiry_date %q", domain.ErrValidation, raw)
		}
		in.ExpiryDate = &expiry
	}

	item, err := s.repo.GetItemByName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: %w %q", domain.ErrValidation, domain.ErrItemNotFound, name)
		}
		return nil, err
	}
	in.ItemID = item.ID

	return s.ReceiveBatch(ctx, in)
}

// rowMessage keeps persistence errors out of the import report.
func rowMessage(err error) string {
	var parseErr *csv.ParseError
	switch {
	case errors.As(err, &parseErr):
		return parseErr.Err.Error()
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrNotFound):
		return err.Error()
	}
	return MsgImportRowInternalFail
}
