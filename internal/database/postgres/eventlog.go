package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/database/generated"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/eventlog"
)

type eventLogRepository struct {
	q *generated.Queries
}

// NewEventLogRepository returns the audit log store backed by the event_log table.
func NewEventLogRepository(pool *pgxpool.Pool) eventlog.Repository {
	return &eventLogRepository{q: generated.New(pool)}
}

func (r *eventLogRepository) LogEvent(ctx context.Context, evt eventlog.Event) error {
	payload, err := json.Marshal(evt.Payload)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToEncodeEvent, err)
	}
	var metadata []byte
	if evt.Metadata != nil {
		if metadata, err = json.Marshal(evt.Metadata); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToEncodeEvent, err)
		}
	}

	err = r.q.InsertEventLog(ctx, generated.InsertEventLogParams{
		EventType: evt.EventType,
		ItemID:    ptrToInt8(evt.ItemID),
		ActorID:   ptrToInt8(evt.ActorID),
		Payload:   payload,
		Metadata:  metadata,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToWriteEvent, err)
	}
	return nil
}

func (r *eventLogRepository) GetEvents(ctx context.Context, filter eventlog.EventFilter) ([]eventlog.Event, error) {
	params := generated.ListEventLogParams{
		ItemID:   ptrToInt8(filter.ItemID),
		Since:    ptrToTs(filter.Since),
		Until:    ptrToTs(filter.Until),
		RowLimit: int32(filter.Limit),
	}
	if filter.EventType != nil {
		params.EventType = pgtype.Text{String: *filter.EventType, Valid: true}
	}

	rows, err := r.q.ListEventLog(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListEvents, err)
	}

	events := make([]eventlog.Event, 0, len(rows))
	for _, row := range rows {
		evt, err := toEventLogEntry(row)
		if err != nil {
			return nil, err
		}
		events = append(events, evt)
	}
	return events, nil
}

func (r *eventLogRepository) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	n, err := r.q.DeleteEventLogBefore(ctx, int32(retentionDays))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToPurgeEvents, err)
	}
	return n, nil
}

func toEventLogEntry(row generated.EventLog) (eventlog.Event, error) {
	evt := eventlog.Event{
		ID:        row.ID,
		EventType: row.EventType,
		ItemID:    int8ToPtr(row.ItemID),
		ActorID:   int8ToPtr(row.ActorID),
		CreatedAt: tsToTime(row.CreatedAt),
	}
	if err := json.Unmarshal(row.Payload, &evt.Payload); err != nil {
		return evt, fmt.Errorf("%s %d: %w", ErrMsgFailedToDecodeEvent, row.ID, err)
	}
	if len(row.Metadata) > 0 {
		if err := json.Unmarshal(row.Metadata, &evt.Metadata); err != nil {
			return evt, fmt.Errorf("%s %d: %w", ErrMsgFailedToDecodeEvent, row.ID, err)
		}
	}
	return evt, nil
}
