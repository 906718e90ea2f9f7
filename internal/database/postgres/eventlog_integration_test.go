package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/eventlog"
)

func TestEventLog_Integration(t *testing.T) {
	pool := requirePool(t)
	repo := NewEventLogRepository(pool)
	ctx := context.Background()

	item, actor := int64(4), int64(9)
	require.NoError(t, repo.LogEvent(ctx, eventlog.Event{
		EventType: "batch.received",
		ItemID:    &item,
		ActorID:   &actor,
		Payload:   map[string]interface{}{"quantity": float64(3)},
	}))
	require.NoError(t, repo.LogEvent(ctx, eventlog.Event{
		EventType: "notification.created",
		Payload:   map[string]interface{}{"notification": map[string]interface{}{"id": float64(1)}},
		Metadata:  map[string]interface{}{"priority": "HIGH"},
	}))

	all, err := repo.GetEvents(ctx, eventlog.EventFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "notification.created", all[0].EventType, "newest first")
	assert.Equal(t, "HIGH", all[0].Metadata["priority"])

	byItem, err := repo.GetEvents(ctx, eventlog.EventFilter{ItemID: &item, Limit: 10})
	require.NoError(t, err)
	require.Len(t, byItem, 1)
	assert.Equal(t, actor, *byItem[0].ActorID)
	assert.Equal(t, float64(3), byItem[0].Payload["quantity"])

	_, err = pool.Exec(ctx, `UPDATE event_log SET created_at = now() - interval '40 days' WHERE item_id = $1`, item)
	require.NoError(t, err)

	deleted, err := repo.CleanupOldEvents(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	since := time.Now().Add(-time.Hour)
	recent, err := repo.GetEvents(ctx, eventlog.EventFilter{Since: &since})
	require.NoError(t, err)
	assert.Len(t, recent, 1)
}
