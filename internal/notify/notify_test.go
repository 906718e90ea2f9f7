package notify

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/domain"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/event"
)

var now = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

func stretcher() *domain.InventoryItem {
	return &domain.InventoryItem{ID: 4, Name: "Stretcher", Unit: "pcs", MinStockLevel: 3}
}

func TestDaysUntil(t *testing.T) {
	assert.Equal(t, 0, DaysUntil(now.Add(time.Hour), now))
	assert.Equal(t, 1, DaysUntil(time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, -2, DaysUntil(time.Date(2025, 3, 8, 23, 0, 0, 0, time.UTC), now))
}

func TestLowStock(t *testing.T) {
	tests := []struct {
		name     string
		stock    int
		wantOK   bool
		priority domain.NotificationPriority
	}{
		{"above minimum", 4, false, ""},
		{"at minimum", 3, true, domain.PriorityMedium},
		{"below minimum", 1, true, domain.PriorityMedium},
		{"empty", 0, true, domain.PriorityHigh},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := LowStock(stretcher(), tt.stock)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, domain.NotificationLowStock, n.Type)
				assert.Equal(t, tt.priority, n.Priority)
				assert.Equal(t, int64(4), *n.ItemID)
			}
		})
	}
}

func TestExpiringSoon(t *testing.T) {
	at := func(days int) *time.Time {
		d := now.AddDate(0, 0, days)
		return &d
	}
	tests := []struct {
		name     string
		expiry   *time.Time
		wantOK   bool
		priority domain.NotificationPriority
	}{
		{"no expiry", nil, false, ""},
		{"far away", at(31), false, ""},
		{"exactly thirty days", at(30), true, domain.PriorityMedium},
		{"eight days", at(8), true, domain.PriorityMedium},
		{"seven days", at(7), true, domain.PriorityHigh},
		{"already expired", at(-1), true, domain.PriorityHigh},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &domain.Batch{BatchNumber: "STR-20250310093000-AB12", ExpiryDate: tt.expiry}
			n, ok := ExpiringSoon(stretcher(), b, now)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, domain.NotificationExpiringSoon, n.Type)
				assert.Equal(t, tt.priority, n.Priority)
				assert.Contains(t, n.Message, b.BatchNumber)
			}
		})
	}
}

func TestEquipmentReturnPriority(t *testing.T) {
	d := &domain.Deployment{ID: 9, Location: "Barangay Hall"}

	assert.Equal(t, domain.PriorityLow, EquipmentReturn(stretcher(), d, 3, 0, 0).Priority)
	assert.Equal(t, domain.PriorityMedium, EquipmentReturn(stretcher(), d, 1, 1, 0).Priority)

	n := EquipmentReturn(stretcher(), d, 1, 1, 1)
	assert.Equal(t, domain.PriorityHigh, n.Priority)
	assert.Equal(t, int64(9), *n.DeploymentID)
	assert.Contains(t, n.Message, "Barangay Hall")
	assert.Contains(t, n.Message, "1 good, 1 damaged, 1 lost")
}

func TestOverdueAndMaintenance(t *testing.T) {
	due := now.AddDate(0, 0, -2)
	d := &domain.Deployment{ID: 2, Location: "Evac Center", ExpectedReturnDate: &due}

	n := OverdueReturn(stretcher(), d)
	assert.Equal(t, domain.NotificationOverdueReturn, n.Type)
	assert.Equal(t, domain.PriorityHigh, n.Priority)
	assert.Contains(t, n.Message, "2025-03-08")

	m := MaintenanceDue(stretcher(), &domain.SerializedItem{SerialNumber: "EQU-B-250310-001"})
	assert.Equal(t, domain.NotificationMaintenanceDue, m.Type)
	assert.Contains(t, m.Message, "EQU-B-250310-001")
}

type stubWriter struct {
	fail   bool
	recent bool
	stored []domain.Notification
}

func (w *stubWriter) CreateNotification(_ context.Context, n *domain.Notification) error {
	if w.fail {
		return errors.New("insert failed")
	}
	n.ID = int64(len(w.stored) + 1)
	w.stored = append(w.stored, *n)
	return nil
}

func (w *stubWriter) HasRecentNotification(context.Context, domain.NotificationType, *int64, *int64, time.Time) (bool, error) {
	return w.recent, nil
}

func TestRecorder(t *testing.T) {
	ctx := context.Background()

	t.Run("records and remembers", func(t *testing.T) {
		w := &stubWriter{}
		r := NewRecorder(w)
		n, _ := LowStock(stretcher(), 0)

		assert.True(t, r.Record(ctx, n))
		require.Len(t, r.Created(), 1)
		assert.Equal(t, int64(1), r.Created()[0].ID)
	})

	t.Run("swallows insert failures", func(t *testing.T) {
		r := NewRecorder(&stubWriter{fail: true})
		n, _ := LowStock(stretcher(), 0)

		assert.False(t, r.Record(ctx, n))
		assert.Empty(t, r.Created())
	})

	t.Run("skips recent duplicates", func(t *testing.T) {
		w := &stubWriter{recent: true}
		r := NewRecorder(w)

		assert.False(t, r.RecordOnce(ctx, OverdueReturn(stretcher(), &domain.Deployment{ID: 1}), now))
		assert.Empty(t, w.stored)
	})
}

type captureSink struct {
	sent []domain.Notification
	err  error
}

func (s *captureSink) Name() string { return "capture" }

func (s *captureSink) Send(_ context.Context, n domain.Notification) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, n)
	return nil
}

func TestSubscribe_FiltersByPriority(t *testing.T) {
	bus := event.NewMemoryBus()
	sink := &captureSink{}
	Subscribe(bus, sink, domain.PriorityHigh)

	ctx := context.Background()
	low, _ := LowStock(stretcher(), 2)
	high, _ := LowStock(stretcher(), 0)
	require.NoError(t, bus.Publish(ctx, event.NewNotificationCreatedEvent(*low)))
	require.NoError(t, bus.Publish(ctx, event.NewNotificationCreatedEvent(*high)))

	require.Len(t, sink.sent, 1)
	assert.Equal(t, domain.PriorityHigh, sink.sent[0].Priority)
}

func TestSubscribe_SinkErrorPropagates(t *testing.T) {
	bus := event.NewMemoryBus()
	Subscribe(bus, &captureSink{err: errors.New("down")}, domain.PriorityLow)

	n, _ := LowStock(stretcher(), 0)
	assert.Error(t, bus.Publish(context.Background(), event.NewNotificationCreatedEvent(*n)))
}

func TestParseWebhookURL(t *testing.T) {
	id, token, err := parseWebhookURL("https://discord.com/api/webhooks/123456/abc-DEF")
	require.NoError(t, err)
	assert.Equal(t, "123456", id)
	assert.Equal(t, "abc-DEF", token)

	_, _, err = parseWebhookURL("https://discord.com/api/channels/1")
	assert.Error(t, err)
}

type stubExecutor struct {
	id, token string
	params    *discordgo.WebhookParams
}

func (s *stubExecutor) WebhookExecute(webhookID, token string, _ bool, data *discordgo.WebhookParams, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	s.id, s.token, s.params = webhookID, token, data
	return &discordgo.Message{}, nil
}

func TestDiscordSink_Send(t *testing.T) {
	exec := &stubExecutor{}
	sink := &DiscordSink{session: exec, webhookID: "1", token: "t", username: "Inventory"}

	n, _ := LowStock(stretcher(), 0)
	n.CreatedAt = now
	require.NoError(t, sink.Send(context.Background(), *n))

	assert.Equal(t, "1", exec.id)
	require.Len(t, exec.params.Embeds, 1)
	embed := exec.params.Embeds[0]
	assert.Equal(t, ColorHigh, embed.Color)
	assert.Equal(t, n.Message, embed.Description)
	assert.Equal(t, "Inventory", exec.params.Username)
}

type stubKafka struct {
	msgs []kafka.Message
}

func (s *stubKafka) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	s.msgs = append(s.msgs, msgs...)
	return nil
}

func (s *stubKafka) Close() error { return nil }

func TestKafkaSink_Send(t *testing.T) {
	w := &stubKafka{}
	sink := &KafkaSink{writer: w}

	n, _ := LowStock(stretcher(), 1)
	require.NoError(t, sink.Send(context.Background(), *n))

	require.Len(t, w.msgs, 1)
	assert.Equal(t, "4", string(w.msgs[0].Key))

	var decoded domain.Notification
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &decoded))
	assert.Equal(t, domain.NotificationLowStock, decoded.Type)
	assert.Equal(t, "LOW_STOCK", string(w.msgs[0].Headers[0].Value))
}
