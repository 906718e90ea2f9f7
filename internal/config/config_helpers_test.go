package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const helperVar = "INVENTORY_TEST_VAR"

func TestGetEnvHelpers(t *testing.T) {
	intCases := []struct {
		raw  string
		want int
	}{
		{"", 7},
		{"250", 250},
		{"0", 0},
		{"-3", -3},
		{"2.5", 7},
		{"lots", 7},
	}
	for _, tc := range intCases {
		t.Run("int "+tc.raw, func(t *testing.T) {
			t.Setenv(helperVar, tc.raw)
			assert.Equal(t, tc.want, getEnvAsInt(helperVar, 7))
		})
	}

	durationCases := []struct {
		raw  string
		want time.Duration
	}{
		{"", time.Hour},
		{"0s", 0},
		{"90m", 90 * time.Minute},
		{"1h30m", 90 * time.Minute},
		{"250ms", 250 * time.Millisecond},
		{"3600", time.Hour},
		{"hourly", time.Hour},
	}
	for _, tc := range durationCases {
		t.Run("duration "+tc.raw, func(t *testing.T) {
			t.Setenv(helperVar, tc.raw)
			assert.Equal(t, tc.want, getEnvAsDuration(helperVar, time.Hour))
		})
	}

	t.Run("bool", func(t *testing.T) {
		t.Setenv(helperVar, "true")
		assert.True(t, getEnvAsBool(helperVar, false))
		t.Setenv(helperVar, "maybe")
		assert.True(t, getEnvAsBool(helperVar, true), "unparsable keeps the default")
	})

	t.Run("list", func(t *testing.T) {
		t.Setenv(helperVar, " kafka-1:9092 ,kafka-2:9092,, ")
		assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, getEnvAsList(helperVar))
		t.Setenv(helperVar, "")
		assert.Nil(t, getEnvAsList(helperVar))
	})
}

func TestLoad_JobAndPoolSettings(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("JWT_SECRET", "k")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 20, cfg.DBMaxConns)
		assert.Equal(t, 5*time.Minute, cfg.DBMaxConnIdleTime)
		assert.Equal(t, 30*time.Minute, cfg.DBMaxConnLifetime)
		assert.Equal(t, time.Hour, cfg.OverdueSweepInterval)
		assert.Equal(t, 24*time.Hour, cfg.LedgerAuditInterval)
		assert.Equal(t, 24*time.Hour, cfg.EventLogCleanupInterval)
		assert.Equal(t, 2, cfg.WorkerCount)
		assert.Equal(t, 16, cfg.WorkerQueueSize)
		assert.Equal(t, 5, cfg.EventMaxRetries)
		assert.Equal(t, 2*time.Second, cfg.EventRetryDelay)
	})

	t.Run("overrides", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("JWT_SECRET", "k")
		t.Setenv("DB_MAX_CONNS", "50")
		t.Setenv("LEDGER_AUDIT_INTERVAL", "0s")
		t.Setenv("EVENT_LOG_RETENTION_DAYS", "30")
		t.Setenv("WORKER_COUNT", "4")
		t.Setenv("CACHE_TTL", "2m")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 50, cfg.DBMaxConns)
		assert.Zero(t, cfg.LedgerAuditInterval, "zero disables the audit")
		assert.Equal(t, 30, cfg.EventLogRetentionDays)
		assert.Equal(t, 4, cfg.WorkerCount)
		assert.Equal(t, 2*time.Minute, cfg.CacheTTL)
	})

	t.Run("garbage falls back to defaults", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("JWT_SECRET", "k")
		t.Setenv("DB_MAX_CONNS", "many")
		t.Setenv("EXPIRY_SWEEP_INTERVAL", "twice a day")
		t.Setenv("EVENT_RETRY_DELAY", "soon")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 20, cfg.DBMaxConns)
		assert.Equal(t, 6*time.Hour, cfg.ExpirySweepInterval)
		assert.Equal(t, 2*time.Second, cfg.EventRetryDelay)
	})
}
