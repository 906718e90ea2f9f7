package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestRedisStore_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	if err != nil {
		t.Skipf("docker not available: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	store, err := NewRedisStore(ctx, endpoint, "", 0)
	require.NoError(t, err)
	defer store.Close()

	for i := 0; i < 450; i++ {
		require.NoError(t, store.Set(ctx, Key(PrefixSerials, i), []byte("x"), time.Minute))
	}
	require.NoError(t, store.Set(ctx, Key(PrefixLedger, 1), []byte("keep"), time.Minute))

	v, ok, err := store.Get(ctx, Key(PrefixSerials, 10))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("x"), v)

	require.NoError(t, store.DeletePattern(ctx, All(PrefixSerials)))

	_, ok, err = store.Get(ctx, Key(PrefixSerials, 10))
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = store.Get(ctx, Key(PrefixLedger, 1))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, store.Ping(ctx))
}
