package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type itemView struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Stock int    `json:"stock"`
}

func TestKey(t *testing.T) {
	assert.Equal(t, "inventory:item:42", Key(PrefixItem, 42))
	assert.Equal(t, "inventory:items:cat:3:low:true", Key(PrefixItems, "cat", 3, "low", true))
	assert.Equal(t, "inventory:ledger", Key(PrefixLedger))
	assert.Equal(t, "inventory:batches*", All(PrefixBatches))
}

func TestMemoryStore_DeletePattern(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore(16, time.Minute)

	require.NoError(t, m.Set(ctx, Key(PrefixItem, 1), []byte("a"), 0))
	require.NoError(t, m.Set(ctx, Key(PrefixItem, 2), []byte("b"), 0))
	require.NoError(t, m.Set(ctx, Key(PrefixBatches, 1), []byte("c"), 0))

	require.NoError(t, m.DeletePattern(ctx, All(PrefixItem)))

	_, ok, _ := m.Get(ctx, Key(PrefixItem, 1))
	assert.False(t, ok)
	v, ok, _ := m.Get(ctx, Key(PrefixBatches, 1))
	assert.True(t, ok)
	assert.Equal(t, []byte("c"), v)
}

func TestMemoryStore_Expires(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore(4, 20*time.Millisecond)
	require.NoError(t, m.Set(ctx, "k", []byte("v"), 0))

	assert.Eventually(t, func() bool {
		_, ok, _ := m.Get(ctx, "k")
		return !ok
	}, time.Second, 10*time.Millisecond)
}

func TestGetOrLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("nil layer always loads", func(t *testing.T) {
		calls := 0
		load := func(context.Context) (itemView, error) {
			calls++
			return itemView{ID: 1}, nil
		}
		var l *Layer
		_, _ = GetOrLoad(ctx, l, "k", load)
		_, _ = GetOrLoad(ctx, l, "k", load)
		assert.Equal(t, 2, calls)
		l.Invalidate(ctx, "k")
		assert.NoError(t, l.Close())
	})

	t.Run("second read is served from cache", func(t *testing.T) {
		l := NewLayer(NewMemoryStore(8, time.Minute), time.Minute)
		calls := 0
		load := func(context.Context) (itemView, error) {
			calls++
			return itemView{ID: 7, Name: "Radio", Stock: 3}, nil
		}

		first, err := GetOrLoad(ctx, l, Key(PrefixItem, 7), load)
		require.NoError(t, err)
		second, err := GetOrLoad(ctx, l, Key(PrefixItem, 7), load)
		require.NoError(t, err)

		assert.Equal(t, 1, calls)
		assert.Equal(t, first, second)
	})

	t.Run("invalidation forces a reload", func(t *testing.T) {
		l := NewLayer(NewMemoryStore(8, time.Minute), time.Minute)
		stock := 3
		load := func(context.Context) (itemView, error) { return itemView{ID: 7, Stock: stock}, nil }

		_, _ = GetOrLoad(ctx, l, Key(PrefixItem, 7), load)
		stock = 1
		l.Invalidate(ctx, StockPatterns()...)

		v, err := GetOrLoad(ctx, l, Key(PrefixItem, 7), load)
		require.NoError(t, err)
		assert.Equal(t, 1, v.Stock)
	})

	t.Run("load errors are not cached", func(t *testing.T) {
		l := NewLayer(NewMemoryStore(8, time.Minute), time.Minute)
		_, err := GetOrLoad(ctx, l, "k", func(context.Context) (itemView, error) {
			return itemView{}, errors.New("db down")
		})
		require.Error(t, err)

		_, ok, _ := l.store.Get(ctx, "k")
		assert.False(t, ok)
	})

	t.Run("store failures fall through", func(t *testing.T) {
		l := NewLayer(brokenStore{}, time.Minute)
		v, err := GetOrLoad(ctx, l, "k", func(context.Context) (itemView, error) { return itemView{ID: 2}, nil })
		require.NoError(t, err)
		assert.Equal(t, int64(2), v.ID)
		l.Invalidate(ctx, "k")
	})
}

type brokenStore struct{}

func (brokenStore) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("unreachable")
}
func (brokenStore) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("unreachable")
}
func (brokenStore) DeletePattern(context.Context, string) error { return errors.New("unreachable") }
func (brokenStore) Close() error                                 { return nil }
