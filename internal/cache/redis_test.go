package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T, opts ...Option) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	store := New(mr.Addr(), "", 0, opts...)
	t.Cleanup(func() { _ = store.Close() })
	return store, mr
}

func TestGetSet(t *testing.T) {
	ctx := context.Background()
	store, mr := newStore(t)
	require.NoError(t, store.Ping(ctx))

	_, ok, err := store.Get(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "abc", []byte(`{"result":"1337"}`)))
	data, ok, err := store.Get(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"result":"1337"}`, string(data))

	assert.True(t, mr.Exists(DefaultPrefix+"abc"))
}

func TestTTLAndPrefix(t *testing.T) {
	ctx := context.Background()
	store, mr := newStore(t, WithTTL(time.Minute), WithPrefix("test:"))

	require.NoError(t, store.Set(ctx, "k", []byte("v")))
	assert.True(t, mr.Exists("test:k"))
	assert.Equal(t, time.Minute, mr.TTL("test:k"))

	mr.FastForward(2 * time.Minute)
	_, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUnavailableServer(t *testing.T) {
	store, mr := newStore(t)
	mr.Close()

	ctx := context.Background()
	assert.Error(t, store.Ping(ctx))
	_, _, err := store.Get(ctx, "k")
	assert.Error(t, err)
	assert.Error(t, store.Set(ctx, "k", []byte("v")))
}
