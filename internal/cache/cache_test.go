package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type resolveCache interface {
	Get(ctx context.Context, key string) (*Entry, error)
	Set(ctx context.Context, key string, entry *Entry, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

func exerciseCache(t *testing.T, c resolveCache) {
	t.Helper()
	ctx := t.Context()

	_, err := c.Get(ctx, "missing")
	require.ErrorIs(t, err, ErrMiss)

	exp := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, c.Set(ctx, "abc", &Entry{URL: "https://example.com", ExpiresAt: &exp}, time.Minute))

	got, err := c.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", got.URL)
	require.NotNil(t, got.ExpiresAt)
	assert.True(t, exp.Equal(*got.ExpiresAt))

	require.NoError(t, c.Delete(ctx, "abc"))
	_, err = c.Get(ctx, "abc")
	require.ErrorIs(t, err, ErrMiss)
}

func TestLocal(t *testing.T) {
	exerciseCache(t, NewLocal(time.Minute))
}

func TestLocal_TTL(t *testing.T) {
	c := NewLocal(time.Minute)
	require.NoError(t, c.Set(t.Context(), "short", &Entry{URL: "https://example.com"}, 10*time.Millisecond))
	time.Sleep(30 * time.Millisecond)

	_, err := c.Get(t.Context(), "short")
	require.ErrorIs(t, err, ErrMiss)
}

func TestRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	c, err := NewRedis(t.Context(), mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	exerciseCache(t, c)
}

func TestRedis_TTL(t *testing.T) {
	mr := miniredis.RunT(t)

	c, err := NewRedis(t.Context(), mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	require.NoError(t, c.Set(t.Context(), "short", &Entry{URL: "https://example.com"}, time.Second))
	mr.FastForward(2 * time.Second)

	_, err = c.Get(t.Context(), "short")
	require.ErrorIs(t, err, ErrMiss)
}
