package workers

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type counter struct {
	mu     sync.Mutex
	counts map[string]int
	block  chan struct{}
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) IncrementVisitCount(_ context.Context, shortID string) error {
	if c.block != nil {
		<-c.block
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[shortID]++
	return nil
}

func (c *counter) get(shortID string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[shortID]
}

func TestVisitPool_RecordAndDrain(t *testing.T) {
	c := newCounter()
	p := NewVisitPool(c, 4, 100, zap.NewNop())
	p.Start()

	for range 50 {
		require.NoError(t, p.Record(t.Context(), "abc"))
	}
	require.NoError(t, p.Stop(t.Context()))

	assert.Equal(t, 50, c.get("abc"))
	require.ErrorIs(t, p.Record(t.Context(), "abc"), ErrStopped)
}

func TestVisitPool_DropsWhenFull(t *testing.T) {
	c := newCounter()
	c.block = make(chan struct{})
	p := NewVisitPool(c, 1, 2, zap.NewNop())
	// воркеры не запущены: очередь заполняется без разбора
	require.NoError(t, p.Record(t.Context(), "a"))
	require.NoError(t, p.Record(t.Context(), "b"))
	require.ErrorIs(t, p.Record(t.Context(), "c"), ErrQueueFull)

	close(c.block)
	p.Start()
	require.NoError(t, p.Stop(t.Context()))
	assert.Equal(t, 1, c.get("a"))
	assert.Equal(t, 1, c.get("b"))
	assert.Equal(t, 0, c.get("c"))
}
