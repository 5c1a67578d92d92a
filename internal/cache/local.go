package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const localCleanupInterval = time.Minute

// Local кеш в памяти процесса.
type Local struct {
	c *gocache.Cache
}

func NewLocal(defaultTTL time.Duration) *Local {
	return &Local{c: gocache.New(defaultTTL, localCleanupInterval)}
}

func (l *Local) Get(ctx context.Context, key string) (*Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err //nolint:wrapcheck
	}
	v, ok := l.c.Get(key)
	if !ok {
		return nil, ErrMiss
	}
	entry, ok := v.(Entry)
	if !ok {
		return nil, ErrMiss
	}
	return &entry, nil
}

func (l *Local) Set(ctx context.Context, key string, entry *Entry, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err //nolint:wrapcheck
	}
	l.c.Set(key, *entry, ttl)
	return nil
}

func (l *Local) Delete(_ context.Context, key string) error {
	l.c.Delete(key)
	return nil
}
