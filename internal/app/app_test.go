package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsdevblog/tinyurl/internal/config"
	"github.com/fsdevblog/tinyurl/internal/expiry"
	"github.com/fsdevblog/tinyurl/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		ServerAddress:   "localhost:0",
		FileStoragePath: filepath.Join(t.TempDir(), "backup.json"),
		CacheTTL:        time.Minute,
		CodeLength:      8,
		MaxAttempts:     16,
		ExpiryPolicy:    string(expiry.ModeUnbounded),
		LogLevel:        "error",
	}
}

func TestApp_BackupRestore(t *testing.T) {
	ctx := context.Background()
	conf := testConfig(t)

	first, err := New(ctx, conf)
	require.NoError(t, err)
	require.NotNil(t, first.memStore)

	m, created, err := first.Services.URLService.Shorten(ctx, services.ShortenParams{URL: "https://example.com/a"})
	require.NoError(t, err)
	require.True(t, created)
	first.MakeBackup()
	first.Close()

	second, err := New(ctx, conf)
	require.NoError(t, err)
	defer second.Close()
	require.NoError(t, second.RestoreBackup())

	target, err := second.Services.URLService.Resolve(ctx, m.ShortIdentifier)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/a", target)
}

func TestApp_RestoreWithoutBackupFile(t *testing.T) {
	a, err := New(context.Background(), testConfig(t))
	require.NoError(t, err)
	defer a.Close()

	assert.NoError(t, a.RestoreBackup())
}

func TestApp_InvalidCodeLength(t *testing.T) {
	conf := testConfig(t)
	conf.CodeLength = 0

	_, err := New(context.Background(), conf)
	assert.Error(t, err)
}

func TestApp_CacheOffByDefault(t *testing.T) {
	a, err := New(context.Background(), testConfig(t))
	require.NoError(t, err)
	defer a.Close()

	c, err := a.initCache(context.Background())
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestApp_LocalCacheOptIn(t *testing.T) {
	conf := testConfig(t)
	conf.Cache = config.CacheLocal

	a, err := New(context.Background(), conf)
	require.NoError(t, err)
	defer a.Close()

	c, err := a.initCache(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, c)
}
