package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fsdevblog/tinyurl/internal/cache"
	"github.com/fsdevblog/tinyurl/internal/config"
	"github.com/fsdevblog/tinyurl/internal/controllers"
	"github.com/fsdevblog/tinyurl/internal/db"
	"github.com/fsdevblog/tinyurl/internal/logs"
	"github.com/fsdevblog/tinyurl/internal/services"
	"github.com/fsdevblog/tinyurl/internal/shortcode"
)

const (
	backupTimeout   = 10 * time.Second
	shutdownTimeout = 10 * time.Second
)

type App struct {
	config   config.Config
	Services *services.Services
	Logger   *zap.Logger
	// memStore заполнен только для хранилища в памяти, бекап делается в FileStoragePath.
	memStore *db.MemoryStorage
	closers  []func()
}

// New собирает приложение: логгер, подключение к хранилищу, кеш и сервисный слой.
func New(ctx context.Context, conf config.Config) (*App, error) {
	logger, err := logs.New(logs.WithLevel(conf.LogLevel))
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	a := &App{config: conf, Logger: logger}
	if initErr := a.initServices(ctx); initErr != nil {
		a.Close()
		return nil, fmt.Errorf("init services: %w", initErr)
	}
	return a, nil
}

// Must вызывает панику если произошла ошибка.
func Must(a *App, err error) *App {
	if err != nil {
		panic(err)
	}
	return a
}

func (a *App) initServices(ctx context.Context) error {
	storageType := a.config.StorageType()

	conn, connErr := db.NewConnectionFactory(ctx, db.FactoryConfig{
		StorageType:  storageType,
		PostgresDSN:  a.config.DatabaseDSN,
		SqliteDBPath: a.config.SQLitePath,
		Logger:       a.Logger,
	})
	if connErr != nil {
		return connErr //nolint:wrapcheck
	}
	a.trackConnection(conn)

	gen, genErr := shortcode.NewGenerator(a.config.CodeLength)
	if genErr != nil {
		return fmt.Errorf("code generator: %w", genErr)
	}

	policy, policyErr := a.config.Policy()
	if policyErr != nil {
		return fmt.Errorf("expiry policy: %w", policyErr)
	}

	resolveCache, cacheErr := a.initCache(ctx)
	if cacheErr != nil {
		return cacheErr
	}

	srv, srvErr := services.Factory(conn, services.ServiceType(storageType), services.FactoryParams{
		Generator:      gen,
		MaxAttempts:    a.config.MaxAttempts,
		Policy:         policy,
		DedupByURL:     a.config.DedupByURL,
		Cache:          resolveCache,
		CacheTTL:       a.config.CacheTTL,
		VisitWorkers:   a.config.VisitWorkers,
		VisitQueueSize: a.config.VisitQueueSize,
		Logger:         a.Logger,
	})
	if srvErr != nil {
		return srvErr //nolint:wrapcheck
	}
	a.Services = srv
	return nil
}

// initCache кеш разрешения по конфигурации. При выключенном кеше возвращается nil.
func (a *App) initCache(ctx context.Context) (services.ResolveCache, error) {
	switch a.config.CacheKind() {
	case config.CacheLocal:
		a.Logger.Warn("local resolve cache enabled, run a single instance only")
		return cache.NewLocal(a.config.CacheTTL), nil
	case config.CacheRedis:
		rc, err := cache.NewRedis(ctx, a.config.RedisAddr)
		if err != nil {
			return nil, fmt.Errorf("connect redis `%s`: %w", a.config.RedisAddr, err)
		}
		a.closers = append(a.closers, func() { _ = rc.Close() })
		return rc, nil
	default:
		return nil, nil //nolint:nilnil
	}
}

func (a *App) trackConnection(conn any) {
	switch c := conn.(type) {
	case *db.MemoryStorage:
		a.memStore = c
	case interface{ Close() }:
		a.closers = append(a.closers, c.Close)
	case *gorm.DB:
		a.closers = append(a.closers, func() {
			if sqlDB, err := c.DB(); err == nil {
				_ = sqlDB.Close()
			}
		})
	}
}

// Close освобождает соединения.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
	_ = a.Logger.Sync()
}

// RestoreBackup восстанавливает хранилище в памяти из FileStoragePath. Отсутствующий файл не ошибка.
func (a *App) RestoreBackup() error {
	if a.memStore == nil || a.config.FileStoragePath == "" {
		return nil
	}
	if err := a.memStore.Restore(a.config.FileStoragePath); err != nil {
		return fmt.Errorf("restore backup from file `%s`: %w", a.config.FileStoragePath, err)
	}
	a.Logger.Info("backup restored", zap.String("path", a.config.FileStoragePath))
	return nil
}

// MakeBackup сохраняет хранилище в памяти в FileStoragePath.
func (a *App) MakeBackup() {
	if a.memStore == nil || a.config.FileStoragePath == "" {
		return
	}
	if err := a.memStore.Backup(a.config.FileStoragePath); err != nil {
		a.Logger.Error("making backup error", zap.String("path", a.config.FileStoragePath), zap.Error(err))
		return
	}
	a.Logger.Info("successfully made backup", zap.String("path", a.config.FileStoragePath))
}

// Run запускает web сервер, воркеры учета переходов и периодическую очистку истекших ссылок.
// Завершается по SIGINT/SIGTERM или ошибке сервера.
func (a *App) Run() error {
	defer a.Close()

	if restoreErr := a.RestoreBackup(); restoreErr != nil {
		return fmt.Errorf("run app: %w", restoreErr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if a.Services.Visits != nil {
		a.Services.Visits.Start()
	}

	sweeper := services.NewSweeper(a.Services.URLService, a.config.CleanupInterval, a.Logger)
	sweepDone := make(chan struct{})
	go func() {
		defer close(sweepDone)
		sweeper.Run(ctx)
	}()

	router := controllers.SetupRouter(controllers.RouterParams{
		URLService:  a.Services.URLService,
		PingService: a.Services.PingService,
		BaseURL:     a.config.BaseURL,
		Logger:      a.Logger,
	})
	server := &http.Server{
		Addr:              a.config.ServerAddress,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second, //nolint:mnd
	}

	errChan := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	a.Logger.Info("server started", zap.String("address", a.config.ServerAddress))

	var serverErr error
	select {
	case <-ctx.Done():
		a.Logger.Info("shutdown command received")
	case serverErr = <-errChan:
		a.Logger.Error("router error", zap.Error(serverErr))
		stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		a.Logger.Error("server shutdown error", zap.Error(err))
	}
	<-sweepDone

	if a.Services.Visits != nil {
		if err := a.Services.Visits.Stop(shutdownCtx); err != nil {
			a.Logger.Warn("visit pool stop", zap.Error(err))
		}
	}

	a.MakeBackup()
	return serverErr
}
