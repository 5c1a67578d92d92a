package db

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

type StorageType string

const (
	StorageTypePostgres StorageType = "postgres"
	StorageTypeSQLite   StorageType = "sqlite"
	StorageTypeInMemory StorageType = "inMemory"
)

type FactoryConfig struct {
	StorageType  StorageType
	PostgresDSN  string
	SqliteDBPath string
	Logger       *zap.Logger
}

// NewConnectionFactory открывает соединение с хранилищем выбранного типа.
//
// Возвращает:
//   - any: *pgxpool.Pool, *gorm.DB или *MemoryStorage в зависимости от StorageType
//   - error: ошибка подключения или миграции
func NewConnectionFactory(ctx context.Context, config FactoryConfig) (any, error) {
	switch config.StorageType {
	case StorageTypePostgres:
		if config.PostgresDSN == "" {
			return nil, errors.New("postgres dsn is empty")
		}
		pool, err := NewPostgresConnection(ctx, config.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("failed to create postgres connection: %w", err)
		}
		if migrateErr := migratePostgres(ctx, pool); migrateErr != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to migrate schema: %w", migrateErr)
		}
		return pool, nil
	case StorageTypeSQLite:
		if config.SqliteDBPath == "" {
			return nil, errors.New("sqlite path is empty")
		}
		conn, err := NewSQLite(config.SqliteDBPath, config.Logger)
		if err != nil {
			return nil, err
		}
		return conn, nil
	case StorageTypeInMemory:
		return NewMemStorage(), nil
	default:
		return nil, fmt.Errorf("unknown storage type: %s", config.StorageType)
	}
}
