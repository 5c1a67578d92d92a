package db

import (
	"context"
	"fmt"

	"github.com/fsdevblog/tinyurl/internal/models"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewSQLite открывает базу sqlite по пути dbPath и мигрирует схему.
func NewSQLite(dbPath string, logger *zap.Logger) (*gorm.DB, error) {
	conn, connErr := connectSQLite(dbPath, logger)
	if connErr != nil {
		return nil, fmt.Errorf("init database error: %w", connErr)
	}
	if migrateErr := migrateSQLite(conn); migrateErr != nil {
		return nil, fmt.Errorf("migrate database error: %w", migrateErr)
	}
	return conn, nil
}

func connectSQLite(dbPath string, logger *zap.Logger) (*gorm.DB, error) {
	conf := &gorm.Config{TranslateError: true}
	if logger != nil {
		conf.Logger = NewGormLogger(logger)
	}
	db, err := gorm.Open(sqlite.Open(dbPath), conf)
	if err != nil {
		return nil, fmt.Errorf("connect database with path %s error: %w", dbPath, err)
	}
	// sqlite не поддерживает конкурентную запись из нескольких соединений
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}

func migrateSQLite(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.URL{}); err != nil {
		return fmt.Errorf("migrating sql: %w", err)
	}
	return nil
}

// GormPinger адаптер проверки соединения для *gorm.DB.
type GormPinger struct {
	DB *gorm.DB
}

func (g GormPinger) Ping(ctx context.Context) error {
	sqlDB, err := g.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	return sqlDB.PingContext(ctx) //nolint:wrapcheck
}
