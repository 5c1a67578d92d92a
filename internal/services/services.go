package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/tinyurl/internal/db"
	"github.com/fsdevblog/tinyurl/internal/expiry"
	"github.com/fsdevblog/tinyurl/internal/repositories/memstore"
	"github.com/fsdevblog/tinyurl/internal/repositories/pgsql"
	"github.com/fsdevblog/tinyurl/internal/repositories/sql"
	"github.com/fsdevblog/tinyurl/internal/workers"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ServiceType string

const (
	ServiceTypePostgres ServiceType = "postgres"
	ServiceTypeSQLite   ServiceType = "sqlite"
	ServiceTypeInMemory ServiceType = "inMemory"
)

// FactoryParams параметры сборки сервисного слоя.
type FactoryParams struct {
	Generator   CodeGenerator
	MaxAttempts int
	Policy      expiry.Policy
	DedupByURL  bool
	// Cache опциональный кеш разрешения.
	Cache    ResolveCache
	CacheTTL time.Duration
	// VisitWorkers > 0 включает асинхронный учет переходов.
	VisitWorkers   int
	VisitQueueSize int
	Logger         *zap.Logger
}

type Services struct {
	URLService  *URLService
	PingService *PingService
	// Visits пул учета переходов, nil при синхронном учете.
	Visits *workers.VisitPool
}

// Factory собирает сервисный слой поверх соединения, полученного из db.NewConnectionFactory.
func Factory(conn any, sType ServiceType, params FactoryParams) (*Services, error) {
	if params.Generator == nil {
		return nil, errors.New("code generator is required")
	}
	if params.Logger == nil {
		params.Logger = zap.NewNop()
	}

	var repo URLRepository
	var pinger Pinger
	switch sType {
	case ServiceTypePostgres:
		pool, ok := conn.(*pgxpool.Pool)
		if !ok {
			return nil, errors.New("invalid connection type. expected *pgxpool.Pool")
		}
		repo, pinger = pgsql.NewURLRepo(pool), pool
	case ServiceTypeSQLite:
		gormDB, ok := conn.(*gorm.DB)
		if !ok {
			return nil, errors.New("invalid connection type. expected *gorm.DB")
		}
		repo, pinger = sql.NewURLRepo(gormDB, params.Logger), db.GormPinger{DB: gormDB}
	case ServiceTypeInMemory:
		store, ok := conn.(*db.MemoryStorage)
		if !ok {
			return nil, errors.New("invalid connection type. expected *db.MemoryStorage")
		}
		repo, pinger = memstore.NewURLRepo(store), store
	default:
		return nil, fmt.Errorf("unknown service type: %s", sType)
	}

	return buildServices(repo, pinger, params), nil
}

func buildServices(repo URLRepository, pinger Pinger, params FactoryParams) *Services {
	arbiter := NewArbiter(repo, params.Generator, params.MaxAttempts, params.Logger)

	opts := []URLServiceOption{WithDedupByURL(params.DedupByURL)}
	if params.Cache != nil {
		opts = append(opts, WithCache(params.Cache, params.CacheTTL))
	}

	var visits *workers.VisitPool
	if params.VisitWorkers > 0 {
		visits = workers.NewVisitPool(repo, params.VisitWorkers, params.VisitQueueSize, params.Logger)
		opts = append(opts, WithVisitRecorder(visits))
	}

	return &Services{
		URLService:  NewURLService(repo, arbiter, params.Policy, params.Logger, opts...),
		PingService: NewPingService(pinger),
		Visits:      visits,
	}
}
