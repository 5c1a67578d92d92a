package services

import (
	"context"
	"time"

	"github.com/fsdevblog/tinyurl/internal/cache"
	"github.com/fsdevblog/tinyurl/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock.go -package=mocks

// URLRepository описывает репозиторий для URL.
type URLRepository interface {
	// Create атомарно вставляет запись, если идентификатор свободен.
	// Возвращает (запись, true, nil) при вставке и (nil, false, nil) если идентификатор занят.
	Create(ctx context.Context, mURL *models.URL) (*models.URL, bool, error)
	// Exists сообщает, занят ли идентификатор, в том числе истекшей записью.
	Exists(ctx context.Context, shortID string) (bool, error)
	// GetByShortIdentifier находит запись без учета срока жизни.
	GetByShortIdentifier(ctx context.Context, shortID string) (*models.URL, error)
	// GetLive находит запись, живую на момент now.
	GetLive(ctx context.Context, shortID string, now time.Time) (*models.URL, error)
	// GetLiveByURL находит самую свежую живую запись по оригинальной ссылке.
	GetLiveByURL(ctx context.Context, rawURL string, now time.Time) (*models.URL, error)
	UpdateExpiresAt(ctx context.Context, shortID string, expiresAt *time.Time) (*models.URL, error)
	IncrementVisitCount(ctx context.Context, shortID string) error
	// DeleteExpiredBefore удаляет записи с expiresAt <= t.
	DeleteExpiredBefore(ctx context.Context, t time.Time) (int64, error)
}

// CodeGenerator генератор кандидатов в короткие идентификаторы.
type CodeGenerator interface {
	Generate() (string, error)
}

// VisitRecorder учитывает переход по короткой ссылке.
type VisitRecorder interface {
	Record(ctx context.Context, shortID string) error
}

// ResolveCache кеш разрешения идентификаторов.
type ResolveCache interface {
	Get(ctx context.Context, shortID string) (*cache.Entry, error)
	Set(ctx context.Context, shortID string, entry *cache.Entry, ttl time.Duration) error
	Delete(ctx context.Context, shortID string) error
}
