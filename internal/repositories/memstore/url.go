package memstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/tinyurl/internal/db"
	"github.com/fsdevblog/tinyurl/internal/db/memory"
	"github.com/fsdevblog/tinyurl/internal/models"
	"github.com/fsdevblog/tinyurl/internal/repositories"
)

// URLRepo представляет собой репозиторий для работы с URL в памяти.
// Ключом хранилища служит короткий идентификатор.
type URLRepo struct {
	s *db.MemoryStorage
}

// NewURLRepo создает новый экземпляр репозитория URL.
//
// Параметры:
//   - store: экземпляр хранилища в памяти
//
// Возвращает:
//   - *URLRepo: инициализированный репозиторий
func NewURLRepo(store *db.MemoryStorage) *URLRepo {
	return &URLRepo{
		s: store,
	}
}

// Create атомарно создает новую URL запись, если идентификатор свободен.
//
// Параметры:
//   - ctx: контекст выполнения
//   - sURL: данные URL для создания
//
// Возвращает:
//   - *models.URL: созданная запись, nil если идентификатор занят
//   - bool: true если запись создана
//   - error: ошибка создания (преобразованная через convertErrorType)
func (u *URLRepo) Create(ctx context.Context, sURL *models.URL) (*models.URL, bool, error) {
	if err := memory.Set[models.URL](ctx, sURL.ShortIdentifier, sURL, u.s.MStorage); err != nil {
		if errors.Is(err, memory.ErrDuplicateKey) {
			return nil, false, nil
		}

		return nil, false, fmt.Errorf(
			"failed to create record: %w",
			convertErrorType(err),
		)
	}
	return sURL, true, nil
}

// Exists проверяет, занят ли идентификатор (в том числе истекшей записью).
func (u *URLRepo) Exists(ctx context.Context, shortID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("failed to check record: %w", convertErrorType(err))
	}
	return u.s.IsExist(shortID), nil
}

// GetByShortIdentifier получает URL по короткому идентификатору без учета срока жизни.
func (u *URLRepo) GetByShortIdentifier(ctx context.Context, shortID string) (*models.URL, error) {
	url, err := memory.Get[models.URL](ctx, shortID, u.s.MStorage)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to get record by short identifier %s: %w",
			shortID, convertErrorType(err),
		)
	}
	return url, nil
}

// GetLive получает живую на момент now запись. Истекшая запись считается отсутствующей.
func (u *URLRepo) GetLive(ctx context.Context, shortID string, now time.Time) (*models.URL, error) {
	url, err := u.GetByShortIdentifier(ctx, shortID)
	if err != nil {
		return nil, err
	}
	if !url.IsLive(now) {
		return nil, fmt.Errorf("record %s expired: %w", shortID, repositories.ErrNotFound)
	}
	return url, nil
}

// GetLiveByURL получает самую свежую живую запись по оригинальному URL.
func (u *URLRepo) GetLiveByURL(ctx context.Context, rawURL string, now time.Time) (*models.URL, error) {
	data, err := memory.FilterAll[models.URL](ctx, u.s.MStorage, func(val models.URL) bool {
		return val.URL == rawURL && val.IsLive(now)
	})
	if err != nil {
		return nil, fmt.Errorf(
			"failed to get record by url %s: %w",
			rawURL, convertErrorType(err),
		)
	}
	if len(data) == 0 {
		return nil, repositories.ErrNotFound
	}

	latest := data[0]
	for _, val := range data[1:] {
		if val.CreatedAt.After(latest.CreatedAt) {
			latest = val
		}
	}
	return &latest, nil
}

// UpdateExpiresAt устанавливает новый срок жизни записи.
func (u *URLRepo) UpdateExpiresAt(ctx context.Context, shortID string, expiresAt *time.Time) (*models.URL, error) {
	url, err := memory.Update[models.URL](ctx, shortID, u.s.MStorage, func(val *models.URL) error {
		val.ExpiresAt = expiresAt
		val.UpdatedAt = time.Now().UTC()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf(
			"failed to update expiry of %s: %w",
			shortID, convertErrorType(err),
		)
	}
	return url, nil
}

// IncrementVisitCount увеличивает счетчик переходов на единицу.
func (u *URLRepo) IncrementVisitCount(ctx context.Context, shortID string) error {
	_, err := memory.Update[models.URL](ctx, shortID, u.s.MStorage, func(val *models.URL) error {
		val.VisitCount++
		return nil
	})
	if err != nil {
		return fmt.Errorf(
			"failed to increment visits of %s: %w",
			shortID, convertErrorType(err),
		)
	}
	return nil
}

// DeleteExpiredBefore удаляет записи, истекшие не позже t.
func (u *URLRepo) DeleteExpiredBefore(ctx context.Context, t time.Time) (int64, error) {
	deleted, err := memory.DeleteFunc[models.URL](ctx, u.s.MStorage, func(val models.URL) bool {
		return !val.IsLive(t)
	})
	if err != nil {
		return deleted, fmt.Errorf("failed to delete expired records: %w", convertErrorType(err))
	}
	return deleted, nil
}
