package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/tinyurl/internal/cache"
	"github.com/fsdevblog/tinyurl/internal/expiry"
	"github.com/fsdevblog/tinyurl/internal/models"
	"github.com/fsdevblog/tinyurl/internal/repositories"
	"go.uber.org/zap"
)

// DefaultCacheTTL время жизни записи в кеше разрешения по умолчанию.
const DefaultCacheTTL = 10 * time.Minute

// ShortenParams параметры сокращения ссылки.
type ShortenParams struct {
	URL string
	// Alias пользовательский идентификатор, пустая строка означает генерацию.
	Alias string
	// ExpiresAt абсолютный момент истечения.
	ExpiresAt *time.Time
	// ExpiresIn срок жизни от момента создания. Взаимоисключающий с ExpiresAt.
	ExpiresIn *time.Duration
}

// URLService Сервис сокращения ссылок: выдача идентификаторов, сроки жизни, разрешение.
type URLService struct {
	repo       URLRepository
	arbiter    *Arbiter
	policy     expiry.Policy
	visits     VisitRecorder
	cache      ResolveCache
	cacheTTL   time.Duration
	dedupByURL bool
	now        func() time.Time
	logger     *zap.Logger
}

// URLServiceOption функциональная опция URLService.
type URLServiceOption func(*URLService)

// WithDedupByURL включает повторное использование записи для уже сокращенной ссылки.
func WithDedupByURL(enabled bool) URLServiceOption {
	return func(s *URLService) {
		s.dedupByURL = enabled
	}
}

func WithClock(now func() time.Time) URLServiceOption {
	return func(s *URLService) {
		s.now = now
	}
}

// WithCache включает кеш разрешения. ttl <= 0 заменяется DefaultCacheTTL.
func WithCache(c ResolveCache, ttl time.Duration) URLServiceOption {
	return func(s *URLService) {
		if ttl <= 0 {
			ttl = DefaultCacheTTL
		}
		s.cache = c
		s.cacheTTL = ttl
	}
}

// WithVisitRecorder подменяет синхронный учет переходов (например, пулом воркеров).
func WithVisitRecorder(r VisitRecorder) URLServiceOption {
	return func(s *URLService) {
		s.visits = r
	}
}

// NewURLService создает сервис сокращения ссылок.
//
// Параметры:
//   - repo: репозиторий URL
//   - arbiter: арбитр уникальности идентификаторов
//   - policy: политика сроков жизни
//   - logger: логгер
//   - opts: функциональные опции
func NewURLService(
	repo URLRepository,
	arbiter *Arbiter,
	policy expiry.Policy,
	logger *zap.Logger,
	opts ...URLServiceOption,
) *URLService {
	s := &URLService{
		repo:    repo,
		arbiter: arbiter,
		policy:  policy,
		visits:  repoVisitRecorder{repo: repo},
		now:     time.Now,
		logger:  logger.With(zap.String("module", "services/url")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Shorten сокращает ссылку.
//
// Возвращает:
//   - *models.URL: запись
//   - bool: true если создана новая запись, false если переиспользована существующая
//   - error: ErrValidation, ErrAliasTaken, ErrCodeSpaceExhausted, ErrURLAlreadyShortened или ErrStorage
func (s *URLService) Shorten(ctx context.Context, params ShortenParams) (*models.URL, bool, error) {
	now := s.now().UTC()

	parsedURL, err := ValidateURL(params.URL)
	if err != nil {
		return nil, false, err
	}
	if params.Alias != "" {
		if aliasErr := ValidateAlias(params.Alias); aliasErr != nil {
			return nil, false, aliasErr
		}
	}
	requested, err := requestedExpiry(params, now)
	if err != nil {
		return nil, false, err
	}

	rawURL := parsedURL.String()

	if s.dedupByURL {
		existing, found, dedupErr := s.reuseExisting(ctx, rawURL, params, now)
		if dedupErr != nil {
			return nil, false, dedupErr
		}
		if found {
			return existing, false, nil
		}
	}

	m := &models.URL{
		URL:             rawURL,
		ShortIdentifier: params.Alias,
		CreatedAt:       now,
		UpdatedAt:       now,
		ExpiresAt:       s.policy.Compute(requested, now),
	}

	var created *models.URL
	if params.Alias != "" {
		created, err = s.arbiter.Reserve(ctx, m)
	} else {
		created, err = s.arbiter.Allocate(ctx, m)
	}
	if err != nil {
		return nil, false, err
	}
	return created, true, nil
}

// reuseExisting ищет живую запись для ссылки. Срок ExpiresIn отсчитывается от момента создания
// найденной записи, как при UpdateExpiry, ExpiresAt ограничивается политикой относительно того же момента.
// Идентификатор записи неизменяем, поэтому другой alias - конфликт.
// Между поиском и вставкой нет блокировки: две одновременные вставки одной ссылки могут дать две записи.
func (s *URLService) reuseExisting(
	ctx context.Context,
	rawURL string,
	params ShortenParams,
	now time.Time,
) (*models.URL, bool, error) {
	existing, err := s.repo.GetLiveByURL(ctx, rawURL, now)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%w: lookup by url: %w", ErrStorage, err)
	}

	if params.Alias != "" && params.Alias != existing.ShortIdentifier {
		return nil, false, fmt.Errorf("%w: as %s", ErrURLAlreadyShortened, existing.ShortIdentifier)
	}

	var refreshed *time.Time
	switch {
	case params.ExpiresIn != nil:
		t := existing.CreatedAt.Add(*params.ExpiresIn)
		refreshed = s.policy.Compute(&t, existing.CreatedAt)
	case params.ExpiresAt != nil:
		refreshed = s.policy.Compute(params.ExpiresAt, existing.CreatedAt)
	default:
		return existing, true, nil
	}

	updated, err := s.repo.UpdateExpiresAt(ctx, existing.ShortIdentifier, refreshed)
	if err != nil {
		return nil, false, fmt.Errorf("%w: refresh expiry: %w", ErrStorage, err)
	}
	s.invalidate(ctx, existing.ShortIdentifier)
	return updated, true, nil
}

// Resolve возвращает оригинальную ссылку по идентификатору живой записи.
// Отсутствующая и истекшая записи неразличимы: обе дают ErrRecordNotFound.
// Учет перехода выполняется по возможности, его ошибки только логируются.
func (s *URLService) Resolve(ctx context.Context, shortID string) (string, error) {
	now := s.now().UTC()

	if rawURL, ok := s.resolveCached(ctx, shortID, now); ok {
		s.recordVisit(ctx, shortID)
		return rawURL, nil
	}

	m, err := s.repo.GetLive(ctx, shortID, now)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", fmt.Errorf("%w: %s", ErrRecordNotFound, shortID)
		}
		return "", fmt.Errorf("%w: resolve %s: %w", ErrStorage, shortID, err)
	}

	s.storeCached(ctx, m, now)
	s.recordVisit(ctx, shortID)
	return m.URL, nil
}

// UpdateExpiry пересчитывает срок жизни записи в минутах от момента ее создания.
// Запись ищется без учета срока жизни, так что истекшая, но не удаленная запись может быть продлена.
func (s *URLService) UpdateExpiry(ctx context.Context, shortID string, minutes *int) (*models.URL, error) {
	m, err := s.repo.GetByShortIdentifier(ctx, shortID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrRecordNotFound, shortID)
		}
		return nil, fmt.Errorf("%w: lookup %s: %w", ErrStorage, shortID, err)
	}

	expiresAt, err := s.policy.Recompute(m.CreatedAt, minutes)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	updated, err := s.repo.UpdateExpiresAt(ctx, shortID, expiresAt)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrRecordNotFound, shortID)
		}
		return nil, fmt.Errorf("%w: update expiry of %s: %w", ErrStorage, shortID, err)
	}
	s.invalidate(ctx, shortID)
	return updated, nil
}

// GetByShortIdentifier возвращает запись со статистикой без учета срока жизни.
func (s *URLService) GetByShortIdentifier(ctx context.Context, shortID string) (*models.URL, error) {
	m, err := s.repo.GetByShortIdentifier(ctx, shortID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrRecordNotFound, shortID)
		}
		return nil, fmt.Errorf("%w: lookup %s: %w", ErrStorage, shortID, err)
	}
	return m, nil
}

// IsAliasAvailable сообщает, свободен ли пользовательский идентификатор.
// Ответ носит справочный характер: окончательно вопрос решает вставка в Shorten.
func (s *URLService) IsAliasAvailable(ctx context.Context, alias string) (bool, error) {
	if err := ValidateAlias(alias); err != nil {
		return false, err
	}
	exists, err := s.repo.Exists(ctx, alias)
	if err != nil {
		return false, fmt.Errorf("%w: check alias %s: %w", ErrStorage, alias, err)
	}
	return !exists, nil
}

// DeleteExpired удаляет записи, истекшие к текущему моменту.
func (s *URLService) DeleteExpired(ctx context.Context) (int64, error) {
	deleted, err := s.repo.DeleteExpiredBefore(ctx, s.now().UTC())
	if err != nil {
		return deleted, fmt.Errorf("%w: delete expired: %w", ErrStorage, err)
	}
	return deleted, nil
}

func (s *URLService) recordVisit(ctx context.Context, shortID string) {
	if err := s.visits.Record(ctx, shortID); err != nil {
		s.logger.Warn("failed to record visit", zap.String("shortID", shortID), zap.Error(err))
	}
}

func (s *URLService) resolveCached(ctx context.Context, shortID string, now time.Time) (string, bool) {
	if s.cache == nil {
		return "", false
	}
	entry, err := s.cache.Get(ctx, shortID)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			s.logger.Warn("cache get failed", zap.String("shortID", shortID), zap.Error(err))
		}
		return "", false
	}
	if !expiry.IsLive(entry.ExpiresAt, now) {
		return "", false
	}
	return entry.URL, true
}

func (s *URLService) storeCached(ctx context.Context, m *models.URL, now time.Time) {
	if s.cache == nil {
		return
	}
	ttl := s.cacheTTL
	if m.ExpiresAt != nil {
		if left := m.ExpiresAt.Sub(now); left < ttl {
			ttl = left
		}
	}
	if ttl <= 0 {
		return
	}
	entry := &cache.Entry{URL: m.URL, ExpiresAt: m.ExpiresAt}
	if err := s.cache.Set(ctx, m.ShortIdentifier, entry, ttl); err != nil {
		s.logger.Warn("cache set failed", zap.String("shortID", m.ShortIdentifier), zap.Error(err))
	}
}

func (s *URLService) invalidate(ctx context.Context, shortID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, shortID); err != nil {
		s.logger.Warn("cache delete failed", zap.String("shortID", shortID), zap.Error(err))
	}
}

// requestedExpiry приводит запрошенный срок к абсолютному моменту.
func requestedExpiry(params ShortenParams, now time.Time) (*time.Time, error) {
	if params.ExpiresAt != nil && params.ExpiresIn != nil {
		return nil, fmt.Errorf("%w: expiresAt and expiresIn are mutually exclusive", ErrValidation)
	}
	switch {
	case params.ExpiresIn != nil:
		if *params.ExpiresIn <= 0 {
			return nil, fmt.Errorf("%w: expiration must be positive", ErrValidation)
		}
		t := now.Add(*params.ExpiresIn)
		return &t, nil
	case params.ExpiresAt != nil:
		if !params.ExpiresAt.After(now) {
			return nil, fmt.Errorf("%w: expiresAt must be in the future", ErrValidation)
		}
		t := params.ExpiresAt.UTC()
		return &t, nil
	default:
		return nil, nil //nolint:nilnil
	}
}

// repoVisitRecorder синхронно увеличивает счетчик в репозитории.
type repoVisitRecorder struct {
	repo URLRepository
}

func (r repoVisitRecorder) Record(ctx context.Context, shortID string) error {
	return r.repo.IncrementVisitCount(ctx, shortID) //nolint:wrapcheck
}
