package services

import (
	"context"
	"fmt"

	"github.com/fsdevblog/tinyurl/internal/models"
	"go.uber.org/zap"
)

// DefaultMaxAttempts число попыток подобрать свободный идентификатор по умолчанию.
const DefaultMaxAttempts = 16

// Arbiter закрепляет идентификатор за записью. Уникальность обеспечивается только
// атомарной вставкой хранилища, своего состояния арбитр не держит.
type Arbiter struct {
	repo        URLRepository
	gen         CodeGenerator
	maxAttempts int
	logger      *zap.Logger
}

func NewArbiter(repo URLRepository, gen CodeGenerator, maxAttempts int, logger *zap.Logger) *Arbiter {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Arbiter{
		repo:        repo,
		gen:         gen,
		maxAttempts: maxAttempts,
		logger:      logger,
	}
}

// Reserve пытается один раз вставить запись с пользовательским идентификатором.
// Занятый идентификатор дает ErrAliasTaken без повторов.
func (a *Arbiter) Reserve(ctx context.Context, m *models.URL) (*models.URL, error) {
	created, ok, err := a.repo.Create(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("%w: reserve alias %s: %w", ErrStorage, m.ShortIdentifier, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAliasTaken, m.ShortIdentifier)
	}
	return created, nil
}

// Allocate подбирает свободный идентификатор: на каждую попытку новый кандидат
// и атомарная вставка. Коллизия ведет к следующей попытке, ошибка хранилища возвращается сразу.
// После maxAttempts коллизий возвращается ErrCodeSpaceExhausted.
func (a *Arbiter) Allocate(ctx context.Context, m *models.URL) (*models.URL, error) {
	for attempt := 1; attempt <= a.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("allocate code: %w", err)
		}

		code, genErr := a.gen.Generate()
		if genErr != nil {
			return nil, fmt.Errorf("%w: generate code: %w", ErrUnknown, genErr)
		}

		candidate := *m
		candidate.ShortIdentifier = code

		created, ok, err := a.repo.Create(ctx, &candidate)
		if err != nil {
			return nil, fmt.Errorf("%w: allocate code: %w", ErrStorage, err)
		}
		if ok {
			return created, nil
		}
		a.logger.Debug("short identifier collision",
			zap.String("shortID", code),
			zap.Int("attempt", attempt),
		)
	}

	a.logger.Error("short identifier space exhausted", zap.Int("attempts", a.maxAttempts))
	return nil, fmt.Errorf("%w: no free code after %d attempts", ErrCodeSpaceExhausted, a.maxAttempts)
}
