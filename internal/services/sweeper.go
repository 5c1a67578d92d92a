package services

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// DefaultCleanupInterval период удаления истекших записей по умолчанию.
const DefaultCleanupInterval = 24 * time.Hour

// ExpiredPurger удаляет истекшие записи.
type ExpiredPurger interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

// Sweeper периодически удаляет истекшие записи.
type Sweeper struct {
	purger   ExpiredPurger
	interval time.Duration
	logger   *zap.Logger
}

func NewSweeper(purger ExpiredPurger, interval time.Duration, logger *zap.Logger) *Sweeper {
	return &Sweeper{
		purger:   purger,
		interval: interval,
		logger:   logger.With(zap.String("module", "services/sweeper")),
	}
}

// Run выполняет очистку каждые interval до отмены ctx. interval <= 0 отключает очистку.
func (s *Sweeper) Run(ctx context.Context) {
	if s.interval <= 0 {
		s.logger.Info("expired records cleanup disabled")
		return
	}
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce выполняет одну очистку. Ошибка логируется, следующая очистка выполнится по расписанию.
func (s *Sweeper) RunOnce(ctx context.Context) int64 {
	deleted, err := s.purger.DeleteExpired(ctx)
	if err != nil {
		s.logger.Error("failed to delete expired records", zap.Error(err))
		return deleted
	}
	if deleted > 0 {
		s.logger.Info("expired records deleted", zap.Int64("count", deleted))
	}
	return deleted
}
