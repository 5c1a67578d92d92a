// Package workers учитывает переходы по ссылкам асинхронно пулом воркеров.
package workers

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultQueueSize = 1024
	// incrementTimeout ограничивает одну запись в хранилище.
	incrementTimeout = 3 * time.Second
)

var (
	// ErrQueueFull очередь переполнена, событие отброшено.
	ErrQueueFull = errors.New("[workers]: visit queue is full")
	ErrStopped   = errors.New("[workers]: visit pool is stopped")
)

// VisitIncrementer хранилище счетчиков переходов.
type VisitIncrementer interface {
	IncrementVisitCount(ctx context.Context, shortID string) error
}

// VisitPool пул воркеров, увеличивающих счетчики переходов. Учет переходов ведется по возможности:
// при переполнении очереди событие отбрасывается, а не блокирует запрос.
type VisitPool struct {
	repo    VisitIncrementer
	queue   chan string
	workers int
	logger  *zap.Logger

	mu      sync.RWMutex
	stopped bool
	wg      sync.WaitGroup
}

func NewVisitPool(repo VisitIncrementer, workers, queueSize int, logger *zap.Logger) *VisitPool {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &VisitPool{
		repo:    repo,
		queue:   make(chan string, queueSize),
		workers: workers,
		logger:  logger.With(zap.String("module", "workers/visits")),
	}
}

// Start запускает воркеры.
func (p *VisitPool) Start() {
	for i := range p.workers {
		p.wg.Add(1)
		go p.work(i)
	}
}

// Record ставит переход в очередь без блокировки.
func (p *VisitPool) Record(_ context.Context, shortID string) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.stopped {
		return ErrStopped
	}
	select {
	case p.queue <- shortID:
		return nil
	default:
		return ErrQueueFull
	}
}

// Stop закрывает очередь и ждет, пока воркеры обработают оставшиеся события, но не дольше ctx.
func (p *VisitPool) Stop(ctx context.Context) error {
	p.mu.Lock()
	if !p.stopped {
		p.stopped = true
		close(p.queue)
	}
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err() //nolint:wrapcheck
	}
}

func (p *VisitPool) work(id int) {
	defer p.wg.Done()
	for shortID := range p.queue {
		ctx, cancel := context.WithTimeout(context.Background(), incrementTimeout)
		if err := p.repo.IncrementVisitCount(ctx, shortID); err != nil {
			p.logger.Warn("failed to increment visit count",
				zap.Int("worker", id),
				zap.String("shortID", shortID),
				zap.Error(err),
			)
		}
		cancel()
	}
}
