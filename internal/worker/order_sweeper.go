package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	domainErrors "github.com/akarpov/retailhub/internal/domain/errors"
	"github.com/akarpov/retailhub/internal/domain/model"
)

// RetailFacade exposes the subset of application functionality required by the sweeper.
type RetailFacade interface {
	StaleOrders(ctx context.Context, olderThan time.Time, limit int) ([]model.Order, error)
	CancelOrder(ctx context.Context, orderID int64) (*model.Order, error)
}

// OrderSweeper cancels PENDING orders that outlived their TTL, refunding any
// live payment through the regular lifecycle operations. A zero TTL disables
// the sweeper entirely.
type OrderSweeper struct {
	facade    RetailFacade
	interval  time.Duration
	ttl       time.Duration
	batchSize int
	workers   int
	logger    *slog.Logger

	jobs   chan model.Order
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewOrderSweeper constructs the sweeper worker pool.
func NewOrderSweeper(facade RetailFacade, interval, ttl time.Duration, batchSize, workers int, logger *slog.Logger) *OrderSweeper {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &OrderSweeper{
		facade:    facade,
		interval:  interval,
		ttl:       ttl,
		batchSize: batchSize,
		workers:   workers,
		logger:    logger,
		jobs:      make(chan model.Order, batchSize*workers),
	}
}

// Start launches background sweeping. No-op when the TTL is zero.
func (s *OrderSweeper) Start(ctx context.Context) {
	if s.ttl <= 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	for i := 0; i < s.workers; i++ {
		s.wg.Add(1)
		go s.worker(runCtx)
	}

	s.wg.Add(1)
	go s.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (s *OrderSweeper) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *OrderSweeper) dispatch(ctx context.Context) {
	defer s.wg.Done()
	defer close(s.jobs)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.fetchAndDispatch(ctx)
		}
	}
}

func (s *OrderSweeper) fetchAndDispatch(ctx context.Context) {
	cutoff := time.Now().Add(-s.ttl)
	orders, err := s.facade.StaleOrders(ctx, cutoff, s.batchSize)
	if err != nil {
		s.logger.Error("fetch stale orders failed", slog.String("error", err.Error()))
		return
	}
	for _, order := range orders {
		select {
		case <-ctx.Done():
			return
		case s.jobs <- order:
		}
	}
}

func (s *OrderSweeper) worker(ctx context.Context) {
	defer s.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case order, ok := <-s.jobs:
			if !ok {
				return
			}
			s.handleOrder(ctx, order)
		}
	}
}

func (s *OrderSweeper) handleOrder(ctx context.Context, order model.Order) {
	if _, err := s.facade.CancelOrder(ctx, order.ID); err != nil {
		switch {
		case domainErrors.IsConflict(err):
			// paid or cancelled between selection and lock, skip
			s.logger.Info("stale order skipped", slog.Int64("order", order.ID), slog.String("reason", err.Error()))
		case errors.Is(err, domainErrors.ErrNotFound):
			s.logger.Warn("stale order vanished", slog.Int64("order", order.ID))
		default:
			s.logger.Error("stale order cancel failed", slog.Int64("order", order.ID), slog.String("error", err.Error()))
		}
		return
	}
	s.logger.Info("stale order cancelled", slog.Int64("order", order.ID))
}
