package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	domainErrors "github.com/akarpov/retailhub/internal/domain/errors"
	"github.com/akarpov/retailhub/internal/domain/model"
	testhelpers "github.com/akarpov/retailhub/internal/test"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestNewOrderSweeperDefaults(t *testing.T) {
	sweeper := NewOrderSweeper(&testhelpers.SweeperFacadeStub{}, time.Second, time.Hour, 0, 0, testLogger())
	if sweeper.batchSize != 1 {
		t.Fatalf("expected batch size default to 1, got %d", sweeper.batchSize)
	}
	if sweeper.workers != 1 {
		t.Fatalf("expected workers default to 1, got %d", sweeper.workers)
	}
}

func TestOrderSweeperCancelsStaleOrders(t *testing.T) {
	facade := &testhelpers.SweeperFacadeStub{Batches: [][]model.Order{{{ID: 1, Status: model.OrderStatusPending}, {ID: 2, Status: model.OrderStatusPending}}}}
	sweeper := NewOrderSweeper(facade, 10*time.Millisecond, time.Hour, 2, 2, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sweeper.Start(ctx)

	deadline := time.After(500 * time.Millisecond)
	for {
		facade.Lock()
		done := len(facade.Cancelled) >= 2
		facade.Unlock()
		if done {
			break
		}
		select {
		case <-deadline:
			t.Fatal("timeout waiting for stale orders to be cancelled")
		case <-time.After(10 * time.Millisecond):
		}
	}

	sweeper.Stop()
	facade.Lock()
	defer facade.Unlock()
	if len(facade.Cancelled) < 2 {
		t.Fatalf("expected both stale orders cancelled, got %v", facade.Cancelled)
	}
}

func TestOrderSweeperDisabledWithoutTTL(t *testing.T) {
	called := int32(0)
	facade := &testhelpers.SweeperFacadeStub{StaleOrdersFn: func(context.Context, time.Time, int) ([]model.Order, error) {
		atomic.AddInt32(&called, 1)
		return nil, nil
	}}
	sweeper := NewOrderSweeper(facade, time.Millisecond, 0, 1, 1, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sweeper.Start(ctx)

	time.Sleep(50 * time.Millisecond)
	sweeper.Stop()

	if atomic.LoadInt32(&called) != 0 {
		t.Fatal("expected sweeper to stay idle with zero ttl")
	}
}

func TestOrderSweeperUsesCutoffAndLimit(t *testing.T) {
	ttl := 2 * time.Hour
	checked := make(chan struct{}, 1)
	facade := &testhelpers.SweeperFacadeStub{StaleOrdersFn: func(ctx context.Context, olderThan time.Time, limit int) ([]model.Order, error) {
		age := time.Since(olderThan)
		if age < ttl-time.Minute || age > ttl+time.Minute {
			t.Errorf("unexpected cutoff age %v", age)
		}
		if limit != 7 {
			t.Errorf("unexpected limit %d", limit)
		}
		select {
		case checked <- struct{}{}:
		default:
		}
		return nil, nil
	}}
	sweeper := NewOrderSweeper(facade, 10*time.Millisecond, ttl, 7, 1, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sweeper.Start(ctx)

	select {
	case <-checked:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timeout waiting for fetch")
	}
	sweeper.Stop()
}

func TestOrderSweeperSkipsConflicts(t *testing.T) {
	var attempts int32
	facade := &testhelpers.SweeperFacadeStub{
		Batches: [][]model.Order{{{ID: 1}, {ID: 2}}},
		CancelFn: func(ctx context.Context, orderID int64) (*model.Order, error) {
			atomic.AddInt32(&attempts, 1)
			if orderID == 1 {
				// paid while queued, refuse the sweep
				return nil, domainErrors.ErrOrderCompleted
			}
			return &model.Order{ID: orderID, Status: model.OrderStatusCancelled}, nil
		},
	}
	sweeper := NewOrderSweeper(facade, 10*time.Millisecond, time.Hour, 2, 1, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sweeper.Start(ctx)

	deadline := time.After(500 * time.Millisecond)
	for atomic.LoadInt32(&attempts) < 2 {
		select {
		case <-deadline:
			t.Fatal("timeout waiting for sweep attempts")
		case <-time.After(10 * time.Millisecond):
		}
	}
	sweeper.Stop()
}

func TestOrderSweeperSurvivesFetchErrors(t *testing.T) {
	var calls int32
	facade := &testhelpers.SweeperFacadeStub{StaleOrdersFn: func(context.Context, time.Time, int) ([]model.Order, error) {
		atomic.AddInt32(&calls, 1)
		return nil, errors.New("db down")
	}}
	sweeper := NewOrderSweeper(facade, 10*time.Millisecond, time.Hour, 1, 1, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sweeper.Start(ctx)

	deadline := time.After(500 * time.Millisecond)
	for atomic.LoadInt32(&calls) < 2 {
		select {
		case <-deadline:
			t.Fatal("expected sweeper to keep polling after errors")
		case <-time.After(10 * time.Millisecond):
		}
	}
	sweeper.Stop()
}

func TestOrderSweeperStopWithoutStart(t *testing.T) {
	sweeper := NewOrderSweeper(&testhelpers.SweeperFacadeStub{}, time.Second, time.Hour, 1, 1, testLogger())
	sweeper.Stop()
}
