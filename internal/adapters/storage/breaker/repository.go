// Package breaker decorates a TodoRepository with a circuit breaker and
// store-operation metrics. Once the store fails repeatedly, calls are
// rejected immediately with domain.ErrUnavailable until the breaker's
// timeout elapses. Nothing is retried.
//
// Construction:
//
//	repo := breaker.New(gormstore.New(db), cfg.Storage.CircuitBreaker, "sqlite", metrics, logger)
package breaker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-service/internal/platform/config"
	"github.com/jsamuelsen11/todo-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

// Compile-time check that Repository implements ports.TodoRepository.
var _ ports.TodoRepository = (*Repository)(nil)

// Repository wraps another TodoRepository. Top-level calls go through the
// breaker; calls made on the transaction view passed to InTx are only
// measured, so one transaction counts once toward tripping.
type Repository struct {
	next    ports.TodoRepository
	breaker *gobreaker.CircuitBreaker[struct{}] // nil inside a transaction
	system  string
	metrics *telemetry.Metrics
}

// New wraps next. system names the backing store in metrics (e.g. "sqlite").
// If metrics is nil, metric recording is skipped. A disabled breaker config
// yields a measuring-only decorator.
func New(
	next ports.TodoRepository,
	cfg config.CircuitBreakerConfig,
	system string,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) *Repository {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	r := &Repository{next: next, system: system, metrics: metrics}
	if !cfg.Enabled {
		return r
	}

	r.breaker = gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        "todo-store",
		MaxRequests: toUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		IsSuccessful: isSuccessful,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
	return r
}

// isSuccessful treats request-caused errors as successes: a missing todo or a
// failed validation says nothing about store health.
func isSuccessful(err error) bool {
	return err == nil ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrBadArgument) ||
		errors.Is(err, context.Canceled)
}

func (r *Repository) InTx(ctx context.Context, fn func(ctx context.Context, tx ports.TodoRepository) error) error {
	return r.do(ctx, "transaction", func() error {
		return r.next.InTx(ctx, func(ctx context.Context, tx ports.TodoRepository) error {
			return fn(ctx, &Repository{next: tx, system: r.system, metrics: r.metrics})
		})
	})
}

func (r *Repository) ListAll(ctx context.Context) ([]todo.Todo, error) {
	var out []todo.Todo
	err := r.do(ctx, "list_all", func() (err error) {
		out, err = r.next.ListAll(ctx)
		return err
	})
	return out, err
}

func (r *Repository) ListByCompleted(ctx context.Context, completed bool) ([]todo.Todo, error) {
	var out []todo.Todo
	err := r.do(ctx, "list_by_completed", func() (err error) {
		out, err = r.next.ListByCompleted(ctx, completed)
		return err
	})
	return out, err
}

func (r *Repository) FindByID(ctx context.Context, id int64) (*todo.Todo, error) {
	var out *todo.Todo
	err := r.do(ctx, "find_by_id", func() (err error) {
		out, err = r.next.FindByID(ctx, id)
		return err
	})
	return out, err
}

func (r *Repository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var out bool
	err := r.do(ctx, "exists_by_id", func() (err error) {
		out, err = r.next.ExistsByID(ctx, id)
		return err
	})
	return out, err
}

func (r *Repository) Save(ctx context.Context, t *todo.Todo) (*todo.Todo, error) {
	var out *todo.Todo
	err := r.do(ctx, "save", func() (err error) {
		out, err = r.next.Save(ctx, t)
		return err
	})
	return out, err
}

func (r *Repository) SaveAndReadBack(ctx context.Context, t *todo.Todo) (*todo.Todo, error) {
	var out *todo.Todo
	err := r.do(ctx, "save_and_read_back", func() (err error) {
		out, err = r.next.SaveAndReadBack(ctx, t)
		return err
	})
	return out, err
}

func (r *Repository) DeleteByID(ctx context.Context, id int64) error {
	return r.do(ctx, "delete_by_id", func() error {
		return r.next.DeleteByID(ctx, id)
	})
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	var out int64
	err := r.do(ctx, "count", func() (err error) {
		out, err = r.next.Count(ctx)
		return err
	})
	return out, err
}

func (r *Repository) CountByCompleted(ctx context.Context, completed bool) (int64, error) {
	var out int64
	err := r.do(ctx, "count_by_completed", func() (err error) {
		out, err = r.next.CountByCompleted(ctx, completed)
		return err
	})
	return out, err
}

func (r *Repository) DeleteAllCompleted(ctx context.Context) (int64, error) {
	var out int64
	err := r.do(ctx, "delete_all_completed", func() (err error) {
		out, err = r.next.DeleteAllCompleted(ctx)
		return err
	})
	return out, err
}

func (r *Repository) DeleteAll(ctx context.Context) error {
	return r.do(ctx, "delete_all", func() error {
		return r.next.DeleteAll(ctx)
	})
}

func (r *Repository) FindByTitleContains(ctx context.Context, substr string, ignoreCase bool) ([]todo.Todo, error) {
	var out []todo.Todo
	err := r.do(ctx, "find_by_title_contains", func() (err error) {
		out, err = r.next.FindByTitleContains(ctx, substr, ignoreCase)
		return err
	})
	return out, err
}

// HealthCheck reports the breaker state without touching the store.
func (r *Repository) HealthCheck(_ context.Context) error {
	if r.breaker == nil {
		return nil
	}
	switch state := r.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return errors.New("todo store: degraded (circuit breaker half-open)")
	case gobreaker.StateOpen:
		return errors.New("todo store: failing (circuit breaker open)")
	default:
		return fmt.Errorf("todo store: unknown circuit breaker state %v", state)
	}
}

// Name identifies the breaker in health reports.
func (r *Repository) Name() string {
	return "database_breaker"
}

// do runs op through the breaker when one is configured and records metrics.
// Metrics are recorded outside the breaker so rejections are captured.
func (r *Repository) do(ctx context.Context, operation string, op func() error) error {
	start := time.Now()

	var err error
	if r.breaker == nil {
		err = op()
	} else {
		_, err = r.breaker.Execute(func() (struct{}, error) {
			return struct{}{}, op()
		})
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			err = fmt.Errorf("%w: todo store: %w", domain.ErrUnavailable, err)
		}
	}

	r.recordMetrics(ctx, operation, start, err)
	return err
}

// recordMetrics records store operation duration and count. Safe to call
// with nil metrics.
func (r *Repository) recordMetrics(ctx context.Context, operation string, start time.Time, err error) {
	if r.metrics == nil {
		return
	}

	result := "success"
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		result = "circuit_open"
	case !isSuccessful(err):
		result = "error"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrDBSystem.String(r.system),
		telemetry.AttrDBOperation.String(operation),
		telemetry.AttrResult.String(result),
	)

	r.metrics.StoreOperationDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	r.metrics.StoreOperationTotal.Add(ctx, 1, attrs)
}

// toUint32 safely converts a non-negative int to uint32, clamping at the
// uint32 maximum. Negative values are treated as zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
