// Package queue runs the River job queue that carries follow-up work between
// modules.
package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Black-And-White-Club/pinball-bot/pkg/observability/attr"
	"github.com/Black-And-White-Club/pinball-bot/pkg/observability/metrics"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
)

// ErrNotStarted is returned when jobs are inserted before Start.
var ErrNotStarted = errors.New("queue service not started")

const serviceName = "river"

// Enqueuer inserts jobs.
type Enqueuer interface {
	Enqueue(ctx context.Context, args river.JobArgs) (int64, error)
}

// Config tunes the River client.
type Config struct {
	DSN        string
	MaxWorkers int
}

// Service owns the pgx pool and River client. Workers are registered with
// AddWorker before Start.
type Service struct {
	mu      sync.RWMutex
	pool    *pgxpool.Pool
	workers *river.Workers
	client  *river.Client[pgx.Tx]
	logger  *slog.Logger
	metrics metrics.OperationMetrics
	cfg     Config
}

var _ Enqueuer = (*Service)(nil)

// NewService connects the pgx pool River runs on.
func NewService(ctx context.Context, cfg Config, logger *slog.Logger, m metrics.OperationMetrics) (*Service, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if m == nil {
		m = metrics.NewNoop()
	}
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = 25
	}
	ctxLogger := logger.With(attr.String("component", "river_queue"))

	start := time.Now()
	m.RecordOperationAttempt(ctx, "initialize_service", serviceName)

	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		m.RecordOperationFailure(ctx, "initialize_service", serviceName)
		return nil, fmt.Errorf("failed to parse DSN: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		m.RecordOperationFailure(ctx, "initialize_service", serviceName)
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		ctxLogger.ErrorContext(ctx, "Failed to ping database for River", attr.Error(err))
		m.RecordOperationFailure(ctx, "initialize_service", serviceName)
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	m.RecordOperationSuccess(ctx, "initialize_service", serviceName)
	m.RecordOperationDuration(ctx, "initialize_service", serviceName, time.Since(start))
	ctxLogger.InfoContext(ctx, "Queue service initialized")

	return &Service{
		pool:    pool,
		workers: river.NewWorkers(),
		logger:  ctxLogger,
		metrics: m,
		cfg:     cfg,
	}, nil
}

// Pool exposes the pgx pool, for migrations.
func (s *Service) Pool() *pgxpool.Pool { return s.pool }

// AddWorker registers a worker. It must be called before Start.
func AddWorker[T river.JobArgs](s *Service, w river.Worker[T]) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client != nil {
		return errors.New("cannot add workers after the queue has started")
	}
	return river.AddWorkerSafely(s.workers, w)
}

// Start builds the River client from the registered workers and starts it.
func (s *Service) Start(ctx context.Context) error {
	start := time.Now()
	s.metrics.RecordOperationAttempt(ctx, "start_service", serviceName)

	client, err := river.NewClient(riverpgxv5.New(s.pool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: s.cfg.MaxWorkers},
		},
		Workers: s.workers,
		Logger:  s.logger,
	})
	if err != nil {
		s.metrics.RecordOperationFailure(ctx, "start_service", serviceName)
		return fmt.Errorf("failed to create River client: %w", err)
	}

	if err := client.Start(ctx); err != nil {
		s.logger.ErrorContext(ctx, "Failed to start River client", attr.Error(err))
		s.metrics.RecordOperationFailure(ctx, "start_service", serviceName)
		return fmt.Errorf("failed to start River client: %w", err)
	}

	s.mu.Lock()
	s.client = client
	s.mu.Unlock()

	s.metrics.RecordOperationSuccess(ctx, "start_service", serviceName)
	s.metrics.RecordOperationDuration(ctx, "start_service", serviceName, time.Since(start))
	s.logger.InfoContext(ctx, "Queue service started")
	return nil
}

// Stop waits for running jobs and closes the pool.
func (s *Service) Stop(ctx context.Context) error {
	s.mu.RLock()
	client := s.client
	s.mu.RUnlock()

	if client != nil {
		if err := client.Stop(ctx); err != nil {
			s.logger.ErrorContext(ctx, "Failed to stop River client", attr.Error(err))
			return fmt.Errorf("failed to stop River client: %w", err)
		}
	}
	if s.pool != nil {
		s.pool.Close()
	}
	s.logger.InfoContext(ctx, "Queue service stopped")
	return nil
}

// Enqueue inserts a job, deduplicated by its arguments.
func (s *Service) Enqueue(ctx context.Context, args river.JobArgs) (int64, error) {
	s.mu.RLock()
	client := s.client
	s.mu.RUnlock()

	if client == nil {
		return 0, ErrNotStarted
	}

	start := time.Now()
	operation := "enqueue_" + args.Kind()
	s.metrics.RecordOperationAttempt(ctx, operation, serviceName)

	res, err := client.Insert(ctx, args, &river.InsertOpts{
		Queue:      river.QueueDefault,
		UniqueOpts: river.UniqueOpts{ByArgs: true},
	})
	if err != nil {
		s.metrics.RecordOperationFailure(ctx, operation, serviceName)
		return 0, fmt.Errorf("failed to insert %s job: %w", args.Kind(), err)
	}

	s.metrics.RecordOperationSuccess(ctx, operation, serviceName)
	s.metrics.RecordOperationDuration(ctx, operation, serviceName, time.Since(start))
	s.logger.InfoContext(ctx, "Job enqueued",
		attr.ExtractCorrelationID(ctx),
		attr.String("job_kind", args.Kind()),
		attr.Int64("job_id", res.Job.ID),
		attr.Bool("unique_skipped", res.UniqueSkippedAsDuplicate),
	)
	return res.Job.ID, nil
}

// HealthCheck pings the pool.
func (s *Service) HealthCheck(ctx context.Context) error {
	if s.pool == nil {
		return errors.New("queue pool is nil")
	}
	if err := s.pool.Ping(ctx); err != nil {
		return fmt.Errorf("queue service health check failed: %w", err)
	}
	return nil
}
