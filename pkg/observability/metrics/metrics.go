// Package metrics records service operation metrics.
package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// OperationMetrics is implemented by every module's metrics recorder.
type OperationMetrics interface {
	RecordOperationAttempt(ctx context.Context, operation, service string)
	RecordOperationSuccess(ctx context.Context, operation, service string)
	RecordOperationFailure(ctx context.Context, operation, service string)
	RecordOperationDuration(ctx context.Context, operation, service string, duration time.Duration)
}

// Collectors holds the Prometheus vectors shared by all modules.
type Collectors struct {
	attempts  *prometheus.CounterVec
	successes *prometheus.CounterVec
	failures  *prometheus.CounterVec
	duration  *prometheus.HistogramVec
}

var labels = []string{"module", "service", "operation"}

// NewCollectors creates and registers the operation collectors.
func NewCollectors(reg prometheus.Registerer) (*Collectors, error) {
	c := &Collectors{
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pinball_bot",
			Name:      "operation_attempts_total",
			Help:      "Service operations started.",
		}, labels),
		successes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pinball_bot",
			Name:      "operation_success_total",
			Help:      "Service operations that completed without an infrastructure error.",
		}, labels),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pinball_bot",
			Name:      "operation_failures_total",
			Help:      "Service operations that returned an error or panicked.",
		}, labels),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "pinball_bot",
			Name:      "operation_duration_seconds",
			Help:      "Service operation latency.",
			Buckets:   prometheus.DefBuckets,
		}, labels),
	}

	for _, col := range []prometheus.Collector{c.attempts, c.successes, c.failures, c.duration} {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("failed to register operation collector: %w", err)
		}
	}
	return c, nil
}

// ForModule returns a recorder that labels every observation with module.
func (c *Collectors) ForModule(module string) OperationMetrics {
	return &moduleMetrics{module: module, c: c}
}

type moduleMetrics struct {
	module string
	c      *Collectors
}

func (m *moduleMetrics) RecordOperationAttempt(_ context.Context, operation, service string) {
	m.c.attempts.WithLabelValues(m.module, service, operation).Inc()
}

func (m *moduleMetrics) RecordOperationSuccess(_ context.Context, operation, service string) {
	m.c.successes.WithLabelValues(m.module, service, operation).Inc()
}

func (m *moduleMetrics) RecordOperationFailure(_ context.Context, operation, service string) {
	m.c.failures.WithLabelValues(m.module, service, operation).Inc()
}

func (m *moduleMetrics) RecordOperationDuration(_ context.Context, operation, service string, duration time.Duration) {
	m.c.duration.WithLabelValues(m.module, service, operation).Observe(duration.Seconds())
}

// NoOpMetrics discards everything.
type NoOpMetrics struct{}

// NewNoop returns a recorder that discards everything.
func NewNoop() OperationMetrics { return &NoOpMetrics{} }

func (*NoOpMetrics) RecordOperationAttempt(context.Context, string, string)                 {}
func (*NoOpMetrics) RecordOperationSuccess(context.Context, string, string)                 {}
func (*NoOpMetrics) RecordOperationFailure(context.Context, string, string)                 {}
func (*NoOpMetrics) RecordOperationDuration(context.Context, string, string, time.Duration) {}
