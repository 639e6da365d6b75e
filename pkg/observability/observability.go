// Package observability builds the process logger, tracer and metrics registry.
package observability

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Black-And-White-Club/pinball-bot/pkg/observability/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Config controls observability setup.
type Config struct {
	ServiceName    string
	Environment    string
	Version        string
	LogLevel       string
	MetricsEnabled bool
}

// Provider owns the logger.
type Provider struct {
	Logger *slog.Logger
}

// Registry owns tracing and metrics.
type Registry struct {
	Tracer     trace.Tracer
	Prometheus *prometheus.Registry
	Operations *metrics.Collectors
}

// Observability bundles what modules need for logs, traces and metrics.
type Observability struct {
	Provider *Provider
	Registry *Registry
}

// Init builds observability from cfg writing logs to stdout.
func Init(cfg Config) (Observability, error) {
	return InitWithWriter(cfg, os.Stdout)
}

// InitWithWriter is Init with an explicit log destination.
func InitWithWriter(cfg Config, w io.Writer) (Observability, error) {
	if cfg.ServiceName == "" {
		cfg.ServiceName = "pinball-bot"
	}

	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: parseLevel(cfg.LogLevel),
	})).With(
		slog.String("service", cfg.ServiceName),
		slog.String("environment", cfg.Environment),
		slog.String("version", cfg.Version),
	)

	reg := prometheus.NewRegistry()
	var ops *metrics.Collectors
	if cfg.MetricsEnabled {
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		var err error
		ops, err = metrics.NewCollectors(reg)
		if err != nil {
			return Observability{}, fmt.Errorf("failed to init metrics: %w", err)
		}
	}

	return Observability{
		Provider: &Provider{Logger: logger},
		Registry: &Registry{
			Tracer:     otel.Tracer(cfg.ServiceName),
			Prometheus: reg,
			Operations: ops,
		},
	}, nil
}

// NewNoop returns observability that discards logs, spans and metrics.
func NewNoop() Observability {
	return Observability{
		Provider: &Provider{Logger: NoOpLogger},
		Registry: &Registry{
			Tracer:     noop.NewTracerProvider().Tracer("noop"),
			Prometheus: prometheus.NewRegistry(),
		},
	}
}

// ModuleMetrics returns the operation recorder for module, or a no-op when
// metrics are disabled.
func (o Observability) ModuleMetrics(module string) metrics.OperationMetrics {
	if o.Registry == nil || o.Registry.Operations == nil {
		return metrics.NewNoop()
	}
	return o.Registry.Operations.ForModule(module)
}

// NoOpLogger discards every record.
var NoOpLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
