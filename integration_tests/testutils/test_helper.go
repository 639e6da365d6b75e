//go:build integration

package testutils

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riverqueue/river"
)

// WaitFor polls check until it returns nil or the timeout passes.
func WaitFor(timeout, interval time.Duration, check func() error) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			// Check one last time before returning timeout error
			if err := check(); err == nil {
				return nil
			}
			return fmt.Errorf("timed out waiting: %w", ctx.Err())
		case <-ticker.C:
			if err := check(); err == nil {
				return nil
			}
		}
	}
}

// TestLogger writes debug logs to the test output.
func TestLogger(t *testing.T) *slog.Logger {
	return slog.New(slog.NewTextHandler(testWriter{t: t}, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// testWriter wraps a testing.T to implement io.Writer for slog
type testWriter struct {
	t *testing.T
}

func (tw testWriter) Write(p []byte) (n int, err error) {
	tw.t.Log(string(p))
	return len(p), nil
}

// RecordingEnqueuer keeps the jobs a service would have inserted.
type RecordingEnqueuer struct {
	mu   sync.Mutex
	next atomic.Int64
	jobs []river.JobArgs
}

func (r *RecordingEnqueuer) Enqueue(_ context.Context, args river.JobArgs) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs = append(r.jobs, args)
	return r.next.Add(1), nil
}

// Kinds lists the recorded job kinds in insertion order.
func (r *RecordingEnqueuer) Kinds() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	kinds := make([]string, len(r.jobs))
	for i, j := range r.jobs {
		kinds[i] = j.Kind()
	}
	return kinds
}

// Jobs returns a copy of the recorded jobs.
func (r *RecordingEnqueuer) Jobs() []river.JobArgs {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]river.JobArgs(nil), r.jobs...)
}

// JobsOf returns the recorded jobs of type T.
func JobsOf[T river.JobArgs](r *RecordingEnqueuer) []T {
	var out []T
	for _, j := range r.Jobs() {
		if typed, ok := j.(T); ok {
			out = append(out, typed)
		}
	}
	return out
}
