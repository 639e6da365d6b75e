//go:build integration

package testutils

import (
	"context"
	"log"
	"sync"
	"testing"
	"time"
)

// SharedEnv lazily starts one environment per test package.
type SharedEnv struct {
	once sync.Once
	env  *TestEnvironment
	err  error
}

// Get starts the environment on first use and resets the database.
func (s *SharedEnv) Get(t *testing.T) *TestEnvironment {
	t.Helper()

	s.once.Do(func() {
		log.Println("Initializing test environment...")
		s.env, s.err = NewTestEnvironment(t)
		if s.err != nil {
			log.Printf("Failed to set up test environment: %v", s.err)
		}
	})
	if s.err != nil {
		t.Fatalf("Test environment initialization failed: %v", s.err)
	}
	if s.env == nil {
		t.Fatalf("Test environment not initialized")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.env.ResetDatabase(ctx); err != nil {
		t.Fatalf("Failed to reset environment: %v", err)
	}
	return s.env
}

// Cleanup tears the environment down if it was started.
func (s *SharedEnv) Cleanup() {
	if s.env != nil {
		s.env.Cleanup()
	}
}
