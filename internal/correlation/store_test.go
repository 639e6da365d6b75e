package correlation

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestStore_TakeRemoves(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	s := NewStore(time.Minute, WithClock[string](clock.Now))

	s.Put("user-1", "https://cdn.example/shot.png")

	v, ok := s.Peek("user-1")
	assert.True(t, ok)
	assert.Equal(t, "https://cdn.example/shot.png", v)

	v, ok = s.Take("user-1")
	assert.True(t, ok)
	assert.Equal(t, "https://cdn.example/shot.png", v)

	_, ok = s.Take("user-1")
	assert.False(t, ok)
}

func TestStore_Expiry(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	s := NewStore(time.Minute, WithClock[string](clock.Now))

	s.Put("a", "1")
	s.Put("b", "2")
	clock.Advance(30 * time.Second)
	s.Put("b", "3")
	clock.Advance(45 * time.Second)

	_, ok := s.Peek("a")
	assert.False(t, ok)
	v, ok := s.Peek("b")
	assert.True(t, ok)
	assert.Equal(t, "3", v)

	assert.Equal(t, 1, s.Sweep())
	assert.Equal(t, 1, s.Len())
}

func TestStore_RunStopsWithContext(t *testing.T) {
	s := NewStore[int](time.Millisecond)
	s.Put("k", 1)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx, time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return s.Len() == 0 }, time.Second, 5*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
