package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
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

func TestKeyedLimiter_Allow(t *testing.T) {
	t.Run("allows up to the per minute budget", func(t *testing.T) {
		clock := newFakeClock()
		l := NewKeyedLimiter(60, WithClock(clock))

		for i := range 60 {
			require.True(t, l.Allow("10.0.0.1"), "request %d should be allowed", i)
		}
		assert.False(t, l.Allow("10.0.0.1"))
	})

	t.Run("refills over time", func(t *testing.T) {
		clock := newFakeClock()
		l := NewKeyedLimiter(60, WithClock(clock))

		for range 60 {
			l.Allow("10.0.0.1")
		}
		require.False(t, l.Allow("10.0.0.1"))

		clock.Advance(time.Second)
		assert.True(t, l.Allow("10.0.0.1"))
		assert.False(t, l.Allow("10.0.0.1"))

		clock.Advance(time.Minute)
		for range 60 {
			assert.True(t, l.Allow("10.0.0.1"))
		}
	})

	t.Run("keys are isolated", func(t *testing.T) {
		clock := newFakeClock()
		l := NewKeyedLimiter(1, WithClock(clock))

		assert.True(t, l.Allow("a"))
		assert.False(t, l.Allow("a"))
		assert.True(t, l.Allow("b"))
	})

	t.Run("non positive budget disables limiting", func(t *testing.T) {
		l := NewKeyedLimiter(0)
		for range 1000 {
			require.True(t, l.Allow("a"))
		}
		assert.Equal(t, 0, l.Tracked())
	})
}

func TestKeyedLimiter_Sweep(t *testing.T) {
	clock := newFakeClock()
	l := NewKeyedLimiter(10, WithClock(clock), WithIdleTTL(time.Minute))

	l.Allow("idle")
	clock.Advance(45 * time.Second)
	l.Allow("active")
	require.Equal(t, 2, l.Tracked())

	clock.Advance(30 * time.Second)
	removed := l.Sweep()
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, l.Tracked())

	// an evicted key starts over with a full budget
	for range 10 {
		assert.True(t, l.Allow("idle"))
	}
}

func TestKeyedLimiter_Run(t *testing.T) {
	clock := newFakeClock()
	l := NewKeyedLimiter(10, WithClock(clock), WithIdleTTL(time.Nanosecond))
	l.Allow("a")
	clock.Advance(time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		l.Run(ctx, time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return l.Tracked() == 0 }, time.Second, time.Millisecond)
	cancel()
	<-done
}

func TestKeyedLimiter_Concurrent(t *testing.T) {
	clock := newFakeClock()
	l := NewKeyedLimiter(50, WithClock(clock))

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowed := 0
	for range 200 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.Allow("shared") {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, allowed)
}
