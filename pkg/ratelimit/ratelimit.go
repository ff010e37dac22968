package ratelimit

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/kasuboski/streamportal/pkg/cache"
	"golang.org/x/time/rate"
)

// DefaultIdleTTL is how long a client key may stay unused before Sweep evicts it
const DefaultIdleTTL = 10 * time.Minute

// Limiter decides whether a client identified by key may make another request
type Limiter interface {
	Allow(key string) bool
}

// Clock returns the current time. Tests substitute a fake.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

type entry struct {
	limiter *rate.Limiter
	// unix nanos of the last Allow call
	lastSeen atomic.Int64
}

// KeyedLimiter allows requestsPerMinute requests per key with a burst of the same size.
// Tokens refill continuously, so a client that used its whole budget regains one
// request every minute/requestsPerMinute.
type KeyedLimiter struct {
	clients *cache.Cache[string, *entry]
	clock   Clock
	limit   rate.Limit
	burst   int
	idleTTL time.Duration
}

type Option func(*KeyedLimiter)

// WithClock replaces the wall clock
func WithClock(c Clock) Option {
	return func(l *KeyedLimiter) {
		l.clock = c
	}
}

// WithIdleTTL sets how long an unused key is retained
func WithIdleTTL(ttl time.Duration) Option {
	return func(l *KeyedLimiter) {
		l.idleTTL = ttl
	}
}

// NewKeyedLimiter creates a limiter. A non-positive requestsPerMinute disables limiting.
func NewKeyedLimiter(requestsPerMinute int, opts ...Option) *KeyedLimiter {
	l := &KeyedLimiter{
		clients: cache.New[string, *entry](),
		clock:   systemClock{},
		limit:   rate.Inf,
		burst:   requestsPerMinute,
		idleTTL: DefaultIdleTTL,
	}
	if requestsPerMinute > 0 {
		l.limit = rate.Every(time.Minute / time.Duration(requestsPerMinute))
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Allow reports whether key may make a request now and consumes a token if so
func (l *KeyedLimiter) Allow(key string) bool {
	if l.limit == rate.Inf {
		return true
	}

	now := l.clock.Now()
	e := l.clients.GetOrSet(key, func() *entry {
		return &entry{limiter: rate.NewLimiter(l.limit, l.burst)}
	})

	e.lastSeen.Store(now.UnixNano())
	return e.limiter.AllowN(now, 1)
}

// Sweep evicts keys that have been idle longer than the configured ttl
func (l *KeyedLimiter) Sweep() int {
	now := l.clock.Now()
	return l.clients.DeleteFunc(func(_ string, e *entry) bool {
		return now.Sub(time.Unix(0, e.lastSeen.Load())) > l.idleTTL
	})
}

// Run sweeps idle keys every interval until ctx is done
func (l *KeyedLimiter) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Sweep()
		}
	}
}

// Tracked returns the number of client keys currently held
func (l *KeyedLimiter) Tracked() int {
	return l.clients.Size()
}
