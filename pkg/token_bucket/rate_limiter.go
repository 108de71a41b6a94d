// Package token_bucket - локальный ограничитель частоты запросов к API леджера.
package token_bucket

import (
	"sync"
	"time"

	"laundry/pkg/clock"
)

type Limiter interface {
	Allow() bool
}

type Option func(*TokenBucket)

// WithClock подменяет источник времени (в тестах - замороженные часы).
func WithClock(c clock.Clock) Option {
	return func(t *TokenBucket) {
		t.clock = c
	}
}

// TokenBucket выдаёт capacity токенов сразу и пополняется на refillRate
// токенов в секунду, не превышая capacity.
type TokenBucket struct {
	mu         sync.Mutex
	clock      clock.Clock
	capacity   int
	tokens     int
	refillRate float64
	lastRefill time.Time
}

func NewTokenBucket(capacity int, refillRate float64, opts ...Option) *TokenBucket {
	tb := &TokenBucket{
		clock:      clock.New(),
		capacity:   capacity,
		tokens:     capacity,
		refillRate: refillRate,
	}
	for _, opt := range opts {
		opt(tb)
	}
	tb.lastRefill = tb.clock.Now()

	return tb
}

func (t *TokenBucket) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill()

	if t.tokens > 0 {
		t.tokens--
		return true
	}
	return false
}

func (t *TokenBucket) refill() {
	now := t.clock.Now()
	elapsed := now.Sub(t.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}

	// lastRefill сдвигается только при целом токене, дробный остаток копится
	tokensToAdd := int(elapsed * t.refillRate)
	if tokensToAdd > 0 {
		t.tokens = min(t.tokens+tokensToAdd, t.capacity)
		t.lastRefill = now
	}
}
