// Package ratelimiter implements a per-client token bucket, used to keep
// the contact form from being used as a spam cannon.
package ratelimiter

import (
	"sync"
	"time"
)

// bucket is the token bucket for a single client key.
type bucket struct {
	tokens     float64
	capacity   float64
	rate       float64 // tokens per second
	lastRefill time.Time
	mu         sync.Mutex
	timer      *time.Timer
	key        string
	parent     *ClientRateLimiter
}

// ClientRateLimiter manages one bucket per client key (usually an IP).
// Idle buckets expire after expirationTime to bound memory.
type ClientRateLimiter struct {
	buckets        map[string]*bucket
	mu             sync.RWMutex
	rate           float64
	capacity       float64
	expirationTime time.Duration
}

func New(rate float64, capacity float64, expirationTime time.Duration) *ClientRateLimiter {
	return &ClientRateLimiter{
		buckets:        make(map[string]*bucket),
		rate:           rate,
		capacity:       capacity,
		expirationTime: expirationTime,
	}
}

// PerMinute is a convenience constructor for "n requests per minute,
// burst b" limiters.
func PerMinute(n float64, burst float64, expirationTime time.Duration) *ClientRateLimiter {
	return New(n/60.0, burst, expirationTime)
}

func (l *ClientRateLimiter) cleanup(key string) {
	l.mu.Lock()
	delete(l.buckets, key)
	l.mu.Unlock()
}

func (b *bucket) resetTimer() {
	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = time.AfterFunc(b.parent.expirationTime, func() {
		b.parent.cleanup(b.key)
	})
}

func (l *ClientRateLimiter) getBucket(key string) *bucket {
	l.mu.RLock()
	existing, exists := l.buckets[key]
	l.mu.RUnlock()

	if exists {
		existing.resetTimer()
		return existing
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Double-check after acquiring write lock
	existing, exists = l.buckets[key]
	if exists {
		existing.resetTimer()
		return existing
	}

	created := &bucket{
		tokens:     l.capacity,
		capacity:   l.capacity,
		rate:       l.rate,
		lastRefill: time.Now(),
		key:        key,
		parent:     l,
	}
	l.buckets[key] = created
	created.resetTimer()

	return created
}

func (b *bucket) allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(b.lastRefill).Seconds()

	b.tokens += elapsed * b.rate
	if b.tokens > b.capacity {
		b.tokens = b.capacity
	}
	b.lastRefill = now

	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

// Allow reports whether a request from key should pass.
func (l *ClientRateLimiter) Allow(key string) bool {
	return l.getBucket(key).allow()
}

// Stop cancels all expiration timers.
func (l *ClientRateLimiter) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, b := range l.buckets {
		if b.timer != nil {
			b.timer.Stop()
		}
	}
}
