package middleware

import (
	"sync"
	"time"
)

// MemoryLimiter is the default fixed-window limiter. It suffices for a
// single instance; multi-instance deployments configure the redis limiter
// instead.
type MemoryLimiter struct {
	mu      sync.Mutex
	windows map[string]*window
}

type window struct {
	count int
	until time.Time
}

func NewMemoryLimiter() *MemoryLimiter {
	return &MemoryLimiter{windows: make(map[string]*window)}
}

func (l *MemoryLimiter) Allow(key string, limit int, windowLen time.Duration) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := time.Now()
	l.prune(now)
	current, ok := l.windows[key]
	if !ok || now.After(current.until) {
		l.windows[key] = &window{count: 1, until: now.Add(windowLen)}
		return true
	}
	if current.count >= limit {
		return false
	}
	current.count++
	return true
}

// prune drops expired windows so the map does not grow unbounded across a
// long-lived process.
func (l *MemoryLimiter) prune(now time.Time) {
	if len(l.windows) < 4096 {
		return
	}
	for key, current := range l.windows {
		if now.After(current.until) {
			delete(l.windows, key)
		}
	}
}
