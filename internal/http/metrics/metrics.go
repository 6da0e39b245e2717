// Package metrics is the in-process request/error counter exposed on
// GET /metrics. It is intentionally small; upstream publishing metrics live
// behind the blogs client instead.
package metrics

import "sync"

type Collector struct {
	mu       sync.Mutex
	requests map[string]int64
	errors   map[string]int64
}

func NewCollector() *Collector {
	return &Collector{
		requests: make(map[string]int64),
		errors:   make(map[string]int64),
	}
}

func (c *Collector) ObserveRequest(route string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.requests[route]++
}

func (c *Collector) ObserveError(code string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errors[code]++
}

type Snapshot struct {
	Requests map[string]int64 `json:"requests"`
	Errors   map[string]int64 `json:"errors"`
}

func (c *Collector) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	snap := Snapshot{
		Requests: make(map[string]int64, len(c.requests)),
		Errors:   make(map[string]int64, len(c.errors)),
	}
	for route, count := range c.requests {
		snap.Requests[route] = count
	}
	for code, count := range c.errors {
		snap.Errors[code] = count
	}
	return snap
}
