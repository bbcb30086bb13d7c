package metrics

import (
	"sync/atomic"
	"time"
)

// Collector keeps lightweight in-process request counters. Calculations
// are stateless so request counts are the only operational signal the
// service maintains.
type Collector struct {
	totalRequests   uint64
	clientErrors    uint64
	serverErrors    uint64
	totalDurationMs uint64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) Record(status int, duration time.Duration) {
	atomic.AddUint64(&c.totalRequests, 1)
	if status >= 400 && status < 500 {
		atomic.AddUint64(&c.clientErrors, 1)
	}
	if status >= 500 {
		atomic.AddUint64(&c.serverErrors, 1)
	}
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))
}

func (c *Collector) Snapshot() map[string]any {
	total := atomic.LoadUint64(&c.totalRequests)
	snapshot := map[string]any{
		"totalRequests": total,
		"clientErrors":  atomic.LoadUint64(&c.clientErrors),
		"serverErrors":  atomic.LoadUint64(&c.serverErrors),
	}
	if total > 0 {
		snapshot["avgDurationMs"] = atomic.LoadUint64(&c.totalDurationMs) / total
	}
	return snapshot
}
