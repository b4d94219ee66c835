// Package metrics provides a small interface for counting engine
// activity, with a collection type that fans out to any number of
// backends.
package metrics

import (
	"context"
	"sync"
)

// Metrics defines the counters the engine reports.
// Implementations can forward to Prometheus, logs, or test recorders.
type Metrics interface {
	// IncrementCounter increments a counter metric by the specified value.
	IncrementCounter(ctx context.Context, name string, value uint64) error
}

// Counter names reported by the engine.
const (
	CounterRequestsProcessed = "requests_processed"
	CounterRequestsFailed    = "requests_failed"
	CounterSwaps             = "swaps"
	CounterDeposits          = "deposits"
	CounterPoolsInitialized  = "pools_initialized"
)

// Collection manages multiple Metrics implementations and delegates
// calls to all of them.
type Collection struct {
	metrics []Metrics
	mu      sync.RWMutex
}

// NewCollection creates a new Collection with the given metrics implementations.
func NewCollection(metrics ...Metrics) *Collection {
	return &Collection{
		metrics: metrics,
	}
}

// Add adds a new Metrics implementation to the collection.
func (c *Collection) Add(m Metrics) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.metrics = append(c.metrics, m)
}

// IncrementCounter increments a counter across all implementations.
func (c *Collection) IncrementCounter(ctx context.Context, name string, value uint64) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, m := range c.metrics {
		if err := m.IncrementCounter(ctx, name, value); err != nil {
			return err
		}
	}
	return nil
}

// InMemory is a Metrics implementation that accumulates counters in a
// map. Useful for tests and local inspection.
type InMemory struct {
	mu       sync.Mutex
	counters map[string]uint64
}

// NewInMemory creates a new in-memory metrics recorder.
func NewInMemory() *InMemory {
	return &InMemory{
		counters: make(map[string]uint64),
	}
}

// IncrementCounter implements Metrics.
func (m *InMemory) IncrementCounter(_ context.Context, name string, value uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[name] += value
	return nil
}

// Counter returns the current value of a counter.
func (m *InMemory) Counter(name string) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counters[name]
}
