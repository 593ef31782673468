// Package stats counts report deliveries per surface (cli, http, mcp).
// Recording is strictly a side channel: it never influences the report
// bytes, which stay deterministic.
package stats

import (
	"context"
	"sync"
)

// Recorder accumulates delivery counts.
type Recorder interface {
	// Record increments the count for a surface and returns its new value.
	Record(ctx context.Context, surface string) (int64, error)
	// Total returns the count of all deliveries across surfaces.
	Total(ctx context.Context) (int64, error)
}

// MemoryRecorder is the default in-process Recorder.
type MemoryRecorder struct {
	mu       sync.Mutex
	surfaces map[string]int64
	total    int64
}

// NewMemoryRecorder creates an empty in-memory recorder.
func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{surfaces: make(map[string]int64)}
}

func (m *MemoryRecorder) Record(ctx context.Context, surface string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.surfaces[surface]++
	m.total++
	return m.surfaces[surface], nil
}

func (m *MemoryRecorder) Total(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.total, nil
}
