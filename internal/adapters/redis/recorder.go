// Package redis provides a Recorder backed by Redis, for deployments where
// several crabcamera servers share delivery counts.
package redis

import (
	"context"
	"fmt"

	backend "github.com/redis/go-redis/v9"
)

// Recorder implements stats.Recorder using Redis INCR counters.
type Recorder struct {
	client *backend.Client
	prefix string
}

type Option func(*Recorder)

// WithPrefix sets the key prefix for counters.
func WithPrefix(prefix string) Option {
	return func(r *Recorder) {
		r.prefix = prefix
	}
}

// New creates a Recorder connected to the given address.
func New(address, password string, db int, opts ...Option) *Recorder {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a Recorder from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Recorder {
	r := &Recorder{
		client: client,
		prefix: "crabcamera:deliveries:",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Recorder) key(surface string) string {
	return r.prefix + surface
}

func (r *Recorder) totalKey() string {
	return r.prefix + "total"
}

// Record increments the surface counter and the running total atomically.
func (r *Recorder) Record(ctx context.Context, surface string) (int64, error) {
	pipe := r.client.TxPipeline()
	count := pipe.Incr(ctx, r.key(surface))
	pipe.Incr(ctx, r.totalKey())

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to record delivery: %w", err)
	}
	return count.Val(), nil
}

// Total returns the running total across all surfaces.
func (r *Recorder) Total(ctx context.Context) (int64, error) {
	n, err := r.client.Get(ctx, r.totalKey()).Int64()
	if err != nil {
		if err == backend.Nil {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read total: %w", err)
	}
	return n, nil
}

// Close releases the underlying client.
func (r *Recorder) Close() error {
	return r.client.Close()
}
