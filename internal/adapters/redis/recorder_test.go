package redis_test

import (
	"context"
	"testing"

	"github.com/Seif10284/crabcamera/internal/adapters/redis"
	"github.com/Seif10284/crabcamera/internal/stats"
	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecorder(t *testing.T, opts ...redis.Option) *redis.Recorder {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	return redis.NewFromClient(client, opts...)
}

func TestRedisRecorder_Contract(t *testing.T) {
	rec := newTestRecorder(t)
	stats.RunRecorderContract(t, rec)
}

func TestRedisRecorder_Prefix(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	rec := redis.NewFromClient(client, redis.WithPrefix("custom:"))

	ctx := context.Background()
	_, err = rec.Record(ctx, "http")
	require.NoError(t, err)

	got, err := mr.Get("custom:http")
	require.NoError(t, err)
	assert.Equal(t, "1", got)

	got, err = mr.Get("custom:total")
	require.NoError(t, err)
	assert.Equal(t, "1", got)
}
