package stats

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunRecorderContract runs a suite of tests to verify that a Recorder
// implementation adheres to the interface contract. The recorder must be
// empty when passed in.
func RunRecorderContract(t *testing.T, r Recorder) {
	ctx := context.Background()

	t.Run("Empty Total", func(t *testing.T) {
		total, err := r.Total(ctx)
		require.NoError(t, err)
		assert.Zero(t, total)
	})

	t.Run("Record Increments Per Surface", func(t *testing.T) {
		n, err := r.Record(ctx, "cli")
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		n, err = r.Record(ctx, "cli")
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)

		n, err = r.Record(ctx, "http")
		require.NoError(t, err)
		assert.Equal(t, int64(1), n, "surfaces count independently")
	})

	t.Run("Total Spans Surfaces", func(t *testing.T) {
		total, err := r.Total(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
	})
}
