package crabcamera_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Seif10284/crabcamera"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemonstrate(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, crabcamera.Demonstrate(&buf))

	out := buf.String()
	assert.NotEmpty(t, out)
	assert.True(t, strings.Contains(strings.SplitN(out, "\n", 2)[0], "CRABCAMERA"))
}

func TestDemonstrateIdempotent(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, crabcamera.Demonstrate(&a))
	require.NoError(t, crabcamera.Demonstrate(&b))

	assert.Equal(t, a.String(), b.String())
	assert.Equal(t, a.String(), crabcamera.Report())
}

func TestCommands(t *testing.T) {
	cmds := crabcamera.Commands()
	require.Len(t, cmds, 10)
	assert.Equal(t, "initialize_camera_system", cmds[0].Name)
	assert.Equal(t, "request_camera_permission", cmds[9].Name)
}
