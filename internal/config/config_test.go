package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Seif10284/crabcamera/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "serve.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadServe(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		want    config.Serve
		wantErr bool
	}{
		{
			name: "full config",
			yaml: "port: 9090\nredis_addr: localhost:6379\nredis_db: 2\nredis_prefix: 'demo:'\ndebug: true\n",
			want: config.Serve{Port: 9090, RedisAddr: "localhost:6379", RedisDB: 2, RedisPrefix: "demo:", Debug: true},
		},
		{
			name: "defaults fill missing keys",
			yaml: "debug: true\n",
			want: config.Serve{Port: 8080, Debug: true},
		},
		{
			name: "weakly typed port",
			yaml: `port: "3000"` + "\n",
			want: config.Serve{Port: 3000},
		},
		{
			name:    "unknown key rejected",
			yaml:    "prot: 8080\n",
			wantErr: true,
		},
		{
			name:    "malformed yaml",
			yaml:    "port: [\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := config.LoadServe(writeConfig(t, tt.yaml))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadServeMissingFile(t *testing.T) {
	_, err := config.LoadServe(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
