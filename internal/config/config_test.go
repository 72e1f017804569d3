package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	v := viper.New()
	Init(v, "")
	cfg, err := Load(v)

	require.NoError(t, err)
	assert.Equal(t, "origin", cfg.Remote)
	assert.Equal(t, 10, cfg.CommitCount)
	assert.Equal(t, 10, cfg.PRLimit)
	assert.Equal(t, BackendCLI, cfg.HistoryBackend)
	assert.Equal(t, ForceWithLease, cfg.ForceMode)
	assert.False(t, cfg.NoColor)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "githelper.yaml")
	require.NoError(t, os.WriteFile(path, []byte("remote: upstream\ncommit-count: 25\nforce-mode: force\n"), 0o644))
	t.Setenv("GITHELPER_PR_LIMIT", "3")
	t.Setenv("GITHELPER_HISTORY_BACKEND", "native")

	v := viper.New()
	Init(v, path)
	cfg, err := Load(v)

	require.NoError(t, err)
	assert.Equal(t, "upstream", cfg.Remote)
	assert.Equal(t, 25, cfg.CommitCount)
	assert.Equal(t, Force, cfg.ForceMode)
	assert.Equal(t, 3, cfg.PRLimit)
	assert.Equal(t, BackendNative, cfg.HistoryBackend)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad backend", "history-backend: svn\n"},
		{"bad force mode", "force-mode: yolo\n"},
		{"zero count", "commit-count: 0\n"},
		{"empty remote", "remote: \"\"\n"},
		{"broken yaml", "remote: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "c.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			v := viper.New()
			Init(v, path)
			_, err := Load(v)

			assert.Error(t, err)
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "origin", cfg.Remote)
	assert.NoError(t, cfg.Validate())
}

// chdir changes the working directory for the duration of the test
// (stand-in for testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
