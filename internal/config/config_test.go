package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"gitward.dev/gitward/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("reads all fields", func(t *testing.T) {
		path := writeConfig(t, `
tool: /usr/local/bin/git
timeoutSeconds: 120
debug: true
logFile: /tmp/gitward.log
`)

		cfg, err := config.Load(path)
		require.NoError(t, err)
		require.Equal(t, "/usr/local/bin/git", cfg.Tool)
		require.Equal(t, 120, cfg.TimeoutSeconds)
		require.True(t, cfg.Debug)
		require.Equal(t, "/tmp/gitward.log", cfg.LogFile)
	})

	t.Run("returns the zero config for a missing file", func(t *testing.T) {
		cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		require.Equal(t, &config.Config{}, cfg)
	})

	t.Run("returns the zero config for an empty path", func(t *testing.T) {
		cfg, err := config.Load("")
		require.NoError(t, err)
		require.Equal(t, &config.Config{}, cfg)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		path := writeConfig(t, "tool: [unclosed")

		_, err := config.Load(path)
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to parse config file")
	})
}

func TestTimeout(t *testing.T) {
	t.Run("converts configured seconds to a duration", func(t *testing.T) {
		cfg := &config.Config{TimeoutSeconds: 90}
		require.Equal(t, 90*time.Second, cfg.Timeout())
	})

	t.Run("treats unset and negative values as zero", func(t *testing.T) {
		require.Zero(t, (&config.Config{}).Timeout())
		require.Zero(t, (&config.Config{TimeoutSeconds: -5}).Timeout())
	})
}
