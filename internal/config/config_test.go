package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/msbt/errs"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Default(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "msbt.yaml", `
output: Table
color: false
log:
  level: debug
  file: logs/msbt.log
  maxSizeMB: 5
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, OutputTable, cfg.Output)
	require.False(t, cfg.Color)
	require.True(t, cfg.Sort, "absent key keeps default")
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, filepath.Join(filepath.Dir(path), "logs", "msbt.log"), cfg.Log.File)
	require.Equal(t, 5, cfg.Log.MaxSizeMB)
	require.Equal(t, 7, cfg.Log.MaxAgeDays)
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "msbt.toml", `
output = "json"
sort = false

[log]
level = "info"
max_backups = 1
compress = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, OutputJSON, cfg.Output)
	require.True(t, cfg.Color)
	require.False(t, cfg.Sort)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, 1, cfg.Log.MaxBackups)
	require.True(t, cfg.Log.Compress)
	require.Empty(t, cfg.Log.File)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("Unknown output", func(t *testing.T) {
		_, err := Load(writeFile(t, "bad.yaml", "output: xml\n"))
		require.ErrorIs(t, err, errs.ErrInvalidConfig)
	})

	t.Run("Negative rotation limit", func(t *testing.T) {
		_, err := Load(writeFile(t, "bad.toml", "[log]\nmax_size_mb = -1\n"))
		require.ErrorIs(t, err, errs.ErrInvalidConfig)
	})

	t.Run("Unknown TOML key", func(t *testing.T) {
		_, err := Load(writeFile(t, "bad.toml", "colour = true\n"))
		require.ErrorIs(t, err, errs.ErrInvalidConfig)
	})

	t.Run("Unknown YAML key", func(t *testing.T) {
		_, err := Load(writeFile(t, "bad.yaml", "colour: true\n"))
		require.Error(t, err)
	})

	t.Run("Unsupported extension", func(t *testing.T) {
		_, err := Load(writeFile(t, "msbt.json", "{}"))
		require.ErrorIs(t, err, errs.ErrInvalidConfig)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
