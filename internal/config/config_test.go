package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/patrol/internal/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	require.Zero(t, cfg.Workers)
	require.True(t, cfg.Color)
	require.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad(t *testing.T) {
	cfg, err := config.Load(strings.NewReader(`
workers: 4
max_steps: 1000
color: false
log:
  level: debug
  format: json
`))
	require.NoError(t, err)
	require.Equal(t, config.Config{
		Workers:  4,
		MaxSteps: 1000,
		Color:    false,
		Log:      config.LogConfig{Level: "debug", Format: "json"},
	}, cfg)
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	cfg, err := config.Load(strings.NewReader("workers: 2\n"))
	require.NoError(t, err)
	require.Equal(t, 2, cfg.Workers)
	require.True(t, cfg.Color)
	require.Equal(t, "console", cfg.Log.Format)
}

func TestLoad_Empty(t *testing.T) {
	cfg, err := config.Load(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("PATROL_TEST_WORKERS", "3")
	cfg, err := config.Load(strings.NewReader("workers: ${PATROL_TEST_WORKERS}\nlog:\n  level: ${PATROL_TEST_UNSET:-error}\n"))
	require.NoError(t, err)
	require.Equal(t, 3, cfg.Workers)
	require.Equal(t, "error", cfg.Log.Level)
}

func TestLoad_Invalid(t *testing.T) {
	for name, in := range map[string]string{
		"NegativeWorkers": "workers: -1\n",
		"NegativeSteps":   "max_steps: -5\n",
		"BadLevel":        "log:\n  level: loud\n",
		"BadFormat":       "log:\n  format: xml\n",
		"UnknownKey":      "threads: 4\n",
		"NotYAML":         "workers: [\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(strings.NewReader(in))
			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "patrol.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: 8\n"), 0o600))

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, 8, cfg.Workers)

	_, err = config.LoadFile(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, config.ErrConfigNotFound)

	_, err = config.LoadFile(dir)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}
