package utils

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	config := DefaultConfig()
	assert.Equal(t, 30, config.Rows)
	assert.Equal(t, 60, config.Cols)
	assert.Equal(t, 150*time.Millisecond, config.FrameRate)
	assert.Equal(t, 0.15, config.Density)
	assert.Empty(t, config.Pattern)
	assert.Zero(t, config.Seed)
	assert.Equal(t, 1000, config.MaxGenerations)
	assert.True(t, config.AutoRestart)
	assert.Equal(t, 5, config.StagnationThreshold)
}

func TestLoadConfig_MissingFileFallsBackToDefaults(t *testing.T) {
	t.Parallel()

	config, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestLoadConfig_ValidFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.json")
	data := `{
		"rows": 12,
		"cols": 34,
		"frame_rate": 50000000,
		"density": 0.25,
		"pattern": "glider",
		"seed": 42,
		"max_generations": 0,
		"auto_restart": false,
		"stagnation_threshold": 9
	}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 12, config.Rows)
	assert.Equal(t, 34, config.Cols)
	assert.Equal(t, 50*time.Millisecond, config.FrameRate)
	assert.Equal(t, 0.25, config.Density)
	assert.Equal(t, "glider", config.Pattern)
	assert.Equal(t, int64(42), config.Seed)
	assert.Zero(t, config.MaxGenerations)
	assert.False(t, config.AutoRestart)
	assert.Equal(t, 9, config.StagnationThreshold)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"rows": 50}`), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 50, config.Rows)
	assert.Equal(t, 60, config.Cols)
	assert.Equal(t, 150*time.Millisecond, config.FrameRate)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestBind_FlagsOverrideConfig(t *testing.T) {
	t.Parallel()

	config := DefaultConfig()
	fs := flag.NewFlagSet("golife", flag.ContinueOnError)
	config.Bind(fs)

	require.NoError(t, fs.Parse([]string{
		"-rows", "44",
		"-pattern", "pulsar",
		"-frame-rate", "75ms",
		"-seed", "1234",
		"-auto-restart=false",
	}))

	assert.Equal(t, 44, config.Rows)
	assert.Equal(t, "pulsar", config.Pattern)
	assert.Equal(t, 75*time.Millisecond, config.FrameRate)
	assert.Equal(t, int64(1234), config.Seed)
	assert.False(t, config.AutoRestart)

	// Unparsed flags keep their config values.
	assert.Equal(t, 60, config.Cols)
	assert.Equal(t, 0.15, config.Density)
}
