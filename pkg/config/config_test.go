package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 5, cfg.Count)
	assert.Equal(t, 123, cfg.IntValue)
	assert.Equal(t, 123, cfg.RecordA)
	assert.Equal(t, 234, cfg.RecordB)
	assert.Equal(t, 69, cfg.RecordOffset)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	t.Setenv("PTRDEMO_TRACE", "")
	t.Setenv("PTRDEMO_COUNT", "")

	t.Run("empty path gives defaults", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("missing file gives defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("file overrides some fields", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ptrdemo.yaml")
		require.NoError(t, os.WriteFile(path, []byte("count: 3\nrecord_offset: 100\n"), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.Count)
		assert.Equal(t, 100, cfg.RecordOffset)
		assert.Equal(t, 123, cfg.IntValue)
	})

	t.Run("bad yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("count: [\n"), 0644))

		_, err := Load(path)
		assert.ErrorContains(t, err, "failed to parse config")
	})

	t.Run("invalid count", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "zero.yaml")
		require.NoError(t, os.WriteFile(path, []byte("count: 0\n"), 0644))

		_, err := Load(path)
		assert.ErrorContains(t, err, "count must be at least 1")
	})
}

func TestEnvOverrides(t *testing.T) {
	t.Run("PTRDEMO_TRACE sets trace file", func(t *testing.T) {
		t.Setenv("PTRDEMO_TRACE", "other.trace")
		t.Setenv("PTRDEMO_COUNT", "")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "other.trace", cfg.TraceFile)
	})

	t.Run("PTRDEMO_COUNT overrides file", func(t *testing.T) {
		t.Setenv("PTRDEMO_TRACE", "")
		t.Setenv("PTRDEMO_COUNT", "7")

		path := filepath.Join(t.TempDir(), "ptrdemo.yaml")
		require.NoError(t, os.WriteFile(path, []byte("count: 3\n"), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 7, cfg.Count)
	})

	t.Run("PTRDEMO_COUNT must be a number", func(t *testing.T) {
		t.Setenv("PTRDEMO_COUNT", "many")

		cfg := Default()
		err := cfg.applyEnvOverrides()
		assert.ErrorContains(t, err, `invalid PTRDEMO_COUNT "many"`)
	})
}
