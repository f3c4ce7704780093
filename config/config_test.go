package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	t.Run("Default", func(t *testing.T) {
		cfg := Default()
		assert.Equal(t, 0, cfg.Rolling.Workers)
		assert.False(t, cfg.Rolling.Exact)
		assert.Equal(t, 0, cfg.Rolling.ExactMaxLag)
		assert.Equal(t, int64(0), cfg.Rolling.MaxOutputElems)
		assert.Equal(t, "info", cfg.Logging.Level)
		assert.False(t, cfg.Logging.Development)
	})

	t.Run("Load from environment", func(t *testing.T) {
		t.Setenv("SIGFEAT_WORKERS", "6")
		t.Setenv("SIGFEAT_EXACT", "true")
		t.Setenv("SIGFEAT_EXACT_MAX_LAG", "128")
		t.Setenv("SIGFEAT_MAX_OUTPUT_ELEMS", "1000000")
		t.Setenv("SIGFEAT_LOG_LEVEL", "debug")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 6, cfg.Rolling.Workers)
		assert.True(t, cfg.Rolling.Exact)
		assert.Equal(t, 128, cfg.Rolling.ExactMaxLag)
		assert.Equal(t, int64(1000000), cfg.Rolling.MaxOutputElems)
		assert.Equal(t, "debug", cfg.Logging.Level)
	})

	t.Run("Load rejects malformed values", func(t *testing.T) {
		t.Setenv("SIGFEAT_WORKERS", "not-a-number")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("LoadOrDefault falls back", func(t *testing.T) {
		t.Setenv("SIGFEAT_WORKERS", "not-a-number")
		cfg := LoadOrDefault()
		assert.Equal(t, 0, cfg.Rolling.Workers)
	})
}
