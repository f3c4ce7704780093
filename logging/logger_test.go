package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	t.Run("New with valid levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error"} {
			cfg := DefaultConfig()
			cfg.Level = level
			logger, err := New(cfg)
			require.NoError(t, err, "level %s", level)
			assert.NotNil(t, logger.Logger)
		}
	})

	t.Run("New rejects unknown level", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Level = "verbose"
		_, err := New(cfg)
		assert.Error(t, err)
	})

	t.Run("Constructors never return nil", func(t *testing.T) {
		assert.NotNil(t, NewDefault())
		assert.NotNil(t, NewDevelopment())
		assert.NotNil(t, NewNop())
	})
}
