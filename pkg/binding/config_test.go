package binding_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formval/pkg/binding"
)

func TestLoadConfig(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		t.Setenv("FORMVAL_DEBOUNCE_DELAY", "")
		t.Setenv("FORMVAL_HIDE_FEEDBACK", "")
		t.Setenv("FORMVAL_HIDE_DESCRIPTIONS", "")

		cfg, err := binding.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 1500*time.Millisecond, cfg.DebounceDelay)
		assert.False(t, cfg.HideFeedback)
		assert.False(t, cfg.HideDescriptions)
		assert.Empty(t, cfg.FailureFeedback)
	})

	t.Run("reads values from the environment", func(t *testing.T) {
		t.Setenv("FORMVAL_DEBOUNCE_DELAY", "250ms")
		t.Setenv("FORMVAL_HIDE_FEEDBACK", "true")
		t.Setenv("FORMVAL_HIDE_DESCRIPTIONS", "true")
		t.Setenv("FORMVAL_FAILURE_FEEDBACK", "Please try again")

		cfg, err := binding.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 250*time.Millisecond, cfg.DebounceDelay)
		assert.True(t, cfg.HideFeedback)
		assert.True(t, cfg.HideDescriptions)
		assert.Equal(t, "Please try again", cfg.FailureFeedback)
	})

	t.Run("rejects malformed values", func(t *testing.T) {
		t.Setenv("FORMVAL_DEBOUNCE_DELAY", "soon")

		_, err := binding.LoadConfig()

		assert.ErrorIs(t, err, binding.ErrParsingConfig)
	})
}
