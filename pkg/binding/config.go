package binding

import (
	"errors"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the environment-configurable binding defaults. Apply it with
// WithConfig; FailureFeedback is meant for validate.WithFailureFeedback when
// constructing the validator.
type Config struct {
	DebounceDelay    time.Duration `env:"FORMVAL_DEBOUNCE_DELAY" envDefault:"1500ms"`
	HideFeedback     bool          `env:"FORMVAL_HIDE_FEEDBACK" envDefault:"false"`
	HideDescriptions bool          `env:"FORMVAL_HIDE_DESCRIPTIONS" envDefault:"false"`
	FailureFeedback  string        `env:"FORMVAL_FAILURE_FEEDBACK"`
}

var defaultEnvLoaded sync.Once

// LoadConfig reads Config from the environment, loading a .env file first if
// one exists.
func LoadConfig() (Config, error) {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}
