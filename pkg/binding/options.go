package binding

import (
	"log/slog"
	"time"
)

// Option is a functional option for configuring a Binding.
type Option func(*bindingOptions)

type bindingOptions struct {
	presenter        Presenter
	delay            time.Duration
	errorKey         string
	hideFeedback     bool
	hideDescriptions bool
	logger           *slog.Logger
}

// WithPresenter attaches the presentation bridge that renders descriptions
// and feedback. Without one the binding still validates and drives the
// control's error flag, it just renders nothing.
func WithPresenter(p Presenter) Option {
	return func(o *bindingOptions) {
		o.presenter = p
	}
}

// WithDebounceDelay overrides the quiet period before a value change
// triggers revalidation.
func WithDebounceDelay(d time.Duration) Option {
	return func(o *bindingOptions) {
		if d > 0 {
			o.delay = d
		}
	}
}

// WithErrorKey overrides the structured error flag key raised on the control.
func WithErrorKey(key string) Option {
	return func(o *bindingOptions) {
		if key != "" {
			o.errorKey = key
		}
	}
}

// WithHideFeedback suppresses feedback display entirely. Validation still
// runs; the verdict is simply never surfaced.
func WithHideFeedback() Option {
	return func(o *bindingOptions) {
		o.hideFeedback = true
	}
}

// WithHideDescriptions suppresses description rendering at creation.
func WithHideDescriptions() Option {
	return func(o *bindingOptions) {
		o.hideDescriptions = true
	}
}

// WithLogger sets the logger for the binding and its debounce scheduler.
func WithLogger(logger *slog.Logger) Option {
	return func(o *bindingOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithConfig applies environment-derived defaults (see LoadConfig). Options
// placed after WithConfig override it.
func WithConfig(cfg Config) Option {
	return func(o *bindingOptions) {
		if cfg.DebounceDelay > 0 {
			o.delay = cfg.DebounceDelay
		}
		o.hideFeedback = cfg.HideFeedback
		o.hideDescriptions = cfg.HideDescriptions
	}
}
