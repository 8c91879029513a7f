package debounce

import "log/slog"

// Option is a functional option for configuring a Scheduler.
type Option func(*schedulerOptions)

type schedulerOptions struct {
	logger *slog.Logger
}

// WithLogger sets the logger for the scheduler.
func WithLogger(logger *slog.Logger) Option {
	return func(o *schedulerOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}
