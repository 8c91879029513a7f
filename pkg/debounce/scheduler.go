package debounce

import (
	"log/slog"
	"sync"
	"time"
)

// DefaultDelay is the quiet period used by callers that do not configure
// their own: long enough to survive bursts of keystrokes, short enough that
// feedback still feels responsive.
const DefaultDelay = 1500 * time.Millisecond

// Scheduler coalesces rapid triggers into a single deferred callback. The
// zero value is not usable; create one with NewScheduler. All methods are
// safe for concurrent use.
type Scheduler struct {
	mu     sync.Mutex
	timer  *time.Timer
	gen    uint64
	logger *slog.Logger
}

// NewScheduler creates a debounce scheduler.
func NewScheduler(opts ...Option) *Scheduler {
	options := &schedulerOptions{
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(options)
	}

	return &Scheduler{logger: options.logger}
}

// Schedule cancels any pending timer and starts a new one that invokes
// onFire exactly once after delay elapses, unless superseded by a later
// Schedule or by Cancel. A non-positive delay fires on the next timer tick.
func (s *Scheduler) Schedule(delay time.Duration, onFire func()) {
	if onFire == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	gen := s.gen

	if s.timer != nil {
		s.timer.Stop()
	}

	// The generation check closes the window where a timer has already
	// fired into its goroutine but Stop was called before the callback
	// took the lock: such a callback must not run.
	s.timer = time.AfterFunc(delay, func() {
		s.mu.Lock()
		if gen != s.gen {
			s.mu.Unlock()
			return
		}
		s.timer = nil
		s.mu.Unlock()

		onFire()
	})
}

// Cancel discards the pending timer, if any. It is idempotent: cancelling
// with nothing pending does nothing.
func (s *Scheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
		s.logger.Debug("cancelled pending debounce timer")
	}
}

// Pending reports whether a timer is currently scheduled.
func (s *Scheduler) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer != nil
}
