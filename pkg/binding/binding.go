package binding

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formval/pkg/debounce"
	"github.com/dmitrymomot/formval/pkg/validate"
)

// DefaultErrorKey is the structured error flag raised on the control when
// its latest verdict is invalid and displayable.
const DefaultErrorKey = "customErrors"

// Binding ties one control to its validator. It owns the control's debounce
// timer, its latest verdict, and the pass counter that discards superseded
// results. Create with New, release with Destroy.
type Binding[T any] struct {
	id           uuid.UUID
	control      Control[T]
	validator    *validate.Validator[T]
	presenter    Presenter
	scheduler    *debounce.Scheduler
	logger       *slog.Logger
	descriptions []string

	delay            time.Duration
	errorKey         string
	hideFeedback     bool
	hideDescriptions bool

	// seq numbers validation passes; a pass may only apply its verdict if
	// no higher-numbered pass has applied first.
	seq atomic.Uint64

	mu          sync.Mutex
	appliedSeq  uint64
	lastVerdict *validate.Verdict
	destroyed   bool
}

// New creates a binding for control backed by validator. Descriptions are
// computed once here and, unless suppressed, rendered through the presenter
// immediately.
func New[T any](control Control[T], validator *validate.Validator[T], opts ...Option) (*Binding[T], error) {
	if control == nil {
		return nil, ErrControlNil
	}
	if validator == nil {
		return nil, ErrValidatorNil
	}

	options := &bindingOptions{
		delay:    debounce.DefaultDelay,
		errorKey: DefaultErrorKey,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(options)
	}

	b := &Binding[T]{
		id:               uuid.New(),
		control:          control,
		validator:        validator,
		presenter:        options.presenter,
		scheduler:        debounce.NewScheduler(debounce.WithLogger(options.logger)),
		logger:           options.logger,
		descriptions:     validator.Descriptions(),
		delay:            options.delay,
		errorKey:         options.errorKey,
		hideFeedback:     options.hideFeedback,
		hideDescriptions: options.hideDescriptions,
	}

	if b.presenter != nil && !b.hideDescriptions && len(b.descriptions) > 0 {
		b.presenter.ShowDescriptions(b.descriptions)
	}

	b.logger.Debug("binding created",
		slog.String("binding_id", b.id.String()),
		slog.Int("descriptions", len(b.descriptions)))

	return b, nil
}

// OnChange registers a value change: it reschedules the debounced
// revalidation so only the value present when input pauses is validated.
// Triggers on a destroyed binding are ignored.
func (b *Binding[T]) OnChange() {
	b.mu.Lock()
	destroyed := b.destroyed
	b.mu.Unlock()
	if destroyed {
		return
	}

	b.scheduler.Schedule(b.delay, func() {
		b.Validate(context.Background())
	})
}

// Validate runs one immediate validation pass against the control's current
// value, applies the verdict to the control and presenter unless a newer
// pass already did, and returns it.
func (b *Binding[T]) Validate(ctx context.Context) validate.Verdict {
	pass := b.seq.Add(1)
	verdict := b.validator.Validate(ctx, b.control.Value())
	b.apply(pass, verdict)
	return verdict
}

// apply reconciles a finished pass with the control's error flag and the
// presenter. Superseded passes are dropped so a slow async check can never
// overwrite the verdict of a newer value.
func (b *Binding[T]) apply(pass uint64, verdict validate.Verdict) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.destroyed {
		return
	}
	if pass < b.appliedSeq {
		b.logger.Debug("discarding superseded validation pass",
			slog.String("binding_id", b.id.String()),
			slog.Uint64("pass", pass),
			slog.Uint64("applied", b.appliedSeq))
		return
	}

	b.appliedSeq = pass
	b.lastVerdict = &verdict

	display := ShouldDisplayFeedback(DisplayState{
		HasFeedback:  true,
		HideFeedback: b.hideFeedback,
		Bound:        true,
		Touched:      b.control.Touched(),
		Disabled:     b.control.Disabled(),
		Valid:        verdict.Valid,
	})

	if display {
		b.control.SetError(b.errorKey)
		if b.presenter != nil {
			b.presenter.ShowFeedback(verdict.Feedback)
		}
	} else {
		b.control.ClearError(b.errorKey)
		if b.presenter != nil {
			b.presenter.ClearFeedback()
		}
	}
}

// Verdict returns the latest applied verdict, or false when no pass has
// completed yet.
func (b *Binding[T]) Verdict() (validate.Verdict, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.lastVerdict == nil {
		return validate.Verdict{}, false
	}
	return *b.lastVerdict, true
}

// Descriptions returns the rule descriptions computed at creation.
func (b *Binding[T]) Descriptions() []string {
	return b.descriptions
}

// Destroy cancels any pending revalidation and tears down the presenter.
// It is idempotent; a destroyed binding ignores all further triggers.
func (b *Binding[T]) Destroy() {
	b.mu.Lock()
	if b.destroyed {
		b.mu.Unlock()
		return
	}
	b.destroyed = true
	b.mu.Unlock()

	b.scheduler.Cancel()

	if b.presenter != nil {
		b.presenter.Teardown()
	}

	b.logger.Debug("binding destroyed",
		slog.String("binding_id", b.id.String()))
}
