package validate

import (
	"log/slog"

	"github.com/dmitrymomot/formval/pkg/rule"
)

// Option is a functional option for configuring a Validator.
type Option[T any] func(*options[T])

type options[T any] struct {
	syncList  []rule.Sync[T]
	syncSet   rule.SyncProvider[T]
	asyncList []rule.Async[T]
	asyncSet  rule.AsyncProvider[T]

	failureFeedback string
	logger          *slog.Logger
}

// WithSyncRules supplies sync rules directly. They run after any rules from
// a configured sync provider.
func WithSyncRules[T any](rules ...rule.Sync[T]) Option[T] {
	return func(o *options[T]) {
		o.syncList = append(o.syncList, rules...)
	}
}

// WithSyncProvider supplies a shared sync rule set. Its rules run before any
// directly supplied ones.
func WithSyncProvider[T any](set rule.SyncProvider[T]) Option[T] {
	return func(o *options[T]) {
		o.syncSet = set
	}
}

// WithAsyncRules supplies async rules directly. They run after any rules
// from a configured async provider.
func WithAsyncRules[T any](rules ...rule.Async[T]) Option[T] {
	return func(o *options[T]) {
		o.asyncList = append(o.asyncList, rules...)
	}
}

// WithAsyncProvider supplies a shared async rule set. Its rules run before
// any directly supplied ones.
func WithAsyncProvider[T any](set rule.AsyncProvider[T]) Option[T] {
	return func(o *options[T]) {
		o.asyncSet = set
	}
}

// WithFailureFeedback overrides the generic message shown when an async
// check errors out.
func WithFailureFeedback[T any](feedback string) Option[T] {
	return func(o *options[T]) {
		if feedback != "" {
			o.failureFeedback = feedback
		}
	}
}

// WithLogger sets the logger used for async fault reporting.
func WithLogger[T any](logger *slog.Logger) Option[T] {
	return func(o *options[T]) {
		if logger != nil {
			o.logger = logger
		}
	}
}
