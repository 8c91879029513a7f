package rule

import "context"

// Kind discriminates the two rule variants.
type Kind int

const (
	// KindSync marks rules whose predicate answers immediately.
	KindSync Kind = iota

	// KindAsync marks rules whose predicate resolves through a latent
	// operation.
	KindAsync
)

// String returns a human-readable variant name.
func (k Kind) String() string {
	switch k {
	case KindSync:
		return "sync"
	case KindAsync:
		return "async"
	default:
		return "unknown"
	}
}

// Sync is a validation rule whose predicate answers immediately from the
// current value. A nil Check always passes. Feedback may be empty, in which
// case a failure affects validity but contributes no message.
type Sync[T any] struct {
	Description string
	Feedback    string
	Check       func(value T) bool
}

// Kind reports the rule variant.
func (Sync[T]) Kind() Kind { return KindSync }

// Valid evaluates the predicate against value. Rules without a predicate
// pass unconditionally.
func (r Sync[T]) Valid(value T) bool {
	if r.Check == nil {
		return true
	}
	return r.Check(value)
}

// Async is a validation rule whose predicate resolves through a latent
// operation. The returned error signals an infrastructure fault (the check
// itself could not run), not a failed rule: a rule that ran and rejected the
// value returns (false, nil).
type Async[T any] struct {
	Description string
	Feedback    string
	Check       func(ctx context.Context, value T) (bool, error)
}

// Kind reports the rule variant.
func (Async[T]) Kind() Kind { return KindAsync }

// Valid evaluates the predicate against value. Rules without a predicate
// pass unconditionally.
func (r Async[T]) Valid(ctx context.Context, value T) (bool, error) {
	if r.Check == nil {
		return true, nil
	}
	return r.Check(ctx, value)
}

// SyncProvider supplies a named, reusable ordered collection of sync rules.
// Providers let many bound controls share one rule collection without
// duplicating it.
type SyncProvider[T any] interface {
	SyncRules() []Sync[T]
}

// AsyncProvider supplies a named, reusable ordered collection of async rules.
type AsyncProvider[T any] interface {
	AsyncRules() []Async[T]
}

// SyncSet is the canonical SyncProvider: a named ordered rule collection.
// It is stateless beyond its rule list and safe to share across bindings.
type SyncSet[T any] struct {
	Name  string
	Rules []Sync[T]
}

// SyncRules returns the set's rules in declaration order.
func (s SyncSet[T]) SyncRules() []Sync[T] { return s.Rules }

// AsyncSet is the canonical AsyncProvider: a named ordered rule collection.
type AsyncSet[T any] struct {
	Name  string
	Rules []Async[T]
}

// AsyncRules returns the set's rules in declaration order.
func (s AsyncSet[T]) AsyncRules() []Async[T] { return s.Rules }
