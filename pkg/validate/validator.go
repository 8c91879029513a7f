package validate

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/formval/pkg/rule"
)

// DefaultFailureFeedback is shown when an async check errors out. It is
// deliberately generic so internal failure detail never leaks to the user.
const DefaultFailureFeedback = "This item could not be validated"

// Verdict is the outcome of one validation pass: a validity flag plus the
// failing rules' feedback messages. Feedback ordering is always sync
// failures in declared rule order, then (only when every sync rule passed)
// async failures in declared rule order.
type Verdict struct {
	Valid    bool
	Feedback []string
}

// Validator runs validation passes for one control's rule configuration.
// The zero-argument New produces a validator with no rules, which reports
// every value valid. Validators are immutable after construction and safe
// for concurrent use as long as the configured rule providers are.
type Validator[T any] struct {
	syncList  []rule.Sync[T]
	syncSet   rule.SyncProvider[T]
	asyncList []rule.Async[T]
	asyncSet  rule.AsyncProvider[T]

	failureFeedback string
	logger          *slog.Logger
}

// New creates a validator from the given options.
func New[T any](opts ...Option[T]) *Validator[T] {
	options := &options[T]{
		failureFeedback: DefaultFailureFeedback,
		logger:          slog.Default(),
	}

	for _, opt := range opts {
		opt(options)
	}

	return &Validator[T]{
		syncList:        options.syncList,
		syncSet:         options.syncSet,
		asyncList:       options.asyncList,
		asyncSet:        options.asyncSet,
		failureFeedback: options.failureFeedback,
		logger:          options.logger,
	}
}

// Validate runs one full pass against value and returns the verdict.
//
// Failures are data, never errors: a rejecting rule contributes feedback, an
// erroring async check collapses the pass into the fail-closed generic
// verdict. The only faults that escape this method are panics from a sync
// predicate, which indicate a programming error in the rule itself.
func (v *Validator[T]) Validate(ctx context.Context, value T) Verdict {
	syncRules := AggregateSync(v.syncList, v.syncSet)

	var feedback []string
	allSyncValid := true
	for _, r := range syncRules {
		if r.Valid(value) {
			continue
		}
		allSyncValid = false
		if r.Feedback != "" {
			feedback = append(feedback, r.Feedback)
		}
	}

	// Async checks are latency-bound; once sync validity already failed
	// there is nothing left for them to decide.
	if !allSyncValid {
		return Verdict{Valid: false, Feedback: feedback}
	}

	asyncRules := AggregateAsync(v.asyncList, v.asyncSet)
	if len(asyncRules) == 0 {
		return Verdict{Valid: true}
	}

	results := make([]bool, len(asyncRules))
	g, gctx := errgroup.WithContext(ctx)
	for i, r := range asyncRules {
		i, r := i, r
		g.Go(func() error {
			ok, err := r.Valid(gctx, value)
			if err != nil {
				return err
			}
			results[i] = ok
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		v.logger.Error("async validation check failed",
			slog.String("error", err.Error()))
		// Fail closed: no partial result is trusted once any latent
		// operation errored.
		return Verdict{Valid: false, Feedback: []string{v.failureFeedback}}
	}

	valid := true
	for i, r := range asyncRules {
		if results[i] {
			continue
		}
		valid = false
		if r.Feedback != "" {
			feedback = append(feedback, r.Feedback)
		}
	}

	return Verdict{Valid: valid, Feedback: feedback}
}

// Descriptions returns the non-empty descriptions of every configured rule,
// sync rules first, in aggregated order. The binding layer renders these
// once at creation.
func (v *Validator[T]) Descriptions() []string {
	syncRules := AggregateSync(v.syncList, v.syncSet)
	asyncRules := AggregateAsync(v.asyncList, v.asyncSet)

	descriptions := make([]string, 0, len(syncRules)+len(asyncRules))
	for _, r := range syncRules {
		if r.Description != "" {
			descriptions = append(descriptions, r.Description)
		}
	}
	for _, r := range asyncRules {
		if r.Description != "" {
			descriptions = append(descriptions, r.Description)
		}
	}
	return descriptions
}
