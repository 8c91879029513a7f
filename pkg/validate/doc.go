// Package validate orchestrates a validation pass: it aggregates a control's
// configured rule sources into one ordered sequence per variant, evaluates
// sync rules first, short-circuits on any sync failure, otherwise runs async
// rules concurrently, and reduces everything into a single Verdict.
//
// # Evaluation order
//
// Sync rules run strictly in declared order and each predicate is evaluated
// exactly once per pass. If any sync rule fails no async rule is invoked:
// async checks are assumed to be latency-bound (network lookups) and are
// pointless once validity is already decided. Async rules are dispatched
// together and their completion order never leaks into the verdict: failing
// feedback is always reassembled in declared rule order.
//
// # Failure policy
//
// A rule that rejects a value is ordinary data: its feedback joins the
// verdict and the pass continues. An async check that errors is an
// infrastructure fault: the whole pass fails closed with a single generic
// feedback message and no partial results are trusted. An error state is
// never reported as valid.
//
// # Usage
//
//	v := validate.New(
//	    validate.WithSyncRules(rule.Required(), rule.Email()),
//	    validate.WithAsyncProvider[string](emailChecks),
//	)
//
//	verdict := v.Validate(ctx, "user@example.com")
//	if !verdict.Valid {
//	    // verdict.Feedback holds the failing rules' messages in order.
//	}
//
// Validate returns pure data and mutates nothing; applying the verdict to a
// control or a rendered feedback list is the binding layer's job.
package validate
