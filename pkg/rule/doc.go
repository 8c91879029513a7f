// Package rule defines the validation rule primitives used throughout
// formval: synchronous and asynchronous predicate rules, reusable named rule
// sets, and a small library of ready-made rules for common string checks.
//
// A rule couples a predicate with two pieces of user-facing text: a
// Description shown next to the input before the user types anything, and a
// Feedback message shown when the predicate fails. The two variants differ
// only in how the predicate resolves:
//
//   - Sync rules answer immediately from the value alone (length, format).
//   - Async rules resolve through a latent operation such as a network call
//     (uniqueness checks, remote lookups) and may fail with an error, which
//     downstream components treat as an infrastructure fault rather than a
//     rule failure.
//
// Rules are plain immutable values; constructing them allocates nothing
// beyond the closure. Sets group rules of one variant under a name so the
// same collection can back any number of bound controls:
//
//	username := rule.SyncSet[string]{
//	    Name: "username",
//	    Rules: []rule.Sync[string]{
//	        rule.Required(),
//	        rule.MinLen(3),
//	    },
//	}
//
// Expensive async rules can be wrapped with Memoize so repeated validation
// of the same value skips the latent call:
//
//	checkEmail := rule.Memoize(emailExists, 128)
//
// The package has no dependencies on the orchestration or binding layers and
// is safe for concurrent use; rule values are never mutated after creation.
package rule
