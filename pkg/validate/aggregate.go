package validate

import "github.com/dmitrymomot/formval/pkg/rule"

// AggregateSync merges a directly supplied rule list with a set provider's
// rules into one ordered sequence: set rules first, list rules after, both
// in their own declaration order. Either source may be nil. The result is a
// fresh slice; aggregation runs once per variant per validation pass and is
// never cached, because callers may mutate their rule sources between passes.
func AggregateSync[T any](list []rule.Sync[T], set rule.SyncProvider[T]) []rule.Sync[T] {
	var fromSet []rule.Sync[T]
	if set != nil {
		fromSet = set.SyncRules()
	}

	merged := make([]rule.Sync[T], 0, len(fromSet)+len(list))
	merged = append(merged, fromSet...)
	merged = append(merged, list...)
	return merged
}

// AggregateAsync is the async-variant twin of AggregateSync.
func AggregateAsync[T any](list []rule.Async[T], set rule.AsyncProvider[T]) []rule.Async[T] {
	var fromSet []rule.Async[T]
	if set != nil {
		fromSet = set.AsyncRules()
	}

	merged := make([]rule.Async[T], 0, len(fromSet)+len(list))
	merged = append(merged, fromSet...)
	merged = append(merged, list...)
	return merged
}
