// Package debounce delays an action until a quiet period follows the last
// trigger, cancelling superseded triggers along the way.
//
// The binding layer uses a Scheduler to hold back revalidation while the
// user is actively typing: every value change reschedules, so only the value
// present when typing pauses actually reaches the validator. This bounds
// how often async checks (network lookups) fire during fast input.
//
//	s := debounce.NewScheduler()
//
//	// On every change event:
//	s.Schedule(debounce.DefaultDelay, revalidate)
//
//	// On teardown, so no stray callback fires against dead state:
//	s.Cancel()
//
// At most one timer is pending per scheduler at any instant. Scheduling
// cancels and discards the previous timer; a cancelled timer never invokes
// its callback, even if it was already due when Cancel ran. Cancel with
// nothing pending is a no-op. The callback runs on the timer's goroutine.
package debounce
