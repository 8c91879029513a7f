package binding

// Control is the narrow view of an external form control that a binding
// needs: the current value, the interaction status used by the display
// decision, and a structured error flag keyed by an opaque string (for
// example "customErrors"). Implementations live in the host application or
// UI layer, never in this module.
type Control[T any] interface {
	// Value returns the control's current value.
	Value() T

	// Touched reports whether the user has interacted with the control.
	Touched() bool

	// Disabled reports whether the control is currently disabled.
	Disabled() bool

	// SetError raises the structured error flag under key.
	SetError(key string)

	// ClearError clears the structured error flag under key. Clearing a
	// flag that is not set must be a no-op.
	ClearError(key string)
}

// Presenter renders descriptions and feedback adjacent to the bound input.
// Descriptions are shown exactly once, at binding creation; feedback is
// shown or cleared on every applied validation pass. ClearFeedback must be
// idempotent, and Teardown must remove everything the presenter rendered.
type Presenter interface {
	ShowDescriptions(descriptions []string)
	ShowFeedback(feedback []string)
	ClearFeedback()
	Teardown()
}
