package binding

// DisplayState captures everything the feedback-display decision depends on.
type DisplayState struct {
	// HasFeedback reports whether any validation pass has completed yet.
	HasFeedback bool

	// HideFeedback suppresses feedback rendering entirely.
	HideFeedback bool

	// Bound reports whether a control is attached.
	Bound bool

	// Touched mirrors the control's touched status.
	Touched bool

	// Disabled mirrors the control's disabled status.
	Disabled bool

	// Valid is the latest verdict's validity.
	Valid bool
}

// ShouldDisplayFeedback decides whether feedback (and the control's error
// flag) should be surfaced to the user. It gates presentation only, never
// whether validation runs. Feedback is withheld until the user
// has actually touched the control so pristine forms do not open covered in
// errors.
func ShouldDisplayFeedback(state DisplayState) bool {
	switch {
	case !state.HasFeedback:
		return false
	case state.HideFeedback:
		return false
	case !state.Bound:
		return false
	case !state.Touched:
		return false
	case state.Disabled:
		return false
	case state.Valid:
		return false
	}
	return true
}
