// Package binding connects one external form control to its validator: it
// debounces revalidation while the user types, applies each verdict to the
// control's error flag, and drives a presenter that renders descriptions and
// feedback next to the input.
//
// A Binding owns everything per-control: the debounce timer, the latest
// verdict, and a monotonic pass counter that keeps a slow in-flight pass
// from overwriting the result of a newer one. Descriptions are computed once
// at creation and handed to the presenter; feedback is shown or cleared on
// every applied pass according to ShouldDisplayFeedback.
//
//	b, err := binding.New(emailControl, emailValidator,
//	    binding.WithPresenter(bridge),
//	    binding.WithDebounceDelay(800*time.Millisecond),
//	)
//	if err != nil {
//	    return err
//	}
//	defer b.Destroy()
//
//	// Wire the control's change event:
//	emailControl.OnChange = b.OnChange
//
// The Control and Presenter interfaces are deliberately narrow: the package
// never touches a UI toolkit or a document tree, it only calls out through
// them. Destroy cancels any pending revalidation and tears the presenter
// down; a destroyed binding ignores further triggers.
//
// Defaults (debounce delay, display flags) can be taken from the
// environment via LoadConfig and applied with WithConfig.
package binding
