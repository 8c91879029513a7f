// Package formval is a form-field validation engine: it binds synchronous
// and asynchronous validation rules to a single control's value, produces a
// validity verdict with ordered human-readable feedback, and debounces
// revalidation while the user is typing.
//
// The module is split into focused packages:
//
//   - pkg/rule      – rule primitives, reusable rule sets, built-in rules
//   - pkg/validate  – the orchestrator: aggregation, sync-then-async
//     evaluation, verdict reduction
//   - pkg/debounce  – coalescing timer used to hold back revalidation
//   - pkg/binding   – glue between one control, its validator, and the
//     presentation layer
//
// Basic Usage:
//
//	v := validate.New(
//	    validate.WithSyncRules(rule.Required(), rule.Email()),
//	    validate.WithAsyncRules(emailExists),
//	)
//
//	b, err := binding.New(emailControl, v, binding.WithPresenter(bridge))
//	if err != nil {
//	    return err
//	}
//	defer b.Destroy()
//
//	emailControl.OnChange = b.OnChange
//
// Rendering is never done here: descriptions and feedback are handed to the
// host application through the binding.Presenter interface, and the
// control's error state through binding.Control. Validation itself is pure
// data in, verdict out.
package formval
