package binding

import "errors"

var (
	// ErrControlNil is returned when a binding is created without a control.
	ErrControlNil = errors.New("control is nil")

	// ErrValidatorNil is returned when a binding is created without a validator.
	ErrValidatorNil = errors.New("validator is nil")

	// ErrParsingConfig is returned when environment configuration cannot be parsed.
	ErrParsingConfig = errors.New("failed to parse binding config")
)
