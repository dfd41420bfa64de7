package conversion

import "errors"

var (
	// ErrEmptyInput indicates an input with no digits at all.
	ErrEmptyInput = errors.New("conversion: input has no digits")
	// ErrMalformedInput indicates an input with more than one fraction delimiter.
	ErrMalformedInput = errors.New("conversion: malformed input")
	// ErrInvalidSteps indicates a negative step limit.
	ErrInvalidSteps = errors.New("conversion: max steps must not be negative")
	// ErrFractionRange indicates a fraction outside [0, 1).
	ErrFractionRange = errors.New("conversion: fraction must be in [0, 1)")
	// ErrNegativeValue indicates a negative integer where a non-negative one is required.
	ErrNegativeValue = errors.New("conversion: value must not be negative")
	// ErrNotInteger indicates a value with a fractional part where an integer is required.
	ErrNotInteger = errors.New("conversion: value must be an integer")
)
