// Package digit maps single characters to digit values for bases up to 36
package digit

import (
	"errors"
	"fmt"
)

// Supported base range
const (
	MinBase = 2
	MaxBase = 36
)

var (
	// ErrInvalidBase indicates a base outside [MinBase, MaxBase]
	ErrInvalidBase = errors.New("digit: base must be between 2 and 36")

	// ErrInvalidDigit indicates a character that is not a digit of the requested base
	ErrInvalidDigit = errors.New("digit: invalid digit for base")
)

// Value returns the value of c: '0'-'9' map to 0-9 and letters of either
// case map to 10-35. Any other character yields -1.
// Value does not check c against a base; use Parse for that.
func Value(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	}
	return -1
}

// Char returns the canonical character for v: '0'-'9', then 'A'-'Z'.
// Char panics if v is not in [0, 35].
func Char(v int) byte {
	switch {
	case v >= 0 && v < 10:
		return byte('0' + v)
	case v >= 10 && v < MaxBase:
		return byte('A' + v - 10)
	}
	panic(fmt.Sprintf("digit: value %d out of range", v))
}

// Parse returns the value of c, checked against base.
func Parse(c byte, base int) (int, error) {
	if err := ValidBase(base); err != nil {
		return 0, err
	}
	v := Value(c)
	if v < 0 || v >= base {
		return 0, fmt.Errorf("%w %d: %q", ErrInvalidDigit, base, c)
	}
	return v, nil
}

// ValidBase returns ErrInvalidBase unless base is in [MinBase, MaxBase]
func ValidBase(base int) error {
	if base < MinBase || base > MaxBase {
		return fmt.Errorf("%w, got %d", ErrInvalidBase, base)
	}
	return nil
}

// Validate checks that every character of s is a digit of base
func Validate(s string, base int) error {
	for i := 0; i < len(s); i++ {
		if _, err := Parse(s[i], base); err != nil {
			return fmt.Errorf("position %d: %w", i, err)
		}
	}
	return nil
}
