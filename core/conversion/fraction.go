package conversion

import (
	"fmt"
	"strings"

	"basecalc/core/digit"
	"basecalc/core/rational"
	"basecalc/core/steps"
)

// FractionToDecimal returns the exact value of the fractional digits read in
// base, i.e. the sum of digit_i / base^(i+1). Each digit adds the step
//
//	+ <digit value> * (<base>^-<i+1>)
//
// aligned on "*".
func FractionToDecimal(digits string, base int) (steps.Trace[rational.Rational], error) {
	if err := digit.ValidBase(base); err != nil {
		return steps.Trace[rational.Rational]{}, err
	}
	if err := digit.Validate(digits, base); err != nil {
		return steps.Trace[rational.Rational]{}, err
	}

	sum := rational.Zero
	scale := rational.One
	lines := make([]string, 0, len(digits))
	for i := 0; i < len(digits); i++ {
		value := digit.Value(digits[i])

		var err error
		if scale, err = scale.QuoInt(int64(base)); err != nil {
			return steps.Trace[rational.Rational]{}, fmt.Errorf("fraction digit %d: %w", i+1, err)
		}
		term, err := scale.MulInt(int64(value))
		if err != nil {
			return steps.Trace[rational.Rational]{}, fmt.Errorf("fraction digit %d: %w", i+1, err)
		}
		if sum, err = sum.Add(term); err != nil {
			return steps.Trace[rational.Rational]{}, fmt.Errorf("fraction digit %d: %w", i+1, err)
		}

		lines = append(lines, fmt.Sprintf("+ %d * (%d^-%d)", value, base, i+1))
	}

	return steps.New(sum, lines...).Aligned("*"), nil
}

// DecimalFractionToBase writes value, which must be in [0, 1), in base by
// repeated multiplication. Each iteration records
//
//	<value> * <base> = <product> (R<digit>)
//
// emits the integer part of the product as the next digit and continues with
// the fractional part. It stops when the product is exactly 1 or after
// maxSteps iterations. Any other product keeps the loop going, so a fraction
// that terminates on a digit other than 1 records "0/1" steps up to maxSteps.
// A fraction that does not terminate is truncated, not rounded. Trailing
// zeros are dropped from the result. Steps are aligned on "*" and then "(R".
func DecimalFractionToBase(value rational.Rational, base, maxSteps int) (steps.Trace[string], error) {
	if err := digit.ValidBase(base); err != nil {
		return steps.Trace[string]{}, err
	}
	if maxSteps < 0 {
		return steps.Trace[string]{}, fmt.Errorf("%w, got %d", ErrInvalidSteps, maxSteps)
	}
	if value.Sign() < 0 || value.Cmp(rational.One) >= 0 {
		return steps.Trace[string]{}, fmt.Errorf("%w, got %s", ErrFractionRange, value)
	}

	var (
		digits  []byte
		lines   []string
		current = value
	)
	for i := 0; i < maxSteps; i++ {
		scaled, err := current.MulInt(int64(base))
		if err != nil {
			return steps.Trace[string]{}, fmt.Errorf("fraction step %d: %w", i+1, err)
		}
		whole := scaled.IntPart()
		digits = append(digits, digit.Char(int(whole)))
		lines = append(lines, fmt.Sprintf("%s * %d = %s (R%d)", current, base, scaled, whole))

		if scaled.Equal(rational.One) {
			break
		}
		if current, err = scaled.Sub(rational.FromInt64(whole)); err != nil {
			return steps.Trace[string]{}, fmt.Errorf("fraction step %d: %w", i+1, err)
		}
	}

	result := strings.TrimRight(string(digits), "0")
	return steps.New(result, lines...).Aligned("*").Aligned("(R"), nil
}
