package conversion

import (
	"fmt"

	"github.com/shopspring/decimal"

	"basecalc/core/digit"
	"basecalc/core/steps"
)

// IntegerToDecimal returns the value of digits read in base.
// Each digit contributes one step of the form
//
//	+ <digit value> * <base^power> to <sum so far>
//
// and the steps are aligned on "*".
func IntegerToDecimal(digits string, base int) (steps.Trace[decimal.Decimal], error) {
	if err := digit.ValidBase(base); err != nil {
		return steps.Trace[decimal.Decimal]{}, err
	}
	if err := digit.Validate(digits, base); err != nil {
		return steps.Trace[decimal.Decimal]{}, err
	}

	// places[i] is base^(n-1-i)
	n := len(digits)
	places := make([]decimal.Decimal, n)
	b := decimal.NewFromInt(int64(base))
	p := decimal.NewFromInt(1)
	for i := n - 1; i >= 0; i-- {
		places[i] = p
		p = p.Mul(b)
	}

	trace := steps.New(decimal.Zero)
	for i := 0; i < n; i++ {
		value := digit.Value(digits[i])
		place := places[i]
		prior := trace.Result()
		trace = trace.Map(func(acc decimal.Decimal) decimal.Decimal {
			return acc.Add(place.Mul(decimal.NewFromInt(int64(value))))
		}, func() []string {
			return []string{fmt.Sprintf("+ %d * %s to %s", value, place, prior)}
		})
	}

	return trace.Aligned("*"), nil
}

// DecimalToBase writes a non-negative integer in base by repeated division,
// one step per division:
//
//	<before> / <base> = <quotient> R <digit>
//
// Zero has no digits and yields "". Steps are aligned on "/" and then "R ".
func DecimalToBase(value decimal.Decimal, base int) (steps.Trace[string], error) {
	if err := digit.ValidBase(base); err != nil {
		return steps.Trace[string]{}, err
	}
	if value.IsNegative() {
		return steps.Trace[string]{}, fmt.Errorf("%w: %s", ErrNegativeValue, value)
	}
	if !value.IsInteger() {
		return steps.Trace[string]{}, fmt.Errorf("%w: %s", ErrNotInteger, value)
	}

	b := decimal.NewFromInt(int64(base))
	trace := steps.New("")
	for value.IsPositive() {
		quotient, remainder := value.QuoRem(b, 0)
		c := digit.Char(int(remainder.IntPart()))
		before := value
		value = quotient

		trace = trace.Map(func(res string) string {
			return string(c) + res
		}, func() []string {
			return []string{fmt.Sprintf("%s / %d = %s R %c", before, base, quotient, c)}
		})
	}

	return trace.Aligned("/").Aligned("R "), nil
}
