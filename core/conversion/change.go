package conversion

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"basecalc/core/digit"
	"basecalc/core/rational"
	"basecalc/core/steps"
)

// Delimiter separates the integer part of an input from its fractional part.
const Delimiter = ","

// DefaultMaxSteps caps the digits produced for a fractional part.
const DefaultMaxSteps = 24

// Request describes a single conversion
type Request struct {
	// Input is "<integer digits>" or "<integer digits>,<fraction digits>"
	Input string `json:"input"`

	// InputBase is the base Input is written in
	InputBase int `json:"input_base"`

	// OutputBase is the base to convert to
	OutputBase int `json:"output_base"`

	// MaxSteps limits the fraction expansion
	MaxSteps int `json:"max_steps"`
}

// Validate checks bases, the step limit, and every digit of the input
func (r Request) Validate() error {
	if err := digit.ValidBase(r.InputBase); err != nil {
		return fmt.Errorf("input base: %w", err)
	}
	if err := digit.ValidBase(r.OutputBase); err != nil {
		return fmt.Errorf("output base: %w", err)
	}
	if r.MaxSteps < 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidSteps, r.MaxSteps)
	}
	if strings.Count(r.Input, Delimiter) > 1 {
		return fmt.Errorf("%w: %q has more than one %q", ErrMalformedInput, r.Input, Delimiter)
	}

	intPart, fracPart, _ := strings.Cut(r.Input, Delimiter)
	if intPart == "" && fracPart == "" {
		return ErrEmptyInput
	}
	if err := digit.Validate(intPart, r.InputBase); err != nil {
		return fmt.Errorf("integer part %q: %w", intPart, err)
	}
	if err := digit.Validate(fracPart, r.InputBase); err != nil {
		return fmt.Errorf("fractional part %q: %w", fracPart, err)
	}
	return nil
}

// ChangeBase converts input from inputBase to outputBase, expanding at most
// maxSteps fractional digits.
func ChangeBase(input string, inputBase, outputBase, maxSteps int) (steps.Trace[string], error) {
	return Convert(Request{
		Input:      input,
		InputBase:  inputBase,
		OutputBase: outputBase,
		MaxSteps:   maxSteps,
	})
}

// Convert runs a Request.
//
// An integer input yields its digits in the output base. An input with a
// fractional part yields "<integer> , <fraction>" with both halves grouped in
// clusters of four; an empty half is shown as "0". The steps of every stage
// are merged under section headers.
func Convert(req Request) (steps.Trace[string], error) {
	if err := req.Validate(); err != nil {
		return steps.Trace[string]{}, err
	}

	intPart, fracPart, hasFraction := strings.Cut(req.Input, Delimiter)

	intTrace, err := convertInteger(intPart, req.InputBase, req.OutputBase)
	if err != nil {
		return steps.Trace[string]{}, err
	}

	if !hasFraction {
		return intTrace.
			Map(orZero, noSteps).
			Prepend(fmt.Sprintf("Converting %s from %s to %s as a simple number",
				req.Input, baseName(req.InputBase), baseName(req.OutputBase)), ""), nil
	}

	fracTrace, err := convertFraction(fracPart, req.InputBase, req.OutputBase, req.MaxSteps)
	if err != nil {
		return steps.Trace[string]{}, err
	}

	return intTrace.
		Map(func(intResult string) string {
			return GroupByFour(orZero(intResult)) + " , " + GroupByFour(orZero(fracTrace.Result()))
		}, func() []string {
			return append([]string{""}, fracTrace.Steps()...)
		}).
		Prepend(fmt.Sprintf("Converting %s from %s to %s as a fraction",
			req.Input, baseName(req.InputBase), baseName(req.OutputBase)), ""), nil
}

// convertInteger runs the integer half, skipping the place-value expansion
// when the input is decimal and the division when the output is.
func convertInteger(digits string, inputBase, outputBase int) (steps.Trace[string], error) {
	var (
		value decimal.Decimal
		lead  []string
	)
	switch {
	case digits == "":
		value = decimal.Zero
	case inputBase == 10:
		v, err := decimal.NewFromString(digits)
		if err != nil {
			return steps.Trace[string]{}, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
		value = v
	default:
		dec, err := IntegerToDecimal(digits, inputBase)
		if err != nil {
			return steps.Trace[string]{}, err
		}
		value = dec.Result()
		lead = append(lead, fmt.Sprintf("Converting the integer %s from base %d to decimal:", digits, inputBase))
		lead = append(lead, dec.Steps()...)
		lead = append(lead, "")
	}

	if outputBase == 10 {
		return steps.New(value.String(), lead...).
			Append(fmt.Sprintf("%s is already in decimal", value)), nil
	}

	out, err := DecimalToBase(value, outputBase)
	if err != nil {
		return steps.Trace[string]{}, err
	}
	return out.
		Prepend(fmt.Sprintf("Converting the integer %s from decimal to base %d:", value, outputBase)).
		Prepend(lead...), nil
}

// convertFraction runs the fractional half. Decimal fraction digits are read
// directly as digits / 10^len.
func convertFraction(digits string, inputBase, outputBase, maxSteps int) (steps.Trace[string], error) {
	var (
		value rational.Rational
		lead  []string
	)
	if inputBase == 10 {
		v, err := parseDecimalFraction(digits)
		if err != nil {
			return steps.Trace[string]{}, err
		}
		value = v
		lead = append(lead, fmt.Sprintf("Reading the decimal fraction ,%s as %s", digits, value), "")
	} else {
		dec, err := FractionToDecimal(digits, inputBase)
		if err != nil {
			return steps.Trace[string]{}, err
		}
		value = dec.Result()
		lead = append(lead, fmt.Sprintf("Converting the fraction ,%s from base %d to decimal:", digits, inputBase))
		lead = append(lead, dec.Steps()...)
		lead = append(lead, "")
	}

	out, err := DecimalFractionToBase(value, outputBase, maxSteps)
	if err != nil {
		return steps.Trace[string]{}, err
	}
	return out.
		Prepend(fmt.Sprintf("Converting the fraction %s from decimal to base %d:", value, outputBase)).
		Prepend(lead...), nil
}

func parseDecimalFraction(digits string) (rational.Rational, error) {
	digits = strings.TrimRight(digits, "0")
	if digits == "" {
		return rational.Zero, nil
	}
	d, err := decimal.NewFromString("0." + digits)
	if err != nil {
		return rational.Rational{}, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	return rational.FromDecimal(d)
}

// GroupByFour splits s into clusters of four characters from the left,
// e.g. "001010101" becomes "0010 1010 1".
func GroupByFour(s string) string {
	if len(s) <= 4 {
		return s
	}
	var sb strings.Builder
	for i := 0; i < len(s); i += 4 {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(s[i:min(i+4, len(s))])
	}
	return sb.String()
}

func baseName(base int) string {
	if base == 10 {
		return "decimal"
	}
	return fmt.Sprintf("base %d", base)
}

func orZero(s string) string {
	if s == "" {
		return "0"
	}
	return s
}

func noSteps() []string {
	return nil
}
