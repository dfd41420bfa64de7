package conversion

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DecimalValue evaluates input, written in base, as a decimal number. The
// integer part is exact; the fractional part is rounded half away from zero
// to places digits.
func DecimalValue(input string, base int, places int32) (decimal.Decimal, error) {
	req := Request{Input: input, InputBase: base, OutputBase: base}
	if err := req.Validate(); err != nil {
		return decimal.Zero, err
	}

	intPart, fracPart, _ := strings.Cut(input, Delimiter)

	value := decimal.Zero
	if intPart != "" {
		trace, err := IntegerToDecimal(intPart, base)
		if err != nil {
			return decimal.Zero, err
		}
		value = trace.Result()
	}
	if fracPart != "" {
		trace, err := FractionToDecimal(fracPart, base)
		if err != nil {
			return decimal.Zero, err
		}
		value = value.Add(trace.Result().Decimal(places))
	}
	return value, nil
}
