package conversion

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"basecalc/core/digit"
)

func TestIntegerToDecimal(t *testing.T) {
	trace, err := IntegerToDecimal("4D2", 16)
	require.NoError(t, err)

	assert.Equal(t, "1234", trace.Result().String())
	want := []string{
		"+ 4  * 256 to 0",
		"+ 13 * 16 to 1024",
		"+ 2  * 1 to 1232",
	}
	if diff := cmp.Diff(want, trace.Steps()); diff != "" {
		t.Errorf("steps mismatch (-want +got):\n%s", diff)
	}
}

func TestIntegerToDecimalLowercaseAndLeadingZeros(t *testing.T) {
	trace, err := IntegerToDecimal("00ff", 16)
	require.NoError(t, err)
	assert.Equal(t, "255", trace.Result().String())
	assert.Equal(t, 4, trace.Len())
}

func TestIntegerToDecimalLarge(t *testing.T) {
	// 2^70 does not fit in 64 bits
	trace, err := IntegerToDecimal("1"+strings.Repeat("0", 70), 2)
	require.NoError(t, err)
	assert.Equal(t, "1180591620717411303424", trace.Result().String())
}

func TestIntegerToDecimalErrors(t *testing.T) {
	_, err := IntegerToDecimal("129", 8)
	assert.ErrorIs(t, err, digit.ErrInvalidDigit)

	_, err = IntegerToDecimal("1", 40)
	assert.ErrorIs(t, err, digit.ErrInvalidBase)
}

func TestDecimalToBase(t *testing.T) {
	trace, err := DecimalToBase(decimal.NewFromInt(1234), 16)
	require.NoError(t, err)

	assert.Equal(t, "4D2", trace.Result())
	want := []string{
		"1234 / 16 = 77 R 2",
		"77   / 16 = 4  R D",
		"4    / 16 = 0  R 4",
	}
	if diff := cmp.Diff(want, trace.Steps()); diff != "" {
		t.Errorf("steps mismatch (-want +got):\n%s", diff)
	}
}

func TestDecimalToBaseZero(t *testing.T) {
	trace, err := DecimalToBase(decimal.Zero, 2)
	require.NoError(t, err)
	assert.Equal(t, "", trace.Result())
	assert.Equal(t, 0, trace.Len())
}

func TestDecimalToBaseErrors(t *testing.T) {
	_, err := DecimalToBase(decimal.NewFromInt(-3), 2)
	assert.ErrorIs(t, err, ErrNegativeValue)

	_, err = DecimalToBase(decimal.RequireFromString("1.5"), 2)
	assert.ErrorIs(t, err, ErrNotInteger)

	_, err = DecimalToBase(decimal.NewFromInt(3), 1)
	assert.ErrorIs(t, err, digit.ErrInvalidBase)
}

func TestIntegerRoundTrip(t *testing.T) {
	values := []int64{0, 1, 2, 7, 10, 35, 36, 255, 1000, 1234, 65535, 1 << 40, 9_007_199_254_740_993}
	for base := digit.MinBase; base <= digit.MaxBase; base++ {
		for _, v := range values {
			encoded, err := DecimalToBase(decimal.NewFromInt(v), base)
			require.NoError(t, err)

			decoded, err := IntegerToDecimal(encoded.Result(), base)
			require.NoError(t, err)
			assert.True(t, decoded.Result().Equal(decimal.NewFromInt(v)),
				"base %d: %d -> %q -> %s", base, v, encoded.Result(), decoded.Result())
		}
	}
}

func TestDigitStringRoundTrip(t *testing.T) {
	tests := []struct {
		digits string
		base   int
		want   string
	}{
		{"0010", 2, "10"},
		{"777", 8, "777"},
		{"00zz", 36, "ZZ"},
		{"4d2", 16, "4D2"},
		{"0", 5, ""},
	}
	for _, tt := range tests {
		dec, err := IntegerToDecimal(tt.digits, tt.base)
		require.NoError(t, err)
		back, err := DecimalToBase(dec.Result(), tt.base)
		require.NoError(t, err)
		assert.Equal(t, tt.want, back.Result(), "%s in base %d", tt.digits, tt.base)
	}
}
