// Package rational implements exact fractions with 64-bit numerator and
// denominator.
//
// A [Rational] is always held in lowest terms with the sign carried by the
// numerator, so two values are equal exactly when their fields are equal and
// the == operator can be used directly. The zero value is a valid 0/1.
//
// Arithmetic is exact. Intermediate products are computed with enough
// precision that they cannot wrap; a reduced result that does not fit back
// into 64 bits is reported as [ErrOverflow] instead of being truncated.
package rational

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

var (
	// ErrDivisionByZero is returned for a zero denominator, a zero divisor,
	// or the reciprocal of zero.
	ErrDivisionByZero = errors.New("rational: division by zero")
	// ErrOverflow is returned when a reduced result does not fit in int64.
	ErrOverflow = errors.New("rational: result overflows 64 bits")
)

// Rational is an immutable fraction num/den in lowest terms.
type Rational struct {
	num int64
	// den is stored biased by one, so that the zero value means 0/1.
	den int64
}

// Zero and One are the additive and multiplicative identities.
var (
	Zero = Rational{}
	One  = Rational{num: 1}
)

// New returns num/den reduced to lowest terms.
// The greatest common divisor is found with Euclid's algorithm on the
// absolute values, and the sign is moved to the numerator.
// New returns [ErrDivisionByZero] if den is 0.
func New(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, ErrDivisionByZero
	}
	if num == 0 {
		return Rational{}, nil
	}
	neg := (num < 0) != (den < 0)
	n, d := abs64(num), abs64(den)
	g := gcd(n, d)
	return build(neg, n/g, d/g)
}

// FromInt64 returns n/1.
func FromInt64(n int64) Rational {
	return Rational{num: n}
}

// FromDecimal converts a finite decimal into the exact fraction it denotes,
// e.g. 0.125 becomes 1/8.
func FromDecimal(d decimal.Decimal) (Rational, error) {
	num := d.Coefficient()
	den := big.NewInt(1)
	exp := d.Exponent()
	ten := big.NewInt(10)
	if exp >= 0 {
		num.Mul(num, new(big.Int).Exp(ten, big.NewInt(int64(exp)), nil))
	} else {
		den.Exp(ten, big.NewInt(-int64(exp)), nil)
	}
	return fromBig(num, den)
}

// Num returns the numerator. Its sign is the sign of r.
func (r Rational) Num() int64 {
	return r.num
}

// Den returns the denominator, which is always positive.
func (r Rational) Den() int64 {
	return r.den + 1
}

// Sign returns -1, 0 or 1.
func (r Rational) Sign() int {
	switch {
	case r.num < 0:
		return -1
	case r.num > 0:
		return 1
	}
	return 0
}

// IsZero reports whether r == 0.
func (r Rational) IsZero() bool {
	return r.num == 0
}

// Neg returns -r.
func (r Rational) Neg() (Rational, error) {
	if r.num == math.MinInt64 {
		return Rational{}, fmt.Errorf("negating %v: %w", r, ErrOverflow)
	}
	return Rational{num: -r.num, den: r.den}, nil
}

// Add returns r + s, reduced.
func (r Rational) Add(s Rational) (Rational, error) {
	num := new(big.Int).Mul(r.bigNum(), s.bigDen())
	num.Add(num, new(big.Int).Mul(s.bigNum(), r.bigDen()))
	den := new(big.Int).Mul(r.bigDen(), s.bigDen())
	return fromBig(num, den)
}

// Sub returns r - s, that is r + (-s), reduced.
func (r Rational) Sub(s Rational) (Rational, error) {
	num := new(big.Int).Mul(r.bigNum(), s.bigDen())
	num.Sub(num, new(big.Int).Mul(s.bigNum(), r.bigDen()))
	den := new(big.Int).Mul(r.bigDen(), s.bigDen())
	return fromBig(num, den)
}

// Mul returns r * s, reduced.
func (r Rational) Mul(s Rational) (Rational, error) {
	num := new(big.Int).Mul(r.bigNum(), s.bigNum())
	den := new(big.Int).Mul(r.bigDen(), s.bigDen())
	return fromBig(num, den)
}

// MulInt returns r * n, reduced.
func (r Rational) MulInt(n int64) (Rational, error) {
	return r.Mul(FromInt64(n))
}

// Quo returns r / s, computed as r multiplied by the reciprocal of s.
// Quo returns [ErrDivisionByZero] if s is zero.
func (r Rational) Quo(s Rational) (Rational, error) {
	inv, err := s.Reciprocal()
	if err != nil {
		return Rational{}, err
	}
	return r.Mul(inv)
}

// QuoInt returns r / n.
func (r Rational) QuoInt(n int64) (Rational, error) {
	return r.Quo(FromInt64(n))
}

// Reciprocal returns 1/r, or [ErrDivisionByZero] if r is zero.
func (r Rational) Reciprocal() (Rational, error) {
	if r.num == 0 {
		return Rational{}, ErrDivisionByZero
	}
	return fromBig(r.bigDen(), r.bigNum())
}

// IntPart returns r truncated toward zero.
// The division is done on integers, so values just below a whole number
// never round up to it.
func (r Rational) IntPart() int64 {
	return r.num / r.Den()
}

// Cmp returns -1 if r < s, 0 if r == s, and 1 if r > s.
func (r Rational) Cmp(s Rational) int {
	if r == s {
		return 0
	}
	left := new(big.Int).Mul(r.bigNum(), s.bigDen())
	right := new(big.Int).Mul(s.bigNum(), r.bigDen())
	return left.Cmp(right)
}

// Equal reports whether r and s denote the same number.
func (r Rational) Equal(s Rational) bool {
	return r == s
}

// Decimal returns r as a decimal rounded half away from zero to places
// fractional digits.
func (r Rational) Decimal(places int32) decimal.Decimal {
	return decimal.NewFromInt(r.num).DivRound(decimal.NewFromInt(r.Den()), places)
}

// String returns "num/den", e.g. "-5/6" or "3/1".
func (r Rational) String() string {
	return fmt.Sprintf("%d/%d", r.num, r.Den())
}

func (r Rational) bigNum() *big.Int {
	return big.NewInt(r.num)
}

func (r Rational) bigDen() *big.Int {
	return big.NewInt(r.Den())
}

// fromBig reduces num/den and narrows it back to 64 bits.
func fromBig(num, den *big.Int) (Rational, error) {
	if den.Sign() == 0 {
		return Rational{}, ErrDivisionByZero
	}
	if num.Sign() == 0 {
		return Rational{}, nil
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), new(big.Int).Abs(den))
	n := new(big.Int).Quo(num, g)
	d := new(big.Int).Quo(den, g)
	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}
	if !n.IsInt64() || !d.IsInt64() {
		return Rational{}, ErrOverflow
	}
	return Rational{num: n.Int64(), den: d.Int64() - 1}, nil
}

// build assembles a reduced magnitude pair into a Rational.
func build(neg bool, n, d uint64) (Rational, error) {
	if d > math.MaxInt64 {
		return Rational{}, ErrOverflow
	}
	switch {
	case n <= math.MaxInt64:
		num := int64(n)
		if neg {
			num = -num
		}
		return Rational{num: num, den: int64(d) - 1}, nil
	case neg && n == 1<<63:
		return Rational{num: math.MinInt64, den: int64(d) - 1}, nil
	}
	return Rational{}, ErrOverflow
}

// gcd is Euclid's algorithm. gcd(0, b) is b.
func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs64(x int64) uint64 {
	if x < 0 {
		return uint64(-(x + 1)) + 1
	}
	return uint64(x)
}
