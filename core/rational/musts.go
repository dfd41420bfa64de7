package rational

import "fmt"

// Over is like [New] but panics if den is zero or the reduced fraction
// overflows. It is meant for literals such as rational.Over(1, 2).
func Over(num, den int64) Rational {
	r, err := New(num, den)
	if err != nil {
		panic(fmt.Sprintf("Over(%d, %d) failed: %v", num, den, err))
	}
	return r
}

// MustAdd is like [Rational.Add] but panics if computing error.
func (r Rational) MustAdd(s Rational) Rational {
	t, err := r.Add(s)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", s, err))
	}
	return t
}

// MustSub is like [Rational.Sub] but panics if computing error.
func (r Rational) MustSub(s Rational) Rational {
	t, err := r.Sub(s)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v) failed: %v", s, err))
	}
	return t
}

// MustMul is like [Rational.Mul] but panics if computing error.
func (r Rational) MustMul(s Rational) Rational {
	t, err := r.Mul(s)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v) failed: %v", s, err))
	}
	return t
}

// MustQuo is like [Rational.Quo] but panics if computing error.
func (r Rational) MustQuo(s Rational) Rational {
	t, err := r.Quo(s)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", s, err))
	}
	return t
}
