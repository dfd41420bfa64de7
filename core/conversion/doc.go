// Package conversion converts numbers between positional bases 2 to 36 and
// records every arithmetic step it takes along the way.
//
// The entry point is ChangeBase (or Convert with a Request). Input is either
// a bare integer such as "4D2" or an integer and a fractional part separated
// by a comma, such as "10,125". Letters are accepted in either case.
//
// Four building blocks do the actual work, each returning a steps.Trace:
//
//   - IntegerToDecimal expands digits by place value.
//   - DecimalToBase divides repeatedly and collects remainders.
//   - FractionToDecimal sums digit * base^-(i+1) exactly.
//   - DecimalFractionToBase multiplies repeatedly and collects integer parts,
//     giving up after a fixed number of steps for non-terminating fractions.
//
// Integer values are exact and unbounded. Fractions are exact rationals with
// 64-bit parts, so very long fractional inputs fail with rational.ErrOverflow
// rather than lose precision.
package conversion
