/*
Package horner evaluates univariate polynomials with Horner's method:
a0*x^(n-1) + a1*x^(n-2) + ... + a_{n-1} is rewritten as the nested form
(...((a0*x + a1)*x + a2)*x + ...)*x + a_{n-1}, which costs exactly n-1
multiplications and n-1 additions and, for floating-point types, avoids
the loss of precision that comes from computing large powers of x
independently.

Coefficients are ordered from the highest-degree term down to the constant
term: the polynomial 72x^2 + 81x + 99 is the slice [72, 81, 99]. The same
convention applies to every entry point of this module, including the
arbitrary-precision mirror in the bignum sub-package.
*/
package horner

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is the set of scalar types a polynomial can be evaluated over.
// Every type in the set has a zero value and supports the multiply-accumulate
// step y = y*x + c, which is all the evaluation kernel requires.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// ErrCardinalityTooLow is returned by Eval when given an empty coefficient
// slice: without at least one coefficient the call cannot represent any
// polynomial, not even the zero polynomial.
var ErrCardinalityTooLow = errors.New("cardinality of the coefficient slice is too low")

// Eval evaluates at x the polynomial whose coefficients are coeffs, ordered
// from the highest-degree term to the constant term.
//
// At least one coefficient is required. Callers that want the empty slice to
// mean the identically-zero polynomial should use EvalAnyRank instead.
func Eval[T Number](x T, coeffs []T) (y T, err error) {
	if len(coeffs) == 0 {
		return y, fmt.Errorf("cannot Eval: %w", ErrCardinalityTooLow)
	}
	return reduce(x, coeffs), nil
}

// EvalAnyRank evaluates at x the polynomial whose coefficients are coeffs,
// ordered from the highest-degree term to the constant term. The empty slice
// represents the identically-zero polynomial, so the call never fails and
// EvalAnyRank(x, nil) returns the zero value of T for every x, the same
// result as an all-zero coefficient slice of any length.
func EvalAnyRank[T Number](x T, coeffs []T) (y T) {
	if len(coeffs) == 0 {
		return
	}
	return reduce(x, coeffs)
}

// EvalKnownRank is EvalAnyRank with the coefficient count fixed at the call
// site by the literal argument list. Go has no generic compile-time array
// lengths, so the variadic form stands in for a fixed-size array contract.
// Counts up to three are unrolled; the unrolled forms perform the operations
// in the same order as the reduction loop, so results are bit-identical.
func EvalKnownRank[T Number](x T, coeffs ...T) (y T) {
	switch len(coeffs) {
	case 0:
		return
	case 1:
		return coeffs[0]
	case 2:
		return coeffs[0]*x + coeffs[1]
	case 3:
		return (coeffs[0]*x+coeffs[1])*x + coeffs[2]
	default:
		return reduce(x, coeffs)
	}
}

// reduce is the Horner kernel. coeffs must be non-empty.
func reduce[T Number](x T, coeffs []T) (y T) {
	y = coeffs[0]
	for _, c := range coeffs[1:] {
		y = y*x + c
	}
	return
}
