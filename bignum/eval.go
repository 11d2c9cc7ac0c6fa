package bignum

import (
	"fmt"
	"math/big"

	"github.com/polyeval/horner"
)

// Eval evaluates at x the polynomial whose coefficients are coeffs, ordered
// from the highest-degree term to the constant term, using Horner's method.
// The precision of x is used as reference precision for the result.
//
// At least one coefficient is required. Callers that want the empty slice to
// mean the identically-zero polynomial should use EvalAnyRank instead.
func Eval(x *big.Float, coeffs []*big.Float) (y *big.Float, err error) {
	if len(coeffs) == 0 {
		return nil, fmt.Errorf("cannot Eval: %w", horner.ErrCardinalityTooLow)
	}
	return EvalAnyRank(x, coeffs), nil
}

// EvalAnyRank evaluates at x the polynomial whose coefficients are coeffs,
// ordered from the highest-degree term to the constant term, using Horner's
// method. The empty slice represents the identically-zero polynomial, so the
// call never fails and returns zero. The precision of x is used as reference
// precision for the result.
func EvalAnyRank(x *big.Float, coeffs []*big.Float) (y *big.Float) {
	y = new(big.Float).SetPrec(x.Prec())
	if len(coeffs) == 0 {
		return
	}
	y.Set(coeffs[0])
	for _, c := range coeffs[1:] {
		y.Mul(y, x)
		y.Add(y, c)
	}
	return
}

// EvalComplexAnyRank is EvalAnyRank over arbitrary precision complex numbers.
// The precision of x is used as reference precision for the result.
func EvalComplexAnyRank(x *Complex, coeffs []*Complex) (y *Complex) {
	if len(coeffs) == 0 {
		return NewComplex().SetPrec(x.Prec())
	}
	mul := NewComplexMultiplier()
	y = coeffs[0].Clone()
	y.SetPrec(x.Prec())
	for _, c := range coeffs[1:] {
		mul.Mul(y, x, y)
		y.Add(y, c)
	}
	return
}

// PowerSumEval evaluates the same polynomial as EvalAnyRank by computing each
// power of x independently and summing the terms. It serves as a reference
// point for the Horner evaluators, not as a fast path: each nonzero term
// costs one Pow call.
func PowerSumEval(x *big.Float, coeffs []*big.Float) (y *big.Float) {

	prec := x.Prec()
	y = new(big.Float).SetPrec(prec)

	n := len(coeffs)
	neg := x.Signbit()
	xAbs := new(big.Float).SetPrec(prec).Abs(x)
	zero := new(big.Float)
	tmp := new(big.Float).SetPrec(prec)

	for i, c := range coeffs {
		e := n - 1 - i
		if e == 0 {
			y.Add(y, c)
			continue
		}
		if xAbs.Cmp(zero) == 0 {
			continue
		}
		p := Pow(xAbs, NewFloat(e, prec))
		if neg && e&1 == 1 {
			p.Neg(p)
		}
		y.Add(y, tmp.Mul(c, p))
	}

	return
}
