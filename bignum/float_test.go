package bignum

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewFloat(t *testing.T) {
	require.Equal(t, 0.0, mustFloat64(NewFloat(nil, 53)))
	require.Equal(t, -3.0, mustFloat64(NewFloat(-3, 53)))
	require.Equal(t, 42.0, mustFloat64(NewFloat(uint64(42), 53)))
	require.Equal(t, 1.5, mustFloat64(NewFloat(1.5, 53)))
	require.Equal(t, 7.0, mustFloat64(NewFloat(big.NewInt(7), 53)))
}

func TestPow(t *testing.T) {
	testPow(2, 1.4142135623730951, 1e-15, t)
	testPow(99, 9, 1e-12, t)
	testPow(0.5, 7, 1e-15, t)
}

func testPow(x, e, epsilon float64, t *testing.T) {
	y, _ := Pow(NewFloat(x, 53), NewFloat(e, 53)).Float64()
	require.InEpsilon(t, math.Pow(x, e), y, epsilon)
}

func mustFloat64(x *big.Float) float64 {
	f, _ := x.Float64()
	return f
}
