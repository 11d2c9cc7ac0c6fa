package sampling

import (
	"encoding/binary"
)

// RandUint64 returns a random value between 0 and 0xFFFFFFFFFFFFFFFF read
// from the given PRNG.
func RandUint64(prng PRNG) uint64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := prng.Read(b); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(b)
}

// RandFloat64 returns a random float between min and max read from the given
// PRNG.
func RandFloat64(prng PRNG, min, max float64) float64 {
	f := float64(RandUint64(prng)) / 1.8446744073709552e+19
	return min + f*(max-min)
}

// RandComplex128 returns a random complex with the real and imaginary part
// between min and max read from the given PRNG.
func RandComplex128(prng PRNG, min, max float64) complex128 {
	return complex(RandFloat64(prng, min, max), RandFloat64(prng, min, max))
}

// RandFloat64Slice returns a slice of n random floats between min and max
// read from the given PRNG.
func RandFloat64Slice(prng PRNG, n int, min, max float64) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = RandFloat64(prng, min, max)
	}
	return s
}
