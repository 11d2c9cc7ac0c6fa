package sampling_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/polyeval/horner/utils"
	"github.com/polyeval/horner/utils/sampling"
)

func Test_PRNG(t *testing.T) {

	t.Run("KeyedPRNG", func(t *testing.T) {

		key := []byte{0x49, 0x0a, 0x42, 0x3d, 0x97, 0x9d, 0xc1, 0x07, 0xa1, 0xd7, 0xe9, 0x7b, 0x3b, 0xce, 0xa1, 0xdb,
			0x42, 0xf3, 0xa6, 0xd5, 0x75, 0xd2, 0x0c, 0x92, 0xb7, 0x35, 0xce, 0x0c, 0xee, 0x09, 0x7c, 0x98}

		Ha, _ := sampling.NewKeyedPRNG(key)
		Hb, _ := sampling.NewKeyedPRNG(key)

		sum0 := make([]byte, 512)
		sum1 := make([]byte, 512)

		for i := 0; i < 128; i++ {
			Hb.Read(sum1)
		}

		Hb.Reset()

		Ha.Read(sum0)
		Hb.Read(sum1)

		require.Equal(t, sum0, sum1)
	})

	t.Run("Key", func(t *testing.T) {

		Ha, err := sampling.NewPRNGFromLabel("test/key")
		require.NoError(t, err)

		Hb, err := sampling.NewKeyedPRNG(Ha.Key())
		require.NoError(t, err)

		sum0 := make([]byte, 512)
		sum1 := make([]byte, 512)

		Ha.Read(sum0)
		Hb.Read(sum1)

		require.Equal(t, sum0, sum1)
	})

	t.Run("FromLabel", func(t *testing.T) {

		Ha, err := sampling.NewPRNGFromLabel("test/coeffs")
		require.NoError(t, err)
		Hb, err := sampling.NewPRNGFromLabel("test/coeffs")
		require.NoError(t, err)

		a := sampling.RandFloat64Slice(Ha, 64, -1, 1)
		b := sampling.RandFloat64Slice(Hb, 64, -1, 1)
		require.True(t, utils.EqualSlice(a, b))

		Hc, err := sampling.NewPRNGFromLabel("test/other")
		require.NoError(t, err)
		c := sampling.RandFloat64Slice(Hc, 64, -1, 1)
		require.False(t, utils.EqualSlice(a, c))

		for _, f := range a {
			require.GreaterOrEqual(t, f, -1.0)
			require.LessOrEqual(t, f, 1.0)
		}
	})

	t.Run("ThreadSafePRNG", func(t *testing.T) {

		prng, err := sampling.NewPRNG()
		require.NoError(t, err)

		sum0 := make([]byte, 512)
		sum1 := make([]byte, 512)

		_, err = prng.Read(sum0)
		require.NoError(t, err)
		_, err = prng.Read(sum1)
		require.NoError(t, err)

		require.NotEqual(t, sum0, sum1)

		f := sampling.RandFloat64(prng, -1, 1)
		require.GreaterOrEqual(t, f, -1.0)
		require.LessOrEqual(t, f, 1.0)
	})
}
