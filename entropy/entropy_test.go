package entropy_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/ensemble/density"
	"github.com/calebcase/ensemble/entropy"
	"github.com/calebcase/ensemble/interval"
)

func mustInterval(t *testing.T, lower, upper float64) interval.Interval {
	t.Helper()

	i, err := interval.FromFloats(lower, upper)
	require.NoError(t, err)

	return i
}

// cosine is a density shape the package does not manufacture.
type cosine struct {
	i interval.Interval
}

func (c cosine) At(x float64) float64 {
	if !c.i.Contains(x) {
		return 0
	}

	w := c.i.WidthFloat()

	return (1 + math.Cos(2*math.Pi*(x-c.i.LowerFloat())/w)) / w
}

func (c cosine) Support() interval.Interval {
	return c.i
}

func TestClosedUniform(t *testing.T) {
	type TC struct {
		Lower float64
		Upper float64
		Want  float64
		Mark  error
	}

	tcs := []TC{
		{
			Lower: 0,
			Upper: 1,
			Want:  0,
			Mark:  oops.New("unexpected"),
		},
		{
			Lower: 0,
			Upper: math.E,
			Want:  1,
			Mark:  oops.New("unexpected"),
		},
		{
			Lower: -2,
			Upper: 2,
			Want:  math.Log(4),
			Mark:  oops.New("unexpected"),
		},
		{
			// Width below 1 makes the differential entropy negative.
			Lower: 0,
			Upper: 0.5,
			Want:  math.Log(0.5),
			Mark:  oops.New("unexpected"),
		},
	}

	for _, tc := range tcs {
		u := density.NewUniform(mustInterval(t, tc.Lower, tc.Upper))

		h, err := entropy.Closed{}.Entropy(u)
		require.NoError(t, err, tc.Mark)
		require.InDelta(t, tc.Want, h, 1e-12, tc.Mark)
	}
}

func TestClosedUniformSum(t *testing.T) {
	a := density.NewUniform(mustInterval(t, 0, 1))
	b := density.NewUniform(mustInterval(t, 0, 2))

	h, err := entropy.Closed{}.Entropy(density.Convolve(a, b))
	require.NoError(t, err)
	require.InDelta(t, math.Log(2)+0.25, h, 1e-12)

	// Equal widths: the triangular density, entropy ln(w) + 1/2.
	h, err = entropy.Closed{}.Entropy(density.Convolve(a, a))
	require.NoError(t, err)
	require.InDelta(t, 0.5, h, 1e-12)
}

func TestClosedUnknownShape(t *testing.T) {
	_, err := entropy.Closed{}.Entropy(cosine{i: mustInterval(t, 0, 1)})
	require.Error(t, err)
	require.ErrorIs(t, err, entropy.ErrUnknownShape)
}

func TestNumericMatchesClosed(t *testing.T) {
	r := rand.New(rand.NewSource(4))

	closed := entropy.Closed{}
	numeric := entropy.Numeric{}

	for n := 0; n < 50; n++ {
		lo := float64(r.Intn(64)) / 8
		w1 := float64(r.Intn(64)+8) / 16
		w2 := float64(r.Intn(64)+8) / 16

		a := density.NewUniform(mustInterval(t, lo, lo+w1))
		b := density.NewUniform(mustInterval(t, lo-1, lo-1+w2))

		for _, d := range []density.Density{a, b, density.Convolve(a, b)} {
			hc, err := closed.Entropy(d)
			require.NoError(t, err)

			hn, err := numeric.Entropy(d)
			require.NoError(t, err)

			require.InDelta(t, hc, hn, 1e-3)
		}
	}
}

// Axiom 1: a uniform is the maximum-entropy density over its interval, and
// strictly so for any other shape.
func TestMaxEntropyBound(t *testing.T) {
	r := rand.New(rand.NewSource(5))

	closed := entropy.Closed{}
	numeric := entropy.Numeric{}

	for n := 0; n < 50; n++ {
		w1 := float64(r.Intn(56)+8) / 8
		w2 := float64(r.Intn(56)+8) / 8

		a := density.NewUniform(mustInterval(t, 0, w1))
		b := density.NewUniform(mustInterval(t, 0, w2))

		sum := density.Convolve(a, b)
		cover := density.NewUniform(sum.Support())

		hSum, err := closed.Entropy(sum)
		require.NoError(t, err)

		hCover, err := closed.Entropy(cover)
		require.NoError(t, err)

		require.Less(t, hSum, hCover)

		// Equality holds exactly when the density is the uniform itself.
		hAgain, err := closed.Entropy(density.NewUniform(sum.Support()))
		require.NoError(t, err)
		require.Equal(t, hCover, hAgain)

		hNumSum, err := numeric.Entropy(sum)
		require.NoError(t, err)

		hNumCover, err := numeric.Entropy(cover)
		require.NoError(t, err)

		require.Less(t, hNumSum, hNumCover)
	}

	t.Run("opaque shape", func(t *testing.T) {
		i := mustInterval(t, 0, 2)

		h, err := entropy.Numeric{}.Entropy(cosine{i: i})
		require.NoError(t, err)

		hu, err := entropy.Numeric{}.Entropy(density.NewUniform(i))
		require.NoError(t, err)

		require.Less(t, h, hu)
	})
}

// Axiom 2: convolving two uniforms strictly loses entropy against a uniform
// cover of the combined width.
func TestConvolutionLosesEntropy(t *testing.T) {
	r := rand.New(rand.NewSource(6))

	closed := entropy.Closed{}

	for n := 0; n < 200; n++ {
		lo1 := float64(r.Intn(100)-50) / 4
		lo2 := float64(r.Intn(100)-50) / 4
		w1 := float64(r.Intn(56)+8) / 8
		w2 := float64(r.Intn(56)+8) / 8

		i1 := mustInterval(t, lo1, lo1+w1)
		i2 := mustInterval(t, lo2, lo2+w2)

		conv := density.Convolve(density.NewUniform(i1), density.NewUniform(i2))
		cover := density.NewUniform(interval.Add(i1, i2))

		hConv, err := closed.Entropy(conv)
		require.NoError(t, err)

		hCover, err := closed.Entropy(cover)
		require.NoError(t, err)

		require.Less(t, hConv, hCover)
	}
}

func TestDefault(t *testing.T) {
	u := density.NewUniform(mustInterval(t, 0, 1))

	h, err := entropy.Default.Entropy(u)
	require.NoError(t, err)
	require.Zero(t, h)
}
