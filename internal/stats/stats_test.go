package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	t.Run("four values", func(t *testing.T) {
		s := Describe([]float64{1, 2, 3, 4})
		assert.Equal(t, 4, s.Count)
		assert.InDelta(t, 2.5, s.Mean, 1e-12)
		assert.InDelta(t, 1.2910, s.Std, 1e-4)
		assert.Equal(t, 1.0, s.Min)
		assert.Equal(t, 4.0, s.Max)
	})

	t.Run("empty", func(t *testing.T) {
		s := Describe(nil)
		assert.Zero(t, s.Count)
		assert.True(t, math.IsNaN(s.Mean))
		assert.True(t, math.IsNaN(s.Std))
		assert.True(t, math.IsNaN(s.Min))
		assert.True(t, math.IsNaN(s.Max))
	})

	t.Run("single value has zero std", func(t *testing.T) {
		for _, x := range []float64{-3.5, 0, 42} {
			s := Describe([]float64{x})
			assert.Equal(t, 1, s.Count)
			assert.Equal(t, x, s.Mean)
			assert.Zero(t, s.Std)
		}
	})

	t.Run("mean within min and max", func(t *testing.T) {
		samples := [][]float64{
			{0.1, 0.2, 0.3, 0.4},
			{-10, 5, 7.25, 1e6},
			{3, 3, 3},
			{-1e-9, 1e-9},
			{0.1, 0.1, 0.1},
			{0.7, 0.7, 0.7},
			{1e308, 1e308},
			{-1e308, 1e308},
		}
		for _, v := range samples {
			s := Describe(v)
			assert.Equal(t, len(v), s.Count)
			assert.LessOrEqual(t, s.Min, s.Mean)
			assert.LessOrEqual(t, s.Mean, s.Max)
			assert.False(t, math.IsNaN(s.Std) || math.IsInf(s.Std, 0), "std of %v", v)
		}
	})

	t.Run("constant sample", func(t *testing.T) {
		s := Describe([]float64{0.1, 0.1, 0.1})
		assert.Equal(t, 0.1, s.Mean)
		s = Describe([]float64{1e308, 1e308})
		assert.Equal(t, 1e308, s.Mean)
		assert.Zero(t, s.Std)
	})
}

func TestWelchTTest(t *testing.T) {
	t.Run("insufficient data", func(t *testing.T) {
		cases := [][2][]float64{
			{{1}, {1, 2, 3}},
			{{1, 2, 3}, {}},
			{nil, nil},
		}
		for _, c := range cases {
			r := WelchTTest(c[0], c[1])
			assert.True(t, math.IsNaN(r.T))
			assert.True(t, math.IsNaN(r.DF))
			assert.True(t, math.IsNaN(r.PValue))
		}
	})

	t.Run("sample against itself", func(t *testing.T) {
		a := []float64{1.2, 3.4, 2.2, 5.1, 0.3}
		r := WelchTTest(a, a)
		assert.Zero(t, r.T)
		assert.Equal(t, 1.0, r.PValue)
		assert.Greater(t, r.DF, 0.0)
	})

	t.Run("known values", func(t *testing.T) {
		a := []float64{27.5, 21.0, 19.0, 23.6, 17.0, 17.9, 16.9, 20.1, 21.9, 22.6, 23.1, 19.6, 19.0, 21.7, 21.4}
		b := []float64{27.1, 22.0, 20.8, 23.4, 23.4, 23.5, 25.8, 22.0, 24.8, 20.2, 21.9, 22.1, 22.9, 20.5, 24.4}
		r := WelchTTest(a, b)
		assert.InDelta(t, -2.46, r.T, 0.01)
		assert.InDelta(t, 24.99, r.DF, 0.05)
		assert.InDelta(t, 0.021, r.PValue, 0.002)
	})

	t.Run("zero variance with different means", func(t *testing.T) {
		r := WelchTTest([]float64{1, 1, 1}, []float64{2, 2})
		assert.True(t, math.IsInf(r.T, 1))
		assert.True(t, math.IsNaN(r.DF))
		assert.Zero(t, r.PValue)
	})

	t.Run("zero variance with equal means", func(t *testing.T) {
		r := WelchTTest([]float64{4, 4}, []float64{4, 4, 4})
		assert.Zero(t, r.T)
		assert.Equal(t, 1.0, r.PValue)
	})
}

func TestTwoTailedPValue(t *testing.T) {
	for _, df := range []float64{1, 2.5, 10, 120} {
		assert.Equal(t, 1.0, TwoTailedPValue(0, df))

		prev := 1.0
		for _, tv := range []float64{0.1, 0.5, 1, 2, 3, 5} {
			p := TwoTailedPValue(tv, df)
			require.GreaterOrEqual(t, p, 0.0)
			require.LessOrEqual(t, p, 1.0)
			require.Less(t, p, prev, "p must decrease as |t| grows (df=%v, t=%v)", df, tv)
			assert.Equal(t, p, TwoTailedPValue(-tv, df), "two-tailed p must be symmetric")
			prev = p
		}
	}

	assert.True(t, math.IsNaN(TwoTailedPValue(1, math.NaN())))
	assert.True(t, math.IsNaN(TwoTailedPValue(math.NaN(), 3)))
	assert.Zero(t, TwoTailedPValue(math.Inf(-1), 3))
}

func TestMeanShift(t *testing.T) {
	assert.InDelta(t, 1.5, MeanShift([]float64{1, 2}, []float64{3, 3}), 1e-12)
	assert.True(t, math.IsNaN(MeanShift(nil, []float64{1})))
	assert.True(t, math.IsNaN(MeanShift([]float64{1}, nil)))
}
