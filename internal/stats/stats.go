// Package stats implements the measurement toolkit used by the bass section:
// descriptive statistics, Welch's two-sample t-test, population stability
// index drift scores and probability calibration.
//
// Every function is pure. Insufficient data is signalled with NaN fields
// rather than errors, so callers must check Count (or the inputs' lengths)
// before trusting the other values.
package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Summary holds descriptive statistics of a sample.
type Summary struct {
	Count int     `json:"count"`
	Mean  float64 `json:"mean"`
	Std   float64 `json:"std"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

// Describe computes count, mean, Bessel-corrected standard deviation, min and
// max. An empty sample yields Count 0 and NaN for every other field; a single
// observation has Std 0.
func Describe(values []float64) Summary {
	if len(values) == 0 {
		nan := math.NaN()
		return Summary{Mean: nan, Std: nan, Min: nan, Max: nan}
	}

	lo, hi := floats.Min(values), floats.Max(values)
	mean, std := scaledMeanStd(values, math.Max(math.Abs(lo), math.Abs(hi)))
	if len(values) == 1 {
		std = 0
	}
	// Summation rounding can land a hair outside the sample range.
	if mean < lo {
		mean = lo
	} else if mean > hi {
		mean = hi
	}
	return Summary{
		Count: len(values),
		Mean:  mean,
		Std:   std,
		Min:   lo,
		Max:   hi,
	}
}

// scaledMeanStd divides values by the power of two just above maxAbs before
// summing, so finite samples near math.MaxFloat64 cannot overflow. Scaling by
// a power of two is exact.
func scaledMeanStd(values []float64, maxAbs float64) (mean, std float64) {
	if maxAbs == 0 || math.IsInf(maxAbs, 0) || math.IsNaN(maxAbs) {
		mean, variance := stat.MeanVariance(values, nil)
		return mean, math.Sqrt(variance)
	}
	_, exp := math.Frexp(maxAbs)
	scaled := make([]float64, len(values))
	for i, x := range values {
		scaled[i] = math.Ldexp(x, -exp)
	}
	mean, variance := stat.MeanVariance(scaled, nil)
	return math.Ldexp(mean, exp), math.Ldexp(math.Sqrt(variance), exp)
}

// TTest is the outcome of a two-sample t-test.
type TTest struct {
	T      float64 `json:"t"`
	DF     float64 `json:"df"`
	PValue float64 `json:"p_value"`
}

// WelchTTest compares the means of a and b without assuming equal
// variances. Each group needs at least two observations, otherwise every
// field is NaN.
//
// When the standard error is exactly zero the statistic is +Inf for
// differing means (p = 0) and 0 for equal means (p = 1). DF comes from the
// Welch–Satterthwaite equation and is NaN when its denominator vanishes.
func WelchTTest(a, b []float64) TTest {
	if len(a) < 2 || len(b) < 2 {
		nan := math.NaN()
		return TTest{T: nan, DF: nan, PValue: nan}
	}

	na, nb := float64(len(a)), float64(len(b))
	meanA, varA := stat.MeanVariance(a, nil)
	meanB, varB := stat.MeanVariance(b, nil)
	seA, seB := varA/na, varB/nb

	num := meanA - meanB
	den := math.Sqrt(seA + seB)
	var t float64
	switch {
	case den != 0:
		t = num / den
	case num != 0:
		t = math.Inf(1)
	}

	df := math.NaN()
	if dfDen := seA*seA/(na-1) + seB*seB/(nb-1); dfDen != 0 {
		df = (seA + seB) * (seA + seB) / dfDen
	}

	return TTest{T: t, DF: df, PValue: TwoTailedPValue(t, df)}
}

// TwoTailedPValue returns P(|T| >= |t|) for Student's t distribution with df
// degrees of freedom. The result lies in [0, 1], equals 1 at t = 0 and
// decreases strictly as |t| grows. Infinite t gives 0 regardless of df.
func TwoTailedPValue(t, df float64) float64 {
	switch {
	case math.IsNaN(t):
		return math.NaN()
	case math.IsInf(t, 0):
		return 0
	case t == 0:
		return 1
	case math.IsNaN(df) || df <= 0:
		return math.NaN()
	}
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return clamp01(2 * dist.Survival(math.Abs(t)))
}

// MeanShift is the absolute difference between the two sample means. It is
// a cheap drift proxy; DriftScore is the binned measure. Empty input yields
// NaN.
func MeanShift(reference, current []float64) float64 {
	if len(reference) == 0 || len(current) == 0 {
		return math.NaN()
	}
	return math.Abs(stat.Mean(reference, nil) - stat.Mean(current, nil))
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}
