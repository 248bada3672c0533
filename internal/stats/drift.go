package stats

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DefaultBins is the bin count DriftScore uses when bins <= 0.
const DefaultBins = 10

// psiPseudoCount is added to every bin before normalising so that empty bins
// never produce ln(0) or a division by zero.
const psiPseudoCount = 0.5

// DriftScore computes the population stability index of current against
// reference:
//
//	PSI = Σ (p_i − q_i) · ln(p_i / q_i)
//
// where p_i and q_i are the smoothed proportions of reference and current in
// bin i. Bins have equal width over the combined range of both samples.
// Non-finite values are ignored. Either sample being empty yields NaN, and
// identical samples score 0.
func DriftScore(reference, current []float64, bins int) float64 {
	reference, current = finite(reference), finite(current)
	if len(reference) == 0 || len(current) == 0 {
		return math.NaN()
	}
	if bins <= 0 {
		bins = DefaultBins
	}

	lo := math.Min(floats.Min(reference), floats.Min(current))
	hi := math.Max(floats.Max(reference), floats.Max(current))
	if lo == hi {
		return 0
	}

	dividers := floats.Span(make([]float64, bins+1), lo, hi)
	// Histogram bins are half-open, so nudge the last edge to include hi.
	dividers[bins] = math.Nextafter(hi, math.Inf(1))

	p := proportions(reference, dividers)
	q := proportions(current, dividers)

	var psi float64
	for i := range p {
		psi += (p[i] - q[i]) * math.Log(p[i]/q[i])
	}
	return psi
}

func proportions(values, dividers []float64) []float64 {
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	counts := stat.Histogram(nil, dividers, sorted, nil)
	total := float64(len(values)) + psiPseudoCount*float64(len(counts))
	for i := range counts {
		counts[i] = (counts[i] + psiPseudoCount) / total
	}
	return counts
}

func finite(values []float64) []float64 {
	if !slices.ContainsFunc(values, nonFinite) {
		return values
	}
	return slices.DeleteFunc(slices.Clone(values), nonFinite)
}

func nonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
