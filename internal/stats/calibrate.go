package stats

import (
	"errors"
	"math"
	"slices"
	"sort"
)

var (
	// ErrLengthMismatch is returned when paired inputs differ in length.
	ErrLengthMismatch = errors.New("stats: inputs differ in length")
	// ErrInsufficientData is returned when a fit has nothing to learn from.
	ErrInsufficientData = errors.New("stats: insufficient data")
)

// Calibrator maps raw probabilities onto calibrated ones. Implementations
// keep every output in [0, 1] and never invert the order of two inputs.
type Calibrator interface {
	Apply(probs []float64) []float64
}

// Calibrate is the identity calibration: it returns a copy of probs clamped
// into [0, 1]. NaN entries are passed through unchanged.
func Calibrate(probs []float64) []float64 {
	return Identity{}.Apply(probs)
}

// Identity is the pass-through Calibrator.
type Identity struct{}

// Apply implements Calibrator.
func (Identity) Apply(probs []float64) []float64 {
	out := make([]float64, len(probs))
	for i, p := range probs {
		if math.IsNaN(p) {
			out[i] = p
			continue
		}
		out[i] = clamp01(p)
	}
	return out
}

// Isotonic is a monotone step-function calibrator fitted with the
// pool-adjacent-violators algorithm.
type Isotonic struct {
	// upper[i] is the largest score pooled into block i; value[i] is the
	// block's calibrated probability. Both are non-decreasing.
	upper []float64
	value []float64
}

type pool struct {
	upper  float64
	sum    float64
	weight float64
}

func (p pool) mean() float64 { return p.sum / p.weight }

// FitIsotonic learns a non-decreasing mapping from scores to the observed
// labels. Labels are clamped into [0, 1] so the fitted values are valid
// probabilities. Non-finite scores are rejected as insufficient data.
func FitIsotonic(scores, labels []float64) (*Isotonic, error) {
	if len(scores) != len(labels) {
		return nil, ErrLengthMismatch
	}
	if len(scores) == 0 || slices.ContainsFunc(scores, nonFinite) {
		return nil, ErrInsufficientData
	}

	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return scores[order[i]] < scores[order[j]] })

	var pools []pool
	for _, idx := range order {
		y := labels[idx]
		if math.IsNaN(y) {
			continue
		}
		y = clamp01(y)
		x := scores[idx]

		// Tied scores must land in the same block.
		if n := len(pools); n > 0 && pools[n-1].upper == x {
			pools[n-1].sum += y
			pools[n-1].weight++
		} else {
			pools = append(pools, pool{upper: x, sum: y, weight: 1})
		}

		for n := len(pools); n > 1 && pools[n-2].mean() > pools[n-1].mean(); n = len(pools) {
			last := pools[n-1]
			pools = pools[:n-1]
			pools[n-2].sum += last.sum
			pools[n-2].weight += last.weight
			pools[n-2].upper = last.upper
		}
	}
	if len(pools) == 0 {
		return nil, ErrInsufficientData
	}

	iso := &Isotonic{
		upper: make([]float64, len(pools)),
		value: make([]float64, len(pools)),
	}
	for i, p := range pools {
		iso.upper[i] = p.upper
		iso.value[i] = p.mean()
	}
	return iso, nil
}

// Apply implements Calibrator. Scores beyond the fitted range take the value
// of the nearest block.
func (c *Isotonic) Apply(probs []float64) []float64 {
	out := make([]float64, len(probs))
	for i, p := range probs {
		if math.IsNaN(p) {
			out[i] = p
			continue
		}
		j := sort.SearchFloat64s(c.upper, p)
		if j == len(c.upper) {
			j--
		}
		out[i] = c.value[j]
	}
	return out
}
