package stats

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalibrate_IdentityClamps(t *testing.T) {
	in := []float64{0.2, -0.1, 1.3, 0.9}
	out := Calibrate(in)

	assert.Equal(t, []float64{0.2, 0, 1, 0.9}, out)
	assert.Equal(t, []float64{0.2, -0.1, 1.3, 0.9}, in, "input must not be modified")
}

func TestCalibrate_KeepsNaN(t *testing.T) {
	out := Calibrate([]float64{math.NaN(), 0.5})
	assert.True(t, math.IsNaN(out[0]))
	assert.Equal(t, 0.5, out[1])
}

func TestFitIsotonic_Errors(t *testing.T) {
	_, err := FitIsotonic([]float64{0.1}, []float64{0, 1})
	require.ErrorIs(t, err, ErrLengthMismatch)

	_, err = FitIsotonic(nil, nil)
	require.ErrorIs(t, err, ErrInsufficientData)

	_, err = FitIsotonic([]float64{math.Inf(1)}, []float64{1})
	require.ErrorIs(t, err, ErrInsufficientData)
}

func TestFitIsotonic_PoolsViolators(t *testing.T) {
	scores := []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}
	labels := []float64{0, 1, 0, 1, 1, 1}

	iso, err := FitIsotonic(scores, labels)
	require.NoError(t, err)

	out := iso.Apply(scores)
	assert.InDeltaSlice(t, []float64{0, 0.5, 0.5, 1, 1, 1}, out, 1e-12)
}

func TestFitIsotonic_MonotoneAndBounded(t *testing.T) {
	scores := []float64{0.9, 0.1, 0.5, 0.5, 0.3, 0.7, 0.2, 0.8}
	labels := []float64{1, 0, 0, 1, 1, 0, 0, 2}

	iso, err := FitIsotonic(scores, labels)
	require.NoError(t, err)

	probe := []float64{-1, 0, 0.05, 0.15, 0.25, 0.4, 0.5, 0.65, 0.75, 0.85, 0.95, 2}
	out := iso.Apply(probe)

	assert.True(t, slices.IsSorted(out), "calibrated values must preserve rank order: %v", out)
	for _, v := range out {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}

func TestCalibrator_Interface(t *testing.T) {
	var _ Calibrator = Identity{}
	var _ Calibrator = (*Isotonic)(nil)
}
