package sonify_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirsound/gosonify/sonify"
)

// TestContour_ConstantTone: a constant-frequency contour over the whole
// buffer integrates to a plain sine.
func TestContour_ConstantTone(t *testing.T) {
	const fs = 8000

	contour := sonify.NewContour()
	contour.Length = 8000

	out, err := contour.Synthesize([]float64{0, 1}, []float64{440, 440}, nil, fs)
	require.NoError(t, err)
	require.Len(t, out, 8000)

	// Phase is the running sum of angular steps, so sample i sits at
	// (i+1) steps.
	for i := 0; i < 8000; i += 11 {
		assert.InDelta(t, math.Sin(2*math.Pi*440*float64(i+1)/fs), out[i], 1e-6,
			"sample %d", i)
	}
}

// TestContour_SilentOutsideSpan: the synthesized tone exists only inside the
// contour's time span.
func TestContour_SilentOutsideSpan(t *testing.T) {
	const fs = 8000

	contour := sonify.NewContour()
	contour.Length = 8000

	out, err := contour.Synthesize([]float64{0.25, 0.75}, []float64{440, 440}, nil, fs)
	require.NoError(t, err)

	for i := 0; i < 2000; i++ {
		require.Zero(t, out[i], "silence before the contour")
	}
	for i := 6001; i < 8000; i++ {
		require.Zero(t, out[i], "silence after the contour")
	}

	peak := 0.0
	for _, v := range out[2000:6000] {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	assert.InDelta(t, 1.0, peak, 1e-3, "full amplitude inside the span")
}

// TestContour_AmplitudeRamp: amplitudes interpolate alongside frequency.
func TestContour_AmplitudeRamp(t *testing.T) {
	const fs = 8000

	contour := sonify.NewContour()
	contour.Length = 8000

	out, err := contour.Synthesize([]float64{0, 1}, []float64{440, 440}, []float64{0, 1}, fs)
	require.NoError(t, err)

	peakIn := func(s []float64) float64 {
		peak := 0.0
		for _, v := range s {
			if a := math.Abs(v); a > peak {
				peak = a
			}
		}
		return peak
	}
	assert.Less(t, peakIn(out[:800]), 0.15)
	assert.Greater(t, peakIn(out[7200:]), 0.85)
}

// TestContour_UnvoicedSamples: NaN and negative frequencies are treated as
// unvoiced and never poison the output.
func TestContour_UnvoicedSamples(t *testing.T) {
	contour := sonify.NewContour()
	contour.Length = 4000

	out, err := contour.Synthesize(
		[]float64{0, 0.2, 0.3, 0.5},
		[]float64{440, math.NaN(), -200, 440},
		nil,
		8000,
	)
	require.NoError(t, err)
	for i, v := range out {
		require.False(t, math.IsNaN(v), "sample %d is NaN", i)
	}
}

// TestContour_PreviousHold: with Previous interpolation the first annotated
// frequency holds unchanged until the next annotation.
func TestContour_PreviousHold(t *testing.T) {
	const fs = 8000

	contour := sonify.NewContour()
	contour.Kind = sonify.Previous
	contour.Length = 8000

	out, err := contour.Synthesize([]float64{0, 0.5, 1}, []float64{440, 880, 880}, nil, fs)
	require.NoError(t, err)

	for i := 0; i < 4000; i += 13 {
		assert.InDelta(t, math.Sin(2*math.Pi*440*float64(i+1)/fs), out[i], 1e-6,
			"sample %d holds the first frequency", i)
	}
}

// TestContour_NearestHold mirrors the previous test for Nearest mode.
func TestContour_NearestHold(t *testing.T) {
	const fs = 8000

	contour := sonify.NewContour()
	contour.Kind = sonify.Nearest
	contour.Length = 8000

	out, err := contour.Synthesize([]float64{0, 1}, []float64{440, 880}, nil, fs)
	require.NoError(t, err)

	for i := 0; i < 3999; i += 13 {
		assert.InDelta(t, math.Sin(2*math.Pi*440*float64(i+1)/fs), out[i], 1e-6,
			"sample %d is nearest to the first annotation", i)
	}
}

// TestContour_UnsortedTimesAreSorted: annotation order must not matter.
func TestContour_UnsortedTimesAreSorted(t *testing.T) {
	contour := sonify.NewContour()
	contour.Length = 8000

	a, err := contour.Synthesize([]float64{0, 1}, []float64{440, 880}, nil, 8000)
	require.NoError(t, err)
	b, err := contour.Synthesize([]float64{1, 0}, []float64{880, 440}, nil, 8000)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestContour_ShapeMismatch rejects mismatched annotation vectors.
func TestContour_ShapeMismatch(t *testing.T) {
	contour := sonify.NewContour()
	contour.Length = 100

	_, err := contour.Synthesize([]float64{0, 1}, []float64{440}, nil, 8000)
	assert.ErrorIs(t, err, sonify.ErrShapeMismatch)

	_, err = contour.Synthesize([]float64{0, 1}, []float64{440, 440}, []float64{1}, 8000)
	assert.ErrorIs(t, err, sonify.ErrShapeMismatch)
}

// TestContour_DefaultLength: with no explicit length the buffer runs to
// max(times)*fs.
func TestContour_DefaultLength(t *testing.T) {
	contour := sonify.NewContour()

	out, err := contour.Synthesize([]float64{0, 0.5}, []float64{440, 440}, nil, 8000)
	require.NoError(t, err)
	assert.Len(t, out, 4000)
}
