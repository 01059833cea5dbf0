package sonify

import (
	"errors"
	"fmt"
	"math"

	"github.com/mirsound/gosonify/chord"
	"github.com/mirsound/gosonify/intervals"
)

var ErrShapeMismatch = errors.New("shapeMismatch")

// PeriodicFunc is a 2*pi-periodic waveform function such as math.Sin.
type PeriodicFunc func(float64) float64

// Interpolation selects how pitch-contour values are interpolated between
// annotation samples.
type Interpolation int

const (
	Linear Interpolation = iota
	Previous
	Nearest
)

// Times is the time axis of an energy grid: either plain timestamps, one per
// grid column, or explicit [start, end) intervals.
type Times struct {
	spans      [][2]float64
	fromStamps bool
	maxTime    float64
}

// Timestamps builds a time axis from M timestamps, interpreted as M-1
// consecutive half-open intervals.
func Timestamps(times []float64) Times {
	t := Times{spans: intervals.FromTimes(times), fromStamps: true}
	for _, v := range times {
		if v > t.maxTime {
			t.maxTime = v
		}
	}
	return t
}

// Intervals builds a time axis from explicit [start, end) second pairs.
func Intervals(spans [][2]float64) Times {
	t := Times{spans: spans}
	for _, s := range spans {
		if s[0] > t.maxTime {
			t.maxTime = s[0]
		}
		if s[1] > t.maxTime {
			t.maxTime = s[1]
		}
	}
	return t
}

// ClickTrack synthesizes a click at each event time.
type ClickTrack struct {
	// Click is the click kernel. Nil selects the default 1 kHz decaying blip.
	Click []float64
	// Length is the output sample count. Zero selects
	// max(times)*fs + len(click) + 1.
	Length int
}

// NewClickTrack creates a ClickTrack with default values.
func NewClickTrack() *ClickTrack {
	return &ClickTrack{}
}

// DefaultClick returns a fresh 100 ms click kernel: a 1 kHz tone with an
// exponential decay constant of 10 ms.
func DefaultClick(fs int) []float64 {
	n := int(float64(fs) * 0.1)
	click := make([]float64, n)
	for i := range click {
		click[i] = math.Sin(2*math.Pi*float64(i)*1000/float64(fs)) *
			math.Exp(-float64(i)/(float64(fs)*0.01))
	}
	return click
}

// Synthesize places a click at each time, in seconds. Clicks starting at or
// past the end of the buffer are dropped; a click overrunning the end is
// truncated.
func (ct *ClickTrack) Synthesize(times []float64, fs int) []float64 {
	click := ct.Click
	if click == nil {
		click = DefaultClick(fs)
	}

	length := ct.Length
	if length == 0 {
		var maxTime float64
		for _, t := range times {
			if t > maxTime {
				maxTime = t
			}
		}
		length = int(maxTime*float64(fs)) + len(click) + 1
	}

	out := make([]float64, length)
	for _, t := range times {
		start := int(t * float64(fs))
		if start < 0 || start >= length {
			continue
		}
		for i := 0; i < len(click) && start+i < length; i++ {
			out[start+i] = click[i]
		}
	}
	return out
}

// Grid is the time-frequency grid synthesizer configuration.
type Grid struct {
	// Function is the 2*pi-periodic carrier. Nil selects math.Sin.
	Function PeriodicFunc
	// NDec is the number of decimals each carrier frequency is quantized to
	// before synthesis. Higher precision costs proportionally more memory.
	NDec int
	// Threshold drops every frequency row whose maximum linear magnitude
	// stays below it. Deliberately lossy.
	Threshold float64
	// Length is the output sample count. Zero selects max(times)*fs.
	Length int
}

// NewGrid creates a Grid with default values.
func NewGrid() *Grid {
	return &Grid{
		Function:  math.Sin,
		NDec:      1,
		Threshold: 0.01,
	}
}

// Synthesize renders an energy grid. gram[n][m] is the magnitude of
// frequencies[n] (Hz) over the m-th time interval; non-positive magnitudes are
// silence. Returns ErrShapeMismatch when the grid, frequency and time
// dimensions disagree.
func (g *Grid) Synthesize(gram [][]float64, frequencies []float64, times Times, fs int) ([]float64, error) {
	length := g.Length
	if length == 0 {
		length = int(times.maxTime * float64(fs))
	}
	duration := float64(length) / float64(fs)

	cols := 0
	if len(gram) > 0 {
		cols = len(gram[0])
	}
	for n, row := range gram {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: gram row %d has %d columns, want %d", ErrShapeMismatch, n, len(row), cols)
		}
	}

	spans := append([][2]float64(nil), times.spans...)

	// Timestamps yield one interval fewer than stamps; extend the last
	// interval to the end of the signal when the grid expects one more.
	if times.fromStamps && len(spans) != cols {
		spans = append(spans, [2]float64{times.maxTime, duration})
	}

	if len(spans) != cols {
		return nil, fmt.Errorf("%w: %d time intervals for %d gram columns", ErrShapeMismatch, len(spans), cols)
	}
	if len(frequencies) != len(gram) {
		return nil, fmt.Errorf("%w: %d frequencies for %d gram rows", ErrShapeMismatch, len(frequencies), len(gram))
	}

	spans, values := alignGrid(spans, gram, duration)

	out := make([]float64, length)
	if len(spans) == 0 {
		// Nothing overlaps the requested duration.
		return out, nil
	}

	fn := g.Function
	if fn == nil {
		fn = math.Sin
	}

	starts := make([]float64, len(spans))
	for j, s := range spans {
		starts[j] = s[0] * float64(fs)
	}

	for n, row := range values {
		peak := 0.0
		for _, v := range row {
			if v > peak {
				peak = v
			}
		}
		if peak < g.Threshold {
			continue
		}

		env := stepEnvelope(starts, row, length)

		// Two carrier periods of boxcar smoothing removes the audible step
		// at each interval boundary.
		if f := frequencies[n]; f > 0 {
			if period := 2 * int(float64(fs)/f); period >= 1 {
				env = boxcarSame(env, period)
			}
		}

		cycle := oneCycle(frequencies[n], g.NDec, fs, fn)
		for i := range out {
			out[i] += cycle[i%len(cycle)] * env[i]
		}
	}

	normalizePeak(out)
	return out, nil
}

// Chroma renders a 12-row chromagram as Shepard tones: each pitch class is
// replicated across 7 octaves starting at MIDI note 24 and weighted by a
// Gaussian centered one octave above middle C.
func (g *Grid) Chroma(chromagram [][]float64, times Times, fs int) ([]float64, error) {
	if len(chromagram) != 12 {
		return nil, fmt.Errorf("%w: chromagram has %d rows, want 12", ErrShapeMismatch, len(chromagram))
	}

	const (
		nOctaves = 7
		baseNote = 24
		meanNote = 72.0
		stdNote  = 6.0
	)

	rows := 12 * nOctaves
	gram := make([][]float64, rows)
	freqs := make([]float64, rows)
	for r := 0; r < rows; r++ {
		note := float64(baseNote + r)
		weight := math.Exp(-(note - meanNote) * (note - meanNote) / (2 * stdNote * stdNote))
		src := chromagram[r%12]
		row := make([]float64, len(src))
		for j, v := range src {
			row[j] = v * weight
		}
		gram[r] = row
		freqs[r] = 440 * math.Pow(2, (note-69)/12)
	}

	return g.Synthesize(gram, freqs, times, fs)
}

// Chords renders a chord-label sequence. Spans are validated with
// intervals.Validate and labels decoded with chord.Encode; both error kinds
// propagate unmodified.
func (g *Grid) Chords(labels []string, spans [][2]float64, fs int) ([]float64, error) {
	if len(labels) != len(spans) {
		return nil, fmt.Errorf("%w: %d labels for %d intervals", ErrShapeMismatch, len(labels), len(spans))
	}
	if err := intervals.Validate(spans); err != nil {
		return nil, err
	}

	roots, bitmaps, _, err := chord.EncodeMany(labels)
	if err != nil {
		return nil, err
	}

	chromagram := make([][]float64, 12)
	for pc := range chromagram {
		chromagram[pc] = make([]float64, len(labels))
	}
	for t := range labels {
		rolled := bitmaps[t].Rotate(roots[t])
		for pc := 0; pc < 12; pc++ {
			chromagram[pc][t] = float64(rolled[pc])
		}
	}

	return g.Chroma(chromagram, Intervals(spans), fs)
}

// Contour is the pitch-contour synthesizer configuration.
type Contour struct {
	// Function is the 2*pi-periodic carrier. Nil selects math.Sin.
	Function PeriodicFunc
	// Kind selects the frequency and amplitude interpolation mode.
	Kind Interpolation
	// Length is the output sample count. Zero selects max(times)*fs.
	Length int
}

// NewContour creates a Contour with default values.
func NewContour() *Contour {
	return &Contour{
		Function: math.Sin,
		Kind:     Linear,
	}
}

// Synthesize renders a pitch contour sampled at the given times (seconds).
// Non-positive or NaN frequencies unvoice their samples. A nil amplitudes
// slice means constant 1 inside the contour's time span. The instantaneous
// phase is the running sum of the per-sample angular step, so glides and
// vibrato stay phase-continuous. The output is not normalized.
func (c *Contour) Synthesize(times, frequencies, amplitudes []float64, fs int) ([]float64, error) {
	if len(frequencies) != len(times) {
		return nil, fmt.Errorf("%w: %d frequencies for %d times", ErrShapeMismatch, len(frequencies), len(times))
	}
	if amplitudes != nil && len(amplitudes) != len(times) {
		return nil, fmt.Errorf("%w: %d amplitudes for %d times", ErrShapeMismatch, len(amplitudes), len(times))
	}

	length := c.Length
	if length == 0 {
		var maxTime float64
		for _, t := range times {
			if t > maxTime {
				maxTime = t
			}
		}
		length = int(maxTime * float64(fs))
	}

	xs := make([]float64, len(times))
	steps := make([]float64, len(times))
	amps := make([]float64, len(times))
	for k := range times {
		xs[k] = times[k] * float64(fs)
		f := frequencies[k]
		if f < 0 || math.IsNaN(f) {
			// The carrier is zero at phase zero, so a zero frequency
			// naturally silences the sample.
			f = 0
		}
		steps[k] = 2 * math.Pi * f / float64(fs)
		if amplitudes != nil {
			amps[k] = amplitudes[k]
		} else {
			amps[k] = 1
		}
	}
	sortByX(xs, steps, amps)

	stepEst := interpolate(xs, steps, c.Kind, length)
	ampEst := interpolate(xs, amps, c.Kind, length)

	fn := c.Function
	if fn == nil {
		fn = math.Sin
	}

	out := make([]float64, length)
	phase := 0.0
	for i := range out {
		phase += stepEst[i]
		out[i] = ampEst[i] * fn(phase)
	}
	return out, nil
}
