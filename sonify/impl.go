package sonify

import (
	"math"
	"sort"
)

// Smallest positive normal float64; peaks below it are treated as silence.
const minNormal = 0x1p-1022

// alignGrid clips an interval set and its grid columns to exactly cover
// [0, duration]: silent columns are padded onto either end, intervals with no
// overlap are dropped together with their columns, surviving bounds are
// clipped into range, and negative magnitudes are discarded. The input is
// never mutated.
func alignGrid(spans [][2]float64, gram [][]float64, duration float64) ([][2]float64, [][]float64) {
	minStart := math.Inf(1)
	maxEnd := math.Inf(-1)
	for _, s := range spans {
		if s[0] < minStart {
			minStart = s[0]
		}
		if s[1] < minStart {
			minStart = s[1]
		}
		if s[0] > maxEnd {
			maxEnd = s[0]
		}
		if s[1] > maxEnd {
			maxEnd = s[1]
		}
	}

	var padded [][2]float64
	padFront := len(spans) > 0 && minStart > 0
	padBack := len(spans) > 0 && maxEnd < duration
	if padFront {
		padded = append(padded, [2]float64{0, minStart})
	}
	padded = append(padded, spans...)
	if padBack {
		padded = append(padded, [2]float64{maxEnd, duration})
	}

	outSpans := make([][2]float64, 0, len(padded))
	keep := make([]int, 0, len(padded))
	for j, s := range padded {
		if s[1] < 0 || s[0] > duration {
			continue
		}
		outSpans = append(outSpans, [2]float64{clamp(s[0], 0, duration), clamp(s[1], 0, duration)})
		keep = append(keep, j)
	}

	values := make([][]float64, len(gram))
	for n, row := range gram {
		out := make([]float64, len(keep))
		for i, j := range keep {
			// Padded columns are silent; the rest come from the grid,
			// clipped to non-negative magnitudes.
			if padFront {
				j--
			}
			if j < 0 || j >= len(row) {
				continue
			}
			if v := row[j]; v > 0 {
				out[i] = v
			}
		}
		values[n] = out
	}

	return outSpans, values
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// stepEnvelope expands per-interval magnitudes into a per-sample step
// function with hold-previous semantics: sample i takes the value of the
// latest interval whose start position is <= i, the first value before that,
// and the last value from the last start onward.
func stepEnvelope(starts, values []float64, length int) []float64 {
	env := make([]float64, length)
	j := 0
	for i := 0; i < length; i++ {
		for j+1 < len(starts) && starts[j+1] <= float64(i) {
			j++
		}
		env[i] = values[j]
	}
	return env
}

// boxcarSame convolves signal with a uniform-average window of the given
// width, centered, same-length output, zero-padded at the edges.
func boxcarSame(signal []float64, width int) []float64 {
	prefix := make([]float64, len(signal)+1)
	for i, v := range signal {
		prefix[i+1] = prefix[i] + v
	}

	out := make([]float64, len(signal))
	center := (width - 1) / 2
	for i := range out {
		lo := i + center + 1 - width
		hi := i + center + 1
		if lo < 0 {
			lo = 0
		}
		if hi > len(signal) {
			hi = len(signal)
		}
		out[i] = (prefix[hi] - prefix[lo]) / float64(width)
	}
	return out
}

// quantize rounds a frequency to nDec decimal places.
func quantize(frequency float64, nDec int) float64 {
	scale := math.Pow(10, float64(nDec))
	return math.Round(frequency*scale) / scale
}

// oneCycle synthesizes a single tile of 10^nDec * fs samples at the quantized
// frequency. That tile length always holds an exact integer number of periods
// of the quantized frequency, so indexing it modulo its length yields an
// arbitrarily long phase-continuous tone at O(tile) cost.
func oneCycle(frequency float64, nDec int, fs int, fn PeriodicFunc) []float64 {
	f := quantize(frequency, nDec)
	n := int(math.Pow(10, float64(nDec)) * float64(fs))
	cycle := make([]float64, n)
	step := 2 * math.Pi * f / float64(fs)
	for i := range cycle {
		cycle[i] = fn(step * float64(i))
	}
	return cycle
}

// normalizePeak scales the buffer into [-1, 1] by its absolute peak, unless
// the peak is indistinguishable from silence.
func normalizePeak(buf []float64) {
	peak := 0.0
	for _, v := range buf {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	if peak < minNormal {
		return
	}
	for i := range buf {
		buf[i] /= peak
	}
}

// sortByX sorts the three parallel slices by ascending x in place.
func sortByX(xs, ys, zs []float64) {
	idx := make([]int, len(xs))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return xs[idx[a]] < xs[idx[b]] })

	reorder := func(s []float64) {
		tmp := make([]float64, len(s))
		for i, j := range idx {
			tmp[i] = s[j]
		}
		copy(s, tmp)
	}
	reorder(xs)
	reorder(ys)
	reorder(zs)
}

// interpolate samples the irregular series (xs, ys) onto the integer grid
// 0..length-1. Outside [xs[0], xs[len-1]] the value is zero. xs must be
// sorted ascending.
func interpolate(xs, ys []float64, kind Interpolation, length int) []float64 {
	out := make([]float64, length)
	if len(xs) == 0 {
		return out
	}
	last := len(xs) - 1
	j := 0
	for i := 0; i < length; i++ {
		x := float64(i)
		if x < xs[0] || x > xs[last] {
			continue
		}
		for j+1 < len(xs) && xs[j+1] <= x {
			j++
		}
		switch kind {
		case Previous:
			out[i] = ys[j]
		case Nearest:
			if j < last && xs[j+1]-x < x-xs[j] {
				out[i] = ys[j+1]
			} else {
				out[i] = ys[j]
			}
		default:
			if j < last {
				t := (x - xs[j]) / (xs[j+1] - xs[j])
				out[i] = ys[j] + t*(ys[j+1]-ys[j])
			} else {
				out[i] = ys[j]
			}
		}
	}
	return out
}
