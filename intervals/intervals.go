package intervals

import (
	"errors"
	"fmt"
)

var ErrInvalidInterval = errors.New("invalidInterval")

// Validate checks that spans is a well-formed interval set: no negative times,
// no negative durations, starts sorted ascending, no overlap between
// consecutive spans. Returns an error wrapping ErrInvalidInterval otherwise.
func Validate(spans [][2]float64) error {
	for i, s := range spans {
		if s[0] < 0 || s[1] < 0 {
			return fmt.Errorf("%w: span %d has negative time [%g, %g]", ErrInvalidInterval, i, s[0], s[1])
		}
		if s[1] < s[0] {
			return fmt.Errorf("%w: span %d has negative duration [%g, %g]", ErrInvalidInterval, i, s[0], s[1])
		}
		if i > 0 {
			if s[0] < spans[i-1][0] {
				return fmt.Errorf("%w: span %d starts before span %d", ErrInvalidInterval, i, i-1)
			}
			if s[0] < spans[i-1][1] {
				return fmt.Errorf("%w: span %d overlaps span %d", ErrInvalidInterval, i, i-1)
			}
		}
	}
	return nil
}

// FromTimes converts a sequence of M timestamps into M-1 consecutive
// [t_i, t_i+1) spans.
func FromTimes(times []float64) [][2]float64 {
	if len(times) < 2 {
		return nil
	}
	spans := make([][2]float64, len(times)-1)
	for i := 0; i+1 < len(times); i++ {
		spans[i] = [2]float64{times[i], times[i+1]}
	}
	return spans
}
