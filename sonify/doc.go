// Package sonify renders symbolic music-annotation data into audible
// waveforms, so automatic analysis output can be evaluated by ear. It supports:
//   - Click tracks from event times (beats, onsets)
//   - Reverse synthesis of time-frequency energy grids (piano rolls, spectra)
//   - Pitch contours with glide and vibrato via direct phase integration
//   - Chromagrams rendered as octave-ambiguous Shepard tones
//   - Chord-label sequences via the chord package decoder
//
// All synthesis is pure: inputs are read-only, every call allocates a fresh
// output buffer, and no state is shared across calls.
package sonify
