// Command contourtowav renders a pitch-contour annotation file (for example
// an f0 track) as audio, so a melody transcription can be checked by ear.
//
// Each input line carries a time in seconds, a frequency in Hz and an
// optional amplitude, separated by whitespace. Non-positive frequencies mark
// unvoiced samples:
//
//	0.00 220.0
//	0.01 221.5 0.8
//
// Usage:
//
//	contourtowav <contour_file> [sample_rate]
//
// The output WAV file will be named <contour_file>.wav
// Optional sample_rate parameter (default: 44100 Hz)
package main
