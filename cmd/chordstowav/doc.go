// Command chordstowav renders a chord annotation file (.lab) as audio, so a
// chord transcription can be checked by ear.
//
// Each input line carries a start time, an end time (both in seconds) and a
// Harte-style chord label, separated by whitespace:
//
//	0.000 2.612 G:maj
//	2.612 5.317 E:min7
//
// Usage:
//
//	chordstowav <lab_file> [sample_rate]
//
// The output WAV file will be named <lab_file>.wav
// Optional sample_rate parameter (default: 44100 Hz)
package main
