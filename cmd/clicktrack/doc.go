// Command clicktrack renders an event-time annotation file as a click-track
// WAV, so beat or onset annotations can be checked by ear.
//
// The input file carries one event time in seconds per line; blank lines and
// lines starting with '#' are skipped.
//
// Usage:
//
//	clicktrack <times_file> [sample_rate] [click_audio]
//
// The output WAV file will be named <times_file>.wav
// Optional sample_rate parameter (default: 44100 Hz)
// Optional click_audio parameter: a WAV or FLAC file used as the click kernel
// instead of the default 1 kHz blip
package main
