// Package wavio loads and saves mono audio as float64 sample vectors.
// WAV files are handled through faiface/beep, FLAC files through mewkiz/flac;
// multichannel input is reduced to its first channel.
package wavio
