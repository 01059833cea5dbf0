package wavio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
	"github.com/mewkiz/flac"
)

var ErrUnsupportedFormat = errors.New("unsupportedFormat")

// Load reads a WAV or FLAC file (dispatched on extension) into a mono sample
// vector and reports its sample rate.
func Load(path string) ([]float64, int, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return loadWav(path)
	case ".flac":
		return loadFlac(path)
	}
	return nil, 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

// Save writes a mono 16-bit WAV file from a sample vector.
func Save(path string, samples []float64, fs int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	format := beep.Format{
		SampleRate:  beep.SampleRate(fs),
		NumChannels: 1,
		Precision:   2,
	}
	if err := wav.Encode(f, &bufferStreamer{samples: samples}, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// bufferStreamer streams a float64 vector as a beep source, duplicating the
// mono signal onto both channels.
type bufferStreamer struct {
	samples []float64
	pos     int
}

func (b *bufferStreamer) Stream(samples [][2]float64) (int, bool) {
	if b.pos >= len(b.samples) {
		return 0, false
	}
	n := 0
	for n < len(samples) && b.pos < len(b.samples) {
		v := b.samples[b.pos]
		samples[n][0], samples[n][1] = v, v
		n++
		b.pos++
	}
	return n, true
}

func (b *bufferStreamer) Err() error { return nil }

func loadWav(path string) ([]float64, int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer file.Close()

	stream, format, err := wav.Decode(file)
	if err != nil {
		return nil, 0, err
	}
	defer stream.Close()

	out := make([]float64, 0, stream.Len())
	buf := make([][2]float64, 512)
	for {
		n, ok := stream.Stream(buf)
		for i := 0; i < n; i++ {
			out = append(out, buf[i][0])
		}
		if !ok {
			break
		}
	}
	if err := stream.Err(); err != nil {
		return nil, 0, err
	}
	return out, int(format.SampleRate), nil
}

func loadFlac(path string) ([]float64, int, error) {
	stream, err := flac.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer stream.Close()

	scale := float64(int64(1) << (stream.Info.BitsPerSample - 1))
	var out []float64
	for {
		frame, err := stream.ParseNext()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, err
		}
		for _, s := range frame.Subframes[0].Samples {
			out = append(out, float64(s)/scale)
		}
	}
	return out, int(stream.Info.SampleRate), nil
}
