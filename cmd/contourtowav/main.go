package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mirsound/gosonify/sonify"
	"github.com/mirsound/gosonify/wavio"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: contourtowav <contour_file> [sample_rate]")
		os.Exit(1)
	}

	var filename = os.Args[1]

	sampleRate := 44100
	if len(os.Args) > 2 {
		sr, err := strconv.Atoi(os.Args[2])
		if err != nil || sr <= 0 {
			fmt.Printf("Invalid sample rate: %v\n", os.Args[2])
			os.Exit(1)
		}
		sampleRate = sr
	}

	times, frequencies, amplitudes, err := readContour(filename)
	if err != nil {
		fmt.Printf("Error reading contour: %v\n", err)
		os.Exit(1)
	}

	var contour = sonify.NewContour()

	output, err := contour.Synthesize(times, frequencies, amplitudes, sampleRate)
	if err != nil {
		fmt.Printf("Error synthesizing contour: %v\n", err)
		os.Exit(1)
	}

	if err := wavio.Save(filename+".wav", output, sampleRate); err != nil {
		fmt.Printf("Error writing wav: %v\n", err)
		os.Exit(1)
	}
}

func readContour(filename string) (times, frequencies, amplitudes []float64, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, nil, nil, err
	}
	defer file.Close()

	hasAmps := false
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, nil, nil, fmt.Errorf("malformed line: %q", line)
		}
		t, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, nil, nil, err
		}
		f, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, nil, nil, err
		}
		a := 1.0
		if len(fields) > 2 {
			hasAmps = true
			a, err = strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, nil, nil, err
			}
		}
		times = append(times, t)
		frequencies = append(frequencies, f)
		amplitudes = append(amplitudes, a)
	}
	if !hasAmps {
		amplitudes = nil
	}
	return times, frequencies, amplitudes, scanner.Err()
}
