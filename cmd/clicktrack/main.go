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
		fmt.Println("Usage: clicktrack <times_file> [sample_rate] [click_audio]")
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

	var track = sonify.NewClickTrack()

	if len(os.Args) > 3 {
		click, _, err := wavio.Load(os.Args[3])
		if err != nil {
			fmt.Printf("Error loading click audio: %v\n", err)
			os.Exit(1)
		}
		track.Click = click
	}

	times, err := readTimes(filename)
	if err != nil {
		fmt.Printf("Error reading times: %v\n", err)
		os.Exit(1)
	}

	output := track.Synthesize(times, sampleRate)

	if err := wavio.Save(filename+".wav", output, sampleRate); err != nil {
		fmt.Printf("Error writing wav: %v\n", err)
		os.Exit(1)
	}
}

func readTimes(filename string) ([]float64, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var times []float64
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		t, err := strconv.ParseFloat(strings.Fields(line)[0], 64)
		if err != nil {
			return nil, err
		}
		times = append(times, t)
	}
	return times, scanner.Err()
}
