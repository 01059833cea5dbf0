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
		fmt.Println("Usage: chordstowav <lab_file> [sample_rate]")
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

	labels, spans, err := readLab(filename)
	if err != nil {
		fmt.Printf("Error reading lab file: %v\n", err)
		os.Exit(1)
	}

	var grid = sonify.NewGrid()

	output, err := grid.Chords(labels, spans, sampleRate)
	if err != nil {
		fmt.Printf("Error synthesizing chords: %v\n", err)
		os.Exit(1)
	}

	if err := wavio.Save(filename+".wav", output, sampleRate); err != nil {
		fmt.Printf("Error writing wav: %v\n", err)
		os.Exit(1)
	}
}

func readLab(filename string) ([]string, [][2]float64, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	var labels []string
	var spans [][2]float64
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, nil, fmt.Errorf("malformed line: %q", line)
		}
		start, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, nil, err
		}
		end, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, nil, err
		}
		spans = append(spans, [2]float64{start, end})
		labels = append(labels, fields[2])
	}
	return labels, spans, scanner.Err()
}
