package chord

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidChord = errors.New("invalidChord")

// NoChord is the root value reported for the no-chord ("N") and
// unknown-chord ("X") labels.
const NoChord = -1

// Bitmap marks which pitch classes sound in a chord, relative to the root:
// bitmap[0] is the root itself, bitmap[7] the perfect fifth above it.
type Bitmap [12]int

// Rotate shifts the bitmap so that relative intervals become absolute pitch
// classes for the given root.
func (b Bitmap) Rotate(root int) Bitmap {
	var out Bitmap
	if root < 0 {
		return out
	}
	for i := 0; i < 12; i++ {
		out[(i+root)%12] = b[i]
	}
	return out
}

var pitchClasses = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// Shorthand quality names and the scale degrees they sound.
var qualities = map[string][]string{
	"maj":     {"1", "3", "5"},
	"min":     {"1", "b3", "5"},
	"aug":     {"1", "3", "#5"},
	"dim":     {"1", "b3", "b5"},
	"sus4":    {"1", "4", "5"},
	"sus2":    {"1", "2", "5"},
	"7":       {"1", "3", "5", "b7"},
	"maj7":    {"1", "3", "5", "7"},
	"min7":    {"1", "b3", "5", "b7"},
	"minmaj7": {"1", "b3", "5", "7"},
	"maj6":    {"1", "3", "5", "6"},
	"min6":    {"1", "b3", "5", "6"},
	"dim7":    {"1", "b3", "b5", "bb7"},
	"hdim7":   {"1", "b3", "b5", "b7"},
	"9":       {"1", "3", "5", "b7", "9"},
	"maj9":    {"1", "3", "5", "7", "9"},
	"min9":    {"1", "b3", "5", "b7", "9"},
	"11":      {"1", "3", "5", "b7", "9", "11"},
	"min11":   {"1", "b3", "5", "b7", "9", "11"},
	"13":      {"1", "3", "5", "b7", "9", "11", "13"},
	"maj13":   {"1", "3", "5", "7", "9", "11", "13"},
	"min13":   {"1", "b3", "5", "b7", "9", "11", "13"},
	"5":       {"1", "5"},
	"1":       {"1"},
	"":        {"1", "3", "5"},
}

var degreeSemitones = map[int]int{
	1: 0, 2: 2, 3: 4, 4: 5, 5: 7, 6: 9, 7: 11,
	8: 12, 9: 14, 10: 16, 11: 17, 12: 19, 13: 21,
}

// pitchClass resolves a note name like "C", "F#" or "Bbb" to 0..11.
func pitchClass(note string) (int, error) {
	if note == "" {
		return 0, fmt.Errorf("%w: empty root", ErrInvalidChord)
	}
	pc, ok := pitchClasses[note[0]]
	if !ok {
		return 0, fmt.Errorf("%w: unknown note %q", ErrInvalidChord, note)
	}
	for _, r := range note[1:] {
		switch r {
		case '#':
			pc++
		case 'b':
			pc--
		default:
			return 0, fmt.Errorf("%w: unknown note %q", ErrInvalidChord, note)
		}
	}
	return ((pc % 12) + 12) % 12, nil
}

// degreeSemitone resolves a scale degree like "3", "b7" or "#11" to a
// semitone offset from the root, folded to 0..11.
func degreeSemitone(degree string) (int, error) {
	offset := 0
	i := 0
	for ; i < len(degree); i++ {
		if degree[i] == 'b' {
			offset--
		} else if degree[i] == '#' {
			offset++
		} else {
			break
		}
	}
	num := 0
	if i == len(degree) {
		return 0, fmt.Errorf("%w: bad degree %q", ErrInvalidChord, degree)
	}
	for ; i < len(degree); i++ {
		if degree[i] < '0' || degree[i] > '9' {
			return 0, fmt.Errorf("%w: bad degree %q", ErrInvalidChord, degree)
		}
		num = num*10 + int(degree[i]-'0')
	}
	semi, ok := degreeSemitones[num]
	if !ok {
		return 0, fmt.Errorf("%w: bad degree %q", ErrInvalidChord, degree)
	}
	return (((semi + offset) % 12) + 12) % 12, nil
}

// Encode decodes a single chord label into its root pitch class, the
// root-relative interval bitmap, and the bass pitch class. Callers that need
// absolute pitch classes rotate the bitmap by the root. "N" and "X" decode to
// root NoChord with an all-zero bitmap.
func Encode(label string) (root int, bitmap Bitmap, bass int, err error) {
	label = strings.TrimSpace(label)
	if label == "N" || label == "X" {
		return NoChord, Bitmap{}, NoChord, nil
	}

	rest := label
	bassDegree := ""
	if idx := strings.IndexByte(rest, '/'); idx >= 0 {
		bassDegree = rest[idx+1:]
		rest = rest[:idx]
	}

	rootPart, quality := rest, ""
	if idx := strings.IndexByte(rest, ':'); idx >= 0 {
		rootPart, quality = rest[:idx], rest[idx+1:]
	}

	root, err = pitchClass(rootPart)
	if err != nil {
		return 0, Bitmap{}, 0, err
	}

	// Split off any parenthesized degree list from the shorthand quality.
	degrees := ""
	if idx := strings.IndexByte(quality, '('); idx >= 0 {
		if !strings.HasSuffix(quality, ")") {
			return 0, Bitmap{}, 0, fmt.Errorf("%w: unbalanced parens in %q", ErrInvalidChord, label)
		}
		degrees = quality[idx+1 : len(quality)-1]
		quality = quality[:idx]
	}

	// A bare degree list enumerates the chord itself; otherwise the
	// shorthand quality provides the base intervals.
	var base []string
	if quality != "" || degrees == "" {
		var ok bool
		base, ok = qualities[quality]
		if !ok {
			return 0, Bitmap{}, 0, fmt.Errorf("%w: unknown quality %q", ErrInvalidChord, quality)
		}
	}

	var rel Bitmap
	for _, d := range base {
		semi, derr := degreeSemitone(d)
		if derr != nil {
			return 0, Bitmap{}, 0, derr
		}
		rel[semi] = 1
	}
	if degrees != "" {
		for _, d := range strings.Split(degrees, ",") {
			d = strings.TrimSpace(d)
			omit := strings.HasPrefix(d, "*")
			if omit {
				d = d[1:]
			}
			semi, derr := degreeSemitone(d)
			if derr != nil {
				return 0, Bitmap{}, 0, derr
			}
			if omit {
				rel[semi] = 0
			} else {
				rel[semi] = 1
			}
		}
	}

	// The root always sounds.
	rel[0] = 1

	bass = root
	if bassDegree != "" {
		semi, derr := degreeSemitone(bassDegree)
		if derr != nil {
			return 0, Bitmap{}, 0, derr
		}
		bass = (root + semi) % 12
	}

	return root, rel, bass, nil
}

// EncodeMany decodes a sequence of chord labels. The first malformed label
// aborts the whole batch.
func EncodeMany(labels []string) (roots []int, bitmaps []Bitmap, basses []int, err error) {
	roots = make([]int, len(labels))
	bitmaps = make([]Bitmap, len(labels))
	basses = make([]int, len(labels))
	for i, label := range labels {
		roots[i], bitmaps[i], basses[i], err = Encode(label)
		if err != nil {
			return nil, nil, nil, err
		}
	}
	return roots, bitmaps, basses, nil
}
