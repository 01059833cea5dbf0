package chord_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirsound/gosonify/chord"
)

func classes(b chord.Bitmap) []int {
	out := []int{}
	for pc, v := range b {
		if v != 0 {
			out = append(out, pc)
		}
	}
	return out
}

// TestEncode_Qualities covers the shorthand quality table against known
// root-relative interval sets.
func TestEncode_Qualities(t *testing.T) {
	cases := []struct {
		label string
		root  int
		rel   []int
	}{
		{"C", 0, []int{0, 4, 7}},
		{"C:maj", 0, []int{0, 4, 7}},
		{"A:min", 9, []int{0, 3, 7}},
		{"A:min7", 9, []int{0, 3, 7, 10}},
		{"G:7", 7, []int{0, 4, 7, 10}},
		{"Bb:maj7", 10, []int{0, 4, 7, 11}},
		{"C#:maj", 1, []int{0, 4, 7}},
		{"Db:maj", 1, []int{0, 4, 7}},
		{"F#:dim", 6, []int{0, 3, 6}},
		{"F#:dim7", 6, []int{0, 3, 6, 9}},
		{"D:hdim7", 2, []int{0, 3, 6, 10}},
		{"E:aug", 4, []int{0, 4, 8}},
		{"D:sus2", 2, []int{0, 2, 7}},
		{"D:sus4", 2, []int{0, 5, 7}},
		{"C:maj6", 0, []int{0, 4, 7, 9}},
		{"C:9", 0, []int{0, 2, 4, 7, 10}},
		{"G:5", 7, []int{0, 7}},
	}
	for _, tc := range cases {
		root, bitmap, _, err := chord.Encode(tc.label)
		require.NoError(t, err, tc.label)
		assert.Equal(t, tc.root, root, tc.label)
		assert.Equal(t, tc.rel, classes(bitmap), tc.label)
	}
}

// TestEncode_NoChord: "N" and "X" decode to silence.
func TestEncode_NoChord(t *testing.T) {
	for _, label := range []string{"N", "X"} {
		root, bitmap, bass, err := chord.Encode(label)
		require.NoError(t, err)
		assert.Equal(t, chord.NoChord, root)
		assert.Equal(t, chord.NoChord, bass)
		assert.Empty(t, classes(bitmap))
	}
}

// TestEncode_DegreeLists: parenthesized additions and omissions.
func TestEncode_DegreeLists(t *testing.T) {
	_, bitmap, _, err := chord.Encode("C:(1,5)")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 7}, classes(bitmap))

	_, bitmap, _, err = chord.Encode("C:maj(*3,9)")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 7}, classes(bitmap))
}

// TestEncode_Bass: inversions shift the bass, not the bitmap.
func TestEncode_Bass(t *testing.T) {
	root, bitmap, bass, err := chord.Encode("C:maj/3")
	require.NoError(t, err)
	assert.Equal(t, 0, root)
	assert.Equal(t, 4, bass)
	assert.Equal(t, []int{0, 4, 7}, classes(bitmap))

	_, _, bass, err = chord.Encode("E:min/b3")
	require.NoError(t, err)
	assert.Equal(t, 7, bass)
}

// TestBitmap_Rotate maps root-relative intervals onto absolute pitch classes.
func TestBitmap_Rotate(t *testing.T) {
	root, bitmap, _, err := chord.Encode("A:min7")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 4, 7, 9}, classes(bitmap.Rotate(root)))
}

// TestEncode_Invalid rejects malformed labels with ErrInvalidChord.
func TestEncode_Invalid(t *testing.T) {
	for _, label := range []string{"H:maj", "C:weird", "C:maj(3", "C:maj(14)", "", "Cx:maj"} {
		_, _, _, err := chord.Encode(label)
		assert.ErrorIs(t, err, chord.ErrInvalidChord, label)
	}
}

// TestEncodeMany aborts the whole batch on the first malformed label.
func TestEncodeMany(t *testing.T) {
	roots, bitmaps, basses, err := chord.EncodeMany([]string{"C:maj", "G:7", "N"})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 7, chord.NoChord}, roots)
	assert.Len(t, bitmaps, 3)
	assert.Len(t, basses, 3)

	_, _, _, err = chord.EncodeMany([]string{"C:maj", "nonsense"})
	assert.ErrorIs(t, err, chord.ErrInvalidChord)
}
