// Package chord decodes Harte-style chord label strings ("C:maj", "A#:min7",
// "Db:7/3", "N") into a root pitch class and a 12-bit pitch-class bitmap,
// suitable for building chromagrams and other pitch-class representations.
package chord
