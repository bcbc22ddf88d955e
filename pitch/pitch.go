package pitch

import (
	"strings"
	"unicode/utf8"

	"github.com/jsphweid/keywheel/util"
)

// Class is a note with octave and spelling thrown away, 0 (C) through 11 (B).
type Class int

var sharpNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
var flatNames = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

var baseValues = map[rune]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

func accidentalValue(r rune) int {
	switch r {
	case '#', '♯':
		return 1
	case 'b', '♭':
		return -1
	}
	return 0
}

// FromName converts a note name like "Eb", "f##" or "B♭♭" into its pitch
// class. Characters after the letter that aren't accidentals are ignored.
// ok is false when the name doesn't start with a letter A-G.
func FromName(name string) (c Class, ok bool) {
	if name == "" {
		return 0, false
	}
	letter, size := utf8.DecodeRuneInString(name)
	base, ok := baseValues[toUpper(letter)]
	if !ok {
		return 0, false
	}
	for _, r := range name[size:] {
		base += accidentalValue(r)
	}
	return Class(util.Mod(base, 12)), true
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'g' {
		return r - 'a' + 'A'
	}
	return r
}

// UsesFlats reports whether the accidentals of name contain a flat mark.
// The letter itself is skipped so "b" (the note B) is not a flat.
func UsesFlats(name string) bool {
	if name == "" {
		return false
	}
	_, size := utf8.DecodeRuneInString(name)
	return strings.ContainsAny(name[size:], "b♭")
}

// Name spells c using the flat alphabet when flats is set, sharps otherwise.
func Name(c Class, flats bool) string {
	i := util.Mod(int(c), 12)
	if flats {
		return flatNames[i]
	}
	return sharpNames[i]
}

// Roots returns the chromatic order that chord matching walks through.
func Roots() []string {
	res := make([]string, len(sharpNames))
	copy(res, sharpNames[:])
	return res
}

// Transpose moves c up by semitones, wrapping around the octave.
func (c Class) Transpose(semitones int) Class {
	return Class(util.Mod(int(c)+semitones, 12))
}
