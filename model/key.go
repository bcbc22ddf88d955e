package model

import "strconv"

type Key struct {
	// position on the circle, 0 is C and it goes up by fifths
	Index      int
	Major      string
	Minor      string
	Diminished string

	// "0", or a count followed by "#" or "b"
	Signature string
}

// Accidentals splits the signature into a count and a display glyph.
func (k Key) Accidentals() (int, string) {
	if k.Signature == "" || k.Signature == "0" {
		return 0, ""
	}
	n, err := strconv.Atoi(k.Signature[:len(k.Signature)-1])
	if err != nil {
		return 0, ""
	}
	if k.Signature[len(k.Signature)-1] == '#' {
		return n, "♯"
	}
	return n, "♭"
}

type DiatonicChord struct {
	Numeral string
	Name    string
	Notes   []string
}
