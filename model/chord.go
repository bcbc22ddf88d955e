package model

// Notes are MIDI key numbers, 60 being middle C.
type Notes = []uint8

type ChordDefinition struct {
	Symbol  string
	Name    string
	Degrees []string

	// semitones above the root, may be past an octave for extensions
	Intervals []int
}

type ChordCategory struct {
	Name   string
	Chords []ChordDefinition
}

// FullName is the root followed by the quality symbol, e.g. "F#m7".
func FullName(root string, def ChordDefinition) string {
	return root + def.Symbol
}
