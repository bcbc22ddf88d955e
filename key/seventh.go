package key

import (
	"strings"

	"github.com/jsphweid/keywheel/pitch"
)

var seventhShapes = map[string][]int{
	"major": {0, 4, 7, 11},
	"minor": {0, 3, 7, 10},
	"dim":   {0, 3, 6, 9},
}

// splitChordName turns "F#m" into "F#" and "minor". Only the short names
// used in the diatonic tables are understood.
func splitChordName(name string) (string, string) {
	root := name
	if len(name) > 1 && (name[1] == '#' || name[1] == 'b') {
		root = name[:2]
	} else if len(name) > 0 {
		root = name[:1]
	}

	switch {
	case strings.HasSuffix(name, "°"):
		return root, "dim"
	case strings.HasSuffix(name, "m"):
		return root, "minor"
	}
	return root, "major"
}

// seventhNotes spells the seventh chord for a diatonic chord name. flats
// comes from the key so every chord in one key uses the same alphabet.
func seventhNotes(name string, flats bool) []string {
	root, shape := splitChordName(name)
	rootClass, ok := pitch.FromName(root)
	if !ok {
		return []string{}
	}
	res := make([]string, 0, 4)
	for _, interval := range seventhShapes[shape] {
		res = append(res, pitch.Name(rootClass.Transpose(interval), flats))
	}
	return res
}
