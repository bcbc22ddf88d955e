package key

import (
	"github.com/jsphweid/keywheel/model"
	"github.com/jsphweid/keywheel/pitch"
	"github.com/jsphweid/keywheel/util"
	"golang.org/x/exp/slices"
)

var majorScale = []int{0, 2, 4, 5, 7, 9, 11}

var numerals = []string{"I", "ii", "iii", "IV", "V", "vi", "vii°"}

// Circle is the twelve major keys ordered by fifths starting at C. Like the
// chord dictionary it never changes after NewCircle.
type Circle struct {
	keys     []model.Key
	diatonic [][]string
	scales   [][]pitch.Class
}

// Resolution says where on the circle a chord belongs. Diatonic is false when
// no key holds every note of the chord and Index only marks the root's key.
type Resolution struct {
	Key      model.Key
	Index    int
	Diatonic bool
}

func NewCircle() *Circle {
	keys := []model.Key{
		{Major: "C", Minor: "Am", Diminished: "B°", Signature: "0"},
		{Major: "G", Minor: "Em", Diminished: "F#°", Signature: "1#"},
		{Major: "D", Minor: "Bm", Diminished: "C#°", Signature: "2#"},
		{Major: "A", Minor: "F#m", Diminished: "G#°", Signature: "3#"},
		{Major: "E", Minor: "C#m", Diminished: "D#°", Signature: "4#"},
		{Major: "B", Minor: "G#m", Diminished: "A#°", Signature: "5#"},
		{Major: "F#", Minor: "D#m", Diminished: "E#°", Signature: "6#"},
		{Major: "Db", Minor: "Bbm", Diminished: "C°", Signature: "5b"},
		{Major: "Ab", Minor: "Fm", Diminished: "G°", Signature: "4b"},
		{Major: "Eb", Minor: "Cm", Diminished: "D°", Signature: "3b"},
		{Major: "Bb", Minor: "Gm", Diminished: "A°", Signature: "2b"},
		{Major: "F", Minor: "Dm", Diminished: "E°", Signature: "1b"},
	}
	for i := range keys {
		keys[i].Index = i
	}

	// triads on each scale degree, same order as keys
	diatonic := [][]string{
		{"C", "Dm", "Em", "F", "G", "Am", "B°"},
		{"G", "Am", "Bm", "C", "D", "Em", "F#°"},
		{"D", "Em", "F#m", "G", "A", "Bm", "C#°"},
		{"A", "Bm", "C#m", "D", "E", "F#m", "G#°"},
		{"E", "F#m", "G#m", "A", "B", "C#m", "D#°"},
		{"B", "C#m", "D#m", "E", "F#", "G#m", "A#°"},
		{"F#", "G#m", "A#m", "B", "C#", "D#m", "E#°"},
		{"Db", "Ebm", "Fm", "Gb", "Ab", "Bbm", "C°"},
		{"Ab", "Bbm", "Cm", "Db", "Eb", "Fm", "G°"},
		{"Eb", "Fm", "Gm", "Ab", "Bb", "Cm", "D°"},
		{"Bb", "Cm", "Dm", "Eb", "F", "Gm", "A°"},
		{"F", "Gm", "Am", "Bb", "C", "Dm", "E°"},
	}

	scales := make([][]pitch.Class, 0, len(keys))
	for _, k := range keys {
		scales = append(scales, Scale(k))
	}

	return &Circle{keys: keys, diatonic: diatonic, scales: scales}
}

func (c *Circle) Len() int {
	return len(c.keys)
}

// Keys returns a copy of the keys in circle order.
func (c *Circle) Keys() []model.Key {
	return slices.Clone(c.keys)
}

func (c *Circle) Key(index int) (model.Key, bool) {
	if index < 0 || index >= len(c.keys) {
		return model.Key{}, false
	}
	return c.keys[index], true
}

// ByName finds the key whose tonic sounds like name, so "C#" finds Db.
func (c *Circle) ByName(name string) (model.Key, bool) {
	target, ok := pitch.FromName(name)
	if !ok {
		return model.Key{}, false
	}
	i := slices.IndexFunc(c.keys, func(k model.Key) bool {
		root, _ := pitch.FromName(k.Major)
		return root == target
	})
	if i == -1 {
		return model.Key{}, false
	}
	return c.keys[i], true
}

func (c *Circle) Next(index int) int {
	return util.Mod(index+1, len(c.keys))
}

func (c *Circle) Previous(index int) int {
	return util.Mod(index-1, len(c.keys))
}

// Scale returns the pitch classes of the major scale on the key's tonic.
func Scale(k model.Key) []pitch.Class {
	root, ok := pitch.FromName(k.Major)
	if !ok {
		return nil
	}
	return util.Map(majorScale, root.Transpose)
}

// Resolve walks the circle from C and returns the first key whose scale holds
// every class of the chord. Failing that it returns the index of the key with
// the same tonic as root. ok is false only if root isn't a note at all.
func (c *Circle) Resolve(root string, classes []pitch.Class) (Resolution, bool) {
	for i, scale := range c.scales {
		if util.IsSubset(classes, scale) {
			return Resolution{Key: c.keys[i], Index: i, Diatonic: true}, true
		}
	}

	k, ok := c.ByName(root)
	if !ok {
		return Resolution{}, false
	}
	return Resolution{Index: k.Index}, true
}

// DiatonicChords lists the chord on each degree of the key at index, with
// the notes of its seventh chord. Keys with flats in their signature are
// spelled with flats, the rest with sharps.
func (c *Circle) DiatonicChords(index int) []model.DiatonicChord {
	if index < 0 || index >= len(c.diatonic) {
		return nil
	}
	_, glyph := c.keys[index].Accidentals()
	flats := glyph == "♭"
	res := make([]model.DiatonicChord, 0, len(numerals))
	for i, name := range c.diatonic[index] {
		res = append(res, model.DiatonicChord{
			Numeral: numerals[i],
			Name:    name,
			Notes:   seventhNotes(name, flats),
		})
	}
	return res
}
