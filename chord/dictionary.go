package chord

import (
	"fmt"

	"github.com/jsphweid/keywheel/model"
	"github.com/jsphweid/keywheel/pitch"
	"golang.org/x/exp/slices"
)

// Dictionary is the read-only table of chord qualities. It is safe to share
// between goroutines; nothing handed out by it aliases its internals.
type Dictionary struct {
	categories []model.ChordCategory
	bySymbol   map[string]model.ChordDefinition
}

// Match is a chord found for some set of notes.
type Match struct {
	Root       string
	Definition model.ChordDefinition
	Notes      []string
}

func NewDictionary() *Dictionary {
	d, err := newDictionary(library())
	if err != nil {
		panic("chord library is broken: " + err.Error())
	}
	return d
}

func newDictionary(categories []model.ChordCategory) (*Dictionary, error) {
	d := &Dictionary{
		categories: categories,
		bySymbol:   make(map[string]model.ChordDefinition),
	}
	for _, category := range categories {
		for _, def := range category.Chords {
			if _, ok := d.bySymbol[def.Symbol]; ok {
				return nil, fmt.Errorf("duplicate chord symbol %q in %q", def.Symbol, category.Name)
			}
			if len(def.Intervals) == 0 {
				return nil, fmt.Errorf("chord symbol %q has no intervals", def.Symbol)
			}
			d.bySymbol[def.Symbol] = def
		}
	}
	return d, nil
}

func cloneDefinition(def model.ChordDefinition) model.ChordDefinition {
	def.Degrees = slices.Clone(def.Degrees)
	def.Intervals = slices.Clone(def.Intervals)
	return def
}

// Categories returns the whole table in its declared order.
func (d *Dictionary) Categories() []model.ChordCategory {
	res := make([]model.ChordCategory, 0, len(d.categories))
	for _, category := range d.categories {
		chords := make([]model.ChordDefinition, 0, len(category.Chords))
		for _, def := range category.Chords {
			chords = append(chords, cloneDefinition(def))
		}
		res = append(res, model.ChordCategory{Name: category.Name, Chords: chords})
	}
	return res
}

func (d *Dictionary) Definition(symbol string) (model.ChordDefinition, bool) {
	def, ok := d.bySymbol[symbol]
	if !ok {
		return model.ChordDefinition{}, false
	}
	return cloneDefinition(def), true
}

func (d *Dictionary) Len() int {
	return len(d.bySymbol)
}

// NotesFor spells the chord built on root. Unknown qualities and roots give
// an empty slice. Roots written with a flat are spelled with flats.
func (d *Dictionary) NotesFor(root string, symbol string) []string {
	def, ok := d.bySymbol[symbol]
	if !ok {
		return []string{}
	}
	return notesFor(root, def.Intervals)
}

func notesFor(root string, intervals []int) []string {
	rootClass, ok := pitch.FromName(root)
	if !ok {
		return []string{}
	}
	flats := pitch.UsesFlats(root)
	res := make([]string, 0, len(intervals))
	for _, interval := range intervals {
		res = append(res, pitch.Name(rootClass.Transpose(interval), flats))
	}
	return res
}

// Match finds the chord spelled by the notes in text. Roots are tried in
// chromatic order from C and, for each root, chords in table order. The first
// chord with the same pitch classes as the input wins.
func (d *Dictionary) Match(text string) (Match, bool) {
	notes := Extract(text)
	if len(notes) == 0 {
		return Match{}, false
	}
	return d.MatchNotes(notes)
}

// MatchNotes is Match over notes that are already tokenized.
func (d *Dictionary) MatchNotes(notes []string) (Match, bool) {
	inputKey := Signature(notes)
	if inputKey == "" {
		return Match{}, false
	}

	for _, root := range pitch.Roots() {
		for _, category := range d.categories {
			for _, def := range category.Chords {
				chordNotes := notesFor(root, def.Intervals)
				if Signature(chordNotes) == inputKey {
					return Match{Root: root, Definition: cloneDefinition(def), Notes: chordNotes}, true
				}
			}
		}
	}

	return Match{}, false
}
