package chord

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jsphweid/keywheel/model"
	"github.com/jsphweid/keywheel/pitch"
	"github.com/stretchr/testify/assert"
)

func TestLibraryIsComplete(t *testing.T) {
	d := NewDictionary()
	assert := assert.New(t)
	assert.Equal(81, d.Len())

	categories := d.Categories()
	assert.Len(categories, 10)
	assert.Equal("Triads & Powerchords", categories[0].Name)
	assert.Equal("", categories[0].Chords[0].Symbol)
	assert.Equal("Extended Thirteenth Chords", categories[9].Name)

	for _, category := range categories {
		for _, def := range category.Chords {
			assert.NotEmpty(def.Degrees, def.Symbol)
			assert.Equal(0, def.Intervals[0], def.Symbol)
		}
	}
}

func TestDuplicateSymbolsAreRejected(t *testing.T) {
	_, err := newDictionary([]model.ChordCategory{
		{Name: "a", Chords: []model.ChordDefinition{{Symbol: "m", Intervals: []int{0, 3, 7}}}},
		{Name: "b", Chords: []model.ChordDefinition{{Symbol: "m", Intervals: []int{0, 3, 7}}}},
	})
	assert.Error(t, err)
}

func TestEmptyIntervalsAreRejected(t *testing.T) {
	_, err := newDictionary([]model.ChordCategory{
		{Name: "a", Chords: []model.ChordDefinition{{Symbol: "?"}}},
	})
	assert.Error(t, err)
}

func TestCategoriesCannotBeMutated(t *testing.T) {
	d := NewDictionary()
	categories := d.Categories()
	categories[0].Chords[0].Intervals[1] = 3
	categories[0].Chords[0].Degrees[1] = "x"

	def, ok := d.Definition("")
	assert.True(t, ok)
	assert.Equal(t, []int{0, 4, 7}, def.Intervals)
	assert.Equal(t, []string{"1", "3", "5"}, def.Degrees)
	assert.Equal(t, []int{0, 4, 7}, d.Categories()[0].Chords[0].Intervals)
}

func TestNotesFor(t *testing.T) {
	d := NewDictionary()
	cases := []struct {
		root     string
		symbol   string
		expected []string
	}{
		{"C", "", []string{"C", "E", "G"}},
		{"C", "maj7", []string{"C", "E", "G", "B"}},
		{"Db", "7", []string{"Db", "F", "Ab", "B"}},
		{"D♭", "7", []string{"Db", "F", "Ab", "B"}},
		{"C#", "7", []string{"C#", "F", "G#", "B"}},
		{"C", "13(#11)", []string{"C", "E", "G", "A#", "D", "F#", "A"}},
		{"Bb", "m", []string{"Bb", "Db", "F"}},
		{"B", "°", []string{"B", "D", "F"}},
		{"e", "m", []string{"E", "G", "B"}},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%v%v", c.root, c.symbol), func(t *testing.T) {
			assert.Equal(t, c.expected, d.NotesFor(c.root, c.symbol))
		})
	}
}

func TestNotesForUnknownIsEmpty(t *testing.T) {
	d := NewDictionary()
	assert := assert.New(t)
	assert.Empty(d.NotesFor("C", "nope"))
	assert.Empty(d.NotesFor("H", "m"))
	assert.Empty(d.NotesFor("", ""))
	assert.NotNil(d.NotesFor("C", "nope"))
}

func TestNotesForSameClassesForEitherSpelling(t *testing.T) {
	d := NewDictionary()
	for i := pitch.Class(0); i < 12; i++ {
		sharp := pitch.Name(i, false)
		flat := pitch.Name(i, true)
		for _, category := range d.Categories() {
			for _, def := range category.Chords {
				assert.Equal(t,
					PitchClasses(d.NotesFor(sharp, def.Symbol)),
					PitchClasses(d.NotesFor(flat, def.Symbol)),
					"%v vs %v%v", sharp, flat, def.Symbol)
			}
		}
	}
}

func TestMatch(t *testing.T) {
	d := NewDictionary()
	cases := []struct {
		text   string
		root   string
		symbol string
	}{
		{"C E G", "C", ""},
		{"G C E C", "C", ""},
		{"E G C", "C", ""},
		{"C Eb Gb", "C", "°"},
		{"C E♭ G♭", "C", "°"},
		{"B D F", "B", "°"},
		{"C E G#", "C", "aug"},
		{"C Eb Gb Bbb", "C", "°7"},
		{"C Eb Gb Bbb D", "C", "°9"},
		{"Db F Ab", "C#", ""},
		{"C♯ E♯ G♯", "C#", ""},
		{"C G", "C", "5"},
		{"A C E", "A", "m"},
		{"F A C E", "F", "maj7"},
		{"G B D F", "G", "7"},
	}

	for _, c := range cases {
		t.Run(c.text, func(t *testing.T) {
			m, ok := d.Match(c.text)
			assert.True(t, ok)
			assert.Equal(t, c.root, m.Root)
			assert.Equal(t, c.symbol, m.Definition.Symbol)
		})
	}
}

func TestMatchTieBreaks(t *testing.T) {
	d := NewDictionary()
	assert := assert.New(t)

	// sus4 on G has the same notes but C comes first
	m, _ := d.Match("G C D")
	assert.Equal("C", m.Root)
	assert.Equal("sus2", m.Definition.Symbol)

	// Am7 has the same notes but C comes first
	m, _ = d.Match("A C E G")
	assert.Equal("C", m.Root)
	assert.Equal("6", m.Definition.Symbol)

	// m7#9 reduces to the same classes as m7 which is declared earlier
	m, _ = d.Match(strings.Join(d.NotesFor("C", "m7#9"), " "))
	assert.Equal("C", m.Root)
	assert.Equal("m7", m.Definition.Symbol)
}

func TestMatchNothing(t *testing.T) {
	d := NewDictionary()
	for _, text := range []string{"", "   ", "hello", "123", "C Db D Eb E"} {
		_, ok := d.Match(text)
		assert.False(t, ok, text)
	}
}

func TestMatchRoundTripsEveryChord(t *testing.T) {
	d := NewDictionary()
	roots := append(pitch.Roots(), "Db", "Eb", "Gb", "Ab", "Bb")
	for _, root := range roots {
		for _, category := range d.Categories() {
			for _, def := range category.Chords {
				notes := d.NotesFor(root, def.Symbol)
				m, ok := d.Match(strings.Join(notes, " "))
				if assert.True(t, ok, "%v%v", root, def.Symbol) {
					assert.Equal(t, Signature(notes), Signature(m.Notes), "%v%v", root, def.Symbol)
				}
			}
		}
	}
}
