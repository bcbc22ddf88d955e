package pitch

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromName(t *testing.T) {
	cases := map[string]Class{
		"C":   0,
		"c":   0,
		"C#":  1,
		"Db":  1,
		"D♭":  1,
		"C♯":  1,
		"E":   4,
		"E#":  5,
		"Fb":  4,
		"B#":  0,
		"Cb":  11,
		"Bbb": 9,
		"B♭♭": 9,
		"F##": 7,
		"G#b": 7,
		"a":   9,
		"E7":  4,
		"Ab?": 8,
	}

	for name, expected := range cases {
		t.Run(fmt.Sprintf("pitch class of %q", name), func(t *testing.T) {
			c, ok := FromName(name)
			assert.True(t, ok)
			assert.Equal(t, expected, c)
		})
	}
}

func TestFromNameRejectsNonLetters(t *testing.T) {
	for _, name := range []string{"", "H", "x#", "#C", "♭B", "1"} {
		_, ok := FromName(name)
		assert.False(t, ok, name)
	}
}

func TestAsciiAndUnicodeAccidentalsAgree(t *testing.T) {
	for _, letter := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		ascii, _ := FromName(letter + "#b#")
		unicode, _ := FromName(letter + "♯♭♯")
		assert.Equal(t, ascii, unicode, letter)
	}
}

func TestUsesFlats(t *testing.T) {
	assert := assert.New(t)
	assert.True(UsesFlats("Bb"))
	assert.True(UsesFlats("E♭"))
	assert.False(UsesFlats("B"))
	assert.False(UsesFlats("b"))
	assert.False(UsesFlats("F#"))
	assert.False(UsesFlats(""))
}

func TestName(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C#", Name(1, false))
	assert.Equal("Db", Name(1, true))
	assert.Equal("B", Name(11, true))
	assert.Equal("A#", Name(-2, false))
}

func TestNameRoundTrips(t *testing.T) {
	for i := Class(0); i < 12; i++ {
		sharp, _ := FromName(Name(i, false))
		flat, _ := FromName(Name(i, true))
		assert.Equal(t, i, sharp)
		assert.Equal(t, i, flat)
	}
}

func TestRootsAreChromatic(t *testing.T) {
	roots := Roots()
	assert.Len(t, roots, 12)
	for i, root := range roots {
		c, _ := FromName(root)
		assert.Equal(t, Class(i), c)
	}
	roots[0] = "X"
	assert.Equal(t, "C", Roots()[0])
}

func TestTranspose(t *testing.T) {
	assert.Equal(t, Class(2), Class(7).Transpose(7))
	assert.Equal(t, Class(11), Class(0).Transpose(-1))
	assert.Equal(t, Class(9), Class(0).Transpose(21))
}
