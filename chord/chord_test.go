package chord

import (
	"testing"

	"github.com/jsphweid/keywheel/pitch"
	"github.com/stretchr/testify/assert"
)

func TestCreateChordKey(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("0,4,7", CreateChordKey([]pitch.Class{7, 4, 0}))
	assert.Equal("0,4,7", CreateChordKey([]pitch.Class{0, 4, 7, 0, 7}))
	assert.Equal("11", CreateChordKey([]pitch.Class{11}))
	assert.Equal("", CreateChordKey(nil))
}

func TestCreateChordKeyLeavesInputAlone(t *testing.T) {
	classes := []pitch.Class{7, 4, 0}
	CreateChordKey(classes)
	assert.Equal(t, []pitch.Class{7, 4, 0}, classes)
}

func TestExtract(t *testing.T) {
	cases := []struct {
		text     string
		expected []string
	}{
		{"C E G", []string{"C", "E", "G"}},
		{"C,Eb,Gb", []string{"C", "Eb", "Gb"}},
		{"C Eb Gb Bbb D", []string{"C", "Eb", "Gb", "Bbb", "D"}},
		{"F♯ A♭ c", []string{"F♯", "A♭"}},
		{"CEG", []string{"C", "E", "G"}},
		{"hello world", nil},
		{"", nil},
	}

	for _, c := range cases {
		t.Run(c.text, func(t *testing.T) {
			assert.Equal(t, c.expected, Extract(c.text))
		})
	}
}

func TestSignatureIgnoresOrderSpellingAndDuplicates(t *testing.T) {
	assert := assert.New(t)
	expected := Signature([]string{"C", "E", "G"})
	assert.Equal("0,4,7", expected)
	assert.Equal(expected, Signature([]string{"G", "C", "E", "C"}))
	assert.Equal(expected, Signature([]string{"B#", "Fb", "G"}))
	assert.Equal(expected, Signature([]string{"C", "E", "G", "X"}))
}

func TestPitchClassesDropsInvalidNotes(t *testing.T) {
	assert.Equal(t, []pitch.Class{0, 9}, PitchClasses([]string{"C", "H", "", "A"}))
}
