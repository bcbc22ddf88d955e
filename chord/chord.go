package chord

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jsphweid/keywheel/pitch"
	"github.com/jsphweid/keywheel/util"
)

var noteRegex = regexp.MustCompile(`[A-G][#b♯♭]*`)

// Extract pulls the note tokens out of free text in the order they appear.
// Only upper case letters start a note, so a lone "b" is never read as B.
func Extract(text string) []string {
	return noteRegex.FindAllString(text, -1)
}

// CreateChordKey sorts and dedupes the pitch classes and joins them, e.g.
// "0,4,7". Two note sets are the same chord when their keys are equal.
func CreateChordKey(classes []pitch.Class) string {
	unique := util.SortedUnique(classes)
	var res strings.Builder
	for i, c := range unique {
		res.WriteString(fmt.Sprintf("%v", int(c)))
		if i < len(unique)-1 {
			res.WriteString(",")
		}
	}
	return res.String()
}

// PitchClasses converts note names to pitch classes, dropping the invalid ones.
func PitchClasses(notes []string) []pitch.Class {
	res := make([]pitch.Class, 0, len(notes))
	for _, note := range notes {
		if c, ok := pitch.FromName(note); ok {
			res = append(res, c)
		}
	}
	return res
}

// Signature is the chord key of a list of note names.
func Signature(notes []string) string {
	return CreateChordKey(PitchClasses(notes))
}
