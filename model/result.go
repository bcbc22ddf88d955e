package model

const (
	MessageChordInKey  = "Found chord in the key of"
	MessageNonDiatonic = "Found a non-diatonic chord"
	MessageNoMatch     = "No matching chord found for the entered notes."
)

// SearchResult is one of ChordInKey, NonDiatonicChord or NoMatch.
type SearchResult interface {
	Message() string

	// KeyIndex is the circle position to highlight. Only NoMatch has none.
	KeyIndex() (int, bool)

	isSearchResult()
}

type ChordInKey struct {
	Root       string
	Definition ChordDefinition
	Notes      []string
	Key        Key
}

func (ChordInKey) Message() string         { return MessageChordInKey }
func (r ChordInKey) KeyIndex() (int, bool) { return r.Key.Index, true }
func (ChordInKey) isSearchResult()         {}

// NonDiatonicChord is a chord that no major key on the circle contains.
// Its index points at the key sharing the chord's root.
type NonDiatonicChord struct {
	Root       string
	Definition ChordDefinition
	Notes      []string
	Index      int
}

func (NonDiatonicChord) Message() string         { return MessageNonDiatonic }
func (r NonDiatonicChord) KeyIndex() (int, bool) { return r.Index, true }
func (NonDiatonicChord) isSearchResult()         {}

type NoMatch struct{}

func (NoMatch) Message() string       { return MessageNoMatch }
func (NoMatch) KeyIndex() (int, bool) { return 0, false }
func (NoMatch) isSearchResult()       {}
