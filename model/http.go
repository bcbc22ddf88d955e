package model

type SearchRequestBody struct {
	Notes string `json:"notes"`
	Midi  Notes  `json:"midi"`
}

type ChordResponse struct {
	Root    string   `json:"root"`
	Symbol  string   `json:"symbol"`
	Name    string   `json:"name"`
	Degrees []string `json:"degrees"`
	Notes   []string `json:"notes"`
}

type KeySummary struct {
	Index     int    `json:"index"`
	Major     string `json:"major"`
	Minor     string `json:"minor"`
	Signature string `json:"signature"`
}

type SearchResponse struct {
	Kind     string         `json:"kind"`
	Message  string         `json:"message"`
	Chord    *ChordResponse `json:"chord,omitempty"`
	Key      *KeySummary    `json:"key,omitempty"`
	KeyIndex *int           `json:"key_index,omitempty"`
}

type DiatonicChordResponse struct {
	Numeral string   `json:"numeral"`
	Name    string   `json:"name"`
	Notes   []string `json:"notes"`
}

type KeyResponse struct {
	KeySummary
	Diminished string                  `json:"diminished"`
	Previous   int                     `json:"previous"`
	Next       int                     `json:"next"`
	Chords     []DiatonicChordResponse `json:"chords"`
}

type DictionaryEntry struct {
	Symbol  string   `json:"symbol"`
	Name    string   `json:"name"`
	Degrees []string `json:"degrees"`
	Notes   []string `json:"notes"`
}

type DictionaryCategory struct {
	Name   string            `json:"name"`
	Chords []DictionaryEntry `json:"chords"`
}

type DictionaryResponse struct {
	Root       string               `json:"root"`
	Categories []DictionaryCategory `json:"categories"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
