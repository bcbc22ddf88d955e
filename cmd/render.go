package cmd

import (
	"github.com/jsphweid/keywheel/chord"
	"github.com/jsphweid/keywheel/key"
	"github.com/jsphweid/keywheel/model"
)

const (
	kindChordInKey  = "chord_in_key"
	kindNonDiatonic = "non_diatonic"
	kindNoMatch     = "no_match"
)

func toChordResponse(root string, def model.ChordDefinition, notes []string) *model.ChordResponse {
	return &model.ChordResponse{
		Root:    root,
		Symbol:  def.Symbol,
		Name:    def.Name,
		Degrees: def.Degrees,
		Notes:   notes,
	}
}

func toKeySummary(k model.Key) model.KeySummary {
	return model.KeySummary{
		Index:     k.Index,
		Major:     k.Major,
		Minor:     k.Minor,
		Signature: k.Signature,
	}
}

func toSearchResponse(res model.SearchResult) model.SearchResponse {
	resp := model.SearchResponse{Kind: kindNoMatch, Message: res.Message()}
	if index, ok := res.KeyIndex(); ok {
		resp.KeyIndex = &index
	}

	switch r := res.(type) {
	case model.ChordInKey:
		resp.Kind = kindChordInKey
		resp.Chord = toChordResponse(r.Root, r.Definition, r.Notes)
		summary := toKeySummary(r.Key)
		resp.Key = &summary
	case model.NonDiatonicChord:
		resp.Kind = kindNonDiatonic
		resp.Chord = toChordResponse(r.Root, r.Definition, r.Notes)
	}
	return resp
}

func toKeyResponse(circle *key.Circle, k model.Key) model.KeyResponse {
	resp := model.KeyResponse{
		KeySummary: toKeySummary(k),
		Diminished: k.Diminished,
		Previous:   circle.Previous(k.Index),
		Next:       circle.Next(k.Index),
	}
	for _, c := range circle.DiatonicChords(k.Index) {
		resp.Chords = append(resp.Chords, model.DiatonicChordResponse{
			Numeral: c.Numeral,
			Name:    c.Name,
			Notes:   c.Notes,
		})
	}
	return resp
}

func toDictionaryResponse(dict *chord.Dictionary, root string) model.DictionaryResponse {
	resp := model.DictionaryResponse{Root: root}
	for _, category := range dict.Categories() {
		c := model.DictionaryCategory{Name: category.Name}
		for _, def := range category.Chords {
			c.Chords = append(c.Chords, toDictionaryEntry(dict, root, def))
		}
		resp.Categories = append(resp.Categories, c)
	}
	return resp
}

func toDictionaryEntry(dict *chord.Dictionary, root string, def model.ChordDefinition) model.DictionaryEntry {
	return model.DictionaryEntry{
		Symbol:  def.Symbol,
		Name:    def.Name,
		Degrees: def.Degrees,
		Notes:   dict.NotesFor(root, def.Symbol),
	}
}
