package search

import (
	"log/slog"
	"strings"

	"github.com/jsphweid/keywheel/chord"
	"github.com/jsphweid/keywheel/key"
	"github.com/jsphweid/keywheel/midi"
	"github.com/jsphweid/keywheel/model"
)

// Engine answers "what chord is this and which key is it in". It holds no
// state besides the read-only tables so one Engine can serve every request.
type Engine struct {
	dict   *chord.Dictionary
	circle *key.Circle
	logger *slog.Logger
}

func New(dict *chord.Dictionary, circle *key.Circle, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{dict: dict, circle: circle, logger: logger}
}

func (e *Engine) Dictionary() *chord.Dictionary {
	return e.dict
}

func (e *Engine) Circle() *key.Circle {
	return e.circle
}

func (e *Engine) Find(text string) model.SearchResult {
	if strings.TrimSpace(text) == "" {
		return model.NoMatch{}
	}
	return e.FindNotes(chord.Extract(text))
}

// FindMIDI searches for the chord made by MIDI key numbers.
func (e *Engine) FindMIDI(keys []uint8) (model.SearchResult, error) {
	names, err := midi.Names(keys)
	if err != nil {
		return nil, err
	}
	return e.FindNotes(names), nil
}

func (e *Engine) FindNotes(notes []string) model.SearchResult {
	log := e.logger.With("notes", notes, "signature", chord.Signature(notes))

	m, ok := e.dict.MatchNotes(notes)
	if !ok {
		log.Debug("no chord matched")
		return model.NoMatch{}
	}

	res, ok := e.circle.Resolve(m.Root, chord.PitchClasses(m.Notes))
	if !ok {
		log.Warn("chord root is not on the circle", "root", m.Root)
		return model.NoMatch{}
	}

	log = log.With("chord", model.FullName(m.Root, m.Definition), "key_index", res.Index)
	if !res.Diatonic {
		log.Debug("found non-diatonic chord")
		return model.NonDiatonicChord{
			Root:       m.Root,
			Definition: m.Definition,
			Notes:      m.Notes,
			Index:      res.Index,
		}
	}

	log.Debug("found chord", "key", res.Key.Major)
	return model.ChordInKey{
		Root:       m.Root,
		Definition: m.Definition,
		Notes:      m.Notes,
		Key:        res.Key,
	}
}
