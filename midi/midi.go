package midi

import (
	"errors"
	"fmt"

	gomidi "gitlab.com/gomidi/midi/v2"
)

var ErrKeyOutOfRange = errors.New("midi key out of range")

// Names turns MIDI key numbers into note names without octaves, e.g.
// 60 64 67 becomes C E G. Keys above 127 are rejected.
func Names(keys []uint8) ([]string, error) {
	res := make([]string, 0, len(keys))
	for _, key := range keys {
		if key > 127 {
			return nil, fmt.Errorf("%w: %v", ErrKeyOutOfRange, key)
		}
		res = append(res, gomidi.Note(key).Name())
	}
	return res, nil
}
