package midi

import (
	"errors"
	"testing"

	"github.com/jsphweid/keywheel/pitch"
	"github.com/stretchr/testify/assert"
)

func TestNamesKeepPitchClass(t *testing.T) {
	keys := make([]uint8, 0, 128)
	for k := 0; k < 128; k++ {
		keys = append(keys, uint8(k))
	}

	names, err := Names(keys)
	assert.NoError(t, err)
	assert.Len(t, names, 128)
	for i, name := range names {
		c, ok := pitch.FromName(name)
		assert.True(t, ok, name)
		assert.Equal(t, pitch.Class(i%12), c, name)
	}
}

func TestNamesIgnoreOctave(t *testing.T) {
	low, _ := Names([]uint8{48, 52, 55})
	high, _ := Names([]uint8{72, 76, 79})
	assert.Equal(t, low, high)
}

func TestNamesRejectsBadKeys(t *testing.T) {
	_, err := Names([]uint8{60, 128})
	assert.True(t, errors.Is(err, ErrKeyOutOfRange))
}

func TestNamesEmpty(t *testing.T) {
	names, err := Names(nil)
	assert.NoError(t, err)
	assert.Empty(t, names)
}
