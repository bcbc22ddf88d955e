package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModIsNeverNegative(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(11, Mod(-1, 12))
	assert.Equal(0, Mod(-12, 12))
	assert.Equal(9, Mod(21, 12))
	assert.Equal(0, Mod(0, 12))
}

func TestSortedUnique(t *testing.T) {
	input := []int{7, 0, 4, 0, 7}
	assert.Equal(t, []int{0, 4, 7}, SortedUnique(input))
	// input is left alone
	assert.Equal(t, []int{7, 0, 4, 0, 7}, input)
}

func TestIsSubset(t *testing.T) {
	assert := assert.New(t)
	assert.True(IsSubset([]int{0, 4}, []int{0, 2, 4}))
	assert.True(IsSubset([]int{}, []int{0}))
	assert.False(IsSubset([]int{1}, []int{0, 2, 4}))
}

func TestMap(t *testing.T) {
	res := Map([]int{1, 2}, func(i int) string { return string(rune('a' + i)) })
	assert.Equal(t, []string{"b", "c"}, res)
}
