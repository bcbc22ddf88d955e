package chord

import "github.com/jsphweid/keywheel/model"

// library returns a fresh copy of the chord table. Category and chord order
// decides which name wins when two qualities produce the same notes, so keep
// new entries below the ones they might shadow.
func library() []model.ChordCategory {
	return []model.ChordCategory{
		{
			Name: "Triads & Powerchords",
			Chords: []model.ChordDefinition{
				{Symbol: "", Name: "Major Triad", Degrees: []string{"1", "3", "5"}, Intervals: []int{0, 4, 7}},
				{Symbol: "m", Name: "Minor Triad", Degrees: []string{"1", "♭3", "5"}, Intervals: []int{0, 3, 7}},
				{Symbol: "aug", Name: "Augmented Triad", Degrees: []string{"1", "3", "♯5"}, Intervals: []int{0, 4, 8}},
				{Symbol: "°", Name: "Diminished Triad", Degrees: []string{"1", "♭3", "♭5"}, Intervals: []int{0, 3, 6}},
				{Symbol: "b5", Name: "Major Flat 5", Degrees: []string{"1", "3", "♭5"}, Intervals: []int{0, 4, 6}},
				{Symbol: "m#5", Name: "Minor Sharp 5", Degrees: []string{"1", "♭3", "♯5"}, Intervals: []int{0, 3, 8}},
				{Symbol: "5", Name: "Power Chord (5th)", Degrees: []string{"1", "5"}, Intervals: []int{0, 7}},
			},
		},
		{
			Name: "Suspended Chords",
			Chords: []model.ChordDefinition{
				{Symbol: "sus2", Name: "Suspended 2nd", Degrees: []string{"1", "2", "5"}, Intervals: []int{0, 2, 7}},
				{Symbol: "sus4", Name: "Suspended 4th", Degrees: []string{"1", "4", "5"}, Intervals: []int{0, 5, 7}},
				{Symbol: "sus2b5", Name: "Suspended 2nd Flat 5", Degrees: []string{"1", "2", "♭5"}, Intervals: []int{0, 2, 6}},
				{Symbol: "sus24", Name: "Suspended 2nd & 4th", Degrees: []string{"1", "2", "4", "5"}, Intervals: []int{0, 2, 5, 7}},
			},
		},
		{
			Name: "Sixth & Added Note Chords",
			Chords: []model.ChordDefinition{
				{Symbol: "add9", Name: "Add 9", Degrees: []string{"1", "3", "5", "9"}, Intervals: []int{0, 4, 7, 14}},
				{Symbol: "m(add9)", Name: "Minor Add 9", Degrees: []string{"1", "♭3", "5", "9"}, Intervals: []int{0, 3, 7, 14}},
				{Symbol: "add#11", Name: "Add Sharp 11", Degrees: []string{"1", "3", "5", "♯11"}, Intervals: []int{0, 4, 7, 18}},
				{Symbol: "6", Name: "Major 6th", Degrees: []string{"1", "3", "5", "6"}, Intervals: []int{0, 4, 7, 9}},
				{Symbol: "m6", Name: "Minor 6th", Degrees: []string{"1", "♭3", "5", "6"}, Intervals: []int{0, 3, 7, 9}},
				{Symbol: "6/9", Name: "Six Add Nine", Degrees: []string{"1", "3", "5", "6", "9"}, Intervals: []int{0, 4, 7, 9, 14}},
			},
		},
		{
			Name: "Basic Seventh Chords",
			Chords: []model.ChordDefinition{
				{Symbol: "maj7", Name: "Major 7th", Degrees: []string{"1", "3", "5", "7"}, Intervals: []int{0, 4, 7, 11}},
				{Symbol: "7", Name: "Dominant 7th", Degrees: []string{"1", "3", "5", "♭7"}, Intervals: []int{0, 4, 7, 10}},
				{Symbol: "m7", Name: "Minor 7th", Degrees: []string{"1", "♭3", "5", "♭7"}, Intervals: []int{0, 3, 7, 10}},
				{Symbol: "m7b5", Name: "Half-Diminished 7th", Degrees: []string{"1", "♭3", "♭5", "♭7"}, Intervals: []int{0, 3, 6, 10}},
				{Symbol: "°7", Name: "Diminished 7th", Degrees: []string{"1", "♭3", "♭5", "♭♭7"}, Intervals: []int{0, 3, 6, 9}},
				{Symbol: "m(maj7)", Name: "Minor-Major 7th", Degrees: []string{"1", "♭3", "5", "7"}, Intervals: []int{0, 3, 7, 11}},
				{Symbol: "7(no3)", Name: "7th (No 3rd)", Degrees: []string{"1", "5", "♭7"}, Intervals: []int{0, 7, 10}},
			},
		},
		{
			Name: "Altered Major & Minor Sevenths",
			Chords: []model.ChordDefinition{
				{Symbol: "maj7b5", Name: "Major 7th ♭5", Degrees: []string{"1", "3", "♭5", "7"}, Intervals: []int{0, 4, 6, 11}},
				{Symbol: "maj7#5", Name: "Augmented Major 7th", Degrees: []string{"1", "3", "♯5", "7"}, Intervals: []int{0, 4, 8, 11}},
				{Symbol: "m(maj7)b5", Name: "Minor-Major 7th ♭5", Degrees: []string{"1", "♭3", "♭5", "7"}, Intervals: []int{0, 3, 6, 11}},
				{Symbol: "maj7b9", Name: "Major 7th ♭9", Degrees: []string{"1", "3", "5", "7", "♭9"}, Intervals: []int{0, 4, 7, 11, 13}},
				{Symbol: "maj7#9", Name: "Major 7th ♯9", Degrees: []string{"1", "3", "5", "7", "♯9"}, Intervals: []int{0, 4, 7, 11, 15}},
				{Symbol: "m7b9", Name: "Minor 7th ♭9", Degrees: []string{"1", "♭3", "5", "♭7", "♭9"}, Intervals: []int{0, 3, 7, 10, 13}},
				{Symbol: "m7#9", Name: "Minor 7th ♯9", Degrees: []string{"1", "♭3", "5", "♭7", "♯9"}, Intervals: []int{0, 3, 7, 10, 15}},
				{Symbol: "m(maj7)b9", Name: "Minor-Major 7th ♭9", Degrees: []string{"1", "♭3", "5", "7", "♭9"}, Intervals: []int{0, 3, 7, 11, 13}},
				{Symbol: "maj7#5(b9)", Name: "Augmented Major 7th ♭9", Degrees: []string{"1", "3", "♯5", "7", "♭9"}, Intervals: []int{0, 4, 8, 11, 13}},
				{Symbol: "maj7#5(#9)", Name: "Augmented Major 7th ♯9", Degrees: []string{"1", "3", "♯5", "7", "♯9"}, Intervals: []int{0, 4, 8, 11, 15}},
			},
		},
		{
			Name: "Altered Dominant Sevenths",
			Chords: []model.ChordDefinition{
				{Symbol: "7b5", Name: "Dominant 7th ♭5", Degrees: []string{"1", "3", "♭5", "♭7"}, Intervals: []int{0, 4, 6, 10}},
				{Symbol: "7#5", Name: "Dominant 7th ♯5", Degrees: []string{"1", "3", "♯5", "♭7"}, Intervals: []int{0, 4, 8, 10}},
				{Symbol: "7b9", Name: "Dominant 7th ♭9", Degrees: []string{"1", "3", "5", "♭7", "♭9"}, Intervals: []int{0, 4, 7, 10, 13}},
				{Symbol: "7#9", Name: "Dominant 7th ♯9", Degrees: []string{"1", "3", "5", "♭7", "♯9"}, Intervals: []int{0, 4, 7, 10, 15}},
				{Symbol: "7b5b9", Name: "Dominant 7th ♭5 ♭9", Degrees: []string{"1", "3", "♭5", "♭7", "♭9"}, Intervals: []int{0, 4, 6, 10, 13}},
				{Symbol: "7#5b9", Name: "Dominant 7th ♯5 ♭9", Degrees: []string{"1", "3", "♯5", "♭7", "♭9"}, Intervals: []int{0, 4, 8, 10, 13}},
				{Symbol: "7#5#9", Name: "Dominant 7th ♯5 ♯9", Degrees: []string{"1", "3", "♯5", "♭7", "♯9"}, Intervals: []int{0, 4, 8, 10, 15}},
				{Symbol: "7add6", Name: "Dominant 7th Add 6", Degrees: []string{"1", "3", "5", "6", "♭7"}, Intervals: []int{0, 4, 7, 9, 10}},
			},
		},
		{
			Name: "Suspended Seventh Chords",
			Chords: []model.ChordDefinition{
				{Symbol: "7sus2", Name: "7th Suspended 2nd", Degrees: []string{"1", "2", "5", "♭7"}, Intervals: []int{0, 2, 7, 10}},
				{Symbol: "7sus4", Name: "7th Suspended 4th", Degrees: []string{"1", "4", "5", "♭7"}, Intervals: []int{0, 5, 7, 10}},
				{Symbol: "maj7sus2", Name: "Major 7th Sus 2", Degrees: []string{"1", "2", "5", "7"}, Intervals: []int{0, 2, 7, 11}},
				{Symbol: "maj7sus4", Name: "Major 7th Sus 4", Degrees: []string{"1", "4", "5", "7"}, Intervals: []int{0, 5, 7, 11}},
				{Symbol: "7sus24", Name: "7th Sus 2nd & 4th", Degrees: []string{"1", "2", "4", "5", "♭7"}, Intervals: []int{0, 2, 5, 7, 10}},
				{Symbol: "maj7sus24", Name: "Major 7th Sus 2 & 4", Degrees: []string{"1", "2", "4", "5", "7"}, Intervals: []int{0, 2, 5, 7, 11}},
				{Symbol: "7sus2add6", Name: "7th Sus 2 Add 6", Degrees: []string{"1", "2", "5", "6", "♭7"}, Intervals: []int{0, 2, 7, 9, 10}},
				{Symbol: "7sus4add6", Name: "7th Sus 4 Add 6", Degrees: []string{"1", "4", "5", "6", "♭7"}, Intervals: []int{0, 5, 7, 9, 10}},
			},
		},
		{
			Name: "Extended Ninth Chords",
			Chords: []model.ChordDefinition{
				{Symbol: "maj9", Name: "Major 9th", Degrees: []string{"1", "3", "5", "7", "9"}, Intervals: []int{0, 4, 7, 11, 14}},
				{Symbol: "9", Name: "Dominant 9th", Degrees: []string{"1", "3", "5", "♭7", "9"}, Intervals: []int{0, 4, 7, 10, 14}},
				{Symbol: "m9", Name: "Minor 9th", Degrees: []string{"1", "♭3", "5", "♭7", "9"}, Intervals: []int{0, 3, 7, 10, 14}},
				{Symbol: "m(maj9)", Name: "Minor-Major 9th", Degrees: []string{"1", "♭3", "5", "7", "9"}, Intervals: []int{0, 3, 7, 11, 14}},
				{Symbol: "maj9#5", Name: "Augmented Major 9th", Degrees: []string{"1", "3", "♯5", "7", "9"}, Intervals: []int{0, 4, 8, 11, 14}},
				{Symbol: "9#5", Name: "Dominant 9th ♯5", Degrees: []string{"1", "3", "♯5", "♭7", "9"}, Intervals: []int{0, 4, 8, 10, 14}},
				{Symbol: "9(b5)", Name: "Dominant 9th ♭5", Degrees: []string{"1", "3", "♭5", "♭7", "9"}, Intervals: []int{0, 4, 6, 10, 14}},
				{Symbol: "m9b5", Name: "Half-Diminished 9th", Degrees: []string{"1", "♭3", "♭5", "♭7", "9"}, Intervals: []int{0, 3, 6, 10, 14}},
				{Symbol: "m7b5(b9)", Name: "Half-Diminished ♭9", Degrees: []string{"1", "♭3", "♭5", "♭7", "♭9"}, Intervals: []int{0, 3, 6, 10, 13}},
				{Symbol: "°9", Name: "Diminished 9th", Degrees: []string{"1", "♭3", "♭5", "♭♭7", "9"}, Intervals: []int{0, 3, 6, 9, 14}},
				{Symbol: "°7(b9)", Name: "Diminished ♭9", Degrees: []string{"1", "♭3", "♭5", "♭♭7", "♭9"}, Intervals: []int{0, 3, 6, 9, 13}},
			},
		},
		{
			Name: "Extended Eleventh Chords",
			Chords: []model.ChordDefinition{
				{Symbol: "11", Name: "Dominant 11th", Degrees: []string{"1", "(3)", "5", "♭7", "9", "11"}, Intervals: []int{0, 4, 7, 10, 14, 17}},
				{Symbol: "m11", Name: "Minor 11th", Degrees: []string{"1", "♭3", "5", "♭7", "9", "11"}, Intervals: []int{0, 3, 7, 10, 14, 17}},
				{Symbol: "maj11", Name: "Major 11th", Degrees: []string{"1", "(3)", "5", "7", "9", "11"}, Intervals: []int{0, 4, 7, 11, 14, 17}},
				{Symbol: "m(maj11)", Name: "Minor-Major 11th", Degrees: []string{"1", "♭3", "5", "7", "9", "11"}, Intervals: []int{0, 3, 7, 11, 14, 17}},
				{Symbol: "maj9#11", Name: "Major 9th ♯11", Degrees: []string{"1", "3", "5", "7", "9", "♯11"}, Intervals: []int{0, 4, 7, 11, 14, 18}},
				{Symbol: "7#11", Name: "Dominant 7th ♯11", Degrees: []string{"1", "3", "5", "♭7", "♯11"}, Intervals: []int{0, 4, 7, 10, 18}},
				{Symbol: "maj7#11", Name: "Major 7th ♯11", Degrees: []string{"1", "3", "5", "7", "♯11"}, Intervals: []int{0, 4, 7, 11, 18}},
				{Symbol: "m7#11", Name: "Minor 7th ♯11", Degrees: []string{"1", "♭3", "5", "♭7", "♯11"}, Intervals: []int{0, 3, 7, 10, 18}},
				{Symbol: "7#9#11", Name: "Dominant 7th ♯9 ♯11", Degrees: []string{"1", "3", "5", "♭7", "♯9", "♯11"}, Intervals: []int{0, 4, 7, 10, 15, 18}},
				{Symbol: "m11(b9)", Name: "Minor 11th ♭9", Degrees: []string{"1", "♭3", "5", "♭7", "♭9", "11"}, Intervals: []int{0, 3, 7, 10, 13, 17}},
				{Symbol: "m11b5b9", Name: "Minor 11th ♭5 ♭9", Degrees: []string{"1", "♭3", "♭5", "♭7", "♭9", "11"}, Intervals: []int{0, 3, 6, 10, 13, 17}},
			},
		},
		{
			Name: "Extended Thirteenth Chords",
			Chords: []model.ChordDefinition{
				{Symbol: "13", Name: "Dominant 13th", Degrees: []string{"1", "3", "5", "♭7", "9", "(11)", "13"}, Intervals: []int{0, 4, 7, 10, 14, 21}},
				{Symbol: "m13", Name: "Minor 13th", Degrees: []string{"1", "♭3", "5", "♭7", "9", "11", "13"}, Intervals: []int{0, 3, 7, 10, 14, 21}},
				{Symbol: "maj13", Name: "Major 13th", Degrees: []string{"1", "3", "5", "7", "9", "(11)", "13"}, Intervals: []int{0, 4, 7, 11, 14, 21}},
				{Symbol: "m(maj13)", Name: "Minor-Major 13th", Degrees: []string{"1", "♭3", "5", "7", "9", "11", "13"}, Intervals: []int{0, 3, 7, 11, 14, 21}},
				{Symbol: "13(b9)", Name: "Dominant 13th ♭9", Degrees: []string{"1", "3", "5", "♭7", "♭9", "13"}, Intervals: []int{0, 4, 7, 10, 13, 21}},
				{Symbol: "13(#11)", Name: "Dominant 13th ♯11", Degrees: []string{"1", "3", "5", "♭7", "9", "♯11", "13"}, Intervals: []int{0, 4, 7, 10, 14, 18, 21}},
				{Symbol: "7b13", Name: "Dominant 7th ♭13", Degrees: []string{"1", "3", "5", "♭7", "♭13"}, Intervals: []int{0, 4, 7, 10, 20}},
				{Symbol: "13(no9)", Name: "Dominant 13th (no 9)", Degrees: []string{"1", "3", "5", "♭7", "13"}, Intervals: []int{0, 4, 7, 10, 17, 21}},
				{Symbol: "7sus4(b13)", Name: "7th Sus 4 ♭13", Degrees: []string{"1", "4", "5", "♭7", "♭13"}, Intervals: []int{0, 5, 7, 10, 20}},
			},
		},
	}
}
