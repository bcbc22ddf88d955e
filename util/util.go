package util

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Mod is like % but the result always has the sign of m.
func Mod[A constraints.Integer](num A, m A) A {
	return ((num % m) + m) % m
}

// SortedUnique returns a sorted copy of nums with duplicates removed.
func SortedUnique[A constraints.Ordered](nums []A) []A {
	res := slices.Clone(nums)
	slices.Sort(res)
	return slices.Compact(res)
}

// IsSubset reports whether every element of sub is in set.
func IsSubset[A comparable](sub []A, set []A) bool {
	for _, v := range sub {
		if !slices.Contains(set, v) {
			return false
		}
	}
	return true
}

func Map[A any, B any](items []A, fn func(A) B) []B {
	res := make([]B, 0, len(items))
	for _, v := range items {
		res = append(res, fn(v))
	}
	return res
}
