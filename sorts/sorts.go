// Package sorts implements classic in-place sorting algorithms over
// caller-owned slices.
//
// Sort and SortFunc are the primary entry points: a stable, adaptive
// hybrid merge/insertion sort with a galloping merge mode. The remaining
// algorithms (Insertion, Merge, Quick, Quick3, Intro, CountingByKey,
// Radix) are provided as independent building blocks with the same call
// contract: they mutate the slice in place and never retain it past the
// call.
//
// Comparator functions follow the three-way convention of
// strings.Compare: negative when a precedes b, zero when equivalent,
// positive otherwise. A comparator must describe a strict weak ordering.
// If a comparator panics mid-sort the panic propagates, but the slice is
// left holding a permutation of its original elements.
package sorts

import "golang.org/x/exp/constraints"

// Sort sorts s in ascending order. The sort is stable.
func Sort[T constraints.Ordered](s []T) {
	timSort(s, compareOrdered[T])
}

// SortFunc sorts s according to cmp. The sort is stable: elements that
// compare equal keep their original relative order.
func SortFunc[T any](s []T, cmp func(a, b T) int) {
	timSort(s, cmp)
}

// IsSorted reports whether s is in ascending order.
func IsSorted[T constraints.Ordered](s []T) bool {
	return IsSortedFunc(s, compareOrdered[T])
}

// IsSortedFunc reports whether s is non-decreasing according to cmp.
func IsSortedFunc[T any](s []T, cmp func(a, b T) int) bool {
	for i := len(s) - 1; i > 0; i-- {
		if cmp(s[i], s[i-1]) < 0 {
			return false
		}
	}
	return true
}

func compareOrdered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	default:
		return 0
	}
}

// partitionPoint returns the index of the first element of s for which
// pred is false. pred must be monotonic: once false, false for every
// later element.
func partitionPoint[T any](s []T, pred func(T) bool) int {
	lo, hi := 0, len(s)
	for lo < hi {
		m := int(uint(lo+hi) / 2)
		if pred(s[m]) {
			lo = m + 1
		} else {
			hi = m
		}
	}
	return lo
}

func reverseRange[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
