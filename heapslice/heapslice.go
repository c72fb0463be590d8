// Package heapslice provides binary-heap operations directly on a
// caller-owned slice, rather than a heap container type. It suits code
// that wants heap semantics over data it already holds: partial sorting,
// top-k selection, priority queues over a backing array, or the heap
// fallback of an introsort.
//
// The root is the least element according to the Comparator (a min-heap);
// wrap the comparator with Reverse for a max-heap. No operation allocates
// or retains the slice past the call.
package heapslice

import "golang.org/x/exp/constraints"

// A Comparator imposes an ordering on values of type T. Compare returns
// a negative number when a precedes b, zero when the two are equivalent,
// and a positive number otherwise. In a heap built with comparator c,
// a parent p and child x always satisfy c.Compare(p, x) <= 0.
type Comparator[T any] interface {
	Compare(a, b T) int
}

// CompareFunc adapts an ordinary three-way comparison function to the
// Comparator interface.
type CompareFunc[T any] func(a, b T) int

func (f CompareFunc[T]) Compare(a, b T) int { return f(a, b) }

// Natural returns the Comparator for the type's own ordering.
func Natural[T constraints.Ordered]() Comparator[T] {
	return CompareFunc[T](func(a, b T) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return +1
		default:
			return 0
		}
	})
}

// ByKey returns a Comparator ordering elements by an Ordered projection.
func ByKey[T any, K constraints.Ordered](key func(T) K) Comparator[T] {
	return CompareFunc[T](func(a, b T) int {
		ka, kb := key(a), key(b)
		switch {
		case ka < kb:
			return -1
		case ka > kb:
			return +1
		default:
			return 0
		}
	})
}

type reversed[T any] struct {
	c Comparator[T]
}

func (r reversed[T]) Compare(a, b T) int { return r.c.Compare(b, a) }

// Reverse returns a Comparator with the opposite ordering of c.
// Reversing twice returns the original comparator.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	if r, ok := c.(reversed[T]); ok {
		return r.c
	}
	return reversed[T]{c}
}

// IsHeap reports whether s satisfies the heap property under c: no
// parent compares greater than either of its children. Leaves start at
// index len(s)/2, so only the first half is checked.
func IsHeap[T any](s []T, c Comparator[T]) bool {
	for i := 0; i < len(s)/2; i++ {
		l, r := 2*i+1, 2*i+2
		if l < len(s) && c.Compare(s[i], s[l]) > 0 {
			return false
		}
		if r < len(s) && c.Compare(s[i], s[r]) > 0 {
			return false
		}
	}
	return true
}

// Heapify rearranges s into heap order under c in O(n) by sifting every
// parent node down, last parent first.
func Heapify[T any](s []T, c Comparator[T]) {
	for i := len(s)/2 - 1; i >= 0; i-- {
		siftDown(s, i, c)
	}
}

// Pop removes the root: it is swapped with the last element and the heap
// property is restored over the shrunken prefix, which is returned. The
// popped element sits at s[len(s)-1], just past the returned prefix.
// Pop returns false when s is empty.
func Pop[T any](s []T, c Comparator[T]) ([]T, bool) {
	if len(s) == 0 {
		return nil, false
	}
	last := len(s) - 1
	s[0], s[last] = s[last], s[0]
	rest := s[:last]
	siftDown(rest, 0, c)
	return rest, true
}

// PushPop pushes x and pops the root without changing the length of s:
// when the root precedes x, the two are exchanged and the heap is
// re-established, otherwise x comes straight back. On an empty slice x
// is returned unchanged.
func PushPop[T any](s []T, x T, c Comparator[T]) T {
	if len(s) > 0 && c.Compare(s[0], x) < 0 {
		s[0], x = x, s[0]
		siftDown(s, 0, c)
	}
	return x
}

// Fix restores the heap property after the element at index i changed,
// sifting it up or down as needed. It reports whether the element moved.
func Fix[T any](s []T, i int, c Comparator[T]) bool {
	return siftUp(s, i, c) || siftDown(s, i, c)
}

// Sort sorts s ascending according to c using heap sort: the slice is
// heapified under the reversed comparator and the root is repeatedly
// swapped out to the shrinking tail. O(n log n), not stable.
func Sort[T any](s []T, c Comparator[T]) {
	max := Reverse(c)
	Heapify(s, max)
	rest := s
	for len(rest) > 1 {
		rest, _ = Pop(rest, max)
	}
}

func siftUp[T any](s []T, i int, c Comparator[T]) bool {
	moved := false
	for i > 0 {
		parent := (i - 1) / 2
		if c.Compare(s[i], s[parent]) >= 0 {
			break
		}
		s[i], s[parent] = s[parent], s[i]
		i = parent
		moved = true
	}
	return moved
}

func siftDown[T any](s []T, i int, c Comparator[T]) bool {
	moved := false
	for {
		least := i
		if l := 2*i + 1; l < len(s) && c.Compare(s[l], s[least]) < 0 {
			least = l
		}
		if r := 2*i + 2; r < len(s) && c.Compare(s[r], s[least]) < 0 {
			least = r
		}
		if least == i {
			return moved
		}
		s[i], s[least] = s[least], s[i]
		i = least
		moved = true
	}
}
