package sorts

import (
	"math/bits"

	"golang.org/x/exp/constraints"

	"github.com/Yeongtong42/underthgo/heapslice"
)

// Intro sorts s in ascending order using introsort: three-way quicksort
// with a depth budget, falling back to heap sort when the budget runs
// out and to insertion sort on short ranges. Not stable.
func Intro[T constraints.Ordered](s []T) {
	IntroFunc(s, compareOrdered[T])
}

// IntroFunc sorts s according to cmp using introsort. Not stable.
func IntroFunc[T any](s []T, cmp func(a, b T) int) {
	if len(s) == 0 {
		return
	}
	maxDepth := (bits.Len(uint(len(s))) - 1) * 2
	introRecurse(s, cmp, maxDepth)
}

const introInsertionCutoff = 16

func introRecurse[T any](s []T, cmp func(a, b T) int, depth int) {
	if len(s) < introInsertionCutoff {
		InsertionFunc(s, cmp)
		return
	}
	if depth == 0 {
		heapslice.Sort(s, heapslice.CompareFunc[T](cmp))
		return
	}

	p1, p2 := TernaryPartitionFunc(s, cmp)
	introRecurse(s[:p1-1], cmp, depth-1)
	introRecurse(s[p1:p2], cmp, depth-1)
	introRecurse(s[p2+1:], cmp, depth-1)
}
