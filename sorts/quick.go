package sorts

import "golang.org/x/exp/constraints"

// Quick sorts s in ascending order using quicksort with a Lomuto
// partition around the last element. Not stable.
func Quick[T constraints.Ordered](s []T) {
	QuickFunc(s, compareOrdered[T])
}

// QuickFunc sorts s according to cmp using quicksort. Not stable.
func QuickFunc[T any](s []T, cmp func(a, b T) int) {
	if len(s) <= 1 {
		return
	}
	p := partitionLast(s, cmp)
	QuickFunc(s[:p], cmp)
	QuickFunc(s[p+1:], cmp)
}

// partitionLast partitions s around its last element and returns the
// pivot's final index: everything before it compares at most the pivot,
// everything after it strictly greater.
func partitionLast[T any](s []T, cmp func(a, b T) int) int {
	pivot := len(s) - 1
	left := 0
	for i := range s {
		if cmp(s[i], s[pivot]) <= 0 {
			s[left], s[i] = s[i], s[left]
			left++
		}
	}
	return left - 1
}

// Quick3 sorts s in ascending order using a dual-pivot three-way
// quicksort. Not stable.
func Quick3[T constraints.Ordered](s []T) {
	Quick3Func(s, compareOrdered[T])
}

// Quick3Func sorts s according to cmp using a dual-pivot three-way
// quicksort. Not stable.
func Quick3Func[T any](s []T, cmp func(a, b T) int) {
	if len(s) <= 1 {
		return
	}
	p1, p2 := TernaryPartitionFunc(s, cmp)
	Quick3Func(s[:p1-1], cmp)
	Quick3Func(s[p1:p2], cmp)
	Quick3Func(s[p2+1:], cmp)
}

// TernaryPartitionFunc partitions s into three parts using Dijkstra's
// Dutch national flag scheme with pivots taken from both ends (swapped
// into order first). It returns delimiters (i, j) such that s[:i] is at
// most the low pivot (which sits at i-1), s[i:j] lies strictly between
// the pivots, and s[j:] is at least the high pivot (which sits at j).
// s must hold at least two elements.
func TernaryPartitionFunc[T any](s []T, cmp func(a, b T) int) (int, int) {
	end := len(s) - 1
	if cmp(s[0], s[end]) > 0 {
		s[0], s[end] = s[end], s[0]
	}

	i, j, k := 1, 1, end-1
	for j <= k {
		switch {
		case cmp(s[j], s[0]) <= 0:
			s[i], s[j] = s[j], s[i]
			i++
			j++
		case cmp(s[j], s[end]) >= 0:
			s[j], s[k] = s[k], s[j]
			k--
		default:
			j++
		}
	}
	s[0], s[i-1] = s[i-1], s[0]
	s[j], s[end] = s[end], s[j]
	return i, j
}
