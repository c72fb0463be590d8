package sorts

import "golang.org/x/exp/constraints"

// Insertion sorts s in ascending order using insertion sort. The sort is
// stable. O(n^2) data movement; best for short or nearly-sorted input.
func Insertion[T constraints.Ordered](s []T) {
	InsertionFunc(s, compareOrdered[T])
}

// InsertionFunc sorts s according to cmp using insertion sort. The sort
// is stable.
func InsertionFunc[T any](s []T, cmp func(a, b T) int) {
	for i := 1; i < len(s); i++ {
		cur := s[i]
		j := i
		for j > 0 && cmp(s[j-1], cur) > 0 {
			s[j] = s[j-1]
			j--
		}
		s[j] = cur
	}
}
