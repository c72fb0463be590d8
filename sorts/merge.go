package sorts

import "golang.org/x/exp/constraints"

// Merge sorts s in ascending order using a bottom-up merge sort with a
// full-length auxiliary buffer. The sort is stable.
func Merge[T constraints.Ordered](s []T) {
	MergeFunc(s, compareOrdered[T])
}

// MergeFunc sorts s according to cmp using a bottom-up merge sort. The
// sort is stable. Each pass merges adjacent segments of the current
// width into the buffer and copies the merged prefix back in one
// operation; a tail segment without a partner is left for the next pass.
func MergeFunc[T any](s []T, cmp func(a, b T) int) {
	n := len(s)
	if n <= 1 {
		return
	}
	buf := make([]T, n)

	for width := 1; width < n; width *= 2 {
		pos := 0
		for ; pos+width < n; pos += 2 * width {
			mid := pos + width
			end := mid + width
			if end > n {
				end = n
			}
			l, r := pos, mid
			for i := pos; i < end; i++ {
				if r == end || (l != mid && cmp(s[l], s[r]) <= 0) {
					buf[i] = s[l]
					l++
				} else {
					buf[i] = s[r]
					r++
				}
			}
		}
		if pos > n {
			pos = n
		}
		copy(s[:pos], buf[:pos])
	}
}
