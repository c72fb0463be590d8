package sorts

// Adaptive stable sort: natural runs are detected left to right, short
// runs are topped up with a binary insertion sort, and pending runs are
// merged under a size invariant that keeps the merge tree balanced. The
// merge itself switches between one-at-a-time comparison and an
// exponential "galloping" search depending on which input has been
// winning.

const (
	// maxMinRun bounds the minimum run size computed by minRunSize.
	maxMinRun = 64

	// initialMinGallop is the win streak required before a merge
	// switches into galloping mode.
	initialMinGallop = 3
)

// run is a half-open, ascending-sorted index range of the slice being
// sorted. Runs are contiguous: each run starts where the previous ended.
type run struct {
	start, end int
}

func (r run) len() int { return r.end - r.start }

func timSort[T any](s []T, cmp func(a, b T) int) {
	n := len(s)
	if n <= 1 {
		return
	}

	minRun, maxRunCount := minRunSize(n)
	runs := make([]run, 0, maxRunCount)
	var scratch []T // acquired on first merge, reused after

	pos := 0
	for pos < n {
		end := countRun(s, cmp, pos, minRun)
		runs = append(runs, run{pos, end})
		pos = end
		runs, scratch = collapseRuns(s, cmp, runs, scratch)
	}

	// Merge the remaining stack pairwise from the top down.
	for len(runs) > 1 {
		a := runs[len(runs)-1]
		b := runs[len(runs)-2]
		scratch = mergeAdjacent(s, cmp, b.start, a.start, a.end, scratch)
		runs = runs[:len(runs)-1]
		runs[len(runs)-1] = run{b.start, a.end}
	}
}

// minRunSize returns the minimum run length for a slice of length n and
// an upper-bound hint for the number of runs that will be produced.
// n is halved until it is at most 64, so that n divided by the result is
// close to, but not above, a power of two. A slice shorter than 64
// elements forms a single run.
func minRunSize(n int) (minRun, maxRunCount int) {
	if n == 0 {
		return 0, 0
	}
	minRun = n
	for minRun > maxMinRun {
		minRun >>= 1
	}
	maxRunCount = n / minRun
	if n%minRun != 0 {
		maxRunCount++
	}
	return minRun, maxRunCount
}

// countRun returns the end of the run beginning at start, leaving
// s[start:end] sorted ascending. The orientation of the run is decided
// by its first two elements; a window of up to minRun elements is sorted
// in that orientation, the run is extended while consecutive elements
// keep the orientation, and a descending run is reversed in place.
// Ties always count as ascending so that equal elements are never
// reordered by the reversal.
func countRun[T any](s []T, cmp func(a, b T) int, start, minRun int) int {
	n := len(s)
	if start >= n-1 {
		return n
	}

	asc := cmp(s[start], s[start+1]) <= 0

	end := start + minRun
	if end > n {
		end = n
	}
	binaryInsertion(s[start:end], cmp, asc)

	for end < n {
		c := cmp(s[end], s[end-1])
		if asc {
			if c < 0 {
				break
			}
		} else {
			if c >= 0 {
				break
			}
		}
		end++
	}

	if !asc {
		reverseRange(s[start:end])
	}
	return end
}

// binaryInsertion sorts s in the given orientation using insertion sort
// with a partition-point search for the slot. The ascending predicate is
// "element <= target" and the descending predicate is "element > target",
// so equal elements keep their input order in the ascending case and end
// up restored to it once a descending run is reversed.
func binaryInsertion[T any](s []T, cmp func(a, b T) int, asc bool) {
	for i := 1; i < len(s); i++ {
		target := s[i]
		var slot int
		if asc {
			slot = partitionPoint(s[:i], func(e T) bool { return cmp(e, target) <= 0 })
		} else {
			slot = partitionPoint(s[:i], func(e T) bool { return cmp(e, target) > 0 })
		}
		if slot < i {
			copy(s[slot+1:i+1], s[slot:i])
			s[slot] = target
		}
	}
}

// collapseRuns restores the stack invariant after a push. For the top
// three runs A (top), B, C the invariant is
//
//	|A| < |B|  and  |A|+|B| < |C|
//
// While it is violated all three are popped and the pair chosen by
// comparing |C| with |A| is merged: the two most recent runs when C is
// strictly longer than A, the two oldest otherwise. With fewer than
// three runs the invariant holds vacuously.
func collapseRuns[T any](s []T, cmp func(a, b T) int, runs []run, scratch []T) ([]run, []T) {
	for len(runs) >= 3 {
		top := len(runs) - 1
		a, b, c := runs[top], runs[top-1], runs[top-2]
		if a.len() < b.len() && a.len()+b.len() < c.len() {
			break
		}
		if c.len() > a.len() {
			// Merge B and A; C stays below the merged run.
			scratch = mergeAdjacent(s, cmp, b.start, a.start, a.end, scratch)
			runs = runs[:top]
			runs[top-1] = run{b.start, a.end}
		} else {
			// Merge C and B; A stays on top.
			scratch = mergeAdjacent(s, cmp, c.start, b.start, b.end, scratch)
			runs[top-2] = run{c.start, b.end}
			runs[top-1] = a
			runs = runs[:top]
		}
	}
	return runs, scratch
}

// mergeAdjacent merges the adjacent ascending runs [a,b) and [b,c) so
// that [a,c) is sorted. The merge is staged entirely in the scratch
// buffer and copied back in one operation once complete, so a panicking
// comparator leaves the slice untouched mid-merge. The possibly grown
// scratch buffer is returned for reuse.
//
// Elements from the left run win ties, which keeps the sort stable.
func mergeAdjacent[T any](s []T, cmp func(a, b T) int, a, b, c int, scratch []T) []T {
	// Skip the prefix of the left run that is already in place
	// (everything at most the right run's first element) and the suffix
	// of the right run that is already in place (everything at least the
	// left run's last element). Only the interleaved region is merged.
	a += partitionPoint(s[a:b], func(e T) bool { return cmp(e, s[b]) <= 0 })
	if a == b {
		return scratch
	}
	last := s[b-1]
	c = b + partitionPoint(s[b:c], func(e T) bool { return cmp(e, last) < 0 })
	if c == b {
		return scratch
	}

	width := c - a
	if cap(scratch) < width {
		size := len(s) / 2
		if size < width {
			size = width
		}
		scratch = make([]T, size)
	}
	out := scratch[:width]

	i, j, k := a, b, 0
	streak1, streak2 := 0, 0
	minGallop := initialMinGallop
	for i < b && j < c {
		if cmp(s[i], s[j]) <= 0 {
			out[k] = s[i]
			i++
			k++
			streak1++
			streak2 = 0
		} else {
			out[k] = s[j]
			j++
			k++
			streak2++
			streak1 = 0
		}

		switch {
		case streak1 >= minGallop && i < b && j < c:
			count := gallopCount(s, cmp, s[j], i, b, true)
			copy(out[k:], s[i:i+count])
			i += count
			k += count
			minGallop = tuneGallop(minGallop, count)
			streak1 = 0
		case streak2 >= minGallop && j < c && i < b:
			count := gallopCount(s, cmp, s[i], j, c, false)
			copy(out[k:], s[j:j+count])
			j += count
			k += count
			minGallop = tuneGallop(minGallop, count)
			streak2 = 0
		}
	}

	// One side is exhausted; the rest of the other side moves in bulk.
	if i < b {
		copy(out[k:], s[i:b])
	} else {
		copy(out[k:], s[j:c])
	}

	copy(s[a:c], out)
	return scratch
}

// gallopCount reports how many leading elements of the sorted range
// s[start:end] precede key: elements comparing at most key when
// takeEqual is set (the left-run side of a merge), strictly less
// otherwise (the right-run side). The count is found by doubling a
// stride until it overshoots, then binary-searching the overshoot
// bracket.
func gallopCount[T any](s []T, cmp func(a, b T) int, key T, start, end int, takeEqual bool) int {
	wins := func(e T) bool {
		c := cmp(e, key)
		if takeEqual {
			return c <= 0
		}
		return c < 0
	}

	n := end - start
	if n <= 0 || !wins(s[start]) {
		return 0
	}

	last, ofs := 0, 1
	for ofs < n && wins(s[start+ofs]) {
		last = ofs
		ofs = ofs*2 + 1
	}
	if ofs > n {
		ofs = n
	}

	// s[start+last] wins, s[start+ofs] does not (or ofs == n).
	lo, hi := last+1, ofs
	for lo < hi {
		m := int(uint(lo+hi) / 2)
		if wins(s[start+m]) {
			lo = m + 1
		} else {
			hi = m
		}
	}
	return lo
}

// tuneGallop adapts the gallop threshold after a gallop: a gallop that
// moved more than one element was worth it, so galloping gets cheaper to
// re-enter; a gallop that moved at most one element wasted the search,
// so the threshold grows.
func tuneGallop(minGallop, count int) int {
	if count <= 1 {
		return minGallop + 1
	}
	if minGallop > 1 {
		return minGallop - 1
	}
	return minGallop
}
