package sorts

// CountingByKey sorts s by a non-negative integer key in O(n + k) time,
// where k is the largest key. The sort is stable. The key function is
// called once per element; a negative key panics.
//
// Memory cost is proportional to n plus the largest key, so this is only
// sensible for dense key spaces.
func CountingByKey[T any](s []T, key func(T) int) {
	if len(s) <= 1 {
		return
	}

	keys := make([]int, len(s))
	max := 0
	for i, v := range s {
		k := key(v)
		if k < 0 {
			panic("sorts: CountingByKey called with negative key")
		}
		keys[i] = k
		if k > max {
			max = k
		}
	}

	// counts[k+1] holds the number of elements with key k; the running
	// sum turns it into the first output slot for each key.
	counts := make([]int, max+2)
	for _, k := range keys {
		counts[k+1]++
	}
	for i := 1; i < len(counts); i++ {
		counts[i] += counts[i-1]
	}

	out := make([]T, len(s))
	for i, v := range s {
		out[counts[keys[i]]] = v
		counts[keys[i]]++
	}
	copy(s, out)
}
