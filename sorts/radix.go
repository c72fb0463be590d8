package sorts

import "golang.org/x/exp/constraints"

// Radix sorts s by applying the digit extractors in order, least
// significant digit first. Each pass is a stable counting pass, so after
// the final pass s is ordered by the last extractor with earlier
// extractors breaking ties; elements equal under every digit keep their
// input order. Digits must be non-negative.
func Radix[T any](s []T, digits ...func(T) int) {
	if len(s) <= 1 {
		return
	}
	for _, digit := range digits {
		CountingByKey(s, digit)
	}
}

// RadixUint64 sorts unsigned integers in ascending order, one byte per
// pass starting from the least significant.
func RadixUint64[T constraints.Unsigned](s []T) {
	if len(s) <= 1 {
		return
	}
	for shift := 0; shift < 64; shift += 8 {
		shift := shift
		CountingByKey(s, func(v T) int { return int(uint64(v) >> shift & 0xff) })
	}
}
