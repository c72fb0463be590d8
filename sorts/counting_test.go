package sorts

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestCountingByKey(t *testing.T) {
	s := []int{5, 3, 9, 0, 3, 7, 1}
	CountingByKey(s, func(v int) int { return v })
	want := []int{0, 1, 3, 3, 5, 7, 9}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestCountingByKeyStability(t *testing.T) {
	data := make(intPairs, 5000)
	r := rand.New(rand.NewSource(9))
	for i := range data {
		data[i].a = r.Intn(32)
	}
	data.initB()
	CountingByKey(data, func(p intPair) int { return p.a })
	if !IsSortedFunc(data, intPairCompare) {
		t.Error("not sorted")
	}
	if !data.inOrder() {
		t.Error("not stable")
	}
}

func TestCountingByKeyStrings(t *testing.T) {
	words := []string{"dd", "a", "heh", "aa", "hahah", "b"}
	CountingByKey(words, func(w string) int { return len(w) })
	want := []string{"a", "b", "dd", "aa", "heh", "hahah"}
	if diff := cmp.Diff(want, words); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestCountingByKeyNegativePanics(t *testing.T) {
	require.Panics(t, func() {
		CountingByKey([]int{1, -2, 3}, func(v int) int { return v })
	})
}

func TestCountingByKeyShort(t *testing.T) {
	CountingByKey([]int{}, func(v int) int { return v })
	CountingByKey([]int{-5}, func(v int) int { return v }) // single element: key never called past guard
}
