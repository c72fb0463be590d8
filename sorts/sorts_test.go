package sorts

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/slices"
)

const testSize = 10_000

func randomInts(n int, seed int64) []int {
	r := rand.New(rand.NewSource(seed))
	s := make([]int, n)
	for i := range s {
		s[i] = int(r.Int31()) - 1<<30
	}
	return s
}

func TestSort(t *testing.T) {
	s := randomInts(testSize, 42)
	want := append([]int(nil), s...)
	slices.Sort(want)

	Sort(s)
	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("Sort mismatch (-want +got):\n%s", diff)
	}
}

func TestSortFuncReverse(t *testing.T) {
	s := randomInts(testSize, 42)
	SortFunc(s, func(a, b int) int { return compareOrdered(b, a) })
	for i := 1; i < len(s); i++ {
		if s[i-1] < s[i] {
			t.Fatalf("not descending at %d: %d < %d", i, s[i-1], s[i])
		}
	}
}

func TestSortStrings(t *testing.T) {
	s := []string{"", "Hello", "foo", "bar", "foo", "f00", "%*&^*&^&", "***"}
	Sort(s)
	if !IsSorted(s) {
		t.Errorf("got %v", s)
	}
}

type pair struct {
	key  int
	name string
}

func pairCompare(a, b pair) int { return compareOrdered(a.key, b.key) }

func TestSortFuncStability(t *testing.T) {
	s := []pair{{1, "a"}, {1, "b"}, {0, "c"}}
	SortFunc(s, pairCompare)
	want := []pair{{0, "c"}, {1, "a"}, {1, "b"}}
	if diff := cmp.Diff(want, s, cmp.AllowUnexported(pair{})); diff != "" {
		t.Errorf("stability mismatch (-want +got):\n%s", diff)
	}
}

type intPair struct {
	a, b int
}

type intPairs []intPair

// Pairs compare on a only.
func intPairCompare(x, y intPair) int { return compareOrdered(x.a, y.a) }

// Record initial order in b.
func (d intPairs) initB() {
	for i := range d {
		d[i].b = i
	}
}

// inOrder checks if a-equal elements were not reordered.
func (d intPairs) inOrder() bool {
	lastA, lastB := -1, 0
	for i := 0; i < len(d); i++ {
		if lastA != d[i].a {
			lastA = d[i].a
			lastB = d[i].b
			continue
		}
		if d[i].b <= lastB {
			return false
		}
		lastB = d[i].b
	}
	return true
}

func TestStability(t *testing.T) {
	n, m := testSize, 1000
	data := make(intPairs, n)

	r := rand.New(rand.NewSource(42))
	for i := 0; i < len(data); i++ {
		data[i].a = r.Intn(m)
	}
	data.initB()
	SortFunc(data, intPairCompare)
	if !IsSortedFunc(data, intPairCompare) {
		t.Errorf("Sort didn't sort %d ints", n)
	}
	if !data.inOrder() {
		t.Errorf("Sort wasn't stable on %d ints", n)
	}

	// already sorted
	data.initB()
	SortFunc(data, intPairCompare)
	if !IsSortedFunc(data, intPairCompare) {
		t.Errorf("Sort shuffled sorted %d ints (order)", n)
	}
	if !data.inOrder() {
		t.Errorf("Sort shuffled sorted %d ints (stability)", n)
	}

	// sorted reversed
	for i := 0; i < len(data); i++ {
		data[i].a = len(data) - i
	}
	data.initB()
	SortFunc(data, intPairCompare)
	if !IsSortedFunc(data, intPairCompare) {
		t.Errorf("Sort didn't sort %d ints", n)
	}
	if !data.inOrder() {
		t.Errorf("Sort wasn't stable on %d ints", n)
	}
}

// Sorting an already-sorted slice must leave every element exactly in
// place, not just in an order-equivalent arrangement.
func TestSortIdempotent(t *testing.T) {
	data := make(intPairs, 4096)
	r := rand.New(rand.NewSource(7))
	for i := range data {
		data[i].a = r.Intn(64)
	}
	SortFunc(data, intPairCompare)
	data.initB()

	want := append(intPairs(nil), data...)
	SortFunc(data, intPairCompare)
	if diff := cmp.Diff(want, data, cmp.AllowUnexported(intPair{})); diff != "" {
		t.Errorf("resort changed a sorted slice (-want +got):\n%s", diff)
	}
}

func TestSortByLengthKey(t *testing.T) {
	words := []string{"dd", "a", "heh", "aa", "hahah", "b", "dddddd", "c", "ee", "f"}
	byLen := func(a, b string) int { return len(a) - len(b) }
	SortFunc(words, byLen)
	want := []string{"a", "b", "c", "f", "dd", "aa", "ee", "heh", "hahah", "dddddd"}
	if diff := cmp.Diff(want, words); diff != "" {
		t.Errorf("length-stable sort mismatch (-want +got):\n%s", diff)
	}
}

func TestIsSorted(t *testing.T) {
	if !IsSorted([]int{}) || !IsSorted([]int{1}) || !IsSorted([]int{1, 1, 2}) {
		t.Error("sorted slices reported unsorted")
	}
	if IsSorted([]int{2, 1}) {
		t.Error("unsorted slice reported sorted")
	}
}
