package radix_test

import (
	"testing"

	"github.com/bitpatricia/radix"
)

// TestRangeKeysBoundedWalk covers the supplemented bounded range walk:
// only keys within [start, end) are visited, in lexicographic order.
func TestRangeKeysBoundedWalk(t *testing.T) {
	a := newArena(t, 8*1024)
	root := radix.Root(a)

	for _, k := range []string{"a", "b", "c", "d", "e"} {
		if _, err := radix.Insert(root, []byte(k), bitsOf([]byte(k)), []byte(k)); err != nil {
			t.Fatalf("insert %s: %v", k, err)
		}
	}

	start := []byte("b")
	end := []byte("d")

	var got []string
	for m := range radix.RangeKeys(a, start, bitsOf(start), end, bitsOf(end)) {
		got = append(got, string(keyOf(t, m.Iterator())))
	}

	want := []string{"b", "c"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

// TestRangeKeysUnboundedEnds covers nil start/end meaning "from the
// smallest key"/"to the largest key".
func TestRangeKeysUnboundedEnds(t *testing.T) {
	a := newArena(t, 8*1024)
	root := radix.Root(a)

	for _, k := range []string{"x", "m", "a"} {
		if _, err := radix.Insert(root, []byte(k), bitsOf([]byte(k)), []byte(k)); err != nil {
			t.Fatalf("insert %s: %v", k, err)
		}
	}

	var got []string
	for m := range radix.RangeKeys(a, nil, 0, nil, 0) {
		got = append(got, string(keyOf(t, m.Iterator())))
	}

	want := []string{"a", "m", "x"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
