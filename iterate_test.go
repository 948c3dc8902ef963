package radix_test

import (
	"testing"

	"github.com/bitpatricia/radix"
)

// TestDescendMatchesReverseOfAscend checks the range-over-func Descend
// iterator visits keys in the opposite order from Ascend.
func TestDescendMatchesReverseOfAscend(t *testing.T) {
	a := newArena(t, 8*1024)
	root := radix.Root(a)

	for _, k := range []string{"c", "a", "b"} {
		if _, err := radix.Insert(root, []byte(k), bitsOf([]byte(k)), []byte(k)); err != nil {
			t.Fatalf("insert %s: %v", k, err)
		}
	}

	var ascending []string
	for m := range radix.Ascend(a) {
		ascending = append(ascending, string(keyOf(t, m.Iterator())))
	}

	var descending []string
	for m := range radix.Descend(a) {
		descending = append(descending, string(keyOf(t, m.Iterator())))
	}

	if len(ascending) != len(descending) {
		t.Fatalf("ascending has %d keys, descending has %d", len(ascending), len(descending))
	}
	for i := range ascending {
		if ascending[i] != descending[len(descending)-1-i] {
			t.Errorf("descending[%d] = %q, want %q", i, descending[len(descending)-1-i], ascending[i])
		}
	}
}

// TestHistoryVisitsMostRecentNodeFirst covers that History (the
// range-over-func wrapper around Earlier) stops as soon as the
// sequence consumer does, and visits the most recently appended node
// first.
func TestHistoryVisitsMostRecentNodeFirst(t *testing.T) {
	a := newArena(t, 8*1024)
	root := radix.Root(a)

	for _, k := range []string{"first", "second", "third"} {
		if _, err := radix.Insert(root, []byte(k), bitsOf([]byte(k)), []byte(k)); err != nil {
			t.Fatalf("insert %s: %v", k, err)
		}
	}

	var got []string
	count := 0
	for m := range radix.History(a) {
		got = append(got, string(keyOf(t, m.Iterator())))
		count++
		if count == 1 {
			break
		}
	}

	if len(got) != 1 || got[0] != "third" {
		t.Fatalf("History first key = %v, want [third]", got)
	}
}
