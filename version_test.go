package radix_test

import (
	"bytes"
	"testing"

	"github.com/bitpatricia/radix"
)

// TestValueEarlierVisitsVersionsInReverseAppendOrder covers the
// chronological item chain: valueEarlier from the empty handle visits
// every appended item (across every key) in strict reverse order.
func TestValueEarlierVisitsVersionsInReverseAppendOrder(t *testing.T) {
	a := newArena(t, 8*1024)
	root := radix.Root(a)

	writes := []struct{ key, value string }{
		{"k1", "v1"},
		{"k2", "v2"},
		{"k1", "v1b"},
		{"k3", "v3"},
	}
	for _, w := range writes {
		if _, err := radix.Insert(root, []byte(w.key), bitsOf([]byte(w.key)), []byte(w.value)); err != nil {
			t.Fatalf("insert %s: %v", w.key, err)
		}
	}

	var got []string
	for v := radix.ValueEarlier(radix.RootValue(a)); !v.IsEmpty(); v = radix.ValueEarlier(v) {
		got = append(got, string(v.Data()))
	}

	want := []string{"v3", "v1b", "v2", "v1"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

// TestValuePreviousWalksOneKeysVersionChain covers that valuePrevious
// only follows a single key's own chain, not the arena-wide one.
func TestValuePreviousWalksOneKeysVersionChain(t *testing.T) {
	a := newArena(t, 8*1024)
	root := radix.Root(a)
	key := []byte("versioned")

	for _, v := range []string{"v1", "v2", "v3"} {
		if _, err := radix.Insert(root, key, bitsOf(key), []byte(v)); err != nil {
			t.Fatalf("insert %s: %v", v, err)
		}
	}

	m := radix.MatchExact(root, key, bitsOf(key))
	current := radix.IteratorToValue(m.Iterator())
	if !bytes.Equal(current.Data(), []byte("v3")) {
		t.Fatalf("current = %q, want v3", current.Data())
	}

	prev1 := radix.ValuePrevious(current)
	if !bytes.Equal(prev1.Data(), []byte("v2")) {
		t.Fatalf("prev1 = %q, want v2", prev1.Data())
	}

	prev2 := radix.ValuePrevious(prev1)
	if !bytes.Equal(prev2.Data(), []byte("v1")) {
		t.Fatalf("prev2 = %q, want v1", prev2.Data())
	}

	if prev3 := radix.ValuePrevious(prev2); !prev3.IsEmpty() {
		t.Error("ValuePrevious on the oldest version returned non-empty")
	}
}

// TestValueToIteratorAndBack covers the value/iterator round trip:
// iteratorToValue(valueToIterator(v)) carries the same data as v when
// v is the current value of its node.
func TestValueToIteratorAndBack(t *testing.T) {
	a := newArena(t, 4*1024)
	root := radix.Root(a)
	key := []byte("roundtrip")

	if _, err := radix.Insert(root, key, bitsOf(key), []byte("data")); err != nil {
		t.Fatalf("insert: %v", err)
	}

	m := radix.MatchExact(root, key, bitsOf(key))
	v := radix.IteratorToValue(m.Iterator())

	it := radix.ValueToIterator(v)
	back := radix.IteratorToValue(it)

	if !bytes.Equal(back.Data(), v.Data()) {
		t.Errorf("round-trip data = %q, want %q", back.Data(), v.Data())
	}
}
