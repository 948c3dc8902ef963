package radix_test

import (
	"bytes"
	"testing"

	"github.com/bitpatricia/radix"
)

// TestCheckpointRestoreUndoesOverwriteAndLaterInserts covers the
// "Key for override" scenario: capture a checkpoint between two
// inserts of the same key, insert more keys afterward, then restore -
// the overwrite and every later key vanish, but memoryUsage and every
// pre-checkpoint query go back to exactly what they were.
func TestCheckpointRestoreUndoesOverwriteAndLaterInserts(t *testing.T) {
	a := newArena(t, 20*1024)
	root := radix.Root(a)
	key := []byte("Key for override")
	other := []byte("Key-a")

	if _, err := radix.Insert(root, other, bitsOf(other), []byte(" Value-a")); err != nil {
		t.Fatalf("insert other: %v", err)
	}
	if _, err := radix.Insert(root, key, bitsOf(key), []byte("will be override")); err != nil {
		t.Fatalf("first insert: %v", err)
	}

	cp := radix.CaptureCheckpoint(a)
	usageAtCheckpoint := radix.MemoryUsage(a)

	if _, err := radix.Insert(root, key, bitsOf(key), []byte("has been overwritten")); err != nil {
		t.Fatalf("second insert: %v", err)
	}
	if _, err := radix.Insert(root, []byte("inserted-after-cp"), bitsOf([]byte("inserted-after-cp")), []byte("x")); err != nil {
		t.Fatalf("post-checkpoint insert: %v", err)
	}

	radix.CheckpointRestore(a, cp)

	if got := radix.MemoryUsage(a); got != usageAtCheckpoint {
		t.Errorf("MemoryUsage after restore = %d, want %d", got, usageAtCheckpoint)
	}

	m := radix.MatchExact(root, key, bitsOf(key))
	if m.IsEmpty() {
		t.Fatal("MatchExact(key) after restore returned empty")
	}
	if !bytes.Equal(m.Data(), []byte("will be override")) {
		t.Errorf("data after restore = %q, want %q", m.Data(), "will be override")
	}

	if after := radix.MatchExact(root, []byte("inserted-after-cp"), bitsOf([]byte("inserted-after-cp"))); !after.IsEmpty() {
		t.Error("key inserted after checkpoint is still present after restore")
	}

	// Pre-checkpoint query unaffected.
	pre := radix.MatchExact(root, other, bitsOf(other))
	if pre.IsEmpty() || !bytes.Equal(pre.Data(), []byte(" Value-a")) {
		t.Errorf("pre-checkpoint key disturbed by restore: data = %q", pre.Data())
	}
}

// TestCheckpointRestoreUndoesSplit covers restoring past a split: two
// keys that shared a prefix and forced a split node are both removed
// by the rollback, and the tree behaves as if they were never
// inserted.
func TestCheckpointRestoreUndoesSplit(t *testing.T) {
	a := newArena(t, 4*1024)
	root := radix.Root(a)

	base := []byte("base-key")
	if _, err := radix.Insert(root, base, bitsOf(base), []byte("base")); err != nil {
		t.Fatalf("insert base: %v", err)
	}

	cp := radix.CaptureCheckpoint(a)
	usageAtCheckpoint := radix.MemoryUsage(a)

	sibling1 := []byte("base-keyA")
	sibling2 := []byte("base-keyB")
	if _, err := radix.Insert(root, sibling1, bitsOf(sibling1), []byte("s1")); err != nil {
		t.Fatalf("insert sibling1: %v", err)
	}
	if _, err := radix.Insert(root, sibling2, bitsOf(sibling2), []byte("s2")); err != nil {
		t.Fatalf("insert sibling2: %v", err)
	}

	radix.CheckpointRestore(a, cp)

	if got := radix.MemoryUsage(a); got != usageAtCheckpoint {
		t.Errorf("MemoryUsage after restore = %d, want %d", got, usageAtCheckpoint)
	}

	if m := radix.MatchExact(root, sibling1, bitsOf(sibling1)); !m.IsEmpty() {
		t.Error("sibling1 still present after restore")
	}
	if m := radix.MatchExact(root, sibling2, bitsOf(sibling2)); !m.IsEmpty() {
		t.Error("sibling2 still present after restore")
	}

	m := radix.MatchExact(root, base, bitsOf(base))
	if m.IsEmpty() || !bytes.Equal(m.Data(), []byte("base")) {
		t.Errorf("base key disturbed by restore: data = %q", m.Data())
	}
}

// TestWithCheckpointRollsBackOnError covers the transaction helper:
// a failing fn's writes are rolled back, a succeeding fn's are kept.
func TestWithCheckpointRollsBackOnError(t *testing.T) {
	a := newArena(t, 4*1024)
	root := radix.Root(a)
	key := []byte("txn-key")

	sentinel := errBoom{}
	err := radix.WithCheckpoint(a, func() error {
		if _, insertErr := radix.Insert(root, key, bitsOf(key), []byte("v")); insertErr != nil {
			return insertErr
		}
		return sentinel
	})
	if err != sentinel {
		t.Fatalf("WithCheckpoint returned %v, want sentinel", err)
	}
	if m := radix.MatchExact(root, key, bitsOf(key)); !m.IsEmpty() {
		t.Error("key survived a rolled-back transaction")
	}

	ok := radix.WithCheckpoint(a, func() error {
		_, insertErr := radix.Insert(root, key, bitsOf(key), []byte("v"))
		return insertErr
	})
	if ok != nil {
		t.Fatalf("WithCheckpoint returned %v, want nil", ok)
	}
	if m := radix.MatchExact(root, key, bitsOf(key)); m.IsEmpty() {
		t.Error("key missing after a successful transaction")
	}
}

type errBoom struct{}

func (errBoom) Error() string { return "boom" }
