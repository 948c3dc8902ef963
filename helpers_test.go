package radix_test

import (
	"testing"

	"github.com/bitpatricia/radix"
)

// newArena allocates a size-byte buffer, wraps and clears it, and
// returns the ready-to-use Arena.
func newArena(t *testing.T, size int) *radix.Arena {
	t.Helper()

	buf := make([]byte, size)
	a := radix.Create(buf)
	if err := radix.Clear(a); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	return a
}

func bitsOf(key []byte) uint64 { return uint64(len(key)) * 8 }

// keyOf rebuilds the full key bytes a Match/Iterator currently names.
func keyOf(t *testing.T, it radix.Iterator) []byte {
	t.Helper()

	bits := radix.KeyBits(it)
	buf := make([]byte, (bits+7)/8)

	if err := radix.KeyCopy(it, buf, bits); err != nil {
		t.Fatalf("KeyCopy: %v", err)
	}

	return buf
}
