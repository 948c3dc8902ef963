// Package testutil provides deterministic test fixtures shared across
// the radix package's test files, playing the role the teacher's
// tests/Shared.go random-key helpers played for its own suite.
package testutil

import "github.com/dolthub/maphash"

// KeyGen produces a deterministic, repeatable sequence of distinct
// byte-string keys. Grounded on the Hasher[K] pattern from
// github.com/flier/goutil/pkg/arena/swiss (NewHasher + Hash), used here
// to turn a plain counter into arena-sized pseudorandom bytes instead
// of the teacher's crypto/rand-backed GenerateRandomBytes - a
// reproducible seed keeps a failing test's key reproducible across
// runs without storing any fixture data.
type KeyGen struct {
	hasher maphash.Hasher[uint64]
	next   uint64
}

// NewKeyGen returns a KeyGen. Two KeyGens constructed in the same
// process produce the same sequence, since maphash.NewHasher seeds
// from a process-wide value fixed at init.
func NewKeyGen() *KeyGen {
	return &KeyGen{hasher: maphash.NewHasher[uint64]()}
}

// Bytes returns an n-byte key, distinct from every other key this
// generator has produced so far.
func (g *KeyGen) Bytes(n int) []byte {
	out := make([]byte, n)

	for i := 0; i < n; i += 8 {
		g.next++
		h := g.hasher.Hash(g.next)

		for j := 0; j < 8 && i+j < n; j++ {
			out[i+j] = byte(h >> (8 * uint(j)))
		}
	}

	return out
}

// Distinct returns count distinct n-byte keys.
func (g *KeyGen) Distinct(count, n int) [][]byte {
	seen := make(map[string]bool, count)
	out := make([][]byte, 0, count)

	for len(out) < count {
		k := g.Bytes(n)
		if seen[string(k)] {
			continue
		}
		seen[string(k)] = true
		out = append(out, k)
	}

	return out
}
