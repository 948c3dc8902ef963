package radix

import "iter"

//============================================= Radix Range

// RangeKeys walks a in natural lexicographic order, starting at the
// first present key at or after (startKey, startBits) and stopping
// strictly before (endKey, endBits). A nil startKey runs from the
// smallest key; a nil endKey runs to the largest.
//
// Since the tree is already sorted by Next's ordering, this is a
// plain forward walk with a skip-until-start and stop-at-end guard
// rather than a dedicated seek algorithm.
func RangeKeys(a *Arena, startKey []byte, startBits uint64, endKey []byte, endBits uint64) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		for m := range Ascend(a) {
			it := m.Iterator()
			bits := KeyBits(it)

			buf := make([]byte, (bits+7)/8)
			_ = KeyCopy(it, buf, bits)

			if startKey != nil && keyLess(bits, buf, startBits, startKey) {
				continue
			}

			if endKey != nil && !keyLess(bits, buf, endBits, endKey) {
				return
			}

			if !yield(m) {
				return
			}
		}
	}
}

// keyLess reports whether (aBits, aBuf) sorts strictly before (bBits,
// bBuf) under the natural lexicographic order: equal-prefix keys
// compare shorter-before-longer, otherwise the first differing bit
// decides, 0 before 1.
func keyLess(aBits uint64, aBuf []byte, bBits uint64, bBuf []byte) bool {
	common := bitCompare(aBuf, 0, aBits, bBuf, 0, bBits)

	if common < aBits && common < bBits {
		return !bitGet(aBuf, common) && bitGet(bBuf, common)
	}

	return aBits < bBits
}
