package radix

//============================================= Radix Bit Utilities

// bitGet reads a single bit from a byte stream, numbering bits
// most-significant-first: bit index i selects byte i/8, mask
// 1 << (7 - i%8). Returns false for a nil stream.
func bitGet(stream []byte, bitIndex uint64) bool {
	if stream == nil {
		return false
	}

	mask := byte(1 << (7 - bitIndex%8))
	return stream[bitIndex/8]&mask != 0
}

// bitSet writes a single bit into a byte stream. No-op for a nil
// stream.
func bitSet(stream []byte, bitIndex uint64, value bool) {
	if stream == nil {
		return
	}

	mask := byte(1 << (7 - bitIndex%8))

	if value {
		stream[bitIndex/8] |= mask
	} else {
		stream[bitIndex/8] &^= mask
	}
}

// bitCopy copies count bits from input (starting at inputOffset) to
// output (starting at outputOffset), preserving MSB-first ordering.
// Supports non-overlapping regions at arbitrary bit alignment.
func bitCopy(input []byte, inputOffset uint64, output []byte, outputOffset uint64, count uint64) {
	for i := uint64(0); i < count; i++ {
		bitSet(output, outputOffset+i, bitGet(input, inputOffset+i))
	}
}

// bitCompare returns the count of common leading bits between
// a[aFore:aRear] and b[bFore:bRear], capped at the shorter of the two
// spans.
func bitCompare(a []byte, aFore, aRear uint64, b []byte, bFore, bRear uint64) uint64 {
	aSize := aRear - aFore
	bSize := bRear - bFore

	minSize := aSize
	if bSize < minSize {
		minSize = bSize
	}

	for i := uint64(0); i < minSize; i++ {
		if bitGet(a, aFore+i) != bitGet(b, bFore+i) {
			return i
		}
	}

	return minSize
}

//============================================= Radix Key Reconstruction

// KeyBits walks the parent chain of it's node, summing each node's
// key-fragment bit-length. The head's empty fragment contributes zero.
func KeyBits(it Iterator) uint64 {
	a := it.arena
	if a == nil {
		return 0
	}

	var total uint64
	offset := it.node

	for offset != 0 {
		n := a.readNode(offset)
		total += fragmentBits(n)
		offset = n.parent
	}

	return total
}

// KeyCopy walks from it's node to the head, appending each fragment's
// bits in reverse so the output is root-first. If outputBits is
// insufficient for the full key, KeyCopy writes only the deepest
// outputBits of the true key (a suffix) and returns ErrOutOfMemory.
func KeyCopy(it Iterator, output []byte, outputBits uint64) error {
	a := it.arena
	if a == nil {
		return nil
	}

	offset := it.node
	remaining := outputBits

	for offset != 0 {
		n := a.readNode(offset)
		nodeKeyBits := fragmentBits(n)

		if remaining < nodeKeyBits {
			suffixOffset := nodeKeyBits + uint64(n.keyForeOffset) - remaining
			bitCopy(a.buf[n.keyFore:], suffixOffset, output, 0, remaining)

			return ErrOutOfMemory
		}

		remaining -= nodeKeyBits
		bitCopy(a.buf[n.keyFore:], uint64(n.keyForeOffset), output, remaining, nodeKeyBits)

		offset = n.parent
	}

	return nil
}

// fragmentBits is the bit-length of a node's key fragment.
func fragmentBits(n node) uint64 {
	return 8*(n.keyRear-n.keyFore) + uint64(n.keyRearOffset) - uint64(n.keyForeOffset)
}
