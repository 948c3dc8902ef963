package radix

//============================================= Radix Node Operations

// bitAdvance walks n bits forward from (byteOff, bitOff) and returns
// the resulting (byte, bit) position.
func bitAdvance(byteOff uint64, bitOff uint8, n uint64) (uint64, uint8) {
	total := byteOff*8 + uint64(bitOff) + n
	return total / 8, uint8(total % 8)
}

// fragmentBitRange returns the absolute bit offsets delimiting n's key
// fragment within the arena buffer.
func fragmentBitRange(n node) (uint64, uint64) {
	fore := n.keyFore*8 + uint64(n.keyForeOffset)
	rear := n.keyRear*8 + uint64(n.keyRearOffset)
	return fore, rear
}

// initRoot lazily creates the always-present head node the first time
// anything is inserted into a fresh arena, writing the meta record
// first if the buffer is still all zeros. A no-op (returning the
// existing head offset) once the head has already been created.
func (a *Arena) initRoot() (uint64, error) {
	m := a.readMeta()
	if m.structureEnd > metaSize {
		return headNodeOffset, nil
	}
	if m.structureEnd < metaSize {
		a.writeMeta(meta{structureEnd: metaSize})
	}

	offset, err := a.bump(nodeHeaderSize)
	if err != nil {
		return 0, err
	}

	a.writeNode(offset, node{})

	m = a.readMeta()
	m.lastNode = offset
	a.writeMeta(m)

	return offset, nil
}

// newLeafNode appends a node whose key fragment is the remaining
// keyBits-pos bits of key, wired nowhere yet - the caller links it
// into the chosen child slot of parent.
func (a *Arena) newLeafNode(parent uint64, key []byte, pos, keyBits uint64) (uint64, error) {
	fragBits := keyBits - pos
	fragBytes := (fragBits + 7) / 8

	offset, err := a.bump(nodeHeaderSize + fragBytes)
	if err != nil {
		return 0, err
	}

	fragStart := offset + nodeHeaderSize
	if fragBits > 0 {
		bitCopy(key, pos, a.buf[fragStart:], 0, fragBits)
	}

	rearByte, rearBit := bitAdvance(fragStart, 0, fragBits)

	m := a.readMeta()

	n := node{
		parent:        parent,
		keyFore:       fragStart,
		keyForeOffset: 0,
		keyRear:       rearByte,
		keyRearOffset: rearBit,
		lastNode:      m.lastNode,
	}
	a.writeNode(offset, n)

	m.lastNode = offset
	a.writeMeta(m)

	return offset, nil
}

// splitNode inserts a branch node mid-fragment when a newly-inserted
// key diverges from testNode's existing fragment after m common bits.
// The split node adopts testNode's first m bits without copying any
// fragment bytes - it borrows testNode's original storage directly,
// and testNode's own fragment is shortened in place to start at bit m.
func (a *Arena) splitNode(parent uint64, childOffset uint64, testNode node, m uint64) (uint64, error) {
	offset, err := a.bump(nodeHeaderSize)
	if err != nil {
		return 0, err
	}

	oldFore := testNode.keyFore*8 + uint64(testNode.keyForeOffset)
	newFore, newForeOffset := bitAdvance(testNode.keyFore, testNode.keyForeOffset, m)

	divergeBit := bitGet(a.buf, oldFore+m)

	meta := a.readMeta()

	split := node{
		parent:        parent,
		keyFore:       testNode.keyFore,
		keyForeOffset: testNode.keyForeOffset,
		keyRear:       newFore,
		keyRearOffset: newForeOffset,
		lastNode:      meta.lastNode,
	}

	if divergeBit {
		split.childGreater = childOffset
	} else {
		split.childSmaller = childOffset
	}

	testNode.parent = offset
	testNode.keyFore = newFore
	testNode.keyForeOffset = newForeOffset

	a.writeNode(offset, split)
	a.writeNode(childOffset, testNode)

	meta.lastNode = offset
	a.writeMeta(meta)

	return offset, nil
}

// selectChildren returns a node's two child slots in the priority
// order used for a given traversal direction: (smaller, greater)
// normally, (greater, smaller) when invert is set. Inverse traversal
// orders are the same algorithm as their natural counterpart with this
// one substitution.
func selectChildren(n node, invert bool) (uint64, uint64) {
	if invert {
		return n.childGreater, n.childSmaller
	}
	return n.childSmaller, n.childGreater
}

// present reports whether the node at offset carries a usable item:
// one that exists at all, and - unless includeTombstones is set - one
// with nonzero size.
func present(a *Arena, offset uint64, includeTombstones bool) bool {
	n := a.readNode(offset)
	if n.item == 0 {
		return false
	}

	if includeTombstones {
		return true
	}

	return a.readItem(n.item).size > 0
}

// buildIterator constructs an Iterator positioned at offset, with its
// data fields loaded from the node's current item.
func buildIterator(a *Arena, offset uint64) Iterator {
	if offset == 0 {
		return Iterator{}
	}

	data, size := a.loadIteratorData(offset)
	return Iterator{arena: a, node: offset, data: data, dataSize: size}
}

// buildValue constructs a Value positioned at the item record at
// offset.
func buildValue(a *Arena, offset uint64) Value {
	if offset == 0 {
		return Value{}
	}

	it := a.readItem(offset)

	var data []byte
	if it.size > 0 {
		data = a.itemData(offset, it.size)
	}

	return Value{arena: a, item: offset, data: data, dataSize: it.size}
}

// buildMatch constructs a Match for the node at offset, recording
// matchedBits key bits consumed to reach it.
func buildMatch(a *Arena, offset uint64, matchedBits uint64) Match {
	if offset == 0 {
		return Match{}
	}

	data, size := a.loadIteratorData(offset)
	return Match{arena: a, node: offset, matchedBits: matchedBits, data: data, dataSize: size}
}
