package radix

//============================================= Radix Insertion

// Insert walks from it's node (the head, lazily created on first use,
// when it is empty) consuming key bit by bit, splitting nodes where a
// stored fragment diverges from key, and appends a new Item recording
// data against the node reached once all keyBits are consumed.
//
// Returns ErrOutOfMemory as soon as the bump allocator cannot satisfy
// an append; any records already appended during this call remain in
// the arena and can be discarded via an earlier Checkpoint.
func Insert(it Iterator, key []byte, keyBits uint64, data []byte) (Value, error) {
	a := it.arena
	if a == nil {
		return Value{}, ErrOutOfMemory
	}

	_, err := a.initRoot()
	if err != nil {
		return Value{}, err
	}

	node := it.node
	if node == 0 {
		node = headNodeOffset
	}

	pos := uint64(0)

	for pos < keyBits {
		n := a.readNode(node)

		dir := bitGet(key, pos)
		child := n.childSmaller
		if dir {
			child = n.childGreater
		}

		if child == 0 {
			leaf, err := a.newLeafNode(node, key, pos, keyBits)
			if err != nil {
				return Value{}, err
			}

			n = a.readNode(node)
			if dir {
				n.childGreater = leaf
			} else {
				n.childSmaller = leaf
			}
			a.writeNode(node, n)

			node = leaf
			pos = keyBits
			break
		}

		testNode := a.readNode(child)
		fragFore, fragRear := fragmentBitRange(testNode)
		fragLen := fragRear - fragFore

		matched := bitCompare(a.buf, fragFore, fragRear, key, pos, keyBits)

		if matched == fragLen {
			node = child
			pos += matched
			continue
		}

		split, err := a.splitNode(node, child, testNode, matched)
		if err != nil {
			return Value{}, err
		}

		n = a.readNode(node)
		if dir {
			n.childGreater = split
		} else {
			n.childSmaller = split
		}
		a.writeNode(node, n)

		node = split
		pos += matched
	}

	return a.appendItem(node, data)
}

// Remove is insert(key, empty data): it appends a zero-size Item (a
// tombstone) rather than removing any storage. Non-nullable reads
// treat the node as absent afterward; nullable reads still surface it
// with dataSize == 0.
func Remove(it Iterator, key []byte, keyBits uint64) (Value, error) {
	return Insert(it, key, keyBits, nil)
}

// appendItem appends a new Item for nodeOffset, linking it onto that
// node's version chain and onto the arena's chronological item chain.
func (a *Arena) appendItem(nodeOffset uint64, data []byte) (Value, error) {
	size := uint64(len(data))

	offset, err := a.bump(itemHeaderSize + size)
	if err != nil {
		return Value{}, err
	}

	if size > 0 {
		copy(a.buf[offset+itemHeaderSize:], data)
	}

	n := a.readNode(nodeOffset)
	m := a.readMeta()

	it := item{
		size:     size,
		node:     nodeOffset,
		previous: n.item,
		lastItem: m.lastItem,
	}
	a.writeItem(offset, it)

	n.item = offset
	a.writeNode(nodeOffset, n)

	m.lastItem = offset
	a.writeMeta(m)

	var dataSlice []byte
	if size > 0 {
		dataSlice = a.itemData(offset, size)
	}

	return Value{arena: a, item: offset, data: dataSlice, dataSize: size}, nil
}
