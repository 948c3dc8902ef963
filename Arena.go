package radix

//============================================= Arena

// Create wraps buf as an Arena without touching its contents. Use
// Clear to initialize a freshly allocated or reused buffer before its
// first Insert.
func Create(buf []byte) *Arena {
	return &Arena{buf: buf}
}

// Clear resets an Arena to empty: the meta record is rewritten and the
// bump watermark is placed just past it, where the head node will be
// lazily created on the first Insert. Any prior content in buf is
// discarded.
func Clear(a *Arena) error {
	if len(a.buf) < metaSize {
		return ErrTooSmall
	}

	for i := range a.buf {
		a.buf[i] = 0
	}

	a.writeMeta(meta{lastNode: 0, lastItem: 0, structureEnd: metaSize})

	return nil
}

// MemoryUsage reports the number of bytes of buf actually in use,
// i.e. the current bump watermark. Bytes at and beyond this offset
// are free for the next append.
func MemoryUsage(a *Arena) uint64 {
	return a.readMeta().structureEnd
}

// bump reserves size bytes at the current watermark and advances it.
// Returns ErrOutOfMemory without mutating the arena if there isn't
// enough room left in buf.
func (a *Arena) bump(size uint64) (uint64, error) {
	m := a.readMeta()

	offset := m.structureEnd
	if offset+size > uint64(len(a.buf)) {
		return 0, ErrOutOfMemory
	}

	m.structureEnd = offset + size
	a.writeMeta(m)

	return offset, nil
}

// Root returns the empty iterator, the seed for every match and
// traversal operation: the one with no matched node at all.
func Root(a *Arena) Iterator {
	return Iterator{arena: a}
}

// RootValue returns the empty value handle, the seed for valueEarlier
// when no item has been reached yet - the item-chain counterpart to
// Root.
func RootValue(a *Arena) Value {
	return Value{arena: a}
}

// IsEmpty reports whether it carries no matched node.
func (it Iterator) IsEmpty() bool {
	return it.arena == nil || it.node == 0
}

// Data returns the byte slice recorded at the value this iterator's
// node currently points to, or nil if the node has never had a value
// appended.
func (it Iterator) Data() []byte {
	return it.data
}

// IsEmpty reports whether v carries no matched item.
func (v Value) IsEmpty() bool {
	return v.arena == nil || v.item == 0
}

// Data returns the byte slice stored by this value, or nil for a
// tombstone.
func (v Value) Data() []byte {
	return v.data
}

// MatchedBits reports how many key bits were consumed up to and
// including the matched node.
func (m Match) MatchedBits() uint64 {
	return m.matchedBits
}

// IsEmpty reports whether m carries no match.
func (m Match) IsEmpty() bool {
	return m.arena == nil || m.node == 0
}

// Data returns the byte slice recorded by the matched node's current
// value.
func (m Match) Data() []byte {
	return m.data
}

// Iterator narrows a Match down to a plain Iterator positioned at the
// same node, discarding the matched-bit count.
func (m Match) Iterator() Iterator {
	return Iterator{arena: m.arena, node: m.node, data: m.data, dataSize: m.dataSize}
}

// loadIteratorData fills in it's data/dataSize fields from its node's
// current item, if any.
func (a *Arena) loadIteratorData(node uint64) ([]byte, uint64) {
	if node == 0 {
		return nil, 0
	}

	n := a.readNode(node)
	if n.item == 0 {
		return nil, 0
	}

	it := a.readItem(n.item)
	if it.size == 0 {
		return nil, 0
	}

	return a.itemData(n.item, it.size), it.size
}
