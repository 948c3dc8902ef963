package radix

import "encoding/binary"

//============================================= Radix Serialization

// readMeta deserializes the singleton meta record at offset 0.
func (a *Arena) readMeta() meta {
	buf := a.buf

	return meta{
		lastNode:     binary.LittleEndian.Uint64(buf[metaLastNodeIdx:]),
		lastItem:     binary.LittleEndian.Uint64(buf[metaLastItemIdx:]),
		structureEnd: binary.LittleEndian.Uint64(buf[metaStructureEndIdx:]),
	}
}

// writeMeta serializes m over the singleton meta record at offset 0.
func (a *Arena) writeMeta(m meta) {
	buf := a.buf

	binary.LittleEndian.PutUint64(buf[metaLastNodeIdx:], m.lastNode)
	binary.LittleEndian.PutUint64(buf[metaLastItemIdx:], m.lastItem)
	binary.LittleEndian.PutUint64(buf[metaStructureEndIdx:], m.structureEnd)
}

// readNode deserializes the node header at offset. The key-fragment
// bytes that follow the header are addressed directly via keyFore/
// keyRear, not copied here.
func (a *Arena) readNode(offset uint64) node {
	buf := a.buf[offset:]

	return node{
		parent:        binary.LittleEndian.Uint64(buf[nodeParentIdx:]),
		childSmaller:  binary.LittleEndian.Uint64(buf[nodeChildSmallerIdx:]),
		childGreater:  binary.LittleEndian.Uint64(buf[nodeChildGreaterIdx:]),
		keyFore:       binary.LittleEndian.Uint64(buf[nodeKeyForeIdx:]),
		keyRear:       binary.LittleEndian.Uint64(buf[nodeKeyRearIdx:]),
		keyForeOffset: buf[nodeKeyForeOffIdx],
		keyRearOffset: buf[nodeKeyRearOffIdx],
		item:          binary.LittleEndian.Uint64(buf[nodeItemIdx:]),
		lastNode:      binary.LittleEndian.Uint64(buf[nodeLastNodeIdx:]),
	}
}

// writeNode serializes n's header over the node record at offset. Does
// not touch the key-fragment bytes following the header.
func (a *Arena) writeNode(offset uint64, n node) {
	buf := a.buf[offset:]

	binary.LittleEndian.PutUint64(buf[nodeParentIdx:], n.parent)
	binary.LittleEndian.PutUint64(buf[nodeChildSmallerIdx:], n.childSmaller)
	binary.LittleEndian.PutUint64(buf[nodeChildGreaterIdx:], n.childGreater)
	binary.LittleEndian.PutUint64(buf[nodeKeyForeIdx:], n.keyFore)
	binary.LittleEndian.PutUint64(buf[nodeKeyRearIdx:], n.keyRear)
	buf[nodeKeyForeOffIdx] = n.keyForeOffset
	buf[nodeKeyRearOffIdx] = n.keyRearOffset
	binary.LittleEndian.PutUint64(buf[nodeItemIdx:], n.item)
	binary.LittleEndian.PutUint64(buf[nodeLastNodeIdx:], n.lastNode)
}

// readItem deserializes the item header at offset. The data bytes that
// follow are addressed via offset+itemHeaderSize, sized by size.
func (a *Arena) readItem(offset uint64) item {
	buf := a.buf[offset:]

	return item{
		size:     binary.LittleEndian.Uint64(buf[itemSizeIdx:]),
		node:     binary.LittleEndian.Uint64(buf[itemNodeIdx:]),
		previous: binary.LittleEndian.Uint64(buf[itemPreviousIdx:]),
		lastItem: binary.LittleEndian.Uint64(buf[itemLastItemIdx:]),
	}
}

// writeItem serializes it's header over the item record at offset.
func (a *Arena) writeItem(offset uint64, it item) {
	buf := a.buf[offset:]

	binary.LittleEndian.PutUint64(buf[itemSizeIdx:], it.size)
	binary.LittleEndian.PutUint64(buf[itemNodeIdx:], it.node)
	binary.LittleEndian.PutUint64(buf[itemPreviousIdx:], it.previous)
	binary.LittleEndian.PutUint64(buf[itemLastItemIdx:], it.lastItem)
}

// itemData returns the data slice following it's header at offset.
func (a *Arena) itemData(offset uint64, size uint64) []byte {
	start := offset + itemHeaderSize
	return a.buf[start : start+size]
}
