package radix

//============================================= Radix Diagnostics

// NodeInfo is a read-only snapshot of one node record, exposed for
// invariant verification (radix/internal/fsck) and tests - nothing in
// the core package itself needs raw offsets outside this shape.
type NodeInfo struct {
	Offset       uint64
	Parent       uint64
	ChildSmaller uint64
	ChildGreater uint64
	Item         uint64
	LastNode     uint64
}

// ItemInfo is a read-only snapshot of one item record.
type ItemInfo struct {
	Offset   uint64
	Size     uint64
	Node     uint64
	Previous uint64
	LastItem uint64
}

// MetaInfo is a read-only snapshot of the singleton meta record.
type MetaInfo struct {
	LastNode     uint64
	LastItem     uint64
	StructureEnd uint64
}

// Inspect returns a's current meta record.
func Inspect(a *Arena) MetaInfo {
	m := a.readMeta()
	return MetaInfo{LastNode: m.lastNode, LastItem: m.lastItem, StructureEnd: m.structureEnd}
}

// InspectNode returns a snapshot of the node at offset. offset must
// be nonzero and point at a live node record.
func InspectNode(a *Arena, offset uint64) NodeInfo {
	n := a.readNode(offset)
	return NodeInfo{
		Offset:       offset,
		Parent:       n.parent,
		ChildSmaller: n.childSmaller,
		ChildGreater: n.childGreater,
		Item:         n.item,
		LastNode:     n.lastNode,
	}
}

// InspectItem returns a snapshot of the item at offset. offset must
// be nonzero and point at a live item record.
func InspectItem(a *Arena, offset uint64) ItemInfo {
	it := a.readItem(offset)
	return ItemInfo{
		Offset:   offset,
		Size:     it.size,
		Node:     it.node,
		Previous: it.previous,
		LastItem: it.lastItem,
	}
}

// HeadOffset is the fixed arena offset of the head node once created.
func HeadOffset() uint64 {
	return headNodeOffset
}
