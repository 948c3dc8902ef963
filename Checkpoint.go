package radix

//============================================= Radix Checkpointing

// CaptureCheckpoint captures the arena's current bump watermark. Restoring
// it later undoes every record appended since.
func CaptureCheckpoint(a *Arena) Checkpoint {
	return Checkpoint{state: a.readMeta().structureEnd}
}

// IteratorToCheckpoint converts it's node offset into a Checkpoint.
// Only meaningful when it was obtained immediately after the Insert
// that appended it - i.e. its offset equals the watermark at that
// moment. Prefer CaptureCheckpoint for general use.
func IteratorToCheckpoint(it Iterator) Checkpoint {
	return Checkpoint{state: it.node}
}

// ValueToCheckpoint converts v's item offset into a Checkpoint, with
// the same caveat as IteratorToCheckpoint.
func ValueToCheckpoint(v Value) Checkpoint {
	return Checkpoint{state: v.item}
}

// CheckpointRestore unwinds every item and node appended at or after
// cp, in reverse append order, re-linking the structure back to its
// pre-append shape. Infallible: it only lowers the watermark and
// rewires records that already exist.
func CheckpointRestore(a *Arena, cp Checkpoint) {
	m := a.readMeta()

	for m.lastItem != 0 && m.lastItem >= cp.state {
		it := a.readItem(m.lastItem)

		n := a.readNode(it.node)
		n.item = it.previous
		a.writeNode(it.node, n)

		m.lastItem = it.lastItem
	}

	for m.lastNode != 0 && m.lastNode >= cp.state {
		offset := m.lastNode
		n := a.readNode(offset)

		if n.parent != 0 {
			fragFore, _ := fragmentBitRange(n)
			dir := bitGet(a.buf, fragFore)

			survivor := n.childSmaller
			if survivor == 0 {
				survivor = n.childGreater
			}

			parent := a.readNode(n.parent)

			if survivor != 0 {
				sn := a.readNode(survivor)
				sn.parent = n.parent
				sn.keyFore = n.keyFore
				sn.keyForeOffset = n.keyForeOffset
				a.writeNode(survivor, sn)

				if dir {
					parent.childGreater = survivor
				} else {
					parent.childSmaller = survivor
				}
			} else {
				if dir {
					parent.childGreater = 0
				} else {
					parent.childSmaller = 0
				}
			}

			a.writeNode(n.parent, parent)
		}

		m.lastNode = n.lastNode
	}

	m.structureEnd = cp.state
	a.writeMeta(m)
}
