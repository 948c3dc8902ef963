package radix

//============================================= Radix Traversal

// descendToFirst descends via the primary child slot at each level
// (selectChildren's first return value, falling back to the second),
// yielding the first node along the way that carries a present item.
// If it reaches a leaf without one, the search continues with that
// leaf's successor.
func descendToFirst(a *Arena, offset uint64, includeTombstones, invert bool) Iterator {
	for {
		if present(a, offset, includeTombstones) {
			return buildIterator(a, offset)
		}

		n := a.readNode(offset)
		childA, childB := selectChildren(n, invert)

		next := childA
		if next == 0 {
			next = childB
		}
		if next == 0 {
			return nextInternal(Iterator{arena: a, node: offset}, includeTombstones, invert)
		}

		offset = next
	}
}

// descendToLastOffset descends via the secondary child slot at each
// level (selectChildren's second return value, falling back to the
// first), all the way to a true leaf - both child slots zero - without
// checking presence along the way. The leaf it lands on may or may not
// carry a present item; the caller is responsible for checking and,
// if absent, resuming the ascend/backtrack search from that leaf.
func descendToLastOffset(a *Arena, offset uint64, invert bool) uint64 {
	for {
		n := a.readNode(offset)
		childA, childB := selectChildren(n, invert)

		next := childB
		if next == 0 {
			next = childA
		}
		if next == 0 {
			return offset
		}

		offset = next
	}
}

// nextInternal backs next/nextNullable/prevInverse/prevInverseNullable:
// invert swaps the two child slots everywhere, turning the natural
// successor walk into the prevInverse walk.
func nextInternal(it Iterator, includeTombstones, invert bool) Iterator {
	a := it.arena
	if a == nil {
		return Iterator{}
	}

	if it.node == 0 {
		if a.readMeta().structureEnd <= metaSize {
			return Iterator{}
		}
		if present(a, headNodeOffset, includeTombstones) {
			return buildIterator(a, headNodeOffset)
		}
		return descendToFirst(a, headNodeOffset, includeTombstones, invert)
	}

	n := a.readNode(it.node)
	childA, childB := selectChildren(n, invert)

	if childA != 0 || childB != 0 {
		child := childA
		if child == 0 {
			child = childB
		}
		if present(a, child, includeTombstones) {
			return buildIterator(a, child)
		}
		return descendToFirst(a, child, includeTombstones, invert)
	}

	cur := it.node
	for {
		if n.parent == 0 {
			return Iterator{}
		}

		pn := a.readNode(n.parent)
		_, bSlot := selectChildren(pn, invert)

		if bSlot != 0 && bSlot != cur {
			if present(a, bSlot, includeTombstones) {
				return buildIterator(a, bSlot)
			}
			return descendToFirst(a, bSlot, includeTombstones, invert)
		}

		cur = n.parent
		n = pn
	}
}

// prevInternal backs prev/prevNullable/nextInverse/nextInverseNullable:
// seeded from empty it descends fully to the far leaf before checking
// presence even once, matching radixPrev/radixNextInverse. A leaf
// reached this way that turns out absent does not dead-end the search -
// the ascend loop below resumes from wherever the descent landed and
// keeps backtracking toward the root.
func prevInternal(it Iterator, includeTombstones, invert bool) Iterator {
	a := it.arena
	if a == nil {
		return Iterator{}
	}

	var node uint64
	if it.node == 0 {
		if a.readMeta().structureEnd <= metaSize {
			return Iterator{}
		}
		node = descendToLastOffset(a, headNodeOffset, invert)
		if present(a, node, includeTombstones) {
			return buildIterator(a, node)
		}
	} else {
		node = it.node
	}

	for {
		n := a.readNode(node)
		if n.parent == 0 {
			return Iterator{}
		}

		pn := a.readNode(n.parent)
		smallerSlot, _ := selectChildren(pn, invert)

		if smallerSlot != 0 && smallerSlot != node {
			node = descendToLastOffset(a, smallerSlot, invert)
		} else {
			node = n.parent
		}

		if present(a, node, includeTombstones) {
			return buildIterator(a, node)
		}
	}
}

// predecessorInternal walks strictly up the parent chain, returning
// the nearest ancestor carrying a present item.
func predecessorInternal(it Iterator, includeTombstones bool) Iterator {
	a := it.arena
	if a == nil || it.node == 0 {
		return Iterator{}
	}

	offset := a.readNode(it.node).parent
	for offset != 0 {
		if present(a, offset, includeTombstones) {
			return buildIterator(a, offset)
		}
		offset = a.readNode(offset).parent
	}

	return Iterator{}
}

// earlierInternal follows the chronological node chain (meta.lastNode,
// then node.lastNode) skipping nodes that don't carry a present item.
func earlierInternal(it Iterator, includeTombstones bool) Iterator {
	a := it.arena
	if a == nil {
		return Iterator{}
	}

	var offset uint64
	if it.node == 0 {
		offset = a.readMeta().lastNode
	} else {
		offset = a.readNode(it.node).lastNode
	}

	for offset != 0 {
		if present(a, offset, includeTombstones) {
			return buildIterator(a, offset)
		}
		offset = a.readNode(offset).lastNode
	}

	return Iterator{}
}

// Next returns the natural lexicographic successor of it ("shorter
// before longer" over MSB-first bit strings), or the smallest present
// key when it is empty.
func Next(it Iterator) Iterator { return nextInternal(it, false, false) }

// NextNullable is Next, but tombstones count as present.
func NextNullable(it Iterator) Iterator { return nextInternal(it, true, false) }

// Prev returns the natural lexicographic predecessor of it, or the
// largest present key when it is empty.
func Prev(it Iterator) Iterator { return prevInternal(it, false, false) }

// PrevNullable is Prev, but tombstones count as present.
func PrevNullable(it Iterator) Iterator { return prevInternal(it, true, false) }

// NextInverse is Next with the child slots swapped: "1 before 0", and
// longer before shorter among equal-prefix siblings. Seeded empty it
// yields the smallest leaf, descending fully before the first presence
// check - the same shape as Prev, not Next, with inverted slots.
func NextInverse(it Iterator) Iterator { return prevInternal(it, false, true) }

// NextInverseNullable is NextInverse, but tombstones count as present.
func NextInverseNullable(it Iterator) Iterator { return prevInternal(it, true, true) }

// PrevInverse walks NextInverse's order backward. Seeded empty it
// yields the head node, checking presence at every level on the way
// down - the same shape as Next, not Prev, with inverted slots.
func PrevInverse(it Iterator) Iterator { return nextInternal(it, false, true) }

// PrevInverseNullable is PrevInverse, but tombstones count as present.
func PrevInverseNullable(it Iterator) Iterator { return nextInternal(it, true, true) }

// Predecessor returns the nearest present ancestor of it, ignoring
// lexicographic siblings entirely.
func Predecessor(it Iterator) Iterator { return predecessorInternal(it, false) }

// PredecessorNullable is Predecessor, but tombstones count as present.
func PredecessorNullable(it Iterator) Iterator { return predecessorInternal(it, true) }

// Earlier returns the most recently appended node before it in
// insertion order (or the most recently appended node overall, when
// it is empty).
func Earlier(it Iterator) Iterator { return earlierInternal(it, false) }

// EarlierNullable is Earlier, but tombstones count as present.
func EarlierNullable(it Iterator) Iterator { return earlierInternal(it, true) }
