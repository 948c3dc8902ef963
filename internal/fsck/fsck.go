// Package fsck walks a radix.Arena and verifies the quantified
// invariants the core record layout depends on. It is a pure reader:
// it never mutates the arena it inspects.
package fsck

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/bitpatricia/radix"
)

// Check walks every node reachable from the head, and every item
// reachable from each node's version chain, verifying:
//
//   - the chronological chains - node.lastNode and item.previous/
//     lastItem - are strictly decreasing offsets, the property
//     CheckpointRestore's unwind depends on;
//   - every node's item chain (item -> previous -> ...) terminates at
//     0, and every item on that chain names the node it belongs to;
//   - no offset is visited twice by the structural walk, which would
//     indicate a cycle the bump-allocator's append-only discipline
//     should make impossible.
//
// Parent, childSmaller/childGreater, and a node's own item pointer are
// deliberately NOT checked for strictly-decreasing offsets: each is
// mutated in place on an already-appended record (wiring a new child,
// attaching a new item version, or re-parenting a split survivor onto
// the node just appended above it), so they legitimately point
// forward. The child links are instead walked and must resolve to an
// in-range node visited exactly once; parent links are not checked.
//
// Returns a descriptive error on the first violation found.
func Check(a *radix.Arena) error {
	meta := radix.Inspect(a)

	if meta.StructureEnd == 0 {
		return nil
	}

	visitedNodes := bitset.New(uint(meta.StructureEnd))

	head := radix.HeadOffset()
	if head >= meta.StructureEnd {
		return nil
	}

	return checkNode(a, head, visitedNodes, meta.StructureEnd)
}

func checkNode(a *radix.Arena, offset uint64, visited *bitset.BitSet, structureEnd uint64) error {
	if visited.Test(uint(offset)) {
		return fmt.Errorf("fsck: cycle detected, node at offset %d visited twice", offset)
	}
	visited.Set(uint(offset))

	n := radix.InspectNode(a, offset)

	if n.ChildSmaller != 0 && n.ChildSmaller >= structureEnd {
		return fmt.Errorf("fsck: node %d childSmaller=%d is out of range", offset, n.ChildSmaller)
	}
	if n.ChildGreater != 0 && n.ChildGreater >= structureEnd {
		return fmt.Errorf("fsck: node %d childGreater=%d is out of range", offset, n.ChildGreater)
	}
	if err := checkBackLink(n.LastNode, offset, "lastNode"); err != nil {
		return err
	}

	if n.Item != 0 {
		if err := checkItemChain(a, n.Item, offset); err != nil {
			return err
		}
	}

	if n.ChildSmaller != 0 {
		if err := checkNode(a, n.ChildSmaller, visited, structureEnd); err != nil {
			return err
		}
	}
	if n.ChildGreater != 0 {
		if err := checkNode(a, n.ChildGreater, visited, structureEnd); err != nil {
			return err
		}
	}

	return nil
}

func checkItemChain(a *radix.Arena, offset uint64, owner uint64) error {
	seen := make(map[uint64]bool)

	for offset != 0 {
		if seen[offset] {
			return fmt.Errorf("fsck: cycle in item chain for node %d at item %d", owner, offset)
		}
		seen[offset] = true

		it := radix.InspectItem(a, offset)
		if it.Node != owner {
			return fmt.Errorf("fsck: item %d claims node %d, expected %d", offset, it.Node, owner)
		}

		if err := checkBackLink(it.Previous, offset, "previous"); err != nil {
			return err
		}
		if err := checkBackLink(it.LastItem, offset, "lastItem"); err != nil {
			return err
		}

		offset = it.Previous
	}

	return nil
}

// checkBackLink verifies the invariant that every nonzero back-link
// points strictly earlier in the arena than the record holding it.
func checkBackLink(link uint64, holder uint64, field string) error {
	if link != 0 && link >= holder {
		return fmt.Errorf("fsck: record at %d has %s=%d, which is not strictly earlier", holder, field, link)
	}
	return nil
}
