package radix

import (
	"iter"

	"github.com/flier/goutil/pkg/xiter"
)

//============================================= Radix Public Iteration

// Ascend returns a's present keys in natural lexicographic order,
// starting from the smallest.
func Ascend(a *Arena) iter.Seq[Match] {
	return traversalSeq(Root(a), Next)
}

// AscendNullable is Ascend, including tombstoned keys.
func AscendNullable(a *Arena) iter.Seq[Match] {
	return traversalSeq(Root(a), NextNullable)
}

// Descend returns a's present keys in natural-predecessor order,
// starting from the largest.
func Descend(a *Arena) iter.Seq[Match] {
	return traversalSeq(Root(a), Prev)
}

// History returns every present node in strict reverse chronological
// (most recently appended first) order.
func History(a *Arena) iter.Seq[Match] {
	return traversalSeq(Root(a), Earlier)
}

// traversalSeq turns a step function (Next, Prev, Earlier, ...) into
// an iter.Seq[Match], grounded on xiter.Successors: the chain
// terminates as soon as step returns an empty Iterator, rather than
// risking a reseed back to the smallest element the way feeding step
// straight into an unfold primitive would.
func traversalSeq(seed Iterator, step func(Iterator) Iterator) iter.Seq[Match] {
	first := step(seed)
	if first.IsEmpty() {
		return func(func(Match) bool) {}
	}

	chain := xiter.Successors(first, func(it Iterator) (Iterator, bool) {
		next := step(it)
		if next.IsEmpty() {
			return Iterator{}, false
		}
		return next, true
	})

	return func(yield func(Match) bool) {
		for it := range chain {
			m := Match{arena: it.arena, node: it.node, matchedBits: KeyBits(it), data: it.data, dataSize: it.dataSize}
			if !yield(m) {
				return
			}
		}
	}
}
