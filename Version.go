package radix

//============================================= Radix Value Versioning

// valuePreviousInternal follows item.previous from v's item, the
// per-key version chain, skipping tombstones unless includeTombstones
// is set.
func valuePreviousInternal(v Value, includeTombstones bool) Value {
	a := v.arena
	if a == nil || v.item == 0 {
		return Value{}
	}

	offset := a.readItem(v.item).previous
	for offset != 0 {
		it := a.readItem(offset)
		if includeTombstones || it.size > 0 {
			return buildValue(a, offset)
		}
		offset = it.previous
	}

	return Value{}
}

// valueEarlierInternal follows the chronological item chain
// (meta.lastItem, then item.lastItem), skipping tombstones unless
// includeTombstones is set.
func valueEarlierInternal(v Value, includeTombstones bool) Value {
	a := v.arena
	if a == nil {
		return Value{}
	}

	var offset uint64
	if v.item == 0 {
		offset = a.readMeta().lastItem
	} else {
		offset = a.readItem(v.item).lastItem
	}

	for offset != 0 {
		it := a.readItem(offset)
		if includeTombstones || it.size > 0 {
			return buildValue(a, offset)
		}
		offset = it.lastItem
	}

	return Value{}
}

// ValuePrevious returns the version of v's key that was current
// immediately before v, skipping any tombstones in between.
func ValuePrevious(v Value) Value { return valuePreviousInternal(v, false) }

// ValuePreviousNullable is ValuePrevious, but stops on the first prior
// item regardless of tombstone status.
func ValuePreviousNullable(v Value) Value { return valuePreviousInternal(v, true) }

// ValueEarlier returns the most recently appended item before v in
// insertion order (or the most recently appended item overall, when v
// is empty), skipping tombstones.
func ValueEarlier(v Value) Value { return valueEarlierInternal(v, false) }

// ValueEarlierNullable is ValueEarlier, but tombstones count as
// present.
func ValueEarlierNullable(v Value) Value { return valueEarlierInternal(v, true) }

// IteratorToValue returns the current value of it's node, or empty if
// the node has never had an item attached.
func IteratorToValue(it Iterator) Value {
	a := it.arena
	if a == nil || it.node == 0 {
		return Value{}
	}

	n := a.readNode(it.node)
	return buildValue(a, n.item)
}

// ValueToIterator returns an Iterator positioned at the node owning v.
func ValueToIterator(v Value) Iterator {
	a := v.arena
	if a == nil || v.item == 0 {
		return Iterator{}
	}

	return buildIterator(a, a.readItem(v.item).node)
}
