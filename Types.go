package radix

// Arena owns a single caller-supplied byte buffer and bump-allocates
// every record into it. It holds no state of its own - all state
// (the bump watermark, the chronological heads) lives inside the
// buffer as the meta record at offset 0.
//
// Readonly from the outside: callers obtain handles (Iterator, Value,
// Match) to operate on an Arena, never touch offsets directly.
//
// If a caller hands over randomly filled memory, Clear must be called
// first. A buffer filled with zeros needs no Clear: the first Insert
// writes its meta record (MemoryUsage reports 0 until then).
type Arena struct {
	buf []byte
}

// Iterator carries a reference into an Arena plus the offset of a
// single node. A zero offset means "no node" - the empty iterator,
// which seeds every traversal/match function at the head of the
// structure.
type Iterator struct {
	arena *Arena
	node  uint64

	data     []byte
	dataSize uint64
}

// Value carries a reference into an Arena plus the offset of a single
// item (one version of one key's data).
type Value struct {
	arena *Arena
	item  uint64

	data     []byte
	dataSize uint64
}

// Match is the result of a match operation: the matched node plus how
// many key bits were consumed before the match was recorded.
type Match struct {
	arena *Arena
	node  uint64

	matchedBits uint64

	data     []byte
	dataSize uint64
}

// Checkpoint is an opaque cursor equal to the arena's bump watermark
// at capture time. Restoring a Checkpoint undoes every record append
// made since it was captured.
type Checkpoint struct {
	state uint64
}

// meta is the singleton bookkeeping record living at offset 0 of every
// initialized arena.
type meta struct {
	lastNode     uint64
	lastItem     uint64
	structureEnd uint64
}

// node is one branch-point in the tree: a parent back-link, the two
// child slots keyed by the next key bit, the key-fragment span, the
// current value record, and the chronological back-link.
type node struct {
	parent       uint64
	childSmaller uint64
	childGreater uint64

	keyFore       uint64
	keyRear       uint64
	keyForeOffset uint8
	keyRearOffset uint8

	item     uint64
	lastNode uint64
}

// item is one value-write: its size (0 denotes a tombstone), the node
// it belongs to, the previous item on that node's version chain, and
// the previous item appended to the arena at all (chronological).
type item struct {
	size     uint64
	node     uint64
	previous uint64
	lastItem uint64
}

// Fixed byte layout of the persisted records, one width picked and
// documented per spec: offsets are little-endian uint64s.
//
//	Meta:
//		0  lastNode     - 8 bytes
//		8  lastItem     - 8 bytes
//		16 structureEnd - 8 bytes
//
//	Node:
//		0  parent        - 8 bytes
//		8  childSmaller  - 8 bytes
//		16 childGreater  - 8 bytes
//		24 keyFore       - 8 bytes
//		32 keyRear       - 8 bytes
//		40 keyForeOffset - 1 byte  (0-7)
//		41 keyRearOffset - 1 byte  (0-7)
//		42 item          - 8 bytes
//		50 lastNode      - 8 bytes
//		(key-fragment bytes follow immediately at offset 58)
//
//	Item:
//		0  size     - 8 bytes
//		8  node     - 8 bytes
//		16 previous - 8 bytes
//		24 lastItem - 8 bytes
//		(data bytes follow immediately at offset 32)
const (
	offsetSize = 8

	metaLastNodeIdx     = 0
	metaLastItemIdx     = offsetSize
	metaStructureEndIdx = 2 * offsetSize
	metaSize            = 3 * offsetSize

	nodeParentIdx       = 0
	nodeChildSmallerIdx = offsetSize
	nodeChildGreaterIdx = 2 * offsetSize
	nodeKeyForeIdx      = 3 * offsetSize
	nodeKeyRearIdx      = 4 * offsetSize
	nodeKeyForeOffIdx   = 5 * offsetSize
	nodeKeyRearOffIdx   = nodeKeyForeOffIdx + 1
	nodeItemIdx         = nodeKeyRearOffIdx + 1
	nodeLastNodeIdx     = nodeItemIdx + offsetSize
	nodeHeaderSize      = nodeLastNodeIdx + offsetSize

	itemSizeIdx     = 0
	itemNodeIdx     = offsetSize
	itemPreviousIdx = 2 * offsetSize
	itemLastItemIdx = 3 * offsetSize
	itemHeaderSize  = 4 * offsetSize

	// headNodeOffset is where the always-present root lives, created
	// lazily on the first Insert.
	headNodeOffset = metaSize
)
