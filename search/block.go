package search

import "github.com/xichen2020/geosearch/geo"

// BlockEntry is a candidate document within a block along with the coordinates
// of its geo records that fall inside the query bounding box.
type BlockEntry struct {
	// DocID is local to the segment the block belongs to.
	DocID       int32
	Coordinates []geo.CartesianCoordinate
}

// Block is a window of local doc IDs [StartInclusive, EndExclusive) within one
// segment, holding the candidate documents in the window in ascending doc ID order.
// Entries are consumed front to back.
type Block struct {
	startInclusive int32
	endExclusive   int32
	entries        []BlockEntry
	next           int
}

// NewBlock creates a new block. Entries must be sorted by strictly increasing doc ID
// and fall within the window.
func NewBlock(startInclusive, endExclusive int32, entries []BlockEntry) *Block {
	return &Block{
		startInclusive: startInclusive,
		endExclusive:   endExclusive,
		entries:        entries,
	}
}

// StartInclusive returns the first local doc ID covered by the block.
func (b *Block) StartInclusive() int32 { return b.startInclusive }

// EndExclusive returns the local doc ID right after the last one covered by the block.
func (b *Block) EndExclusive() int32 { return b.endExclusive }

// Len returns the total number of entries in the block.
func (b *Block) Len() int { return len(b.entries) }

// Remaining returns the number of entries not yet consumed.
func (b *Block) Remaining() int { return len(b.entries) - b.next }

// Entries returns all entries in the block, consumed or not.
func (b *Block) Entries() []BlockEntry { return b.entries }

// pollFirst removes and returns the first unconsumed entry.
func (b *Block) pollFirst() (BlockEntry, bool) {
	if b.next >= len(b.entries) {
		return BlockEntry{}, false
	}
	e := b.entries[b.next]
	b.entries[b.next] = BlockEntry{}
	b.next++
	return e, true
}
