package index

import (
	"fmt"

	"github.com/willf/bitset"
)

// DeletedDocs answers whether a document has been deleted. Implementations are
// read-only snapshots and are safe for concurrent use.
type DeletedDocs interface {
	// IsDeleted returns true if the document has been deleted.
	IsDeleted(docID int32) bool
}

// NoDeletedDocs is a deletion view in which no document is deleted.
var NoDeletedDocs DeletedDocs = noDeletedDocs{}

type noDeletedDocs struct{}

func (noDeletedDocs) IsDeleted(int32) bool { return false }

// docIDSetDeletedDocs treats every document in the set as deleted.
type docIDSetDeletedDocs struct {
	set DocIDSet
}

// NewDeletedDocs creates a deletion view backed by the given doc ID set.
func NewDeletedDocs(set DocIDSet) DeletedDocs {
	return &docIDSetDeletedDocs{set: set}
}

func (d *docIDSetDeletedDocs) IsDeleted(docID int32) bool { return d.set.Contains(docID) }

// denseDeletedDocs keeps one bit per document in the index.
type denseDeletedDocs struct {
	bs *bitset.BitSet
}

// NewDenseDeletedDocs creates a deletion view with one bit per document from the doc IDs
// produced by the iterator. The iterator is closed on return.
func NewDenseDeletedDocs(numTotalDocs int32, it DocIDSetIterator) (DeletedDocs, error) {
	defer it.Close()

	bs := bitset.New(uint(numTotalDocs))
	for it.Next() {
		docID := it.DocID()
		if docID < 0 || docID >= numTotalDocs {
			return nil, fmt.Errorf("deleted doc ID %d out of range [0, %d)", docID, numTotalDocs)
		}
		bs.Set(uint(docID))
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return &denseDeletedDocs{bs: bs}, nil
}

func (d *denseDeletedDocs) IsDeleted(docID int32) bool {
	if docID < 0 {
		return false
	}
	return d.bs.Test(uint(docID))
}

// segmentDeletedDocs translates segment-local doc IDs into whole-index doc IDs.
type segmentDeletedDocs struct {
	wholeIndex DeletedDocs
	offset     int32
}

// NewSegmentDeletedDocs creates a deletion view for a single segment whose first
// document sits at the given offset within the whole index.
func NewSegmentDeletedDocs(wholeIndex DeletedDocs, offset int32) DeletedDocs {
	if offset == 0 {
		return wholeIndex
	}
	return &segmentDeletedDocs{wholeIndex: wholeIndex, offset: offset}
}

func (d *segmentDeletedDocs) IsDeleted(docID int32) bool {
	return d.wholeIndex.IsDeleted(docID + d.offset)
}
