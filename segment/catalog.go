package segment

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	errCatalogClosed = errors.New("catalog is closed")
)

// Catalog is an ordered immutable sequence of segments. The first document of
// segment i has global doc ID BaseOffset(i), which is the sum of the document
// counts of the segments before it. A catalog holds a reference to each of its
// segments until it is closed, and is safe for concurrent reads.
type Catalog struct {
	segments    []ImmutableSegment
	baseOffsets []int32
	numDocs     int32
	closed      bool
}

// NewCatalog creates a catalog over the segments in the given order.
// The total number of documents must stay below math.MaxInt32, which is
// reserved to signal exhaustion.
func NewCatalog(segments []ImmutableSegment) (*Catalog, error) {
	var (
		baseOffsets = make([]int32, len(segments))
		total       int64
	)
	for i, seg := range segments {
		baseOffsets[i] = int32(total)
		total += int64(seg.NumDocuments())
		if total >= math.MaxInt32 {
			return nil, fmt.Errorf("catalog document count exceeds %d at segment %s", math.MaxInt32-1, seg.ID())
		}
	}
	for _, seg := range segments {
		seg.IncRef()
	}
	cloned := make([]ImmutableSegment, len(segments))
	copy(cloned, segments)
	return &Catalog{
		segments:    cloned,
		baseOffsets: baseOffsets,
		numDocs:     int32(total),
	}, nil
}

// NumSegments returns the number of segments.
func (c *Catalog) NumSegments() int { return len(c.segments) }

// SegmentAt returns the segment at a given position.
func (c *Catalog) SegmentAt(i int) ImmutableSegment { return c.segments[i] }

// BaseOffset returns the global doc ID of the first document in the segment at a given position.
func (c *Catalog) BaseOffset(i int) int32 { return c.baseOffsets[i] }

// NumDocuments returns the total number of documents across all segments.
func (c *Catalog) NumDocuments() int32 { return c.numDocs }

// Locate returns the position of the segment owning a global doc ID along with
// the doc ID local to that segment.
func (c *Catalog) Locate(globalDocID int32) (segmentIdx int, localDocID int32, ok bool) {
	if globalDocID < 0 || globalDocID >= c.numDocs {
		return 0, 0, false
	}
	// Find the last segment whose base offset is at most the doc ID, skipping
	// over empty segments that share the same base offset.
	idx := sort.Search(len(c.baseOffsets), func(i int) bool {
		return c.baseOffsets[i] > globalDocID
	}) - 1
	return idx, globalDocID - c.baseOffsets[idx], true
}

// Close releases the references held on the segments.
func (c *Catalog) Close() error {
	if c.closed {
		return errCatalogClosed
	}
	c.closed = true
	for _, seg := range c.segments {
		seg.DecRef()
	}
	c.segments = nil
	c.baseOffsets = nil
	return nil
}
