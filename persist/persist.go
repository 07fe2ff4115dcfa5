package persist

import (
	"github.com/xichen2020/geosearch/index"
	"github.com/xichen2020/geosearch/segment"
)

// SegmentVersion is the version of the persisted segment format.
const SegmentVersion = 1

// SegmentWriter persists segments and deletion snapshots onto the storage layer.
type SegmentWriter interface {
	// WriteSegment persists an immutable segment, returning the ID of the
	// persisted segment.
	WriteSegment(seg segment.ImmutableSegment) (string, error)

	// WriteDeletedDocs persists a set of deleted global doc IDs under the given name.
	WriteDeletedDocs(name string, docIDs index.DocIDSet) error
}

// SegmentReader reads persisted segments and deletion snapshots.
type SegmentReader interface {
	// ListSegments returns the IDs of the complete segments in the order they
	// were persisted.
	ListSegments() ([]string, error)

	// ReadSegment reads a persisted segment. The returned segment holds one
	// reference owned by the caller, and its resources are released once its
	// reference count drops to zero.
	ReadSegment(id string) (segment.ImmutableSegment, error)

	// ReadDeletedDocs reads a set of deleted global doc IDs persisted under the given name.
	ReadDeletedDocs(name string) (index.DocIDSet, error)
}
