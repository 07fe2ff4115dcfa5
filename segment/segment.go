package segment

import (
	"fmt"

	"github.com/xichen2020/geosearch/geo"
	"github.com/xichen2020/geosearch/x/refcnt"
)

// Record is a single indexed geo value owned by a document. A document
// with a multi-valued geo field owns several records.
type Record struct {
	DocID      int32
	Coordinate geo.CartesianCoordinate
}

func (r Record) String() string {
	return fmt.Sprintf("{doc:%d coord:%v}", r.DocID, r.Coordinate)
}

// RecordIterator iterates over records in ascending doc ID order.
type RecordIterator interface {
	// Next returns true if there are more records to be iterated over.
	Next() bool

	// Current returns the current record.
	Current() Record

	// Err returns any error encountered during iteration.
	Err() error

	// Close closes the iterator.
	Close()
}

// Metadata stores the segment metadata.
type Metadata struct {
	ID         string
	NumDocs    int32
	NumRecords int
}

// ImmutableSegment is an immutable index partition holding the geo records of a
// contiguous range of documents. Local doc IDs range from 0 (inclusive) to
// NumDocuments() (exclusive). Immutable segments are safe for concurrent reads.
type ImmutableSegment interface {
	refcnt.RefCountable

	// ID returns the segment ID.
	ID() string

	// NumDocuments returns the number of documents in this segment, including
	// documents without geo records.
	NumDocuments() int32

	// NumRecords returns the number of geo records in this segment.
	NumRecords() int

	// Metadata returns the segment metadata.
	Metadata() Metadata

	// RecordsInRange returns the records owned by documents whose local doc IDs
	// fall in [startInclusive, endExclusive), in ascending doc ID order.
	RecordsInRange(startInclusive, endExclusive int32) (RecordIterator, error)
}

// baseSegment contains the base segment metadata and reference count.
type baseSegment struct {
	*refcnt.RefCounter

	meta Metadata
}

func newBaseSegment(meta Metadata, onZeroFn refcnt.OnZeroRefCountFn) *baseSegment {
	return &baseSegment{
		RefCounter: refcnt.NewRefCounter(onZeroFn),
		meta:       meta,
	}
}

func (s *baseSegment) ID() string          { return s.meta.ID }
func (s *baseSegment) NumDocuments() int32 { return s.meta.NumDocs }
func (s *baseSegment) NumRecords() int     { return s.meta.NumRecords }
func (s *baseSegment) Metadata() Metadata  { return s.meta }
