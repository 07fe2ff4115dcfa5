package segment

import (
	"errors"
	"fmt"

	"github.com/xichen2020/geosearch/geo"
)

var (
	errBuilderSealed = errors.New("segment builder is already sealed")
)

// Builder builds an immutable segment. Records must be added in
// non-decreasing doc ID order. A builder is not thread-safe.
type Builder struct {
	id      string
	records []Record
	sealed  bool
}

// NewBuilder creates a new segment builder.
func NewBuilder(id string) *Builder {
	return &Builder{id: id}
}

// Add adds a geo record for a document.
func (b *Builder) Add(docID int32, coord geo.CartesianCoordinate) error {
	if b.sealed {
		return errBuilderSealed
	}
	if docID < 0 {
		return fmt.Errorf("invalid doc ID %d", docID)
	}
	if n := len(b.records); n > 0 && b.records[n-1].DocID > docID {
		return fmt.Errorf("doc ID %d added after doc ID %d", docID, b.records[n-1].DocID)
	}
	b.records = append(b.records, Record{DocID: docID, Coordinate: coord})
	return nil
}

// AddLatLon adds a geo record for a document given its latitude and longitude in degrees.
func (b *Builder) AddLatLon(docID int32, latDegrees, lonDegrees float64) error {
	return b.Add(docID, geo.FromDegrees(latDegrees, lonDegrees))
}

// Seal seals the builder into an immutable segment with the given number of documents.
func (b *Builder) Seal(numDocs int32) (ImmutableSegment, error) {
	if b.sealed {
		return nil, errBuilderSealed
	}
	if n := len(b.records); n > 0 && b.records[n-1].DocID >= numDocs {
		return nil, fmt.Errorf("doc ID %d exceeds number of documents %d", b.records[n-1].DocID, numDocs)
	}
	b.sealed = true
	meta := Metadata{ID: b.id, NumDocs: numDocs}
	seg := NewImmutableSegment(meta, b.records)
	b.records = nil
	return seg, nil
}
