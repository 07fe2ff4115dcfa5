package search

import (
	"github.com/xichen2020/geosearch/geo"
	"github.com/xichen2020/geosearch/index"
	"github.com/xichen2020/geosearch/segment"
)

// BlockProvider fetches blocks of candidate documents from a segment.
type BlockProvider interface {
	// GetBlock returns the non-deleted documents in the local doc ID range
	// [startInclusive, endExclusive) of the segment that own at least one geo
	// record inside the bounding box, in ascending doc ID order. Only records
	// inside the box are attached to each entry. Doc IDs passed to deleted are
	// local to the segment.
	GetBlock(
		seg segment.ImmutableSegment,
		deleted index.DeletedDocs,
		box geo.BoundingBox,
		startInclusive, endExclusive int32,
	) (*Block, error)
}

type scanBlockProvider struct{}

// NewScanBlockProvider creates a block provider that scans every record in the
// requested range and tests it against the bounding box.
func NewScanBlockProvider() BlockProvider { return scanBlockProvider{} }

func (scanBlockProvider) GetBlock(
	seg segment.ImmutableSegment,
	deleted index.DeletedDocs,
	box geo.BoundingBox,
	startInclusive, endExclusive int32,
) (*Block, error) {
	it, err := seg.RecordsInRange(startInclusive, endExclusive)
	if err != nil {
		return nil, err
	}
	defer it.Close()

	var (
		entries     []BlockEntry
		lastChecked = int32(-1)
		lastDeleted bool
	)
	for it.Next() {
		r := it.Current()
		if r.DocID != lastChecked {
			lastChecked = r.DocID
			lastDeleted = deleted.IsDeleted(r.DocID)
		}
		if lastDeleted || !box.Contains(r.Coordinate) {
			continue
		}
		if n := len(entries); n > 0 && entries[n-1].DocID == r.DocID {
			entries[n-1].Coordinates = append(entries[n-1].Coordinates, r.Coordinate)
			continue
		}
		entries = append(entries, BlockEntry{
			DocID:       r.DocID,
			Coordinates: []geo.CartesianCoordinate{r.Coordinate},
		})
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return NewBlock(startInclusive, endExclusive, entries), nil
}
