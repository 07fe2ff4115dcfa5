package search

import (
	"errors"
	"fmt"
	"math"

	"github.com/xichen2020/geosearch/geo"
	"github.com/xichen2020/geosearch/index"
	"github.com/xichen2020/geosearch/segment"

	"github.com/uber-go/tally"
	"go.uber.org/zap"
)

// NoMoreDocs is returned once an iterator has no more documents.
const NoMoreDocs = int32(math.MaxInt32)

var (
	errInvalidBlockSize       = errors.New("block size must be positive")
	errInvalidMinimumDistance = errors.New("minimum distance must be positive")
)

// DocIDScoreIterator is a pull cursor over documents in ascending global doc ID
// order along with their relevance scores. It is not safe for concurrent use.
type DocIDScoreIterator interface {
	// Advance moves to the first document whose doc ID is at least target and returns
	// its doc ID, or NoMoreDocs if there is none. A target at or before the current
	// document leaves the iterator where it is.
	Advance(target int32) (int32, error)

	// NextDoc moves to the next document and returns its doc ID, or NoMoreDocs
	// if there is none. It must not be called before Advance.
	NextDoc() (int32, error)

	// DocID returns the doc ID last returned.
	DocID() int32

	// Score returns the score of the current document.
	Score() float64
}

type cursorState int

const (
	notStarted cursorState = iota
	positioned
	exhausted
)

func (s cursorState) String() string {
	switch s {
	case notStarted:
		return "not-started"
	case positioned:
		return "positioned"
	case exhausted:
		return "exhausted"
	}
	return fmt.Sprintf("unknown(%d)", int(s))
}

// cursor tracks where an iterator is within the catalog.
type cursor struct {
	state cursorState

	// Global doc ID of the current document, valid while positioned.
	docID   int32
	current BlockEntry

	// The segment being iterated over, -1 before the first segment.
	segmentIdx     int
	segmentBase    int32
	segmentDeleted index.DeletedDocs

	// The resident block and the global doc ID right after its window.
	block          *Block
	blockGlobalEnd int32
}

type distanceIteratorMetrics struct {
	blocksFetched      tally.Counter
	emptyBlocks        tally.Counter
	blockFetchErrors   tally.Counter
	blockFetchLatency  tally.Timer
	segmentsVisited    tally.Counter
	docsMatched        tally.Counter
	iteratorsExhausted tally.Counter
	iteratorsClosed    tally.Counter
}

func newDistanceIteratorMetrics(scope tally.Scope) distanceIteratorMetrics {
	return distanceIteratorMetrics{
		blocksFetched:      scope.Counter("blocks-fetched"),
		emptyBlocks:        scope.Counter("empty-blocks"),
		blockFetchErrors:   scope.Counter("block-fetch-errors"),
		blockFetchLatency:  scope.Timer("block-fetch-latency"),
		segmentsVisited:    scope.Counter("segments-visited"),
		docsMatched:        scope.Counter("docs-matched"),
		iteratorsExhausted: scope.Counter("iterators-exhausted"),
		iteratorsClosed:    scope.Counter("iterators-closed"),
	}
}

// DistanceIterator streams the documents with a geo record within a radius of a
// centroid, scoring each document by its distance to the centroid. At most one
// block of candidates is held in memory at a time.
type DistanceIterator struct {
	catalog           *segment.Catalog
	deleted           index.DeletedDocs
	provider          BlockProvider
	blockSize         int32
	minDistanceMeters float64
	centroid          geo.CartesianCoordinate
	box               geo.BoundingBox
	logger            *zap.Logger
	metrics           distanceIteratorMetrics

	cursor cursor
	err    error
}

var (
	_ DocIDScoreIterator     = (*DistanceIterator)(nil)
	_ index.DocIDSetIterator = (*DistanceIterator)(nil)
)

// NewDistanceIterator creates a new distance iterator over the catalog. The deleted
// view is indexed by global doc ID and must stay unchanged while iterating.
func NewDistanceIterator(
	catalog *segment.Catalog,
	deleted index.DeletedDocs,
	q Query,
	opts *Options,
) (*DistanceIterator, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	if opts.BlockSize() <= 0 {
		return nil, errInvalidBlockSize
	}
	if !(opts.MinimumDistanceMeters() > 0) {
		return nil, errInvalidMinimumDistance
	}
	if deleted == nil {
		deleted = index.NoDeletedDocs
	}
	centroid := geo.FromDegrees(q.CentroidLatDegrees, q.CentroidLonDegrees)
	instrumentOpts := opts.InstrumentOptions()
	return &DistanceIterator{
		catalog:           catalog,
		deleted:           deleted,
		provider:          opts.BlockProvider(),
		blockSize:         opts.BlockSize(),
		minDistanceMeters: opts.MinimumDistanceMeters(),
		centroid:          centroid,
		box:               geo.NewBoundingBox(centroid, q.RadiusKm),
		logger:            instrumentOpts.Logger(),
		metrics:           newDistanceIteratorMetrics(instrumentOpts.MetricsScope()),
		cursor: cursor{
			state:      notStarted,
			segmentIdx: -1,
		},
	}, nil
}

// BoundingBox returns the bounding box candidates are pruned with.
func (it *DistanceIterator) BoundingBox() geo.BoundingBox { return it.box }

// Advance moves to the first matching document at or after target.
func (it *DistanceIterator) Advance(target int32) (int32, error) {
	if it.err != nil {
		return NoMoreDocs, it.err
	}
	switch it.cursor.state {
	case exhausted:
		return NoMoreDocs, nil
	case positioned:
		if target <= it.cursor.docID {
			return it.cursor.docID, nil
		}
	case notStarted:
		if target < 0 {
			target = 0
		}
	}
	if err := it.seek(target); err != nil {
		it.err = err
		it.release()
		return NoMoreDocs, err
	}
	return it.cursor.docID, nil
}

// NextDoc moves to the next matching document.
func (it *DistanceIterator) NextDoc() (int32, error) {
	switch it.cursor.state {
	case notStarted:
		panic(errors.New("next doc called before advance"))
	case exhausted:
		return NoMoreDocs, it.err
	}
	return it.Advance(it.cursor.docID + 1)
}

// DocID returns the current doc ID, or NoMoreDocs once exhausted or failed.
func (it *DistanceIterator) DocID() int32 {
	if it.cursor.state == notStarted {
		panic(errors.New("doc ID requested before advance"))
	}
	return it.cursor.docID
}

// Score returns the score of the current document, computed from its geo record
// closest to the centroid.
func (it *DistanceIterator) Score() float64 {
	if it.cursor.state != positioned {
		panic(fmt.Errorf("score requested while %v", it.cursor.state))
	}
	sq := minDistanceSquared(it.centroid, it.cursor.current.Coordinates)
	return ScoreSquaredDistance(sq, it.minDistanceMeters)
}

// Next returns true if the iterator moved to another document. Errors are
// reported by Err.
func (it *DistanceIterator) Next() bool {
	var (
		docID int32
		err   error
	)
	if it.cursor.state == notStarted {
		docID, err = it.Advance(0)
	} else {
		docID, err = it.NextDoc()
	}
	return err == nil && docID != NoMoreDocs
}

// Err returns the error encountered fetching blocks, if any.
func (it *DistanceIterator) Err() error { return it.err }

// Close releases the resident block. The catalog is owned by the caller.
func (it *DistanceIterator) Close() {
	it.release()
	it.metrics.iteratorsClosed.Inc(1)
}

func (it *DistanceIterator) seek(target int32) error {
	c := &it.cursor
	if c.block != nil && target < c.blockGlobalEnd {
		if it.positionInBlock(target) {
			return nil
		}
		// Nothing at or after the target in the resident block.
		target = c.blockGlobalEnd
	}

	for {
		if !it.seekToSegment(target) {
			it.exhaust()
			return nil
		}
		seg := it.catalog.SegmentAt(c.segmentIdx)
		blockStart, blockEnd := it.blockRange(target-c.segmentBase, seg.NumDocuments())
		if err := it.fetchBlock(seg, blockStart, blockEnd); err != nil {
			return err
		}
		if it.positionInBlock(target) {
			return nil
		}
		it.metrics.emptyBlocks.Inc(1)
		target = c.blockGlobalEnd
	}
}

// seekToSegment moves the cursor to the segment containing the target, returning
// false if the target is beyond the last segment.
func (it *DistanceIterator) seekToSegment(target int32) bool {
	c := &it.cursor
	for {
		if c.segmentIdx >= 0 &&
			target-c.segmentBase < it.catalog.SegmentAt(c.segmentIdx).NumDocuments() {
			return true
		}
		next := c.segmentIdx + 1
		if next >= it.catalog.NumSegments() {
			return false
		}
		if c.segmentIdx >= 0 {
			c.segmentBase += it.catalog.SegmentAt(c.segmentIdx).NumDocuments()
		}
		c.segmentIdx = next
		c.segmentDeleted = index.NewSegmentDeletedDocs(it.deleted, c.segmentBase)
		c.block = nil
		it.metrics.segmentsVisited.Inc(1)
	}
}

// blockRange returns the block-aligned window of local doc IDs containing the local target.
func (it *DistanceIterator) blockRange(localTarget, segmentNumDocs int32) (int32, int32) {
	start := localTarget / it.blockSize * it.blockSize
	end := int64(start) + int64(it.blockSize)
	if end > int64(segmentNumDocs) {
		end = int64(segmentNumDocs)
	}
	return start, int32(end)
}

func (it *DistanceIterator) fetchBlock(
	seg segment.ImmutableSegment,
	startInclusive, endExclusive int32,
) error {
	c := &it.cursor
	c.block = nil
	sw := it.metrics.blockFetchLatency.Start()
	block, err := it.provider.GetBlock(seg, c.segmentDeleted, it.box, startInclusive, endExclusive)
	sw.Stop()
	if err != nil {
		it.metrics.blockFetchErrors.Inc(1)
		it.logger.Error("error fetching block",
			zap.String("segment", seg.ID()),
			zap.Int32("start", startInclusive),
			zap.Int32("end", endExclusive),
			zap.Error(err),
		)
		return err
	}
	it.metrics.blocksFetched.Inc(1)
	c.block = block
	c.blockGlobalEnd = c.segmentBase + endExclusive
	return nil
}

// positionInBlock consumes entries from the resident block until reaching one at or
// after the target, returning false if the block runs out first.
func (it *DistanceIterator) positionInBlock(target int32) bool {
	c := &it.cursor
	for {
		entry, ok := c.block.pollFirst()
		if !ok {
			return false
		}
		docID := c.segmentBase + entry.DocID
		if docID < target {
			continue
		}
		c.state = positioned
		c.docID = docID
		c.current = entry
		it.metrics.docsMatched.Inc(1)
		return true
	}
}

func (it *DistanceIterator) exhaust() {
	it.release()
	it.metrics.iteratorsExhausted.Inc(1)
}

// release moves the cursor past the last document and drops the resident block.
func (it *DistanceIterator) release() {
	c := &it.cursor
	c.state = exhausted
	c.docID = NoMoreDocs
	c.current = BlockEntry{}
	c.block = nil
	c.segmentDeleted = nil
}
