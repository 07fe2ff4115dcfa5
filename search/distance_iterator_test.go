package search

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/xichen2020/geosearch/geo"
	"github.com/xichen2020/geosearch/index"
	"github.com/xichen2020/geosearch/segment"

	"github.com/golang/mock/gomock"
	"github.com/m3db/m3/src/x/instrument"
	"github.com/pilosa/pilosa/roaring"
	"github.com/stretchr/testify/require"
	"github.com/uber-go/tally"
)

func TestDistanceIteratorEmptyCatalog(t *testing.T) {
	catalog := newTestCatalog(t)
	it, err := NewDistanceIterator(catalog, nil, Query{RadiusKm: 1}, NewOptions())
	require.NoError(t, err)

	docID, err := it.Advance(0)
	require.NoError(t, err)
	require.Equal(t, NoMoreDocs, docID)
	require.Equal(t, NoMoreDocs, it.DocID())

	docID, err = it.NextDoc()
	require.NoError(t, err)
	require.Equal(t, NoMoreDocs, docID)
}

func TestDistanceIteratorEmptyCatalogNext(t *testing.T) {
	catalog := newTestCatalog(t)
	it, err := NewDistanceIterator(catalog, nil, Query{RadiusKm: 1}, NewOptions())
	require.NoError(t, err)
	require.False(t, it.Next())
	require.NoError(t, it.Err())
}

func TestDistanceIteratorCentroidScenario(t *testing.T) {
	var (
		kmPerDegree = geo.EarthRadiusMeters / 1000.0 * math.Pi / 180.0
		b           = segment.NewBuilder("seg")
	)
	require.NoError(t, b.AddLatLon(0, 0, 0))
	require.NoError(t, b.AddLatLon(1, 0, 10/kmPerDegree))
	seg, err := b.Seal(2)
	require.NoError(t, err)
	catalog := newTestCatalogFromSegments(t, seg)

	q := Query{CentroidLatDegrees: 0, CentroidLonDegrees: 0, RadiusKm: 1}
	it, err := NewDistanceIterator(catalog, index.NoDeletedDocs, q, NewOptions())
	require.NoError(t, err)
	defer it.Close()

	docID, err := it.Advance(0)
	require.NoError(t, err)
	require.Equal(t, int32(0), docID)
	require.Equal(t, int32(0), it.DocID())
	require.Equal(t, 1.0, it.Score())

	docID, err = it.NextDoc()
	require.NoError(t, err)
	require.Equal(t, NoMoreDocs, docID)

	docID, err = it.Advance(NoMoreDocs)
	require.NoError(t, err)
	require.Equal(t, NoMoreDocs, docID)
}

func TestDistanceIteratorMultiValuedClosestRecordWins(t *testing.T) {
	b := segment.NewBuilder("seg")
	require.NoError(t, b.AddLatLon(3, 0.001, 0))
	require.NoError(t, b.AddLatLon(3, 0.0001, 0))
	require.NoError(t, b.AddLatLon(3, 0.005, 0))
	seg, err := b.Seal(4)
	require.NoError(t, err)
	catalog := newTestCatalogFromSegments(t, seg)

	it, err := NewDistanceIterator(catalog, nil, Query{RadiusKm: 1}, NewOptions())
	require.NoError(t, err)
	docID, err := it.Advance(0)
	require.NoError(t, err)
	require.Equal(t, int32(3), docID)

	closest := geo.FromDegrees(0.0001, 0)
	expected := ScoreSquaredDistance(geo.DistanceSquared(geo.FromDegrees(0, 0), closest), DefaultMinimumDistanceMeters)
	require.Equal(t, expected, it.Score())
	require.True(t, it.Score() < 1.0)
}

func TestDistanceIteratorAdvanceWithinBlockAvoidsRescan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var (
		seg0     = segment.NewImmutableSegment(segment.Metadata{ID: "seg0", NumDocs: 20000}, nil)
		seg1     = segment.NewImmutableSegment(segment.Metadata{ID: "seg1", NumDocs: 10000}, nil)
		catalog  = newTestCatalogFromSegments(t, seg0, seg1)
		provider = NewMockBlockProvider(ctrl)
	)
	gomock.InOrder(
		provider.EXPECT().
			GetBlock(seg0, gomock.Any(), gomock.Any(), int32(0), int32(16384)).
			Return(NewBlock(0, 16384, []BlockEntry{{DocID: 100}, {DocID: 16010}}), nil),
		provider.EXPECT().
			GetBlock(seg0, gomock.Any(), gomock.Any(), int32(16384), int32(20000)).
			Return(NewBlock(16384, 20000, []BlockEntry{{DocID: 17000}}), nil),
		provider.EXPECT().
			GetBlock(seg1, gomock.Any(), gomock.Any(), int32(0), int32(10000)).
			Return(NewBlock(0, 10000, []BlockEntry{{DocID: 5}, {DocID: 9999}}), nil),
	)

	opts := NewOptions().SetBlockProvider(provider)
	it, err := NewDistanceIterator(catalog, nil, Query{RadiusKm: 1}, opts)
	require.NoError(t, err)

	var docIDs []int32
	docID, err := it.Advance(16000)
	require.NoError(t, err)
	for docID != NoMoreDocs {
		docIDs = append(docIDs, docID)
		docID, err = it.NextDoc()
		require.NoError(t, err)
	}
	require.Equal(t, []int32{16010, 17000, 20005, 29999}, docIDs)

	docID, err = it.NextDoc()
	require.NoError(t, err)
	require.Equal(t, NoMoreDocs, docID)
}

func TestDistanceIteratorAdvanceSkipsEmptyBlocks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var (
		seg0     = segment.NewImmutableSegment(segment.Metadata{ID: "seg0", NumDocs: 20000}, nil)
		seg1     = segment.NewImmutableSegment(segment.Metadata{ID: "seg1", NumDocs: 10000}, nil)
		catalog  = newTestCatalogFromSegments(t, seg0, seg1)
		provider = NewMockBlockProvider(ctrl)
	)
	gomock.InOrder(
		provider.EXPECT().
			GetBlock(seg0, gomock.Any(), gomock.Any(), int32(0), int32(16384)).
			Return(NewBlock(0, 16384, []BlockEntry{{DocID: 100}}), nil),
		provider.EXPECT().
			GetBlock(seg0, gomock.Any(), gomock.Any(), int32(16384), int32(20000)).
			Return(NewBlock(16384, 20000, nil), nil),
		provider.EXPECT().
			GetBlock(seg1, gomock.Any(), gomock.Any(), int32(0), int32(10000)).
			Return(NewBlock(0, 10000, nil), nil),
	)

	scope := tally.NewTestScope("", nil)
	opts := NewOptions().
		SetBlockProvider(provider).
		SetInstrumentOptions(instrument.NewOptions().SetMetricsScope(scope))
	it, err := NewDistanceIterator(catalog, nil, Query{RadiusKm: 1}, opts)
	require.NoError(t, err)

	docID, err := it.Advance(16000)
	require.NoError(t, err)
	require.Equal(t, NoMoreDocs, docID)

	snapshot := scope.Snapshot()
	require.Equal(t, int64(3), counterValue(snapshot, "blocks-fetched"))
	require.Equal(t, int64(3), counterValue(snapshot, "empty-blocks"))
	require.Equal(t, int64(2), counterValue(snapshot, "segments-visited"))
	require.Equal(t, int64(0), counterValue(snapshot, "docs-matched"))
	require.Equal(t, int64(1), counterValue(snapshot, "iterators-exhausted"))

	it.Close()
	snapshot = scope.Snapshot()
	require.Equal(t, int64(1), counterValue(snapshot, "iterators-exhausted"))
	require.Equal(t, int64(1), counterValue(snapshot, "iterators-closed"))
}

func TestDistanceIteratorAdvanceToEarlierTargetStaysPut(t *testing.T) {
	seg := segment.NewImmutableSegment(segment.Metadata{NumDocs: 10}, []segment.Record{
		{DocID: 4, Coordinate: geo.FromDegrees(0, 0)},
		{DocID: 8, Coordinate: geo.FromDegrees(0, 0)},
	})
	catalog := newTestCatalogFromSegments(t, seg)
	it, err := NewDistanceIterator(catalog, nil, Query{RadiusKm: 1}, NewOptions().SetBlockSize(2))
	require.NoError(t, err)

	docID, err := it.Advance(1)
	require.NoError(t, err)
	require.Equal(t, int32(4), docID)

	for _, target := range []int32{2, 4, -1} {
		require.NotPanics(t, func() { docID, err = it.Advance(target) })
		require.NoError(t, err)
		require.Equal(t, int32(4), docID)
		require.Equal(t, int32(4), it.DocID())
		require.Equal(t, 1.0, it.Score())
	}

	docID, err = it.Advance(5)
	require.NoError(t, err)
	require.Equal(t, int32(8), docID)
	docID, err = it.Advance(6)
	require.NoError(t, err)
	require.Equal(t, int32(8), docID)

	docID, err = it.NextDoc()
	require.NoError(t, err)
	require.Equal(t, NoMoreDocs, docID)
	docID, err = it.Advance(0)
	require.NoError(t, err)
	require.Equal(t, NoMoreDocs, docID)
}

func TestDistanceIteratorCloseBeforeExhaustion(t *testing.T) {
	var (
		seg = segment.NewImmutableSegment(segment.Metadata{NumDocs: 10}, []segment.Record{
			{DocID: 4, Coordinate: geo.FromDegrees(0, 0)},
			{DocID: 8, Coordinate: geo.FromDegrees(0, 0)},
		})
		catalog = newTestCatalogFromSegments(t, seg)
		scope   = tally.NewTestScope("", nil)
		opts    = NewOptions().SetInstrumentOptions(instrument.NewOptions().SetMetricsScope(scope))
	)
	it, err := NewDistanceIterator(catalog, nil, Query{RadiusKm: 1}, opts)
	require.NoError(t, err)
	require.True(t, it.Next())
	it.Close()

	snapshot := scope.Snapshot()
	require.Equal(t, int64(0), counterValue(snapshot, "iterators-exhausted"))
	require.Equal(t, int64(1), counterValue(snapshot, "iterators-closed"))
	require.Equal(t, NoMoreDocs, it.DocID())
}

func TestDistanceIteratorBlockFetchError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var (
		errFetch = errors.New("fetch error")
		seg      = segment.NewImmutableSegment(segment.Metadata{ID: "seg", NumDocs: 100}, nil)
		catalog  = newTestCatalogFromSegments(t, seg)
		provider = NewMockBlockProvider(ctrl)
		scope    = tally.NewTestScope("", nil)
	)
	provider.EXPECT().
		GetBlock(seg, gomock.Any(), gomock.Any(), int32(0), int32(100)).
		Return(nil, errFetch)

	opts := NewOptions().
		SetBlockProvider(provider).
		SetInstrumentOptions(instrument.NewOptions().SetMetricsScope(scope))
	it, err := NewDistanceIterator(catalog, nil, Query{RadiusKm: 1}, opts)
	require.NoError(t, err)

	docID, err := it.Advance(3)
	require.Equal(t, errFetch, err)
	require.Equal(t, NoMoreDocs, docID)
	require.Equal(t, NoMoreDocs, it.DocID())
	require.Panics(t, func() { it.Score() })
	_, err = it.Advance(4)
	require.Equal(t, errFetch, err)
	docID, err = it.NextDoc()
	require.Equal(t, errFetch, err)
	require.Equal(t, NoMoreDocs, docID)
	require.False(t, it.Next())
	require.Equal(t, errFetch, it.Err())
	require.Equal(t, int64(1), counterValue(scope.Snapshot(), "block-fetch-errors"))
}

func TestDistanceIteratorContractViolations(t *testing.T) {
	seg := segment.NewImmutableSegment(segment.Metadata{NumDocs: 10}, []segment.Record{
		{DocID: 4, Coordinate: geo.FromDegrees(0, 0)},
	})
	catalog := newTestCatalogFromSegments(t, seg)
	it, err := NewDistanceIterator(catalog, nil, Query{RadiusKm: 1}, NewOptions())
	require.NoError(t, err)

	require.Panics(t, func() { it.DocID() })
	require.Panics(t, func() { it.Score() })
	require.Panics(t, func() { it.NextDoc() })

	docID, err := it.Advance(2)
	require.NoError(t, err)
	require.Equal(t, int32(4), docID)

	docID, err = it.Advance(4)
	require.NoError(t, err)
	require.Equal(t, int32(4), docID)

	docID, err = it.NextDoc()
	require.NoError(t, err)
	require.Equal(t, NoMoreDocs, docID)
	require.Panics(t, func() { it.Score() })
}

func TestNewDistanceIteratorErrors(t *testing.T) {
	catalog := newTestCatalog(t)
	_, err := NewDistanceIterator(catalog, nil, Query{CentroidLatDegrees: 91}, NewOptions())
	require.Error(t, err)
	_, err = NewDistanceIterator(catalog, nil, Query{CentroidLonDegrees: math.NaN()}, NewOptions())
	require.Error(t, err)
	_, err = NewDistanceIterator(catalog, nil, Query{RadiusKm: -1}, NewOptions())
	require.Error(t, err)
	_, err = NewDistanceIterator(catalog, nil, Query{}, NewOptions().SetBlockSize(0))
	require.Equal(t, errInvalidBlockSize, err)
	_, err = NewDistanceIterator(catalog, nil, Query{}, NewOptions().SetMinimumDistanceMeters(0))
	require.Equal(t, errInvalidMinimumDistance, err)
}

type expectedDoc struct {
	docID int32
	score float64
}

func TestDistanceIteratorMatchesBruteForce(t *testing.T) {
	var (
		rng         = rand.New(rand.NewSource(1234))
		sizes       = []int32{0, 37, 1, 0, 50, 23, 64}
		q           = Query{CentroidLatDegrees: 45, CentroidLonDegrees: 7, RadiusKm: 10}
		deletedBldr = index.NewBitmapBasedDocIDSetBuilder(roaring.NewBitmap())
		segments    []segment.ImmutableSegment
		allRecords  [][]segment.Record
		numDocs     int32
	)
	for i, size := range sizes {
		b := segment.NewBuilder(string(rune('a' + i)))
		var records []segment.Record
		for docID := int32(0); docID < size; docID++ {
			if rng.Float64() < 0.1 {
				deletedBldr.Add(numDocs + docID)
			}
			if rng.Float64() < 0.3 {
				continue
			}
			for n := rng.Intn(3) + 1; n > 0; n-- {
				lat := q.CentroidLatDegrees + (rng.Float64()-0.5)*0.4
				lon := q.CentroidLonDegrees + (rng.Float64()-0.5)*0.4
				coord := geo.FromDegrees(lat, lon)
				require.NoError(t, b.Add(docID, coord))
				records = append(records, segment.Record{DocID: docID, Coordinate: coord})
			}
		}
		seg, err := b.Seal(size)
		require.NoError(t, err)
		segments = append(segments, seg)
		allRecords = append(allRecords, records)
		numDocs += size
	}
	catalog := newTestCatalogFromSegments(t, segments...)
	deleted := index.NewDeletedDocs(deletedBldr.Seal(numDocs))

	newIter := func() *DistanceIterator {
		it, err := NewDistanceIterator(catalog, deleted, q, NewOptions().SetBlockSize(8))
		require.NoError(t, err)
		return it
	}

	// Brute force the expected documents.
	var (
		ref      = newIter()
		box      = ref.BoundingBox()
		centroid = geo.FromDegrees(q.CentroidLatDegrees, q.CentroidLonDegrees)
		expected []expectedDoc
	)
	for i, records := range allRecords {
		base := catalog.BaseOffset(i)
		minByDoc := make(map[int32]int64)
		var order []int32
		for _, r := range records {
			globalDocID := base + r.DocID
			if deleted.IsDeleted(globalDocID) || !box.Contains(r.Coordinate) {
				continue
			}
			d := geo.DistanceSquared(centroid, r.Coordinate)
			prev, exists := minByDoc[globalDocID]
			if !exists {
				order = append(order, globalDocID)
			}
			if !exists || d < prev {
				minByDoc[globalDocID] = d
			}
		}
		for _, docID := range order {
			expected = append(expected, expectedDoc{
				docID: docID,
				score: ScoreSquaredDistance(minByDoc[docID], DefaultMinimumDistanceMeters),
			})
		}
	}
	require.True(t, len(expected) > 10)

	// Full iteration.
	var actual []expectedDoc
	it := newIter()
	for it.Next() {
		actual = append(actual, expectedDoc{docID: it.DocID(), score: it.Score()})
	}
	require.NoError(t, it.Err())
	require.Equal(t, expected, actual)

	// Seeking with non-decreasing targets.
	for trial := 0; trial < 20; trial++ {
		it := newIter()
		var (
			target int32
			prev   int32 = -1
		)
		for target <= numDocs+5 {
			docID, err := it.Advance(target)
			require.NoError(t, err)
			require.True(t, docID >= prev)
			require.Equal(t, firstAtOrAfter(expected, target), docID)
			if docID != NoMoreDocs {
				require.Equal(t, scoreOf(expected, docID), it.Score())
			}
			prev = docID
			target += int32(rng.Intn(12))
		}
		docID, err := it.Advance(target)
		require.NoError(t, err)
		require.Equal(t, NoMoreDocs, docID)
		docID, err = it.NextDoc()
		require.NoError(t, err)
		require.Equal(t, NoMoreDocs, docID)
	}
}

func firstAtOrAfter(docs []expectedDoc, target int32) int32 {
	for _, d := range docs {
		if d.docID >= target {
			return d.docID
		}
	}
	return NoMoreDocs
}

func scoreOf(docs []expectedDoc, docID int32) float64 {
	for _, d := range docs {
		if d.docID == docID {
			return d.score
		}
	}
	return math.NaN()
}

func counterValue(snapshot tally.Snapshot, name string) int64 {
	for _, c := range snapshot.Counters() {
		if c.Name() == name {
			return c.Value()
		}
	}
	return 0
}

func newTestCatalog(t *testing.T, sizes ...int32) *segment.Catalog {
	segments := make([]segment.ImmutableSegment, 0, len(sizes))
	for _, size := range sizes {
		segments = append(segments, segment.NewImmutableSegment(segment.Metadata{NumDocs: size}, nil))
	}
	return newTestCatalogFromSegments(t, segments...)
}

func newTestCatalogFromSegments(t *testing.T, segments ...segment.ImmutableSegment) *segment.Catalog {
	catalog, err := segment.NewCatalog(segments)
	require.NoError(t, err)
	return catalog
}
