package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/xichen2020/geosearch/geo"
	"github.com/xichen2020/geosearch/index"
	"github.com/xichen2020/geosearch/search"
	"github.com/xichen2020/geosearch/segment"

	"github.com/golang/mock/gomock"
	"github.com/m3db/m3/src/x/instrument"
	"github.com/pilosa/pilosa/roaring"
	"github.com/stretchr/testify/require"
	"github.com/uber-go/tally"
)

func newTestCatalog(t *testing.T) *segment.Catalog {
	var segments []segment.ImmutableSegment
	for i, distancesKm := range [][]float64{{0.5, 30, 2}, {}, {0, 4}} {
		b := segment.NewBuilder(string(rune('a' + i)))
		for docID, distanceKm := range distancesKm {
			lat, lon := geo.Destination(10, 20, distanceKm, 45)
			require.NoError(t, b.AddLatLon(int32(docID), lat, lon))
		}
		seg, err := b.Seal(int32(len(distancesKm)))
		require.NoError(t, err)
		segments = append(segments, seg)
	}
	catalog, err := segment.NewCatalog(segments)
	require.NoError(t, err)
	return catalog
}

func doSearch(t *testing.T, svc Service, url string) (int, SearchResponse, Response) {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	svc.Search(rec, req)

	var (
		searchResp SearchResponse
		resp       Response
	)
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &searchResp))
	} else {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec.Code, searchResp, resp
}

func hitDocIDs(resp SearchResponse) []int32 {
	docIDs := make([]int32, 0, len(resp.Hits))
	for _, h := range resp.Hits {
		docIDs = append(docIDs, h.DocID)
	}
	return docIDs
}

func TestHealth(t *testing.T) {
	svc := NewService(newTestCatalog(t), nil, nil)

	rec := httptest.NewRecorder()
	svc.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"state":"OK"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	svc.Health(rec, httptest.NewRequest(http.MethodPost, "/health", nil))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchInDocIDOrder(t *testing.T) {
	svc := NewService(newTestCatalog(t), nil, nil)

	code, resp, _ := doSearch(t, svc, "/search?lat=10&lon=20&radius=5")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, []int32{0, 2, 3, 4}, hitDocIDs(resp))
	require.Equal(t, Hit{DocID: 3, Segment: "c", LocalDocID: 0, Score: 1}, resp.Hits[2])
	require.Equal(t, "a", resp.Hits[1].Segment)

	code, resp, _ = doSearch(t, svc, "/search?lat=10&lon=20&radius=5&limit=2")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, []int32{0, 2}, hitDocIDs(resp))
}

func TestSearchByScore(t *testing.T) {
	svc := NewService(newTestCatalog(t), nil, nil)

	code, resp, _ := doSearch(t, svc, "/search?lat=10&lon=20&radius=5&sort=score&limit=3")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, []int32{3, 0, 2}, hitDocIDs(resp))
}

func TestSearchWithDeletedDocs(t *testing.T) {
	b := index.NewBitmapBasedDocIDSetBuilder(roaring.NewBitmap())
	b.Add(3)
	catalog := newTestCatalog(t)
	svc := NewService(catalog, index.NewDeletedDocs(b.Seal(catalog.NumDocuments())), nil)

	code, resp, _ := doSearch(t, svc, "/search?lat=10&lon=20&radius=5&sort=score")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, []int32{0, 2, 4}, hitDocIDs(resp))
}

func TestSearchRadiusWithUnits(t *testing.T) {
	svc := NewService(newTestCatalog(t), nil, nil)

	for _, radius := range []string{"5", "5km", "5000m", "3.2mi"} {
		code, resp, _ := doSearch(t, svc, "/search?lat=10&lon=20&radius="+radius)
		require.Equal(t, http.StatusOK, code, radius)
		require.Equal(t, []int32{0, 2, 3, 4}, hitDocIDs(resp), radius)
	}

	code, resp, _ := doSearch(t, svc, "/search?lat=10&lon=20&radius=1000m")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, []int32{0, 3}, hitDocIDs(resp))
}

func TestSearchNoHits(t *testing.T) {
	svc := NewService(newTestCatalog(t), nil, nil)

	code, resp, _ := doSearch(t, svc, "/search?lat=-10&lon=20&radius=5")
	require.Equal(t, http.StatusOK, code)
	require.Empty(t, resp.Hits)
}

func TestSearchInvalidRequests(t *testing.T) {
	var (
		scope = tally.NewTestScope("", nil)
		opts  = NewOptions().
			SetInstrumentOptions(instrument.NewOptions().SetMetricsScope(scope)).
			SetMaxLimit(100)
		svc = NewService(newTestCatalog(t), nil, opts)
	)
	urls := []string{
		"/search?lon=20&radius=5",
		"/search?lat=abc&lon=20&radius=5",
		"/search?lat=91&lon=20&radius=5",
		"/search?lat=10&lon=20&radius=-1",
		"/search?lat=10&lon=20&radius=abc",
		"/search?lat=10&lon=20&radius=-2km",
		"/search?lat=10&lon=20&radius=5&limit=0",
		"/search?lat=10&lon=20&radius=5&limit=101",
		"/search?lat=10&lon=20&radius=5&sort=distance",
	}
	for _, url := range urls {
		code, _, resp := doSearch(t, svc, url)
		require.Equal(t, http.StatusBadRequest, code, url)
		require.Equal(t, "Error", resp.State)
		require.NotEmpty(t, resp.Error)
	}

	rec := httptest.NewRecorder()
	svc.Search(rec, httptest.NewRequest(http.MethodPost, "/search?lat=10&lon=20&radius=5", nil))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var invalidRequests int64
	for _, c := range scope.Snapshot().Counters() {
		if c.Name() == "invalid-requests" {
			invalidRequests = c.Value()
		}
	}
	require.Equal(t, int64(len(urls)+1), invalidRequests)
}

func TestSearchBlockProviderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := search.NewMockBlockProvider(ctrl)
	provider.EXPECT().
		GetBlock(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("disk error"))
	opts := NewOptions().SetSearchOptions(search.NewOptions().SetBlockProvider(provider))
	svc := NewService(newTestCatalog(t), nil, opts)

	code, _, resp := doSearch(t, svc, "/search?lat=10&lon=20&radius=5")
	require.Equal(t, http.StatusInternalServerError, code)
	require.Equal(t, "disk error", resp.Error)
}
