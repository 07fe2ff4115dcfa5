package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/xichen2020/geosearch/index"
	"github.com/xichen2020/geosearch/search"
	"github.com/xichen2020/geosearch/segment"

	bgeo "github.com/blevesearch/bleve/geo"
	xerrors "github.com/m3db/m3/src/x/errors"
	"github.com/uber-go/tally"
	"go.uber.org/zap"
)

// Service provides handlers for serving HTTP requests.
type Service interface {
	// Health returns service health.
	Health(w http.ResponseWriter, r *http.Request)

	// Search returns the documents within a radius of a centroid. The centroid and
	// radius are given by the `lat`, `lon` and `radius` URL params, with optional
	// `limit` and `sort` (`docID` or `score`) params. The radius is in kilometers
	// unless it carries a unit suffix such as `500m` or `2mi`.
	Search(w http.ResponseWriter, r *http.Request)
}

const (
	metersPerKm = 1000.0
)

var (
	errRequestMustBeGet = xerrors.NewInvalidParamsError(errors.New("request must be GET"))
)

type serviceMetrics struct {
	searches        tally.Counter
	invalidRequests tally.Counter
	searchErrors    tally.Counter
	searchLatency   tally.Timer
	hitsReturned    tally.Counter
}

func newServiceMetrics(scope tally.Scope) serviceMetrics {
	return serviceMetrics{
		searches:        scope.Counter("searches"),
		invalidRequests: scope.Counter("invalid-requests"),
		searchErrors:    scope.Counter("search-errors"),
		searchLatency:   scope.Timer("search-latency"),
		hitsReturned:    scope.Counter("hits-returned"),
	}
}

type service struct {
	catalog          *segment.Catalog
	deleted          index.DeletedDocs
	searchOpts       *search.Options
	defaultLimit     int
	maxLimit         int
	defaultSortOrder search.SortOrder
	logger           *zap.Logger
	metrics          serviceMetrics
}

// NewService creates a new service serving searches against the catalog. The
// catalog is owned by the caller and must stay open while serving.
func NewService(
	catalog *segment.Catalog,
	deleted index.DeletedDocs,
	opts *Options,
) Service {
	if opts == nil {
		opts = NewOptions()
	}
	instrumentOpts := opts.InstrumentOptions()
	return &service{
		catalog:          catalog,
		deleted:          deleted,
		searchOpts:       opts.SearchOptions(),
		defaultLimit:     opts.DefaultLimit(),
		maxLimit:         opts.MaxLimit(),
		defaultSortOrder: opts.DefaultSortOrder(),
		logger:           instrumentOpts.Logger(),
		metrics:          newServiceMetrics(instrumentOpts.MetricsScope()),
	}
}

func (s *service) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if httpMethod := strings.ToUpper(r.Method); httpMethod != http.MethodGet {
		writeErrorResponse(w, errRequestMustBeGet)
		return
	}
	writeSuccessResponse(w)
}

func (s *service) Search(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if httpMethod := strings.ToUpper(r.Method); httpMethod != http.MethodGet {
		s.metrics.invalidRequests.Inc(1)
		writeErrorResponse(w, errRequestMustBeGet)
		return
	}
	req, err := s.parseSearchRequest(r.URL.Query())
	if err != nil {
		s.metrics.invalidRequests.Inc(1)
		writeErrorResponse(w, xerrors.NewInvalidParamsError(err))
		return
	}

	s.metrics.searches.Inc(1)
	sw := s.metrics.searchLatency.Start()
	hits, err := s.search(req)
	sw.Stop()
	if err != nil {
		s.metrics.searchErrors.Inc(1)
		s.logger.Error("search error", zap.Stringer("query", req.query), zap.Error(err))
		writeErrorResponse(w, err)
		return
	}
	s.metrics.hitsReturned.Inc(int64(len(hits)))
	writeResponse(w, SearchResponse{Hits: hits}, nil)
}

type searchRequest struct {
	query     search.Query
	limit     int
	sortOrder search.SortOrder
}

func (s *service) parseSearchRequest(params url.Values) (searchRequest, error) {
	var (
		req = searchRequest{limit: s.defaultLimit, sortOrder: s.defaultSortOrder}
		err error
	)
	if req.query.CentroidLatDegrees, err = parseRequiredFloat(params, "lat"); err != nil {
		return req, err
	}
	if req.query.CentroidLonDegrees, err = parseRequiredFloat(params, "lon"); err != nil {
		return req, err
	}
	if req.query.RadiusKm, err = parseRadiusKm(params); err != nil {
		return req, err
	}
	if err := req.query.Validate(); err != nil {
		return req, err
	}
	if str := params.Get("limit"); str != "" {
		if req.limit, err = strconv.Atoi(str); err != nil {
			return req, fmt.Errorf("invalid limit %s: %v", str, err)
		}
		if req.limit <= 0 || req.limit > s.maxLimit {
			return req, fmt.Errorf("limit %d out of range [1, %d]", req.limit, s.maxLimit)
		}
	}
	if str := params.Get("sort"); str != "" {
		if req.sortOrder, err = search.ParseSortOrder(str); err != nil {
			return req, err
		}
	}
	return req, nil
}

func (s *service) search(req searchRequest) ([]Hit, error) {
	it, err := search.NewDistanceIterator(s.catalog, s.deleted, req.query, s.searchOpts)
	if err != nil {
		return nil, err
	}
	defer it.Close()

	docs, err := search.Collect(it, req.limit, req.sortOrder)
	if err != nil {
		return nil, err
	}
	hits := make([]Hit, 0, len(docs))
	for _, doc := range docs {
		segmentIdx, localDocID, _ := s.catalog.Locate(doc.DocID)
		hits = append(hits, Hit{
			DocID:      doc.DocID,
			Segment:    s.catalog.SegmentAt(segmentIdx).ID(),
			LocalDocID: localDocID,
			Score:      doc.Score,
		})
	}
	return hits, nil
}

func parseRadiusKm(params url.Values) (float64, error) {
	str := params.Get("radius")
	if str == "" {
		return 0, errors.New("missing radius")
	}
	if v, err := strconv.ParseFloat(str, 64); err == nil {
		return v, nil
	}
	meters, err := bgeo.ParseDistance(str)
	if err != nil {
		return 0, fmt.Errorf("invalid radius %s: %v", str, err)
	}
	return meters / metersPerKm, nil
}

func parseRequiredFloat(params url.Values, name string) (float64, error) {
	str := params.Get(name)
	if str == "" {
		return 0, fmt.Errorf("missing %s", name)
	}
	v, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %s: %v", name, str, err)
	}
	return v, nil
}
