package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/xichen2020/geosearch/index"
	"github.com/xichen2020/geosearch/persist"
	"github.com/xichen2020/geosearch/persist/fs"
	"github.com/xichen2020/geosearch/search"
	"github.com/xichen2020/geosearch/segment"
	"github.com/xichen2020/geosearch/services/geosearch/config"
	"github.com/xichen2020/geosearch/services/geosearch/serve"

	xconfig "github.com/m3db/m3/src/x/config"
	xerrors "github.com/m3db/m3/src/x/errors"
	"github.com/m3db/m3/src/x/instrument"
	"go.uber.org/zap"
)

const (
	gracefulShutdownTimeout = 15 * time.Second
)

var (
	configFile = flag.String("f", "config.yaml", "configuration file")
	query      = flag.Bool("query", false, "run a single query and exit instead of serving HTTP traffic")
	latitude   = flag.Float64("lat", 0, "centroid latitude in degrees")
	longitude  = flag.Float64("lon", 0, "centroid longitude in degrees")
	radiusKm   = flag.Float64("radius", 1, "search radius in kilometers")
	limit      = flag.Int("limit", 10, "maximum number of documents returned, unlimited if not positive")
	sortBy     = flag.String("sort", "docID", "result order, either docID or score")
)

func main() {
	// Parse command line args.
	flag.Parse()

	if len(*configFile) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	var cfg config.Configuration
	if err := xconfig.LoadFile(&cfg, *configFile, xconfig.Options{}); err != nil {
		fmt.Printf("error loading config file %s: %v\n", *configFile, err)
		os.Exit(1)
	}

	// Create logger and metrics scope.
	logger, err := cfg.Logging.BuildLogger()
	if err != nil {
		fmt.Printf("error creating logger: %v\n", err)
		os.Exit(1)
	}
	scope, closer, err := cfg.Metrics.NewRootScope()
	if err != nil {
		logger.Fatal("error creating metrics root scope", zap.Error(err))
	}

	instrumentOpts := instrument.NewOptions().
		SetLogger(logger).
		SetMetricsScope(scope)

	// Load the persisted index.
	logger.Info("loading index...", zap.String("path", cfg.Index.FilePathPrefix))
	fsOpts := cfg.Index.NewFileSystemOptions(
		instrumentOpts.SetMetricsScope(scope.SubScope("reader")),
	)
	reader := fs.NewSegmentReader(fsOpts)
	catalog, err := loadCatalog(reader)
	if err != nil {
		logger.Fatal("error loading segments", zap.Error(err))
	}
	defer func() {
		multiErr := xerrors.NewMultiError()
		multiErr = multiErr.Add(catalog.Close())
		multiErr = multiErr.Add(closer.Close())
		if err := multiErr.FinalError(); err != nil {
			logger.Error("error closing resources", zap.Error(err))
		}
	}()
	deleted, err := cfg.Index.NewDeletedDocs(reader, catalog.NumDocuments())
	if err != nil {
		logger.Fatal("error loading deleted documents", zap.Error(err))
	}
	logger.Info("index loaded",
		zap.Int("numSegments", catalog.NumSegments()),
		zap.Int32("numDocs", catalog.NumDocuments()),
	)

	searchOpts := cfg.Search.NewOptions(
		instrumentOpts.SetMetricsScope(scope.SubScope("search")),
	)
	if *query {
		runQuery(logger, catalog, deleted, searchOpts)
		return
	}

	if cfg.HTTP == nil {
		logger.Fatal("http server is not configured")
	}

	// Start up HTTP server.
	logger.Info("starting HTTP server...")
	handlerOpts := cfg.HTTP.Handler.NewOptions(
		instrumentOpts.SetMetricsScope(scope.SubScope("handler")),
		searchOpts,
	)
	serverOpts := cfg.HTTP.NewServerOptions(
		instrumentOpts.SetMetricsScope(scope.SubScope("server")),
	)
	doneCh := make(chan struct{})
	closedCh := make(chan struct{})
	go func() {
		if err := serve.Serve(
			cfg.HTTP.ListenAddress,
			handlerOpts,
			serverOpts,
			catalog,
			deleted,
			logger,
			doneCh,
		); err != nil {
			logger.Fatal("could not start serving traffic", zap.Error(err))
		}
		logger.Debug("server closed")
		close(closedCh)
	}()

	// Handle interrupts.
	logger.Warn("interrupt", zap.Error(interrupt()))

	close(doneCh)

	select {
	case <-closedCh:
		logger.Info("server closed clean")
	case <-time.After(gracefulShutdownTimeout):
		logger.Info("server closed due to timeout", zap.Duration("timeout", gracefulShutdownTimeout))
	}
}

func runQuery(
	logger *zap.Logger,
	catalog *segment.Catalog,
	deleted index.DeletedDocs,
	searchOpts *search.Options,
) {
	order, err := search.ParseSortOrder(*sortBy)
	if err != nil {
		logger.Fatal("invalid sort order", zap.Error(err))
	}
	q := search.Query{
		CentroidLatDegrees: *latitude,
		CentroidLonDegrees: *longitude,
		RadiusKm:           *radiusKm,
	}
	it, err := search.NewDistanceIterator(catalog, deleted, q, searchOpts)
	if err != nil {
		logger.Fatal("error creating distance iterator", zap.Stringer("query", q), zap.Error(err))
	}
	defer it.Close()

	hits, err := search.Collect(it, *limit, order)
	if err != nil {
		logger.Fatal("error running query", zap.Stringer("query", q), zap.Error(err))
	}
	for _, hit := range hits {
		segmentIdx, localDocID, _ := catalog.Locate(hit.DocID)
		logger.Info("hit",
			zap.Int32("docID", hit.DocID),
			zap.String("segment", catalog.SegmentAt(segmentIdx).ID()),
			zap.Int32("localDocID", localDocID),
			zap.Float64("score", hit.Score),
		)
	}
	logger.Info("query done", zap.Stringer("query", q), zap.Int("numHits", len(hits)))
}

// loadCatalog reads all persisted segments in the order they were written.
func loadCatalog(reader persist.SegmentReader) (*segment.Catalog, error) {
	segmentIDs, err := reader.ListSegments()
	if err != nil {
		return nil, err
	}
	segments := make([]segment.ImmutableSegment, 0, len(segmentIDs))
	defer func() {
		// The catalog holds its own references.
		for _, seg := range segments {
			seg.DecRef()
		}
	}()
	for _, id := range segmentIDs {
		seg, err := reader.ReadSegment(id)
		if err != nil {
			return nil, fmt.Errorf("error reading segment %s: %v", id, err)
		}
		segments = append(segments, seg)
	}
	return segment.NewCatalog(segments)
}

func interrupt() error {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	return fmt.Errorf("%s", <-c)
}
