// This tool generates synthetic geo segments for exercising geo radius searches.
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"sync"

	"github.com/xichen2020/geosearch/geo"
	"github.com/xichen2020/geosearch/index"
	"github.com/xichen2020/geosearch/persist/fs"
	"github.com/xichen2020/geosearch/segment"

	"github.com/m3db/m3/src/x/instrument"
	xlog "github.com/m3db/m3/src/x/log"
	"github.com/pilosa/pilosa/roaring"
	"go.uber.org/zap"
)

var (
	filePathPrefix   = flag.String("filePathPrefix", "", "directory the segments are written to")
	numSegments      = flag.Int("numSegments", 4, "number of segments")
	docsPerSegment   = flag.Int("docsPerSegment", 100000, "number of documents per segment")
	maxRecordsPerDoc = flag.Int("maxRecordsPerDoc", 2, "maximum number of geo records per document")
	noRecordFraction = flag.Float64("noRecordFraction", 0.1, "fraction of documents without geo records")
	centroidLat      = flag.Float64("lat", 0, "latitude in degrees the points are generated around")
	centroidLon      = flag.Float64("lon", 0, "longitude in degrees the points are generated around")
	spreadKm         = flag.Float64("spreadKm", 100, "maximum distance in kilometers between a point and the centroid")
	deletedFraction  = flag.Float64("deletedFraction", 0, "fraction of documents marked as deleted")
	deletedDocsFile  = flag.String("deletedDocsFile", "deleted.db", "name of the deleted documents file")
	numWorkers       = flag.Int("numWorkers", 4, "number of workers generating segments in parallel")
	seed             = flag.Int64("seed", 1, "random seed")
)

func main() {
	flag.Parse()

	if len(*filePathPrefix) == 0 || *numSegments <= 0 || *docsPerSegment < 0 || *maxRecordsPerDoc <= 0 || *numWorkers <= 0 {
		flag.Usage()
		os.Exit(1)
	}
	if int64(*numSegments)*int64(*docsPerSegment) >= math.MaxInt32 {
		fmt.Printf("too many documents: %d segments of %d documents\n", *numSegments, *docsPerSegment)
		os.Exit(1)
	}

	var logCfg xlog.Configuration
	logger, err := logCfg.BuildLogger()
	if err != nil {
		fmt.Printf("error creating logger: %v\n", err)
		os.Exit(1)
	}

	segments := generateSegments(logger)
	opts := fs.NewOptions().
		SetFilePathPrefix(*filePathPrefix).
		SetInstrumentOptions(instrument.NewOptions().SetLogger(logger))
	w := fs.NewSegmentWriter(opts)
	for _, seg := range segments {
		segmentID, err := w.WriteSegment(seg)
		if err != nil {
			logger.Fatal("error writing segment", zap.String("segment", seg.ID()), zap.Error(err))
		}
		logger.Info("wrote segment",
			zap.String("segment", segmentID),
			zap.Int32("numDocs", seg.NumDocuments()),
			zap.Int("numRecords", seg.NumRecords()),
		)
		seg.DecRef()
	}

	if *deletedFraction <= 0 {
		return
	}
	var (
		rnd     = rand.New(rand.NewSource(*seed))
		numDocs = int32(*numSegments * *docsPerSegment)
		b       = index.NewBitmapBasedDocIDSetBuilder(roaring.NewBitmap())
	)
	for docID := int32(0); docID < numDocs; docID++ {
		if rnd.Float64() < *deletedFraction {
			b.Add(docID)
		}
	}
	deleted := b.Seal(numDocs)
	if err := w.WriteDeletedDocs(*deletedDocsFile, deleted); err != nil {
		logger.Fatal("error writing deleted docs", zap.Error(err))
	}
	logger.Info("wrote deleted docs",
		zap.String("file", *deletedDocsFile),
		zap.Int32("numDeleted", deleted.NumDocuments()),
	)
}

// generateSegments generates the segments in parallel. Each segment is generated from
// its own random source so the output only depends on the seed.
func generateSegments(logger *zap.Logger) []segment.ImmutableSegment {
	var (
		wg       sync.WaitGroup
		segments = make([]segment.ImmutableSegment, *numSegments)
		idxCh    = make(chan int)
	)
	for i := 0; i < *numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range idxCh {
				seg, err := generateSegment(idx, rand.New(rand.NewSource(*seed+int64(idx)+1)))
				if err != nil {
					logger.Fatal("error generating segment", zap.Int("segment", idx), zap.Error(err))
				}
				segments[idx] = seg
			}
		}()
	}
	for i := 0; i < *numSegments; i++ {
		idxCh <- i
	}
	close(idxCh)
	wg.Wait()
	return segments
}

func generateSegment(idx int, rnd *rand.Rand) (segment.ImmutableSegment, error) {
	b := segment.NewBuilder(fmt.Sprintf("generated-%d", idx))
	for docID := int32(0); docID < int32(*docsPerSegment); docID++ {
		if rnd.Float64() < *noRecordFraction {
			continue
		}
		numRecords := rnd.Intn(*maxRecordsPerDoc) + 1
		for i := 0; i < numRecords; i++ {
			// Uniform over the disk around the centroid.
			distanceKm := *spreadKm * math.Sqrt(rnd.Float64())
			bearing := rnd.Float64() * 360
			lat, lon := geo.Destination(*centroidLat, *centroidLon, distanceKm, bearing)
			if err := b.Add(docID, geo.FromDegrees(lat, lon)); err != nil {
				return nil, err
			}
		}
	}
	return b.Seal(int32(*docsPerSegment))
}
