package fs

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/xichen2020/geosearch/digest"
	"github.com/xichen2020/geosearch/index"
	"github.com/xichen2020/geosearch/persist"
	"github.com/xichen2020/geosearch/segment"
	xio "github.com/xichen2020/geosearch/x/io"

	"github.com/edsrzf/mmap-go"
	"github.com/uber-go/tally"
	"go.uber.org/zap"
)

var (
	errCheckpointFileNotFound   = errors.New("checkpoint file not found")
	errCheckpointSizeMismatch   = errors.New("checkpoint file size mismatch")
	errCheckpointDigestMismatch = errors.New("records file digest does not match checkpoint")
	errRecordsSizeMismatch      = errors.New("records file size does not match record count")
)

type readerMetrics struct {
	segmentsRead      tally.Counter
	segmentReadErrors tally.Counter
	deletedDocsRead   tally.Counter
	deletedDocsErrors tally.Counter
}

func newReaderMetrics(scope tally.Scope) readerMetrics {
	return readerMetrics{
		segmentsRead:      scope.Counter("segments-read"),
		segmentReadErrors: scope.Counter("segment-read-errors"),
		deletedDocsRead:   scope.Counter("deleted-docs-read"),
		deletedDocsErrors: scope.Counter("deleted-docs-read-errors"),
	}
}

type segmentInfo struct {
	version    int64
	id         string
	numDocs    int32
	numRecords int
}

// reader reads segments from the filesystem. Segment records are memory mapped
// and stay mapped until the segment is released.
type reader struct {
	filePathPrefix string
	logger         *zap.Logger
	metrics        readerMetrics
}

// NewSegmentReader creates a new segment reader.
func NewSegmentReader(opts *Options) persist.SegmentReader {
	if opts == nil {
		opts = NewOptions()
	}
	instrumentOpts := opts.InstrumentOptions()
	return &reader{
		filePathPrefix: opts.FilePathPrefix(),
		logger:         instrumentOpts.Logger(),
		metrics:        newReaderMetrics(instrumentOpts.MetricsScope()),
	}
}

func (r *reader) ListSegments() ([]string, error) {
	entries, err := os.ReadDir(r.filePathPrefix)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var segmentIDs []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		segmentID, ok := segmentIDFromDirName(entry.Name())
		if !ok {
			continue
		}
		segmentDir := segmentDirPath(r.filePathPrefix, segmentID)
		exists, err := fileExists(checkpointFilePath(segmentDir))
		if err != nil {
			return nil, err
		}
		if !exists {
			r.logger.Warn("skipping incomplete segment", zap.String("dir", segmentDir))
			continue
		}
		segmentIDs = append(segmentIDs, segmentID)
	}
	return segmentIDs, nil
}

func (r *reader) ReadSegment(id string) (segment.ImmutableSegment, error) {
	seg, err := r.readSegment(id)
	if err != nil {
		r.metrics.segmentReadErrors.Inc(1)
		return nil, err
	}
	r.metrics.segmentsRead.Inc(1)
	return seg, nil
}

func (r *reader) ReadDeletedDocs(name string) (index.DocIDSet, error) {
	docIDs, err := r.readDeletedDocs(name)
	if err != nil {
		r.metrics.deletedDocsErrors.Inc(1)
		return nil, err
	}
	r.metrics.deletedDocsRead.Inc(1)
	return docIDs, nil
}

func (r *reader) readSegment(id string) (segment.ImmutableSegment, error) {
	segmentDir := segmentDirPath(r.filePathPrefix, id)

	// Check the checkpoint file first, and bail early if the segment is incomplete.
	expectedDigest, err := r.readCheckpointFile(segmentDir)
	if err != nil {
		return nil, err
	}

	info, err := r.readInfoFile(segmentDir)
	if err != nil {
		return nil, err
	}
	if info.id != id {
		return nil, fmt.Errorf("segment ID %s in info file does not match segment ID %s", info.id, id)
	}

	fd, err := os.Open(recordsFilePath(segmentDir))
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	data, checksum, munmap, err := r.mmapReadAllAndValidateChecksum(fd)
	if err != nil {
		return nil, err
	}
	if checksum != expectedDigest {
		munmap()
		return nil, errCheckpointDigestMismatch
	}
	if len(data) != info.numRecords*recordSizeBytes {
		munmap()
		return nil, errRecordsSizeMismatch
	}
	meta := segment.Metadata{
		ID:         info.id,
		NumDocs:    info.numDocs,
		NumRecords: info.numRecords,
	}
	return newMmapSegment(meta, data, munmap), nil
}

func (r *reader) readCheckpointFile(segmentDir string) (uint32, error) {
	data, err := os.ReadFile(checkpointFilePath(segmentDir))
	if os.IsNotExist(err) {
		return 0, errCheckpointFileNotFound
	}
	if err != nil {
		return 0, err
	}
	if len(data) != digest.DigestLenBytes {
		return 0, errCheckpointSizeMismatch
	}
	return digest.ToBuffer(data).ReadDigest(), nil
}

func (r *reader) readInfoFile(segmentDir string) (segmentInfo, error) {
	fd, err := os.Open(infoFilePath(segmentDir))
	if err != nil {
		return segmentInfo{}, err
	}
	defer fd.Close()

	data, _, munmap, err := r.mmapReadAllAndValidateChecksum(fd)
	if err != nil {
		return segmentInfo{}, err
	}
	defer munmap()

	var version, idLen, numDocs, numRecords int64
	bytesRead, err := xio.ReadVarints(data, &version, &idLen)
	if err != nil {
		return segmentInfo{}, err
	}
	if version != persist.SegmentVersion {
		return segmentInfo{}, fmt.Errorf("unsupported segment version %d", version)
	}
	if idLen < 0 || int64(len(data)-bytesRead) < idLen {
		return segmentInfo{}, fmt.Errorf("invalid segment ID length %d", idLen)
	}
	// Copy the ID out of the mapped region before unmapping.
	id := string(data[bytesRead : bytesRead+int(idLen)])
	bytesRead += int(idLen)
	if _, err := xio.ReadVarints(data[bytesRead:], &numDocs, &numRecords); err != nil {
		return segmentInfo{}, err
	}
	if numDocs < 0 || numDocs > math.MaxInt32 || numRecords < 0 {
		return segmentInfo{}, fmt.Errorf("invalid segment counts: %d docs, %d records", numDocs, numRecords)
	}
	return segmentInfo{
		version:    version,
		id:         id,
		numDocs:    int32(numDocs),
		numRecords: int(numRecords),
	}, nil
}

// readDeletedDocs reads the doc ID set into heap memory since the decoded bitmap
// may alias the bytes it is decoded from.
func (r *reader) readDeletedDocs(name string) (index.DocIDSet, error) {
	data, err := os.ReadFile(deletedDocsFilePath(r.filePathPrefix, name))
	if err != nil {
		return nil, err
	}
	payload, err := digest.Validate(data)
	if err != nil {
		return nil, err
	}
	docIDs, bytesRead, err := index.NewDocIDSetFromBytes(payload)
	if err != nil {
		return nil, err
	}
	if bytesRead != len(payload) {
		return nil, fmt.Errorf("%d unexpected trailing bytes in deleted docs file %s", len(payload)-bytesRead, name)
	}
	return docIDs, nil
}

// mmapReadAllAndValidateChecksum reads all the data from the given file via mmap and
// validates the contents against the checksum stored at the end of the file. If the
// validation passes, it returns the mmaped bytes without the checksum along with the
// checksum. Otherwise, an error is returned.
func (r *reader) mmapReadAllAndValidateChecksum(fd *os.File) ([]byte, uint32, func(), error) {
	mapped, err := mmap.Map(fd, mmap.RDONLY, 0)
	if err != nil {
		return nil, 0, nil, err
	}
	fileName := fd.Name()
	munmap := func() {
		if err := mapped.Unmap(); err != nil {
			r.logger.Error("error unmapping file", zap.String("file", fileName), zap.Error(err))
		}
	}
	validated, err := digest.Validate(mapped)
	if err != nil {
		munmap()
		return nil, 0, nil, fmt.Errorf("error validating file %s: %v", fileName, err)
	}
	checksum := digest.ToBuffer(mapped[len(validated):]).ReadDigest()
	return validated, checksum, munmap, nil
}
