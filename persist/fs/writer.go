package fs

import (
	"bytes"
	"fmt"
	"os"

	"github.com/xichen2020/geosearch/digest"
	"github.com/xichen2020/geosearch/index"
	"github.com/xichen2020/geosearch/persist"
	"github.com/xichen2020/geosearch/segment"
	xio "github.com/xichen2020/geosearch/x/io"

	"github.com/m3db/m3/src/x/clock"
	"github.com/pborman/uuid"
	"go.uber.org/zap"
)

// writer writes segments to the filesystem. A writer is not thread-safe.
type writer struct {
	filePathPrefix   string
	newFileMode      os.FileMode
	newDirectoryMode os.FileMode
	nowFn            clock.NowFn
	logger           *zap.Logger

	fdWithDigest *digest.FileWithDigestWriter
	recordBuf    [recordSizeBytes]byte
	bytesBuf     bytes.Buffer

	// Timestamp prefix of the last segment ID issued, loaded from disk on first use.
	lastNanos       int64
	lastNanosLoaded bool
}

// NewSegmentWriter creates a new segment writer.
func NewSegmentWriter(opts *Options) persist.SegmentWriter {
	if opts == nil {
		opts = NewOptions()
	}
	return &writer{
		filePathPrefix:   opts.FilePathPrefix(),
		newFileMode:      opts.NewFileMode(),
		newDirectoryMode: opts.NewDirectoryMode(),
		nowFn:            opts.ClockOptions().NowFn(),
		logger:           opts.InstrumentOptions().Logger(),
		fdWithDigest:     digest.NewFdWithDigestWriter(opts.WriteBufferSize()),
	}
}

func (w *writer) WriteSegment(seg segment.ImmutableSegment) (string, error) {
	segmentID, err := w.newSegmentID()
	if err != nil {
		return "", err
	}
	segmentDir := segmentDirPath(w.filePathPrefix, segmentID)
	if err := os.MkdirAll(segmentDir, w.newDirectoryMode); err != nil {
		return "", err
	}

	numRecords, recordsDigest, err := w.writeRecordsFile(segmentDir, seg)
	if err != nil {
		return "", err
	}
	if err := w.writeInfoFile(segmentDir, segmentID, seg.NumDocuments(), numRecords); err != nil {
		return "", err
	}

	// NB: The checkpoint file is written last so that readers never pick up a
	// partially written segment.
	if err := w.writeCheckpointFile(segmentDir, recordsDigest); err != nil {
		return "", err
	}
	w.logger.Debug("segment persisted",
		zap.String("source", seg.ID()),
		zap.String("segment", segmentID),
		zap.Int32("numDocs", seg.NumDocuments()),
		zap.Int("numRecords", numRecords),
	)
	return segmentID, nil
}

func (w *writer) WriteDeletedDocs(name string, docIDs index.DocIDSet) error {
	if err := os.MkdirAll(w.filePathPrefix, w.newDirectoryMode); err != nil {
		return err
	}
	f, err := w.openWritable(deletedDocsFilePath(w.filePathPrefix, name))
	if err != nil {
		return err
	}
	w.fdWithDigest.Reset(f)
	if err := docIDs.WriteTo(w.fdWithDigest, &w.bytesBuf); err != nil {
		f.Close()
		return err
	}
	return w.fdWithDigest.Close()
}

// newSegmentID returns a segment ID that sorts after the IDs of all segments
// already under the prefix, even when the clock stalls or goes backwards.
func (w *writer) newSegmentID() (string, error) {
	if !w.lastNanosLoaded {
		last, err := lastSegmentNanos(w.filePathPrefix)
		if err != nil {
			return "", err
		}
		w.lastNanos = last
		w.lastNanosLoaded = true
	}
	nanos := w.nowFn().UnixNano()
	if nanos <= w.lastNanos {
		nanos = w.lastNanos + 1
	}
	w.lastNanos = nanos
	return fmt.Sprintf("%019d%s%s", nanos, separator, uuid.New()[:8]), nil
}

func (w *writer) writeRecordsFile(
	segmentDir string,
	seg segment.ImmutableSegment,
) (numRecords int, recordsDigest uint32, err error) {
	f, err := w.openWritable(recordsFilePath(segmentDir))
	if err != nil {
		return 0, 0, err
	}
	w.fdWithDigest.Reset(f)
	numRecords, err = w.writeRecords(seg)
	if err != nil {
		f.Close()
		return 0, 0, err
	}
	recordsDigest = w.fdWithDigest.Digest()
	if err := w.fdWithDigest.Close(); err != nil {
		return 0, 0, err
	}
	return numRecords, recordsDigest, nil
}

func (w *writer) writeRecords(seg segment.ImmutableSegment) (int, error) {
	it, err := seg.RecordsInRange(0, seg.NumDocuments())
	if err != nil {
		return 0, err
	}
	defer it.Close()

	numRecords := 0
	for it.Next() {
		encodeRecord(w.recordBuf[:], it.Current())
		if _, err := w.fdWithDigest.Write(w.recordBuf[:]); err != nil {
			return 0, err
		}
		numRecords++
	}
	if err := it.Err(); err != nil {
		return 0, err
	}
	return numRecords, nil
}

func (w *writer) writeInfoFile(
	segmentDir string,
	segmentID string,
	numDocs int32,
	numRecords int,
) error {
	f, err := w.openWritable(infoFilePath(segmentDir))
	if err != nil {
		return err
	}
	w.fdWithDigest.Reset(f)
	if err := w.writeInfo(segmentID, numDocs, numRecords); err != nil {
		f.Close()
		return err
	}
	return w.fdWithDigest.Close()
}

func (w *writer) writeInfo(segmentID string, numDocs int32, numRecords int) error {
	if err := xio.WriteVarint(w.fdWithDigest, persist.SegmentVersion); err != nil {
		return err
	}
	if err := xio.WriteVarint(w.fdWithDigest, int64(len(segmentID))); err != nil {
		return err
	}
	if _, err := w.fdWithDigest.Write([]byte(segmentID)); err != nil {
		return err
	}
	if err := xio.WriteVarint(w.fdWithDigest, int64(numDocs)); err != nil {
		return err
	}
	return xio.WriteVarint(w.fdWithDigest, int64(numRecords))
}

func (w *writer) writeCheckpointFile(segmentDir string, recordsDigest uint32) error {
	f, err := w.openWritable(checkpointFilePath(segmentDir))
	if err != nil {
		return err
	}
	buf := digest.NewBuffer()
	buf.WriteDigest(recordsDigest)
	if _, err := f.Write(buf); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (w *writer) openWritable(filePath string) (*os.File, error) {
	return openWritable(filePath, w.newFileMode)
}
