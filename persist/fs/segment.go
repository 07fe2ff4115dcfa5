package fs

import (
	"errors"
	"sort"
	"sync"

	"github.com/xichen2020/geosearch/segment"
	"github.com/xichen2020/geosearch/x/refcnt"
)

var (
	errSegmentClosed = errors.New("segment is closed")
)

// mmapSegment is a segment whose fixed-width records are served directly
// from a memory mapped records file.
type mmapSegment struct {
	sync.RWMutex
	*refcnt.RefCounter

	meta   segment.Metadata
	data   []byte
	munmap func()
	closed bool
}

func newMmapSegment(meta segment.Metadata, data []byte, munmap func()) *mmapSegment {
	s := &mmapSegment{
		meta:   meta,
		data:   data,
		munmap: munmap,
	}
	s.RefCounter = refcnt.NewRefCounter(s.close)
	return s
}

func (s *mmapSegment) ID() string                 { return s.meta.ID }
func (s *mmapSegment) NumDocuments() int32        { return s.meta.NumDocs }
func (s *mmapSegment) NumRecords() int            { return s.meta.NumRecords }
func (s *mmapSegment) Metadata() segment.Metadata { return s.meta }

func (s *mmapSegment) RecordsInRange(
	startInclusive, endExclusive int32,
) (segment.RecordIterator, error) {
	s.RLock()
	defer s.RUnlock()

	if s.closed {
		return nil, errSegmentClosed
	}
	n := s.meta.NumRecords
	start := sort.Search(n, func(i int) bool {
		return s.docIDAt(i) >= startInclusive
	})
	end := start + sort.Search(n-start, func(i int) bool {
		return s.docIDAt(start+i) >= endExclusive
	})
	return newRecordIterator(s.data[start*recordSizeBytes : end*recordSizeBytes]), nil
}

func (s *mmapSegment) docIDAt(i int) int32 {
	return decodeDocID(s.data[i*recordSizeBytes:])
}

func (s *mmapSegment) close() {
	s.Lock()
	defer s.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.data = nil
	s.munmap()
	s.munmap = nil
}

// recordIterator decodes records from a region of a records file. The region
// must stay mapped while iterating.
type recordIterator struct {
	data []byte
	curr segment.Record
}

func newRecordIterator(data []byte) *recordIterator {
	return &recordIterator{data: data}
}

func (it *recordIterator) Next() bool {
	if len(it.data) < recordSizeBytes {
		return false
	}
	it.curr = decodeRecord(it.data)
	it.data = it.data[recordSizeBytes:]
	return true
}

func (it *recordIterator) Current() segment.Record { return it.curr }
func (it *recordIterator) Err() error              { return nil }
func (it *recordIterator) Close()                  { it.data = nil }
