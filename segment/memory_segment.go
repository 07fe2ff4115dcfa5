package segment

import (
	"errors"
	"sort"
)

var (
	errSegmentClosed = errors.New("segment is closed")
)

// memorySegment keeps its records sorted by doc ID in memory.
type memorySegment struct {
	*baseSegment

	records []Record
}

// NewImmutableSegment creates an immutable segment from records sorted by doc ID.
// The caller must not mutate the records afterwards.
func NewImmutableSegment(meta Metadata, records []Record) ImmutableSegment {
	s := &memorySegment{records: records}
	meta.NumRecords = len(records)
	s.baseSegment = newBaseSegment(meta, s.close)
	return s
}

func (s *memorySegment) RecordsInRange(startInclusive, endExclusive int32) (RecordIterator, error) {
	records := s.records
	if records == nil && s.meta.NumRecords > 0 {
		return nil, errSegmentClosed
	}
	return NewSliceRecordIterator(RecordsInRange(records, startInclusive, endExclusive)), nil
}

func (s *memorySegment) close() { s.records = nil }

// RecordsInRange returns the sub-slice of records sorted by doc ID whose doc IDs
// fall in [startInclusive, endExclusive).
func RecordsInRange(records []Record, startInclusive, endExclusive int32) []Record {
	if startInclusive >= endExclusive {
		return nil
	}
	start := sort.Search(len(records), func(i int) bool {
		return records[i].DocID >= startInclusive
	})
	end := start + sort.Search(len(records)-start, func(i int) bool {
		return records[start+i].DocID >= endExclusive
	})
	return records[start:end]
}

type sliceRecordIterator struct {
	records []Record

	idx int
}

// NewSliceRecordIterator creates a record iterator over a slice of records.
func NewSliceRecordIterator(records []Record) RecordIterator {
	return &sliceRecordIterator{records: records, idx: -1}
}

func (it *sliceRecordIterator) Next() bool {
	if it.idx >= len(it.records) {
		return false
	}
	it.idx++
	return it.idx < len(it.records)
}

func (it *sliceRecordIterator) Current() Record { return it.records[it.idx] }
func (it *sliceRecordIterator) Err() error      { return nil }
func (it *sliceRecordIterator) Close()          { it.records = nil }
