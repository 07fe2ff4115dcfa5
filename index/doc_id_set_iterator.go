package index

import "github.com/pilosa/pilosa/roaring"

// DocIDSetIterator is the document ID set iterator.
type DocIDSetIterator interface {
	// Next returns true if there are more document IDs to be iterated over.
	Next() bool

	// DocID returns the current document ID.
	// NB: This is not called `Current` because it needs to
	// be embedded with other iterators so the method name is
	// more specific w.r.t. what value this is referring to.
	DocID() int32

	// Err returns any error encountered during iteration.
	Err() error

	// Close closes the iterator.
	Close()
}

// FullDocIDSetIterator is an iterator for a full doc ID set containing document IDs
// ranging from 0 (inclusive) to `numTotalDocs` (exclusive).
type FullDocIDSetIterator struct {
	numTotalDocs int32

	curr int32
}

// NewFullDocIDSetIterator creates a new full doc ID set iterator.
func NewFullDocIDSetIterator(numTotalDocs int32) *FullDocIDSetIterator {
	return &FullDocIDSetIterator{numTotalDocs: numTotalDocs, curr: -1}
}

// Next returns true if there are more doc IDs to be iterated over.
func (it *FullDocIDSetIterator) Next() bool {
	if it.curr >= it.numTotalDocs {
		return false
	}
	it.curr++
	return it.curr < it.numTotalDocs
}

// DocID returns the current doc ID.
func (it *FullDocIDSetIterator) DocID() int32 { return it.curr }

// Err returns any error encountered during iteration.
func (it *FullDocIDSetIterator) Err() error { return nil }

// Close closes the iterator.
func (it *FullDocIDSetIterator) Close() {}

type bitmapBasedDocIDSetIterator struct {
	rit *roaring.Iterator

	closed bool
	done   bool
	curr   int32
}

func newBitmapBasedDocIDSetIterator(rit *roaring.Iterator) *bitmapBasedDocIDSetIterator {
	return &bitmapBasedDocIDSetIterator{rit: rit}
}

func (it *bitmapBasedDocIDSetIterator) Next() bool {
	if it.done || it.closed {
		return false
	}
	curr, eof := it.rit.Next()
	if eof {
		it.done = true
		return false
	}
	it.curr = int32(curr)
	return true
}

func (it *bitmapBasedDocIDSetIterator) DocID() int32 { return it.curr }

func (it *bitmapBasedDocIDSetIterator) Err() error { return nil }

func (it *bitmapBasedDocIDSetIterator) Close() {
	if it.closed {
		return
	}
	it.closed = true
	it.rit = nil
}
