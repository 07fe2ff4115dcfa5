package search

import (
	"fmt"
	"sort"
)

// SortOrder determines the order collected documents are returned in.
type SortOrder int

// A list of supported sort orders.
const (
	// SortByDocID returns the first matching documents in ascending doc ID order.
	SortByDocID SortOrder = iota

	// SortByScore returns the highest scoring documents in descending score order,
	// breaking ties in favor of the smaller doc ID.
	SortByScore
)

var (
	validSortOrders = map[string]SortOrder{
		"docID": SortByDocID,
		"score": SortByScore,
	}
)

// ParseSortOrder parses a sort order from its name.
func ParseSortOrder(str string) (SortOrder, error) {
	o, exists := validSortOrders[str]
	if !exists {
		return 0, fmt.Errorf("invalid sort order %s", str)
	}
	return o, nil
}

func (o SortOrder) String() string {
	switch o {
	case SortByDocID:
		return "docID"
	case SortByScore:
		return "score"
	}
	return fmt.Sprintf("unknown(%d)", int(o))
}

// Collect drains the iterator, returning at most limit documents in the given
// order. A non-positive limit returns all matching documents.
func Collect(it DocIDScoreIterator, limit int, order SortOrder) ([]ScoredDoc, error) {
	switch order {
	case SortByDocID:
		return collectInDocIDOrder(it, limit)
	case SortByScore:
		return collectTopScored(it, limit)
	}
	return nil, fmt.Errorf("invalid sort order %v", order)
}

func collectInDocIDOrder(it DocIDScoreIterator, limit int) ([]ScoredDoc, error) {
	var res []ScoredDoc
	docID, err := it.Advance(0)
	for ; err == nil && docID != NoMoreDocs; docID, err = it.NextDoc() {
		res = append(res, ScoredDoc{DocID: docID, Score: it.Score()})
		if limit > 0 && len(res) >= limit {
			return res, nil
		}
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

func collectTopScored(it DocIDScoreIterator, limit int) ([]ScoredDoc, error) {
	if limit <= 0 {
		res, err := collectInDocIDOrder(it, 0)
		if err != nil {
			return nil, err
		}
		sort.SliceStable(res, func(i, j int) bool { return worseThan(res[j], res[i]) })
		return res, nil
	}

	h := newScoredDocHeap(limit)
	docID, err := it.Advance(0)
	for ; err == nil && docID != NoMoreDocs; docID, err = it.NextDoc() {
		doc := ScoredDoc{DocID: docID, Score: it.Score()}
		if h.Len() < limit {
			h.Push(doc)
			continue
		}
		if worseThan(h.Min(), doc) {
			h.ReplaceMin(doc)
		}
	}
	if err != nil {
		return nil, err
	}
	return h.SortInPlace(), nil
}
