package search

// ScoredDoc is a document along with its relevance score.
type ScoredDoc struct {
	DocID int32   `json:"docID"`
	Score float64 `json:"score"`
}

// worseThan orders documents by ascending score, breaking ties in favor of
// the smaller doc ID.
func worseThan(d1, d2 ScoredDoc) bool {
	if d1.Score != d2.Score {
		return d1.Score < d2.Score
	}
	return d1.DocID > d2.DocID
}

// scoredDocHeap is a heap of scored documents with the worst document at the top.
type scoredDocHeap struct {
	docs []ScoredDoc
}

func newScoredDocHeap(initCapacity int) *scoredDocHeap {
	return &scoredDocHeap{docs: make([]ScoredDoc, 0, initCapacity)}
}

// Min returns the worst document in the heap.
func (h scoredDocHeap) Min() ScoredDoc { return h.docs[0] }

func (h scoredDocHeap) Len() int { return len(h.docs) }

func (h scoredDocHeap) Less(i, j int) bool { return worseThan(h.docs[i], h.docs[j]) }

func (h *scoredDocHeap) Push(doc ScoredDoc) {
	h.docs = append(h.docs, doc)
	h.shiftUp(h.Len() - 1)
}

// ReplaceMin replaces the worst document in the heap.
func (h *scoredDocHeap) ReplaceMin(doc ScoredDoc) {
	h.docs[0] = doc
	h.heapify(0, h.Len())
}

func (h *scoredDocHeap) Pop() ScoredDoc {
	var (
		n   = h.Len()
		doc = h.docs[0]
	)
	h.docs[0], h.docs[n-1] = h.docs[n-1], h.docs[0]
	h.heapify(0, n-1)
	h.docs = h.docs[:n-1]
	return doc
}

// SortInPlace returns the documents from best to worst.
// NB: The heap becomes invalid after this is called.
func (h *scoredDocHeap) SortInPlace() []ScoredDoc {
	numDocs := len(h.docs)
	for len(h.docs) > 0 {
		h.Pop()
	}
	res := h.docs[:numDocs]
	h.docs = nil
	return res
}

func (h scoredDocHeap) shiftUp(i int) {
	for {
		parent := (i - 1) / 2
		if parent == i || !h.Less(i, parent) {
			break
		}
		h.docs[parent], h.docs[i] = h.docs[i], h.docs[parent]
		i = parent
	}
}

func (h scoredDocHeap) heapify(i, n int) {
	for {
		left := i*2 + 1
		right := left + 1
		smallest := i
		if left < n && h.Less(left, smallest) {
			smallest = left
		}
		if right < n && h.Less(right, smallest) {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.docs[i], h.docs[smallest] = h.docs[smallest], h.docs[i]
		i = smallest
	}
}
