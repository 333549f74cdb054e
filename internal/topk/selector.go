// Package topk implements bounded top-K selection over a stream of scored
// candidates. A full sort of N candidates is O(N log N); keeping a min-heap
// of the K best is O(N log K), which is what makes a K of 100 affordable
// against corpora of a few hundred thousand candidates.
package topk

import (
	"container/heap"

	"github.com/gcbaptista/go-fuzzy-bench/model"
)

// Selector retains the K highest-scoring candidates from an arbitrary-order
// stream of (score, index) pairs. Internally a min-heap keyed by score: the
// root is always the worst retained candidate, so admission is a single
// comparison and eviction a heap fix.
type Selector struct {
	k int
	h candidateHeap
}

// NewSelector creates a selector bounded at k. k = 0 degenerates to "always
// discard".
func NewSelector(k int) *Selector {
	s := &Selector{k: k}
	if k > 0 {
		s.h = make(candidateHeap, 0, k)
	}
	return s
}

// Push admits one candidate to the working set. Below capacity the candidate
// is inserted unconditionally; at capacity it replaces the minimum retained
// score only when strictly greater, so an equal score keeps the candidate
// that arrived first.
func (s *Selector) Push(score float64, index int) {
	if s.k == 0 {
		return
	}
	if len(s.h) < s.k {
		heap.Push(&s.h, model.ScoredCandidate{Score: score, Index: index})
		return
	}
	if score > s.h[0].Score {
		s.h[0] = model.ScoredCandidate{Score: score, Index: index}
		heap.Fix(&s.h, 0)
	}
}

// Len returns the number of retained candidates.
func (s *Selector) Len() int {
	return len(s.h)
}

// Drain returns the retained candidates sorted by descending score, equal
// scores by ascending corpus index, and leaves the selector empty. The
// secondary index order makes drain output deterministic.
func (s *Selector) Drain() []model.ScoredCandidate {
	out := make([]model.ScoredCandidate, len(s.h))
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = heap.Pop(&s.h).(model.ScoredCandidate)
	}
	return out
}

// candidateHeap is a min-heap: the root holds the lowest score. Among equal
// scores the larger index sits closer to the root, so a reverse drain yields
// ascending indexes.
type candidateHeap []model.ScoredCandidate

func (h candidateHeap) Len() int { return len(h) }

func (h candidateHeap) Less(i, j int) bool {
	if h[i].Score != h[j].Score {
		return h[i].Score < h[j].Score
	}
	return h[i].Index > h[j].Index
}

func (h candidateHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *candidateHeap) Push(x interface{}) {
	*h = append(*h, x.(model.ScoredCandidate))
}

func (h *candidateHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
