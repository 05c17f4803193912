package merge

// This file implements the lazy priority queue of edge ids. Entries are
// never removed in place: deleted and stale edges are filtered or rescored
// when they surface, in the manner of a lazy-decrease-key heap.

import "github.com/katalvlaran/lvlseg/rag"

// queueItem pairs an edge with the score it was pushed at. A live edge has
// exactly one entry; the recorded score equals the engine's score map for
// that edge until the edge is rescored (which pops first, then pushes anew).
type queueItem struct {
	score float64
	e     rag.EdgeID
}

// edgePQ is a min-heap of queueItems ordered by score, ties broken by
// ascending edge id for deterministic merge order.
type edgePQ []queueItem

// Len returns the number of entries in the heap.
func (pq edgePQ) Len() int { return len(pq) }

// Less orders by score ascending, then edge id ascending.
func (pq edgePQ) Less(i, j int) bool {
	if pq[i].score != pq[j].score {
		return pq[i].score < pq[j].score
	}
	return pq[i].e < pq[j].e
}

// Swap swaps two entries.
func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new entry. Called by heap.Push; x must be a queueItem.
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(queueItem)) }

// Pop removes and returns the last entry. Called by heap.Pop.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
