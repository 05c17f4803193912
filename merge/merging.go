package merge

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/lvlseg/rag"
	"github.com/katalvlaran/lvlseg/score"
)

// Merging is the iterative region-merging engine over one region graph and
// one scoring function. Construct with NewMerging; zero value is unusable.
type Merging struct {
	g  *rag.RegionGraph
	fn score.Func

	// scores records the score every queued edge was pushed at.
	scores *rag.EdgeMap[float64]

	// stale flags edges whose recorded score predates a neighboring merge.
	stale *rag.EdgeMap[bool]

	// parents maps a node to the cluster it was merged into. Nodes absent
	// from the map are roots. Paths are compressed on read.
	parents map[rag.NodeID]rag.NodeID

	// pq is the lazy min-heap of scored edges.
	pq edgePQ

	// mergedUntil is the highest threshold fully processed so far.
	mergedUntil float64

	// scored is set once the initial edges have been scored and pushed.
	scored bool

	// observers receive every merge before the scoring function does.
	observers []Observer

	// history records every performed merge in order.
	history []Merge
}

// Merge is one performed merge: children A and B became cluster C at the
// given score.
type Merge struct {
	A, B, C rag.NodeID
	Score   float64
}

// Observer is the merge-notification side of a statistics bundle,
// satisfied by stats.Compound. Observers keep providers consistent across
// merges even when no leaf of the scoring function references them; the
// change reports are not needed here (stale marking is unconditional) and
// are ignored.
type Observer interface {
	NotifyNodeMerge(from, to rag.NodeID) bool
	NotifyEdgeMerge(from, to rag.EdgeID) bool
}

// NewMerging creates a merging engine for the given initial region graph
// and scoring function. The graph is expected to hold the initial RAG; its
// statistics providers must already be populated.
//
// Observers (typically the stats.Compound that ingested the RAG) receive
// every node and edge merge so their providers stay consistent whether or
// not the scoring function reads them. Observers are notified before the
// scoring function: the additive provider folds run first, then the
// scorer's assignment-form folds land on the same values, so a provider
// reachable both ways stays correct.
// Complexity: O(1) beyond attribute-map registration.
func NewMerging(g *rag.RegionGraph, fn score.Func, observers ...Observer) (*Merging, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if fn == nil {
		return nil, ErrNilScoring
	}
	return &Merging{
		g:         g,
		fn:        fn,
		scores:    rag.NewEdgeMap[float64](g),
		stale:     rag.NewEdgeMap[bool](g),
		parents:   make(map[rag.NodeID]rag.NodeID),
		observers: observers,
	}, nil
}

// MergedUntil returns the highest threshold fully processed so far.
func (m *Merging) MergedUntil() float64 { return m.mergedUntil }

// History returns the merges performed so far, in execution order - the
// merge tree as a flat dendrogram. The returned slice is shared; do not
// mutate.
func (m *Merging) History() []Merge { return m.history }

// MergeUntil merges regions cheapest-first until the next edge's score
// reaches threshold. A threshold at or below MergedUntil is a no-op, so
// ascending threshold sweeps compose: the merge history after
// MergeUntil(t1); MergeUntil(t2) equals that of MergeUntil(t2) alone.
//
// Returns ErrScoreRegression if a stale edge rescores below its recorded
// score; the engine must be considered corrupt afterwards.
//
// Complexity: O((E + R) log E) for E edges ever scored and R rescorings.
func (m *Merging) MergeUntil(threshold float64) error {
	if threshold <= m.mergedUntil {
		// Already merged this far; keep state untouched.
		return nil
	}

	// 1) Score and enqueue every initial edge on the first call.
	if !m.scored {
		for e := rag.EdgeID(0); int(e) < m.g.NumEdges(); e++ {
			m.scoreEdge(e)
		}
		m.scored = true
	}

	// 2) Consume edges cheapest-first until the threshold surfaces.
	for m.pq.Len() > 0 {
		// Peek: all later entries score at least this much. Rescoring only
		// raises scores, so once the top reaches the threshold nothing
		// cheaper can be hidden below it.
		if m.pq[0].score >= threshold {
			break
		}

		item := heap.Pop(&m.pq).(queueItem)
		e := item.e

		// 3) Discard entries of edges consumed by earlier merges.
		if m.g.Removed(e) {
			continue
		}

		// 4) Stale entries are rescored and requeued, never merged as-is.
		if m.stale.Get(e) {
			old := m.scores.Get(e)
			s := m.fn.Score(e)
			if s < old {
				return fmt.Errorf("%w: edge %d rescored %g below %g", ErrScoreRegression, e, s, old)
			}
			m.scores.Set(e, s)
			m.stale.Set(e, false)
			heap.Push(&m.pq, queueItem{score: s, e: e})
			continue
		}

		// 5) Live, current, and below threshold: merge its endpoints.
		m.mergeStep(e)
	}

	m.mergedUntil = threshold
	return nil
}

// GetRoot returns the current merge-tree root of id: the unique live
// cluster containing it, or id itself if it was never merged. Visited
// entries are rewritten to point at the root (path compression).
func (m *Merging) GetRoot(id rag.NodeID) rag.NodeID {
	parent, ok := m.parents[id]
	if !ok {
		return id
	}

	// Walk up to the root.
	root := parent
	for {
		next, ok := m.parents[root]
		if !ok {
			break
		}
		root = next
	}

	// Compress the walked path.
	for id != root {
		next := m.parents[id]
		m.parents[id] = root
		id = next
	}

	return root
}

// Relabel maps every label in the buffer to its current root in place. The
// buffer must hold labels the engine has seen: initial fragment ids or ids
// produced by a previous Relabel, so extraction is idempotent and
// composable across thresholds. Label 0 (background) is never merged and
// maps to itself.
// Complexity: O(len(labels) · α) with path compression.
func (m *Merging) Relabel(labels []uint64) {
	for i, l := range labels {
		labels[i] = uint64(m.GetRoot(rag.NodeID(l)))
	}
}

// scoreEdge computes, records, and enqueues the score of edge e.
func (m *Merging) scoreEdge(e rag.EdgeID) {
	s := m.fn.Score(e)
	m.scores.Set(e, s)
	heap.Push(&m.pq, queueItem{score: s, e: e})
}

// isRoot reports whether id has not been merged into any cluster.
func (m *Merging) isRoot(id rag.NodeID) bool {
	_, merged := m.parents[id]
	return !merged
}

// mergeStep merges the endpoints of edge e = {a,b} into a fresh cluster c
// and rewires the neighborhood with the move-then-detect-duplicate pass.
func (m *Merging) mergeStep(e rag.EdgeID) {
	edge := m.g.Edge(e)
	a, b := edge.U, edge.V

	// 1) Allocate the cluster and record the merge tree.
	c := m.g.AddNode()
	m.parents[a] = c
	m.parents[b] = c
	m.history = append(m.history, Merge{A: a, B: b, C: c, Score: m.scores.Get(e)})

	// 2) Fold node statistics: observers first (additive provider folds),
	// then the scoring function (assignment-form folds on the same values).
	for _, obs := range m.observers {
		obs.NotifyNodeMerge(a, c)
		obs.NotifyNodeMerge(b, c)
	}
	m.fn.NotifyNodeMerge(a, b, c)

	// 3) Rewire every surviving incident edge of both children.
	for _, x := range [2]rag.NodeID{a, b} {
		for _, ne := range m.g.IncEdges(x) {
			if ne == e || m.g.Removed(ne) {
				continue
			}
			cur := m.g.Edge(ne)
			if cur.U != x && cur.V != x {
				// Dangling incidence entry: ne was moved off x earlier.
				continue
			}
			y := m.g.Opposite(x, ne)
			if !m.isRoot(y) {
				continue
			}

			prev := m.g.FindEdge(c, y)
			if prev == rag.NoEdge {
				// Case A: first sighting of neighbor y. Retarget in place;
				// the edge keeps its queue entry and is rescored when it
				// surfaces.
				_ = m.g.MoveEdge(ne, c, y)
				m.stale.Set(ne, true)
				continue
			}

			// Case B: second sighting - ne and prev are now parallel. The
			// edge with the smaller current score survives and absorbs the
			// other's statistics; equal scores keep the already-moved one.
			keep, drop := prev, ne
			if m.scores.Get(ne) < m.scores.Get(prev) {
				keep, drop = ne, prev
			}
			for _, obs := range m.observers {
				obs.NotifyEdgeMerge(drop, keep)
			}
			m.fn.NotifyEdgeMerge(drop, keep)
			if keep == ne {
				_ = m.g.MoveEdge(ne, c, y)
			}
			_ = m.g.RemoveEdge(drop)
			m.stale.Set(keep, true)
		}
	}

	// 4) The merged edge itself is consumed.
	_ = m.g.RemoveEdge(e)
}
