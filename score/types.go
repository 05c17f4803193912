package score

// This file declares the Func contract and the provider-facing read
// interfaces the leaf scorers build on.

import "github.com/katalvlaran/lvlseg/rag"

// Func is a scoring function: a scalar read-out per edge plus the two merge
// callbacks that keep its internal statistics consistent. The merging
// engine calls NotifyNodeMerge once per merge step and NotifyEdgeMerge once
// per absorbed parallel edge; operator scorers forward both to all
// children.
type Func interface {
	// Score returns the current score of edge e. Deterministic given the
	// current provider state.
	Score(e rag.EdgeID) float64

	// NotifyNodeMerge records that regions a and b were merged into the
	// fresh cluster c.
	NotifyNodeMerge(a, b, c rag.NodeID)

	// NotifyEdgeMerge records that edge "from" was absorbed by the
	// parallel edge "to".
	NotifyEdgeMerge(from, to rag.EdgeID)
}

// EdgeValueProvider is the read side of a per-edge statistic, satisfied by
// the affinity providers of package stats.
type EdgeValueProvider interface {
	Get(e rag.EdgeID) float64
}

// MergingEdgeProvider is an EdgeValueProvider whose state must be folded on
// parallel-edge merges, satisfied by e.g. stats.MaxAffinity and both
// quantile providers.
type MergingEdgeProvider interface {
	EdgeValueProvider
	NotifyEdgeMerge(from, to rag.EdgeID) bool
}
