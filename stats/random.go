package stats

// This file implements the random provider used by stochastic scoring
// experiments. A draw happens once per edge, so the statistic is pure
// between merges as the scoring contract requires.

import (
	"math/rand"

	"github.com/katalvlaran/lvlseg/rag"
)

// Random assigns every edge one uniform value in [0,1), drawn when the edge
// is announced. Deterministic for a fixed seed and edge creation order.
type Random struct {
	rnd  *rand.Rand
	vals *rag.EdgeMap[float64]
}

// NewRandom creates a Random provider registered on g, seeded with seed.
func NewRandom(g *rag.RegionGraph, seed int64) *Random {
	return &Random{
		rnd:  rand.New(rand.NewSource(seed)),
		vals: rag.NewEdgeMap[float64](g),
	}
}

// NotifyNewEdge draws the value of edge e.
func (p *Random) NotifyNewEdge(e rag.EdgeID) { p.vals.Set(e, p.rnd.Float64()) }

// NotifyEdgeMerge keeps the value of "to" - the surviving edge keeps its
// draw. Never a score change.
func (p *Random) NotifyEdgeMerge(from, to rag.EdgeID) bool {
	return false
}

// Get returns the value drawn for edge e.
func (p *Random) Get(e rag.EdgeID) float64 { return p.vals.Get(e) }
