package stats

// This file implements the three scalar affinity reductions: maximum,
// minimum, and mean. Each keeps one dense edge map and folds samples and
// parallel-edge merges with the obvious reduction.

import (
	"math"

	"github.com/katalvlaran/lvlseg/rag"
)

// MaxAffinity maintains the maximum affinity sample seen per edge.
type MaxAffinity struct {
	affs *rag.EdgeMap[float64]
}

// NewMaxAffinity creates a MaxAffinity provider registered on g.
func NewMaxAffinity(g *rag.RegionGraph) *MaxAffinity {
	return &MaxAffinity{affs: rag.NewEdgeMap[float64](g)}
}

// NotifyNewEdge initializes the maximum of edge e to 0, the smallest legal
// affinity.
func (p *MaxAffinity) NotifyNewEdge(e rag.EdgeID) { p.affs.Set(e, 0) }

// AddAffinity folds one sample into the running maximum of edge e.
func (p *MaxAffinity) AddAffinity(e rag.EdgeID, aff float64) {
	if aff > p.affs.Get(e) {
		p.affs.Set(e, aff)
	}
}

// NotifyEdgeMerge folds the maximum of "from" into "to". Reports whether
// the maximum of "to" grew.
func (p *MaxAffinity) NotifyEdgeMerge(from, to rag.EdgeID) bool {
	if p.affs.Get(from) <= p.affs.Get(to) {
		return false
	}
	p.affs.Set(to, p.affs.Get(from))
	return true
}

// Get returns the current maximum affinity of edge e.
func (p *MaxAffinity) Get(e rag.EdgeID) float64 { return p.affs.Get(e) }

// MinAffinity maintains the minimum affinity sample seen per edge.
type MinAffinity struct {
	affs *rag.EdgeMap[float64]
}

// NewMinAffinity creates a MinAffinity provider registered on g.
func NewMinAffinity(g *rag.RegionGraph) *MinAffinity {
	return &MinAffinity{affs: rag.NewEdgeMap[float64](g)}
}

// NotifyNewEdge initializes the minimum of edge e to +Inf.
func (p *MinAffinity) NotifyNewEdge(e rag.EdgeID) { p.affs.Set(e, math.Inf(1)) }

// AddAffinity folds one sample into the running minimum of edge e.
func (p *MinAffinity) AddAffinity(e rag.EdgeID, aff float64) {
	if aff < p.affs.Get(e) {
		p.affs.Set(e, aff)
	}
}

// NotifyEdgeMerge folds the minimum of "from" into "to". Reports whether
// the minimum of "to" dropped.
func (p *MinAffinity) NotifyEdgeMerge(from, to rag.EdgeID) bool {
	if p.affs.Get(from) >= p.affs.Get(to) {
		return false
	}
	p.affs.Set(to, p.affs.Get(from))
	return true
}

// Get returns the current minimum affinity of edge e.
func (p *MinAffinity) Get(e rag.EdgeID) float64 { return p.affs.Get(e) }

// meanAcc is the per-edge accumulator of MeanAffinity.
type meanAcc struct {
	sum float64
	n   uint64
}

// MeanAffinity maintains the running mean of the affinity samples per edge.
type MeanAffinity struct {
	accs *rag.EdgeMap[meanAcc]
}

// NewMeanAffinity creates a MeanAffinity provider registered on g.
func NewMeanAffinity(g *rag.RegionGraph) *MeanAffinity {
	return &MeanAffinity{accs: rag.NewEdgeMap[meanAcc](g)}
}

// AddAffinity folds one sample into the accumulator of edge e.
func (p *MeanAffinity) AddAffinity(e rag.EdgeID, aff float64) {
	acc := p.accs.Ptr(e)
	acc.sum += aff
	acc.n++
}

// NotifyEdgeMerge folds the accumulator of "from" into "to" additively and
// clears "from". Reports whether "to" absorbed any samples.
func (p *MeanAffinity) NotifyEdgeMerge(from, to rag.EdgeID) bool {
	f := p.accs.Ptr(from)
	if f.n == 0 {
		return false
	}
	t := p.accs.Ptr(to)
	t.sum += f.sum
	t.n += f.n
	*f = meanAcc{}
	return true
}

// Get returns the mean affinity of edge e. Panics if e never received a
// sample.
func (p *MeanAffinity) Get(e rag.EdgeID) float64 {
	acc := p.accs.Get(e)
	if acc.n == 0 {
		panic("stats: mean affinity of edge without samples")
	}
	return acc.sum / float64(acc.n)
}

// Count returns the number of samples folded into edge e.
func (p *MeanAffinity) Count(e rag.EdgeID) uint64 { return p.accs.Get(e).n }
