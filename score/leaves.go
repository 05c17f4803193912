package score

// This file implements the leaf scorers. Each reads one statistics
// provider; the merge callbacks keep exactly the provider state that
// statistic depends on.

import (
	"github.com/katalvlaran/lvlseg/rag"
	"github.com/katalvlaran/lvlseg/stats"
)

// MinSize scores an edge with the voxel count of the smaller incident
// region. Small regions merge first.
type MinSize struct {
	g     *rag.RegionGraph
	sizes *stats.RegionSize
}

// NewMinSize creates a MinSize leaf over the given size provider.
func NewMinSize(g *rag.RegionGraph, sizes *stats.RegionSize) *MinSize {
	return &MinSize{g: g, sizes: sizes}
}

// Score returns min(size(u), size(v)) for the current endpoints of e.
func (s *MinSize) Score(e rag.EdgeID) float64 {
	edge := s.g.Edge(e)
	su, sv := s.sizes.Get(edge.U), s.sizes.Get(edge.V)
	if su < sv {
		return float64(su)
	}
	return float64(sv)
}

// NotifyNodeMerge sets size(c) = size(a) + size(b). Assignment form: safe
// under double notification.
func (s *MinSize) NotifyNodeMerge(a, b, c rag.NodeID) {
	s.sizes.SetSize(c, s.sizes.Get(a)+s.sizes.Get(b))
}

// NotifyEdgeMerge is a no-op: sizes live on nodes.
func (s *MinSize) NotifyEdgeMerge(from, to rag.EdgeID) {}

// MaxSize scores an edge with the voxel count of the larger incident
// region.
type MaxSize struct {
	g     *rag.RegionGraph
	sizes *stats.RegionSize
}

// NewMaxSize creates a MaxSize leaf over the given size provider.
func NewMaxSize(g *rag.RegionGraph, sizes *stats.RegionSize) *MaxSize {
	return &MaxSize{g: g, sizes: sizes}
}

// Score returns max(size(u), size(v)) for the current endpoints of e.
func (s *MaxSize) Score(e rag.EdgeID) float64 {
	edge := s.g.Edge(e)
	su, sv := s.sizes.Get(edge.U), s.sizes.Get(edge.V)
	if su > sv {
		return float64(su)
	}
	return float64(sv)
}

// NotifyNodeMerge sets size(c) = size(a) + size(b).
func (s *MaxSize) NotifyNodeMerge(a, b, c rag.NodeID) {
	s.sizes.SetSize(c, s.sizes.Get(a)+s.sizes.Get(b))
}

// NotifyEdgeMerge is a no-op: sizes live on nodes.
func (s *MaxSize) NotifyEdgeMerge(from, to rag.EdgeID) {}

// EdgeStat scores an edge with the read-out of a per-edge provider and
// forwards parallel-edge merges into it. It backs the affinity leaf
// constructors below; use it directly for custom providers.
type EdgeStat struct {
	p MergingEdgeProvider
}

// NewEdgeStat creates a leaf over any merging per-edge provider.
func NewEdgeStat(p MergingEdgeProvider) *EdgeStat { return &EdgeStat{p: p} }

// Score returns the provider's current statistic for e.
func (s *EdgeStat) Score(e rag.EdgeID) float64 { return s.p.Get(e) }

// NotifyNodeMerge is a no-op: the statistic lives on edges.
func (s *EdgeStat) NotifyNodeMerge(a, b, c rag.NodeID) {}

// NotifyEdgeMerge folds the absorbed edge into the survivor.
func (s *EdgeStat) NotifyEdgeMerge(from, to rag.EdgeID) { s.p.NotifyEdgeMerge(from, to) }

// NewMaxAffinity creates the leaf reading a stats.MaxAffinity provider.
func NewMaxAffinity(p *stats.MaxAffinity) *EdgeStat { return NewEdgeStat(p) }

// NewMinAffinity creates the leaf reading a stats.MinAffinity provider.
func NewMinAffinity(p *stats.MinAffinity) *EdgeStat { return NewEdgeStat(p) }

// NewMeanAffinity creates the leaf reading a stats.MeanAffinity provider.
func NewMeanAffinity(p *stats.MeanAffinity) *EdgeStat { return NewEdgeStat(p) }

// NewQuantileAffinity creates the leaf reading either quantile provider.
func NewQuantileAffinity(p MergingEdgeProvider) *EdgeStat { return NewEdgeStat(p) }

// NewMaxKAffinity creates the leaf reading a stats.MaxKAffinity provider.
func NewMaxKAffinity(p *stats.MaxKAffinity) *EdgeStat { return NewEdgeStat(p) }

// NewRandom creates the leaf reading a stats.Random provider.
func NewRandom(p *stats.Random) *EdgeStat { return NewEdgeStat(p) }

// ContactArea scores an edge with its boundary size in voxel pairs.
type ContactArea struct {
	p *stats.ContactArea
}

// NewContactArea creates the leaf reading a stats.ContactArea provider.
func NewContactArea(p *stats.ContactArea) *ContactArea { return &ContactArea{p: p} }

// Score returns the contact area of e.
func (s *ContactArea) Score(e rag.EdgeID) float64 { return float64(s.p.Get(e)) }

// NotifyNodeMerge is a no-op: contact areas live on edges.
func (s *ContactArea) NotifyNodeMerge(a, b, c rag.NodeID) {}

// NotifyEdgeMerge folds the absorbed edge's contact area into the survivor.
func (s *ContactArea) NotifyEdgeMerge(from, to rag.EdgeID) { s.p.NotifyEdgeMerge(from, to) }

// Const scores every edge with the same constant and ignores merges.
type Const float64

// Score returns the constant.
func (s Const) Score(e rag.EdgeID) float64 { return float64(s) }

// NotifyNodeMerge is a no-op.
func (s Const) NotifyNodeMerge(a, b, c rag.NodeID) {}

// NotifyEdgeMerge is a no-op.
func (s Const) NotifyEdgeMerge(from, to rag.EdgeID) {}
