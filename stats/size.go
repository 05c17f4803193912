package stats

import "github.com/katalvlaran/lvlseg/rag"

// RegionSize maintains the voxel count of every region. Fragments
// accumulate voxels during RAG extraction (or are seeded from external
// watershed counts via SetSize); clusters receive the sum of their
// children's sizes on merge.
type RegionSize struct {
	sizes *rag.NodeMap[uint64]
}

// NewRegionSize creates a RegionSize provider registered on g.
func NewRegionSize(g *rag.RegionGraph) *RegionSize {
	return &RegionSize{sizes: rag.NewNodeMap[uint64](g)}
}

// AddVoxel counts one voxel into region n. Background voxels (n == 0) are
// ignored.
func (p *RegionSize) AddVoxel(n rag.NodeID, x, y, z int) {
	if n == 0 {
		return
	}
	*p.sizes.Ptr(n)++
}

// SetSize seeds the size of region n, e.g. from the voxel counts an
// external watershed already computed.
func (p *RegionSize) SetSize(n rag.NodeID, size uint64) { p.sizes.Set(n, size) }

// NotifyNodeMerge folds the size of "from" into "to" additively. Always
// reports a change: a grown region changes any size-dependent score.
func (p *RegionSize) NotifyNodeMerge(from, to rag.NodeID) bool {
	*p.sizes.Ptr(to) += p.sizes.Get(from)
	return true
}

// Get returns the current voxel count of region n.
func (p *RegionSize) Get(n rag.NodeID) uint64 { return p.sizes.Get(n) }

// ContactArea maintains the number of boundary voxel pairs per edge - the
// contact area between the two regions in affinity samples.
type ContactArea struct {
	counts *rag.EdgeMap[uint64]
}

// NewContactArea creates a ContactArea provider registered on g.
func NewContactArea(g *rag.RegionGraph) *ContactArea {
	return &ContactArea{counts: rag.NewEdgeMap[uint64](g)}
}

// AddAffinity counts one boundary sample for edge e; the value itself is
// not used.
func (p *ContactArea) AddAffinity(e rag.EdgeID, aff float64) {
	*p.counts.Ptr(e)++
}

// NotifyEdgeMerge folds the contact area of "from" into "to" additively.
func (p *ContactArea) NotifyEdgeMerge(from, to rag.EdgeID) bool {
	c := p.counts.Get(from)
	if c == 0 {
		return false
	}
	*p.counts.Ptr(to) += c
	p.counts.Set(from, 0)
	return true
}

// Get returns the contact area of edge e in boundary voxel pairs.
func (p *ContactArea) Get(e rag.EdgeID) uint64 { return p.counts.Get(e) }
