package stats

// This file implements the compound provider: a capability-sorted bundle of
// child providers. Children are type-switched once at construction, so the
// per-callback forwarding loops touch only the children that care.

import "github.com/katalvlaran/lvlseg/rag"

// Compound bundles providers and forwards every callback to each child
// that declares the matching capability. It offers the union of the
// children's capabilities: it implements Ingest for RAG extraction and the
// merge engine's observer contract, so one bundle keeps every provider
// fed during extraction and folded across merges.
type Compound struct {
	inits       []EdgeInitializer
	affinities  []AffinityIngester
	voxels      []VoxelIngester
	nodeMergers []NodeMerger
	edgeMergers []EdgeMerger
}

// NewCompound bundles the given providers. A child may implement any
// subset of the capability interfaces; forwarding preserves argument order.
func NewCompound(children ...any) *Compound {
	c := &Compound{}
	for _, child := range children {
		if p, ok := child.(EdgeInitializer); ok {
			c.inits = append(c.inits, p)
		}
		if p, ok := child.(AffinityIngester); ok {
			c.affinities = append(c.affinities, p)
		}
		if p, ok := child.(VoxelIngester); ok {
			c.voxels = append(c.voxels, p)
		}
		if p, ok := child.(NodeMerger); ok {
			c.nodeMergers = append(c.nodeMergers, p)
		}
		if p, ok := child.(EdgeMerger); ok {
			c.edgeMergers = append(c.edgeMergers, p)
		}
	}
	return c
}

// NotifyNewEdge forwards to every child with per-edge initialization.
func (c *Compound) NotifyNewEdge(e rag.EdgeID) {
	for _, p := range c.inits {
		p.NotifyNewEdge(e)
	}
}

// AddAffinity forwards one sample to every affinity-ingesting child.
func (c *Compound) AddAffinity(e rag.EdgeID, aff float64) {
	for _, p := range c.affinities {
		p.AddAffinity(e, aff)
	}
}

// AddVoxel forwards one voxel to every voxel-ingesting child.
func (c *Compound) AddVoxel(n rag.NodeID, x, y, z int) {
	for _, p := range c.voxels {
		p.AddVoxel(n, x, y, z)
	}
}

// NotifyNodeMerge forwards a node merge to every node-merging child.
// Reports whether any child changed.
func (c *Compound) NotifyNodeMerge(from, to rag.NodeID) bool {
	changed := false
	for _, p := range c.nodeMergers {
		if p.NotifyNodeMerge(from, to) {
			changed = true
		}
	}
	return changed
}

// NotifyEdgeMerge forwards an edge merge to every edge-merging child.
// Reports whether any child changed.
func (c *Compound) NotifyEdgeMerge(from, to rag.EdgeID) bool {
	changed := false
	for _, p := range c.edgeMergers {
		if p.NotifyEdgeMerge(from, to) {
			changed = true
		}
	}
	return changed
}
