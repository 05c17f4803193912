package stats

// This file declares the capability interfaces providers implement a subset
// of, and the Ingest union consumed by RAG extraction.

import "github.com/katalvlaran/lvlseg/rag"

// EdgeInitializer is implemented by providers that initialize per-edge
// state when the graph grows an edge during RAG extraction.
type EdgeInitializer interface {
	// NotifyNewEdge initializes the provider's state for edge e.
	NotifyNewEdge(e rag.EdgeID)
}

// AffinityIngester is implemented by providers that accumulate raw affinity
// samples during RAG extraction.
type AffinityIngester interface {
	// AddAffinity folds one affinity sample in [0,1] into edge e.
	AddAffinity(e rag.EdgeID, aff float64)
}

// VoxelIngester is implemented by providers that accumulate voxels into
// node statistics during RAG extraction.
type VoxelIngester interface {
	// AddVoxel folds the voxel at (x,y,z) into node n.
	AddVoxel(n rag.NodeID, x, y, z int)
}

// NodeMerger is implemented by providers with per-node state that must be
// folded when region "from" is merged into region "to". The return value
// reports whether a dependent score may have changed.
type NodeMerger interface {
	NotifyNodeMerge(from, to rag.NodeID) bool
}

// EdgeMerger is implemented by providers with per-edge state that must be
// folded when edge "from" is absorbed by the parallel edge "to". The return
// value reports whether the statistic of "to" changed.
type EdgeMerger interface {
	NotifyEdgeMerge(from, to rag.EdgeID) bool
}

// Ingest is the callback set RAG extraction drives. Compound implements it
// for any collection of providers.
type Ingest interface {
	EdgeInitializer
	AffinityIngester
	VoxelIngester
}
