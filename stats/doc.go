// Package stats provides the pluggable statistics providers that accumulate
// per-edge and per-node state for agglomerative merging.
//
// A provider is a plain struct over rag attribute maps. Instead of one fat
// interface, each provider declares the callbacks it cares about by
// implementing a subset of the capability interfaces:
//
//	EdgeInitializer - NotifyNewEdge(e): initialize per-edge state
//	AffinityIngester - AddAffinity(e, a): fold one raw affinity sample
//	VoxelIngester   - AddVoxel(n, x, y, z): fold one voxel into a node
//	NodeMerger      - NotifyNodeMerge(from, to): fold node state on merge
//	EdgeMerger      - NotifyEdgeMerge(from, to): fold edge state when two
//	                  parallel edges collapse onto one endpoint pair
//
// Compound bundles providers and forwards every callback to each child that
// declares the capability, so RAG extraction needs a single Ingest value no
// matter how many statistics a scoring function consumes.
//
// Variants:
//
//   - MaxAffinity / MinAffinity - trivial max/min reductions per edge.
//   - MeanAffinity - running sum and count per edge.
//   - RegionSize - voxel count per node, folded additively.
//   - QuantileExact - stores every sample; exact quantile via linear-time
//     selection at index ⌊(n−1)·Q/100⌋.
//   - QuantileHistogram - 256-bin (configurable) histogram over [0,1];
//     approximate quantile via the 1-based cumulative pivot Q·sum/100 + 1
//     (capped at sum).
//     WithInitWithMax keeps only samples equal to the running maximum
//     during ingest.
//   - MaxKAffinity - the K largest samples in a fixed-size min-heap; the
//     read-out is their mean.
//   - ContactArea - number of boundary voxel pairs per edge.
//   - Random - one uniform draw in [0,1) per edge, deterministic for a
//     given seed.
//
// Numeric conventions: affinities are assumed in [0,1]. Histogram
// discretization is bin = ⌊a·(B−1)⌋ and un-discretization bin/(B−1).
// The exact quantile uses 0-based floor indexing, the histogram quantile a
// 1-based cumulative pivot; both are documented on their Get methods.
//
// Querying a quantile, mean, or top-K provider on an edge that never
// received a sample is a programming error and panics. RAG extraction
// guarantees at least one sample per edge, so well-formed pipelines never
// hit this.
//
// Providers are not safe for concurrent use, matching the single-threaded
// merging core.
package stats
