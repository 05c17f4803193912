package volume

// This file implements RAG extraction: the single pass over a fragment
// volume that creates the region adjacency graph and feeds the statistics
// providers with voxel and boundary-affinity samples.

import (
	"fmt"

	"github.com/katalvlaran/lvlseg/rag"
	"github.com/katalvlaran/lvlseg/stats"
)

// ExtractRAG scans the fragment volume and populates g and the ingest
// providers:
//
//   - every foreground voxel is counted into its region via AddVoxel;
//   - every axis-neighboring voxel pair (x,y,z)↔predecessor with two
//     different foreground labels yields one AddAffinity sample for the RAG
//     edge {min,max}, creating the edge (AddEdge + NotifyNewEdge) on first
//     sighting.
//
// The graph must already hold nodes for every label in frags (typically
// NewRegionGraph(maxLabel+1)); a larger label returns ErrLabelRange. frags
// and affs must agree on dimensions.
//
// Complexity: O(voxels) time plus O(min-degree) per boundary sample for the
// edge lookup; memory O(edges).
func ExtractRAG(g *rag.RegionGraph, frags *Fragments, affs *Affinities, ingest stats.Ingest) error {
	if frags.Dims != affs.Dims {
		return fmt.Errorf("%w: fragments %v vs affinities %v", ErrShapeMismatch, frags.Dims, affs.Dims)
	}
	if max := frags.MaxLabel(); max >= g.NumNodes() {
		return fmt.Errorf("%w: label %d in a graph of %d nodes", ErrLabelRange, max, g.NumNodes())
	}

	d := frags.Dims
	for z := 0; z < d.D; z++ {
		for y := 0; y < d.H; y++ {
			for x := 0; x < d.W; x++ {
				label := frags.At(x, y, z)
				if label == 0 {
					continue
				}
				ingest.AddVoxel(rag.NodeID(label), x, y, z)

				// One sample per predecessor along each axis.
				if z > 0 {
					if err := boundarySample(g, ingest, label, frags.At(x, y, z-1), affs.At(ChannelZ, x, y, z)); err != nil {
						return err
					}
				}
				if y > 0 {
					if err := boundarySample(g, ingest, label, frags.At(x, y-1, z), affs.At(ChannelY, x, y, z)); err != nil {
						return err
					}
				}
				if x > 0 {
					if err := boundarySample(g, ingest, label, frags.At(x-1, y, z), affs.At(ChannelX, x, y, z)); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

// boundarySample feeds one affinity sample into the edge between two
// labels, creating the edge on first sighting. Same-label and background
// pairs produce nothing.
func boundarySample(g *rag.RegionGraph, ingest stats.Ingest, a, b uint64, aff float64) error {
	if a == b || b == 0 {
		return nil
	}
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	e := g.FindEdge(rag.NodeID(lo), rag.NodeID(hi))
	if e == rag.NoEdge {
		var err error
		if e, err = g.AddEdge(rag.NodeID(lo), rag.NodeID(hi)); err != nil {
			return err
		}
		ingest.NotifyNewEdge(e)
	}
	ingest.AddAffinity(e, aff)
	return nil
}
