// Package lvlseg is an in-memory engine for hierarchical agglomerative
// segmentation of 3D volumetric affinity data.
//
// 🚀 What is lvlseg?
//
//	A pure-Go library that turns an affinity volume and an initial
//	over-segmentation into a family of segmentations, one per score
//	threshold:
//		• Region adjacency graph: dense ids, attribute maps, O(1) growth
//		• Statistics providers: max/min/mean affinity, quantiles (exact
//		  and histogram), top-K means, region sizes, contact areas
//		• Scoring functions: composable operators over the statistics
//		• Iterative region merging: cheapest-first with a lazy priority
//		  queue, stale rescoring, and optimistic edge rewriting
//		• Threshold sweeps: one Relabel pass per emitted segmentation
//
// ✨ Why choose lvlseg?
//
//   - Deterministic – dense ids, ascending-id tie-breaks, seedable
//     randomness
//   - Composable – build scoring functions from small parts, plug in your
//     own statistics
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under six subpackages:
//
//	rag/    - region adjacency graph, node/edge attribute maps
//	stats/  - per-edge and per-node statistics providers
//	score/  - leaf scorers and arithmetic operator composition
//	merge/  - the iterative region-merging engine
//	volume/ - 3D fragment and affinity volumes, RAG extraction
//	agglo/  - threshold-sweep driver
//
// Quick ASCII example:
//
//	    1 1 2 3     fragments (one z-slice)
//	      ↑ ↑
//	     .9 .5      +X affinities across the two boundaries
//
//	merging with (1−maxAffinity)·minSize merges 1|2 first, 2|3 later.
//
// See ExampleSweep in package agglo for a runnable end-to-end walk-through.
//
//	go get github.com/katalvlaran/lvlseg
package lvlseg
