// Package volume provides the 3D voxel-volume types of the segmentation
// pipeline and the region-adjacency-graph extraction that feeds statistics
// providers.
//
//   - Dims describes a W×H×D grid with row-major indexing (x fastest, then
//     y, then z).
//   - Fragments is a flat volume of region labels: 0 = background, initial
//     fragments numbered consecutively from 1.
//   - Affinities is a flat volume of three edge channels per voxel, in
//     channel order +Z, +Y, +X: channel c at (x,y,z) is the affinity
//     between the voxel and its predecessor along that axis. Values live
//     in [0,1]; 1 means "definitely the same region".
//
// ExtractRAG scans a fragment volume once: every foreground voxel is
// counted into its region (AddVoxel), and every axis-neighboring voxel
// pair with two different foreground labels contributes one affinity
// sample (AddAffinity) to the RAG edge of the unordered label pair,
// creating the edge on first sighting. Edge ids are therefore assigned in
// scan order and deterministic for a given volume.
//
// Errors:
//
//	ErrEmptyVolume   - a dimension is not positive.
//	ErrShapeMismatch - a buffer length does not match its dimensions.
//	ErrBadChannels   - an affinity buffer with a channel count other than 3.
//	ErrBadAffinity   - an affinity value is outside [0,1].
//	ErrLabelRange    - a fragment label exceeds the graph's node range.
package volume
