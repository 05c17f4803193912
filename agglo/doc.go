// Package agglo is the thin driver of the segmentation pipeline: it sweeps
// an ascending sequence of score thresholds over a merging engine and
// materializes one segmentation volume per threshold.
//
// The two entry points differ only in how results leave the sweep:
//
//   - Sweep invokes a callback with each threshold's segmentation, so at
//     most one extra volume is alive at a time - the shape to use for long
//     threshold lists.
//   - Agglomerate collects every segmentation into a slice.
//
// Both rely on the engine's composability guarantee: merging until t₁ and
// then t₂ produces the same history as merging straight to t₂, so each
// threshold continues where the previous one stopped, and each emitted
// volume seeds the next extraction.
//
// CanonicalScoring builds the default (1−maxAffinity)·minSize composition
// together with the provider compound that serves as RAG-extraction ingest
// and as the merge engine's observer.
//
// Progress is logged through a caller-supplied logrus logger (threshold,
// merges performed so far, and the voxel count of the extracted volume); a
// nil logger keeps the sweep silent.
//
// Errors:
//
//	ErrNilMerging         - Sweep received a nil merging engine.
//	ErrNilVolume          - Sweep received a nil fragment volume.
//	ErrNoThresholds       - Options carry no thresholds.
//	ErrUnsortedThresholds - thresholds are not strictly ascending.
package agglo
