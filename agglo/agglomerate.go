package agglo

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvlseg/merge"
	"github.com/katalvlaran/lvlseg/rag"
	"github.com/katalvlaran/lvlseg/score"
	"github.com/katalvlaran/lvlseg/stats"
	"github.com/katalvlaran/lvlseg/volume"
)

// EmitFunc receives the segmentation extracted at one threshold. The
// volume belongs to the callee after the call; the sweep works on its own
// copy from then on. A non-nil error aborts the sweep.
type EmitFunc func(threshold float64, seg *volume.Fragments) error

// CanonicalScoring builds the default scoring of the driver,
// (1 − maxAffinity) · minSize, over fresh providers registered on g. The
// returned compound bundles both providers: pass it to volume.ExtractRAG
// as the ingest target and to merge.NewMerging as the observer that keeps
// the providers folded across merges.
func CanonicalScoring(g *rag.RegionGraph) (score.Func, *stats.Compound) {
	maxAff := stats.NewMaxAffinity(g)
	sizes := stats.NewRegionSize(g)
	fn := score.Multiply(
		score.OneMinus(score.NewMaxAffinity(maxAff)),
		score.NewMinSize(g, sizes),
	)
	return fn, stats.NewCompound(maxAff, sizes)
}

// Sweep merges until each threshold in turn and emits the segmentation of
// the fragment volume at that merge level. frags itself is never mutated;
// each emitted volume is derived from the previous one, so extraction cost
// is one Relabel pass per threshold.
//
// Preconditions: opts must validate, and the engine must have been built
// on the RAG extracted from frags.
func Sweep(m *merge.Merging, frags *volume.Fragments, opts Options, emit EmitFunc) error {
	if m == nil {
		return ErrNilMerging
	}
	if frags == nil {
		return ErrNilVolume
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	current := frags.Clone()
	for i, threshold := range opts.Thresholds {
		opts.logf(logrus.Fields{
			"threshold": threshold,
			"merges":    len(m.History()),
		}, "merging until threshold")

		if err := m.MergeUntil(threshold); err != nil {
			return err
		}

		opts.logf(logrus.Fields{
			"threshold": threshold,
			"merges":    len(m.History()),
			"voxels":    current.Len(),
		}, "extracting segmentation")

		m.Relabel(current.Labels)

		if emit != nil {
			if err := emit(threshold, current); err != nil {
				return err
			}
		}

		// The emitted volume now belongs to the caller; continue on a copy
		// seeded with this merge level.
		if i < len(opts.Thresholds)-1 {
			current = current.Clone()
		}
	}
	return nil
}

// Agglomerate runs Sweep and collects one segmentation per threshold.
func Agglomerate(m *merge.Merging, frags *volume.Fragments, opts Options) ([]*volume.Fragments, error) {
	segs := make([]*volume.Fragments, 0, len(opts.Thresholds))
	err := Sweep(m, frags, opts, func(_ float64, seg *volume.Fragments) error {
		segs = append(segs, seg)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return segs, nil
}
