package stats

// This file implements the exact quantile provider. Every affinity sample
// contributing to an edge is retained; the read-out partially sorts the
// sample list with a linear-time selection, so repeated queries between
// merges stay cheap once the pivot has settled.

import "github.com/katalvlaran/lvlseg/rag"

// QuantileExact maintains the full sample list per edge and reports the
// exact Q-th percentile.
type QuantileExact struct {
	q       int
	samples *rag.EdgeMap[[]float64]
}

// NewQuantileExact creates an exact quantile provider registered on g.
// q is a percentile in [0,100]; 50 yields the median.
func NewQuantileExact(g *rag.RegionGraph, q int) *QuantileExact {
	return &QuantileExact{q: q, samples: rag.NewEdgeMap[[]float64](g)}
}

// AddAffinity appends one sample to the list of edge e.
func (p *QuantileExact) AddAffinity(e rag.EdgeID, aff float64) {
	s := p.samples.Ptr(e)
	*s = append(*s, aff)
}

// NotifyEdgeMerge concatenates the sample list of "from" onto "to" and
// clears "from" (its samples are not needed anymore). Reports whether any
// samples moved.
func (p *QuantileExact) NotifyEdgeMerge(from, to rag.EdgeID) bool {
	f := p.samples.Ptr(from)
	if len(*f) == 0 {
		return false
	}
	t := p.samples.Ptr(to)
	*t = append(*t, *f...)
	*f = nil
	return true
}

// Get returns the exact Q-th percentile of the samples of edge e, defined
// as the value at 0-based index ⌊(n−1)·Q/100⌋ of the sorted list. The list
// is partitioned in place (linear time, selection only - no full sort).
// Panics if e never received a sample.
func (p *QuantileExact) Get(e rag.EdgeID) float64 {
	s := *p.samples.Ptr(e)
	if len(s) == 0 {
		panic("stats: quantile of edge without samples")
	}
	k := (len(s) - 1) * p.q / 100
	quickselect(s, k)
	return s[k]
}

// Count returns the number of samples retained for edge e.
func (p *QuantileExact) Count(e rag.EdgeID) int { return len(p.samples.Get(e)) }

// quickselect partially sorts s so that s[k] holds the k-th smallest
// element, with everything left of k not larger and everything right of k
// not smaller. Expected linear time via Lomuto partitioning with
// median-of-three pivots; the loop is iterative to bound stack use.
func quickselect(s []float64, k int) {
	lo, hi := 0, len(s)-1
	for lo < hi {
		p := partition(s, lo, hi)
		switch {
		case k == p:
			return
		case k < p:
			hi = p - 1
		default:
			lo = p + 1
		}
	}
}

// partition places the median-of-three pivot of s[lo..hi] at its final
// position and returns that position.
func partition(s []float64, lo, hi int) int {
	mid := lo + (hi-lo)/2
	// Order s[lo], s[mid], s[hi]; the median lands at mid.
	if s[mid] < s[lo] {
		s[mid], s[lo] = s[lo], s[mid]
	}
	if s[hi] < s[lo] {
		s[hi], s[lo] = s[lo], s[hi]
	}
	if s[hi] < s[mid] {
		s[hi], s[mid] = s[mid], s[hi]
	}
	// Park the pivot just before hi and partition the rest.
	s[mid], s[hi-1] = s[hi-1], s[mid]
	pivot := s[hi-1]
	i := lo
	for j := lo; j < hi-1; j++ {
		if s[j] < pivot {
			s[i], s[j] = s[j], s[i]
			i++
		}
	}
	s[i], s[hi-1] = s[hi-1], s[i]
	return i
}
