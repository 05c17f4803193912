package stats

// This file implements the approximate quantile provider. Samples are
// discretized into a fixed-bin histogram, so the per-edge state is constant
// size and parallel-edge merges are a bin-wise addition instead of a list
// concatenation.

import "github.com/katalvlaran/lvlseg/rag"

// DefaultHistogramBins is the bin count used when no option overrides it.
const DefaultHistogramBins = 256

// HistogramOption configures a QuantileHistogram before use.
type HistogramOption func(*QuantileHistogram)

// WithBins overrides the number of histogram bins (default 256).
func WithBins(bins int) HistogramOption {
	return func(p *QuantileHistogram) { p.bins = bins }
}

// WithInitWithMax keeps, during ingest, only the samples equal to the
// running maximum of each edge. Initial edges then report their maximum
// affinity from any quantile, while merged edges fall back to the plain
// bin-wise histogram sum.
func WithInitWithMax() HistogramOption {
	return func(p *QuantileHistogram) { p.initWithMax = true }
}

// QuantileHistogram approximates the Q-th percentile of the affinity
// samples of each edge with a fixed-bin histogram over [0,1].
type QuantileHistogram struct {
	q           int
	bins        int
	initWithMax bool

	hists *rag.EdgeMap[Histogram]
	// maxSeen tracks the running maximum per edge for WithInitWithMax.
	maxSeen *rag.EdgeMap[float64]
}

// NewQuantileHistogram creates a histogram quantile provider registered on
// g. q is a percentile in [0,100].
func NewQuantileHistogram(g *rag.RegionGraph, q int, opts ...HistogramOption) *QuantileHistogram {
	p := &QuantileHistogram{
		q:       q,
		bins:    DefaultHistogramBins,
		hists:   rag.NewEdgeMap[Histogram](g),
		maxSeen: rag.NewEdgeMap[float64](g),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NotifyNewEdge allocates the histogram of edge e.
func (p *QuantileHistogram) NotifyNewEdge(e rag.EdgeID) {
	p.hists.Set(e, NewHistogram(p.bins))
	p.maxSeen.Set(e, -1)
}

// AddAffinity folds one sample into the histogram of edge e. Under
// WithInitWithMax, samples below the running maximum are dropped and a new
// maximum resets the histogram to that single sample.
func (p *QuantileHistogram) AddAffinity(e rag.EdgeID, aff float64) {
	h := p.hists.Ptr(e)
	if h.Bins() == 0 {
		// Edge predates this provider's registration.
		*h = NewHistogram(p.bins)
		p.maxSeen.Set(e, -1)
	}
	if p.initWithMax {
		max := p.maxSeen.Get(e)
		switch {
		case aff > max:
			h.Reset()
			p.maxSeen.Set(e, aff)
		case aff < max:
			return
		}
	}
	h.Inc(binOf(aff, p.bins))
}

// NotifyEdgeMerge adds the histogram of "from" into "to" bin-wise and
// clears "from". Reports whether any samples moved.
func (p *QuantileHistogram) NotifyEdgeMerge(from, to rag.EdgeID) bool {
	f := p.hists.Ptr(from)
	if f.Sum() == 0 {
		return false
	}
	p.hists.Ptr(to).Add(f)
	f.Reset()
	return true
}

// Get returns the approximate Q-th percentile of edge e: the value of the
// first bin whose cumulative count reaches the 1-based pivot
// Q·sum/100 + 1 (capped at sum, so Q = 100 yields the largest sample's
// bin), un-discretized as bin/(bins−1). Panics if e never received a
// sample.
func (p *QuantileHistogram) Get(e rag.EdgeID) float64 {
	h := p.hists.Ptr(e)
	total := h.Sum()
	if total == 0 {
		panic("stats: quantile of edge without samples")
	}
	pivot := int64(p.q)*total/100 + 1
	if pivot > total {
		pivot = total
	}
	var cum int64
	for bin := 0; bin < p.bins; bin++ {
		cum += h.Bin(bin)
		if cum >= pivot {
			return valueOf(bin, p.bins)
		}
	}
	// Unreachable: cum reaches total ≥ pivot by the last bin.
	return valueOf(p.bins-1, p.bins)
}

// Count returns the number of samples currently binned for edge e.
func (p *QuantileHistogram) Count(e rag.EdgeID) int64 { return p.hists.Ptr(e).Sum() }
