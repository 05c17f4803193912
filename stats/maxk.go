package stats

// This file implements the top-K affinity provider. Each edge keeps its K
// largest samples in a small min-heap: the root is the smallest retained
// sample, so a new sample either replaces the root or is dropped in O(log K).

import "github.com/katalvlaran/lvlseg/rag"

// MaxKAffinity maintains the K largest affinity samples per edge and
// reports their mean.
type MaxKAffinity struct {
	k    int
	tops *rag.EdgeMap[[]float64]
}

// NewMaxKAffinity creates a MaxKAffinity provider registered on g. k must
// be positive.
func NewMaxKAffinity(g *rag.RegionGraph, k int) *MaxKAffinity {
	if k <= 0 {
		panic("stats: MaxKAffinity requires k > 0")
	}
	return &MaxKAffinity{k: k, tops: rag.NewEdgeMap[[]float64](g)}
}

// AddAffinity offers one sample to the top-K heap of edge e.
func (p *MaxKAffinity) AddAffinity(e rag.EdgeID, aff float64) {
	top := p.tops.Ptr(e)
	*top = offerTopK(*top, aff, p.k)
}

// NotifyEdgeMerge offers every retained sample of "from" to "to" and clears
// "from". Reports whether any samples were offered.
func (p *MaxKAffinity) NotifyEdgeMerge(from, to rag.EdgeID) bool {
	f := p.tops.Ptr(from)
	if len(*f) == 0 {
		return false
	}
	t := p.tops.Ptr(to)
	for _, aff := range *f {
		*t = offerTopK(*t, aff, p.k)
	}
	*f = nil
	return true
}

// Get returns the mean of the retained samples of edge e - the K largest
// seen, or all of them while fewer than K arrived. Panics if e never
// received a sample.
func (p *MaxKAffinity) Get(e rag.EdgeID) float64 {
	top := p.tops.Get(e)
	if len(top) == 0 {
		panic("stats: top-K affinity of edge without samples")
	}
	var sum float64
	for _, aff := range top {
		sum += aff
	}
	return sum / float64(len(top))
}

// Count returns the number of samples retained for edge e (at most K).
func (p *MaxKAffinity) Count(e rag.EdgeID) int { return len(p.tops.Get(e)) }

// offerTopK inserts aff into the min-heap h of capacity k, evicting the
// smallest retained sample when full and aff beats it.
func offerTopK(h []float64, aff float64, k int) []float64 {
	if len(h) < k {
		h = append(h, aff)
		siftUp(h, len(h)-1)
		return h
	}
	if aff <= h[0] {
		return h
	}
	h[0] = aff
	siftDown(h, 0)
	return h
}

// siftUp restores the min-heap property after appending at index i.
func siftUp(h []float64, i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h[parent] <= h[i] {
			return
		}
		h[parent], h[i] = h[i], h[parent]
		i = parent
	}
}

// siftDown restores the min-heap property after replacing the root.
func siftDown(h []float64, i int) {
	n := len(h)
	for {
		left, right := 2*i+1, 2*i+2
		smallest := i
		if left < n && h[left] < h[smallest] {
			smallest = left
		}
		if right < n && h[right] < h[smallest] {
			smallest = right
		}
		if smallest == i {
			return
		}
		h[i], h[smallest] = h[smallest], h[i]
		i = smallest
	}
}
