package stats

// Histogram is a fixed-bin counter over affinity values discretized to
// [0,1]. The zero value has no bins, so Inc and Bin panic on it; callers
// that construct histograms directly should use NewHistogram.
type Histogram struct {
	counts []int64
	sum    int64
}

// NewHistogram creates an empty histogram with the given number of bins.
func NewHistogram(bins int) Histogram {
	return Histogram{counts: make([]int64, bins)}
}

// Inc increments bin i and the total count.
func (h *Histogram) Inc(i int) {
	h.counts[i]++
	h.sum++
}

// Bin returns the count of bin i.
func (h *Histogram) Bin(i int) int64 { return h.counts[i] }

// Bins returns the number of bins, 0 for the zero value.
func (h *Histogram) Bins() int { return len(h.counts) }

// Sum returns the total number of samples.
func (h *Histogram) Sum() int64 { return h.sum }

// Add folds other into h bin-wise. Bin counts must match.
func (h *Histogram) Add(other *Histogram) {
	for i, c := range other.counts {
		h.counts[i] += c
	}
	h.sum += other.sum
}

// Reset zeroes all bins and the total count, keeping capacity.
func (h *Histogram) Reset() {
	for i := range h.counts {
		h.counts[i] = 0
	}
	h.sum = 0
}

// binOf discretizes an affinity in [0,1] to a bin index: ⌊a·(bins−1)⌋.
func binOf(a float64, bins int) int {
	b := int(a * float64(bins-1))
	if b < 0 {
		b = 0
	}
	if b > bins-1 {
		b = bins - 1
	}
	return b
}

// valueOf un-discretizes a bin index back to an affinity: bin/(bins−1).
func valueOf(bin, bins int) float64 {
	return float64(bin) / float64(bins-1)
}
