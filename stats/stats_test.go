package stats_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/lvlseg/rag"
	"github.com/katalvlaran/lvlseg/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newGraphWithEdges builds a graph over n fragments and the given endpoint
// pairs, returning the graph and the edge ids in insertion order.
func newGraphWithEdges(t *testing.T, n uint64, pairs [][2]rag.NodeID) (*rag.RegionGraph, []rag.EdgeID) {
	t.Helper()
	g := rag.NewRegionGraph(n)
	ids := make([]rag.EdgeID, 0, len(pairs))
	for _, pr := range pairs {
		e, err := g.AddEdge(pr[0], pr[1])
		require.NoError(t, err)
		ids = append(ids, e)
	}
	return g, ids
}

// TestMaxAffinity covers init, ingest, and parallel-edge folding.
func TestMaxAffinity(t *testing.T) {
	g, es := newGraphWithEdges(t, 4, [][2]rag.NodeID{{1, 2}, {2, 3}})
	p := stats.NewMaxAffinity(g)
	for _, e := range es {
		p.NotifyNewEdge(e)
	}

	p.AddAffinity(es[0], 0.3)
	p.AddAffinity(es[0], 0.7)
	p.AddAffinity(es[0], 0.5)
	assert.Equal(t, 0.7, p.Get(es[0]))

	p.AddAffinity(es[1], 0.9)
	assert.True(t, p.NotifyEdgeMerge(es[1], es[0]), "larger max must report change")
	assert.Equal(t, 0.9, p.Get(es[0]))
	assert.False(t, p.NotifyEdgeMerge(es[1], es[0]), "no change the second time")
}

// TestMinAffinity covers the +Inf init and min folding.
func TestMinAffinity(t *testing.T) {
	g, es := newGraphWithEdges(t, 4, [][2]rag.NodeID{{1, 2}, {2, 3}})
	p := stats.NewMinAffinity(g)
	for _, e := range es {
		p.NotifyNewEdge(e)
	}
	assert.True(t, math.IsInf(p.Get(es[0]), 1), "fresh edge starts at +Inf")

	p.AddAffinity(es[0], 0.6)
	p.AddAffinity(es[0], 0.4)
	assert.Equal(t, 0.4, p.Get(es[0]))

	p.AddAffinity(es[1], 0.2)
	assert.True(t, p.NotifyEdgeMerge(es[1], es[0]))
	assert.Equal(t, 0.2, p.Get(es[0]))
}

// TestMeanAffinity covers the running mean and additive merge.
func TestMeanAffinity(t *testing.T) {
	g, es := newGraphWithEdges(t, 4, [][2]rag.NodeID{{1, 2}, {2, 3}})
	p := stats.NewMeanAffinity(g)

	p.AddAffinity(es[0], 0.2)
	p.AddAffinity(es[0], 0.4)
	assert.InDelta(t, 0.3, p.Get(es[0]), 1e-12)

	p.AddAffinity(es[1], 0.9)
	assert.True(t, p.NotifyEdgeMerge(es[1], es[0]))
	assert.InDelta(t, 0.5, p.Get(es[0]), 1e-12)
	assert.Equal(t, uint64(3), p.Count(es[0]))

	assert.Panics(t, func() { p.Get(es[1]) }, "cleared edge has no samples")
}

// TestRegionSize covers voxel counting, seeding, and additive node merges.
func TestRegionSize(t *testing.T) {
	g := rag.NewRegionGraph(4)
	p := stats.NewRegionSize(g)

	p.AddVoxel(1, 0, 0, 0)
	p.AddVoxel(1, 1, 0, 0)
	p.AddVoxel(0, 2, 0, 0) // background, ignored
	p.SetSize(2, 7)
	assert.Equal(t, uint64(2), p.Get(1))
	assert.Equal(t, uint64(7), p.Get(2))

	c := g.AddNode()
	assert.True(t, p.NotifyNodeMerge(1, c))
	assert.True(t, p.NotifyNodeMerge(2, c))
	assert.Equal(t, uint64(9), p.Get(c), "size(cluster) = size(a) + size(b)")
}

// TestQuantileExact_S6 is scenario S6: samples {0.1..0.5}, Q=50 yields
// values[⌊4·50/100⌋] = values[2] = 0.3.
func TestQuantileExact_S6(t *testing.T) {
	g, es := newGraphWithEdges(t, 3, [][2]rag.NodeID{{1, 2}})
	p := stats.NewQuantileExact(g, 50)
	for _, a := range []float64{0.5, 0.1, 0.4, 0.2, 0.3} {
		p.AddAffinity(es[0], a)
	}
	assert.Equal(t, 0.3, p.Get(es[0]))
}

// TestQuantileExact_Merge verifies concatenation on edge merge and the
// floor indexing on even counts.
func TestQuantileExact_Merge(t *testing.T) {
	g, es := newGraphWithEdges(t, 4, [][2]rag.NodeID{{1, 2}, {2, 3}})
	p := stats.NewQuantileExact(g, 50)
	p.AddAffinity(es[0], 0.1)
	p.AddAffinity(es[0], 0.2)
	p.AddAffinity(es[1], 0.3)
	p.AddAffinity(es[1], 0.4)

	require.True(t, p.NotifyEdgeMerge(es[1], es[0]))
	assert.Equal(t, 4, p.Count(es[0]))
	assert.Equal(t, 0, p.Count(es[1]))
	// Sorted {0.1,0.2,0.3,0.4}, index ⌊3·50/100⌋ = 1 → 0.2.
	assert.Equal(t, 0.2, p.Get(es[0]))

	assert.Panics(t, func() { p.Get(es[1]) })
}

// TestQuantileExact_AgainstSort cross-checks the selection against a full
// sort on random data.
func TestQuantileExact_AgainstSort(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for _, q := range []int{0, 25, 50, 75, 100} {
		g, es := newGraphWithEdges(t, 3, [][2]rag.NodeID{{1, 2}})
		p := stats.NewQuantileExact(g, q)
		vals := make([]float64, 101)
		for i := range vals {
			vals[i] = r.Float64()
			p.AddAffinity(es[0], vals[i])
		}
		sort.Float64s(vals)
		want := vals[(len(vals)-1)*q/100]
		assert.Equalf(t, want, p.Get(es[0]), "q=%d", q)
	}
}

// TestQuantileHistogram_S6 is the histogram half of scenario S6: with 256
// bins the reported median of {0.1..0.5} is 0.3 within one bin.
func TestQuantileHistogram_S6(t *testing.T) {
	g, es := newGraphWithEdges(t, 3, [][2]rag.NodeID{{1, 2}})
	p := stats.NewQuantileHistogram(g, 50)
	p.NotifyNewEdge(es[0])
	for _, a := range []float64{0.1, 0.2, 0.3, 0.4, 0.5} {
		p.AddAffinity(es[0], a)
	}
	assert.InDelta(t, 0.3, p.Get(es[0]), 1.0/255.0)
}

// TestQuantileHistogram_Converges is property 6: the histogram quantile of
// uniform samples converges to the true quantile.
func TestQuantileHistogram_Converges(t *testing.T) {
	g, es := newGraphWithEdges(t, 3, [][2]rag.NodeID{{1, 2}})
	p := stats.NewQuantileHistogram(g, 75)
	p.NotifyNewEdge(es[0])
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 100000; i++ {
		p.AddAffinity(es[0], r.Float64())
	}
	assert.InDelta(t, 0.75, p.Get(es[0]), 0.01)
}

// TestQuantileHistogram_Merge verifies bin-wise addition.
func TestQuantileHistogram_Merge(t *testing.T) {
	g, es := newGraphWithEdges(t, 4, [][2]rag.NodeID{{1, 2}, {2, 3}})
	p := stats.NewQuantileHistogram(g, 50)
	p.NotifyNewEdge(es[0])
	p.NotifyNewEdge(es[1])
	p.AddAffinity(es[0], 0.1)
	p.AddAffinity(es[1], 0.9)

	require.True(t, p.NotifyEdgeMerge(es[1], es[0]))
	assert.Equal(t, int64(2), p.Count(es[0]))
	assert.Equal(t, int64(0), p.Count(es[1]))
	// Median pivot of 2 samples is 50·2/100+1 = 2 → the larger one.
	assert.InDelta(t, 0.9, p.Get(es[0]), 1.0/255.0)
}

// TestQuantileHistogram_InitWithMax verifies that ingest keeps only samples
// equal to the running maximum.
func TestQuantileHistogram_InitWithMax(t *testing.T) {
	g, es := newGraphWithEdges(t, 3, [][2]rag.NodeID{{1, 2}})
	p := stats.NewQuantileHistogram(g, 50, stats.WithInitWithMax())
	p.NotifyNewEdge(es[0])

	p.AddAffinity(es[0], 0.3)
	p.AddAffinity(es[0], 0.8) // new maximum resets the histogram
	p.AddAffinity(es[0], 0.5) // below the maximum, dropped
	p.AddAffinity(es[0], 0.8) // ties with the maximum, kept

	assert.Equal(t, int64(2), p.Count(es[0]))
	assert.InDelta(t, 0.8, p.Get(es[0]), 1.0/255.0)
}

// TestMaxKAffinity verifies top-K retention, the mean read-out, and merge
// re-offering.
func TestMaxKAffinity(t *testing.T) {
	g, es := newGraphWithEdges(t, 4, [][2]rag.NodeID{{1, 2}, {2, 3}})
	p := stats.NewMaxKAffinity(g, 3)

	for _, a := range []float64{0.1, 0.9, 0.5, 0.7, 0.3} {
		p.AddAffinity(es[0], a)
	}
	// Retained {0.9, 0.7, 0.5}; mean 0.7.
	assert.Equal(t, 3, p.Count(es[0]))
	assert.InDelta(t, 0.7, p.Get(es[0]), 1e-12)

	p.AddAffinity(es[1], 0.8)
	require.True(t, p.NotifyEdgeMerge(es[1], es[0]))
	// Retained {0.9, 0.8, 0.7}; mean 0.8.
	assert.InDelta(t, 0.8, p.Get(es[0]), 1e-12)

	// Fewer than K samples: mean of what arrived.
	g2, es2 := newGraphWithEdges(t, 3, [][2]rag.NodeID{{1, 2}})
	p2 := stats.NewMaxKAffinity(g2, 5)
	p2.AddAffinity(es2[0], 0.2)
	p2.AddAffinity(es2[0], 0.4)
	assert.InDelta(t, 0.3, p2.Get(es2[0]), 1e-12)
}

// TestRandom verifies determinism per seed and purity per edge.
func TestRandom(t *testing.T) {
	g, es := newGraphWithEdges(t, 4, [][2]rag.NodeID{{1, 2}, {2, 3}})
	p := stats.NewRandom(g, 42)
	p.NotifyNewEdge(es[0])
	p.NotifyNewEdge(es[1])

	v0, v1 := p.Get(es[0]), p.Get(es[1])
	assert.GreaterOrEqual(t, v0, 0.0)
	assert.Less(t, v0, 1.0)
	assert.Equal(t, v0, p.Get(es[0]), "repeated reads return the same draw")

	// Same seed, same creation order: same draws.
	g2, es2 := newGraphWithEdges(t, 4, [][2]rag.NodeID{{1, 2}, {2, 3}})
	p2 := stats.NewRandom(g2, 42)
	p2.NotifyNewEdge(es2[0])
	p2.NotifyNewEdge(es2[1])
	assert.Equal(t, v0, p2.Get(es2[0]))
	assert.Equal(t, v1, p2.Get(es2[1]))
}

// TestContactArea verifies sample counting and additive merge.
func TestContactArea(t *testing.T) {
	g, es := newGraphWithEdges(t, 4, [][2]rag.NodeID{{1, 2}, {2, 3}})
	p := stats.NewContactArea(g)
	p.AddAffinity(es[0], 0.5)
	p.AddAffinity(es[0], 0.6)
	p.AddAffinity(es[1], 0.7)

	assert.Equal(t, uint64(2), p.Get(es[0]))
	require.True(t, p.NotifyEdgeMerge(es[1], es[0]))
	assert.Equal(t, uint64(3), p.Get(es[0]))
	assert.Equal(t, uint64(0), p.Get(es[1]))
}

// TestCompound verifies capability-based forwarding and change reporting.
func TestCompound(t *testing.T) {
	g, es := newGraphWithEdges(t, 4, [][2]rag.NodeID{{1, 2}, {2, 3}})
	maxAff := stats.NewMaxAffinity(g)
	sizes := stats.NewRegionSize(g)
	c := stats.NewCompound(maxAff, sizes)

	c.NotifyNewEdge(es[0])
	c.NotifyNewEdge(es[1])
	c.AddAffinity(es[0], 0.4)
	c.AddVoxel(1, 0, 0, 0)

	assert.Equal(t, 0.4, maxAff.Get(es[0]))
	assert.Equal(t, uint64(1), sizes.Get(1))

	cl := g.AddNode()
	assert.True(t, c.NotifyNodeMerge(1, cl), "size fold reports change")

	c.AddAffinity(es[1], 0.9)
	assert.True(t, c.NotifyEdgeMerge(es[1], es[0]), "max fold reports change")
	assert.Equal(t, 0.9, maxAff.Get(es[0]))
}

// BenchmarkQuantileExact measures the selection read-out on a large edge.
func BenchmarkQuantileExact(b *testing.B) {
	g := rag.NewRegionGraph(3)
	e, _ := g.AddEdge(1, 2)
	p := stats.NewQuantileExact(g, 50)
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 4096; i++ {
		p.AddAffinity(e, r.Float64())
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.Get(e)
	}
}

// BenchmarkQuantileHistogram measures the cumulative-scan read-out.
func BenchmarkQuantileHistogram(b *testing.B) {
	g := rag.NewRegionGraph(3)
	e, _ := g.AddEdge(1, 2)
	p := stats.NewQuantileHistogram(g, 50)
	p.NotifyNewEdge(e)
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 4096; i++ {
		p.AddAffinity(e, r.Float64())
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.Get(e)
	}
}
