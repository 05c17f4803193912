package rag_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvlseg/rag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTriangle constructs a graph over fragments 1,2,3 with edges
// (1,2)=e0, (2,3)=e1, (1,3)=e2.
func buildTriangle(t *testing.T) *rag.RegionGraph {
	t.Helper()
	g := rag.NewRegionGraph(4)
	for _, pair := range [][2]rag.NodeID{{1, 2}, {2, 3}, {1, 3}} {
		_, err := g.AddEdge(pair[0], pair[1])
		require.NoError(t, err)
	}
	return g
}

// TestAddEdge_Errors verifies endpoint validation.
func TestAddEdge_Errors(t *testing.T) {
	g := rag.NewRegionGraph(3)
	cases := []struct {
		name string
		u, v rag.NodeID
		err  error
	}{
		{"BackgroundU", 0, 1, rag.ErrBackgroundNode},
		{"BackgroundV", 2, 0, rag.ErrBackgroundNode},
		{"OutOfRangeU", 7, 1, rag.ErrNodeOutOfRange},
		{"OutOfRangeV", 1, 3, rag.ErrNodeOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := g.AddEdge(tc.u, tc.v)
			if !errors.Is(err, tc.err) {
				t.Errorf("AddEdge(%d,%d) error = %v; want %v", tc.u, tc.v, err, tc.err)
			}
		})
	}
}

// TestAddEdge_DenseIDs verifies monotonic, dense edge id assignment and
// incidence bookkeeping.
func TestAddEdge_DenseIDs(t *testing.T) {
	g := buildTriangle(t)
	assert.Equal(t, 3, g.NumEdges())
	assert.Equal(t, rag.Edge{U: 1, V: 2}, g.Edge(0))
	assert.Equal(t, rag.Edge{U: 2, V: 3}, g.Edge(1))
	assert.ElementsMatch(t, []rag.EdgeID{0, 2}, g.IncEdges(1))
	assert.ElementsMatch(t, []rag.EdgeID{0, 1}, g.IncEdges(2))
}

// TestFindEdge covers unordered matching, removal filtering, and the
// smaller-incidence-list scan.
func TestFindEdge(t *testing.T) {
	g := buildTriangle(t)

	// Unordered lookup in both argument orders.
	assert.Equal(t, rag.EdgeID(0), g.FindEdge(1, 2))
	assert.Equal(t, rag.EdgeID(0), g.FindEdge(2, 1))
	assert.Equal(t, rag.EdgeID(2), g.FindEdge(3, 1))

	// Missing pair.
	n := g.AddNode()
	assert.Equal(t, rag.NoEdge, g.FindEdge(1, n))

	// Removed edges are invisible.
	require.NoError(t, g.RemoveEdge(0))
	assert.Equal(t, rag.NoEdge, g.FindEdge(1, 2))
	assert.True(t, g.Removed(0))
}

// TestMoveEdge verifies eager incidence updates on the new endpoints and
// dangling entries on the old ones.
func TestMoveEdge(t *testing.T) {
	g := buildTriangle(t)
	c := g.AddNode() // cluster node 4

	// Move (2,3) to (c,3): the edge keeps its id, c sees it immediately.
	require.NoError(t, g.MoveEdge(1, c, 3))
	assert.Equal(t, rag.Edge{U: c, V: 3}, g.Edge(1))
	assert.Equal(t, rag.EdgeID(1), g.FindEdge(c, 3))

	// Old endpoint 2 keeps a dangling entry; FindEdge no longer matches it.
	assert.Contains(t, g.IncEdges(2), rag.EdgeID(1))
	assert.Equal(t, rag.NoEdge, g.FindEdge(2, 3))

	// Opposite follows the new endpoints.
	assert.Equal(t, rag.NodeID(3), g.Opposite(c, 1))
	assert.Equal(t, c, g.Opposite(3, 1))
}

// TestMoveEdge_KeepsSharedEndpoint checks that moving an edge that keeps
// one endpoint does not duplicate its incidence entry.
func TestMoveEdge_KeepsSharedEndpoint(t *testing.T) {
	g := buildTriangle(t)
	c := g.AddNode()

	require.NoError(t, g.MoveEdge(0, c, 2)) // (1,2) → (c,2)
	count := 0
	for _, e := range g.IncEdges(2) {
		if e == 0 {
			count++
		}
	}
	assert.Equal(t, 1, count, "endpoint 2 must list edge 0 exactly once")
}

// TestAddNode verifies monotonic node allocation.
func TestAddNode(t *testing.T) {
	g := rag.NewRegionGraph(5)
	assert.Equal(t, rag.NodeID(5), g.AddNode())
	assert.Equal(t, rag.NodeID(6), g.AddNode())
	assert.Equal(t, uint64(7), g.NumNodes())
}
