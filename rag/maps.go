package rag

// This file implements the dense attribute maps. A map subscribes to its
// graph's growth events at construction and appends one zero value per new
// node or edge, so indexing by any id the graph has handed out is always in
// range. Maps are never shrunk; logically deleted edges keep their slots.

// NodeMap is a dense per-node attribute container indexed by NodeID.
// It auto-extends when the graph grows.
type NodeMap[T any] struct {
	values []T
}

// NewNodeMap creates a NodeMap sized to the graph's current node count and
// subscribes it to node growth.
// Complexity: O(NumNodes).
func NewNodeMap[T any](g *RegionGraph) *NodeMap[T] {
	m := &NodeMap[T]{values: make([]T, g.NumNodes())}
	g.OnNewNode(func(NodeID) {
		var zero T
		m.values = append(m.values, zero)
	})
	return m
}

// Get returns the value stored for node n.
// Complexity: O(1). Panics if n was never allocated by the graph.
func (m *NodeMap[T]) Get(n NodeID) T { return m.values[n] }

// Set stores v for node n.
// Complexity: O(1). Panics if n was never allocated by the graph.
func (m *NodeMap[T]) Set(n NodeID, v T) { m.values[n] = v }

// Ptr returns a pointer to the slot of node n, for in-place accumulation.
func (m *NodeMap[T]) Ptr(n NodeID) *T { return &m.values[n] }

// Len returns the number of slots.
func (m *NodeMap[T]) Len() int { return len(m.values) }

// EdgeMap is a dense per-edge attribute container indexed by EdgeID.
// It auto-extends when the graph grows.
type EdgeMap[T any] struct {
	values []T
}

// NewEdgeMap creates an EdgeMap sized to the graph's current edge count and
// subscribes it to edge growth.
// Complexity: O(NumEdges).
func NewEdgeMap[T any](g *RegionGraph) *EdgeMap[T] {
	m := &EdgeMap[T]{values: make([]T, g.NumEdges())}
	g.OnNewEdge(func(EdgeID) {
		var zero T
		m.values = append(m.values, zero)
	})
	return m
}

// Get returns the value stored for edge e.
// Complexity: O(1). Panics if e was never allocated by the graph.
func (m *EdgeMap[T]) Get(e EdgeID) T { return m.values[e] }

// Set stores v for edge e.
// Complexity: O(1). Panics if e was never allocated by the graph.
func (m *EdgeMap[T]) Set(e EdgeID, v T) { m.values[e] = v }

// Ptr returns a pointer to the slot of edge e, for in-place accumulation.
func (m *EdgeMap[T]) Ptr(e EdgeID) *T { return &m.values[e] }

// Len returns the number of slots.
func (m *EdgeMap[T]) Len() int { return len(m.values) }
