package rag

// RegionGraph is the region adjacency graph: an undirected graph over dense
// NodeIDs with dense, never-reused EdgeIDs.
//
// The zero value is not usable; construct with NewRegionGraph. The graph
// grows monotonically: AddNode and AddEdge append, RemoveEdge only flags,
// and MoveEdge retargets endpoints in place. Registered growth subscribers
// (see OnNewNode/OnNewEdge) are invoked synchronously on every append so
// attribute maps stay index-aligned with the graph.
type RegionGraph struct {
	// numNodes counts allocated nodes, including the background node 0.
	numNodes NodeID

	// edges holds the current endpoints of every edge ever added.
	edges []Edge

	// removed flags logically deleted edges. Indexed by EdgeID.
	removed []bool

	// incEdges[n] lists edge ids that were at some point incident to n.
	// Entries become dangling when an edge is moved away or removed;
	// readers re-check endpoints and the removed flag.
	incEdges [][]EdgeID

	// growth subscribers, invoked in registration order.
	nodeSubs []func(NodeID)
	edgeSubs []func(EdgeID)
}

// NewRegionGraph creates a RegionGraph holding nodes 0..numNodes-1 and no
// edges. Node 0 is the background and must not be used as an endpoint;
// initial fragments are expected to occupy 1..numNodes-1.
// Complexity: O(numNodes).
func NewRegionGraph(numNodes uint64) *RegionGraph {
	return &RegionGraph{
		numNodes: NodeID(numNodes),
		incEdges: make([][]EdgeID, numNodes),
	}
}

// NumNodes returns the number of allocated nodes, background included.
// Complexity: O(1).
func (g *RegionGraph) NumNodes() uint64 { return uint64(g.numNodes) }

// NumEdges returns the number of edges ever added, removed ones included.
// Complexity: O(1).
func (g *RegionGraph) NumEdges() int { return len(g.edges) }

// AddNode appends a new node and returns its id. Every registered node map
// is extended by one zero value before AddNode returns.
// Complexity: O(1) amortized plus subscriber work.
func (g *RegionGraph) AddNode() NodeID {
	id := g.numNodes
	g.numNodes++
	g.incEdges = append(g.incEdges, nil)
	for _, sub := range g.nodeSubs {
		sub(id)
	}
	return id
}

// AddEdge appends the edge {u,v}, updates both incidence lists, extends
// every registered edge map, and returns the new edge id. The caller
// guarantees that no live edge with the same unordered endpoints exists.
// Returns ErrBackgroundNode or ErrNodeOutOfRange on invalid endpoints.
// Complexity: O(1) amortized plus subscriber work.
func (g *RegionGraph) AddEdge(u, v NodeID) (EdgeID, error) {
	if u == 0 || v == 0 {
		return NoEdge, ErrBackgroundNode
	}
	if u >= g.numNodes || v >= g.numNodes {
		return NoEdge, ErrNodeOutOfRange
	}
	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, Edge{U: u, V: v})
	g.removed = append(g.removed, false)
	g.incEdges[u] = append(g.incEdges[u], id)
	g.incEdges[v] = append(g.incEdges[v], id)
	for _, sub := range g.edgeSubs {
		sub(id)
	}
	return id, nil
}

// MoveEdge retargets edge e to the endpoints {u,v}. The edge id is
// preserved, the new endpoints' incidence lists are updated eagerly (so a
// subsequent FindEdge on the new endpoints sees e), and the old endpoints'
// lists are left with dangling entries (deferred pruning).
// Complexity: O(1) amortized.
func (g *RegionGraph) MoveEdge(e EdgeID, u, v NodeID) error {
	if e < 0 || int(e) >= len(g.edges) {
		return ErrEdgeOutOfRange
	}
	if u == 0 || v == 0 {
		return ErrBackgroundNode
	}
	if u >= g.numNodes || v >= g.numNodes {
		return ErrNodeOutOfRange
	}
	old := g.edges[e]
	g.edges[e] = Edge{U: u, V: v}
	// Append to the incidence list of each endpoint the edge was not
	// already listed on. An unchanged endpoint keeps its existing entry.
	if u != old.U && u != old.V {
		g.incEdges[u] = append(g.incEdges[u], e)
	}
	if v != old.U && v != old.V {
		g.incEdges[v] = append(g.incEdges[v], e)
	}
	return nil
}

// RemoveEdge flags edge e as deleted. The id remains allocated and the
// incidence lists are not pruned; FindEdge skips removed edges and readers
// of IncEdges check Removed.
// Complexity: O(1).
func (g *RegionGraph) RemoveEdge(e EdgeID) error {
	if e < 0 || int(e) >= len(g.edges) {
		return ErrEdgeOutOfRange
	}
	g.removed[e] = true
	return nil
}

// Removed reports whether edge e has been logically deleted.
// Complexity: O(1).
func (g *RegionGraph) Removed(e EdgeID) bool { return g.removed[e] }

// Edge returns the current endpoints of edge e. The result is a value copy;
// endpoints of a moved edge reflect the move.
// Complexity: O(1).
func (g *RegionGraph) Edge(e EdgeID) Edge { return g.edges[e] }

// IncEdges returns the incidence view of node n: every edge id that was at
// some point incident to n. The returned slice is shared with the graph and
// must not be mutated. It may contain removed edges and edges that have
// since been moved away from n; callers re-check with Removed and Edge.
// Complexity: O(1).
func (g *RegionGraph) IncEdges(n NodeID) []EdgeID { return g.incEdges[n] }

// Opposite returns the endpoint of e that is not n. If n is not an endpoint
// of e, the result is unspecified (callers only ask about incident edges).
// Complexity: O(1).
func (g *RegionGraph) Opposite(n NodeID, e EdgeID) NodeID {
	if g.edges[e].U == n {
		return g.edges[e].V
	}
	return g.edges[e].U
}

// FindEdge returns the id of the live edge with unordered endpoints {u,v},
// or NoEdge if there is none. It scans the smaller of the two incidence
// lists, skipping removed edges and dangling entries whose current
// endpoints no longer match.
// Complexity: O(min(deg(u), deg(v))).
func (g *RegionGraph) FindEdge(u, v NodeID) EdgeID {
	if u >= g.numNodes || v >= g.numNodes {
		return NoEdge
	}
	pool := g.incEdges[u]
	if len(g.incEdges[v]) < len(pool) {
		pool = g.incEdges[v]
	}
	lo, hi := u, v
	if lo > hi {
		lo, hi = hi, lo
	}
	for _, e := range pool {
		if g.removed[e] {
			continue
		}
		eu, ev := g.edges[e].U, g.edges[e].V
		if eu > ev {
			eu, ev = ev, eu
		}
		if eu == lo && ev == hi {
			return e
		}
	}
	return NoEdge
}

// OnNewNode registers fn to be called with the id of every node added after
// this call. Registration order is invocation order. Used by NodeMap; most
// callers never need it directly.
func (g *RegionGraph) OnNewNode(fn func(NodeID)) { g.nodeSubs = append(g.nodeSubs, fn) }

// OnNewEdge registers fn to be called with the id of every edge added after
// this call. Used by EdgeMap.
func (g *RegionGraph) OnNewEdge(fn func(EdgeID)) { g.edgeSubs = append(g.edgeSubs, fn) }
