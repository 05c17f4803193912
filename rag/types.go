package rag

// This file declares the identifier types, the Edge value type, and the
// sentinel errors shared by the region adjacency graph and its attribute
// maps.

import "errors"

// Sentinel errors for region graph operations.
var (
	// ErrNodeOutOfRange indicates an endpoint does not name an existing node.
	ErrNodeOutOfRange = errors.New("rag: node id out of range")
	// ErrEdgeOutOfRange indicates an edge id does not name an existing edge.
	ErrEdgeOutOfRange = errors.New("rag: edge id out of range")
	// ErrBackgroundNode indicates an endpoint is the reserved background id 0.
	ErrBackgroundNode = errors.New("rag: background node 0 cannot carry edges")
)

// NodeID identifies a region: an initial watershed fragment (1..N) or a
// cluster created by a merge (>N). 0 is the reserved background label.
type NodeID uint64

// EdgeID indexes an edge densely from 0. Edge ids are never reused.
type EdgeID int

// NoEdge is the sentinel returned by FindEdge when no live edge connects
// the requested endpoints.
const NoEdge EdgeID = -1

// Edge is the endpoint pair of a RAG edge. Endpoints are unordered: an edge
// {u,v} may be stored as (u,v) or (v,u); comparisons must use the unordered
// pair.
type Edge struct {
	// U is one endpoint of the edge.
	U NodeID
	// V is the other endpoint.
	V NodeID
}
