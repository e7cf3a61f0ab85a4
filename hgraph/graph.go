// Package hgraph defines the read-only (hyper)graph view consumed by the
// traversal algorithms in this module: vertex and edge identity, endpoint
// resolution, and the directedness flag. It does not define how a graph is
// built or mutated; see the hgraph/simple subpackage for a concrete,
// validated container.
package hgraph

import "errors"

// ErrUnknownVertex is the sentinel for a vertex that is not present in the
// graph. No function in this module returns it, and neither does the Graph
// interface: per-vertex queries on an unknown vertex return an empty
// collection rather than an error.
var ErrUnknownVertex = errors.New("hgraph: unknown vertex")

// Vertex is an opaque, caller-supplied graph vertex. Algorithms compare
// vertices only by ID; they are never mutated.
type Vertex interface {
	ID() int64
}

// Edge is an opaque, caller-supplied graph edge, ordinary or hyper.
// Algorithms compare edges only by ID.
type Edge interface {
	ID() int64
}

// EdgeWeight is a pure function from an edge to a non-negative real weight.
// A nil EdgeWeight means unit weight (uniform cost) everywhere it is
// accepted as an option.
type EdgeWeight func(Edge) float64

// Vertices is a stateful vertex iterator, modeled on the slice-backed
// iterators of the pack: Next must be called before the first Vertex.
type Vertices interface {
	Next() bool
	Vertex() Vertex
	Len() int
	Reset()
}

// Edges is a stateful edge iterator with the same contract as Vertices.
type Edges interface {
	Next() bool
	Edge() Edge
	Len() int
	Reset()
}

// Graph is the read view every algorithm in this module is built against.
// All set-valued methods return an unspecified but, for the lifetime of a
// single algorithm call, stable iteration order. A query against a vertex
// or edge absent from the graph returns an empty collection; it never
// panics or returns an error, so "not present" is detected by callers via
// emptiness (ErrUnknownVertex is reserved for algorithm-level APIs that
// need to distinguish "present with zero score" from "absent").
type Graph interface {
	// Vertices returns every vertex in the graph.
	Vertices() Vertices
	// Edges returns every edge in the graph.
	Edges() Edges
	// VertexCount reports the number of vertices, without iterating.
	VertexCount() int
	// EdgeCount reports the number of edges, without iterating.
	EdgeCount() int
	// VertexByID looks up a vertex by ID, or returns nil if absent.
	VertexByID(id int64) Vertex

	// Endpoints returns every vertex incident to e. For an ordinary edge
	// this has length 1 (self-loop) or 2; a hyperedge may have more.
	Endpoints(e Edge) []Vertex
	// SourceSet returns the source-side endpoints of e. For an undirected
	// edge, SourceSet equals Endpoints.
	SourceSet(e Edge) []Vertex
	// DestSet returns the destination-side endpoints of e. For an
	// undirected edge, DestSet equals Endpoints.
	DestSet(e Edge) []Vertex

	// InEdges returns the edges for which v is a destination endpoint.
	// For undirected graphs this equals IncidentEdges(v).
	InEdges(v Vertex) []Edge
	// OutEdges returns the edges for which v is a source endpoint. For
	// undirected graphs this equals IncidentEdges(v).
	OutEdges(v Vertex) []Edge
	// IncidentEdges returns every edge with v as an endpoint, regardless
	// of direction.
	IncidentEdges(v Vertex) []Edge

	// IsDirected reports whether edges in this graph carry direction.
	IsDirected() bool
}

// VerticesOf drains it into a slice, leaving it exhausted.
func VerticesOf(it Vertices) []Vertex {
	if it == nil {
		return nil
	}
	out := make([]Vertex, 0, it.Len())
	for it.Next() {
		out = append(out, it.Vertex())
	}
	return out
}

// EdgesOf drains it into a slice, leaving it exhausted.
func EdgesOf(it Edges) []Edge {
	if it == nil {
		return nil
	}
	out := make([]Edge, 0, it.Len())
	for it.Next() {
		out = append(out, it.Edge())
	}
	return out
}

// UniformWeight is the EdgeWeight used when no weight function is supplied:
// every edge costs exactly 1.
func UniformWeight(Edge) float64 { return 1 }
