// Package simple provides an adjacency-map backed implementation of
// hgraph.Graph, supporting ordinary edges, directed arcs, and directed or
// undirected hyperedges. It is the concrete graph container the rest of
// this module's tests and the hgstat command build against; the
// algorithmic packages never depend on it directly, only on hgraph.Graph.
package simple

import (
	"fmt"

	"github.com/gonum-extra/hgraph"
)

// VertexID is the simplest possible hgraph.Vertex: an int64 used directly
// as its own identity.
type VertexID int64

// ID implements hgraph.Vertex.
func (v VertexID) ID() int64 { return int64(v) }

type hyperEdge struct {
	id       int64
	source   []hgraph.Vertex
	dest     []hgraph.Vertex
	endpoint []hgraph.Vertex // union of source and dest, undirected edges store it directly
	directed bool
}

// ID implements hgraph.Edge.
func (e *hyperEdge) ID() int64 { return e.id }

// Graph is a read-write (hyper)graph container. A Graph is either entirely
// directed or entirely undirected; Edge.Directed overrides are not
// supported, unlike the mixed-edge mode in some of the pack's simple
// graphs, since the centrality algorithms branch on directedness once per
// call (per hgraph.Graph.IsDirected) and a per-edge override would break
// that contract.
type Graph struct {
	directed bool

	vertices map[int64]hgraph.Vertex
	edges    map[int64]*hyperEdge

	incident map[int64][]hgraph.Edge
	in       map[int64][]hgraph.Edge
	out      map[int64][]hgraph.Edge

	nextEdgeID int64
}

// New returns an empty Graph. If directed is true, edges added with
// AddDirectedEdge/AddDirectedHyperedge are required; AddEdge/AddHyperedge
// add undirected edges regardless of the graph's directedness flag is not
// permitted — use the matching constructor for the graph's mode.
func New(directed bool) *Graph {
	return &Graph{
		directed: directed,
		vertices: make(map[int64]hgraph.Vertex),
		edges:    make(map[int64]*hyperEdge),
		incident: make(map[int64][]hgraph.Edge),
		in:       make(map[int64][]hgraph.Edge),
		out:      make(map[int64][]hgraph.Edge),
	}
}

// AddVertex inserts v into the graph. Adding a vertex whose ID already
// exists is a no-op.
func (g *Graph) AddVertex(v hgraph.Vertex) {
	if _, ok := g.vertices[v.ID()]; ok {
		return
	}
	g.vertices[v.ID()] = v
}

func (g *Graph) requireVertex(v hgraph.Vertex) {
	if _, ok := g.vertices[v.ID()]; !ok {
		panic(fmt.Sprintf("simple: unknown vertex %d", v.ID()))
	}
}

// AddEdge adds an ordinary or hyper undirected edge spanning endpoints. It
// panics if g is directed, if endpoints is empty, or if any endpoint is
// not already in the graph.
func (g *Graph) AddEdge(endpoints ...hgraph.Vertex) hgraph.Edge {
	if g.directed {
		panic("simple: AddEdge on a directed graph; use AddDirectedEdge")
	}
	if len(endpoints) == 0 {
		panic("simple: edge must have at least one endpoint")
	}
	for _, v := range endpoints {
		g.requireVertex(v)
	}

	e := &hyperEdge{id: g.nextEdgeID, endpoint: endpoints, source: endpoints, dest: endpoints}
	g.nextEdgeID++
	g.edges[e.id] = e

	seen := make(map[int64]bool, len(endpoints))
	for _, v := range endpoints {
		if seen[v.ID()] {
			continue
		}
		seen[v.ID()] = true
		g.incident[v.ID()] = append(g.incident[v.ID()], e)
		g.in[v.ID()] = append(g.in[v.ID()], e)
		g.out[v.ID()] = append(g.out[v.ID()], e)
	}
	return e
}

// AddDirectedEdge adds a directed arc from -> to. It panics if g is
// undirected.
func (g *Graph) AddDirectedEdge(from, to hgraph.Vertex) hgraph.Edge {
	return g.AddDirectedHyperedge([]hgraph.Vertex{from}, []hgraph.Vertex{to})
}

// AddDirectedHyperedge adds a directed hyperedge from the source set to
// the dest set. Both sets must be non-empty and every vertex in them must
// already be in the graph. It panics if g is undirected.
func (g *Graph) AddDirectedHyperedge(source, dest []hgraph.Vertex) hgraph.Edge {
	if !g.directed {
		panic("simple: AddDirectedHyperedge on an undirected graph; use AddEdge")
	}
	if len(source) == 0 || len(dest) == 0 {
		panic("simple: directed edge requires non-empty source and dest sets")
	}
	for _, v := range source {
		g.requireVertex(v)
	}
	for _, v := range dest {
		g.requireVertex(v)
	}

	e := &hyperEdge{id: g.nextEdgeID, source: source, dest: dest, directed: true}
	g.nextEdgeID++
	g.edges[e.id] = e

	touched := make(map[int64]bool, len(source)+len(dest))
	for _, v := range source {
		if !touched[v.ID()] {
			g.incident[v.ID()] = append(g.incident[v.ID()], e)
			touched[v.ID()] = true
		}
		g.out[v.ID()] = append(g.out[v.ID()], e)
	}
	for _, v := range dest {
		if !touched[v.ID()] {
			g.incident[v.ID()] = append(g.incident[v.ID()], e)
			touched[v.ID()] = true
		}
		g.in[v.ID()] = append(g.in[v.ID()], e)
	}
	return e
}

// Vertices implements hgraph.Graph.
func (g *Graph) Vertices() hgraph.Vertices {
	out := make([]hgraph.Vertex, 0, len(g.vertices))
	for _, v := range g.vertices {
		out = append(out, v)
	}
	return newVertexSlice(out)
}

// Edges implements hgraph.Graph.
func (g *Graph) Edges() hgraph.Edges {
	out := make([]hgraph.Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	return newEdgeSlice(out)
}

// VertexCount implements hgraph.Graph.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount implements hgraph.Graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// VertexByID implements hgraph.Graph.
func (g *Graph) VertexByID(id int64) hgraph.Vertex {
	v, ok := g.vertices[id]
	if !ok {
		return nil
	}
	return v
}

// Endpoints implements hgraph.Graph.
func (g *Graph) Endpoints(e hgraph.Edge) []hgraph.Vertex {
	he, ok := g.edges[e.ID()]
	if !ok {
		return nil
	}
	if !he.directed {
		return he.endpoint
	}
	return union(he.source, he.dest)
}

// SourceSet implements hgraph.Graph.
func (g *Graph) SourceSet(e hgraph.Edge) []hgraph.Vertex {
	he, ok := g.edges[e.ID()]
	if !ok {
		return nil
	}
	return he.source
}

// DestSet implements hgraph.Graph.
func (g *Graph) DestSet(e hgraph.Edge) []hgraph.Vertex {
	he, ok := g.edges[e.ID()]
	if !ok {
		return nil
	}
	return he.dest
}

// InEdges implements hgraph.Graph.
func (g *Graph) InEdges(v hgraph.Vertex) []hgraph.Edge { return g.in[v.ID()] }

// OutEdges implements hgraph.Graph.
func (g *Graph) OutEdges(v hgraph.Vertex) []hgraph.Edge { return g.out[v.ID()] }

// IncidentEdges implements hgraph.Graph.
func (g *Graph) IncidentEdges(v hgraph.Vertex) []hgraph.Edge { return g.incident[v.ID()] }

// IsDirected implements hgraph.Graph.
func (g *Graph) IsDirected() bool { return g.directed }

func union(a, b []hgraph.Vertex) []hgraph.Vertex {
	seen := make(map[int64]bool, len(a)+len(b))
	out := make([]hgraph.Vertex, 0, len(a)+len(b))
	for _, vs := range [2][]hgraph.Vertex{a, b} {
		for _, v := range vs {
			if seen[v.ID()] {
				continue
			}
			seen[v.ID()] = true
			out = append(out, v)
		}
	}
	return out
}

var (
	_ hgraph.Graph = (*Graph)(nil)
)
