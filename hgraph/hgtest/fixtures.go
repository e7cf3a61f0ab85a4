// Package hgtest holds the concrete graph fixtures shared by every
// package's tests, mirroring the teacher's convention of a small
// internal helper package for repeated graph literals instead of
// re-building the same topology in every test file.
package hgtest

import (
	"github.com/gonum-extra/hgraph"
	"github.com/gonum-extra/hgraph/simple"
)

// V is shorthand for simple.VertexID in test tables.
func V(id int64) hgraph.Vertex { return simple.VertexID(id) }

// DirectedTriangle builds V={1,2,3}, E={1→2, 3→1, 2→3}.
func DirectedTriangle() *simple.Graph {
	g := simple.New(true)
	v1, v2, v3 := V(1), V(2), V(3)
	g.AddVertex(v1)
	g.AddVertex(v2)
	g.AddVertex(v3)
	g.AddDirectedEdge(v1, v2)
	g.AddDirectedEdge(v3, v1)
	g.AddDirectedEdge(v2, v3)
	return g
}

// DisconnectedDirected builds V={1..5}, E={1→2, 3→1, 2→3, 4→5}.
func DisconnectedDirected() *simple.Graph {
	g := simple.New(true)
	for i := int64(1); i <= 5; i++ {
		g.AddVertex(V(i))
	}
	g.AddDirectedEdge(V(1), V(2))
	g.AddDirectedEdge(V(3), V(1))
	g.AddDirectedEdge(V(2), V(3))
	g.AddDirectedEdge(V(4), V(5))
	return g
}

// Star builds the undirected star K_{1,5} centered at v1 with leaves v2..v6.
func Star() *simple.Graph {
	g := simple.New(false)
	center := V(1)
	g.AddVertex(center)
	for i := int64(2); i <= 6; i++ {
		leaf := V(i)
		g.AddVertex(leaf)
		g.AddEdge(center, leaf)
	}
	return g
}

// Path builds the undirected path v1–v2–v3–v4–v5.
func Path() *simple.Graph {
	g := simple.New(false)
	for i := int64(1); i <= 5; i++ {
		g.AddVertex(V(i))
	}
	for i := int64(1); i < 5; i++ {
		g.AddEdge(V(i), V(i+1))
	}
	return g
}

// Diamond builds V={v1..v5}, undirected edges
// {v1–v2, v2–v3, v2–v4, v3–v5, v4–v5}.
func Diamond() *simple.Graph {
	g := simple.New(false)
	for i := int64(1); i <= 5; i++ {
		g.AddVertex(V(i))
	}
	g.AddEdge(V(1), V(2))
	g.AddEdge(V(2), V(3))
	g.AddEdge(V(2), V(4))
	g.AddEdge(V(3), V(5))
	g.AddEdge(V(4), V(5))
	return g
}

// Hypergraph builds the undirected hypergraph with hyperedges
// e1={v1,v2,v3,v4}, e2={v4,v5,v6}.
func Hypergraph() *simple.Graph {
	g := simple.New(false)
	for i := int64(1); i <= 6; i++ {
		g.AddVertex(V(i))
	}
	g.AddEdge(V(1), V(2), V(3), V(4))
	g.AddEdge(V(4), V(5), V(6))
	return g
}

// Empty builds a graph with no vertices and no edges.
func Empty() *simple.Graph {
	return simple.New(false)
}

// Singleton builds a graph with exactly one vertex and no edges.
func Singleton() *simple.Graph {
	g := simple.New(false)
	g.AddVertex(V(1))
	return g
}

// WithIsolatedVertex builds the Path fixture plus an unconnected v6.
func WithIsolatedVertex() *simple.Graph {
	g := Path()
	g.AddVertex(V(6))
	return g
}
