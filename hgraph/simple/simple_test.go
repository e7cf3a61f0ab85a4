package simple_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gonum-extra/hgraph"
	"github.com/gonum-extra/hgraph/simple"
)

func TestAddVertexIdempotent(t *testing.T) {
	g := simple.New(false)
	v := simple.VertexID(1)
	g.AddVertex(v)
	g.AddVertex(v)
	assert.Equal(t, 1, g.VertexCount())
}

func TestAddEdgePanicsOnDirectedGraph(t *testing.T) {
	g := simple.New(true)
	a, b := simple.VertexID(1), simple.VertexID(2)
	g.AddVertex(a)
	g.AddVertex(b)
	assert.Panics(t, func() { g.AddEdge(a, b) })
}

func TestAddDirectedHyperedgePanicsOnUndirectedGraph(t *testing.T) {
	g := simple.New(false)
	a, b := simple.VertexID(1), simple.VertexID(2)
	g.AddVertex(a)
	g.AddVertex(b)
	assert.Panics(t, func() {
		g.AddDirectedHyperedge([]hgraph.Vertex{a}, []hgraph.Vertex{b})
	})
}

func TestAddEdgePanicsOnUnknownVertex(t *testing.T) {
	g := simple.New(false)
	a := simple.VertexID(1)
	g.AddVertex(a)
	assert.Panics(t, func() { g.AddEdge(a, simple.VertexID(2)) })
}

func TestUndirectedEdgeEndpointsAndIncidence(t *testing.T) {
	g := simple.New(false)
	a, b, c := simple.VertexID(1), simple.VertexID(2), simple.VertexID(3)
	g.AddVertex(a)
	g.AddVertex(b)
	g.AddVertex(c)
	e := g.AddEdge(a, b, c)

	require.Equal(t, 3, len(g.Endpoints(e)))
	assert.ElementsMatch(t, g.Endpoints(e), g.SourceSet(e))
	assert.ElementsMatch(t, g.Endpoints(e), g.DestSet(e))
	assert.Len(t, g.IncidentEdges(a), 1)
	assert.Len(t, g.InEdges(a), 1)
	assert.Len(t, g.OutEdges(a), 1)
}

func TestDirectedEdgeSourceAndDest(t *testing.T) {
	g := simple.New(true)
	a, b := simple.VertexID(1), simple.VertexID(2)
	g.AddVertex(a)
	g.AddVertex(b)
	e := g.AddDirectedEdge(a, b)

	assert.Equal(t, []hgraph.Vertex{a}, g.SourceSet(e))
	assert.Equal(t, []hgraph.Vertex{b}, g.DestSet(e))
	assert.Len(t, g.OutEdges(a), 1)
	assert.Len(t, g.InEdges(a), 0)
	assert.Len(t, g.InEdges(b), 1)
	assert.Len(t, g.OutEdges(b), 0)
}

func TestVertexByIDUnknownReturnsNil(t *testing.T) {
	g := simple.New(false)
	assert.Nil(t, g.VertexByID(99))
}

func TestIsDirected(t *testing.T) {
	assert.True(t, simple.New(true).IsDirected())
	assert.False(t, simple.New(false).IsDirected())
}
