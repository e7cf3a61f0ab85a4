package hgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gonum-extra/hgraph"
	"github.com/gonum-extra/hgraph/simple"
)

func TestVerticesOfDrains(t *testing.T) {
	g := simple.New(false)
	g.AddVertex(simple.VertexID(1))
	g.AddVertex(simple.VertexID(2))

	vs := hgraph.VerticesOf(g.Vertices())
	assert.Len(t, vs, 2)

	// the returned iterator is exhausted by VerticesOf, not reusable here;
	// a fresh call to g.Vertices() must still see both vertices.
	vs2 := hgraph.VerticesOf(g.Vertices())
	assert.Len(t, vs2, 2)
}

func TestVerticesOfNil(t *testing.T) {
	assert.Nil(t, hgraph.VerticesOf(nil))
	assert.Nil(t, hgraph.EdgesOf(nil))
}

func TestUniformWeight(t *testing.T) {
	assert.Equal(t, 1.0, hgraph.UniformWeight(nil))
}

func TestEdgesOfDrains(t *testing.T) {
	g := simple.New(false)
	a, b, c := simple.VertexID(1), simple.VertexID(2), simple.VertexID(3)
	g.AddVertex(a)
	g.AddVertex(b)
	g.AddVertex(c)
	g.AddEdge(a, b)
	g.AddEdge(b, c)

	es := hgraph.EdgesOf(g.Edges())
	assert.Len(t, es, 2)
}
