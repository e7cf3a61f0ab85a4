package simple

import "github.com/gonum-extra/hgraph"

// vertexSlice implements hgraph.Vertices over an owned slice, modeled on
// the teacher's iterator.OrderedNodes.
type vertexSlice struct {
	idx int
	v   []hgraph.Vertex
}

func newVertexSlice(v []hgraph.Vertex) *vertexSlice { return &vertexSlice{idx: -1, v: v} }

func (it *vertexSlice) Len() int {
	if it.idx >= len(it.v) {
		return 0
	}
	if it.idx <= 0 {
		return len(it.v)
	}
	return len(it.v[it.idx:])
}

func (it *vertexSlice) Next() bool {
	if uint(it.idx)+1 < uint(len(it.v)) {
		it.idx++
		return true
	}
	it.idx = len(it.v)
	return false
}

func (it *vertexSlice) Vertex() hgraph.Vertex {
	if it.idx < 0 || it.idx >= len(it.v) {
		return nil
	}
	return it.v[it.idx]
}

func (it *vertexSlice) Reset() { it.idx = -1 }

// edgeSlice implements hgraph.Edges over an owned slice.
type edgeSlice struct {
	idx int
	e   []hgraph.Edge
}

func newEdgeSlice(e []hgraph.Edge) *edgeSlice { return &edgeSlice{idx: -1, e: e} }

func (it *edgeSlice) Len() int {
	if it.idx >= len(it.e) {
		return 0
	}
	if it.idx <= 0 {
		return len(it.e)
	}
	return len(it.e[it.idx:])
}

func (it *edgeSlice) Next() bool {
	if uint(it.idx)+1 < uint(len(it.e)) {
		it.idx++
		return true
	}
	it.idx = len(it.e)
	return false
}

func (it *edgeSlice) Edge() hgraph.Edge {
	if it.idx < 0 || it.idx >= len(it.e) {
		return nil
	}
	return it.e[it.idx]
}

func (it *edgeSlice) Reset() { it.idx = -1 }

var (
	_ hgraph.Vertices = (*vertexSlice)(nil)
	_ hgraph.Edges    = (*edgeSlice)(nil)
)
