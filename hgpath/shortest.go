package hgpath

import (
	"errors"
	"math"

	"github.com/gonum-extra/hgraph"
)

// ErrNegativeWeight is raised when a weighted traversal encounters an edge
// with a weight below zero. Per spec the whole edge set is pre-scanned
// before the main loop runs, so this always surfaces before any distance
// is computed, mirroring the teacher's graph/path/dijkstra.go panic on a
// negative edge weight rather than threading an error return through the
// hot relax loop.
var ErrNegativeWeight = errors.New("hgpath: negative edge weight")

// Predecessor is one (edge, vertex) pair on a shortest path into some
// vertex w: w is reachable from Vertex via Edge at the same cost as every
// other recorded predecessor of w.
type Predecessor struct {
	Edge   hgraph.Edge
	Vertex hgraph.Vertex
}

// Tree is the per-source traversal state produced by Dijkstra or BFS: the
// distance map, shortest-path counts, predecessor DAG, and the settled
// order vertices were removed from the queue in (non-decreasing distance,
// required by Brandes' accumulation phase). A Tree is owned exclusively by
// the call that produced it; nothing is shared across sources.
type Tree struct {
	source hgraph.Vertex

	dist  map[int64]float64
	sigma map[int64]float64
	pred  map[int64][]Predecessor
	order []hgraph.Vertex

	byID map[int64]hgraph.Vertex
}

func newTree(s hgraph.Vertex) *Tree {
	t := &Tree{
		source: s,
		dist:   make(map[int64]float64),
		sigma:  make(map[int64]float64),
		pred:   make(map[int64][]Predecessor),
		byID:   make(map[int64]hgraph.Vertex),
	}
	t.dist[s.ID()] = 0
	t.sigma[s.ID()] = 1
	t.byID[s.ID()] = s
	return t
}

// Source returns the vertex this tree was computed from.
func (t *Tree) Source() hgraph.Vertex { return t.source }

// Distance returns the shortest distance from the source to v, and
// whether v was reached at all.
func (t *Tree) Distance(v hgraph.Vertex) (float64, bool) {
	d, ok := t.dist[v.ID()]
	return d, ok
}

// DistanceMap returns a copy of the full vertex -> distance map. A vertex
// absent from the map was unreachable from the source.
func (t *Tree) DistanceMap() map[int64]float64 {
	out := make(map[int64]float64, len(t.dist))
	for k, v := range t.dist {
		out[k] = v
	}
	return out
}

// PathCount returns sigma(source, v): the number of distinct shortest
// paths from the source to v. PathCount of an unreached vertex is 0;
// PathCount of the source itself is 1.
func (t *Tree) PathCount(v hgraph.Vertex) float64 { return t.sigma[v.ID()] }

// Predecessors returns the (edge, vertex) pairs lying on some shortest
// path from the source to v. The slice must not be mutated by the caller.
func (t *Tree) Predecessors(v hgraph.Vertex) []Predecessor { return t.pred[v.ID()] }

// Order returns the vertices in the order they were settled (removed from
// the queue), which is non-decreasing in distance from the source.
func (t *Tree) Order() []hgraph.Vertex { return t.order }

// Dijkstra runs single-source Dijkstra from s over g using weight (nil
// means uniform unit cost). It panics with ErrNegativeWeight if any edge
// in g has a weight below zero.
func Dijkstra(g hgraph.Graph, s hgraph.Vertex, weight hgraph.EdgeWeight) *Tree {
	if weight == nil {
		weight = hgraph.UniformWeight
	}
	checkNonNegative(g, weight)

	t := newTree(s)
	q := newBinaryHeap()
	q.insert(s.ID(), 0)

	for !q.isEmpty() {
		vid := q.remove()
		v := t.byID[vid]
		t.order = append(t.order, v)

		for _, pair := range hgraph.Neighbors(g, v, g.OutEdges(v)) {
			w, e := pair.Vertex, pair.Edge
			alt := t.dist[vid] + weight(e)
			relax(t, v, w, e, alt, func(isNew bool) {
				switch {
				case isNew:
					q.insert(w.ID(), alt)
				case q.has(w.ID()):
					q.update(w.ID(), alt)
				}
			})
		}
	}
	return t
}

// BFS runs unweighted single-source breadth-first search from s over g,
// using a FIFO queue instead of a decrease-key heap: the first enqueue of
// a vertex fixes its distance, and later arrivals at the same layer only
// accumulate predecessors and path counts.
func BFS(g hgraph.Graph, s hgraph.Vertex) *Tree {
	t := newTree(s)
	q := &fifoQueue{}
	q.insert(s.ID())

	for !q.isEmpty() {
		vid := q.remove()
		v := t.byID[vid]
		t.order = append(t.order, v)

		for _, pair := range hgraph.Neighbors(g, v, g.OutEdges(v)) {
			w, e := pair.Vertex, pair.Edge
			alt := t.dist[vid] + 1
			relax(t, v, w, e, alt, func(isNew bool) {
				if isNew {
					q.insert(w.ID())
				}
			})
		}
	}
	return t
}

// relax implements the shared §4.4 relaxation step: if alt improves on
// w's current distance, w's predecessor/path-count state is reset and the
// caller-supplied enqueue callback fires; if alt ties the (possibly just
// updated) distance, (e,v) is recorded as an additional predecessor and
// w's path count accumulates v's.
func relax(t *Tree, v, w hgraph.Vertex, e hgraph.Edge, alt float64, enqueue func(isNew bool)) {
	cur, known := t.dist[w.ID()]
	if !known {
		cur = math.Inf(1)
	}
	if alt < cur {
		t.dist[w.ID()] = alt
		t.pred[w.ID()] = t.pred[w.ID()][:0]
		t.sigma[w.ID()] = 0
		t.byID[w.ID()] = w
		enqueue(!known)
	}
	if alt == t.dist[w.ID()] {
		t.pred[w.ID()] = append(t.pred[w.ID()], Predecessor{Edge: e, Vertex: v})
		t.sigma[w.ID()] += t.sigma[v.ID()]
	}
}

func checkNonNegative(g hgraph.Graph, weight hgraph.EdgeWeight) {
	edges := g.Edges()
	for edges.Next() {
		if weight(edges.Edge()) < 0 {
			panic(ErrNegativeWeight)
		}
	}
}
