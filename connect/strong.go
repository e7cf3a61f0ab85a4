package connect

import (
	"errors"

	"github.com/gonum-extra/hgraph"
)

// ErrUndirected is raised when Strong is called on an undirected graph.
var ErrUndirected = errors.New("connect: strong connectivity requires a directed graph")

// Strong returns the strongly connected components of the directed graph
// g using Gabow's path-based algorithm, or ErrUndirected if g is not
// directed. The returned components are a disjoint partition of g's
// vertex set. Running time is O(|V|+|E|), assuming the neighbor resolver
// is amortized O(1) per emitted pair.
//
// Vertex DFS numbers are assigned 1-indexed (the length of the path stack
// S immediately after the push), reserving 0 exclusively for "unvisited":
// spec's literal "vn.number = |S|-1" would collide the first-visited
// vertex's number with the unvisited sentinel on a 0-indexed stack, so
// this implementation shifts both the vertex numbering and the boundary
// stack B by one without otherwise changing the algorithm, since only
// relative order between numbers is ever compared.
func Strong(g hgraph.Graph) ([]map[int64]hgraph.Vertex, error) {
	if !g.IsDirected() {
		return nil, ErrUndirected
	}

	vertices := hgraph.VerticesOf(g.Vertices())
	gb := &gabow{
		g:      g,
		number: make(map[int64]int, len(vertices)),
		c:      len(vertices),
	}
	for _, v := range vertices {
		if gb.number[v.ID()] == 0 {
			gb.visit(v)
		}
	}
	return gb.sccs, nil
}

type gabow struct {
	g      hgraph.Graph
	number map[int64]int // 0 = unvisited
	c      int

	s []hgraph.Vertex // path stack S
	b []int           // boundary stack B

	sccs []map[int64]hgraph.Vertex
}

func (gb *gabow) visit(v hgraph.Vertex) {
	gb.s = append(gb.s, v)
	num := len(gb.s)
	gb.b = append(gb.b, num)
	gb.number[v.ID()] = num

	for _, pair := range hgraph.Neighbors(gb.g, v, gb.g.OutEdges(v)) {
		w := pair.Vertex
		switch wn := gb.number[w.ID()]; {
		case wn == 0:
			gb.visit(w)
		default:
			for len(gb.b) > 0 && wn < gb.b[len(gb.b)-1] {
				gb.b = gb.b[:len(gb.b)-1]
			}
		}
	}

	if len(gb.b) == 0 || gb.number[v.ID()] != gb.b[len(gb.b)-1] {
		return
	}
	gb.b = gb.b[:len(gb.b)-1]
	gb.c++

	scc := make(map[int64]hgraph.Vertex)
	for {
		w := gb.s[len(gb.s)-1]
		gb.s = gb.s[:len(gb.s)-1]
		gb.number[w.ID()] = gb.c
		scc[w.ID()] = w
		if w.ID() == v.ID() {
			break
		}
	}
	gb.sccs = append(gb.sccs, scc)
}
