// Package connect implements weak and strong connectivity: BFS-based
// weakly connected components and Gabow's path-based strongly connected
// components. Grounded in shape and doc style on the teacher's
// graph/topo/tarjan.go, but Strong implements Gabow's algorithm, per
// spec, not Tarjan's.
package connect

import (
	"golang.org/x/tools/container/intsets"

	"github.com/gonum-extra/hgraph"
)

// Weak returns the weakly connected components of g: BFS over the
// undirected closure of adjacency (predecessors union successors), so
// direction is ignored even when g.IsDirected(). The returned components
// are a disjoint partition of g's vertex set; their union is the full
// vertex set.
func Weak(g hgraph.Graph) []map[int64]hgraph.Vertex {
	byID := make(map[int64]hgraph.Vertex)
	var unvisited intsets.Sparse
	vs := g.Vertices()
	for vs.Next() {
		v := vs.Vertex()
		byID[v.ID()] = v
		unvisited.Insert(int(v.ID()))
	}

	var components []map[int64]hgraph.Vertex
	for !unvisited.IsEmpty() {
		rid := unvisited.Min()
		unvisited.Remove(rid)
		r := byID[int64(rid)]

		component := map[int64]hgraph.Vertex{r.ID(): r}
		queue := []hgraph.Vertex{r}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			for _, pair := range hgraph.Neighbors(g, v, g.IncidentEdges(v)) {
				w := pair.Vertex
				wid := int(w.ID())
				if !unvisited.Has(wid) {
					continue
				}
				unvisited.Remove(wid)
				component[w.ID()] = w
				queue = append(queue, w)
			}
		}
		components = append(components, component)
	}
	return components
}
