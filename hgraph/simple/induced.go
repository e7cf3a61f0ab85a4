package simple

import "github.com/gonum-extra/hgraph"

// Induced builds the subgraph of g induced by vertices: every vertex in
// the set, and every edge of g all of whose endpoints lie in the set.
// Modeled on the pack's vertex-set-driven subgraph/clone helpers
// (katalvlaran-lvlath core.Graph's clone family); used to derive
// connect.ConnectedSubgraphs from a vertex partition.
func Induced(g hgraph.Graph, vertices map[int64]hgraph.Vertex) hgraph.Graph {
	sub := New(g.IsDirected())
	for _, v := range vertices {
		sub.AddVertex(v)
	}

	seen := make(map[int64]bool)
	edges := g.Edges()
	for edges.Next() {
		e := edges.Edge()
		if seen[e.ID()] {
			continue
		}
		seen[e.ID()] = true

		if !allIn(g.Endpoints(e), vertices) {
			continue
		}
		if g.IsDirected() {
			sub.AddDirectedHyperedge(g.SourceSet(e), g.DestSet(e))
		} else {
			sub.AddEdge(g.Endpoints(e)...)
		}
	}
	return sub
}

func allIn(vs []hgraph.Vertex, set map[int64]hgraph.Vertex) bool {
	for _, v := range vs {
		if _, ok := set[v.ID()]; !ok {
			return false
		}
	}
	return true
}
