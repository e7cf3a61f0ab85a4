package hgpath

import "github.com/gonum-extra/hgraph"

// DistanceOracle is a map-like object keyed by source vertex, returning
// vertex -> distance maps, per spec §3's "distance oracle". It is the
// shared input to closeness centrality and the graph distance metrics
// (eccentricity/diameter/radius/center/periphery). Implementations recompute
// on every call; callers needing repeated queries should memoize, as the
// algorithms in this module do (see centrality.Closeness).
type DistanceOracle interface {
	// Distance returns the shortest distance from "from" to "to", and
	// whether "to" is reachable.
	Distance(from, to hgraph.Vertex) (float64, bool)
	// DistanceMap returns every vertex reachable from "from" mapped to
	// its distance. A vertex absent from the map is unreachable.
	DistanceMap(from hgraph.Vertex) map[int64]float64
}

type dijkstraOracle struct {
	g      hgraph.Graph
	weight hgraph.EdgeWeight
}

// NewDijkstraOracle returns a DistanceOracle backed by Dijkstra's
// algorithm over g with the given edge weight (nil means unit weight).
func NewDijkstraOracle(g hgraph.Graph, weight hgraph.EdgeWeight) DistanceOracle {
	return dijkstraOracle{g: g, weight: weight}
}

func (o dijkstraOracle) Distance(from, to hgraph.Vertex) (float64, bool) {
	return Dijkstra(o.g, from, o.weight).Distance(to)
}

func (o dijkstraOracle) DistanceMap(from hgraph.Vertex) map[int64]float64 {
	return Dijkstra(o.g, from, o.weight).DistanceMap()
}

type bfsOracle struct {
	g hgraph.Graph
}

// NewBFSOracle returns a DistanceOracle backed by unweighted BFS over g.
func NewBFSOracle(g hgraph.Graph) DistanceOracle {
	return bfsOracle{g: g}
}

func (o bfsOracle) Distance(from, to hgraph.Vertex) (float64, bool) {
	return BFS(o.g, from).Distance(to)
}

func (o bfsOracle) DistanceMap(from hgraph.Vertex) map[int64]float64 {
	return BFS(o.g, from).DistanceMap()
}
