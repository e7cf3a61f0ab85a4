package hgraph

// Pair is an (opposite vertex, edge) pair produced by the neighbor
// resolver: w is a vertex reached from some v across e.
type Pair struct {
	Vertex Vertex
	Edge   Edge
}

// Opposite returns the multiset of "other" vertices reached from v across
// e:
//
//   - ordinary edge: the single non-v endpoint (nothing, for a
//     self-loop).
//   - undirected hyperedge: every endpoint except v.
//   - directed hyperedge: dest(e) when v is a source endpoint, source(e)
//     when v is a destination endpoint, or both sets minus v when v is on
//     both sides (a directed self-loop on a hyperedge).
func Opposite(g Graph, v Vertex, e Edge) []Vertex {
	if !g.IsDirected() {
		return otherEndpoints(g.Endpoints(e), v)
	}

	src, dst := g.SourceSet(e), g.DestSet(e)
	inSrc, inDst := contains(src, v), contains(dst, v)
	switch {
	case inSrc && inDst:
		out := otherEndpoints(dst, v)
		out = append(out, otherEndpoints(src, v)...)
		return out
	case inSrc:
		return dst
	case inDst:
		return src
	default:
		return nil
	}
}

func otherEndpoints(vs []Vertex, v Vertex) []Vertex {
	out := make([]Vertex, 0, len(vs))
	for _, u := range vs {
		if u.ID() != v.ID() {
			out = append(out, u)
		}
	}
	return out
}

func contains(vs []Vertex, v Vertex) bool {
	for _, u := range vs {
		if u.ID() == v.ID() {
			return true
		}
	}
	return false
}

// Neighbors expands edges, a collection of edges incident to v (typically
// g.OutEdges(v) or g.IncidentEdges(v)), into a deduplicated collection of
// (w, e) pairs with w = opposite(v, e), w != v. A hyperedge that would
// otherwise yield the same (w, e) pair more than once (because w appears
// several times in the edge's endpoint set) contributes it only once.
// Self-loops never contribute a pair. Iteration order is unspecified.
func Neighbors(g Graph, v Vertex, edges []Edge) []Pair {
	seen := make(map[[2]int64]struct{})
	out := make([]Pair, 0, len(edges))
	for _, e := range edges {
		for _, w := range Opposite(g, v, e) {
			key := [2]int64{w.ID(), e.ID()}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, Pair{Vertex: w, Edge: e})
		}
	}
	return out
}
