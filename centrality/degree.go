// Package centrality implements the degree, closeness and betweenness
// centrality measures: the direct consumers of the graph abstraction and
// the shortest-path engines in hgpath. Betweenness is grounded on the
// teacher's network/brandes.go, generalized to hyperedges and to both the
// weighted and unweighted cases; closeness is grounded on
// graph/centrality/closeness.go.
package centrality

import "github.com/gonum-extra/hgraph"

// CentralityMode selects which edge collection degree centrality sums
// over.
type CentralityMode int

const (
	// ModeIn counts/sums InEdges.
	ModeIn CentralityMode = iota
	// ModeOut counts/sums OutEdges.
	ModeOut
	// ModeTotal counts/sums IncidentEdges (in and out combined, each
	// edge counted once regardless of how many times it touches v).
	ModeTotal
)

type degreeConfig struct {
	normalize bool
	weight    hgraph.EdgeWeight
}

// DegreeOption configures a Degree instance.
type DegreeOption func(*degreeConfig)

// WithDegreeNormalize divides every score by |V|-1.
func WithDegreeNormalize() DegreeOption {
	return func(c *degreeConfig) { c.normalize = true }
}

// WithDegreeWeight sums w(e) over the relevant edge collection instead of
// counting edges.
func WithDegreeWeight(w hgraph.EdgeWeight) DegreeOption {
	return func(c *degreeConfig) { c.weight = w }
}

// Degree computes per-vertex degree centrality for one CentralityMode.
// Results are memoized per vertex on the instance; a Degree is not safe
// for concurrent use.
type Degree struct {
	g     hgraph.Graph
	mode  CentralityMode
	cfg   degreeConfig
	cache map[int64]float64
}

// NewDegree returns a Degree instance for g under the given mode.
func NewDegree(g hgraph.Graph, mode CentralityMode, opts ...DegreeOption) *Degree {
	var cfg degreeConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Degree{g: g, mode: mode, cfg: cfg, cache: make(map[int64]float64)}
}

func (d *Degree) edges(v hgraph.Vertex) []hgraph.Edge {
	switch d.mode {
	case ModeIn:
		return d.g.InEdges(v)
	case ModeOut:
		return d.g.OutEdges(v)
	default:
		return d.g.IncidentEdges(v)
	}
}

// Score returns v's degree centrality, computing and caching it on first
// request.
func (d *Degree) Score(v hgraph.Vertex) float64 {
	if s, ok := d.cache[v.ID()]; ok {
		return s
	}

	edges := d.edges(v)
	var score float64
	if d.cfg.weight == nil {
		score = float64(len(edges))
	} else {
		for _, e := range edges {
			score += d.cfg.weight(e)
		}
	}
	if d.cfg.normalize {
		if n := d.g.VertexCount(); n > 1 {
			score /= float64(n - 1)
		}
	}

	d.cache[v.ID()] = score
	return score
}

// Scores returns the degree centrality of every vertex in the graph.
func (d *Degree) Scores() map[int64]float64 {
	out := make(map[int64]float64, d.g.VertexCount())
	vs := d.g.Vertices()
	for vs.Next() {
		v := vs.Vertex()
		out[v.ID()] = d.Score(v)
	}
	return out
}
