package centrality

import (
	"math"

	"github.com/gonum-extra/hgraph"
	"github.com/gonum-extra/hgpath"
)

type closenessConfig struct {
	averaging             bool
	nullInfiniteDistances bool
	ignoreSelfDistances   bool
}

// ClosenessOption configures a Closeness instance.
type ClosenessOption func(*closenessConfig)

// WithAveraging divides the summed reachable distance by the number of
// entries in the distance map instead of using the raw sum; that map
// includes v itself unless WithIgnoreSelfDistances is set. The classical
// |V|-1-normalized closeness results only when every vertex is reachable
// and WithIgnoreSelfDistances is also set.
func WithAveraging() ClosenessOption {
	return func(c *closenessConfig) { c.averaging = true }
}

// WithNullInfiniteDistances makes an empty reachable set score 0 instead
// of being reported as undefined.
func WithNullInfiniteDistances() ClosenessOption {
	return func(c *closenessConfig) { c.nullInfiniteDistances = true }
}

// WithIgnoreSelfDistances removes v from its own distance map before
// summing.
func WithIgnoreSelfDistances() ClosenessOption {
	return func(c *closenessConfig) { c.ignoreSelfDistances = true }
}

// Closeness computes per-vertex closeness centrality from a
// hgpath.DistanceOracle. Results are memoized per vertex; a Closeness is
// not safe for concurrent use.
type Closeness struct {
	g    hgraph.Graph
	dist hgpath.DistanceOracle
	cfg  closenessConfig

	cache     map[int64]float64
	undefined map[int64]bool
}

// NewCloseness returns a Closeness instance over g using dist as the
// shortest-path oracle.
func NewCloseness(g hgraph.Graph, dist hgpath.DistanceOracle, opts ...ClosenessOption) *Closeness {
	var cfg closenessConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Closeness{
		g:         g,
		dist:      dist,
		cfg:       cfg,
		cache:     make(map[int64]float64),
		undefined: make(map[int64]bool),
	}
}

// Score returns v's closeness centrality and whether it is defined. An
// undefined score (ok == false) means v has no reachable targets and
// WithNullInfiniteDistances was not set.
func (c *Closeness) Score(v hgraph.Vertex) (score float64, ok bool) {
	if s, cached := c.cache[v.ID()]; cached {
		return s, !c.undefined[v.ID()]
	}

	m := c.dist.DistanceMap(v)
	if c.cfg.ignoreSelfDistances {
		delete(m, v.ID())
	}

	if len(m) == 0 {
		if c.cfg.nullInfiniteDistances {
			c.cache[v.ID()] = 0
			return 0, true
		}
		c.undefined[v.ID()] = true
		c.cache[v.ID()] = 0
		return 0, false
	}

	var sum float64
	for _, d := range m {
		sum += d
	}
	if c.cfg.averaging {
		sum /= float64(len(m))
	}

	var score2 float64
	if sum == 0 {
		score2 = math.Inf(1)
	} else {
		score2 = 1 / sum
	}
	c.cache[v.ID()] = score2
	return score2, true
}

// Scores returns the closeness centrality of every vertex for which it is
// defined; vertices with an undefined score are omitted.
func (c *Closeness) Scores() map[int64]float64 {
	out := make(map[int64]float64, c.g.VertexCount())
	vs := c.g.Vertices()
	for vs.Next() {
		v := vs.Vertex()
		if s, ok := c.Score(v); ok {
			out[v.ID()] = s
		}
	}
	return out
}
