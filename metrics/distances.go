// Package metrics computes graph distance metrics — eccentricity,
// diameter, radius, center, periphery and pseudo-periphery — layered on
// top of a hgpath.DistanceOracle. Grounded in spirit on
// graph/centrality/closeness.go's use of the path package as a plain
// collaborator, generalized from a single summary statistic to the full
// family of distance-derived sets.
package metrics

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/gonum-extra/hgpath"
	"github.com/gonum-extra/hgraph"
)

// DefaultTolerance is the ε used to compare eccentricities for set
// membership (center, periphery, pseudo-periphery) when no WithTolerance
// option is given.
const DefaultTolerance = 1e-9

// ErrInvalidTolerance is raised by WithTolerance for a non-positive ε.
var ErrInvalidTolerance = errors.New("metrics: tolerance must be positive")

type config struct {
	tolerance float64
}

// Option configures a Distances computation.
type Option func(*config)

// WithTolerance overrides the default ε = 1e-9 used for eccentricity
// equality comparisons. It panics with ErrInvalidTolerance if eps <= 0.
func WithTolerance(eps float64) Option {
	if eps <= 0 {
		panic(ErrInvalidTolerance)
	}
	return func(c *config) { c.tolerance = eps }
}

// Result holds every distance-derived quantity computed by Distances.
type Result struct {
	Eccentricity    map[int64]float64
	Diameter        float64
	Radius          float64
	Center          []hgraph.Vertex
	Periphery       []hgraph.Vertex
	PseudoPeriphery []hgraph.Vertex
}

// Distances computes eccentricity, diameter, radius, center, periphery
// and pseudo-periphery for g using dist as the shortest-path oracle.
//
// eccentricity(v) = max_u d(v,u); diameter/radius are the max/min
// eccentricity over all vertices. A vertex with any unreachable partner
// has eccentricity +Inf, which propagates into diameter/radius exactly as
// spec requires for disconnected graphs. The empty graph reports
// diameter = radius = 0 with an empty eccentricity map; the singleton
// graph reports diameter = radius = 0 with eccentricity(v) = 0.
func Distances(g hgraph.Graph, dist hgpath.DistanceOracle, opts ...Option) Result {
	cfg := config{tolerance: DefaultTolerance}
	for _, opt := range opts {
		opt(&cfg)
	}

	vertices := hgraph.VerticesOf(g.Vertices())
	if len(vertices) == 0 {
		return Result{Eccentricity: map[int64]float64{}}
	}

	ecc := make(map[int64]float64, len(vertices))
	distFrom := make(map[int64]map[int64]float64, len(vertices))
	for _, v := range vertices {
		dm := dist.DistanceMap(v)
		distFrom[v.ID()] = dm

		max := 0.0
		for _, u := range vertices {
			if u.ID() == v.ID() {
				continue
			}
			d, ok := dm[u.ID()]
			if !ok {
				max = math.Inf(1)
				break
			}
			if d > max {
				max = d
			}
		}
		ecc[v.ID()] = max
	}

	diameter, radius := math.Inf(-1), math.Inf(1)
	for _, e := range ecc {
		if e > diameter {
			diameter = e
		}
		if e < radius {
			radius = e
		}
	}

	var center, periphery, pseudo []hgraph.Vertex
	for _, v := range vertices {
		e := ecc[v.ID()]
		if scalar.EqualWithinAbs(e, radius, cfg.tolerance) {
			center = append(center, v)
		}
		if scalar.EqualWithinAbs(e, diameter, cfg.tolerance) {
			periphery = append(periphery, v)
		}
	}

	for _, u := range vertices {
		eu := ecc[u.ID()]
		dm := distFrom[u.ID()]
		isPseudo := true
		for _, v := range vertices {
			if v.ID() == u.ID() {
				continue
			}
			d, ok := dm[v.ID()]
			if !ok || !scalar.EqualWithinAbs(d, eu, cfg.tolerance) {
				continue
			}
			if !scalar.EqualWithinAbs(ecc[v.ID()], eu, cfg.tolerance) {
				isPseudo = false
				break
			}
		}
		if isPseudo {
			pseudo = append(pseudo, u)
		}
	}

	return Result{
		Eccentricity:    ecc,
		Diameter:        diameter,
		Radius:          radius,
		Center:          center,
		Periphery:       periphery,
		PseudoPeriphery: pseudo,
	}
}
