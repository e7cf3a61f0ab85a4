package centrality_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gonum-extra/centrality"
	"github.com/gonum-extra/hgpath"
	"github.com/gonum-extra/hgraph/hgtest"
)

func TestClosenessStar(t *testing.T) {
	g := hgtest.Star()
	c := centrality.NewCloseness(g, hgpath.NewBFSOracle(g))

	score, ok := c.Score(hgtest.V(1))
	require.True(t, ok)
	assert.InDelta(t, 0.2, score, 1e-12)

	leaf, ok := c.Score(hgtest.V(2))
	require.True(t, ok)
	assert.InDelta(t, 1.0/9.0, leaf, 1e-12)
}

func TestClosenessPath(t *testing.T) {
	g := hgtest.Path()
	c := centrality.NewCloseness(g, hgpath.NewBFSOracle(g))

	want := map[int64]float64{1: 1.0 / 10, 2: 1.0 / 7, 3: 1.0 / 6, 4: 1.0 / 7, 5: 1.0 / 10}
	for id, w := range want {
		got, ok := c.Score(hgtest.V(id))
		require.True(t, ok)
		assert.InDelta(t, w, got, 1e-12)
	}
}

func TestClosenessHypergraph(t *testing.T) {
	g := hgtest.Hypergraph()
	c := centrality.NewCloseness(g, hgpath.NewBFSOracle(g))

	want := map[int64]float64{1: 1.0 / 7, 2: 1.0 / 7, 3: 1.0 / 7, 4: 1.0 / 5, 5: 1.0 / 8, 6: 1.0 / 8}
	for id, w := range want {
		got, ok := c.Score(hgtest.V(id))
		require.True(t, ok)
		assert.InDelta(t, w, got, 1e-12)
	}
}

func TestClosenessIsolatedVertexUndefinedByDefault(t *testing.T) {
	g := hgtest.WithIsolatedVertex()
	c := centrality.NewCloseness(g, hgpath.NewBFSOracle(g), centrality.WithIgnoreSelfDistances())

	_, ok := c.Score(hgtest.V(6))
	assert.False(t, ok)
}

func TestClosenessIsolatedVertexNullFlag(t *testing.T) {
	g := hgtest.WithIsolatedVertex()
	c := centrality.NewCloseness(g, hgpath.NewBFSOracle(g),
		centrality.WithIgnoreSelfDistances(), centrality.WithNullInfiniteDistances())

	score, ok := c.Score(hgtest.V(6))
	assert.True(t, ok)
	assert.Equal(t, 0.0, score)
}

func TestClosenessSingletonWithoutIgnoreSelfIsInfinite(t *testing.T) {
	g := hgtest.Singleton()
	c := centrality.NewCloseness(g, hgpath.NewBFSOracle(g))

	score, ok := c.Score(hgtest.V(1))
	require.True(t, ok)
	assert.True(t, math.IsInf(score, 1))
}

func TestClosenessAveraging(t *testing.T) {
	g := hgtest.Path()
	c := centrality.NewCloseness(g, hgpath.NewBFSOracle(g), centrality.WithAveraging())

	// v3's distance map (including self) sums to 0+1+1+2+2=6 over 5 entries.
	score, ok := c.Score(hgtest.V(3))
	require.True(t, ok)
	assert.InDelta(t, 1.0/(6.0/5.0), score, 1e-12)
}

func TestClosenessScoresOmitsUndefined(t *testing.T) {
	g := hgtest.WithIsolatedVertex()
	c := centrality.NewCloseness(g, hgpath.NewBFSOracle(g), centrality.WithIgnoreSelfDistances())

	scores := c.Scores()
	_, present := scores[6]
	assert.False(t, present)
	assert.Len(t, scores, 5)
}
