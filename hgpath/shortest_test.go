package hgpath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gonum-extra/hgpath"
	"github.com/gonum-extra/hgraph"
	"github.com/gonum-extra/hgraph/hgtest"
)

func TestBFSPathGraphDistances(t *testing.T) {
	g := hgtest.Path()
	tree := hgpath.BFS(g, hgtest.V(1))

	want := map[int64]float64{1: 0, 2: 1, 3: 2, 4: 3, 5: 4}
	for id, d := range want {
		got, ok := tree.Distance(hgtest.V(id))
		require.True(t, ok)
		assert.Equal(t, d, got)
	}
}

func TestBFSUnreachableVertexAbsent(t *testing.T) {
	g := hgtest.DisconnectedDirected()
	tree := hgpath.BFS(g, hgtest.V(1))

	_, ok := tree.Distance(hgtest.V(5))
	assert.False(t, ok)
}

func TestDijkstraWithUnitWeightsMatchesBFS(t *testing.T) {
	g := hgtest.Diamond()
	bfs := hgpath.BFS(g, hgtest.V(1))
	dij := hgpath.Dijkstra(g, hgtest.V(1), hgraph.UniformWeight)

	for id := int64(1); id <= 5; id++ {
		wantD, wantOK := bfs.Distance(hgtest.V(id))
		gotD, gotOK := dij.Distance(hgtest.V(id))
		assert.Equal(t, wantOK, gotOK)
		assert.Equal(t, wantD, gotD)
	}
}

func TestDijkstraNegativeWeightPanics(t *testing.T) {
	g := hgtest.Path()
	weight := func(hgraph.Edge) float64 { return -1 }
	assert.PanicsWithValue(t, hgpath.ErrNegativeWeight, func() {
		hgpath.Dijkstra(g, hgtest.V(1), weight)
	})
}

func TestShortestPathCountStar(t *testing.T) {
	g := hgtest.Star()
	tree := hgpath.BFS(g, hgtest.V(1))
	// every leaf has exactly one shortest path from the center.
	for id := int64(2); id <= 6; id++ {
		assert.Equal(t, 1.0, tree.PathCount(hgtest.V(id)))
	}
	assert.Equal(t, 1.0, tree.PathCount(hgtest.V(1)))
}

func TestShortestPathCountDiamondHasTwoPaths(t *testing.T) {
	g := hgtest.Diamond()
	tree := hgpath.BFS(g, hgtest.V(1))
	// v1-v2-v3-v5 and v1-v2-v4-v5 are both shortest paths to v5.
	assert.Equal(t, 2.0, tree.PathCount(hgtest.V(5)))
}

func TestOrderIsNonDecreasingDistance(t *testing.T) {
	g := hgtest.Path()
	tree := hgpath.BFS(g, hgtest.V(1))
	order := tree.Order()
	require.Len(t, order, 5)

	prev := -1.0
	for _, v := range order {
		d, _ := tree.Distance(v)
		assert.GreaterOrEqual(t, d, prev)
		prev = d
	}
}

func TestDistanceMapIsACopy(t *testing.T) {
	g := hgtest.Path()
	tree := hgpath.BFS(g, hgtest.V(1))
	m := tree.DistanceMap()
	m[1] = 999

	got, _ := tree.Distance(hgtest.V(1))
	assert.Equal(t, 0.0, got)
}
