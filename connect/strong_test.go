package connect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gonum-extra/connect"
	"github.com/gonum-extra/hgraph/hgtest"
)

func TestStrongOnUndirectedGraphErrors(t *testing.T) {
	g := hgtest.Star()
	_, err := connect.Strong(g)
	assert.ErrorIs(t, err, connect.ErrUndirected)
}

func TestStrongDirectedTriangleIsOneComponent(t *testing.T) {
	g := hgtest.DirectedTriangle()
	sccs, err := connect.Strong(g)
	require.NoError(t, err)
	require.Len(t, sccs, 1)
	assert.Len(t, sccs[0], 3)
}

func TestStrongDisconnectedDirected(t *testing.T) {
	g := hgtest.DisconnectedDirected()
	sccs, err := connect.Strong(g)
	require.NoError(t, err)
	require.Len(t, sccs, 3)

	sizes := map[int]int{}
	for _, c := range sccs {
		sizes[len(c)]++
	}
	assert.Equal(t, 1, sizes[3])
	assert.Equal(t, 2, sizes[1])
}

func TestStrongIsDisjointPartition(t *testing.T) {
	g := hgtest.DisconnectedDirected()
	sccs, err := connect.Strong(g)
	require.NoError(t, err)

	seen := make(map[int64]bool)
	total := 0
	for _, c := range sccs {
		for id := range c {
			assert.False(t, seen[id])
			seen[id] = true
			total++
		}
	}
	assert.Equal(t, g.VertexCount(), total)
}
