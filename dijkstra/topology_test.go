package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lsaroute/bfs"
	"github.com/katalvlaran/lsaroute/builder"
	"github.com/katalvlaran/lsaroute/dijkstra"
)

// On a unit-weight lattice every shortest distance is the Manhattan distance.
func TestGridUnitWeightsManhattan(t *testing.T) {
	const rows, cols = 4, 5
	g, err := builder.BuildGraph(nil, builder.Grid(rows, cols))
	require.NoError(t, err)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(builder.GridID(0, 0)))
	require.NoError(t, err)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			require.Equal(t, int64(r+c), dist[builder.GridID(r, c)], "cell %d,%d", r, c)
		}
	}
}

// With unit weights the engine's distances equal BFS hop counts.
func TestUnitWeightsMatchHopCounts(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(9)},
		builder.RandomSparse(14, 0.25))
	require.NoError(t, err)

	final, err := mustEngine(t, g, "0").Run()
	require.NoError(t, err)
	hops, err := bfs.BFS(g, "0")
	require.NoError(t, err)

	require.Len(t, final.Visited(), len(hops.Order))
	for n, h := range hops.Depth {
		d, err := final.Distance(n)
		require.NoError(t, err)
		require.Equal(t, int64(h), d, "node %s", n)
	}
}

// A wheel with heavy spokes routes around the rim when that is cheaper.
func TestWheelPrefersRim(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithConstantWeight(1)}, builder.Wheel(6))
	require.NoError(t, err)
	for _, leaf := range []string{"1", "2", "3", "4", "5"} {
		require.True(t, g.SetEdge(builder.CenterVertexID, leaf, 10))
	}

	final, err := mustEngine(t, g, "1").Run()
	require.NoError(t, err)
	r, err := final.Route("3")
	require.NoError(t, err)
	require.Equal(t, "1>2>3", r.String())
	require.Equal(t, int64(2), r.Distance)
}
