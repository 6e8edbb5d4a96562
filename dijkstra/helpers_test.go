package dijkstra_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lsaroute/core"
)

type edge struct {
	a, b string
	w    int64
}

// sampleEdges: seven routers t..z.
//
//	t–u:4  t–v:2  t–x:7  u–v:3  u–w:3  v–w:4
//	v–x:3  v–y:8  w–y:6  x–y:6  x–z:8  y–z:12
//
// From t: visit order t v u x w y z, final distances
// t0 v2 u4 x5 w6 y10 z13.
var sampleEdges = []edge{
	{"t", "u", 4}, {"t", "v", 2}, {"t", "x", 7},
	{"u", "v", 3}, {"u", "w", 3}, {"v", "w", 4},
	{"v", "x", 3}, {"v", "y", 8}, {"w", "y", 6},
	{"x", "y", 6}, {"x", "z", 8}, {"y", "z", 12},
}

func buildGraph(t testing.TB, edges []edge, extraNodes ...string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range edges {
		g.AddNode(e.a)
		g.AddNode(e.b)
		require.True(t, g.SetEdge(e.a, e.b, e.w))
	}
	for _, n := range extraNodes {
		g.AddNode(n)
	}

	return g
}

// bruteForce returns the shortest distance from s to every reachable node by
// enumerating all simple paths. Only for tiny graphs.
func bruteForce(g *core.Graph, s string) map[string]int64 {
	best := map[string]int64{}
	onPath := map[string]bool{}
	var walk func(n string, d int64)
	walk = func(n string, d int64) {
		if cur, ok := best[n]; !ok || d < cur {
			best[n] = d
		}
		onPath[n] = true
		nbrs, _ := g.Neighbors(n)
		for _, m := range nbrs {
			if onPath[m] {
				continue
			}
			walk(m, d+g.Distance(n, m))
		}
		onPath[n] = false
	}
	walk(s, 0)

	return best
}

// randomGraph builds an n-node graph named a, b, c, … with edge probability p
// and weights in [0, maxW].
func randomGraph(rng *rand.Rand, n int, p float64, maxW int64) *core.Graph {
	g := core.NewGraph()
	ids := make([]string, n)
	for i := range ids {
		ids[i] = string(rune('a' + i))
		g.AddNode(ids[i])
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				g.SetEdge(ids[i], ids[j], rng.Int63n(maxW+1))
			}
		}
	}

	return g
}

// pathCost sums edge weights along path, or returns MaxInt64 if any hop is missing.
func pathCost(g *core.Graph, path []string) int64 {
	var total int64
	for i := 1; i < len(path); i++ {
		w := g.Distance(path[i-1], path[i])
		if w < 0 {
			return math.MaxInt64
		}
		total += w
	}

	return total
}
