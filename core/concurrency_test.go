// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lsaroute/core"
)

// TestConcurrentSetEdge ensures concurrent SetEdge calls from a hub all land.
func TestConcurrentSetEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	g.AddNode("X")
	for i := 0; i < num; i++ {
		g.AddNode(fmt.Sprintf("V%d", i))
	}

	var wg sync.WaitGroup
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			g.SetEdge("X", fmt.Sprintf("V%d", id), int64(id))
		}(i)
	}
	wg.Wait()

	nbrs, ok := g.Neighbors("X")
	require.True(t, ok)
	require.Len(t, nbrs, num)
}

// TestConcurrentMutateAndRead mixes writers and readers; symmetry must hold after.
func TestConcurrentMutateAndRead(t *testing.T) {
	g := core.NewGraph()
	g.AddNode("Base")
	const rounds = 100

	var wg sync.WaitGroup
	wg.Add(3 * rounds)
	for i := 0; i < rounds; i++ {
		go func(id int) {
			defer wg.Done()
			n := fmt.Sprintf("V%d", id)
			g.AddNode(n)
			g.SetEdge("Base", n, int64(id))
		}(i)
		go func(id int) {
			defer wg.Done()
			g.RemoveNode(fmt.Sprintf("V%d", id))
		}(i)
		go func() {
			defer wg.Done()
			_ = g.Edges()
			_ = g.IsolatedNodes()
		}()
	}
	wg.Wait()

	requireSymmetric(t, g)
}
