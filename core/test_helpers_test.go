// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lsaroute/core"
)

// Common node ids used across core tests.
const (
	NodeEmpty = ""

	NodeA = "A"
	NodeB = "B"
	NodeC = "C"
	NodeD = "D"
	NodeX = "X"
)

// Common weights (avoid magic numbers in test bodies).
const (
	Weight0  int64 = 0
	Weight1  int64 = 1
	Weight2  int64 = 2
	Weight5  int64 = 5
	Weight10 int64 = 10
)

// sampleEdges is the seven-router topology (t..z) used across the module.
var sampleEdges = []core.Edge{
	{A: "t", B: "u", Weight: 4},
	{A: "t", B: "v", Weight: 2},
	{A: "t", B: "x", Weight: 7},
	{A: "u", B: "v", Weight: 3},
	{A: "u", B: "w", Weight: 3},
	{A: "v", B: "w", Weight: 4},
	{A: "v", B: "x", Weight: 3},
	{A: "v", B: "y", Weight: 8},
	{A: "w", B: "y", Weight: 6},
	{A: "x", B: "y", Weight: 6},
	{A: "x", B: "z", Weight: 8},
	{A: "y", B: "z", Weight: 12},
}

// buildGraph creates a graph from edges, adding endpoints as needed.
func buildGraph(t *testing.T, edges []core.Edge) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range edges {
		g.AddNode(e.A)
		g.AddNode(e.B)
		require.True(t, g.SetEdge(e.A, e.B, e.Weight), "SetEdge(%s,%s)", e.A, e.B)
	}

	return g
}

// requireSymmetric asserts the bidirectional symmetry invariant for every pair.
func requireSymmetric(t *testing.T, g *core.Graph) {
	t.Helper()
	nodes := g.Nodes()
	for _, a := range nodes {
		for _, b := range nodes {
			require.Equal(t, g.HasEdge(a, b), g.HasEdge(b, a), "HasEdge symmetry %s/%s", a, b)
			require.Equal(t, g.Distance(a, b), g.Distance(b, a), "Distance symmetry %s/%s", a, b)
		}
	}
}
