// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lsaroute/core"
)

func TestSubscribe_ReceivesSuccessfulMutationsOnly(t *testing.T) {
	g := core.NewGraph()
	var got []core.Event
	cancel := g.Subscribe(func(ev core.Event) { got = append(got, ev) })

	g.AddNode(NodeA)
	g.AddNode(NodeA) // soft failure: no event
	g.AddNode(NodeB)
	g.SetEdge(NodeA, NodeB, Weight5)
	g.SetEdge(NodeA, NodeX, Weight5) // soft failure
	g.UnsetEdge(NodeB, NodeA)
	g.RemoveNode(NodeB)
	g.ReplaceWith(core.NewGraph())

	require.Equal(t, []core.Event{
		{Kind: core.NodeAdded, A: NodeA},
		{Kind: core.NodeAdded, A: NodeB},
		{Kind: core.EdgeSet, A: NodeA, B: NodeB, Weight: Weight5},
		{Kind: core.EdgeUnset, A: NodeB, B: NodeA},
		{Kind: core.NodeRemoved, A: NodeB},
		{Kind: core.Replaced},
	}, got)

	cancel()
	cancel() // idempotent
	g.AddNode(NodeC)
	require.Len(t, got, 6, "no events after cancel")
}

func TestSubscribe_ListenerMayReadGraph(t *testing.T) {
	g := core.NewGraph()
	var seen []string
	g.Subscribe(func(core.Event) { seen = g.Nodes() })

	g.AddNode(NodeA)
	require.Equal(t, []string{NodeA}, seen)
}

func TestSubscribe_OrderAndNil(t *testing.T) {
	g := core.NewGraph()
	var order []int
	g.Subscribe(func(core.Event) { order = append(order, 1) })
	g.Subscribe(nil)()
	g.Subscribe(func(core.Event) { order = append(order, 2) })

	g.AddNode(NodeA)
	require.Equal(t, []int{1, 2}, order)
}

func TestEventKind_String(t *testing.T) {
	require.Equal(t, "edge-set", core.EdgeSet.String())
	require.Equal(t, "replaced", core.Replaced.String())
	require.Equal(t, "unknown", core.EventKind(0).String())
}
