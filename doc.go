// Package lsaroute is a link-state shortest-path toolkit: a mutable,
// thread-safe weighted graph and a Dijkstra engine that can be driven one
// step at a time, with every intermediate state exposed as an immutable
// snapshot.
//
// What is inside?
//
//	core/      - symmetric weighted Graph with change listeners
//	dijkstra/  - stepwise Engine, Snapshot, PathState, Route and a one-shot Dijkstra()
//	lsa/       - parser and writer for the "node: neighbor:weight ..." text format
//	bfs/       - hop-count traversal, Reachable and Unreachable sets
//	builder/   - deterministic synthetic topologies (grid, ring, random, ...)
//	config/    - YAML + environment configuration
//	logging/   - slog logger construction
//	cli/       - the lsaroute command (show, steps, route, watch, generate)
//
// Quick example:
//
//	g := core.NewGraph()
//	g.AddNode("t"); g.AddNode("v")
//	g.SetEdge("t", "v", 2)
//	e, _ := dijkstra.New(g, "t")
//	for e.HasMore() {
//		snap, _ := e.Next()
//		fmt.Println(snap.VisitedNode(), snap.Visited())
//	}
//
//	go install github.com/katalvlaran/lsaroute/cmd/lsaroute@latest
package lsaroute
