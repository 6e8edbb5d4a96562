// Package bfs provides breadth-first search over a core.Graph, ignoring edge
// weights, for reachability and hop counts.
//
// What
//
//   - BFS(g, start) visits nodes in non-decreasing hop count and returns a
//     BFSResult with the visit Order and the Depth (hops) of every reached node.
//   - Partition(g, start) splits the graph into the connected component of
//     start and everything else from a single walk. The route command uses it
//     to tell nodes cut off by a distance cap from nodes in other components.
//   - WithContext bounds a walk by a context.
//
// Determinism
//
//	core.Graph.Neighbors returns ids sorted, and BFS enqueues neighbors in that
//	order, so the visit sequence is fully reproducible.
//
// Complexity (V = |nodes|, E = |edges|)
//
//   - Time:   O(V + E·log d) (sorting each neighbor list)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil: nil graph.
//   - ErrStartVertexNotFound: start is not in the graph.
//   - context errors when the supplied Ctx is cancelled.
package bfs
