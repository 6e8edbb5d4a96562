// Package dijkstra provides a stepwise, observable implementation of Dijkstra's
// single-source shortest-path algorithm over a core.Graph.
//
// Overview:
//
//   - Instead of one opaque call, an Engine exposes the computation as a
//     pull-driven sequence of steps: each Next() finalizes exactly one node,
//     relaxes its unvisited neighbors and returns an immutable Snapshot.
//   - A Snapshot records the node just visited, the visited set, the nodes
//     newly discovered or improved by that step, and a frozen copy of the
//     predecessor/distance table (PathState). Any shortest path known at that
//     instant can be rebuilt from it with Snapshot.Chain.
//   - Dijkstra() remains available as a one-shot call returning dist/prev maps.
//
// State machine:
//
//	Fresh ──Next()──▶ Stepping ──Next()…──▶ Done
//
//	HasMore() is true while the frontier (discovered but not finalized) is
//	non-empty. The frontier emptying is the only termination condition, so a
//	disconnected graph stops at the edge of the source's component.
//
// Determinism:
//
//   - Next node: minimum tentative distance; ties broken by the
//     lexicographically smallest node id.
//   - Neighbors are relaxed in sorted id order.
//
// Complexity:
//
//   - Selection is a linear scan of the frontier: O(V) per step.
//   - Relaxation touches each edge at most twice: O(E) total.
//   - Overall O(V² + E) time; O(V) space per retained Snapshot.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph, ErrEmptySource, ErrSourceNotFound: construction misuse;
//     all three also match ErrInvalidArgument via errors.Is.
//   - ErrExhausted: Next() called after the engine reached Done.
//   - ErrNodeNotDiscovered: Distance/Chain on a node absent from a Snapshot.
//   - ErrBrokenChain: predecessor walk did not reach the source.
//   - ErrIndexOutOfRange: Route.Node index outside [0, Hops()].
//   - ErrBadMaxDistance: WithMaxDistance(<0) (panics, as option misuse).
//
// Thread safety:
//
//   - An Engine must be driven by one goroutine. It holds a live reference to
//     the graph; mutating the graph between Fresh and Done is undefined.
//   - Snapshots are immutable and safe to share.
//
// Cancellation is free: stop calling Next(). There is no reset; build a new
// Engine for a new computation.
package dijkstra
