// Package core defines the mutable, symmetric, weighted Graph used by every
// other package in lsaroute.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected only: SetEdge(a,b,w) always writes both a→b and b→a.
//   - Non-negative int64 weights; at most one edge per unordered pair.
//   - Storage is a nested map adj[a][b] = weight, so edge lookups are O(1).
//   - A single sync.RWMutex guards the adjacency; listeners have their own.
//
// Invariant (bidirectional symmetry):
//
//	HasEdge(a,b) == HasEdge(b,a), and when true Distance(a,b) == Distance(b,a).
//
// Soft failures:
//
//	Mutators never return errors. Invalid input (missing node, missing edge,
//	empty id, negative weight) is a no-op that reports false.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(id string) bool                // O(1)
//	RemoveNode(id string) bool             // O(deg(id))
//	HasNode(id string) bool                // O(1)
//
//	// Edge lifecycle
//	SetEdge(a, b string, w int64) bool     // O(1)
//	UnsetEdge(a, b string) bool            // O(1)
//	HasEdge(a, b string) bool              // O(1)
//	Distance(a, b string) int64            // O(1), -1 if no edge
//
//	// Query (all slices are sorted copies)
//	Nodes() []string                       // O(V log V)
//	Neighbors(id string) ([]string, bool)  // O(d log d)
//	IsolatedNodes() []string               // O(V log V)
//	Edges() []Edge                         // O(E log E), each pair once
//
//	// Whole-graph
//	Clone() *Graph                         // O(V+E)
//	ReplaceWith(other *Graph)              // O(V+E), single atomic swap
//	Subscribe(l Listener) (cancel func())  // change notification
//
// Determinism:
//
//	Every enumeration is sorted lexicographically by node id, so callers
//	(the dijkstra engine, the lsa serializer) never depend on map order.
//
// Concurrency:
//
//	Graph methods are safe for concurrent use. Algorithms that hold a live
//	reference (dijkstra.Engine) still require the caller not to mutate the
//	graph while a computation is in progress.
package core
