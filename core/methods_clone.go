// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Whole-graph copy and atomic replacement.
//
// Concurrency:
//   - Clone holds the source read lock only.
//   - ReplaceWith snapshots the source before taking the receiver's write lock,
//     so g.ReplaceWith(g) cannot deadlock.

package core

// Clone returns a deep copy of the topology. Listeners are not copied.
//
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	clone := NewGraph()
	clone.adj = g.snapshotAdj()

	return clone
}

// ReplaceWith atomically replaces the receiver's topology with a deep copy of
// other's. Readers observe either the old graph or the new one, never a mix.
// Listeners registered on the receiver are kept and receive one Replaced event.
//
// This is how a loader adopts a freshly parsed graph only after the whole
// input has been validated.
//
// Complexity: O(V+E).
func (g *Graph) ReplaceWith(other *Graph) {
	var next map[string]map[string]int64
	if other == nil {
		next = make(map[string]map[string]int64)
	} else {
		next = other.snapshotAdj()
	}

	g.mu.Lock()
	g.adj = next
	g.mu.Unlock()

	g.notify(Event{Kind: Replaced})
}

// snapshotAdj deep-copies the adjacency under the read lock.
func (g *Graph) snapshotAdj() map[string]map[string]int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string]map[string]int64, len(g.adj))
	for id, nbrs := range g.adj {
		cp := make(map[string]int64, len(nbrs))
		for n, w := range nbrs {
			cp[n] = w
		}
		out[id] = cp
	}

	return out
}
