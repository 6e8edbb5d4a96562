// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle and node-level queries.
//
// Determinism:
//   - Nodes() and IsolatedNodes() return ids sorted lexicographically ascending.

package core

import "sort"

// AddNode inserts a node with no edges.
//
// Implementation:
//   - Stage 1: Reject the empty id.
//   - Stage 2: Under the write lock, check presence and allocate the neighbor bucket.
//   - Stage 3: Notify listeners with NodeAdded.
//
// Returns:
//   - bool: true if the node was added; false if id is empty or already present.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddNode(id string) bool {
	if id == "" {
		return false
	}

	g.mu.Lock()
	if _, exists := g.adj[id]; exists {
		g.mu.Unlock()
		return false
	}
	g.adj[id] = make(map[string]int64)
	g.mu.Unlock()

	g.notify(Event{Kind: NodeAdded, A: id})

	return true
}

// RemoveNode deletes a node and every edge incident to it, on both ends.
//
// Implementation:
//   - Stage 1: Acquire the write lock so the whole rewrite is atomic to readers.
//   - Stage 2: For every neighbor n, delete the mirror entry adj[n][id].
//   - Stage 3: Delete adj[id] itself.
//   - Stage 4: Notify listeners with NodeRemoved.
//
// Returns:
//   - bool: true if the node existed and was removed.
//
// Complexity:
//   - Time O(deg(id)), Space O(1).
func (g *Graph) RemoveNode(id string) bool {
	g.mu.Lock()
	nbrs, exists := g.adj[id]
	if !exists {
		g.mu.Unlock()
		return false
	}
	for n := range nbrs {
		delete(g.adj[n], id)
	}
	delete(g.adj, id)
	g.mu.Unlock()

	g.notify(Event{Kind: NodeRemoved, A: id})

	return true
}

// HasNode reports whether id is present (empty id ⇒ false).
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[id]

	return ok
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}

// Nodes returns a sorted copy of all node ids.
//
// Complexity:
//   - Time O(V log V), Space O(V).
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	out := make([]string, 0, len(g.adj))
	for id := range g.adj {
		out = append(out, id)
	}
	g.mu.RUnlock()
	sort.Strings(out)

	return out
}

// Neighbors returns the sorted ids linked to id. The second result is false
// when id is not in the graph, which distinguishes "missing" from "isolated".
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) Neighbors(id string) ([]string, bool) {
	g.mu.RLock()
	nbrs, ok := g.adj[id]
	if !ok {
		g.mu.RUnlock()
		return nil, false
	}
	out := make([]string, 0, len(nbrs))
	for n := range nbrs {
		out = append(out, n)
	}
	g.mu.RUnlock()
	sort.Strings(out)

	return out, true
}

// Degree returns the number of distinct neighbors of id, or -1 if absent.
// A self-loop counts once.
func (g *Graph) Degree(id string) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	nbrs, ok := g.adj[id]
	if !ok {
		return -1
	}

	return len(nbrs)
}

// IsolatedNodes returns the sorted ids of nodes with no incident edges.
//
// Complexity:
//   - Time O(V log V), Space O(V).
func (g *Graph) IsolatedNodes() []string {
	g.mu.RLock()
	var out []string
	for id, nbrs := range g.adj {
		if len(nbrs) == 0 {
			out = append(out, id)
		}
	}
	g.mu.RUnlock()
	sort.Strings(out)

	return out
}
