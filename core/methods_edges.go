// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle and edge-level queries.
//
// Invariant:
//   - adj[a][b] exists iff adj[b][a] exists, with identical weight. Every
//     mutator in this file writes or deletes both directions under one lock.

package core

import "sort"

// SetEdge links a and b with weight w in both directions, overwriting any
// previous weight.
//
// Implementation:
//   - Stage 1: Reject negative weights.
//   - Stage 2: Under the write lock, require both endpoints to exist.
//   - Stage 3: Write adj[a][b] and adj[b][a].
//   - Stage 4: Notify listeners with EdgeSet.
//
// Returns:
//   - bool: false if either node is absent or w < 0; true otherwise.
//
// Notes:
//   - a == b stores a self-loop; it never shortens any path.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) SetEdge(a, b string, w int64) bool {
	if w < 0 {
		return false
	}

	g.mu.Lock()
	na, okA := g.adj[a]
	nb, okB := g.adj[b]
	if !okA || !okB {
		g.mu.Unlock()
		return false
	}
	na[b] = w
	nb[a] = w
	g.mu.Unlock()

	g.notify(Event{Kind: EdgeSet, A: a, B: b, Weight: w})

	return true
}

// UnsetEdge removes the edge between a and b in both directions.
//
// Returns:
//   - bool: false if either node is absent or they are not linked.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) UnsetEdge(a, b string) bool {
	g.mu.Lock()
	if !g.hasEdgeLocked(a, b) {
		g.mu.Unlock()
		return false
	}
	delete(g.adj[a], b)
	delete(g.adj[b], a)
	g.mu.Unlock()

	g.notify(Event{Kind: EdgeUnset, A: a, B: b})

	return true
}

// HasEdge reports whether a and b are linked (false if either is absent).
// Complexity: O(1).
func (g *Graph) HasEdge(a, b string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasEdgeLocked(a, b)
}

// Distance returns the weight of edge a–b, or NoEdge (-1) if there is none.
// Complexity: O(1).
func (g *Graph) Distance(a, b string) int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.hasEdgeLocked(a, b) {
		return NoEdge
	}

	return g.adj[a][b]
}

// EdgeCount returns the number of undirected edges (each pair counted once).
//
// Complexity:
//   - Time O(V+E), Space O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n := 0
	for a, nbrs := range g.adj {
		for b := range nbrs {
			if a <= b {
				n++
			}
		}
	}

	return n
}

// Edges returns every undirected edge once, with A <= B, sorted by (A, B).
//
// Complexity:
//   - Time O(E log E), Space O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	var out []Edge
	for a, nbrs := range g.adj {
		for b, w := range nbrs {
			if a <= b {
				out = append(out, Edge{A: a, B: b, Weight: w})
			}
		}
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})

	return out
}

// hasEdgeLocked checks both directions; caller holds mu (read or write).
func (g *Graph) hasEdgeLocked(a, b string) bool {
	na, okA := g.adj[a]
	nb, okB := g.adj[b]
	if !okA || !okB {
		return false
	}
	_, ab := na[b]
	_, ba := nb[a]

	return ab && ba
}
