// File: state.go
// Role: PathState (node → Backpointer table) and predecessor-chain reconstruction.

package dijkstra

import (
	"fmt"
	"sort"
)

// PathState maps every discovered node to its Backpointer. A PathState handed
// out by a Snapshot is a private copy and is never mutated afterwards.
type PathState struct {
	entries map[string]Backpointer
}

// newPathState seeds the table with the source pointing at itself.
func newPathState(source string, capacity int) PathState {
	entries := make(map[string]Backpointer, capacity)
	entries[source] = Backpointer{Predecessor: source, Distance: 0}

	return PathState{entries: entries}
}

// Lookup returns the Backpointer for n and whether n has been discovered.
func (p PathState) Lookup(n string) (Backpointer, bool) {
	bp, ok := p.entries[n]

	return bp, ok
}

// Len returns the number of discovered nodes (source included).
func (p PathState) Len() int { return len(p.entries) }

// Nodes returns the discovered node ids, sorted.
func (p PathState) Nodes() []string {
	out := make([]string, 0, len(p.entries))
	for n := range p.entries {
		out = append(out, n)
	}
	sort.Strings(out)

	return out
}

// Chain walks predecessor pointers backward from target until it reaches
// source and returns the ordered sequence source … target.
//
// Implementation:
//   - Stage 1: Require target to be present (ErrNodeNotDiscovered).
//   - Stage 2: Walk target → predecessor → … , stopping exactly when the walked
//     node equals source.
//   - Stage 3: Reverse into source-first order.
//
// Termination:
//   - Predecessors are always finalized strictly earlier, so the relation is
//     acyclic. The walk is still bounded by Len() steps and reports
//     ErrBrokenChain if it overruns or hits a missing entry.
//
// Complexity:
//   - Time O(L), Space O(L) where L is the path length.
func (p PathState) Chain(source, target string) ([]string, error) {
	if _, ok := p.entries[target]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotDiscovered, target)
	}

	path := []string{target}
	cur := target
	for cur != source {
		if len(path) > len(p.entries) {
			return nil, fmt.Errorf("%w: cycle while walking from %q", ErrBrokenChain, target)
		}
		bp, ok := p.entries[cur]
		if !ok {
			return nil, fmt.Errorf("%w: %q has no entry", ErrBrokenChain, cur)
		}
		cur = bp.Predecessor
		path = append(path, cur)
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// clone returns an independent copy; used when capturing a Snapshot.
func (p PathState) clone() PathState {
	cp := make(map[string]Backpointer, len(p.entries))
	for n, bp := range p.entries {
		cp[n] = bp
	}

	return PathState{entries: cp}
}
