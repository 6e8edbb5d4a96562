// File: engine.go
// Role: the stepwise Engine. Each Next() performs, in order:
//
//  1. Finalize the current node (the source on the first call).
//  2. Relax every unvisited neighbor: discover it, or improve it when the
//     candidate distance is strictly smaller.
//  3. Select the next current node from the frontier (min distance, then min id),
//     moving to PhaseDone when the frontier is empty.
//  4. Capture an immutable Snapshot.

package dijkstra

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lsaroute/core"
)

// Engine is a single-use, pull-driven Dijkstra computation over a live graph.
type Engine struct {
	g       *core.Graph // live reference; must not be mutated until Done
	options Options

	phase    Phase
	step     int
	current  string              // node finalized by the next Next()
	visited  map[string]struct{} // finalized nodes
	frontier map[string]struct{} // discovered, not finalized
	state    PathState           // node → (predecessor, distance)
	final    *Snapshot           // terminal snapshot, set on Done
}

// New validates its inputs and returns an Engine in PhaseFresh.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must be non-empty (ErrEmptySource).
//  3. g must contain source (ErrSourceNotFound).
//
// All three errors match ErrInvalidArgument.
func New(g *core.Graph, source string, opts ...Option) (*Engine, error) {
	cfg := DefaultOptions(source)
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	// The positional source always wins over a Source() option.
	cfg.Source = source

	if g == nil {
		return nil, ErrNilGraph
	}
	if source == "" {
		return nil, ErrEmptySource
	}
	if !g.HasNode(source) {
		return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, source)
	}

	n := g.NodeCount()
	e := &Engine{
		g:        g,
		options:  cfg,
		phase:    PhaseFresh,
		current:  source,
		visited:  make(map[string]struct{}, n),
		frontier: map[string]struct{}{source: {}},
		state:    newPathState(source, n),
	}

	return e, nil
}

// Source returns the fixed source node.
func (e *Engine) Source() string { return e.options.Source }

// Phase returns the current lifecycle state.
func (e *Engine) Phase() Phase { return e.phase }

// HasMore reports whether the frontier is non-empty, i.e. Next will succeed.
func (e *Engine) HasMore() bool { return len(e.frontier) > 0 }

// Final returns the terminal Snapshot once the engine is Done. It is
// idempotent and keeps working after the engine is exhausted.
func (e *Engine) Final() (*Snapshot, bool) {
	if e.final == nil {
		return nil, false
	}

	return e.final, true
}

// Next performs one step and returns its Snapshot. After the frontier has
// emptied it returns ErrExhausted; use Final for the terminal result.
//
// Complexity:
//   - Time O(V + deg(current)·log deg(current)), Space O(V) for the Snapshot copy.
func (e *Engine) Next() (*Snapshot, error) {
	if !e.HasMore() {
		return nil, ErrExhausted
	}

	// 1) Finalize.
	u := e.current
	delete(e.frontier, u)
	e.visited[u] = struct{}{}
	e.step++

	// 2) Relax.
	discovered := e.relax(u)

	// 3) Select next; an empty frontier is the only termination condition.
	next, ok := e.selectNext()
	if ok {
		e.current = next
		e.phase = PhaseStepping
	} else {
		e.current = ""
		e.phase = PhaseDone
	}

	// 4) Snapshot.
	snap := e.capture(u, discovered)
	if e.phase == PhaseDone {
		e.final = snap
	}

	e.options.Logger.Debug("dijkstra step",
		"step", snap.step,
		"visited", u,
		"distance", e.state.entries[u].Distance,
		"discovered", discovered,
		"frontier", len(e.frontier),
		"phase", e.phase.String(),
	)
	e.options.OnStep(snap)

	return snap, nil
}

// Run drains the engine and returns the terminal Snapshot. On an engine that
// is already Done it simply returns Final().
func (e *Engine) Run() (*Snapshot, error) {
	for e.HasMore() {
		if _, err := e.Next(); err != nil {
			return nil, err
		}
	}
	final, ok := e.Final()
	if !ok {
		return nil, ErrExhausted
	}

	return final, nil
}

// relax updates every unvisited neighbor of u and returns the sorted ids
// that were newly discovered or strictly improved.
func (e *Engine) relax(u string) []string {
	neighbors, ok := e.g.Neighbors(u)
	if !ok {
		// u vanished from the graph mid-run; undefined by contract, stay safe.
		return nil
	}

	du := e.state.entries[u].Distance
	var out []string
	var v string
	var w, cand int64
	for _, v = range neighbors {
		if _, done := e.visited[v]; done {
			continue
		}
		w = e.g.Distance(u, v)
		if w < 0 {
			continue
		}
		if w > math.MaxInt64-du {
			continue // would overflow
		}
		cand = du + w
		if cand > e.options.MaxDistance {
			continue
		}

		bp, seen := e.state.entries[v]
		if seen && cand >= bp.Distance {
			continue
		}
		e.state.entries[v] = Backpointer{Predecessor: u, Distance: cand}
		e.frontier[v] = struct{}{}
		out = append(out, v)
	}

	return out
}

// selectNext scans the frontier for the minimum tentative distance, breaking
// ties by the smallest node id.
func (e *Engine) selectNext() (string, bool) {
	best := ""
	bestDist := int64(math.MaxInt64)
	found := false
	var d int64
	for v := range e.frontier {
		d = e.state.entries[v].Distance
		if !found || d < bestDist || (d == bestDist && v < best) {
			best, bestDist, found = v, d, true
		}
	}

	return best, found
}

// capture freezes the current tables into a new Snapshot.
func (e *Engine) capture(visitedNode string, discovered []string) *Snapshot {
	visited := make([]string, 0, len(e.visited))
	for v := range e.visited {
		visited = append(visited, v)
	}
	sort.Strings(visited)

	frontier := make([]string, 0, len(e.frontier))
	for v := range e.frontier {
		frontier = append(frontier, v)
	}
	sort.Strings(frontier)

	newly := make([]string, len(discovered))
	copy(newly, discovered)

	return &Snapshot{
		step:        e.step,
		source:      e.options.Source,
		visitedNode: visitedNode,
		visited:     visited,
		discovered:  newly,
		frontier:    frontier,
		state:       e.state.clone(),
		terminal:    e.phase == PhaseDone,
	}
}
