// File: snapshot.go
// Role: Immutable per-step record and its read-only query surface.

package dijkstra

import "fmt"

// Snapshot is the outcome of one Engine step. Every field is a private copy
// taken at capture time, so later steps never alter a retained Snapshot.
type Snapshot struct {
	step        int
	source      string
	visitedNode string
	visited     []string // sorted, post-finalize
	discovered  []string // sorted, newly discovered or improved this step
	frontier    []string // sorted, discovered but not finalized
	state       PathState
	terminal    bool
}

// Step returns the 1-based step number.
func (s *Snapshot) Step() int { return s.step }

// Source returns the computation's source node.
func (s *Snapshot) Source() string { return s.source }

// VisitedNode returns the node finalized by this step.
func (s *Snapshot) VisitedNode() string { return s.visitedNode }

// Terminal reports whether this is the last Snapshot of its computation.
func (s *Snapshot) Terminal() bool { return s.terminal }

// Visited returns a sorted copy of all finalized nodes, this step's included.
func (s *Snapshot) Visited() []string { return cloneStrings(s.visited) }

// NewlyDiscovered returns a sorted copy of the nodes first discovered or
// improved during this step.
func (s *Snapshot) NewlyDiscovered() []string { return cloneStrings(s.discovered) }

// Frontier returns a sorted copy of the nodes discovered but not yet finalized.
func (s *Snapshot) Frontier() []string { return cloneStrings(s.frontier) }

// State returns the frozen PathState. It is shared, but PathState exposes no
// mutators, so callers cannot disturb the Snapshot through it.
func (s *Snapshot) State() PathState { return s.state }

// IsVisited reports whether n was finalized at or before this step.
func (s *Snapshot) IsVisited(n string) bool {
	for _, v := range s.visited {
		if v == n {
			return true
		}
	}

	return false
}

// Distance returns n's distance from the source as known at this step.
// For visited nodes it is final; for frontier nodes it is tentative.
func (s *Snapshot) Distance(n string) (int64, error) {
	bp, ok := s.state.Lookup(n)
	if !ok {
		return 0, fmt.Errorf("%w: %q at step %d", ErrNodeNotDiscovered, n, s.step)
	}

	return bp.Distance, nil
}

// Chain returns the node sequence source … n built from the predecessor table.
func (s *Snapshot) Chain(n string) ([]string, error) {
	path, err := s.state.Chain(s.source, n)
	if err != nil {
		return nil, fmt.Errorf("step %d: %w", s.step, err)
	}

	return path, nil
}

// Route returns the chain to n together with its cumulative distance.
func (s *Snapshot) Route(n string) (Route, error) {
	path, err := s.Chain(n)
	if err != nil {
		return Route{}, err
	}
	d, _ := s.Distance(n)

	return Route{Source: s.source, Target: n, Nodes: path, Distance: d}, nil
}

// Routes returns a Route for every discovered node, ordered by node id.
// The source's own Route is included (single node, distance 0).
func (s *Snapshot) Routes() []Route {
	nodes := s.state.Nodes()
	out := make([]Route, 0, len(nodes))
	for _, n := range nodes {
		r, err := s.Route(n)
		if err != nil {
			continue
		}
		out = append(out, r)
	}

	return out
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)

	return out
}
