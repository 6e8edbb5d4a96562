package dijkstra

import "github.com/katalvlaran/lsaroute/core"

// Dijkstra computes shortest distances from Options.Source to every node of g
// by draining an Engine. It keeps the map-based result shape for callers that
// do not need the step sequence.
//
// Returns:
//
//   - dist: node → minimum distance; Unreachable (math.MaxInt64) when not reached.
//   - prev: predecessor map if WithReturnPath() was given (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u;
//     prev[source] == "" and prev[v] == "" for unreachable v.
//   - err:  construction errors from New (all match ErrInvalidArgument).
//
// Complexity:
//
//   - Time:  O(V² + E)
//   - Space: O(V) plus one Snapshot per step while draining.
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	cfg := DefaultOptions("")
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}

	e, err := New(g, cfg.Source, opts...)
	if err != nil {
		return nil, nil, err
	}
	final, err := e.Run()
	if err != nil {
		return nil, nil, err
	}

	nodes := g.Nodes()
	dist := make(map[string]int64, len(nodes))
	var prev map[string]string
	if cfg.ReturnPath {
		prev = make(map[string]string, len(nodes))
	}

	state := final.State()
	for _, v := range nodes {
		bp, ok := state.Lookup(v)
		if !ok {
			dist[v] = Unreachable
			if prev != nil {
				prev[v] = ""
			}
			continue
		}
		dist[v] = bp.Distance
		if prev != nil {
			if v == cfg.Source {
				prev[v] = ""
			} else {
				prev[v] = bp.Predecessor
			}
		}
	}

	return dist, prev, nil
}
