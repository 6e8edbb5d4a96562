package dijkstra

import (
	"fmt"
	"strings"
)

// RouteSeparator joins node ids in Route.String.
const RouteSeparator = ">"

// Route is a reconstructed path from Source to Target.
// Nodes[0] == Source and Nodes[len(Nodes)-1] == Target.
type Route struct {
	Source   string
	Target   string
	Nodes    []string
	Distance int64
}

// Hops returns the number of edges on the route.
func (r Route) Hops() int {
	if len(r.Nodes) == 0 {
		return 0
	}

	return len(r.Nodes) - 1
}

// Node returns the i-th node on the route, 0 being the source.
func (r Route) Node(i int) (string, error) {
	if i < 0 || i >= len(r.Nodes) {
		return "", fmt.Errorf("%w: %d not in [0,%d]", ErrIndexOutOfRange, i, r.Hops())
	}

	return r.Nodes[i], nil
}

// String renders the route as "t>v>x".
func (r Route) String() string {
	return strings.Join(r.Nodes, RouteSeparator)
}
