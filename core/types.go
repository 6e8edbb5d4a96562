// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Edge, Event and Listener declarations plus the constructor.

package core

import "sync"

// NoEdge is the sentinel returned by Distance when two nodes are not linked.
const NoEdge int64 = -1

// Edge is a read-only view of one undirected link. A is always the
// lexicographically smaller endpoint (A <= B).
type Edge struct {
	A      string
	B      string
	Weight int64
}

// EventKind classifies a graph mutation delivered to listeners.
type EventKind int

const (
	// NodeAdded fires after AddNode succeeds. Event.A holds the node.
	NodeAdded EventKind = iota + 1

	// NodeRemoved fires after RemoveNode succeeds. Incident edges are
	// removed silently as part of the same mutation.
	NodeRemoved

	// EdgeSet fires after SetEdge succeeds (new edge or weight overwrite).
	EdgeSet

	// EdgeUnset fires after UnsetEdge succeeds.
	EdgeUnset

	// Replaced fires after ReplaceWith swaps the entire topology.
	Replaced
)

// String implements fmt.Stringer.
func (k EventKind) String() string {
	switch k {
	case NodeAdded:
		return "node-added"
	case NodeRemoved:
		return "node-removed"
	case EdgeSet:
		return "edge-set"
	case EdgeUnset:
		return "edge-unset"
	case Replaced:
		return "replaced"
	default:
		return "unknown"
	}
}

// Event describes one successful mutation. For edge events A and B are the
// endpoints in the order the caller passed them; Weight is set for EdgeSet.
type Event struct {
	Kind   EventKind
	A      string
	B      string
	Weight int64
}

// Listener receives graph mutation events. Listeners run synchronously on the
// mutating goroutine, after the graph lock has been released, so they may
// read the graph freely.
type Listener func(Event)

// Graph is a mutable, undirected, weighted graph keyed by string node ids.
//
// mu guards adj; muListen guards the listener registry. The two locks are
// never held together.
type Graph struct {
	mu  sync.RWMutex
	adj map[string]map[string]int64 // node → neighbor → weight

	muListen     sync.Mutex
	listeners    map[uint64]Listener
	nextListener uint64
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		adj:       make(map[string]map[string]int64),
		listeners: make(map[uint64]Listener),
	}
}
