package bfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/lsaroute/core"
)

var (
	// ErrGraphNil is returned for a nil graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start node is not in the graph.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")
)

// Option adjusts a single BFS run.
type Option func(*BFSOptions)

// BFSOptions carries the per-run settings. The zero value is not usable;
// start from DefaultOptions.
type BFSOptions struct {
	// Ctx is checked once per dequeued node.
	Ctx context.Context
}

// DefaultOptions runs under context.Background.
func DefaultOptions() BFSOptions {
	return BFSOptions{Ctx: context.Background()}
}

// WithContext makes the walk stop with ctx.Err() once ctx is done.
// A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// BFSResult is what a walk leaves behind. Order lists nodes as they were
// dequeued; Depth maps every reached node to its hop count from the start.
type BFSResult struct {
	Order []string
	Depth map[string]int
}

// Partition splits the nodes of g into those the walk reached and those it
// did not. Both slices are sorted. Nodes added to g after the walk land in
// the second slice.
func (r *BFSResult) Partition(g *core.Graph) (reached, unreached []string) {
	for _, n := range g.Nodes() {
		if _, ok := r.Depth[n]; ok {
			reached = append(reached, n)
		} else {
			unreached = append(unreached, n)
		}
	}

	return reached, unreached
}

