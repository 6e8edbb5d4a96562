// File: types.go
// Role: sentinel errors, Phase, Backpointer and the functional Options.

package dijkstra

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
)

// Sentinel errors returned by the engine and its snapshots.
var (
	// ErrInvalidArgument is the umbrella for construction-time misuse.
	ErrInvalidArgument = errors.New("dijkstra: invalid argument")

	// ErrNilGraph indicates that a nil *core.Graph was passed to New.
	ErrNilGraph = fmt.Errorf("%w: graph is nil", ErrInvalidArgument)

	// ErrEmptySource indicates that the provided source node id is empty.
	ErrEmptySource = fmt.Errorf("%w: source node id is empty", ErrInvalidArgument)

	// ErrSourceNotFound indicates that the source node is not in the graph.
	ErrSourceNotFound = fmt.Errorf("%w: source node not found in graph", ErrInvalidArgument)

	// ErrExhausted indicates Next was called after the computation finished.
	ErrExhausted = errors.New("dijkstra: computation exhausted")

	// ErrNodeNotDiscovered indicates a query for a node that has no entry in
	// the PathState at that instant.
	ErrNodeNotDiscovered = errors.New("dijkstra: node not discovered")

	// ErrBrokenChain indicates the predecessor walk failed to reach the source.
	ErrBrokenChain = errors.New("dijkstra: predecessor chain does not reach source")

	// ErrIndexOutOfRange indicates a Route index outside [0, Hops()].
	ErrIndexOutOfRange = errors.New("dijkstra: index out of range")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Unreachable is the distance Dijkstra() reports for nodes outside the
// source's component.
const Unreachable int64 = math.MaxInt64

// Phase is the engine lifecycle state.
type Phase int

const (
	// PhaseFresh: constructed, no step taken yet.
	PhaseFresh Phase = iota

	// PhaseStepping: at least one step taken and the frontier is non-empty.
	PhaseStepping

	// PhaseDone: the frontier emptied; only Final() is meaningful now.
	PhaseDone
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case PhaseFresh:
		return "fresh"
	case PhaseStepping:
		return "stepping"
	case PhaseDone:
		return "done"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Backpointer is a node's predecessor on its best known path and the
// cumulative distance from the source. It is tentative until the node is
// finalized. The source's Backpointer points at itself with distance 0.
type Backpointer struct {
	Predecessor string
	Distance    int64
}

// Options configures an Engine or a Dijkstra() call.
//
// Source      – starting node id (required by Dijkstra(); New takes it positionally).
// ReturnPath  – Dijkstra() only: return the predecessor map.
// MaxDistance – candidates with distance > MaxDistance are never discovered.
// Logger      – receives one Debug record per step.
// OnStep      – invoked with every Snapshot right after it is captured.
type Options struct {
	Source      string
	ReturnPath  bool
	MaxDistance int64
	Logger      *slog.Logger
	OnStep      func(*Snapshot)
}

// Option represents a functional option for configuring the engine.
type Option func(*Options)

// Source sets the Source field of Options to the given string.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithReturnPath enables the predecessor map in Dijkstra()'s result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance caps exploration: nodes whose candidate distance would
// exceed max are not discovered. Negative values panic with ErrBadMaxDistance
// as soon as the option is constructed.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithLogger routes per-step Debug records to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnStep registers a hook run for every produced Snapshot.
func WithOnStep(fn func(*Snapshot)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// DefaultOptions returns Options with no distance cap, a discard logger and
// a no-op step hook.
func DefaultOptions(source string) Options {
	return Options{
		Source:      source,
		MaxDistance: math.MaxInt64,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		OnStep:      func(*Snapshot) {},
	}
}
