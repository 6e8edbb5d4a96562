// SPDX-License-Identifier: MIT
// Package: lsaroute/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lsaroute/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before touching g.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves the builder configuration
// from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; the partial graph is discarded.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	if err := BuildInto(g, bopts, cons...); err != nil {
		return nil, err
	}

	return g, nil
}

// BuildInto applies constructors to an existing graph. Unlike BuildGraph a
// failure may leave g partially extended.
func BuildInto(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("BuildGraph: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return nil
}

// addNodes inserts ids produced by cfg.idFn for indices [from, to).
// Existing nodes are reused.
func addNodes(g *core.Graph, cfg builderConfig, from, to int) []string {
	ids := make([]string, 0, to-from)
	for i := from; i < to; i++ {
		id := cfg.idFn(i)
		g.AddNode(id)
		ids = append(ids, id)
	}

	return ids
}

// link sets u–v with the next configured weight.
func link(g *core.Graph, cfg builderConfig, method, u, v string) error {
	w := cfg.weightFn(cfg.rng)
	if !g.SetEdge(u, v, w) {
		return fmt.Errorf("%s: SetEdge(%s–%s, w=%d): %w", method, u, v, w, ErrConstructFailed)
	}

	return nil
}
