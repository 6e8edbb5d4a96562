// SPDX-License-Identifier: MIT
// Package: lsaroute/builder
//
// impl_path.go - Path(n) and Cycle(n) constructors.
//
// Contract:
//   • Path: n ≥ 2, Cycle: n ≥ 3 (else ErrTooFewVertices).
//   • Adds nodes via cfg.idFn in ascending index order (0..n-1).
//   • Emits links in stable order i–(i+1); Cycle closes with (n-1)–0.
//   • Weights come from cfg.weightFn(cfg.rng), one draw per link.
//
// Complexity:
//   • Time: O(n) nodes + O(n) links.  Space: O(n) for the id slice.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lsaroute/core"
)

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		return chain(g, cfg, methodPath, addNodes(g, cfg, 0, n), false)
	}
}

// Cycle returns a Constructor that builds an n-node ring C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		return chain(g, cfg, methodCycle, addNodes(g, cfg, 0, n), true)
	}
}

// chain links consecutive ids, optionally closing the ring.
func chain(g *core.Graph, cfg builderConfig, method string, ids []string, closed bool) error {
	for i := 0; i+1 < len(ids); i++ {
		if err := link(g, cfg, method, ids[i], ids[i+1]); err != nil {
			return err
		}
	}
	if closed {
		return link(g, cfg, method, ids[len(ids)-1], ids[0])
	}

	return nil
}
