// SPDX-License-Identifier: MIT
// Package: lsaroute/builder
//
// impl_star.go - Star(n) and Wheel(n) constructors.
//
// Contract:
//   • Star: n ≥ 2, Wheel: n ≥ 4 (else ErrTooFewVertices).
//   • The hub has the fixed ID CenterVertexID; the n-1 others come from
//     cfg.idFn(1..n-1).
//   • Star emits spokes Center–leaf[i] for ascending i. Wheel emits the
//     spokes first, then the rim ring leaf[1]–leaf[2]–…–leaf[n-1]–leaf[1].

package builder

import (
	"fmt"

	"github.com/katalvlaran/lsaroute/core"
)

// CenterVertexID is the hub of Star and Wheel.
const CenterVertexID = "Center"

const (
	methodStar    = "Star"
	methodWheel   = "Wheel"
	minStarNodes  = 2
	minWheelNodes = 4
)

// Star returns a Constructor that builds a star with n nodes: one hub
// and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		_, err := spokes(g, cfg, methodStar, n)

		return err
	}
}

// Wheel returns a Constructor that builds W_n: a hub joined to every node
// of an (n-1)-ring.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		rim, err := spokes(g, cfg, methodWheel, n)
		if err != nil {
			return err
		}

		return chain(g, cfg, methodWheel, rim, true)
	}
}

func spokes(g *core.Graph, cfg builderConfig, method string, n int) ([]string, error) {
	g.AddNode(CenterVertexID)
	leaves := addNodes(g, cfg, 1, n)
	for _, leaf := range leaves {
		if err := link(g, cfg, method, CenterVertexID, leaf); err != nil {
			return nil, err
		}
	}

	return leaves, nil
}
