// SPDX-License-Identifier: MIT
// Package: lsaroute/builder
//
// impl_complete.go - Complete(n) constructor (full mesh K_n).
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Links every unordered pair {i,j}, i<j, in (i asc, j asc) order.
//
// Complexity:
//   • Time: O(n²) links.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lsaroute/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		ids := addNodes(g, cfg, 0, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := link(g, cfg, methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
