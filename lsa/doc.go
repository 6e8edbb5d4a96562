// Package lsa reads and writes the line-oriented link-state text format.
//
// Format:
//
//	<node>: <neighbor>:<weight> <neighbor>:<weight> ...
//
//   - One node per non-blank line; blank lines are ignored.
//   - Every neighbor token must be exactly one "id:weight" pair with a
//     non-negative integer weight. Anything else is a *FormatError.
//   - An edge may be declared from one side only. Both endpoints are created
//     and the edge is set in both directions with the same weight.
//   - A later declaration of the same pair overwrites the earlier weight.
//
// Loading is all-or-nothing: Parse builds a fresh core.Graph, and LoadInto
// adopts it into the caller's graph via core.Graph.ReplaceWith only after the
// whole input parsed, so a malformed file never leaves a graph half-mutated.
//
// Serialization writes one line per node in sorted order, with neighbors
// sorted, so output is stable and round-trips through Parse to an equal graph.
package lsa
