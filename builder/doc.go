// Package builder generates deterministic link-state topologies on a
// core.Graph: paths, rings, stars, wheels, complete meshes, grids and
// Erdős–Rényi-like random networks.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – Constructor: a closure that adds nodes and links to a graph.
//     – BuildGraph:  creates a graph and applies constructors in order.
//   - Configuration primitives:
//     – BuilderOption: a function that mutates builderConfig before use.
//     – builderConfig: holds RNG, ID scheme and weight function.
//   - Node-ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – ExcelColumnIDFn:   Excel-style columns ("A","Z","AA",…).
//     – SymbolNumberIDFn:  prefix plus decimal ("r0","r1",…).
//   - Link-weight distributions (WeightFn implementations):
//     – DefaultWeightFn:   constant weight DefaultEdgeWeight.
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform integer in [min,max].
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order give identical
//     graphs, so generated fixtures can be checked into testdata.
//   - Composition: constructors reuse nodes that already exist, so a Star
//     and a Cycle over the same ID scheme share their numbered nodes.
//   - Fast-fail on invalid option parameters via panics in option constructors;
//     constructors themselves return sentinel errors and never panic.
//
// The CLI's generate command writes the result in the link-state text format.
package builder
