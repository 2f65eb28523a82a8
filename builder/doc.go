// SPDX-License-Identifier: MIT
// Package: algoviz/builder
//
// Package builder generates random connected graphs for the visualizer's
// "random graph" action.
//
// Canonical model:
//   - Spanning tree first: node i (i ≥ 1) attaches to a uniformly chosen
//     earlier node, so the result is always connected.
//   - Then up to `extra` additional edges are drawn without replacement from
//     the pairs not yet linked. No self-loops, no parallel edges.
//   - Weights come from a uniform integer draw over [min, max].
//
// Determinism:
//   - Stable node order: index ascending via the ID scheme.
//   - Fixed draw order: tree links, then the shuffle of candidate pairs, with
//     weights drawn in the order edges are added.
//   - Identical output for a fixed seed and identical options.
//
// Errors are sentinel values; constructors never panic on runtime input.
package builder
