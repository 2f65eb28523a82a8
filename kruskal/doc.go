// SPDX-License-Identifier: MIT

// Package kruskal replays Kruskal's minimum-spanning-forest algorithm over a
// *core.Graph and records every decision as an ordered, replayable trace.
//
// What & Why
//
//   - The visualizer animates Kruskal one decision at a time: an edge is put
//     "under evaluation", then either joins the forest or is discarded because
//     it would close a cycle. Simulate produces that script up front so the UI
//     (or a test) can replay it independently of any rendering.
//
// Trace protocol
//
//   - Edges are deduplicated by their unordered endpoint pair; the first
//     sighting, scanning nodes and then incidents in insertion order, wins and
//     keeps its orientation (source = scanned node, target = neighbor).
//   - Edges are stable-sorted ascending by weight. Ties keep discovery order
//     (TieBreakDiscovery, default) or fall back to the canonical endpoint pair
//     (TieBreakCanonical), which is independent of insertion order.
//   - Every edge yields exactly one StepConsider followed by exactly one of
//     StepAdd or StepReject, so len(steps) == 2·|edges|.
//   - All edges are scanned; there is no early exit once the forest spans.
//
// Edge cases
//
//   - Empty graph, or nodes without edges: empty trace, no error.
//   - Disconnected graph: one tree per component, no error.
//   - Self-loop: always StepReject (a node is connected to itself).
//
// Error Conditions
//
//   - ErrNilGraph        : graph is nil.
//   - ErrOptionViolation : an Option received an unsupported value.
//   - disjointset.ErrUnknownElement (wrapped): an incident names a node that
//     is not a key of the graph. The generator does not repair input; run
//     core.Validate first when the snapshot comes from an untrusted source.
//
// Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
package kruskal
