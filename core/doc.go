// SPDX-License-Identifier: MIT

// Package core defines the Graph snapshot consumed by the step generators:
// an ordered, weighted adjacency structure keyed by node id.
//
// The Graph G = (V,E) is stored as
//
//	order      []string              // node ids in insertion order
//	adjacency  map[string][]Incident // node id → incident (neighbor, weight) pairs
//
// Why an explicit order?
//
//   - Kruskal breaks weight ties by discovery order. Go map iteration is
//     randomized, so the node order and every adjacency list are kept as
//     slices to make repeated runs over the same graph byte-identical.
//
// Undirected contract:
//
//	– AddEdge(a, b, w) writes (b,w) into a's list and (a,w) into b's list.
//	– AddArc(from, to, w) writes a single direction. It exists to model
//	  snapshots produced by a caller that broke the undirected invariant;
//	  the core never repairs such a snapshot.
//	– Validate(g) reports dangling neighbors, non-positive weights and
//	  asymmetric adjacency. Generators do not call it.
//
// Codec:
//
//	Decode accepts the UI document {"A":[{"toNode":"B","weight":1}],...}
//	either as JSON or YAML and keeps key order. MarshalJSON writes the same
//	shape back in insertion order.
//
// All methods are safe for concurrent use; reads return copies.
//
// Errors:
//
//	ErrEmptyNodeID      - node id is the empty string.
//	ErrNodeNotFound     - requested node does not exist.
//	ErrBadWeight        - weight is not a positive integer.
//	ErrDanglingNeighbor - an incident names a node that is not a key.
//	ErrAsymmetric       - (a,b,w) has no matching (b,a,w).
//	ErrDecode           - document is not a valid graph.
package core
