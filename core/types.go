// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that the provided node id is empty.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrBadWeight indicates a weight that is not a positive integer.
	ErrBadWeight = errors.New("core: weight must be positive")

	// ErrDanglingNeighbor indicates an incident edge pointing at an unregistered node.
	ErrDanglingNeighbor = errors.New("core: neighbor is not a node of the graph")

	// ErrAsymmetric indicates that an edge is listed on one side only, or with different weights.
	ErrAsymmetric = errors.New("core: adjacency is not symmetric")

	// ErrDecode indicates a malformed graph document.
	ErrDecode = errors.New("core: cannot decode graph")
)

// Incident is one entry of a node's adjacency list: the neighbor id and
// the weight of the connecting edge.
type Incident struct {
	// To is the neighbor node id.
	To string `json:"toNode" yaml:"toNode"`

	// Weight is the cost of the edge; always positive in well-formed input.
	Weight int64 `json:"weight" yaml:"weight"`
}

// Graph is an ordered, weighted adjacency snapshot.
//
// mu guards order and adjacency. order lists node ids in the order they
// were first added; adjacency holds each node's incidents in insertion order.
type Graph struct {
	mu sync.RWMutex

	order     []string
	adjacency map[string][]Incident
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		adjacency: make(map[string][]Incident),
	}
}
