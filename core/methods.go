// SPDX-License-Identifier: MIT

package core

import "fmt"

// AddNode registers id as a node with an empty adjacency list.
// Returns ErrEmptyNodeID if id is empty.
// If the node already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureNode(id)

	return nil
}

// ensureNode appends id to the node order if it is new. Caller holds mu.
func (g *Graph) ensureNode(id string) {
	if _, exists := g.adjacency[id]; exists {
		return
	}
	g.adjacency[id] = []Incident{}
	g.order = append(g.order, id)
}

// AddEdge inserts the undirected edge a-b with weight w: (b,w) is appended to
// a's list and (a,w) to b's list. Missing endpoints are added, a first.
// A self-loop (a == b) is recorded once.
//
// Returns ErrEmptyNodeID or ErrBadWeight (w <= 0).
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b string, w int64) error {
	if a == "" || b == "" {
		return ErrEmptyNodeID
	}
	if w <= 0 {
		return fmt.Errorf("%w: %s-%s has weight %d", ErrBadWeight, a, b, w)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureNode(a)
	g.ensureNode(b)
	g.adjacency[a] = append(g.adjacency[a], Incident{To: b, Weight: w})
	if a != b {
		g.adjacency[b] = append(g.adjacency[b], Incident{To: a, Weight: w})
	}

	return nil
}

// AddArc appends (to,w) to from's adjacency list only. The target is not
// registered as a node; callers building valid graphs use AddEdge.
//
// Returns ErrEmptyNodeID or ErrBadWeight (w <= 0).
func (g *Graph) AddArc(from, to string, w int64) error {
	if from == "" || to == "" {
		return ErrEmptyNodeID
	}
	if w <= 0 {
		return fmt.Errorf("%w: %s→%s has weight %d", ErrBadWeight, from, to, w)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureNode(from)
	g.adjacency[from] = append(g.adjacency[from], Incident{To: to, Weight: w})

	return nil
}

// HasNode reports whether id is a node of the graph.
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[id]

	return ok
}

// Nodes returns node ids in insertion order. The slice is a copy.
// Complexity: O(V).
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// Incidents returns a copy of id's adjacency list in insertion order.
// Returns ErrNodeNotFound if id is not a node.
// Complexity: O(deg(id)).
func (g *Graph) Incidents(id string) ([]Incident, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	list, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	out := make([]Incident, len(list))
	copy(out, list)

	return out, nil
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// ArcCount returns the total number of adjacency entries over all nodes.
// For a symmetric graph without loops this is 2·|E|.
func (g *Graph) ArcCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n := 0
	for _, list := range g.adjacency {
		n += len(list)
	}

	return n
}

// Clone returns a deep copy of the graph (order and adjacency lists).
// Complexity: O(V + arcs).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		order:     make([]string, len(g.order)),
		adjacency: make(map[string][]Incident, len(g.adjacency)),
	}
	copy(c.order, g.order)
	for id, list := range g.adjacency {
		cp := make([]Incident, len(list))
		copy(cp, list)
		c.adjacency[id] = cp
	}

	return c
}
