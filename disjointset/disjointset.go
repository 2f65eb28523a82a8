// SPDX-License-Identifier: MIT

// Package disjointset implements a union-find structure over a fixed universe
// of string ids, with path compression and union by rank.
//
// A DisjointSet is created once per algorithm run and discarded afterwards.
// It is not safe for concurrent use: Find mutates parent links.
//
// Complexity: New O(n); Find, Union, Connected O(α(n)) amortized.
package disjointset

import (
	"errors"
	"fmt"
)

// ErrDuplicateElement is returned by New when an id appears more than once.
var ErrDuplicateElement = errors.New("disjointset: duplicate element")

// ErrUnknownElement is returned when an id was not registered at construction.
var ErrUnknownElement = errors.New("disjointset: unknown element")

// DisjointSet partitions a fixed set of ids into disjoint sets.
//
// Ids are mapped to dense indices so parent and rank are plain slices;
// order keeps registration order for deterministic Sets output.
type DisjointSet struct {
	index  map[string]int
	order  []string
	parent []int
	rank   []int
	count  int
}

// New creates a DisjointSet in which every element is its own singleton set
// with rank 0. Returns ErrDuplicateElement if elements repeats an id.
func New(elements []string) (*DisjointSet, error) {
	n := len(elements)
	d := &DisjointSet{
		index:  make(map[string]int, n),
		order:  make([]string, 0, n),
		parent: make([]int, 0, n),
		rank:   make([]int, 0, n),
	}
	for _, id := range elements {
		if _, dup := d.index[id]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateElement, id)
		}
		i := len(d.order)
		d.index[id] = i
		d.order = append(d.order, id)
		d.parent = append(d.parent, i)
		d.rank = append(d.rank, 0)
	}
	d.count = n

	return d, nil
}

// lookup returns the dense index of id.
func (d *DisjointSet) lookup(id string) (int, error) {
	i, ok := d.index[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownElement, id)
	}

	return i, nil
}

// root walks to the representative of i, then re-points every node on the
// walked path directly at it.
func (d *DisjointSet) root(i int) int {
	r := i
	for d.parent[r] != r {
		r = d.parent[r]
	}
	for d.parent[i] != r {
		next := d.parent[i]
		d.parent[i] = r
		i = next
	}

	return r
}

// Find returns the representative of the set containing x.
// Every node visited on the way is re-linked to the root.
func (d *DisjointSet) Find(x string) (string, error) {
	i, err := d.lookup(x)
	if err != nil {
		return "", err
	}

	return d.order[d.root(i)], nil
}

// Union merges the sets containing x and y. If they already share a root
// this is a no-op. The lower-rank root is attached under the higher-rank
// one; on a rank tie y's root goes under x's root, whose rank grows by one.
func (d *DisjointSet) Union(x, y string) error {
	i, err := d.lookup(x)
	if err != nil {
		return err
	}
	j, err := d.lookup(y)
	if err != nil {
		return err
	}

	rx, ry := d.root(i), d.root(j)
	if rx == ry {
		return nil
	}
	switch {
	case d.rank[rx] < d.rank[ry]:
		d.parent[rx] = ry
	case d.rank[rx] > d.rank[ry]:
		d.parent[ry] = rx
	default:
		d.parent[ry] = rx
		d.rank[rx]++
	}
	d.count--

	return nil
}

// Connected reports whether x and y belong to the same set.
func (d *DisjointSet) Connected(x, y string) (bool, error) {
	i, err := d.lookup(x)
	if err != nil {
		return false, err
	}
	j, err := d.lookup(y)
	if err != nil {
		return false, err
	}

	return d.root(i) == d.root(j), nil
}

// Len returns the number of registered elements.
func (d *DisjointSet) Len() int { return len(d.order) }

// Count returns the number of disjoint sets.
func (d *DisjointSet) Count() int { return d.count }

// Rank returns the rank currently stored for x. Only roots carry a
// meaningful rank.
func (d *DisjointSet) Rank(x string) (int, error) {
	i, err := d.lookup(x)
	if err != nil {
		return 0, err
	}

	return d.rank[i], nil
}

// Sets returns the members of every set. Groups are ordered by their first
// registered member and members keep registration order.
func (d *DisjointSet) Sets() [][]string {
	slot := make(map[int]int, d.count)
	out := make([][]string, 0, d.count)
	for i, id := range d.order {
		r := d.root(i)
		k, ok := slot[r]
		if !ok {
			k = len(out)
			slot[r] = k
			out = append(out, nil)
		}
		out[k] = append(out[k], id)
	}

	return out
}
