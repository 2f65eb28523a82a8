// SPDX-License-Identifier: MIT

package core

import "fmt"

// arcKey identifies one directed adjacency entry for multiset comparison.
type arcKey struct {
	from, to string
	weight   int64
}

// Validate checks the undirected invariant of g without modifying it.
//
// Checks, in node insertion order:
//  1. every incident neighbor is a node of g (ErrDanglingNeighbor);
//  2. every weight is positive (ErrBadWeight);
//  3. each (a,b,w) entry is matched by a (b,a,w) entry with the same
//     multiplicity (ErrAsymmetric). Differing weights count as asymmetric.
//
// The first violation found is returned, wrapped with the offending edge.
// Complexity: O(V + arcs).
func Validate(g *Graph) error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	counts := make(map[arcKey]int, len(g.adjacency))
	for _, from := range g.order {
		for _, inc := range g.adjacency[from] {
			if _, ok := g.adjacency[inc.To]; !ok {
				return fmt.Errorf("%w: %s→%s", ErrDanglingNeighbor, from, inc.To)
			}
			if inc.Weight <= 0 {
				return fmt.Errorf("%w: %s→%s has weight %d", ErrBadWeight, from, inc.To, inc.Weight)
			}
			counts[arcKey{from: from, to: inc.To, weight: inc.Weight}]++
		}
	}

	for _, from := range g.order {
		for _, inc := range g.adjacency[from] {
			k := arcKey{from: from, to: inc.To, weight: inc.Weight}
			mirror := arcKey{from: inc.To, to: from, weight: inc.Weight}
			if counts[k] != counts[mirror] {
				return fmt.Errorf("%w: %s→%s (w=%d) listed %d time(s), mirror %d time(s)",
					ErrAsymmetric, from, inc.To, inc.Weight, counts[k], counts[mirror])
			}
		}
	}

	return nil
}
