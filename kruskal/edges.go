// SPDX-License-Identifier: MIT

package kruskal

import (
	"sort"

	"github.com/katalvlaran/algoviz/core"
)

// pairKey is the canonical form of an unordered endpoint pair: lo <= hi.
type pairKey struct {
	lo, hi string
}

func canonical(a, b string) pairKey {
	if b < a {
		a, b = b, a
	}

	return pairKey{lo: a, hi: b}
}

// Edges returns the deduplicated edge list of graph in processing order:
// ascending weight, ties resolved per the TieBreak option.
//
// Returns ErrNilGraph or ErrOptionViolation.
func Edges(graph *core.Graph, opts ...Option) ([]Edge, error) {
	if graph == nil {
		return nil, ErrNilGraph
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	return sortedEdges(graph.Clone(), o.TieBreak), nil
}

// sortedEdges scans graph (a private snapshot) and returns its edges sorted.
func sortedEdges(graph *core.Graph, tb TieBreak) []Edge {
	nodes := graph.Nodes()
	seen := make(map[pairKey]struct{}, graph.ArcCount()/2+1)
	edges := make([]Edge, 0, graph.ArcCount()/2+1)
	for _, u := range nodes {
		incidents, err := graph.Incidents(u)
		if err != nil {
			// u comes from Nodes() of the same snapshot.
			continue
		}
		for _, inc := range incidents {
			k := canonical(u, inc.To)
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			edges = append(edges, Edge{Source: u, Target: inc.To, Weight: inc.Weight})
		}
	}

	// Stable sort: equal weights keep discovery order unless a canonical
	// secondary key was requested.
	if tb == TieBreakCanonical {
		sort.SliceStable(edges, func(i, j int) bool {
			if edges[i].Weight != edges[j].Weight {
				return edges[i].Weight < edges[j].Weight
			}
			ki, kj := canonical(edges[i].Source, edges[i].Target), canonical(edges[j].Source, edges[j].Target)
			if ki.lo != kj.lo {
				return ki.lo < kj.lo
			}
			return ki.hi < kj.hi
		})
	} else {
		sort.SliceStable(edges, func(i, j int) bool {
			return edges[i].Weight < edges[j].Weight
		})
	}

	return edges
}
