// SPDX-License-Identifier: MIT
// Package: algoviz/builder
//
// random_connected.go - RandomConnected(n, extra) constructor.
//
// Contract:
//   - 1 ≤ n ≤ MaxNodes (else ErrTooFewNodes / ErrTooManyNodes).
//   - extra ≥ 0 (else ErrNegativeExtra); clamped to the number of free pairs.
//   - RNG required when n > 1 (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(n²) for candidate pairs (bounded by MaxNodes).
//   - Space: O(n²) for the candidate list.

package builder

import (
	"fmt"

	"github.com/katalvlaran/algoviz/core"
)

// MaxNodes bounds RandomConnected so the candidate-pair list stays small.
const MaxNodes = 1000

const methodRandomConnected = "RandomConnected"

// RandomConnected returns a connected, undirected graph over n nodes with
// n-1 spanning-tree edges plus up to extra additional edges.
func RandomConnected(n, extra int, opts ...BuilderOption) (*core.Graph, error) {
	// 1) Validate parameters and options; no side effects on failure.
	cfg := newBuilderConfig(opts...)
	if cfg.err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomConnected, cfg.err)
	}
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodRandomConnected, n, ErrTooFewNodes)
	}
	if n > MaxNodes {
		return nil, fmt.Errorf("%s: n=%d > %d: %w", methodRandomConnected, n, MaxNodes, ErrTooManyNodes)
	}
	if extra < 0 {
		return nil, fmt.Errorf("%s: extra=%d: %w", methodRandomConnected, extra, ErrNegativeExtra)
	}
	if n > 1 && cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandomConnected, ErrNeedRandSource)
	}

	// 2) Nodes in index order.
	g := core.NewGraph()
	ids := make([]string, n)
	for i := range ids {
		ids[i] = cfg.idFn(i)
		if g.HasNode(ids[i]) {
			return nil, fmt.Errorf("%s: index %d repeats id %q: %w", methodRandomConnected, i, ids[i], ErrDuplicateID)
		}
		if err := g.AddNode(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddNode(%d): %w", methodRandomConnected, i, err)
		}
	}

	// 3) Random spanning tree: i attaches to some j < i.
	linked := make(map[[2]int]bool, n-1)
	for i := 1; i < n; i++ {
		j := cfg.rng.Intn(i)
		linked[[2]int{j, i}] = true
		if err := g.AddEdge(ids[j], ids[i], cfg.weight()); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%s, %s): %w", methodRandomConnected, ids[j], ids[i], err)
		}
	}
	if extra == 0 || n < 3 {
		return g, nil
	}

	// 4) Extra edges drawn without replacement from unlinked pairs.
	free := make([][2]int, 0, n*(n-1)/2-(n-1))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !linked[[2]int{i, j}] {
				free = append(free, [2]int{i, j})
			}
		}
	}
	cfg.rng.Shuffle(len(free), func(a, b int) { free[a], free[b] = free[b], free[a] })
	if extra > len(free) {
		extra = len(free)
	}
	for _, p := range free[:extra] {
		u, v := ids[p[0]], ids[p[1]]
		if err := g.AddEdge(u, v, cfg.weight()); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%s, %s): %w", methodRandomConnected, u, v, err)
		}
	}

	return g, nil
}
