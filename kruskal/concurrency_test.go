// SPDX-License-Identifier: MIT
package kruskal_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/algoviz/kruskal"
)

// TestSimulate_ConcurrentCallers runs many traces over one shared graph; each
// must equal the sequential result.
func TestSimulate_ConcurrentCallers(t *testing.T) {
	g := buildConnected(t, 60, 120, 99)
	want, err := kruskal.Simulate(g)
	require.NoError(t, err)

	var eg errgroup.Group
	eg.SetLimit(8)
	for i := 0; i < 32; i++ {
		tb := kruskal.TieBreakDiscovery
		if i%2 == 1 {
			tb = kruskal.TieBreakCanonical
		}
		eg.Go(func() error {
			got, err := kruskal.Simulate(g, kruskal.WithTieBreak(tb))
			if err != nil {
				return err
			}
			if tb == kruskal.TieBreakDiscovery {
				if diff := cmp.Diff(want, got); diff != "" {
					t.Errorf("trace mismatch (-want +got):\n%s", diff)
				}
			} else if len(got) != len(want) {
				t.Errorf("canonical trace has %d steps, want %d", len(got), len(want))
			}
			return nil
		})
	}
	require.NoError(t, eg.Wait())
}
