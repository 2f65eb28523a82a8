// SPDX-License-Identifier: MIT
package disjointset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestFind_CompressesPath builds a chain by hand and checks that a single
// Find re-points every visited node at the root.
func TestFind_CompressesPath(t *testing.T) {
	d, err := New([]string{"a", "b", "c", "d"})
	require.NoError(t, err)
	// d → c → b → a
	d.parent[3] = 2
	d.parent[2] = 1
	d.parent[1] = 0

	root, err := d.Find("d")
	require.NoError(t, err)
	require.Equal(t, "a", root)
	require.Equal(t, []int{0, 0, 0, 0}, d.parent)
}
