// SPDX-License-Identifier: MIT
package disjointset_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/disjointset"
)

func mustNew(t *testing.T, ids ...string) *disjointset.DisjointSet {
	t.Helper()
	d, err := disjointset.New(ids)
	require.NoError(t, err)

	return d
}

func TestNew_Singletons(t *testing.T) {
	d := mustNew(t, "A", "B", "C")
	assert.Equal(t, 3, d.Len())
	assert.Equal(t, 3, d.Count())
	for _, id := range []string{"A", "B", "C"} {
		root, err := d.Find(id)
		require.NoError(t, err)
		assert.Equal(t, id, root, "every element starts as its own root")
		rank, err := d.Rank(id)
		require.NoError(t, err)
		assert.Zero(t, rank)
	}
}

func TestNew_Empty(t *testing.T) {
	d := mustNew(t)
	assert.Zero(t, d.Len())
	assert.Empty(t, d.Sets())
}

func TestNew_DuplicateElement(t *testing.T) {
	d, err := disjointset.New([]string{"A", "B", "A"})
	assert.Nil(t, d)
	assert.ErrorIs(t, err, disjointset.ErrDuplicateElement)
}

func TestUnknownElement(t *testing.T) {
	d := mustNew(t, "A")

	_, err := d.Find("Z")
	assert.ErrorIs(t, err, disjointset.ErrUnknownElement)
	assert.ErrorIs(t, d.Union("A", "Z"), disjointset.ErrUnknownElement)
	assert.ErrorIs(t, d.Union("Z", "A"), disjointset.ErrUnknownElement)
	_, err = d.Connected("Z", "A")
	assert.ErrorIs(t, err, disjointset.ErrUnknownElement)
	_, err = d.Rank("Z")
	assert.ErrorIs(t, err, disjointset.ErrUnknownElement)
}

func TestUnion_RankPolicy(t *testing.T) {
	d := mustNew(t, "A", "B", "C")

	// Equal ranks: y's root goes under x's root and x's root rank grows.
	require.NoError(t, d.Union("B", "A"))
	root, _ := d.Find("A")
	assert.Equal(t, "B", root)
	rank, _ := d.Rank("B")
	assert.Equal(t, 1, rank)

	// Lower rank (C, 0) attaches under higher rank (B, 1) regardless of argument order.
	require.NoError(t, d.Union("C", "A"))
	root, _ = d.Find("C")
	assert.Equal(t, "B", root)
	rank, _ = d.Rank("B")
	assert.Equal(t, 1, rank, "attaching a lower-rank tree does not change the rank")
	assert.Equal(t, 1, d.Count())
}

func TestUnion_Idempotent(t *testing.T) {
	d := mustNew(t, "X", "Y")
	require.NoError(t, d.Union("X", "Y"))
	rankBefore, _ := d.Rank("X")

	require.NoError(t, d.Union("X", "Y"))
	ok, err := d.Connected("X", "Y")
	require.NoError(t, err)
	assert.True(t, ok)
	rankAfter, _ := d.Rank("X")
	assert.Equal(t, rankBefore, rankAfter, "second union must be a no-op")
	assert.Equal(t, 1, d.Count())
}

// TestConnected_EquivalenceRelation checks reflexivity, symmetry and
// transitivity against random unions over a small universe.
func TestConnected_EquivalenceRelation(t *testing.T) {
	ids := make([]string, 12)
	for i := range ids {
		ids[i] = fmt.Sprintf("n%d", i)
	}
	d := mustNew(t, ids...)
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 8; i++ {
		require.NoError(t, d.Union(ids[r.Intn(len(ids))], ids[r.Intn(len(ids))]))
	}

	conn := func(a, b string) bool {
		ok, err := d.Connected(a, b)
		require.NoError(t, err)
		return ok
	}
	for _, a := range ids {
		assert.True(t, conn(a, a), "reflexive: %s", a)
		for _, b := range ids {
			assert.Equal(t, conn(a, b), conn(b, a), "symmetric: %s %s", a, b)
			if !conn(a, b) {
				continue
			}
			for _, c := range ids {
				if conn(b, c) {
					assert.True(t, conn(a, c), "transitive: %s %s %s", a, b, c)
				}
			}
		}
	}
}

func TestSets_Order(t *testing.T) {
	d := mustNew(t, "A", "B", "C", "D", "E")
	require.NoError(t, d.Union("D", "B"))
	require.NoError(t, d.Union("E", "A"))

	assert.Equal(t, [][]string{{"A", "E"}, {"B", "D"}, {"C"}}, d.Sets())
	assert.Equal(t, 3, d.Count())
}
