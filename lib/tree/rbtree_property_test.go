package tree_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/benz9527/rbtree/lib/tree"
)

// TestPropertiesRandomizedInsertRemove is P1-P8: randomized insert/remove
// sequences must leave every invariant intact at every intermediate step,
// and the round trip back to empty must actually reach empty.
func TestPropertiesRandomizedInsertRemove(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 20; trial++ {
		n := 1 + rng.Intn(200)
		keys := rng.Perm(n)

		rt := newIntTree()
		inserted := 0
		for _, k := range keys {
			_, err := rt.Insert(struct{}{}, k, k*2, tree.NoClobber)
			require.NoError(t, err)
			inserted++
			require.Equal(t, inserted, rt.Len(), "P7")
			require.NoError(t, tree.ValidateAll[int, int, struct{}, struct{}](
				rt.Root(), struct{}{}, intCmp(), rt.Len(), true))
		}

		removeOrder := rng.Perm(n)
		for _, k := range removeOrder {
			ok := rt.Remove(struct{}{}, k)
			require.True(t, ok)
			inserted--
			require.Equal(t, inserted, rt.Len(), "P7")
			require.NoError(t, tree.ValidateAll[int, int, struct{}, struct{}](
				rt.Root(), struct{}{}, intCmp(), rt.Len(), true))
		}

		require.True(t, rt.Empty(), "P8: round trip must reach empty")
		require.Nil(t, rt.Root())
	}
}

// TestP9CloneEquivalence: a clone's in-order key/value/color sequence
// matches the source at the moment of cloning, and further mutation of
// either tree does not affect the other.
func TestP9CloneEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	rt := newIntTree()
	keys := rng.Perm(64)
	for _, k := range keys {
		_, err := rt.Insert(struct{}{}, k, k*10, tree.NoClobber)
		require.NoError(t, err)
	}

	clone, err := rt.Clone()
	require.NoError(t, err)

	before := snapshot(rt.Root())
	require.Equal(t, before, snapshot(clone.Root()))

	// Mutate the original; clone must be unaffected.
	require.True(t, rt.Remove(struct{}{}, keys[0]))
	_, err = rt.Insert(struct{}{}, 10000, 1, tree.NoClobber)
	require.NoError(t, err)

	require.Equal(t, before, snapshot(clone.Root()))

	// Mutate the clone; original must reflect only its own prior mutation.
	afterOriginalMutation := snapshot(rt.Root())
	require.True(t, clone.Remove(struct{}{}, keys[1]))
	require.Equal(t, afterOriginalMutation, snapshot(rt.Root()))
}

type kvc struct {
	k, v int
	c    tree.Color
}

func snapshot(root *tree.Node[int, int, struct{}]) []kvc {
	var out []kvc
	var stack []*tree.Node[int, int, struct{}]
	cur := root
	for cur != nil || len(stack) > 0 {
		for cur != nil {
			stack = append(stack, cur)
			cur = cur.Child(tree.Left)
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, kvc{cur.Key(), cur.Val(), cur.Color()})
		cur = cur.Child(tree.Right)
	}
	return out
}
