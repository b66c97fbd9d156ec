package augment_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/benz9527/rbtree/lib/tree"
	"github.com/benz9527/rbtree/lib/tree/augment"
)

func lessInt(a, b int) bool { return a < b }

func checkMax(n *tree.Node[int, int, int], l, r int) int {
	m := n.Key()
	if n.Child(tree.Left) != nil && l > m {
		m = l
	}
	if n.Child(tree.Right) != nil && r > m {
		m = r
	}
	return m
}

// TestS4AugmentedSubtreeMaxStress is spec.md's S4: insert a permutation
// of [-100..100], then remove a permutation missing one value, checking
// after every single operation that every node's payload equals the max
// key of its own subtree.
func TestS4AugmentedSubtreeMaxStress(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	rt := tree.New[int, int, int, struct{}](intCmp(), goAlloc[int, int, int]{}, tree.Options{}, augment.MaxKey[int, int](lessInt))

	var universe []int
	for k := -100; k <= 100; k++ {
		universe = append(universe, k)
	}
	insertOrder := append([]int(nil), universe...)
	rng.Shuffle(len(insertOrder), func(i, j int) { insertOrder[i], insertOrder[j] = insertOrder[j], insertOrder[i] })

	for _, k := range insertOrder {
		_, err := rt.Insert(struct{}{}, k, k, tree.NoClobber)
		require.NoError(t, err)
		require.NoError(t, tree.ValidateAugmentation[int, int, int](rt.Root(), checkMax))
	}
	require.Equal(t, 100, rt.Root().Aug())

	const missing = 46
	var removeOrder []int
	for _, k := range universe {
		if k != missing {
			removeOrder = append(removeOrder, k)
		}
	}
	rng.Shuffle(len(removeOrder), func(i, j int) { removeOrder[i], removeOrder[j] = removeOrder[j], removeOrder[i] })

	for _, k := range removeOrder {
		ok := rt.Remove(struct{}{}, k)
		require.True(t, ok)
		if rt.Root() != nil {
			require.NoError(t, tree.ValidateAugmentation[int, int, int](rt.Root(), checkMax))
		}
	}

	require.Equal(t, 1, rt.Len())
	require.Equal(t, missing, rt.Root().Key())
	require.Equal(t, missing, rt.Root().Aug())
}

// TestP10MaxAugmentationRandomized runs smaller randomized insert/remove
// cycles over the max bundle, matching size_test.go's P10 coverage shape.
func TestP10MaxAugmentationRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	rt := tree.New[int, int, int, struct{}](intCmp(), goAlloc[int, int, int]{}, tree.Options{}, augment.MaxKey[int, int](lessInt))

	n := 120
	keys := rng.Perm(n)
	for _, k := range keys {
		_, err := rt.Insert(struct{}{}, k, k, tree.NoClobber)
		require.NoError(t, err)
		require.NoError(t, tree.ValidateAugmentation[int, int, int](rt.Root(), checkMax))
	}

	removeOrder := rng.Perm(n)
	for _, k := range removeOrder {
		ok := rt.Remove(struct{}{}, k)
		require.True(t, ok)
		if rt.Root() != nil {
			require.NoError(t, tree.ValidateAugmentation[int, int, int](rt.Root(), checkMax))
		}
	}
	require.True(t, rt.Empty())
}
