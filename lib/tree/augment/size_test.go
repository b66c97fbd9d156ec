package augment_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/benz9527/rbtree/lib/tree"
	"github.com/benz9527/rbtree/lib/tree/augment"
)

func intCmp() tree.Comparator[int, struct{}] {
	return tree.IgnoreContext[int, struct{}](func(a, b int) tree.Ordering {
		switch {
		case a < b:
			return tree.Less
		case a > b:
			return tree.Greater
		default:
			return tree.Equal
		}
	})
}

type goAlloc[K any, V any, A any] struct{}

func (goAlloc[K, V, A]) Allocate() (*tree.Node[K, V, A], error) { return new(tree.Node[K, V, A]), nil }
func (goAlloc[K, V, A]) Free(*tree.Node[K, V, A])               {}

// TestP10SizeAugmentation is P10 for the size bundle: after every
// insert/remove, every node's payload equals 1 + left.size + right.size.
func TestP10SizeAugmentation(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	rt := tree.New[int, int, int, struct{}](intCmp(), goAlloc[int, int, int]{}, tree.Options{}, augment.Size[int, int]())

	n := 150
	keys := rng.Perm(n)
	for i, k := range keys {
		_, err := rt.Insert(struct{}{}, k, k, tree.NoClobber)
		require.NoError(t, err)
		require.NoError(t, tree.ValidateAugmentation[int, int, int](rt.Root(), func(nd *tree.Node[int, int, int], l, r int) int {
			return 1 + l + r
		}))
		require.Equal(t, i+1, rt.Root().Aug())
	}

	removeOrder := rng.Perm(n)
	for i, k := range removeOrder {
		ok := rt.Remove(struct{}{}, k)
		require.True(t, ok)
		require.NoError(t, tree.ValidateAugmentation[int, int, int](rt.Root(), func(nd *tree.Node[int, int, int], l, r int) int {
			return 1 + l + r
		}))
		want := n - i - 1
		if want == 0 {
			require.Nil(t, rt.Root())
		} else {
			require.Equal(t, want, rt.Root().Aug())
		}
	}
}
