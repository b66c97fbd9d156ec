package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benz9527/rbtree/lib/tree"
)

func init() {
	tree.Debug = true
}

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

func newIntTree() *tree.Tree[int, int, struct{}, struct{}] {
	return tree.New[int, int, struct{}, struct{}](intCmp(), goAlloc[int, int, struct{}]{}, tree.Options{TrackSize: true}, nil)
}

func inorder(root *tree.Node[int, int, struct{}]) []int {
	var out []int
	var stack []*tree.Node[int, int, struct{}]
	cur := root
	for cur != nil || len(stack) > 0 {
		for cur != nil {
			stack = append(stack, cur)
			cur = cur.Child(tree.Left)
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, cur.Key())
		cur = cur.Child(tree.Right)
	}
	return out
}

// S1 - find after insertions.
func TestS1FindAfterInsertions(t *testing.T) {
	rt := newIntTree()
	for _, k := range []int{2, 1, 4, 5, 9, 3, 6, 7, 15} {
		_, err := rt.Insert(struct{}{}, k, k, tree.NoClobber)
		require.NoError(t, err)
	}

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 9, 15}, inorder(rt.Root()))

	for _, k := range []int{2, 1, 4, 5, 9, 3, 6, 7, 15} {
		n := rt.Find(struct{}{}, k)
		require.NotNil(t, n)
		assert.Equal(t, k, n.Key())
	}
	for _, k := range []int{-1, 0, 401, 52454225} {
		assert.Nil(t, rt.Find(struct{}{}, k))
	}

	require.NoError(t, tree.ValidateAll[int, int, struct{}, struct{}](rt.Root(), struct{}{}, intCmp(), rt.Len(), true))
}

// S5 - clone independence.
func TestS5CloneIndependence(t *testing.T) {
	rt := newIntTree()
	for _, k := range []int{5, 3, 8, 1, 4, 7, 9} {
		_, err := rt.Insert(struct{}{}, k, k, tree.NoClobber)
		require.NoError(t, err)
	}

	clone, err := rt.Clone()
	require.NoError(t, err)

	assert.True(t, rt.Remove(struct{}{}, 3))

	assert.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, inorder(clone.Root()))
	assert.Equal(t, []int{1, 4, 5, 7, 8, 9}, inorder(rt.Root()))
}

// S6 - lower/upper bound. FindLowerBound = smallest key >= k,
// FindUpperBound = greatest key <= k (see lookup.go's doc comments for
// why this is the chosen convention).
func TestS6LowerUpperBound(t *testing.T) {
	rt := newIntTree()
	for _, k := range []int{10, 20, 30, 40} {
		_, err := rt.Insert(struct{}{}, k, k, tree.NoClobber)
		require.NoError(t, err)
	}

	cases := []struct {
		key              int
		wantLower, wantUpper int
		hasLower, hasUpper   bool
	}{
		{25, 30, 20, true, true},
		{40, 40, 40, true, true},
		{5, 10, 0, true, false},
		{50, 0, 40, false, true},
	}
	for _, c := range cases {
		lower := rt.FindLowerBound(struct{}{}, c.key)
		upper := rt.FindUpperBound(struct{}{}, c.key)
		if c.hasLower {
			require.NotNil(t, lower, "lower_bound(%d)", c.key)
			assert.Equal(t, c.wantLower, lower.Key(), "lower_bound(%d)", c.key)
		} else {
			assert.Nil(t, lower, "lower_bound(%d)", c.key)
		}
		if c.hasUpper {
			require.NotNil(t, upper, "upper_bound(%d)", c.key)
			assert.Equal(t, c.wantUpper, upper.Key(), "upper_bound(%d)", c.key)
		} else {
			assert.Nil(t, upper, "upper_bound(%d)", c.key)
		}
	}
}

func TestInsertClobberPolicies(t *testing.T) {
	rt := newIntTree()
	_, err := rt.Insert(struct{}{}, 1, 100, tree.NoClobber)
	require.NoError(t, err)

	res, err := rt.Insert(struct{}{}, 1, 200, tree.NoClobber)
	require.NoError(t, err)
	assert.True(t, res.FoundExisting)
	assert.False(t, res.Clobbered)
	v, _ := rt.Get(struct{}{}, 1)
	assert.Equal(t, 100, v)

	res, err = rt.Insert(struct{}{}, 1, 200, tree.ClobberValueOnly)
	require.NoError(t, err)
	assert.True(t, res.Clobbered)
	assert.Equal(t, 100, res.PrevValue)
	v, _ = rt.Get(struct{}{}, 1)
	assert.Equal(t, 200, v)
}

func TestRemoveNodeForeignRejectedInDebug(t *testing.T) {
	a := newIntTree()
	b := newIntTree()
	_, err := a.Insert(struct{}{}, 1, 1, tree.NoClobber)
	require.NoError(t, err)
	n := a.Find(struct{}{}, 1)

	err = b.RemoveNode(n)
	assert.ErrorIs(t, err, tree.ErrForeignNode)
}

func TestReentrantMutationPanics(t *testing.T) {
	var rt *tree.Tree[int, int, struct{}, struct{}]
	rt = tree.New[int, int, struct{}, struct{}](
		intCmp(), goAlloc[int, int, struct{}]{}, tree.Options{},
		&tree.Hooks[int, int, struct{}]{
			AfterLink: func(n *tree.Node[int, int, struct{}]) {
				_, _ = rt.Insert(struct{}{}, 999, 999, tree.NoClobber)
			},
		},
	)
	assert.Panics(t, func() {
		_, _ = rt.Insert(struct{}{}, 1, 1, tree.NoClobber)
	})
}
