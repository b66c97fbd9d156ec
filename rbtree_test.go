package rbtree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benz9527/rbtree"
)

func TestTopLevelSurface(t *testing.T) {
	cmp := rbtree.Natural[int, struct{}]()
	rt := rbtree.New[int, string, struct{}, struct{}](
		cmp, rbtree.NewGoAllocator[int, string, struct{}](), rbtree.Options{}, nil,
	)

	res, err := rt.Insert(struct{}{}, 1, "one", rbtree.NoClobber)
	require.NoError(t, err)
	assert.False(t, res.FoundExisting)

	m := rbtree.NewMap[int, string, int, struct{}](struct{}{}, cmp, rbtree.MapConfig[int, string, int]{
		Hooks: rbtree.SizeAugment[int, string](),
	})
	_, _, err = m.Put(2, "two")
	require.NoError(t, err)
	v, ok := m.Get(2)
	require.True(t, ok)
	assert.Equal(t, "two", v)
}
