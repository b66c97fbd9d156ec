package ordering_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/benz9527/rbtree/lib/ordering"
	"github.com/benz9527/rbtree/lib/tree"
)

func TestNaturalInt(t *testing.T) {
	cmp := ordering.Natural[int, struct{}]()
	assert.Equal(t, tree.Less, cmp(struct{}{}, 1, 2))
	assert.Equal(t, tree.Greater, cmp(struct{}{}, 2, 1))
	assert.Equal(t, tree.Equal, cmp(struct{}{}, 2, 2))
}

func TestNaturalString(t *testing.T) {
	cmp := ordering.Natural[string, struct{}]()
	assert.Equal(t, tree.Less, cmp(struct{}{}, "a", "b"))
	assert.Equal(t, tree.Equal, cmp(struct{}{}, "b", "b"))
}

func TestSlice(t *testing.T) {
	cmp := ordering.Slice[int, struct{}]()
	assert.Equal(t, tree.Less, cmp(struct{}{}, []int{1, 2}, []int{1, 3}))
	assert.Equal(t, tree.Less, cmp(struct{}{}, []int{1}, []int{1, 0}))
	assert.Equal(t, tree.Greater, cmp(struct{}{}, []int{2}, []int{1, 9}))
	assert.Equal(t, tree.Equal, cmp(struct{}{}, []int{1, 2, 3}, []int{1, 2, 3}))
}

func TestArray16(t *testing.T) {
	cmp := ordering.Array16[int, struct{}]()
	var a, b [16]int
	b[15] = 1
	assert.Equal(t, tree.Less, cmp(struct{}{}, a, b))
	assert.Equal(t, tree.Equal, cmp(struct{}{}, a, a))
}
