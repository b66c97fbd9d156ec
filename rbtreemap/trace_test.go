package rbtreemap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benz9527/rbtree/lib/ordering"
	"github.com/benz9527/rbtree/lib/tree"
	"github.com/benz9527/rbtree/lib/xlog"
	"github.com/benz9527/rbtree/rbtreemap"
)

// TestMapWithLoggerDoesNotDisturbStructure exercises the Config.Logger
// wiring: mutations still produce a correct tree, and any caller-supplied
// hooks alongside the logger still fire.
func TestMapWithLoggerDoesNotDisturbStructure(t *testing.T) {
	log := xlog.NewXLogger(xlog.WithXLoggerConsoleCore())

	var linked int
	m := rbtreemap.New[int, string, struct{}, struct{}](
		struct{}{}, ordering.Natural[int, struct{}](),
		rbtreemap.Config[int, string, struct{}]{
			Logger: log,
			Hooks: &tree.Hooks[int, string, struct{}]{
				AfterLink: func(*tree.Node[int, string, struct{}]) { linked++ },
			},
		},
	)

	for i := 0; i < 30; i++ {
		_, _, err := m.Put(i, "v")
		require.NoError(t, err)
	}
	assert.Equal(t, 30, linked)
	assert.Equal(t, 30, m.Len())

	for i := 0; i < 30; i++ {
		assert.True(t, m.Delete(i))
	}
	assert.True(t, m.Empty())
}
