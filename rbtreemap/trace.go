package rbtreemap

import (
	"go.uber.org/zap"

	"github.com/benz9527/rbtree/lib/tree"
	"github.com/benz9527/rbtree/lib/xlog"
)

// traced wraps inner (which may be nil) so every structural mutation is
// also logged at debug level through log, then delegates to whatever
// inner already did. Named after the teacher's habit of pairing a
// zap.Logger with hot-path structural code (see lib/xlog's own
// ContextFieldExtract option) rather than leaving tree mutations opaque.
func traced[K any, V any, A any](log xlog.Logger, inner *tree.Hooks[K, V, A]) *tree.Hooks[K, V, A] {
	named := log.Named("rbtreemap")
	return &tree.Hooks[K, V, A]{
		AfterRotate: func(old, new_ *tree.Node[K, V, A], dir tree.Direction) {
			named.Debug("rotate", zap.Any("old_key", old.Key()), zap.Any("new_key", new_.Key()), zap.String("dir", dir.String()))
			if inner != nil && inner.AfterRotate != nil {
				inner.AfterRotate(old, new_, dir)
			}
		},
		AfterSwap: func(deep, shallow *tree.Node[K, V, A]) {
			named.Debug("swap", zap.Any("deep_key", deep.Key()), zap.Any("shallow_key", shallow.Key()))
			if inner != nil && inner.AfterSwap != nil {
				inner.AfterSwap(deep, shallow)
			}
		},
		AfterLink: func(n *tree.Node[K, V, A]) {
			named.Debug("link", zap.Any("key", n.Key()))
			if inner != nil && inner.AfterLink != nil {
				inner.AfterLink(n)
			}
		},
		AfterRecolor: func(nodes ...*tree.Node[K, V, A]) {
			keys := make([]any, len(nodes))
			for i, n := range nodes {
				keys[i] = n.Key()
			}
			named.Debug("recolor", zap.Any("keys", keys))
			if inner != nil && inner.AfterRecolor != nil {
				inner.AfterRecolor(nodes...)
			}
		},
		BeforeUnlink: func(n *tree.Node[K, V, A]) {
			named.Debug("before_unlink", zap.Any("key", n.Key()))
			if inner != nil && inner.BeforeUnlink != nil {
				inner.BeforeUnlink(n)
			}
		},
		AfterUnlink: func(n *tree.Node[K, V, A]) {
			named.Debug("after_unlink", zap.Any("key", n.Key()))
			if inner != nil && inner.AfterUnlink != nil {
				inner.AfterUnlink(n)
			}
		},
	}
}
