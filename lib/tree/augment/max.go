package augment

import "github.com/benz9527/rbtree/lib/tree"

// MaxKey returns a hook bundle that keeps each node's augmentation
// payload equal to the greatest key (under less) in its subtree - the
// subtree-max scenario spec.md §8's S4 exercises. less reports whether a
// sorts strictly before b; it need not agree with the tree's own
// Comparator, though in practice it usually derives from the same order.
func MaxKey[K any, V any](less func(a, b K) bool) *tree.Hooks[K, V, K] {
	maxOf := func(a, b K) K {
		if less(a, b) {
			return b
		}
		return a
	}
	recompute := func(n *tree.Node[K, V, K]) {
		m := n.Key()
		if l := n.Child(tree.Left); l != nil {
			m = maxOf(m, l.Aug())
		}
		if r := n.Child(tree.Right); r != nil {
			m = maxOf(m, r.Aug())
		}
		n.SetAug(m)
	}
	return &tree.Hooks[K, V, K]{
		AfterLink: func(n *tree.Node[K, V, K]) {
			bubble(n, recompute)
		},
		AfterRotate: func(old, new_ *tree.Node[K, V, K], _ tree.Direction) {
			bubble(old, recompute)
		},
		AfterSwap: func(deep, _ *tree.Node[K, V, K]) {
			bubble(deep, recompute)
		},
		AfterUnlink: func(n *tree.Node[K, V, K]) {
			bubble(n.Parent(), recompute)
		},
	}
}
