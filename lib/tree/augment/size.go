// Package augment provides ready-made augmentation hook bundles for
// lib/tree.Tree built entirely on the exported Hooks/Node surface - no
// lib/tree-internal access - demonstrating the augmentation story spec.md
// §4.4 and §8's S4/P10 scenarios describe.
//
// Both bundles here follow the same shape: a node's payload is some
// function of its own key and its two children's payloads, and every
// hook that can change what sits below a node re-derives that node's
// payload, then walks the parent chain to the root redoing the same
// thing. Bubbling all the way to the root on every event (rather than
// stopping at the first unchanged value) costs an extra O(log n) in the
// worst case but sidesteps a subtle trap: after swap_positions, a node
// strictly between the two swapped positions can have a stale payload
// that happens to equal its freshly recomputed one by coincidence, which
// would otherwise abort the walk short of an ancestor that still needs
// fixing.
package augment

import "github.com/benz9527/rbtree/lib/tree"

// bubble recomputes start's payload, then its parent's, and so on to the
// root, stopping only when it runs off the top of the tree.
func bubble[K any, V any, A any](start *tree.Node[K, V, A], recompute func(*tree.Node[K, V, A])) {
	for n := start; n != nil; n = n.Parent() {
		recompute(n)
	}
}

// Size returns a hook bundle that keeps each node's augmentation payload
// equal to the number of nodes in its subtree (spec.md's subtree_size,
// generalized from the library's built-in Options.TrackSize counter to
// an ordinary client payload so it can be composed with other
// augmentations or reused on a tree that didn't ask for size tracking).
func Size[K any, V any]() *tree.Hooks[K, V, int] {
	recompute := func(n *tree.Node[K, V, int]) {
		n.SetAug(1 + n.Child(tree.Left).Aug() + n.Child(tree.Right).Aug())
	}
	return &tree.Hooks[K, V, int]{
		AfterLink: func(n *tree.Node[K, V, int]) {
			bubble(n, recompute)
		},
		AfterRotate: func(old, new_ *tree.Node[K, V, int], _ tree.Direction) {
			bubble(old, recompute)
		},
		AfterSwap: func(deep, _ *tree.Node[K, V, int]) {
			bubble(deep, recompute)
		},
		AfterUnlink: func(n *tree.Node[K, V, int]) {
			bubble(n.Parent(), recompute)
		},
	}
}
