package tree

import "github.com/benz9527/rbtree/lib/infra"

// Remove deletes key if present, reporting whether it was.
func (t *Tree[K, V, A, C]) Remove(ctx C, key K) bool {
	t.enter()
	defer t.exit()

	n := t.Find(ctx, key)
	if n == nil {
		return false
	}
	t.removeLocked(n)
	return true
}

// FetchRemove deletes key if present, returning the value it held.
func (t *Tree[K, V, A, C]) FetchRemove(ctx C, key K) (V, bool) {
	t.enter()
	defer t.exit()

	n := t.Find(ctx, key)
	if n == nil {
		var zero V
		return zero, false
	}
	v := n.val
	t.removeLocked(n)
	return v, true
}

// RemoveNode deletes a specific node obtained from this tree (Find,
// insert, iteration, ...). In Debug mode, removing a node that does not
// belong to this tree returns ErrForeignNode instead of corrupting
// either tree.
func (t *Tree[K, V, A, C]) RemoveNode(node *Node[K, V, A]) error {
	t.enter()
	defer t.exit()

	if Debug && !t.belongsTo(node) {
		return infra.WrapErrorStack(ErrForeignNode, "RemoveNode")
	}
	t.removeLocked(node)
	return nil
}

// RemoveNodeGetNext removes node and returns what was its in-order
// successor, computed before removal invalidates node's links.
func (t *Tree[K, V, A, C]) RemoveNodeGetNext(node *Node[K, V, A]) *Node[K, V, A] {
	t.enter()
	defer t.exit()

	next := node.Next()
	t.removeLocked(node)
	return next
}

// RemoveNodeGetPrev is RemoveNodeGetNext's predecessor-side counterpart.
func (t *Tree[K, V, A, C]) RemoveNodeGetPrev(node *Node[K, V, A]) *Node[K, V, A] {
	t.enter()
	defer t.exit()

	prev := node.Prev()
	t.removeLocked(node)
	return prev
}

// removeLocked assumes enter()/exit() already bracket the call.
func (t *Tree[K, V, A, C]) removeLocked(node *Node[K, V, A]) {
	RemoveNode(&t.root, node, t.opts, t.hooks)
	t.count--
	t.alloc.Free(node)
}

// RemoveMin removes and returns the minimum node's key/value, or false if
// empty.
func (t *Tree[K, V, A, C]) RemoveMin() (key K, val V, ok bool) {
	t.enter()
	defer t.exit()

	n := t.root.Leftmost()
	if n == nil {
		return key, val, false
	}
	key, val = n.key, n.val
	t.removeLocked(n)
	return key, val, true
}
