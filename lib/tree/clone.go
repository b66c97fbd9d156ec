package tree

import "github.com/benz9527/rbtree/lib/infra"

// Clone allocates a structurally identical tree by preorder duplication
// (not by re-insertion), preserving colors, subtree sizes, and
// augmentation payloads bit-for-bit, using this tree's own allocator.
func (t *Tree[K, V, A, C]) Clone() (*Tree[K, V, A, C], error) {
	return t.cloneUsing(t.alloc)
}

// CloneWithAllocator is Clone, but duplicates into nodes obtained from
// alloc instead of this tree's own allocator. Duplication touches no
// comparator or hook (it copies structure, not keys-in-order), so the
// only external collaborator clone needs is the allocator; this is this
// library's rendition of spec.md's clone_with_context operation.
func (t *Tree[K, V, A, C]) CloneWithAllocator(alloc Allocator[K, V, A]) (*Tree[K, V, A, C], error) {
	return t.cloneUsing(alloc)
}

func (t *Tree[K, V, A, C]) cloneUsing(alloc Allocator[K, V, A]) (*Tree[K, V, A, C], error) {
	clone := &Tree[K, V, A, C]{cmp: t.cmp, hooks: t.hooks, opts: t.opts, alloc: alloc, count: t.count}
	if t.root == nil {
		return clone, nil
	}

	var allocated []*Node[K, V, A]
	rollback := func() {
		for _, n := range allocated {
			alloc.Free(n)
		}
	}

	newRoot, err := cloneNodeShallow(alloc, t.root)
	if err != nil {
		return nil, infra.WrapErrorStack(ErrAllocationFailed, err.Error())
	}
	allocated = append(allocated, newRoot)
	clone.root = newRoot

	type frame struct{ orig, dup *Node[K, V, A] }
	stack := []frame{{t.root, newRoot}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.orig.left != nil {
			dup, err := cloneNodeShallow(alloc, f.orig.left)
			if err != nil {
				rollback()
				return nil, infra.WrapErrorStack(ErrAllocationFailed, err.Error())
			}
			allocated = append(allocated, dup)
			f.dup.setChild(Left, dup)
			stack = append(stack, frame{f.orig.left, dup})
		}
		if f.orig.right != nil {
			dup, err := cloneNodeShallow(alloc, f.orig.right)
			if err != nil {
				rollback()
				return nil, infra.WrapErrorStack(ErrAllocationFailed, err.Error())
			}
			allocated = append(allocated, dup)
			f.dup.setChild(Right, dup)
			stack = append(stack, frame{f.orig.right, dup})
		}
	}
	return clone, nil
}

func cloneNodeShallow[K any, V any, A any](alloc Allocator[K, V, A], orig *Node[K, V, A]) (*Node[K, V, A], error) {
	n, err := alloc.Allocate()
	if err != nil {
		return nil, err
	}
	n.key, n.val, n.aug, n.color, n.size = orig.key, orig.val, orig.aug, orig.color, orig.size
	n.parent, n.left, n.right = nil, nil, nil
	return n, nil
}

// Clear frees every node (spec.md's deinit), using an iterative
// leftmost-chain/right/ascend descent to avoid recursive stack use on
// tall trees. After return the tree is empty.
func (t *Tree[K, V, A, C]) Clear() {
	t.enter()
	defer t.exit()

	cur := t.root
	for cur != nil {
		if cur.left != nil {
			cur = cur.left
			continue
		}
		if cur.right != nil {
			cur = cur.right
			continue
		}
		parent := cur.parent
		if parent != nil {
			if parent.left == cur {
				parent.left = nil
			} else {
				parent.right = nil
			}
		}
		freed := cur
		cur = parent
		freed.parent = nil
		t.alloc.Free(freed)
	}
	t.root = nil
	t.count = 0
}
