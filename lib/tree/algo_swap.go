package tree

// swapPositions exchanges the positions (color, children, parent, size)
// of two distinct nodes without touching keys/values/payloads, per
// spec.md §4.2.5. Used exclusively by removeNode, where a is always an
// ancestor of b or its direct child, but the adjacent-parent case is
// handled symmetrically so the function is correct for either argument
// order.
//
// The size fields are simply transplanted, not recomputed: a position's
// subtree size depends only on which physical nodes sit below it, and a
// pure position swap never changes that set, so the old size recorded at
// one position is exactly the new size at the other.
func swapPositions[K any, V any, A any](rootRef **Node[K, V, A], a, b *Node[K, V, A]) {
	if a == nil || b == nil || a == b {
		return
	}
	if a.parent == b {
		swapPositions(rootRef, b, a)
		return
	}

	aParent, aDir := a.parent, a.Direction()
	aLeft, aRight, aColor, aSize := a.left, a.right, a.color, a.size
	bParent, bLeft, bRight, bColor, bSize := b.parent, b.left, b.right, b.color, b.size

	relink := func(parent *Node[K, V, A], dir Direction, n *Node[K, V, A]) {
		switch {
		case parent == nil:
			*rootRef = n
		case dir == Left:
			parent.left = n
		default:
			parent.right = n
		}
	}

	if bParent == a {
		// b is a's direct child: a moves down into b's old slot, b takes
		// a's old external slot and a's other child.
		b.parent, b.color, b.size = aParent, aColor, aSize
		relink(aParent, aDir, b)

		if aLeft == b {
			b.left, b.right = a, aRight
			if aRight != nil {
				aRight.parent = b
			}
		} else {
			b.right, b.left = a, aLeft
			if aLeft != nil {
				aLeft.parent = b
			}
		}

		a.parent, a.color, a.size = b, bColor, bSize
		a.left, a.right = bLeft, bRight
		if bLeft != nil {
			bLeft.parent = a
		}
		if bRight != nil {
			bRight.parent = a
		}
		return
	}

	// Disjoint: transplant each node into the other's old slot wholesale.
	bDir := b.Direction()

	a.parent, a.color, a.size = bParent, bColor, bSize
	relink(bParent, bDir, a)
	a.left, a.right = bLeft, bRight
	if bLeft != nil {
		bLeft.parent = a
	}
	if bRight != nil {
		bRight.parent = a
	}

	b.parent, b.color, b.size = aParent, aColor, aSize
	relink(aParent, aDir, b)
	b.left, b.right = aLeft, aRight
	if aLeft != nil {
		aLeft.parent = b
	}
	if aRight != nil {
		aRight.parent = b
	}
}
