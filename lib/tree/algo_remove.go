package tree

// RemoveNode implements spec.md §4.2.6: detach node and rebalance. node
// must already be linked into the tree *rootRef points at. Ownership of
// freeing node's memory afterward belongs to the caller.
func RemoveNode[K any, V any, A any](
	rootRef **Node[K, V, A], node *Node[K, V, A], opts Options, hooks *Hooks[K, V, A],
) {
	if node.right != nil {
		succ := node.right.Leftmost()
		swapPositions(rootRef, node, succ)
		hooks.swap(node, succ)
		if node.right != nil {
			// By I4 this remaining right child must be a red leaf.
			child := node.right
			swapPositions(rootRef, node, child)
			hooks.swap(node, child)
		}
	} else if node.left != nil {
		// By I4 this child must be a red leaf.
		child := node.left
		swapPositions(rootRef, node, child)
		hooks.swap(node, child)
	}

	// node is now a leaf.
	hooks.beforeUnlink(node)

	p := node.parent
	if p == nil {
		*rootRef = nil
		hooks.afterUnlink(node)
		node.left, node.right = nil, nil
		return
	}

	d := node.Direction()
	wasRed := node.isRed()
	p.setChild(d, nil)
	// node.parent is left pointing at its old parent until after
	// after_unlink fires below, so a hook can still walk upward from
	// the point of removal (see augment.Size/Max).
	if opts.TrackSize {
		for anc := p; anc != nil; anc = anc.parent {
			anc.size--
		}
	}

	if wasRed {
		hooks.afterUnlink(node)
		node.parent, node.left, node.right = nil, nil, nil
		return
	}

	fixupDoubleBlack(rootRef, p, d, opts, hooks)
	hooks.afterUnlink(node)
	node.parent, node.left, node.right = nil, nil, nil
}

// fixupDoubleBlack repairs the black-height deficit left by detaching a
// black leaf from p's d-subtree, implementing spec.md §4.2.6's cases 1-4.
func fixupDoubleBlack[K any, V any, A any](
	rootRef **Node[K, V, A], p *Node[K, V, A], d Direction, opts Options, hooks *Hooks[K, V, A],
) {
	for {
		s := p.Child(d.Invert())

		if s.isRed() {
			// Case 1: red sibling.
			rotate(rootRef, p, d, opts)
			hooks.rotate(p, s, d)
			s.color = Black
			p.color = Red
			hooks.recolor(s, p)
			s = p.Child(d.Invert())
		}

		c := s.Child(d)        // close nephew
		n := s.Child(d.Invert()) // distant nephew

		if c.isBlack() && n.isBlack() {
			// Case 2: black sibling, both nephews black.
			s.color = Red
			if p.isRed() {
				p.color = Black
				hooks.recolor(s, p)
				return
			}
			hooks.recolor(s)
			if p.parent == nil {
				return
			}
			nd := p.Direction()
			np := p.parent
			d, p = nd, np
			continue
		}

		if n.isBlack() {
			// Case 3: close nephew red, distant black. Fall through to 4.
			rotate(rootRef, s, d.Invert(), opts)
			hooks.rotate(s, c, d.Invert())
			s.color = Red
			c.color = Black
			hooks.recolor(s, c)
			s = c
			n = s.Child(d.Invert())
		}

		// Case 4: distant nephew red.
		pColor := p.color
		rotate(rootRef, p, d, opts)
		hooks.rotate(p, s, d)
		s.color = pColor
		p.color = Black
		if n != nil {
			n.color = Black
		}
		hooks.recolor(s, p, n)
		return
	}
}
