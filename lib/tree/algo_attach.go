package tree

// MakeRoot attaches n as the sole node of an empty tree: black, no
// parent, no children, subtree_size 1 if tracked. Emits after_link.
func MakeRoot[K any, V any, A any](
	rootRef **Node[K, V, A], n *Node[K, V, A], opts Options, hooks *Hooks[K, V, A],
) {
	n.parent = nil
	n.left = nil
	n.right = nil
	n.color = Black
	if opts.TrackSize {
		n.size = 1
	}
	*rootRef = n
	hooks.link(n)
}

// InsertNode links newNode as red into loc, bumps ancestor subtree sizes
// if tracked, emits after_link, then restores I3/I2 via insertRebalance.
// loc must come from a FindNodeOrLocation call that found no match.
func InsertNode[K any, V any, A any](
	rootRef **Node[K, V, A], newNode *Node[K, V, A], loc Location[K, V, A],
	opts Options, hooks *Hooks[K, V, A],
) {
	newNode.left = nil
	newNode.right = nil
	if opts.TrackSize {
		newNode.size = 1
	}

	if loc.Parent == nil {
		MakeRoot(rootRef, newNode, opts, hooks)
		return
	}

	newNode.color = Red
	loc.Parent.setChild(loc.Dir, newNode)
	if opts.TrackSize {
		for p := loc.Parent; p != nil; p = p.parent {
			p.size++
		}
	}
	hooks.link(newNode)

	insertRebalance(rootRef, newNode, opts, hooks)
}

// insertRebalance restores I3 (no red-red edge) after a red link,
// implementing spec.md §4.2.3's cases A/B/C, and unconditionally repaints
// the root black before returning (DESIGN.md's strict-I2 resolution of
// the root-color Open Question).
func insertRebalance[K any, V any, A any](
	rootRef **Node[K, V, A], n *Node[K, V, A], opts Options, hooks *Hooks[K, V, A],
) {
	for {
		p := n.parent
		if p == nil || p.color == Black {
			break
		}
		g := p.parent
		if g == nil {
			break
		}

		pDir := p.Direction()
		u := g.Child(pDir.Invert())

		if u.isRed() {
			// Case A: red uncle.
			p.color = Black
			u.color = Black
			g.color = Red
			hooks.recolor(p, u, g)
			n = g
			continue
		}

		if n.Direction() != pDir {
			// Case B: n is on the opposite side of p from p on g.
			// Rotate p toward pDir so n and p swap generational roles,
			// then fall through to case C with roles renamed.
			rotate(rootRef, p, pDir, opts)
			hooks.rotate(p, n, pDir)
			n, p = p, n
		}

		// Case C: n is on the same side as p.
		rotate(rootRef, g, pDir.Invert(), opts)
		hooks.rotate(g, p, pDir.Invert())
		p.color = Black
		g.color = Red
		hooks.recolor(p, g)
		break
	}

	if root := *rootRef; root != nil && root.color != Black {
		root.color = Black
		hooks.recolor(root)
	}
}
