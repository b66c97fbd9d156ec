package tree

// rotate performs the standard tree rotation described in spec.md
// §4.2.4: r = x.Child(dir.Invert()) takes x's position, x becomes r's
// dir child, and r's former dir child s becomes x's !dir child. Updates
// subtree sizes on x then r if tracked. Emission of after_rotate is the
// caller's responsibility, so that deletion fixups can see the
// pre-rotation state first.
func rotate[K any, V any, A any](
	rootRef **Node[K, V, A], x *Node[K, V, A], dir Direction, opts Options,
) *Node[K, V, A] {
	r := x.Child(dir.Invert())
	s := r.Child(dir)
	p := x.parent

	x.setChild(dir.Invert(), s)
	r.parent = p
	switch {
	case p == nil:
		*rootRef = r
	case p.left == x:
		p.left = r
	default:
		p.right = r
	}
	r.setChild(dir, x)

	if opts.TrackSize {
		updateSize(x)
		updateSize(r)
	}
	return r
}
