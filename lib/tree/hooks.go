package tree

// Hooks is the augmentation callback bundle from spec.md §4.4. Every slot
// is individually optional; a nil *Hooks is equivalent to a bundle with
// every slot nil. The library never reads a payload a hook writes -
// payloads are opaque to it.
type Hooks[K any, V any, A any] struct {
	// AfterRotate fires once a rotation completed by a caller of rotate
	// is fully wired up: parent/child/color fields and (if tracked)
	// subtree sizes already reflect the rotated shape.
	AfterRotate func(old, new_ *Node[K, V, A], dir Direction)

	// AfterSwap fires after swap_positions during deletion. deep need
	// not be in order relative to shallow; shallow always is.
	AfterSwap func(deep, shallow *Node[K, V, A])

	// AfterLink fires once a newly linked node (as root or as a leaf) is
	// attached; rebalancing may not yet have run.
	AfterLink func(n *Node[K, V, A])

	// AfterRecolor fires after one or more nodes' colors are overwritten
	// during fixup (never for the initial link).
	AfterRecolor func(nodes ...*Node[K, V, A])

	// BeforeUnlink fires immediately before a leaf node is detached; the
	// node is still linked.
	BeforeUnlink func(n *Node[K, V, A])

	// AfterUnlink fires once the node is no longer reachable from the
	// tree. The caller frees its memory afterward.
	AfterUnlink func(n *Node[K, V, A])
}

func (h *Hooks[K, V, A]) rotate(old, new_ *Node[K, V, A], dir Direction) {
	if h != nil && h.AfterRotate != nil {
		h.AfterRotate(old, new_, dir)
	}
}

func (h *Hooks[K, V, A]) swap(deep, shallow *Node[K, V, A]) {
	if h != nil && h.AfterSwap != nil {
		h.AfterSwap(deep, shallow)
	}
}

func (h *Hooks[K, V, A]) link(n *Node[K, V, A]) {
	if h != nil && h.AfterLink != nil {
		h.AfterLink(n)
	}
}

func (h *Hooks[K, V, A]) recolor(nodes ...*Node[K, V, A]) {
	if h != nil && h.AfterRecolor != nil {
		h.AfterRecolor(nodes...)
	}
}

func (h *Hooks[K, V, A]) beforeUnlink(n *Node[K, V, A]) {
	if h != nil && h.BeforeUnlink != nil {
		h.BeforeUnlink(n)
	}
}

func (h *Hooks[K, V, A]) afterUnlink(n *Node[K, V, A]) {
	if h != nil && h.AfterUnlink != nil {
		h.AfterUnlink(n)
	}
}
