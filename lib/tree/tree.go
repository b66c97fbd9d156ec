package tree

import (
	"sync/atomic"

	"github.com/benz9527/rbtree/lib/infra"
)

// Tree is the keyed container from spec.md §4.3: owns the root pointer
// and (when Options.TrackSize is false) an explicit count, and delegates
// every structural operation to the core algorithms in algo_*.go.
type Tree[K any, V any, A any, C any] struct {
	root     *Node[K, V, A]
	count    int
	cmp      Comparator[K, C]
	hooks    *Hooks[K, V, A]
	opts     Options
	alloc    Allocator[K, V, A]
	mutating atomic.Bool
}

// New builds an empty tree. alloc must not be nil; hooks may be.
func New[K any, V any, A any, C any](
	cmp Comparator[K, C], alloc Allocator[K, V, A], opts Options, hooks *Hooks[K, V, A],
) *Tree[K, V, A, C] {
	return &Tree[K, V, A, C]{cmp: cmp, alloc: alloc, opts: opts, hooks: hooks}
}

// enter/exit guard against the one misuse case spec.md §5 calls out as
// always worth checking: a callback re-entering the tree it was invoked
// from. Every public mutating method wraps its body in enter()/exit().
func (t *Tree[K, V, A, C]) enter() {
	if !t.mutating.CompareAndSwap(false, true) {
		panic(infra.WrapErrorStack(ErrReentrant, "tree mutation re-entered from within a callback"))
	}
}

func (t *Tree[K, V, A, C]) exit() {
	t.mutating.Store(false)
}

// Len is the element count: the stored counter by default, or the
// root's tracked subtree size when Options.TrackSize is set.
func (t *Tree[K, V, A, C]) Len() int {
	if t.opts.TrackSize {
		return t.root.Size()
	}
	return t.count
}

func (t *Tree[K, V, A, C]) Empty() bool { return t.Len() == 0 }

// Root exposes the root node for callers who want to traverse manually
// (e.g. via Node.Next/Prev); nil for an empty tree.
func (t *Tree[K, V, A, C]) Root() *Node[K, V, A] { return t.root }

// belongsTo is the Debug-mode foreign-node check (spec.md §7): walk n's
// parent chain to its top and confirm it is this tree's root.
func (t *Tree[K, V, A, C]) belongsTo(n *Node[K, V, A]) bool {
	if n == nil {
		return false
	}
	cur := n
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur == t.root
}

// Move yields a tree that owns everything self did, resetting self to
// empty. An O(1) steal; no nodes are touched.
func (t *Tree[K, V, A, C]) Move() *Tree[K, V, A, C] {
	t.enter()
	defer t.exit()

	moved := &Tree[K, V, A, C]{
		root:  t.root,
		count: t.count,
		cmp:   t.cmp,
		hooks: t.hooks,
		opts:  t.opts,
		alloc: t.alloc,
	}
	t.root = nil
	t.count = 0
	return moved
}
