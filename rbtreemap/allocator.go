// Package rbtreemap is the convenience wrapper spec.md §1 describes as
// "trivial delegation": it pairs a lib/tree.Tree with an Allocator and a
// pinned context value, so a caller who doesn't need a per-call context
// or a custom allocator doesn't have to thread either one through every
// call site.
package rbtreemap

import (
	"sync"

	"github.com/benz9527/rbtree/lib/tree"
)

// goAllocator is the plain-Go rendition of lib/tree.Allocator: every
// Allocate is a fresh *tree.Node, every Free drops the reference and
// lets the garbage collector reclaim it.
type goAllocator[K any, V any, A any] struct{}

// NewGoAllocator returns an Allocator backed directly by Go's own
// allocator, with no pooling.
func NewGoAllocator[K any, V any, A any]() tree.Allocator[K, V, A] {
	return goAllocator[K, V, A]{}
}

func (goAllocator[K, V, A]) Allocate() (*tree.Node[K, V, A], error) {
	return new(tree.Node[K, V, A]), nil
}

func (goAllocator[K, V, A]) Free(*tree.Node[K, V, A]) {}

// pooledAllocator recycles freed nodes through a sync.Pool instead of
// leaving them to the garbage collector, for callers doing high-churn
// insert/remove cycles. Grounded in the teacher's own pooling of
// skip-list nodes in lib/list/x_conc_skl_pool.go, which wraps a single
// sync.Pool behind Get/Put-shaped methods the same way this does.
type pooledAllocator[K any, V any, A any] struct {
	pool *sync.Pool
}

// NewPooledAllocator returns a sync.Pool-backed Allocator. Nodes handed
// back via Free are zeroed before being returned to the pool so a reused
// node never leaks a stale key, value, augmentation payload, or pointer.
func NewPooledAllocator[K any, V any, A any]() tree.Allocator[K, V, A] {
	return &pooledAllocator[K, V, A]{
		pool: &sync.Pool{
			New: func() any { return new(tree.Node[K, V, A]) },
		},
	}
}

func (p *pooledAllocator[K, V, A]) Allocate() (*tree.Node[K, V, A], error) {
	return p.pool.Get().(*tree.Node[K, V, A]), nil
}

func (p *pooledAllocator[K, V, A]) Free(n *tree.Node[K, V, A]) {
	*n = tree.Node[K, V, A]{}
	p.pool.Put(n)
}
