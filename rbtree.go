// Package rbtree re-exports the common surface of lib/tree, lib/tree/augment,
// lib/ordering, and rbtreemap so a caller who doesn't need the split can
// import a single package. Type aliases forward types directly; generic
// functions get a one-line wrapper since Go can't alias an uninstantiated
// generic function.
package rbtree

import (
	"cmp"

	"github.com/benz9527/rbtree/lib/ordering"
	"github.com/benz9527/rbtree/lib/tree"
	"github.com/benz9527/rbtree/lib/tree/augment"
	"github.com/benz9527/rbtree/rbtreemap"
)

type (
	Node[K any, V any, A any]         = tree.Node[K, V, A]
	PackedNode[K any, V any, A any]   = tree.PackedNode[K, V, A]
	Tree[K any, V any, A any, C any]  = tree.Tree[K, V, A, C]
	Hooks[K any, V any, A any]        = tree.Hooks[K, V, A]
	Comparator[K any, C any]          = tree.Comparator[K, C]
	Options                           = tree.Options
	Direction                         = tree.Direction
	Color                             = tree.Color
	Ordering                          = tree.Ordering
	ClobberPolicy                     = tree.ClobberPolicy
	InsertResult[K any, V any, A any] = tree.InsertResult[K, V, A]
	Location[K any, V any, A any]     = tree.Location[K, V, A]
	Allocator[K any, V any, A any]    = tree.Allocator[K, V, A]
	Map[K any, V any, A any, C any]   = rbtreemap.Map[K, V, A, C]
	MapConfig[K any, V any, A any]    = rbtreemap.Config[K, V, A]
)

const (
	Left  = tree.Left
	Right = tree.Right
	None  = tree.None

	Red   = tree.Red
	Black = tree.Black

	Less    = tree.Less
	Equal   = tree.Equal
	Greater = tree.Greater

	NoClobber          = tree.NoClobber
	ClobberValueOnly   = tree.ClobberValueOnly
	ClobberKeyAndValue = tree.ClobberKeyAndValue
)

var (
	ErrAllocationFailed   = tree.ErrAllocationFailed
	ErrForeignNode        = tree.ErrForeignNode
	ErrReentrant          = tree.ErrReentrant
	ErrClobberKeyMismatch = tree.ErrClobberKeyMismatch
)

// New builds an empty tree; see lib/tree.New.
func New[K any, V any, A any, C any](
	cmp tree.Comparator[K, C], alloc tree.Allocator[K, V, A], opts tree.Options, hooks *tree.Hooks[K, V, A],
) *tree.Tree[K, V, A, C] {
	return tree.New[K, V, A, C](cmp, alloc, opts, hooks)
}

// IgnoreContext lifts a context-free comparator; see lib/tree.IgnoreContext.
func IgnoreContext[K any, C any](cmp func(a, b K) tree.Ordering) tree.Comparator[K, C] {
	return tree.IgnoreContext[K, C](cmp)
}

// NewMap builds the convenience wrapper; see rbtreemap.New.
func NewMap[K any, V any, A any, C any](
	ctx C, cmp tree.Comparator[K, C], cfg rbtreemap.Config[K, V, A],
) *rbtreemap.Map[K, V, A, C] {
	return rbtreemap.New[K, V, A, C](ctx, cmp, cfg)
}

// NewGoAllocator returns a plain-Go Allocator; see rbtreemap.NewGoAllocator.
func NewGoAllocator[K any, V any, A any]() tree.Allocator[K, V, A] {
	return rbtreemap.NewGoAllocator[K, V, A]()
}

// NewPooledAllocator returns a sync.Pool-backed Allocator; see
// rbtreemap.NewPooledAllocator.
func NewPooledAllocator[K any, V any, A any]() tree.Allocator[K, V, A] {
	return rbtreemap.NewPooledAllocator[K, V, A]()
}

// SizeAugment returns the subtree-size hook bundle; see augment.Size.
func SizeAugment[K any, V any]() *tree.Hooks[K, V, int] {
	return augment.Size[K, V]()
}

// MaxAugment returns the subtree-max hook bundle; see augment.MaxKey.
func MaxAugment[K any, V any](less func(a, b K) bool) *tree.Hooks[K, V, K] {
	return augment.MaxKey[K, V](less)
}

// Natural lifts Go's own ordering over K into a Comparator; see
// ordering.Natural.
func Natural[K cmp.Ordered, C any]() tree.Comparator[K, C] {
	return ordering.Natural[K, C]()
}

// Slice compares slices of an ordered element type lexicographically;
// see ordering.Slice.
func Slice[E cmp.Ordered, C any]() tree.Comparator[[]E, C] {
	return ordering.Slice[E, C]()
}

// Array16 is Slice's fixed-length counterpart for [16]E; see
// ordering.Array16.
func Array16[E cmp.Ordered, C any]() tree.Comparator[[16]E, C] {
	return ordering.Array16[E, C]()
}
