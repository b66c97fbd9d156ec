package ordering

import (
	"cmp"

	"github.com/benz9527/rbtree/lib/tree"
)

// Slice compares two slices of an ordered element type lexicographically:
// element by element, then by length when one is a strict prefix of the
// other. This is the "vector key type" default structural ordering
// spec.md §6 names; Array16 below is its fixed-length counterpart.
func Slice[E cmp.Ordered, C any]() tree.Comparator[[]E, C] {
	return tree.IgnoreContext[[]E, C](func(a, b []E) tree.Ordering {
		n := len(a)
		if len(b) < n {
			n = len(b)
		}
		for i := 0; i < n; i++ {
			switch {
			case a[i] < b[i]:
				return tree.Less
			case a[i] > b[i]:
				return tree.Greater
			}
		}
		switch {
		case len(a) < len(b):
			return tree.Less
		case len(a) > len(b):
			return tree.Greater
		default:
			return tree.Equal
		}
	})
}

// Array16 is Slice's fixed-length counterpart for [16]E keys, with no
// length comparison needed since both operands have exactly 16 elements
// by construction. Go has no const generics, so a single generic
// Array[E, N] isn't expressible; callers with a different fixed width
// either compare a[:] and b[:] with Slice or copy this body for their N.
func Array16[E cmp.Ordered, C any]() tree.Comparator[[16]E, C] {
	return tree.IgnoreContext[[16]E, C](func(a, b [16]E) tree.Ordering {
		for i := range a {
			switch {
			case a[i] < b[i]:
				return tree.Less
			case a[i] > b[i]:
				return tree.Greater
			}
		}
		return tree.Equal
	})
}
