// Package ordering supplies the "default structural ordering for
// primitive, array, and vector key types" spec.md §6 mentions in passing
// as incidental utility, alongside lib/tree.IgnoreContext's
// context-lifting helper.
package ordering

import (
	"cmp"

	"github.com/benz9527/rbtree/lib/tree"
)

// Natural lifts Go's own ordering over an ordered primitive type into a
// tree.Comparator, ignoring context. Built on the standard library's cmp
// package rather than a third-party ordering constraint set: cmp.Ordered
// and cmp.Compare are exactly this, already in the standard library since
// Go 1.21, so reaching past them for an external constraints package
// would add a dependency for something the language already ships.
func Natural[K cmp.Ordered, C any]() tree.Comparator[K, C] {
	return tree.IgnoreContext[K, C](func(a, b K) tree.Ordering {
		switch {
		case a < b:
			return tree.Less
		case a > b:
			return tree.Greater
		default:
			return tree.Equal
		}
	})
}
