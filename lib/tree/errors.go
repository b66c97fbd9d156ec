package tree

import "errors"

// Debug gates the debug-only misuse assertions spec.md §7 allows to be
// "undefined in release": removing a foreign node, and
// clobber_key_and_value with a differently-ordered key. Tests set this
// to true; production callers pay nothing for the checks unless they opt
// in the same way.
var Debug = false

var (
	// ErrAllocationFailed wraps whatever the caller's Allocator returned.
	ErrAllocationFailed = errors.New("rbtree: allocation failed")

	// ErrForeignNode is returned (Debug only) by RemoveNode when passed a
	// node pointer that does not belong to the receiving tree.
	// RemoveNodeGetNext and RemoveNodeGetPrev do not make this check.
	ErrForeignNode = errors.New("rbtree: node does not belong to this tree")

	// ErrReentrant is panicked when a callback tries to mutate the same
	// tree that invoked it.
	ErrReentrant = errors.New("rbtree: re-entrant mutation from within a callback")

	// ErrClobberKeyMismatch is returned (Debug only) when
	// ClobberKeyAndValue is used with a new key that does not compare
	// Equal to the old one.
	ErrClobberKeyMismatch = errors.New("rbtree: clobber_key_and_value used with a differently-ordered key")
)
