package tree

import "github.com/benz9527/rbtree/lib/infra"

// ClobberPolicy controls what Insert does when the key is already present.
type ClobberPolicy uint8

const (
	// NoClobber leaves an existing entry untouched.
	NoClobber ClobberPolicy = iota
	// ClobberValueOnly overwrites the stored value, keeping the stored key.
	ClobberValueOnly
	// ClobberKeyAndValue overwrites both. Only valid when the new and old
	// keys compare Equal; the container does not verify this unless Debug
	// is set.
	ClobberKeyAndValue
)

// InsertResult reports what Insert did.
type InsertResult[K any, V any, A any] struct {
	FoundExisting bool
	Clobbered     bool
	Node          *Node[K, V, A]
	// PrevValue is the value stored before this call, valid whenever
	// FoundExisting is true (regardless of whether the policy clobbered it).
	PrevValue V
}

// Insert locates key; if found, applies policy. If not found, allocates a
// node and links it (as root or via InsertNode). Fails on allocation, and,
// when Debug is set, on ClobberKeyAndValue with a key that does not
// compare Equal to the stored one.
func (t *Tree[K, V, A, C]) Insert(ctx C, key K, val V, policy ClobberPolicy) (InsertResult[K, V, A], error) {
	t.enter()
	defer t.exit()

	existing, loc := FindNodeOrLocation[K, V, A, C](t.root, ctx, key, t.cmp)
	if existing != nil {
		prev := existing.val
		switch policy {
		case ClobberValueOnly:
			existing.val = val
			return InsertResult[K, V, A]{true, true, existing, prev}, nil
		case ClobberKeyAndValue:
			if Debug && t.cmp(ctx, key, existing.key) != Equal {
				return InsertResult[K, V, A]{true, false, existing, prev},
					infra.WrapErrorStack(ErrClobberKeyMismatch, "Insert")
			}
			existing.key = key
			existing.val = val
			return InsertResult[K, V, A]{true, true, existing, prev}, nil
		default: // NoClobber
			return InsertResult[K, V, A]{true, false, existing, prev}, nil
		}
	}

	n, err := t.alloc.Allocate()
	if err != nil {
		return InsertResult[K, V, A]{}, infra.WrapErrorStack(ErrAllocationFailed, err.Error())
	}
	n.key = key
	n.val = val
	InsertNode(&t.root, n, loc, t.opts, t.hooks)
	t.count++
	return InsertResult[K, V, A]{false, false, n, val}, nil
}

// GetOrPut inserts (key, val) only if key is absent, returning the stored
// node either way and whether it pre-existed.
func (t *Tree[K, V, A, C]) GetOrPut(ctx C, key K, val V) (*Node[K, V, A], bool, error) {
	res, err := t.Insert(ctx, key, val, NoClobber)
	return res.Node, res.FoundExisting, err
}

// Put overwrites key's value unconditionally (inserting if absent),
// returning the prior value if any.
func (t *Tree[K, V, A, C]) Put(ctx C, key K, val V) (prev V, hadPrev bool, err error) {
	res, err := t.Insert(ctx, key, val, ClobberValueOnly)
	return res.PrevValue, res.FoundExisting, err
}

// PutNoClobber is Insert with NoClobber, returning only success/failure
// shape (true if the key was newly added).
func (t *Tree[K, V, A, C]) PutNoClobber(ctx C, key K, val V) (added bool, err error) {
	res, err := t.Insert(ctx, key, val, NoClobber)
	return !res.FoundExisting, err
}

// Add is an alias for PutNoClobber under the name spec.md §4.3 also uses.
func (t *Tree[K, V, A, C]) Add(ctx C, key K, val V) (added bool, err error) {
	return t.PutNoClobber(ctx, key, val)
}

// FetchPut is Put, returning the overwritten node instead of the value.
func (t *Tree[K, V, A, C]) FetchPut(ctx C, key K, val V) (node *Node[K, V, A], hadPrev bool, err error) {
	res, err := t.Insert(ctx, key, val, ClobberValueOnly)
	return res.Node, res.FoundExisting, err
}
