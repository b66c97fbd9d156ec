package tree

// Find returns the node with the given key, or nil.
func (t *Tree[K, V, A, C]) Find(ctx C, key K) *Node[K, V, A] {
	n, _ := FindNodeOrLocation[K, V, A, C](t.root, ctx, key, t.cmp)
	return n
}

func (t *Tree[K, V, A, C]) Contains(ctx C, key K) bool {
	return t.Find(ctx, key) != nil
}

func (t *Tree[K, V, A, C]) Get(ctx C, key K) (V, bool) {
	n := t.Find(ctx, key)
	if n == nil {
		var zero V
		return zero, false
	}
	return n.val, true
}

// GetKey returns the key stored at the matching node, which need not be
// == the lookup key (ClobberPolicy.NoClobber can leave a distinguishable
// but Equal-comparing key in place).
func (t *Tree[K, V, A, C]) GetKey(ctx C, key K) (K, bool) {
	n := t.Find(ctx, key)
	if n == nil {
		var zero K
		return zero, false
	}
	return n.key, true
}

func (t *Tree[K, V, A, C]) GetEntry(ctx C, key K) (K, V, bool) {
	n := t.Find(ctx, key)
	if n == nil {
		var zk K
		var zv V
		return zk, zv, false
	}
	return n.key, n.val, true
}

// Fetch is Get under the name spec.md §4.3 also lists.
func (t *Tree[K, V, A, C]) Fetch(ctx C, key K) (V, bool) { return t.Get(ctx, key) }

// GetPtr returns a pointer into the stored value, valid until the node is
// removed, or nil if key is absent.
func (t *Tree[K, V, A, C]) GetPtr(ctx C, key K) *V {
	return t.Find(ctx, key).ValPtr()
}

func (t *Tree[K, V, A, C]) GetKeyPtr(ctx C, key K) *K {
	return t.Find(ctx, key).KeyPtr()
}

func (t *Tree[K, V, A, C]) FindMin() *Node[K, V, A] { return t.root.Leftmost() }
func (t *Tree[K, V, A, C]) FindMax() *Node[K, V, A] { return t.root.Rightmost() }

// FindLowerBound returns the smallest stored key >= key, or nil.
//
// This is the library's own name for the operation, not the C++
// std::lower_bound convention by coincidence of naming only - matched
// here against the worked numbers in spec.md's S6 scenario, which
// disagree with §4.3's prose description of the same operation (flagged
// as an unresolved ambiguity in spec.md §9; DESIGN.md records the choice).
func (t *Tree[K, V, A, C]) FindLowerBound(ctx C, key K) *Node[K, V, A] {
	var res *Node[K, V, A]
	cur := t.root
	for cur != nil {
		switch t.cmp(ctx, cur.key, key) {
		case Equal:
			return cur
		case Less:
			cur = cur.right
		default:
			res = cur
			cur = cur.left
		}
	}
	return res
}

// FindUpperBound returns the greatest stored key <= key, or nil.
func (t *Tree[K, V, A, C]) FindUpperBound(ctx C, key K) *Node[K, V, A] {
	var res *Node[K, V, A]
	cur := t.root
	for cur != nil {
		switch t.cmp(ctx, cur.key, key) {
		case Equal:
			return cur
		case Greater:
			cur = cur.left
		default:
			res = cur
			cur = cur.right
		}
	}
	return res
}
