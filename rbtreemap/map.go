package rbtreemap

import (
	"github.com/benz9527/rbtree/lib/tree"
	"github.com/benz9527/rbtree/lib/xlog"
)

// Map is spec.md §1's convenience wrapper: a lib/tree.Tree plus the
// allocator and ordering context every call otherwise has to carry
// explicitly. Trivial delegation, per spec.md's own description - every
// method here is a one-line forward into the wrapped Tree with ctx
// already filled in.
type Map[K any, V any, A any, C any] struct {
	tree   *tree.Tree[K, V, A, C]
	ctx    C
	logger xlog.Logger
}

// Config collects the New constructor's optional pieces; the zero Config
// is a tree with no augmentation, a plain Go allocator, and no logging.
type Config[K any, V any, A any] struct {
	Options   tree.Options
	Allocator tree.Allocator[K, V, A]
	Hooks     *tree.Hooks[K, V, A]
	Logger    xlog.Logger
}

// New builds a Map over cmp, pinning ctx for every subsequent call. A nil
// Allocator defaults to NewGoAllocator. When cfg.Logger is set, its hook
// bundle is wrapped so structural mutations are traced at debug level in
// addition to whatever cfg.Hooks already does.
func New[K any, V any, A any, C any](
	ctx C, cmp tree.Comparator[K, C], cfg Config[K, V, A],
) *Map[K, V, A, C] {
	alloc := cfg.Allocator
	if alloc == nil {
		alloc = NewGoAllocator[K, V, A]()
	}
	hooks := cfg.Hooks
	if cfg.Logger != nil {
		hooks = traced(cfg.Logger, hooks)
	}
	return &Map[K, V, A, C]{
		tree:   tree.New[K, V, A, C](cmp, alloc, cfg.Options, hooks),
		ctx:    ctx,
		logger: cfg.Logger,
	}
}

func (m *Map[K, V, A, C]) Len() int    { return m.tree.Len() }
func (m *Map[K, V, A, C]) Empty() bool { return m.tree.Empty() }

func (m *Map[K, V, A, C]) Get(key K) (V, bool)         { return m.tree.Get(m.ctx, key) }
func (m *Map[K, V, A, C]) Contains(key K) bool         { return m.tree.Contains(m.ctx, key) }
func (m *Map[K, V, A, C]) GetEntry(key K) (K, V, bool) { return m.tree.GetEntry(m.ctx, key) }

// Put overwrites key's value unconditionally, returning the value it
// replaced if any.
func (m *Map[K, V, A, C]) Put(key K, val V) (prev V, hadPrev bool, err error) {
	return m.tree.Put(m.ctx, key, val)
}

// PutIfAbsent inserts only when key is not already present.
func (m *Map[K, V, A, C]) PutIfAbsent(key K, val V) (added bool, err error) {
	return m.tree.PutNoClobber(m.ctx, key, val)
}

func (m *Map[K, V, A, C]) Delete(key K) bool          { return m.tree.Remove(m.ctx, key) }
func (m *Map[K, V, A, C]) DeleteAndFetch(key K) (V, bool) { return m.tree.FetchRemove(m.ctx, key) }

func (m *Map[K, V, A, C]) Min() *tree.Node[K, V, A] { return m.tree.FindMin() }
func (m *Map[K, V, A, C]) Max() *tree.Node[K, V, A] { return m.tree.FindMax() }

func (m *Map[K, V, A, C]) LowerBound(key K) *tree.Node[K, V, A] {
	return m.tree.FindLowerBound(m.ctx, key)
}

func (m *Map[K, V, A, C]) UpperBound(key K) *tree.Node[K, V, A] {
	return m.tree.FindUpperBound(m.ctx, key)
}

// Tree exposes the wrapped container for callers who need an operation
// this wrapper doesn't forward (RemoveNode by pointer, Move, manual
// Node-level traversal via Root/Next/Prev).
func (m *Map[K, V, A, C]) Tree() *tree.Tree[K, V, A, C] { return m.tree }

// Clone duplicates the map's structure into a new Map sharing this one's
// comparator, options, hooks, and allocator, pinned to the same context.
func (m *Map[K, V, A, C]) Clone() (*Map[K, V, A, C], error) {
	cloned, err := m.tree.Clone()
	if err != nil {
		return nil, err
	}
	return &Map[K, V, A, C]{tree: cloned, ctx: m.ctx, logger: m.logger}, nil
}
