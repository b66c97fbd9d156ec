package tree

// Ordering is the three-valued result of a comparison.
type Ordering int8

const (
	Less Ordering = iota - 1
	Equal
	Greater
)

// Comparator is the caller-supplied total order over K. ctx is threaded
// through unmodified; the library never inspects it.
type Comparator[K any, C any] func(ctx C, a, b K) Ordering

// IgnoreContext lifts a context-free comparator into the shape every core
// algorithm expects.
func IgnoreContext[K any, C any](cmp func(a, b K) Ordering) Comparator[K, C] {
	return func(_ C, a, b K) Ordering {
		return cmp(a, b)
	}
}
