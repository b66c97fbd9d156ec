package tree

// Options selects the compile-time-ish layout/behavior choices spec.md
// leaves to the implementer. It is set once at tree construction and
// never changes afterward.
type Options struct {
	// TrackSize enables the subtree-size counter (I6) on every node and
	// switches Tree.Len to read it off the root instead of a stored
	// count field.
	TrackSize bool
}
