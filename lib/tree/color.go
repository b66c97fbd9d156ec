package tree

// Color is two-valued: a node is either Red or Black. The zero value is
// Red so that a freshly allocated node defaults to the color it is given
// on link anyway (insert always paints new nodes red before linking).
type Color uint8

const (
	Red Color = iota
	Black
)

func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "red"
}
