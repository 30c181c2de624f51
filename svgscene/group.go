package svgscene

// Group is an ordered list of shapes, without geometry of its own.
// A Group is the sole owner of its children.
type Group struct {
	children []Shape
}

// NewGroup takes ownership of `children`: the caller must not
// use them afterwards.
func NewGroup(children []Shape) *Group {
	return &Group{children: children}
}

// Len returns the number of direct children.
func (g *Group) Len() int { return len(g.children) }

// Children returns the direct children, in document order.
// The returned shapes are still owned by the group and must be treated as read-only.
func (g *Group) Children() []Shape { return append([]Shape(nil), g.children...) }

// Draw draws every child, in order.
func (g *Group) Draw(d Driver) {
	for _, child := range g.children {
		child.Draw(d)
	}
}

// Transform forwards the descriptor to every child, which parses it
// against its own geometry.
func (g *Group) Transform(transform, origin string) {
	for _, child := range g.children {
		child.Transform(transform, origin)
	}
}

// Clone returns a deep copy: every child is cloned, recursively.
func (g *Group) Clone() Shape {
	children := make([]Shape, len(g.children))
	for i, child := range g.children {
		children[i] = child.Clone()
	}
	return &Group{children: children}
}
