package svggeom

// Rect is an axis aligned bounding box, with inclusive bounds.
// The zero value is the empty box.
type Rect struct {
	Min, Max Point
	nonEmpty bool
}

// BoundsOf returns the smallest box containing every point.
func BoundsOf(points ...Point) Rect {
	var r Rect
	for _, p := range points {
		r = r.Add(p)
	}
	return r
}

// Empty is true if no point has been added to the box.
func (r Rect) Empty() bool { return !r.nonEmpty }

// Add returns the box extended to contain p.
func (r Rect) Add(p Point) Rect {
	if r.Empty() {
		return Rect{Min: p, Max: p, nonEmpty: true}
	}
	r.Min.X, r.Min.Y = min(r.Min.X, p.X), min(r.Min.Y, p.Y)
	r.Max.X, r.Max.Y = max(r.Max.X, p.X), max(r.Max.Y, p.Y)
	return r
}

// Union returns the smallest box containing both boxes.
func (r Rect) Union(other Rect) Rect {
	if other.Empty() {
		return r
	}
	return r.Add(other.Min).Add(other.Max)
}

// Dx is the width of the box.
func (r Rect) Dx() int {
	if r.Empty() {
		return 0
	}
	return r.Max.X - r.Min.X
}

// Dy is the height of the box.
func (r Rect) Dy() int {
	if r.Empty() {
		return 0
	}
	return r.Max.Y - r.Min.Y
}
