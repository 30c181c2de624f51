package svgscene

import (
	"image/color"

	"github.com/benoitkugler/svgscene/svggeom"
)

// Shape is the capability set shared by every element of the scene graph.
// Callers never need to know the concrete variant.
type Shape interface {
	// Draw emits the shape geometry to the driver.
	// The shape itself is left unchanged.
	Draw(d Driver)

	// Transform applies one transform descriptor to the stored geometry,
	// in place. `origin` is the optional pivot descriptor.
	// Empty or unsupported descriptors are no-ops.
	Transform(transform, origin string)

	// Clone returns an independent deep copy, of the same variant.
	Clone() Shape
}

var (
	_ Shape = (*Ellipse)(nil)
	_ Shape = (*Circle)(nil)
	_ Shape = (*Polygon)(nil)
	_ Shape = (*Rectangle)(nil)
	_ Shape = (*Polyline)(nil)
	_ Shape = (*Line)(nil)
	_ Shape = (*Group)(nil)
)

// Ellipse is an axis aligned filled ellipse.
type Ellipse struct {
	center svggeom.Point
	radius svggeom.Point // rx, ry
	fill   color.RGBA
}

// NewEllipse returns an ellipse with radii `radius.X` and `radius.Y`.
func NewEllipse(center, radius svggeom.Point, fill color.RGBA) *Ellipse {
	return &Ellipse{center: center, radius: radius, fill: fill}
}

func (e *Ellipse) Center() svggeom.Point { return e.center }
func (e *Ellipse) Radius() svggeom.Point { return e.radius }
func (e *Ellipse) Fill() color.RGBA      { return e.fill }

func (e *Ellipse) Draw(d Driver) {
	d.FillEllipse(e.center, e.radius, e.fill)
}

// Transform moves the center. Rotations keep the axes aligned;
// scalings also multiply both radii by the factor.
func (e *Ellipse) Transform(transform, origin string) {
	t, ok := ParseTransform(transform, origin)
	if !ok {
		return
	}
	e.center = t.Apply(e.center)
	e.radius = svggeom.Point{X: t.ScaleLength(e.radius.X), Y: t.ScaleLength(e.radius.Y)}
}

func (e *Ellipse) Clone() Shape {
	out := *e
	return &out
}

// Circle is an Ellipse with equal radii.
// Since scalings are uniform, the radii stay equal.
type Circle struct {
	Ellipse
}

// NewCircle returns a circle of radius `r`.
func NewCircle(center svggeom.Point, r int, fill color.RGBA) *Circle {
	return &Circle{Ellipse{center: center, radius: svggeom.Point{X: r, Y: r}, fill: fill}}
}

func (c *Circle) Clone() Shape {
	out := *c
	return &out
}
