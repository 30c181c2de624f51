package svgscene

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/benoitkugler/svgscene/svggeom"
)

// ErrTooFewPoints is returned by constructors when the point list
// can't describe the requested shape.
var ErrTooFewPoints = errors.New("too few points")

// ErrEmptyRectangle reports a rect element with a non positive size.
var ErrEmptyRectangle = errors.New("empty rectangle")

// Polygon is a filled closed polygon, with at least 3 vertices.
type Polygon struct {
	points []svggeom.Point
	fill   color.RGBA
}

// NewPolygon copies `points`, which must contain at least 3 vertices.
func NewPolygon(points []svggeom.Point, fill color.RGBA) (*Polygon, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("polygon: %w (%d, need at least 3)", ErrTooFewPoints, len(points))
	}
	return &Polygon{points: append([]svggeom.Point(nil), points...), fill: fill}, nil
}

// Points returns a copy of the vertices, in document order.
func (p *Polygon) Points() []svggeom.Point { return append([]svggeom.Point(nil), p.points...) }

func (p *Polygon) Fill() color.RGBA { return p.fill }

func (p *Polygon) Draw(d Driver) {
	d.FillPolygon(p.points, p.fill)
}

func (p *Polygon) Transform(transform, origin string) {
	if t, ok := ParseTransform(transform, origin); ok {
		t.applyAll(p.points)
	}
}

func (p *Polygon) Clone() Shape {
	return &Polygon{points: p.Points(), fill: p.fill}
}

// Rectangle is a Polygon whose four vertices are computed once,
// at construction. It then behaves as a general polygon under transforms.
type Rectangle struct {
	Polygon
	width, height int
}

// NewRectangle returns the rectangle covering `width` x `height` pixels
// from `topLeft`, with vertices in clockwise order starting at `topLeft`.
// Sizes are expected to be positive: a zero or negative size yields
// inverted vertices.
func NewRectangle(topLeft svggeom.Point, width, height int, fill color.RGBA) *Rectangle {
	right, bottom := topLeft.X+width-1, topLeft.Y+height-1
	return &Rectangle{
		Polygon: Polygon{
			points: []svggeom.Point{
				topLeft,
				{X: right, Y: topLeft.Y},
				{X: right, Y: bottom},
				{X: topLeft.X, Y: bottom},
			},
			fill: fill,
		},
		width:  width,
		height: height,
	}
}

// Width returns the width as given at construction.
// It is not updated by transforms: use Points for the current geometry.
func (r *Rectangle) Width() int { return r.width }

// Height returns the height as given at construction.
// It is not updated by transforms.
func (r *Rectangle) Height() int { return r.height }

func (r *Rectangle) Clone() Shape {
	return &Rectangle{
		Polygon: Polygon{points: r.Points(), fill: r.fill},
		width:   r.width,
		height:  r.height,
	}
}
