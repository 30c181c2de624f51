package svgscene

import (
	"fmt"
	"image/color"

	"github.com/benoitkugler/svgscene/svggeom"
)

// Polyline is an open stroked path of at least 2 points,
// drawn as consecutive segments.
type Polyline struct {
	points []svggeom.Point
	stroke color.RGBA
}

// NewPolyline copies `points`, which must contain at least 2 points.
func NewPolyline(points []svggeom.Point, stroke color.RGBA) (*Polyline, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("polyline: %w (%d, need at least 2)", ErrTooFewPoints, len(points))
	}
	return &Polyline{points: append([]svggeom.Point(nil), points...), stroke: stroke}, nil
}

// Points returns a copy of the points, in document order.
func (p *Polyline) Points() []svggeom.Point { return append([]svggeom.Point(nil), p.points...) }

func (p *Polyline) Stroke() color.RGBA { return p.stroke }

func (p *Polyline) Draw(d Driver) {
	for i := 0; i+1 < len(p.points); i++ {
		d.StrokeLine(p.points[i], p.points[i+1], p.stroke)
	}
}

func (p *Polyline) Transform(transform, origin string) {
	if t, ok := ParseTransform(transform, origin); ok {
		t.applyAll(p.points)
	}
}

func (p *Polyline) Clone() Shape {
	return &Polyline{points: p.Points(), stroke: p.stroke}
}

// Line is a Polyline with exactly two points.
type Line struct {
	Polyline
}

// NewLine returns the segment [from, to].
func NewLine(from, to svggeom.Point, stroke color.RGBA) *Line {
	return &Line{Polyline{points: []svggeom.Point{from, to}, stroke: stroke}}
}

// Ends returns the two points of the line.
func (l *Line) Ends() (from, to svggeom.Point) { return l.points[0], l.points[1] }

func (l *Line) Clone() Shape {
	return &Line{Polyline{points: l.Points(), stroke: l.stroke}}
}
