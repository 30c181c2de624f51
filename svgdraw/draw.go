// Records the draw operations of a scene, without painting anything.
// The log can be inspected or printed, and gives the extent
// of the drawing.
package svgdraw

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/benoitkugler/svgscene/svggeom"
)

// Kind is the type of a draw operation.
type Kind uint8

const (
	FillEllipse Kind = iota
	FillPolygon
	StrokeLine
)

func (k Kind) String() string {
	switch k {
	case FillEllipse:
		return "ellipse"
	case FillPolygon:
		return "polygon"
	case StrokeLine:
		return "line"
	default:
		return "<unknown Kind>"
	}
}

// Call is one recorded draw operation.
// For ellipses, Points holds the center then the radii;
// for polygons, the vertices; for lines, the two ends.
type Call struct {
	Kind   Kind
	Points []svggeom.Point
	Color  color.RGBA
}

func (c Call) String() string {
	chunks := make([]string, len(c.Points))
	for i, p := range c.Points {
		chunks[i] = p.String()
	}
	return fmt.Sprintf("%s %s #%02x%02x%02x", c.Kind, strings.Join(chunks, " "), c.Color.R, c.Color.G, c.Color.B)
}

// Bounds returns the extent of the painted area.
func (c Call) Bounds() svggeom.Rect {
	if c.Kind == FillEllipse {
		center, r := c.Points[0], c.Points[1]
		r.X, r.Y = abs(r.X), abs(r.Y)
		return svggeom.BoundsOf(
			svggeom.Point{X: center.X - r.X, Y: center.Y - r.Y},
			svggeom.Point{X: center.X + r.X, Y: center.Y + r.Y},
		)
	}
	return svggeom.BoundsOf(c.Points...)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Recorder is a driver storing every draw operation, in order.
// The zero value is ready to use.
type Recorder struct {
	Calls []Call
}

func (r *Recorder) FillEllipse(center, radius svggeom.Point, fill color.RGBA) {
	r.Calls = append(r.Calls, Call{Kind: FillEllipse, Points: []svggeom.Point{center, radius}, Color: fill})
}

func (r *Recorder) FillPolygon(points []svggeom.Point, fill color.RGBA) {
	r.Calls = append(r.Calls, Call{Kind: FillPolygon, Points: append([]svggeom.Point(nil), points...), Color: fill})
}

func (r *Recorder) StrokeLine(from, to svggeom.Point, stroke color.RGBA) {
	r.Calls = append(r.Calls, Call{Kind: StrokeLine, Points: []svggeom.Point{from, to}, Color: stroke})
}

// Reset discards the recorded calls.
func (r *Recorder) Reset() { r.Calls = r.Calls[:0] }

// Bounds returns the union of the extent of every call.
func (r *Recorder) Bounds() svggeom.Rect {
	var out svggeom.Rect
	for _, c := range r.Calls {
		out = out.Union(c.Bounds())
	}
	return out
}

// String returns one line per call.
func (r *Recorder) String() string {
	var sb strings.Builder
	for _, c := range r.Calls {
		sb.WriteString(c.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
