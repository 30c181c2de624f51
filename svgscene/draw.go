package svgscene

import (
	"image/color"

	"github.com/benoitkugler/svgscene/svgdraw"
	"github.com/benoitkugler/svgscene/svggeom"
)

// Given a built Document, implements how to
// draw it on screen.
// This requires a driver implementing the actual draw operations,
// such as a rasterizer to output .png images or a pdf writer.

// Driver knows how to do the actual draw operations
// but doesn't need any SVG knowledge.
// In particular, transforms are already applied to the points
// before sending them to the Driver.
// Implementations must not modify or retain the slices they are given.
type Driver interface {
	// FillEllipse paints the axis aligned ellipse of the given center and radii.
	FillEllipse(center, radius svggeom.Point, fill color.RGBA)

	// FillPolygon paints the closed polygon with vertices `points`.
	FillPolygon(points []svggeom.Point, fill color.RGBA)

	// StrokeLine paints the segment [from, to].
	StrokeLine(from, to svggeom.Point, stroke color.RGBA)
}

// Draw the document into the driver `d`, one shape at a time,
// in document order.
func (doc *Document) Draw(d Driver) {
	for _, shape := range doc.Shapes {
		shape.Draw(d)
	}
}

// Size returns the canvas size of the document: the root width and
// height when given, otherwise the extent of the drawing, starting at
// the origin.
func (doc *Document) Size() (width, height int) {
	width, height = doc.Width, doc.Height
	if width > 0 && height > 0 {
		return width, height
	}
	var rec svgdraw.Recorder
	doc.Draw(&rec)
	bounds := rec.Bounds()
	if bounds.Empty() {
		return max(width, 0), max(height, 0)
	}
	if width <= 0 {
		width = max(bounds.Max.X+1, 0)
	}
	if height <= 0 {
		height = max(bounds.Max.Y+1, 0)
	}
	return width, height
}
