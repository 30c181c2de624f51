package svgscene

import (
	"fmt"
	"image/color"
	"log/slog"
	"strings"

	"github.com/benoitkugler/svgscene/svggeom"
)

func init() {
	// avoids cyclical static declaration
	// called on package initialization
	buildFuncs["g"] = groupF
	buildFuncs["use"] = useF
}

// buildCursor is used while walking the document tree.
type buildCursor struct {
	// ids is the single, flat id table of the document:
	// it is shared (not copied) by the recursive calls, so that an id is
	// visible to every later `use`, inside or outside its group.
	ids       map[string]Shape
	errorMode ErrorMode
	logger    *slog.Logger
}

// buildFunc creates the shape for one element.
// A nil shape with a nil error means the element is skipped.
type buildFunc func(c *buildCursor, n *Node) (Shape, error)

var buildFuncs = map[string]buildFunc{
	"ellipse":  ellipseF,
	"circle":   circleF,
	"rect":     rectF,
	"polygon":  polygonF,
	"polyline": polylineF,
	"line":     lineF,
}

// readChildren builds the children of `n`, in document order.
func (c *buildCursor) readChildren(n *Node) ([]Shape, error) {
	var shapes []Shape
	for _, child := range n.Children {
		bf, ok := buildFuncs[child.Tag]
		if !ok {
			c.logger.Debug("skipping unsupported svg element", "tag", child.Tag)
			continue
		}
		shape, err := bf(c, child)
		if err != nil {
			return nil, err
		}
		if shape == nil {
			continue
		}
		shape.Transform(child.Attr("transform"), child.Attr("transform-origin"))
		shapes = append(shapes, shape)
		if id := child.Attr("id"); id != "" {
			c.ids[id] = shape
		}
	}
	return shapes, nil
}

// handleError applies the error mode to an unresolved reference.
func (c *buildCursor) handleError(n *Node, err error) error {
	switch c.errorMode {
	case StrictErrorMode:
		return err
	case WarnErrorMode:
		c.logger.Warn("skipping svg element", "tag", n.Tag, "id", n.Attr("id"), "error", err)
	}
	return nil
}

// tolerate reports an anomaly which never aborts the build.
func (c *buildCursor) tolerate(n *Node, err error) {
	if c.errorMode != IgnoreErrorMode {
		c.logger.Warn("malformed svg element", "tag", n.Tag, "id", n.Attr("id"), "error", err)
	}
}

func (c *buildCursor) color(n *Node, attr string) color.RGBA {
	col, err := ParseColor(n.Attr(attr))
	if err != nil {
		c.tolerate(n, fmt.Errorf("%s: %w", attr, err))
	}
	return col
}

// attrInt reads an integer attribute. Missing or malformed
// values read as 0; units and fractions are dropped.
func attrInt(n *Node, name string) int {
	nums := svggeom.ScanNumbers(n.Attr(name))
	if len(nums) == 0 {
		return 0
	}
	return svggeom.Round(nums[0])
}

func attrPoint(n *Node, x, y string) svggeom.Point {
	return svggeom.Point{X: attrInt(n, x), Y: attrInt(n, y)}
}

func ellipseF(c *buildCursor, n *Node) (Shape, error) {
	return NewEllipse(attrPoint(n, "cx", "cy"), attrPoint(n, "rx", "ry"), c.color(n, "fill")), nil
}

func circleF(c *buildCursor, n *Node) (Shape, error) {
	return NewCircle(attrPoint(n, "cx", "cy"), attrInt(n, "r"), c.color(n, "fill")), nil
}

// rect with a non positive width or height paints nothing, and is skipped.
func rectF(c *buildCursor, n *Node) (Shape, error) {
	width, height := attrInt(n, "width"), attrInt(n, "height")
	if width <= 0 || height <= 0 {
		c.tolerate(n, fmt.Errorf("%w: %dx%d", ErrEmptyRectangle, width, height))
		return nil, nil
	}
	return NewRectangle(attrPoint(n, "x", "y"), width, height, c.color(n, "fill")), nil
}

func polygonF(c *buildCursor, n *Node) (Shape, error) {
	poly, err := NewPolygon(svggeom.ParsePoints(n.Attr("points")), c.color(n, "fill"))
	if err != nil {
		c.tolerate(n, err)
		return nil, nil
	}
	return poly, nil
}

func polylineF(c *buildCursor, n *Node) (Shape, error) {
	poly, err := NewPolyline(svggeom.ParsePoints(n.Attr("points")), c.color(n, "stroke"))
	if err != nil {
		c.tolerate(n, err)
		return nil, nil
	}
	return poly, nil
}

func lineF(c *buildCursor, n *Node) (Shape, error) {
	return NewLine(attrPoint(n, "x1", "y1"), attrPoint(n, "x2", "y2"), c.color(n, "stroke")), nil
}

// g builds its children in a new sequence; its own transform
// is then applied by the caller, and fans out to every descendant.
func groupF(c *buildCursor, n *Node) (Shape, error) {
	children, err := c.readChildren(n)
	if err != nil {
		return nil, err
	}
	return NewGroup(children), nil
}

// use clones the referenced shape, already transformed.
// The optional x and y attributes translate the clone before
// its own transform is applied.
func useF(c *buildCursor, n *Node) (Shape, error) {
	href := n.Attr("href")
	if href == "" {
		return nil, c.handleError(n, fmt.Errorf("%w: use element without href", ErrUnresolvedReference))
	}
	ref, ok := c.ids[strings.TrimPrefix(href, "#")]
	if !ok {
		return nil, c.handleError(n, fmt.Errorf("%w: %s", ErrUnresolvedReference, href))
	}
	clone := ref.Clone()
	if offset := attrPoint(n, "x", "y"); offset != (svggeom.Point{}) {
		clone.Transform(Transform{Op: Translate, Offset: offset}.String(), "")
	}
	return clone, nil
}
