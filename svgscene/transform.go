package svgscene

import (
	"fmt"
	"strings"

	"github.com/benoitkugler/svgscene/svggeom"
)

// Op is one of the supported transform operations.
type Op uint8

const (
	NoOp Op = iota
	Translate
	Rotate
	Scale
)

func (op Op) String() string {
	switch op {
	case NoOp:
		return "none"
	case Translate:
		return "translate"
	case Rotate:
		return "rotate"
	case Scale:
		return "scale"
	default:
		return "<unknown Op>"
	}
}

// Transform is a parsed transform descriptor, together with
// its pivot.
type Transform struct {
	Op     Op
	Offset svggeom.Point // translate only
	Angle  float64       // rotate only, in degrees
	Factor float64       // scale only
	Pivot  svggeom.Point // rotate and scale
}

// ParseTransform parses a descriptor of the form `op(args)` and an optional
// pivot (the transform-origin attribute).
// It returns false when the descriptor is empty, names an unsupported
// operation or lacks its argument: such descriptors are no-ops, not errors.
// Only the first operation of the descriptor is read; trailing text is ignored.
func ParseTransform(transform, origin string) (Transform, bool) {
	transform = strings.TrimSpace(transform)
	if transform == "" {
		return Transform{}, false
	}
	name, args := transform, ""
	if i := strings.IndexByte(transform, '('); i >= 0 {
		name, args = transform[:i], transform[i+1:]
		if j := strings.IndexByte(args, ')'); j >= 0 {
			args = args[:j]
		}
	}

	var t Transform
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "translate":
		t.Op = Translate
		t.Offset = svggeom.ParsePair(args)
		return t, true
	case "rotate":
		nums := svggeom.ScanNumbers(args)
		if len(nums) == 0 {
			return Transform{}, false
		}
		t.Op, t.Angle = Rotate, nums[0]
	case "scale":
		nums := svggeom.ScanNumbers(args)
		if len(nums) == 0 {
			return Transform{}, false
		}
		t.Op, t.Factor = Scale, nums[0]
	default:
		return Transform{}, false
	}
	t.Pivot = svggeom.ParsePair(origin)
	return t, true
}

// Apply returns the image of `p`.
func (t Transform) Apply(p svggeom.Point) svggeom.Point {
	switch t.Op {
	case Translate:
		return p.Translate(t.Offset)
	case Rotate:
		return p.Rotate(t.Pivot, t.Angle)
	case Scale:
		return p.Scale(t.Pivot, t.Factor)
	default:
		return p
	}
}

// ScaleLength returns the image of a length, such as a radius.
// Only scaling changes lengths.
func (t Transform) ScaleLength(l int) int {
	if t.Op != Scale {
		return l
	}
	return svggeom.Round(float64(l) * t.Factor)
}

// applyAll transforms every point in place, keeping their order.
func (t Transform) applyAll(points []svggeom.Point) {
	for i, p := range points {
		points[i] = t.Apply(p)
	}
}

// String returns a descriptor which parses back to `t`,
// ignoring the pivot.
func (t Transform) String() string {
	switch t.Op {
	case Translate:
		return fmt.Sprintf("translate(%d %d)", t.Offset.X, t.Offset.Y)
	case Rotate:
		return fmt.Sprintf("rotate(%g)", t.Angle)
	case Scale:
		return fmt.Sprintf("scale(%g)", t.Factor)
	default:
		return ""
	}
}
