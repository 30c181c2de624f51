// Package svggeom provides the integer geometry shared by the
// scene graph and its drawing back-ends.
//
// Coordinates follow the document convention: integers, with the
// y axis pointing down. Rotations and scalings are computed in
// floating point and rounded back to the nearest integer.
package svggeom

import (
	"fmt"
	"math"

	mt "github.com/rustyoz/Mtransform"
)

// Point is a position (or a displacement) in document coordinates.
type Point struct{ X, Y int }

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Translate returns p displaced by delta.
func (p Point) Translate(delta Point) Point {
	return Point{X: p.X + delta.X, Y: p.Y + delta.Y}
}

// Rotate returns p rotated by `degrees` around `pivot`.
func (p Point) Rotate(pivot Point, degrees float64) Point {
	sin, cos := math.Sincos(degrees * math.Pi / 180)
	m := mt.Identity()
	m[0][0], m[0][1] = cos, -sin
	m[1][0], m[1][1] = sin, cos
	return p.around(pivot, m)
}

// Scale returns p scaled by `factor` around `pivot`.
func (p Point) Scale(pivot Point, factor float64) Point {
	m := mt.Identity()
	m[0][0], m[1][1] = factor, factor
	return p.around(pivot, m)
}

// around applies the linear part `m` using `pivot` as origin.
func (p Point) around(pivot Point, m mt.Transform) Point {
	x, y := m.Apply(float64(p.X-pivot.X), float64(p.Y-pivot.Y))
	return Point{X: Round(x) + pivot.X, Y: Round(y) + pivot.Y}
}

// Round converts a computed coordinate back to the integer grid.
func Round(f float64) int {
	return int(math.Round(f))
}
