package geom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Eps is the absolute tolerance of the inclusion test: a point is inside a
// circle when its distance to the center is at most R+Eps.
//
// Every enclosure check in this module goes through Circle.Contains, so the
// incremental engine and the brute-force oracle agree on what "inside" means.
const Eps = 1e-14

// Point is a location in the plane.
type Point struct {
	X float64
	Y float64
}

// Circle is a center (X, Y) and a radius R ≥ 0.
type Circle struct {
	X float64
	Y float64
	R float64
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Translate returns p shifted by (dx, dy).
func (p Point) Translate(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Scale returns p with both coordinates multiplied by s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// IsFinite reports whether both coordinates are neither NaN nor ±Inf.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Center returns the center of c as a Point.
func (c Circle) Center() Point {
	return Point{X: c.X, Y: c.Y}
}

// Contains reports whether p lies inside or on c, within Eps.
func (c Circle) Contains(p Point) bool {
	return math.Hypot(p.X-c.X, p.Y-c.Y) <= c.R+Eps
}

// ContainsAll reports whether every point of pts is contained in c.
// An empty slice is trivially contained.
func (c Circle) ContainsAll(pts []Point) bool {
	for _, p := range pts {
		if !c.Contains(p) {
			return false
		}
	}

	return true
}

// Translate returns c with its center shifted by (dx, dy).
func (c Circle) Translate(dx, dy float64) Circle {
	return Circle{X: c.X + dx, Y: c.Y + dy, R: c.R}
}

// Scale returns c with its center multiplied by s and its radius by |s|.
func (c Circle) Scale(s float64) Circle {
	return Circle{X: c.X * s, Y: c.Y * s, R: c.R * math.Abs(s)}
}

// ApproxEqual reports whether c and o agree on center and radius within the
// absolute tolerance tol.
func (c Circle) ApproxEqual(o Circle, tol float64) bool {
	return scalar.EqualWithinAbs(c.X, o.X, tol) &&
		scalar.EqualWithinAbs(c.Y, o.Y, tol) &&
		scalar.EqualWithinAbs(c.R, o.R, tol)
}

func (c Circle) String() string {
	return fmt.Sprintf("circle{center=(%g, %g) r=%g}", c.X, c.Y, c.R)
}
