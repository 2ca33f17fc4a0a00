package geom

import "github.com/golang/geo/r2"

// FromR2 converts an r2.Point into a Point.
func FromR2(p r2.Point) Point {
	return Point{X: p.X, Y: p.Y}
}

// FromR2Slice converts a slice of r2.Point. The result never aliases pts.
func FromR2Slice(pts []r2.Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = FromR2(p)
	}

	return out
}

// R2 converts p into an r2.Point.
func (p Point) R2() r2.Point {
	return r2.Point{X: p.X, Y: p.Y}
}

// Bound returns the axis-aligned square circumscribing c.
func (c Circle) Bound() r2.Rect {
	return r2.RectFromCenterSize(c.Center().R2(), r2.Point{X: 2 * c.R, Y: 2 * c.R})
}
