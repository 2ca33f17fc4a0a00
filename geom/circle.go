package geom

import "math"

// Diameter returns the smallest circle through a and b: the one having the
// segment ab as its diameter.
//
// The radius is the larger of the two center distances, which absorbs the
// rounding asymmetry of the midpoint computation.
//
// Complexity: O(1).
func Diameter(a, b Point) Circle {
	var (
		cx = (a.X + b.X) / 2
		cy = (a.Y + b.Y) / 2
	)
	ra := math.Hypot(cx-a.X, cy-a.Y)
	rb := math.Hypot(cx-b.X, cy-b.Y)

	return Circle{X: cx, Y: cy, R: math.Max(ra, rb)}
}

// Circumscribed returns the circle passing through a, b and c.
//
// Algorithm:
//  1. Translate the three points so that the origin sits at the center of
//     their bounding box. The determinant formula squares coordinates, and
//     working near the origin keeps those squares small.
//  2. d = 2·(ax(by−cy) + bx(cy−ay) + cx(ay−by)). If d == 0 the points are
//     collinear and no circle exists: ok is false.
//  3. Solve the circumcenter with the classic determinant formula and shift
//     it back.
//  4. Radius = max distance from the center to a, b, c.
//
// The collinearity test is an exact comparison with zero. Nearly collinear
// triples therefore yield very large circles rather than being rejected;
// callers that only keep enclosing circles of minimal radius discard them.
//
// Complexity: O(1).
func Circumscribed(a, b, c Point) (Circle, bool) {
	var (
		ox = (min(a.X, b.X, c.X) + max(a.X, b.X, c.X)) / 2
		oy = (min(a.Y, b.Y, c.Y) + max(a.Y, b.Y, c.Y)) / 2
	)
	ax, ay := a.X-ox, a.Y-oy
	bx, by := b.X-ox, b.Y-oy
	cx, cy := c.X-ox, c.Y-oy

	d := (ax*(by-cy) + bx*(cy-ay) + cx*(ay-by)) * 2
	if d == 0 {
		return Circle{}, false
	}

	a2 := ax*ax + ay*ay
	b2 := bx*bx + by*by
	c2 := cx*cx + cy*cy
	x := ox + (a2*(by-cy)+b2*(cy-ay)+c2*(ay-by))/d
	y := oy + (a2*(cx-bx)+b2*(ax-cx)+c2*(bx-ax))/d

	ra := math.Hypot(x-a.X, y-a.Y)
	rb := math.Hypot(x-b.X, y-b.Y)
	rc := math.Hypot(x-c.X, y-c.Y)

	return Circle{X: x, Y: y, R: max(ra, rb, rc)}, true
}

// Cross returns twice the signed area of the triangle (a, b, c).
// It is positive when c lies to the left of the directed line a→b,
// negative when it lies to the right, and zero when the points are collinear.
func Cross(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}
