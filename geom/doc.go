// Package geom provides the planar value types and constructions used by the
// enclosing-circle engine.
//
// 🚀 What lives here?
//
//	Point and Circle are small immutable values. On top of them the package
//	offers the three primitives every enclosing-circle algorithm needs:
//	  • Diameter      — the circle having two points as a diameter
//	  • Circumscribed — the circle through three non-collinear points
//	  • Contains      — inclusion test with the fixed tolerance Eps
//
// ✨ Numerics:
//   - Radii are the maximum of the distances to every defining point, so
//     rounding never leaves a defining point outside its own circle.
//   - Circumscribed works in a frame centred on the bounding box of its three
//     points, avoiding cancellation for inputs far from the origin.
//   - Collinear triples are detected by an exact zero determinant.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/mincircle/geom"
//
//	c := geom.Diameter(geom.Point{X: 0, Y: 0}, geom.Point{X: 2, Y: 0})
//	c.Contains(geom.Point{X: 1, Y: 0.5}) // true
//
// Interop with github.com/golang/geo/r2 is provided by FromR2, Point.R2 and
// Circle.Bound.
package geom
