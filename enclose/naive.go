package enclose

import "github.com/katalvlaran/mincircle/geom"

// Naive returns the smallest enclosing circle by exhaustive search.
//
// Every pair is tried as a diameter circle and, only if no pair encloses all
// points, every triple as a circumcircle. The smallest candidate containing
// all points wins. It exists as an independent reference for MakeCircle and
// is practical only for a few dozen points.
//
// Returns ok=false for an empty input. Panics with ErrOracleInvariant if no
// enclosing circle is found for a non-empty input, which would be a bug.
//
// Complexity: O(n⁴) time, O(1) extra memory.
func Naive(pts []geom.Point) (geom.Circle, bool) {
	switch len(pts) {
	case 0:
		return geom.Circle{}, false
	case 1:
		return geom.Circle{X: pts[0].X, Y: pts[0].Y, R: 0}, true
	}

	var (
		best  geom.Circle
		found bool
		n     = len(pts)
		i     int
		j     int
		k     int
	)

	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			c := geom.Diameter(pts[i], pts[j])
			if (!found || c.R < best.R) && c.ContainsAll(pts) {
				best, found = c, true
			}
		}
	}
	if found {
		return best, true
	}

	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			for k = j + 1; k < n; k++ {
				c, ok := geom.Circumscribed(pts[i], pts[j], pts[k])
				if ok && (!found || c.R < best.R) && c.ContainsAll(pts) {
					best, found = c, true
				}
			}
		}
	}
	if !found {
		panic(ErrOracleInvariant)
	}

	return best, true
}
