package enclose

import (
	"fmt"

	"github.com/katalvlaran/mincircle/geom"
)

// validatePoints rejects NaN and ±Inf coordinates, naming the first offender.
//
// Complexity: O(n).
func validatePoints(pts []geom.Point) error {
	for i, p := range pts {
		if !p.IsFinite() {
			return fmt.Errorf("%w: index %d is %v", ErrNonFinitePoint, i, p)
		}
	}

	return nil
}

// Verify checks that every point of pts lies within c (tolerance geom.Eps).
// It returns an error wrapping ErrNotEnclosed for the first point outside.
//
// Complexity: O(n).
func Verify(pts []geom.Point, c geom.Circle) error {
	for i, p := range pts {
		if !c.Contains(p) {
			return fmt.Errorf("%w: index %d %v is %g from center of %v",
				ErrNotEnclosed, i, p, p.Dist(c.Center()), c)
		}
	}

	return nil
}
