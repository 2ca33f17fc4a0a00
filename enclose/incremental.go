package enclose

import (
	"github.com/golang/geo/r2"

	"github.com/katalvlaran/mincircle/geom"
)

// MakeCircle returns the smallest circle enclosing every point of pts.
//
// Description:
//
//	Randomized incremental construction (Welzl). Points are visited in a
//	random order; whenever a point falls outside the current candidate it
//	must lie on the boundary of the minimal circle of the points seen so far,
//	and the candidate is rebuilt around it. The shuffle makes such rebuilds
//	rare: the i-th point triggers one with probability at most 3/i.
//
// Algorithm Outline:
//  1. Copy pts and shuffle the copy.
//  2. For i = 0..n-1, with p = shuffled[i]:
//     if no candidate yet or p is outside it,
//     candidate = oneFixed(shuffled[:i+1], p).
//  3. Return the candidate.
//
// Returns ok=false (and a zero Circle) when pts is empty; that is a valid
// outcome, not an error. err is non-nil only when a coordinate is not finite
// and validation has not been turned off with opts.SkipValidate.
//
// When several circles are minimal within rounding (duplicates, collinear
// inputs) any one of them may be returned; all agree within floating-point
// tolerance.
//
// Complexity: expected O(n) time, O(n) memory. pts is not modified.
// The expectation is over the shuffle. With opts == nil, or a fixed
// opts.Seed, the permutation for a given n is always the same, so the bound
// then holds only over the input order: a caller who knows the seed can
// order points to force the O(n³) worst case. Pass a fresh Seed or Rand per
// call when inputs may be adversarial.
func MakeCircle(pts []geom.Point, opts *Options) (c geom.Circle, ok bool, err error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if !o.SkipValidate {
		if err = validatePoints(pts); err != nil {
			return geom.Circle{}, false, err
		}
	}
	if len(pts) == 0 {
		return geom.Circle{}, false, nil
	}

	shuffled := shuffledCopy(pts, rngFor(o))

	for i, p := range shuffled {
		if !ok || !c.Contains(p) {
			c = oneFixed(shuffled[:i+1], p)
			ok = true
		}
	}

	return c, true, nil
}

// MakeCircleFromR2 is MakeCircle for callers holding golang/geo r2 points.
func MakeCircleFromR2(pts []r2.Point, opts *Options) (geom.Circle, bool, error) {
	return MakeCircle(geom.FromR2Slice(pts), opts)
}

// oneFixed returns the minimal circle of pts given that p lies on its boundary.
//
// The candidate starts as the zero-radius circle at p. Any point q found
// outside must also be on the boundary: with only p fixed so far the answer
// is the diameter circle of p and q, otherwise twoFixed resolves it from the
// prefix ending at q.
func oneFixed(pts []geom.Point, p geom.Point) geom.Circle {
	c := geom.Circle{X: p.X, Y: p.Y, R: 0}
	for i, q := range pts {
		if c.Contains(q) {
			continue
		}
		if c.R == 0 {
			c = geom.Diameter(p, q)
		} else {
			c = twoFixed(pts[:i+1], p, q)
		}
	}

	return c
}

// twoFixed returns the minimal circle of pts given that p and q both lie on
// its boundary.
//
// Every such circle has its center on the perpendicular bisector of pq.
// Each point r outside the diameter circle of pq forces the center away from
// pq toward r's side, and the circumcircle through p, q, r records how far.
// Keeping only the farthest candidate per side (measured by the cross product
// of its center against p→q) yields, after a single pass, the one circle on
// each side that encloses all of that side's points.
func twoFixed(pts []geom.Point, p, q geom.Point) geom.Circle {
	var (
		circ        = geom.Diameter(p, q)
		left, right geom.Circle
		hasL, hasR  bool
	)

	for _, r := range pts {
		if circ.Contains(r) {
			continue
		}

		cross := geom.Cross(p, q, r)
		c, ok := geom.Circumscribed(p, q, r)
		if !ok {
			continue
		}
		switch {
		case cross > 0 && (!hasL || geom.Cross(p, q, c.Center()) > geom.Cross(p, q, left.Center())):
			left, hasL = c, true
		case cross < 0 && (!hasR || geom.Cross(p, q, c.Center()) < geom.Cross(p, q, right.Center())):
			right, hasR = c, true
		}
	}

	switch {
	case !hasL && !hasR:
		return circ
	case !hasL:
		return right
	case !hasR:
		return left
	case left.R <= right.R:
		return left
	default:
		return right
	}
}
