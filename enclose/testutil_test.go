// Package enclose_test provides point-cloud generators and tolerances shared
// across the *_test.go files of this package.
package enclose_test

import (
	"math"
	"math/rand"
	randv2 "math/rand/v2"
	"testing"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/mincircle/enclose"
	"github.com/katalvlaran/mincircle/geom"
)

const (
	// epsCmp is the tolerance for comparing centers and radii of two results.
	epsCmp = 1e-12

	// seedDet is the deterministic seed of every test-side generator: the
	// MakeCircle shuffle, the trial driver and the distuv point sources.
	seedDet = int64(42)

	// latticeShare is the probability that randomPoints draws from the
	// integer lattice instead of a Gaussian cloud.
	latticeShare = 0.2
)

// newSource returns the PCG stream `stream` under seedDet. Equal streams
// replay identical point clouds.
func newSource(stream uint64) randv2.Source {
	return randv2.NewPCG(uint64(seedDet), stream)
}

// gaussianPoints draws n points with both coordinates ~ N(0, 1) from src.
func gaussianPoints(src randv2.Source, n int) []geom.Point {
	var dist = distuv.Normal{Mu: 0, Sigma: 1, Src: src} // standard normal
	var pts = make([]geom.Point, n)           // output buffer
	for i := range pts {
		pts[i] = geom.Point{X: dist.Rand(), Y: dist.Rand()}
	}

	return pts
}

// latticePoints draws n points from the 10×10 integer lattice, which makes
// duplicates and collinear triples likely.
func latticePoints(src randv2.Source, n int) []geom.Point {
	var dist = distuv.Uniform{Min: 0, Max: 10, Src: src} // continuous, floored below
	var pts = make([]geom.Point, n)                      // output buffer
	for i := range pts {
		pts[i] = geom.Point{
			X: math.Min(math.Floor(dist.Rand()), 9),
			Y: math.Min(math.Floor(dist.Rand()), 9),
		}
	}

	return pts
}

// randomPoints picks lattice or Gaussian points, lattice with probability
// latticeShare. The point source is drawn from r, so a seeded r replays the
// whole cloud.
func randomPoints(r *rand.Rand, n int) []geom.Point {
	var lattice = r.Float64() < latticeShare // distribution choice
	var src = newSource(r.Uint64())          // per-cloud stream
	if lattice {
		return latticePoints(src, n)
	}

	return gaussianPoints(src, n)
}

// ringPoints places n points on a slightly rippled circle of radius ~1
// around (cx, cy). Deterministic; used by benchmarks and examples.
func ringPoints(n int, cx, cy float64) []geom.Point {
	var pts = make([]geom.Point, n)
	var th, r float64
	for i := 0; i < n; i++ {
		th = 2 * math.Pi * float64(i) / float64(n) // uniform angle
		r = 1.0 - 0.02*float64((i*5)%7)            // deterministic ripple, max radius 1
		pts[i] = geom.Point{X: cx + r*math.Cos(th), Y: cy + r*math.Sin(th)}
	}

	return pts
}

// mustCircle runs MakeCircle with a fixed seed and fails the caller on error
// or absence.
func mustCircle(tb testing.TB, pts []geom.Point) geom.Circle {
	tb.Helper()
	var opts = enclose.DefaultOptions()
	opts.Seed = seedDet
	c, ok, err := enclose.MakeCircle(pts, &opts)
	if err != nil {
		tb.Fatalf("MakeCircle failed: %v", err)
	}
	if !ok {
		tb.Fatalf("MakeCircle returned no circle for %d points", len(pts))
	}

	return c
}
