// Package enclose computes the minimum enclosing circle of a planar point set.
//
// 🚀 What is the minimum enclosing circle?
//
//	For a finite set of points it is the unique circle of smallest radius
//	containing all of them. At least one and at most three input points lie
//	on its boundary. It shows up in:
//	  • Facility location (where to put a single radio mast)
//	  • Collision detection & bounding volumes
//	  • Clustering diagnostics (radius of a cluster)
//	  • Robot footprint and sensor-coverage estimation
//
// ✨ Key features:
//   - MakeCircle — randomized incremental construction, expected O(n)
//   - Naive      — exhaustive O(n⁴) reference, for cross-checking only
//   - Deterministic replay via Options.Seed or an explicit Options.Rand
//   - Input validation of NaN/±Inf coordinates (on unless Options.SkipValidate)
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/mincircle/enclose"
//	  "github.com/katalvlaran/mincircle/geom"
//	)
//
//	pts := []geom.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 3}}
//	opts := enclose.DefaultOptions()
//	c, ok, err := enclose.MakeCircle(pts, &opts)
//	// c = circle{center=(2, 1.5) r=2.5}, ok = true, err = nil
//
// An empty input is not an error: MakeCircle reports ok=false.
//
// Concurrency:
//
//	MakeCircle keeps no package-level state. With Options.Rand == nil every
//	call builds its own generator, so concurrent calls are safe. A caller
//	supplied *rand.Rand is not goroutine-safe and must not be shared.
//
// Performance:
//
//   - Time:   expected O(n), over the random shuffle; O(n³) worst case
//   - Memory: O(n) for the shuffled working copy
package enclose
