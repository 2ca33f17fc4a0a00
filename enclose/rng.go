package enclose

import (
	"math/rand"

	"github.com/katalvlaran/mincircle/geom"
)

// defaultRNGSeed is the fixed seed used when callers pass Seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// rngFor selects the generator for one MakeCircle call.
func rngFor(opts Options) *rand.Rand {
	if opts.Rand != nil {
		return opts.Rand
	}

	return rngFromSeed(opts.Seed)
}

// shuffledCopy returns a uniformly permuted copy of pts (Fisher–Yates).
// pts itself is never modified.
//
// Complexity: O(n) time, O(n) space.
func shuffledCopy(pts []geom.Point, r *rand.Rand) []geom.Point {
	out := make([]geom.Point, len(pts))
	copy(out, pts)

	var i, j int
	for i = len(out) - 1; i > 0; i-- {
		j = r.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}

	return out
}
