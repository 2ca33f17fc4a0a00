package enclose

import (
	"errors"
	"math/rand"
)

var (
	// ErrNonFinitePoint indicates that an input coordinate is NaN or ±Inf.
	ErrNonFinitePoint = errors.New("enclose: point coordinates must be finite")

	// ErrNotEnclosed indicates that a point lies outside a circle claimed to enclose it.
	ErrNotEnclosed = errors.New("enclose: point not enclosed by circle")

	// ErrOracleInvariant is the panic value raised by Naive when no enclosing
	// circle is found for a non-empty input. It signals a bug, never bad input.
	ErrOracleInvariant = errors.New("enclose: naive search found no enclosing circle")
)

// Options configures MakeCircle. The zero value is ready to use and
// equivalent to DefaultOptions().
//
// Fields:
//   - Rand         — explicit random source for the shuffle. When nil, a fresh
//     generator seeded from Seed is created for the call.
//     A *rand.Rand is not safe for concurrent use: never share one across
//     goroutines.
//   - Seed         — seed used when Rand is nil. Seed 0 selects a fixed default
//     seed, so the zero value is reproducible.
//   - SkipValidate — accept NaN or ±Inf coordinates without checking. By
//     default such inputs fail with ErrNonFinitePoint; when skipped the
//     result for them is unspecified.
type Options struct {
	Rand         *rand.Rand
	Seed         int64
	SkipValidate bool
}

// DefaultOptions returns the options used when MakeCircle receives nil:
// default seed, validation on.
func DefaultOptions() Options {
	return Options{
		Seed:         0,
		SkipValidate: false,
	}
}
