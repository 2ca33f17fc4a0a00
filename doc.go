// Package mincircle computes the smallest circle enclosing a finite set of
// points in the plane.
//
// 🚀 What is mincircle?
//
//	A small, pure-Go library built around one algorithm: the randomized
//	incremental construction of the minimum enclosing circle, which runs in
//	expected O(n) time. It brings together:
//		• Geometry primitives: Point, Circle, diameter circles, circumcircles
//		• The incremental engine with seedable, per-call randomness
//		• A brute-force O(n⁴) oracle for cross-checking results
//
// ✨ Why choose mincircle?
//
//   - Deterministic replay – the shuffle is driven by a seed you control
//   - Numerically careful – circumcircles are solved in a re-centred frame
//   - Safe for concurrent use – no shared mutable state between calls
//   - Interoperable – adapters for github.com/golang/geo/r2 points
//
// Under the hood, everything is organized under two subpackages:
//
//	geom/    — Point & Circle value types, circle constructions, inclusion test
//	enclose/ — MakeCircle (incremental), Naive (oracle), Options & validation
//
// Quick ASCII example:
//
//	      .-'''-.
//	    /    B    \
//	   A     •     C      A, C lie on the boundary;
//	    \         /       B is strictly inside.
//	      '-...-'
//
//	go get github.com/katalvlaran/mincircle
package mincircle
