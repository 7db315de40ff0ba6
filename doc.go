// Package bspline provides a numerically stable kernel for non-uniform
// B-spline curves of arbitrary degree in arbitrary-dimensional space.
//
// # Origins
//
// This package is a Go port of [tinyspline], a small C library implementing
// the same kernel: the B-spline data model, the de Boor evaluation net,
// knot insertion via Boehm's algorithm, knot-preserving split, resizing with
// a left/right bias, and decomposition into a sequence of Bézier segments.
//
// Where the C library threads an explicit "in place vs. distinct output"
// argument through most operations to let callers reuse buffers, this
// package follows Go value semantics instead: every operation takes a
// [BSpline] by value and returns a new one, so there is never any aliasing
// between a caller's spline and an operation's result to reason about.
//
// # Control points and dimension
//
// A [BSpline] of dimension d stores its control points as a flat,
// row-major []float64 of length NumControlPoints*Dim. There is no
// dedicated point type, as the dimension is a runtime property of the
// spline rather than a compile-time one.
//
// # Float comparisons
//
// Knot parameters are compared using a combined absolute/relative epsilon
// (see [Epsilon]), since spline parameters live in [0, 1] where an absolute
// tolerance dominates near zero but a relative one is needed to absorb
// floating-point drift accumulated by repeated knot insertion.
//
// # Scope
//
// This package does not address curve fitting, interpolation, rendering,
// or serialization; those are treated as separate, higher-level concerns
// built on top of the primitives exposed here. It also does not support
// rational (NURBS) weights or non-float coordinates.
//
// [tinyspline]: https://github.com/msteinbeck/tinyspline
package bspline
