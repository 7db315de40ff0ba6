package bspline

import "errors"

var (
	// ErrDimZero signals that a spline's dimension was less than 1.
	ErrDimZero = errors.New("bspline: dimension must be at least 1")
	// ErrDegreeNotLessThanControlPoints signals that a spline's degree would
	// not be strictly less than its number of control points.
	ErrDegreeNotLessThanControlPoints = errors.New("bspline: degree must be less than the number of control points")
	// ErrOverflow signals that size arithmetic on control point or knot
	// counts would overflow or underflow.
	ErrOverflow = errors.New("bspline: size arithmetic overflowed")
	// ErrUndefined signals that a parameter lies outside the domain the
	// spline is defined on.
	ErrUndefined = errors.New("bspline: u is undefined for this spline")
	// ErrMultiplicity signals that a knot multiplicity constraint was
	// violated, either because u already occurs more often than the order
	// allows, or because inserting n additional copies would exceed it.
	ErrMultiplicity = errors.New("bspline: multiplicity constraint violated")
	// ErrInputEqOutput signals that CopyInto was called with a destination
	// that aliases the receiver.
	ErrInputEqOutput = errors.New("bspline: input and output must not alias")
)
