package bspline

import "slices"

// BSpline is a B-spline curve of degree Degree over points in R^Dim, with
// NumControlPoints control points and NumKnots = NumControlPoints + Order
// knots.
//
// The zero value is the default, empty spline: it has no degree, no
// dimension, and nil control point and knot slices. Every operation that
// fails to produce a valid spline returns this zero value alongside its
// error, so a failed call never leaves a caller holding a half-built
// BSpline.
type BSpline struct {
	Degree           int
	Order            int
	Dim              int
	NumControlPoints int
	NumKnots         int

	// ControlPoints is the flat, row-major control point array, of length
	// NumControlPoints*Dim.
	ControlPoints []float64
	// Knots is the non-decreasing knot vector, of length NumKnots.
	Knots []float64

	// Epsilon is the tolerance policy used by this spline's operations.
	Epsilon Epsilon
}

// New allocates a BSpline of the given degree, dimension, and number of
// control points, with its knot vector filled according to kind.
//
// It fails with [ErrDimZero] if dim < 1, [ErrDegreeNotLessThanControlPoints]
// if degree >= numControlPoints, and [ErrOverflow] if the resulting sizes
// would overflow.
func New(degree, dim, numControlPoints int, kind KnotKind) (BSpline, error) {
	if dim < 1 {
		return BSpline{}, ErrDimZero
	}
	if degree >= numControlPoints {
		return BSpline{}, ErrDegreeNotLessThanControlPoints
	}

	order, err := addChecked(degree, 1)
	if err != nil {
		return BSpline{}, err
	}
	numKnots, err := addChecked(numControlPoints, order)
	if err != nil {
		return BSpline{}, err
	}
	numCtrlpScalars, err := mulChecked(numControlPoints, dim)
	if err != nil {
		return BSpline{}, err
	}

	b := BSpline{
		Degree:           degree,
		Order:            order,
		Dim:              dim,
		NumControlPoints: numControlPoints,
		NumKnots:         numKnots,
		ControlPoints:    make([]float64, numCtrlpScalars),
		Knots:            make([]float64, numKnots),
		Epsilon:          DefaultEpsilon,
	}
	return b.SetupKnots(kind), nil
}

// ControlPoint returns the i'th control point as a subslice of
// b.ControlPoints. The returned slice aliases b's backing array; callers
// that need an independent copy must copy it explicitly.
func (b BSpline) ControlPoint(i int) []float64 {
	return b.ControlPoints[i*b.Dim : (i+1)*b.Dim]
}

// Clone returns a deep copy of b: its ControlPoints and Knots slices do
// not alias b's.
func (b BSpline) Clone() BSpline {
	out := b
	out.ControlPoints = slices.Clone(b.ControlPoints)
	out.Knots = slices.Clone(b.Knots)
	return out
}

// CopyInto deep-copies b into *dst. It fails with [ErrInputEqOutput] if dst
// points at b's storage (i.e. dst == &b at the call site), mirroring the
// aliasing check the C library performs on pointer identity.
func (b *BSpline) CopyInto(dst *BSpline) error {
	if b == dst {
		return ErrInputEqOutput
	}
	*dst = b.Clone()
	return nil
}

// Equal reports whether b and other describe the same spline: identical
// degree, order, dimension, and control point/knot counts, and every
// control point scalar and knot equal within b.Epsilon.
func (b BSpline) Equal(other BSpline) bool {
	if b.Degree != other.Degree ||
		b.Order != other.Order ||
		b.Dim != other.Dim ||
		b.NumControlPoints != other.NumControlPoints ||
		b.NumKnots != other.NumKnots {
		return false
	}
	for i, x := range b.ControlPoints {
		if !b.Epsilon.Equal(x, other.ControlPoints[i]) {
			return false
		}
	}
	for i, x := range b.Knots {
		if !b.Epsilon.Equal(x, other.Knots[i]) {
			return false
		}
	}
	return true
}
