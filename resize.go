package bspline

// Resize returns a spline whose NumControlPoints and NumKnots are each n
// larger than b's (n may be negative to shrink), with content copied
// according to back:
//
//   - back && n > 0: new slots are appended at the high-index end.
//   - back && n < 0: the tail is removed.
//   - !back && n > 0: new slots appear at the low-index end, and existing
//     data shifts up by n.
//   - !back && n < 0: leading elements are discarded.
//
// n == 0 is a no-op that returns a clone of b.
//
// Resize fails with [ErrDegreeNotLessThanControlPoints] if the result would
// have NumControlPoints <= Degree, and with [ErrOverflow] if the size
// arithmetic overflows.
func (b BSpline) Resize(n int, back bool) (BSpline, error) {
	if n == 0 {
		return b.Clone(), nil
	}

	newNumCtrlp, err := addChecked(b.NumControlPoints, n)
	if err != nil {
		return BSpline{}, err
	}
	if newNumCtrlp <= b.Degree {
		return BSpline{}, ErrDegreeNotLessThanControlPoints
	}
	newNumKnots, err := addChecked(b.NumKnots, n)
	if err != nil {
		return BSpline{}, err
	}
	newCtrlpLen, err := mulChecked(newNumCtrlp, b.Dim)
	if err != nil {
		return BSpline{}, err
	}

	minNumCtrlp, minNumKnots := b.NumControlPoints, b.NumKnots
	if n < 0 {
		minNumCtrlp, minNumKnots = newNumCtrlp, newNumKnots
	}

	out := BSpline{
		Degree:           b.Degree,
		Order:            b.Order,
		Dim:              b.Dim,
		NumControlPoints: newNumCtrlp,
		NumKnots:         newNumKnots,
		ControlPoints:    make([]float64, newCtrlpLen),
		Knots:            make([]float64, newNumKnots),
		Epsilon:          b.Epsilon,
	}

	fromCtrlp, fromKnots := 0, 0
	toCtrlp, toKnots := 0, 0
	switch {
	case !back && n < 0:
		fromCtrlp, fromKnots = -n*b.Dim, -n
	case !back && n > 0:
		toCtrlp, toKnots = n*b.Dim, n
	}

	copy(out.ControlPoints[toCtrlp:], b.ControlPoints[fromCtrlp:fromCtrlp+minNumCtrlp*b.Dim])
	copy(out.Knots[toKnots:], b.Knots[fromKnots:fromKnots+minNumKnots])

	return out, nil
}
