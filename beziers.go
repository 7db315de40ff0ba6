package bspline

// ToBeziers decomposes b into its Bezier segments: a B-spline whose every
// interior knot has multiplicity Order, so that each run of Order control
// points forms one independent Bezier curve, and consecutive segments meet
// only at a shared endpoint.
//
// ToBeziers fails with whatever error [BSpline.Split] or [BSpline.Resize]
// fail with.
func (b BSpline) ToBeziers() (BSpline, error) {
	out := b.Clone()
	deg, order := out.Degree, out.Order

	// The curve's true domain starts at Knots[deg], not necessarily at
	// Knots[0]. If there's padding before it, split there and drop
	// everything before the split so the result's domain starts exactly at
	// its first knot.
	uMin := out.Knots[deg]
	if !out.Epsilon.Equal(out.Knots[0], uMin) {
		split, k, err := out.Split(uMin)
		if err != nil {
			return BSpline{}, err
		}
		dropFront, err := subChecked(k, deg)
		if err != nil {
			return BSpline{}, err
		}
		out, err = split.Resize(-dropFront, false)
		if err != nil {
			return BSpline{}, err
		}
	}

	// Symmetrically, fix up the domain's end.
	uMax := out.Knots[out.NumKnots-order]
	if !out.Epsilon.Equal(out.Knots[out.NumKnots-1], uMax) {
		split, k, err := out.Split(uMax)
		if err != nil {
			return BSpline{}, err
		}
		tail, err := subChecked(split.NumKnots, k)
		if err != nil {
			return BSpline{}, err
		}
		dropBack, err := subChecked(tail, 1)
		if err != nil {
			return BSpline{}, err
		}
		out, err = split.Resize(-dropBack, true)
		if err != nil {
			return BSpline{}, err
		}
	}

	// Every remaining interior knot needs to reach full multiplicity.
	k := order
	for k < out.NumKnots-order {
		var err error
		out, k, err = out.Split(out.Knots[k])
		if err != nil {
			return BSpline{}, err
		}
		k++
	}

	return out, nil
}
