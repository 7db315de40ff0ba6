package bspline

// Buckle blends b's control points with the straight chord from its first
// to its last control point, by factor amount: amount == 1 returns b
// unchanged, amount == 0 returns the chord's control polygon, and values in
// between interpolate linearly.
//
// Buckle moves only control points: it never changes Degree, Order, Dim,
// or the knot vector.
func (b BSpline) Buckle(amount float64) BSpline {
	out := b.Clone()

	dim := out.Dim
	n := out.NumControlPoints
	p0 := make([]float64, dim)
	pLast := make([]float64, dim)
	copy(p0, out.ControlPoint(0))
	copy(pLast, out.ControlPoint(n-1))
	amountHat := 1 - amount

	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		cp := out.ControlPoint(i)
		for d := 0; d < dim; d++ {
			chord := p0[d] + t*(pLast[d]-p0[d])
			cp[d] = amount*cp[d] + amountHat*chord
		}
	}

	return out
}
