package bspline

// Split divides b at u by raising u's multiplicity to Order, so that the
// knot at the returned index is a Bezier-decomposition boundary: the
// control points on either side of it form two independent B-splines
// sharing only that one point.
//
// If u already has multiplicity Order, Split is a no-op beyond reporting
// u's knot index.
//
// Split fails with whatever error b.Evaluate(u) fails with.
func (b BSpline) Split(u float64) (BSpline, int, error) {
	net, count, err := b.Evaluate(u)
	if err != nil {
		return BSpline{}, 0, err
	}
	if count >= 1 {
		return b.Clone(), net.K, nil
	}
	out, err := insertKnot(b, net, net.H+1)
	if err != nil {
		return BSpline{}, 0, err
	}
	return out, net.K + net.H + 1, nil
}
