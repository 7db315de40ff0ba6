package bspline

import "testing"

func TestInsertKnotGrowsSizes(t *testing.T) {
	b := symmetricCubic(t)
	out, k, err := b.InsertKnot(0.5, 1)
	if err != nil {
		t.Fatalf("InsertKnot: %v", err)
	}
	if out.NumControlPoints != b.NumControlPoints+1 {
		t.Errorf("NumControlPoints = %d, want %d", out.NumControlPoints, b.NumControlPoints+1)
	}
	if out.NumKnots != b.NumKnots+1 {
		t.Errorf("NumKnots = %d, want %d", out.NumKnots, b.NumKnots+1)
	}
	if !out.Epsilon.Equal(out.Knots[k], 0.5) {
		t.Errorf("Knots[%d] = %v, want 0.5", k, out.Knots[k])
	}
}

func TestInsertKnotPreservesCurve(t *testing.T) {
	b := symmetricCubic(t)
	out, _, err := b.InsertKnot(0.5, 1)
	if err != nil {
		t.Fatalf("InsertKnot: %v", err)
	}
	for _, u := range []float64{0, 0.2, 0.5, 0.8, 1} {
		before := mustEvaluate(t, b, u)
		after := mustEvaluate(t, out, u)
		if !b.Epsilon.Equal(before.Result[0], after.Result[0]) {
			t.Errorf("u=%v: before %v, after %v", u, before.Result[0], after.Result[0])
		}
	}
}

func TestInsertKnotRejectsExcessMultiplicity(t *testing.T) {
	b := symmetricCubic(t)
	// The interior knot at 0.5 already has multiplicity 1; Order is 4, so
	// asking for 4 more copies overflows it.
	if _, _, err := b.InsertKnot(0.5, 4); err != ErrMultiplicity {
		t.Errorf("got %v, want ErrMultiplicity", err)
	}
}

func TestInsertKnotZeroIsNoop(t *testing.T) {
	b := symmetricCubic(t)
	out, _, err := b.InsertKnot(0.5, 0)
	if err != nil {
		t.Fatalf("InsertKnot: %v", err)
	}
	if !b.Equal(out) {
		t.Error("InsertKnot(u, 0) changed the spline")
	}
}
