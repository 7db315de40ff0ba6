package bspline_test

import (
	"fmt"

	"honnef.co/go/bspline"
)

func ExampleBSpline_Evaluate() {
	// A clamped, degree-1 (piecewise linear) curve through two control
	// points is just the line segment between them.
	b, err := bspline.New(1, 2, 2, bspline.KnotsClamped)
	if err != nil {
		panic(err)
	}
	copy(b.ControlPoint(0), []float64{0, 0})
	copy(b.ControlPoint(1), []float64{4, 8})

	for _, u := range []float64{0, 0.5, 1} {
		net, _, err := b.Evaluate(u)
		if err != nil {
			panic(err)
		}
		fmt.Printf("u=%.1f: %v\n", u, net.Result)
	}

	// Output:
	// u=0.0: [0 0]
	// u=0.5: [2 4]
	// u=1.0: [4 8]
}
