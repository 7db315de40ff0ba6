package bspline

import "math"

// addChecked returns a+b, or ErrOverflow if the sum overflows int.
func addChecked(a, b int) (int, error) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, ErrOverflow
	}
	return sum, nil
}

// subChecked returns a-b, or ErrOverflow if the difference underflows int.
func subChecked(a, b int) (int, error) {
	diff := a - b
	if (b < 0 && diff < a) || (b > 0 && diff > a) {
		return 0, ErrOverflow
	}
	return diff, nil
}

// mulChecked returns a*b, or ErrOverflow if the product overflows int.
func mulChecked(a, b int) (int, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	p := a * b
	if p/b != a || (a == math.MinInt && b == -1) {
		return 0, ErrOverflow
	}
	return p, nil
}
