package trepw

import (
	"math"

	"gonum.org/v1/gonum/interp"
)

// InterpolateNaN fills NaN gaps of v in place by linear interpolation over positions.
// NaNs after the last finite value repeat that value; NaNs before the first finite
// value are left untouched.
func InterpolateNaN(v []float64) {
	xs := make([]float64, 0, len(v))
	ys := make([]float64, 0, len(v))
	for i := 0; i < len(v); i++ {
		if !math.IsNaN(v[i]) {
			xs = append(xs, float64(i))
			ys = append(ys, v[i])
		}
	}
	if len(xs) == 0 {
		return
	}

	first := int(xs[0])
	last := int(xs[len(xs)-1])

	if len(xs) > 1 {
		var pl interp.PiecewiseLinear
		if err := pl.Fit(xs, ys); err != nil {
			panic(err)
		}
		// Predict clamps outside [first, last]; leading gaps stay NaN
		for i := first + 1; i < last; i++ {
			if math.IsNaN(v[i]) {
				v[i] = pl.Predict(float64(i))
			}
		}
	}

	for j := last + 1; j < len(v); j++ {
		v[j] = v[last]
	}
}
