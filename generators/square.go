package generators

import "github.com/faiface/waveplot"

// Square returns the sign of the sine wave over ax, using only the values +1 and -1.
//
// Zero crossings are resolved by phase: t = 0 and t = period/2 give +1, the closing sample at
// t = period gives -1. A full period therefore has one transition, right after the midpoint.
func Square(ax waveplot.Axis) []float64 {
	ys := make([]float64, ax.N)
	for i := range ys {
		if ax.Phase(i) <= 0.5 {
			ys[i] = 1
		} else {
			ys[i] = -1
		}
	}
	return ys
}
