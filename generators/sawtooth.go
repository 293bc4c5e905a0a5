package generators

import "github.com/faiface/waveplot"

// Sawtooth returns a linear ramp from -1 at the first sample to +1 at the last one.
//
// A single-sample axis yields [-1].
func Sawtooth(ax waveplot.Axis) []float64 {
	ys := make([]float64, ax.N)
	for i := range ys {
		ys[i] = mapRange(ax.Phase(i), 0, 1, -1, 1)
	}
	return ys
}
