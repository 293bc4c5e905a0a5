package generators

import "github.com/faiface/waveplot"

// Triangle returns a ramp from +1 down to -1 over the first half of the samples and back up to +1
// over the second half.
//
// The first half has N/2+1 samples and ends on -1, the second half holds the rest and ends on
// +1. For odd N the minimum falls exactly on the middle sample, and two samples give [+1, -1].
func Triangle(ax waveplot.Axis) []float64 {
	n := ax.N
	down := n/2 + 1
	up := n - down

	ys := make([]float64, 0, n)
	ys = append(ys, waveplot.Linspace(1, -1, down)...)
	if up > 0 {
		ys = append(ys, waveplot.Linspace(-1, 1, up+1)[1:]...)
	}
	return ys
}
