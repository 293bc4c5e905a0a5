package generators

import (
	"math"

	"github.com/faiface/waveplot"
)

// Sine returns sin(2π·freq·t) at every point of ax.
func Sine(ax waveplot.Axis) []float64 {
	ys := make([]float64, ax.N)
	for i, t := range ax.T {
		ys[i] = math.Sin(2 * math.Pi * ax.Freq * t)
	}
	return ys
}
