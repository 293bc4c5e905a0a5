// Package plot defines how a sampled Wave is handed to a renderer and the geometry shared by the
// renderers in its subpackages.
package plot

import (
	"math"
	"strconv"

	"github.com/faiface/waveplot"
)

// Display is the Output value that requests an interactive, on-screen plot.
const Display = "display"

// Options configures a stem plot.
type Options struct {
	// XLabel and YLabel are the axis captions.
	XLabel string
	YLabel string

	// XTicks are explicit tick positions on the time axis. No ticks are drawn if empty.
	XTicks []float64

	// Output is either Display or the path of the image file to write.
	Output string
}

// Renderer draws a stem plot of w: one marker per sample, joined to the zero baseline by a stem.
// Samples are never connected to each other.
type Renderer interface {
	Render(w waveplot.Wave, opts Options) error
}

// RendererFunc is an adapter allowing an ordinary function to act as a Renderer.
type RendererFunc func(w waveplot.Wave, opts Options) error

// Render calls f(w, opts).
func (f RendererFunc) Render(w waveplot.Wave, opts Options) error {
	return f(w, opts)
}

// DefaultOptions returns the captions and ticks used for every waveform plot: time in seconds on
// the x axis, "<kind>(t)" on the y axis and a tick every quarter period.
func DefaultOptions(w waveplot.Wave, output string) Options {
	return Options{
		XLabel: "time (s)",
		YLabel: w.Kind.String() + "(t)",
		XTicks: PeriodTicks(w),
		Output: output,
	}
}

// Ticks returns start, start+step, start+2*step, ... for every value below stop.
//
// It returns nil if step is not positive or stop is not above start.
func Ticks(start, stop, step float64) []float64 {
	if !(step > 0) || !(stop > start) {
		return nil
	}
	n := int(math.Ceil((stop - start) / step))
	ticks := make([]float64, n)
	for i := range ticks {
		ticks[i] = start + float64(i)*step
	}
	return ticks
}

// PeriodTicks returns a tick every quarter period of w, from 0 up to and including the period.
func PeriodTicks(w waveplot.Wave) []float64 {
	period := w.Period()
	dt := w.SampleRate.D(1)
	return Ticks(0, period+dt, period/4)
}

// FormatTick formats a tick value for a label.
func FormatTick(v float64) string {
	if math.Abs(v) < 1e-15 {
		return "0"
	}
	return strconv.FormatFloat(v, 'g', 3, 64)
}
