package plot

import (
	"math"

	"github.com/faiface/waveplot"
)

// YRange is the amplitude range shown by every plot, slightly wider than [-1, 1] so that the
// extreme markers stay inside the plot area.
const YRange = 1.1

// Margins is the space around the plot area, in canvas units (pixels or terminal cells).
type Margins struct {
	Left, Right, Top, Bottom int
}

// Frame maps data coordinates (time, amplitude) to canvas coordinates, with the row 0 at the top.
type Frame struct {
	Width, Height int
	Margins

	XMin, XMax float64
	YMin, YMax float64
}

// NewFrame returns a Frame of the given canvas size covering one period of w, widened to include
// every tick.
func NewFrame(w waveplot.Wave, opts Options, width, height int, m Margins) Frame {
	xmax := w.Period()
	for _, t := range opts.XTicks {
		if t > xmax {
			xmax = t
		}
	}
	return Frame{
		Width:   width,
		Height:  height,
		Margins: m,
		XMin:    0,
		XMax:    xmax,
		YMin:    -YRange,
		YMax:    YRange,
	}
}

// X returns the canvas column of time t.
func (f Frame) X(t float64) int {
	span := f.XMax - f.XMin
	if span <= 0 {
		return f.Left
	}
	return f.Left + int(math.Round((t-f.XMin)/span*float64(f.plotWidth()-1)))
}

// Y returns the canvas row of amplitude y.
func (f Frame) Y(y float64) int {
	return f.Top + int(math.Round((f.YMax-y)/(f.YMax-f.YMin)*float64(f.plotHeight()-1)))
}

// Baseline returns the canvas row of amplitude 0.
func (f Frame) Baseline() int {
	return f.Y(0)
}

// Plot returns the first and last column and row of the plot area, inclusive.
func (f Frame) Plot() (x0, y0, x1, y1 int) {
	return f.Left, f.Top, f.Left + f.plotWidth() - 1, f.Top + f.plotHeight() - 1
}

// Empty reports whether the canvas is too small to hold a plot area.
func (f Frame) Empty() bool {
	return f.plotWidth() < 2 || f.plotHeight() < 3
}

func (f Frame) plotWidth() int {
	return f.Width - f.Left - f.Right
}

func (f Frame) plotHeight() int {
	return f.Height - f.Top - f.Bottom
}
