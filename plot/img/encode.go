// Package img renders stem plots as PNG images.
package img

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/faiface/waveplot"
	"github.com/faiface/waveplot/plot"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Default canvas size in pixels.
const (
	DefaultWidth  = 640
	DefaultHeight = 480
)

// MarkerRadius is the radius of the marker drawn at each sample, in pixels.
const MarkerRadius = 3

// Margins leaves room for tick labels and captions around the plot area.
var Margins = plot.Margins{Left: 72, Right: 24, Top: 32, Bottom: 56}

// Colors used by Encode.
var (
	Background = color.RGBA{0xff, 0xff, 0xff, 0xff}
	Foreground = color.RGBA{0x00, 0x00, 0x00, 0xff}
	StemColor  = color.RGBA{0x1f, 0x77, 0xb4, 0xff}
	BaseColor  = color.RGBA{0xd6, 0x27, 0x28, 0xff}
)

var face = basicfont.Face7x13

// Encode draws a stem plot of w on a width x height canvas and writes it to out in PNG format.
func Encode(out io.Writer, w waveplot.Wave, opts plot.Options, width, height int) (err error) {
	defer func() {
		if err != nil {
			err = errors.Wrap(err, "img")
		}
	}()

	f, err := frame(w, opts, width, height)
	if err != nil {
		return err
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)

	drawAxes(dst, f, opts)
	drawStems(dst, f, w)

	return png.Encode(out, dst)
}

func frame(w waveplot.Wave, opts plot.Options, width, height int) (plot.Frame, error) {
	if len(w.T) != len(w.Y) {
		return plot.Frame{}, errors.Errorf("time axis has %d samples, amplitudes have %d", len(w.T), len(w.Y))
	}
	f := plot.NewFrame(w, opts, width, height, Margins)
	if f.Empty() {
		return plot.Frame{}, errors.Errorf("canvas %dx%d too small", width, height)
	}
	return f, nil
}

func drawAxes(dst *image.RGBA, f plot.Frame, opts plot.Options) {
	x0, y0, x1, y1 := f.Plot()

	hline(dst, x0, x1, y0, Foreground)
	hline(dst, x0, x1, y1, Foreground)
	vline(dst, x0, y0, y1, Foreground)
	vline(dst, x1, y0, y1, Foreground)

	for _, t := range opts.XTicks {
		x := f.X(t)
		vline(dst, x, y1, y1+4, Foreground)
		label := plot.FormatTick(t)
		text(dst, x-width(label)/2, y1+18, label)
	}
	for _, v := range []float64{-1, -0.5, 0, 0.5, 1} {
		y := f.Y(v)
		hline(dst, x0-4, x0, y, Foreground)
		label := plot.FormatTick(v)
		text(dst, x0-8-width(label), y+4, label)
	}

	if opts.XLabel != "" {
		text(dst, (x0+x1)/2-width(opts.XLabel)/2, y1+40, opts.XLabel)
	}
	if opts.YLabel != "" {
		text(dst, x0, y0-10, opts.YLabel)
	}
}

func drawStems(dst *image.RGBA, f plot.Frame, w waveplot.Wave) {
	x0, _, x1, _ := f.Plot()
	base := f.Baseline()

	for i := range w.T {
		t, y := w.At(i)
		x, py := f.X(t), f.Y(y)
		vline(dst, x, base, py, StemColor)
	}
	hline(dst, x0, x1, base, BaseColor)

	z := vector.NewRasterizer(dst.Bounds().Dx(), dst.Bounds().Dy())
	for i := range w.T {
		t, y := w.At(i)
		disc(z, float32(f.X(t)), float32(f.Y(y)), MarkerRadius)
	}
	z.Draw(dst, dst.Bounds(), image.NewUniform(StemColor), image.Point{})
}

// disc adds a closed polygon approximating a circle to the rasterizer's path. The center is the
// middle of pixel (cx, cy).
func disc(z *vector.Rasterizer, cx, cy, r float32) {
	const segments = 24
	cx, cy = cx+0.5, cy+0.5
	z.MoveTo(cx+r, cy)
	for i := 1; i < segments; i++ {
		a := 2 * math.Pi * float64(i) / segments
		z.LineTo(cx+r*float32(math.Cos(a)), cy+r*float32(math.Sin(a)))
	}
	z.ClosePath()
}

func hline(dst *image.RGBA, x0, x1, y int, c color.RGBA) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	for x := x0; x <= x1; x++ {
		dst.SetRGBA(x, y, c)
	}
}

func vline(dst *image.RGBA, x, y0, y1 int, c color.RGBA) {
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		dst.SetRGBA(x, y, c)
	}
}

func text(dst *image.RGBA, x, y int, s string) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(Foreground),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func width(s string) int {
	return font.MeasureString(face, s).Ceil()
}
