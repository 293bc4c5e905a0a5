package plot_test

import (
	"math"
	"testing"

	"github.com/faiface/waveplot"
	"github.com/faiface/waveplot/generators"
	"github.com/faiface/waveplot/plot"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTicks(t *testing.T) {
	Convey("Given the default sine wave", t, func() {
		w, err := generators.Sample(waveplot.DefaultFreq, waveplot.DefaultSampleRate, waveplot.Sine)
		So(err, ShouldBeNil)
		period := w.Period()

		Convey("PeriodTicks should place a tick every quarter period, the period included", func() {
			ticks := plot.PeriodTicks(w)
			So(len(ticks), ShouldEqual, 5)
			for i, tick := range ticks {
				So(tick, ShouldAlmostEqual, float64(i)*period/4, 1e-12)
			}
		})

		Convey("DefaultOptions should caption the axes after the wave", func() {
			opts := plot.DefaultOptions(w, "sine.png")
			So(opts.XLabel, ShouldEqual, "time (s)")
			So(opts.YLabel, ShouldEqual, "sine(t)")
			So(opts.Output, ShouldEqual, "sine.png")
			So(len(opts.XTicks), ShouldEqual, 5)
		})
	})

	Convey("Ticks should behave like a half-open range", t, func() {
		So(plot.Ticks(0, 1, 0.25), ShouldResemble, []float64{0, 0.25, 0.5, 0.75})
		So(plot.Ticks(0, 1.01, 0.25), ShouldResemble, []float64{0, 0.25, 0.5, 0.75, 1})
		So(plot.Ticks(0, 1, 0), ShouldBeNil)
		So(plot.Ticks(0, 1, math.NaN()), ShouldBeNil)
		So(plot.Ticks(1, 1, 0.5), ShouldBeNil)
	})

	Convey("FormatTick should print short labels", t, func() {
		So(plot.FormatTick(0), ShouldEqual, "0")
		So(plot.FormatTick(1e-18), ShouldEqual, "0")
		So(plot.FormatTick(0.000568), ShouldEqual, "0.000568")
		So(plot.FormatTick(1.0/440), ShouldEqual, "0.00227")
	})
}

func TestFrame(t *testing.T) {
	Convey("Given a frame over one period", t, func() {
		w, err := generators.Sample(waveplot.DefaultFreq, waveplot.DefaultSampleRate, waveplot.Square)
		So(err, ShouldBeNil)
		f := plot.NewFrame(w, plot.DefaultOptions(w, plot.Display), 100, 50, plot.Margins{Left: 10, Right: 5, Top: 3, Bottom: 7})
		x0, y0, x1, y1 := f.Plot()

		Convey("The plot area should sit inside the margins", func() {
			So(x0, ShouldEqual, 10)
			So(y0, ShouldEqual, 3)
			So(x1, ShouldEqual, 94)
			So(y1, ShouldEqual, 42)
			So(f.Empty(), ShouldBeFalse)
		})

		Convey("The corners of the data range should map to the corners of the plot area", func() {
			So(f.X(0), ShouldEqual, x0)
			So(f.X(f.XMax), ShouldEqual, x1)
			So(f.Y(plot.YRange), ShouldEqual, y0)
			So(f.Y(-plot.YRange), ShouldEqual, y1)
		})

		Convey("The x range should reach the last tick", func() {
			So(f.XMax, ShouldAlmostEqual, w.Period(), 1e-12)
		})

		Convey("The baseline should be in the middle", func() {
			So(f.Baseline(), ShouldEqual, (y0+y1+1)/2)
			So(f.Y(1), ShouldBeLessThan, f.Baseline())
			So(f.Y(-1), ShouldBeGreaterThan, f.Baseline())
		})
	})

	Convey("A canvas smaller than its margins should be empty", t, func() {
		f := plot.Frame{Width: 10, Height: 10, Margins: plot.Margins{Left: 9}}
		So(f.Empty(), ShouldBeTrue)
	})
}

func TestRendererFunc(t *testing.T) {
	Convey("RendererFunc should pass its arguments through", t, func() {
		var got plot.Options
		var r plot.Renderer = plot.RendererFunc(func(w waveplot.Wave, opts plot.Options) error {
			got = opts
			return nil
		})
		So(r.Render(waveplot.Wave{}, plot.Options{Output: "x.png"}), ShouldBeNil)
		So(got.Output, ShouldEqual, "x.png")
	})
}
