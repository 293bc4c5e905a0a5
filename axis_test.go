package waveplot_test

import (
	"math"
	"testing"

	"github.com/faiface/waveplot"
	"github.com/pkg/errors"
)

func TestLinspace(t *testing.T) {
	cases := []struct {
		start, stop float64
		n           int
		want        []float64
	}{
		{0, 1, 5, []float64{0, 0.25, 0.5, 0.75, 1}},
		{1, -1, 3, []float64{1, 0, -1}},
		{2, 7, 1, []float64{2}},
		{0, 1, 0, []float64{}},
		{0, 1, -3, []float64{}},
	}
	for _, c := range cases {
		got := waveplot.Linspace(c.start, c.stop, c.n)
		if len(got) != len(c.want) {
			t.Fatalf("Linspace(%v, %v, %d): got %v, expected %v", c.start, c.stop, c.n, got, c.want)
		}
		for i := range got {
			if math.Abs(got[i]-c.want[i]) > 1e-12 {
				t.Fatalf("Linspace(%v, %v, %d): got %v, expected %v", c.start, c.stop, c.n, got, c.want)
			}
		}
	}
}

func TestLinspaceEndsExactly(t *testing.T) {
	for _, n := range []int{2, 3, 109, 1000} {
		stop := 1.0 / 440
		xs := waveplot.Linspace(0, stop, n)
		if xs[n-1] != stop {
			t.Fatalf("Linspace(0, %v, %d) ends at %v", stop, n, xs[n-1])
		}
	}
}

func TestSampleCount(t *testing.T) {
	cases := []struct {
		freq float64
		sr   waveplot.SampleRate
		want int
	}{
		{440, 48000, 109},
		{440, 44100, 100},
		{1000, 48000, 48},
		{3, 10, 3},
		{10, 1, 1},
		{48000, 48000, 1},
		{1, waveplot.MaxSampleCount, waveplot.MaxSampleCount},
		{1e-300, 48000, waveplot.MaxSampleCount},
	}
	for _, c := range cases {
		if got := waveplot.SampleCount(c.freq, c.sr); got != c.want {
			t.Fatalf("SampleCount(%v, %v) = %d, expected %d", c.freq, c.sr, got, c.want)
		}
	}
}

func TestNewAxis(t *testing.T) {
	ax, err := waveplot.NewAxis(440, 48000)
	if err != nil {
		t.Fatal(err)
	}
	if ax.N != 109 || len(ax.T) != 109 {
		t.Fatalf("expected 109 samples, got N=%d len(T)=%d", ax.N, len(ax.T))
	}
	if ax.Period != 1.0/440 {
		t.Fatalf("unexpected period %v", ax.Period)
	}
	if math.Abs(ax.Step()-ax.Period/108) > 1e-15 {
		t.Fatalf("unexpected step %v", ax.Step())
	}
	if ax.Phase(0) != 0 || ax.Phase(54) != 0.5 || ax.Phase(108) != 1 {
		t.Fatalf("unexpected phases %v %v %v", ax.Phase(0), ax.Phase(54), ax.Phase(108))
	}
}

func TestNewAxisSingleSample(t *testing.T) {
	ax, err := waveplot.NewAxis(100, 10)
	if err != nil {
		t.Fatal(err)
	}
	if ax.N != 1 || len(ax.T) != 1 || ax.T[0] != 0 {
		t.Fatalf("expected a single sample at t=0, got %+v", ax)
	}
	if ax.Step() != 0 || ax.Phase(0) != 0 {
		t.Fatalf("single-sample axis should have zero step and phase")
	}
}

func TestNewAxisInvalid(t *testing.T) {
	for _, c := range []struct {
		freq float64
		sr   waveplot.SampleRate
	}{
		{0, 48000},
		{-1, 48000},
		{math.NaN(), 48000},
		{math.Inf(1), 48000},
		{440, 0},
		{440, -48000},
		{440, waveplot.SampleRate(math.NaN())},
		{1e-300, 48000},
		{1e-9, 48000},
	} {
		_, err := waveplot.NewAxis(c.freq, c.sr)
		if !errors.Is(err, waveplot.ErrInvalidParameter) {
			t.Fatalf("NewAxis(%v, %v): expected ErrInvalidParameter, got %v", c.freq, c.sr, err)
		}
	}
}

func TestSampleRate(t *testing.T) {
	sr := waveplot.SampleRate(48000)
	if n := sr.N(1.0 / 440); n != 109 {
		t.Fatalf("N(1/440) = %d, expected 109", n)
	}
	if d := sr.D(48000); d != 1 {
		t.Fatalf("D(48000) = %v, expected 1", d)
	}
	if d := sr.Duration(480); d.Milliseconds() != 10 {
		t.Fatalf("Duration(480) = %v, expected 10ms", d)
	}
}
