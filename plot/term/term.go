// Package term renders stem plots in a terminal using tcell.
package term

import (
	"unicode"
	"unicode/utf8"

	"github.com/faiface/waveplot"
	"github.com/faiface/waveplot/plot"
	"github.com/gdamore/tcell"
	"github.com/pkg/errors"
)

// Marker is drawn at each sample.
const Marker = '●'

// Margins leaves room for tick labels and captions around the plot area, in cells.
var Margins = plot.Margins{Left: 8, Right: 2, Top: 2, Bottom: 4}

var (
	mainStyle = tcell.StyleDefault
	stemStyle = mainStyle.Foreground(tcell.NewHexColor(0x1f77b4))
	baseStyle = mainStyle.Foreground(tcell.NewHexColor(0xd62728))
	textStyle = mainStyle.Bold(true)
)

func drawTextLine(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// Draw draws a stem plot of w over the whole screen. It does not call Show.
func Draw(screen tcell.Screen, w waveplot.Wave, opts plot.Options) {
	width, height := screen.Size()
	screen.Fill(' ', mainStyle)

	f := plot.NewFrame(w, opts, width, height, Margins)
	if f.Empty() || len(w.T) != len(w.Y) {
		drawTextLine(screen, 0, 0, "terminal too small", textStyle)
		return
	}
	x0, y0, x1, y1 := f.Plot()

	// axes
	for y := y0; y <= y1; y++ {
		screen.SetContent(x0-1, y, '│', nil, mainStyle)
	}
	for x := x0; x <= x1; x++ {
		screen.SetContent(x, y1+1, '─', nil, mainStyle)
	}
	screen.SetContent(x0-1, y1+1, '└', nil, mainStyle)

	for _, t := range opts.XTicks {
		x := f.X(t)
		screen.SetContent(x, y1+1, '┬', nil, mainStyle)
		label := plot.FormatTick(t)
		drawTextLine(screen, x-utf8.RuneCountInString(label)/2, y1+2, label, mainStyle)
	}
	for _, v := range []float64{-1, 0, 1} {
		y := f.Y(v)
		screen.SetContent(x0-1, y, '┤', nil, mainStyle)
		label := plot.FormatTick(v)
		drawTextLine(screen, x0-2-utf8.RuneCountInString(label), y, label, mainStyle)
	}

	base := f.Baseline()
	for x := x0; x <= x1; x++ {
		screen.SetContent(x, base, '─', nil, baseStyle)
	}
	for i := range w.T {
		t, y := w.At(i)
		x, py := f.X(t), f.Y(y)
		step := 1
		if py > base {
			step = -1
		}
		for row := py; row != base; row += step {
			screen.SetContent(x, row, '│', nil, stemStyle)
		}
		screen.SetContent(x, py, Marker, nil, stemStyle)
	}

	if opts.YLabel != "" {
		drawTextLine(screen, 0, 0, opts.YLabel, textStyle)
	}
	if opts.XLabel != "" {
		drawTextLine(screen, (x0+x1)/2-utf8.RuneCountInString(opts.XLabel)/2, y1+3, opts.XLabel, textStyle)
	}
}

// Renderer shows stem plots on a terminal screen until ESC, Enter or q is pressed.
//
// If Screen is nil, Render opens the terminal and closes it before returning. A provided Screen
// must already be initialized and is left open.
type Renderer struct {
	Screen tcell.Screen
}

// Render implements plot.Renderer.
func (r Renderer) Render(w waveplot.Wave, opts plot.Options) error {
	screen := r.Screen
	if screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return errors.Wrap(err, "term")
		}
		if err := s.Init(); err != nil {
			return errors.Wrap(err, "term")
		}
		defer s.Fini()
		screen = s
	}

	screen.Clear()
	Draw(screen, w, opts)
	screen.Show()

	for {
		switch event := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			screen.Sync()
			Draw(screen, w, opts)
			screen.Show()
		case *tcell.EventKey:
			if quit(event) {
				return nil
			}
		}
	}
}

func quit(event *tcell.EventKey) bool {
	switch event.Key() {
	case tcell.KeyESC, tcell.KeyEnter:
		return true
	case tcell.KeyRune:
		return unicode.ToLower(event.Rune()) == 'q'
	}
	return false
}
