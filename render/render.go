// Package render sends a sampled Wave to the renderer selected by plot.Options.Output.
package render

import (
	"github.com/faiface/waveplot"
	"github.com/faiface/waveplot/plot"
	"github.com/faiface/waveplot/plot/img"
	"github.com/faiface/waveplot/plot/term"
	"github.com/pkg/errors"
)

// Renderers holds the renderer used for each kind of output.
type Renderers struct {
	// Display shows plots on screen.
	Display plot.Renderer

	// File writes plots to the path in Options.Output.
	File plot.Renderer
}

// Default uses the terminal for the display and PNG for files.
var Default = Renderers{
	Display: term.Renderer{},
	File:    img.Renderer{},
}

// Render implements plot.Renderer by dispatching on opts.Output.
func (rs Renderers) Render(w waveplot.Wave, opts plot.Options) error {
	var r plot.Renderer
	switch opts.Output {
	case "":
		return errors.New("render: no output given")
	case plot.Display:
		r = rs.Display
	default:
		r = rs.File
	}
	if r == nil {
		return errors.Errorf("render: no renderer for output %q", opts.Output)
	}
	return r.Render(w, opts)
}

// Render renders w with the Default renderers.
func Render(w waveplot.Wave, opts plot.Options) error {
	return Default.Render(w, opts)
}
