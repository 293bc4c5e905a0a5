package img

import (
	"os"

	"github.com/faiface/waveplot"
	"github.com/faiface/waveplot/plot"
	"github.com/pkg/errors"
)

// Renderer writes stem plots to the PNG file named by Options.Output.
//
// Zero Width or Height means DefaultWidth or DefaultHeight.
type Renderer struct {
	Width, Height int
}

// Render implements plot.Renderer.
func (r Renderer) Render(w waveplot.Wave, opts plot.Options) (err error) {
	if opts.Output == "" || opts.Output == plot.Display {
		return errors.Errorf("img: output must be a file path, got %q", opts.Output)
	}
	width, height := r.Width, r.Height
	if width == 0 {
		width = DefaultWidth
	}
	if height == 0 {
		height = DefaultHeight
	}

	if _, err := frame(w, opts, width, height); err != nil {
		return errors.Wrap(err, "img")
	}

	f, err := os.Create(opts.Output)
	if err != nil {
		return errors.Wrap(err, "img")
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrap(cerr, "img")
		}
		if err != nil {
			os.Remove(opts.Output)
		}
	}()
	return Encode(f, w, opts, width, height)
}
