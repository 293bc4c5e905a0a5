// Package generators builds one sampled period of the waveforms known to waveplot.
package generators

import (
	"github.com/faiface/waveplot"
	"github.com/pkg/errors"
)

// Builder computes the amplitude at every point of an axis.
type Builder func(ax waveplot.Axis) []float64

var builders = map[waveplot.Kind]Builder{
	waveplot.Sine:     Sine,
	waveplot.Square:   Square,
	waveplot.Sawtooth: Sawtooth,
	waveplot.Triangle: Triangle,
}

// Sample returns exactly one period of the waveform of the given kind and frequency, sampled at
// sr.
//
// freq and sr must be positive and finite and kind must be one of waveplot.Kinds, otherwise the
// returned error has waveplot.ErrInvalidParameter as its cause.
func Sample(freq float64, sr waveplot.SampleRate, kind waveplot.Kind) (waveplot.Wave, error) {
	build, ok := builders[kind]
	if !ok {
		return waveplot.Wave{}, errors.Wrapf(waveplot.ErrInvalidParameter, "unknown waveform kind %d", int(kind))
	}
	ax, err := waveplot.NewAxis(freq, sr)
	if err != nil {
		return waveplot.Wave{}, err
	}
	return waveplot.Wave{
		Kind:       kind,
		Freq:       freq,
		SampleRate: sr,
		T:          ax.T,
		Y:          build(ax),
	}, nil
}

// mapRange remaps v from [start1, end1] to [start2, end2].
func mapRange(v, start1, end1, start2, end2 float64) float64 {
	return start2 + (v-start1)/(end1-start1)*(end2-start2)
}
