// Package waveplot samples one period of a periodic waveform at a fixed sample rate so it can be
// drawn as a stem plot.
//
// The sampling itself lives in the generators package, drawing lives in plot and its
// subpackages. This package holds the types shared between them.
package waveplot

import (
	"math"
	"time"
)

// Defaults used by the example programs.
const (
	DefaultSampleRate SampleRate = 48000
	DefaultFreq                  = 440.0
)

// SampleRate is the number of samples per second of continuous time.
type SampleRate float64

// N returns the number of samples spanning d seconds, rounded to the nearest integer.
func (sr SampleRate) N(d float64) int {
	return int(math.Round(d * float64(sr)))
}

// D returns the duration in seconds of n samples.
func (sr SampleRate) D(n int) float64 {
	return float64(n) / float64(sr)
}

// Duration is like D, but returns a time.Duration.
func (sr SampleRate) Duration(n int) time.Duration {
	return time.Duration(sr.D(n) * float64(time.Second))
}

func valid(x float64) bool {
	return x > 0 && !math.IsInf(x, 0)
}
