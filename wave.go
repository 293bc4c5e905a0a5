package waveplot

// Wave is one sampled period of a waveform: a time axis and the amplitude at each of its points.
//
// T and Y always have the same length and every value in Y lies in [-1, 1].
type Wave struct {
	Kind       Kind
	Freq       float64
	SampleRate SampleRate

	T []float64
	Y []float64
}

// Len returns the number of samples.
func (w Wave) Len() int {
	return len(w.T)
}

// Period returns the duration of one cycle in seconds.
func (w Wave) Period() float64 {
	if w.Freq == 0 {
		return 0
	}
	return 1 / w.Freq
}

// At returns the time and amplitude of the i-th sample.
func (w Wave) At(i int) (t, y float64) {
	return w.T[i], w.Y[i]
}
