package waveplot

import "math"

// MaxSampleCount is the largest number of samples a single period may span.
const MaxSampleCount = 1 << 24

// Axis is the discrete time axis covering exactly one period of a waveform.
type Axis struct {
	Freq       float64
	SampleRate SampleRate

	// Period is 1/Freq in seconds.
	Period float64

	// N is the number of samples, round(SampleRate/Freq), but never less than 1.
	N int

	// T holds N evenly spaced points over [0, Period], both ends included.
	T []float64
}

// NewAxis returns the time axis for one period of a waveform with the given frequency sampled at
// sr.
//
// freq and sr must be positive and finite and sr/freq must not exceed MaxSampleCount, otherwise
// the returned error has ErrInvalidParameter as its cause.
func NewAxis(freq float64, sr SampleRate) (Axis, error) {
	if !valid(freq) {
		return Axis{}, invalid("frequency must be positive and finite, got %v", freq)
	}
	if !valid(float64(sr)) {
		return Axis{}, invalid("sample rate must be positive and finite, got %v", float64(sr))
	}
	if ratio := float64(sr) / freq; !(ratio <= MaxSampleCount) {
		return Axis{}, invalid("period of %v Hz at %v Hz spans %v samples, more than %d", freq, float64(sr), ratio, MaxSampleCount)
	}
	period := 1 / freq
	n := SampleCount(freq, sr)
	return Axis{
		Freq:       freq,
		SampleRate: sr,
		Period:     period,
		N:          n,
		T:          Linspace(0, period, n),
	}, nil
}

// SampleCount returns the number of samples spanning one period, round(sr/freq), clamped to
// [1, MaxSampleCount].
func SampleCount(freq float64, sr SampleRate) int {
	ratio := float64(sr) / freq
	if !(ratio <= MaxSampleCount) {
		return MaxSampleCount
	}
	n := int(math.Round(ratio))
	if n < 1 {
		n = 1
	}
	return n
}

// Phase returns the position of the i-th sample within the period, from 0 at the first sample to
// 1 at the last one.
func (ax Axis) Phase(i int) float64 {
	if ax.N <= 1 {
		return 0
	}
	return float64(i) / float64(ax.N-1)
}

// Step returns the spacing between adjacent samples, or 0 for a single-sample axis.
func (ax Axis) Step() float64 {
	if ax.N <= 1 {
		return 0
	}
	return ax.Period / float64(ax.N-1)
}

// Linspace returns n evenly spaced values from start to stop. Both ends are included and the last
// value is exactly stop. For n == 1 it returns [start], for n <= 0 an empty slice.
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	xs := make([]float64, n)
	xs[0] = start
	if n == 1 {
		return xs
	}
	step := (stop - start) / float64(n-1)
	for i := 1; i < n-1; i++ {
		xs[i] = start + float64(i)*step
	}
	xs[n-1] = stop
	return xs
}
