package waveplot

import "math"

// A0Freq is the frequency of the lowest key of an 88-key piano.
const A0Freq = 27.5

// NoteFrequency returns the frequency of a piano key, shifted by coarse semitones and fine cents.
//
// note counts keys from A0, so note 48 is A4 (440 Hz) and note 39 is C4.
func NoteFrequency(note int, coarse, fine float64) float64 {
	cents := float64(note)*100 + coarse*100 + fine
	return A0Freq * math.Pow(2, cents/1200)
}
