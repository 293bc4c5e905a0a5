package waveplot

import "github.com/pkg/errors"

// ErrInvalidParameter is the cause of every error returned for out-of-domain input: a
// non-positive or non-finite frequency or sample rate, or an unknown waveform kind.
//
// Use errors.Cause (or errors.Is) to test for it.
var ErrInvalidParameter = errors.New("waveplot: invalid parameter")

func invalid(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidParameter, format, args...)
}
