package waveplot

import (
	"strconv"
	"strings"
)

// Kind selects the shape of a waveform.
type Kind int

// Supported waveform kinds.
const (
	Sine Kind = iota
	Square
	Sawtooth
	Triangle
)

// Kinds lists every supported Kind in declaration order.
var Kinds = []Kind{Sine, Square, Sawtooth, Triangle}

var kindNames = map[Kind]string{
	Sine:     "sine",
	Square:   "square",
	Sawtooth: "saw",
	Triangle: "triangle",
}

// String returns the short name of the kind, as used in axis captions and file names.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Valid reports whether k is one of the supported kinds.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseKind returns the Kind named by s. Matching is case-insensitive and "sawtooth" is accepted
// as an alias of "saw".
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "sawtooth" {
		return Sawtooth, nil
	}
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, invalid("unknown waveform kind %q", s)
}
