package pitch

import (
	"errors"
	"fmt"
)

// ErrInvertedRange indicates a range whose low pitch sits above its high
// pitch. The caller's intent is ambiguous, so the pair is rejected rather
// than silently reordered.
var ErrInvertedRange = errors.New("inverted range")

// Range is an inclusive interval between two pitches.
type Range struct {
	low  Pitch
	high Pitch
}

// NewRange creates a Range. It fails with ErrInvertedRange when low is
// above high.
func NewRange(low, high Pitch) (Range, error) {
	if low.Semitone() > high.Semitone() {
		return Range{}, fmt.Errorf("%w: %s is above %s", ErrInvertedRange, low, high)
	}
	return Range{low: low, high: high}, nil
}

// ParseRange parses two note names into a Range.
func ParseRange(lowName, highName string) (Range, error) {
	low, err := Parse(lowName)
	if err != nil {
		return Range{}, err
	}
	high, err := Parse(highName)
	if err != nil {
		return Range{}, err
	}
	return NewRange(low, high)
}

// Low returns the lowest pitch of the range.
func (r Range) Low() Pitch { return r.low }

// High returns the highest pitch of the range.
func (r Range) High() Pitch { return r.high }

// Span returns the width of the range in semitones.
func (r Range) Span() int {
	return r.high.Semitone() - r.low.Semitone()
}

// Center returns the midpoint of the range in semitones. Odd spans yield a
// half-semitone center.
func (r Range) Center() float64 {
	return float64(r.low.Semitone()+r.high.Semitone()) / 2
}

// Transpose returns the range shifted by n semitones. The low/high ordering
// is preserved, so the result never inverts.
func (r Range) Transpose(n int) Range {
	return Range{low: r.low.Transpose(n), high: r.high.Transpose(n)}
}

// String renders the range with sharp spelling, e.g. "C3-C5".
func (r Range) String() string {
	return r.low.String() + "-" + r.high.String()
}
