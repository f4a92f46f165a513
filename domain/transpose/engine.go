// Package transpose computes the semitone shift that best centers a song's
// range inside a singer's comfortable range.
package transpose

import (
	"errors"
	"fmt"
	"math"

	"github.com/iagovirgilio/vocal-app/domain/key"
	"github.com/iagovirgilio/vocal-app/domain/pitch"
)

// ErrMarginExceedsRange indicates a comfort margin that consumes the whole
// singer range, leaving no usable span to center against.
var ErrMarginExceedsRange = errors.New("comfort margin exceeds singer range")

// ErrNegativeMargin indicates a comfort margin below zero.
var ErrNegativeMargin = errors.New("comfort margin must not be negative")

// Result is the outcome of a transposition computation. It is an immutable
// value produced fresh on every call.
type Result struct {
	shift       int
	newKey      key.Key
	transposed  pitch.Range
	marginBelow int
	marginAbove int
}

// Shift returns the suggested shift in semitones.
func (r Result) Shift() int { return r.shift }

// Key returns the song key after applying the shift.
func (r Result) Key() key.Key { return r.newKey }

// Range returns the song range after applying the shift.
func (r Result) Range() pitch.Range { return r.transposed }

// MarginBelow returns the distance in semitones between the transposed low
// note and the effective singer low. Negative numbers signal an overflow
// below the singer's comfortable range.
func (r Result) MarginBelow() int { return r.marginBelow }

// MarginAbove returns the distance in semitones between the effective
// singer high and the transposed high note. Negative numbers signal an
// overflow above the singer's comfortable range.
func (r Result) MarginAbove() int { return r.marginAbove }

// Fits reports whether the transposed song sits entirely inside the
// margin-adjusted singer range.
func (r Result) Fits() bool {
	return r.marginBelow >= 0 && r.marginAbove >= 0
}

// Suggest computes the integer shift that best aligns song with the
// margin-adjusted singer range.
//
// The shift is the rounded difference between the two range centers, with
// .5 rounding away from zero. The shift is never adjusted to force a fit:
// when the song still overflows an extreme, the corresponding margin goes
// negative and Fits reports false.
func Suggest(singer, song pitch.Range, songKey key.Key, margin int) (Result, error) {
	effLow, effHigh, err := effectiveRange(singer, margin)
	if err != nil {
		return Result{}, err
	}

	singerCenter := float64(effLow.Semitone()+effHigh.Semitone()) / 2
	shift := int(math.Round(singerCenter - song.Center()))

	moved := song.Transpose(shift)

	return Result{
		shift:       shift,
		newKey:      songKey.Transpose(shift),
		transposed:  moved,
		marginBelow: moved.Low().Semitone() - effLow.Semitone(),
		marginAbove: effHigh.Semitone() - moved.High().Semitone(),
	}, nil
}

// effectiveRange shrinks the singer range by the comfort margin at both
// extremes. A margin that leaves no usable span (effective low at or above
// effective high) is an error, never silently swapped.
func effectiveRange(singer pitch.Range, margin int) (pitch.Pitch, pitch.Pitch, error) {
	if margin < 0 {
		return pitch.Pitch{}, pitch.Pitch{}, fmt.Errorf("%w: %d", ErrNegativeMargin, margin)
	}

	effLow := singer.Low().Transpose(margin)
	effHigh := singer.High().Transpose(-margin)
	if effLow.Semitone() >= effHigh.Semitone() {
		return pitch.Pitch{}, pitch.Pitch{}, fmt.Errorf(
			"%w: margin %d leaves nothing of %s", ErrMarginExceedsRange, margin, singer)
	}
	return effLow, effHigh, nil
}

// DescribeShift renders a shift as a human-readable direction.
func DescribeShift(shift int) string {
	switch {
	case shift > 0:
		return fmt.Sprintf("+%d semitones (higher)", shift)
	case shift < 0:
		return fmt.Sprintf("%d semitones (lower)", shift)
	default:
		return "original key (no transposition)"
	}
}
