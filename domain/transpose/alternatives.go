package transpose

import (
	"sort"

	"github.com/iagovirgilio/vocal-app/domain/key"
	"github.com/iagovirgilio/vocal-app/domain/pitch"
)

// MaxAlternatives is the number of ranked alternatives returned.
const MaxAlternatives = 3

// alternativeWindow is how far, in semitones, candidates may stray from the
// centering shift in either direction.
const alternativeWindow = 6

// Candidate is one fitting transposition considered by Alternatives.
type Candidate struct {
	shift       int
	newKey      key.Key
	transposed  pitch.Range
	marginBelow int
	marginAbove int
}

// Shift returns the candidate shift in semitones.
func (c Candidate) Shift() int { return c.shift }

// Key returns the song key after applying the candidate shift.
func (c Candidate) Key() key.Key { return c.newKey }

// Range returns the song range after applying the candidate shift.
func (c Candidate) Range() pitch.Range { return c.transposed }

// MarginBelow returns the remaining margin at the low extreme.
func (c Candidate) MarginBelow() int { return c.marginBelow }

// MarginAbove returns the remaining margin at the high extreme.
func (c Candidate) MarginAbove() int { return c.marginAbove }

// Alternatives ranks every shift within six semitones of the centering
// shift that keeps the song inside the margin-adjusted singer range.
// Candidates are ordered by combined remaining margin, then by closeness
// to the centering shift, and truncated to MaxAlternatives. The list is
// empty when no nearby shift fits.
func Alternatives(singer, song pitch.Range, songKey key.Key, margin int) ([]Candidate, error) {
	effLow, effHigh, err := effectiveRange(singer, margin)
	if err != nil {
		return nil, err
	}

	base, err := Suggest(singer, song, songKey, margin)
	if err != nil {
		return nil, err
	}

	var fitting []Candidate
	for offset := -alternativeWindow; offset <= alternativeWindow; offset++ {
		shift := base.Shift() + offset
		moved := song.Transpose(shift)

		below := moved.Low().Semitone() - effLow.Semitone()
		above := effHigh.Semitone() - moved.High().Semitone()
		if below < 0 || above < 0 {
			continue
		}

		fitting = append(fitting, Candidate{
			shift:       shift,
			newKey:      songKey.Transpose(shift),
			transposed:  moved,
			marginBelow: below,
			marginAbove: above,
		})
	}

	sort.SliceStable(fitting, func(i, j int) bool {
		ti := fitting[i].marginBelow + fitting[i].marginAbove
		tj := fitting[j].marginBelow + fitting[j].marginAbove
		if ti != tj {
			return ti > tj
		}
		di := abs(fitting[i].shift - base.Shift())
		dj := abs(fitting[j].shift - base.Shift())
		if di != dj {
			return di < dj
		}
		return fitting[i].shift < fitting[j].shift
	})

	if len(fitting) > MaxAlternatives {
		fitting = fitting[:MaxAlternatives]
	}
	return fitting, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
