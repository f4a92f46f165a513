// Package service provides application layer services that orchestrate
// domain operations.
package service

import (
	"context"
	"log/slog"

	"github.com/iagovirgilio/vocal-app/domain/key"
	"github.com/iagovirgilio/vocal-app/domain/pitch"
	"github.com/iagovirgilio/vocal-app/domain/transpose"
)

// ComputeParams are the inputs of one transposition computation: the four
// note names, the song key, the comfort margin, and rendering preferences.
type ComputeParams struct {
	SingerLow     string
	SingerHigh    string
	SongLow       string
	SongHigh      string
	SongRoot      string
	SongMode      string
	ComfortMargin int
	PreferFlats   bool
	Notation      pitch.Notation
}

// Alternative is one additional fitting transposition, already rendered.
type Alternative struct {
	shift       int
	keyName     string
	low         string
	high        string
	marginBelow int
	marginAbove int
}

// Shift returns the alternative shift in semitones.
func (a Alternative) Shift() int { return a.shift }

// Key returns the rendered key name for this alternative.
func (a Alternative) Key() string { return a.keyName }

// Low returns the rendered transposed low note.
func (a Alternative) Low() string { return a.low }

// High returns the rendered transposed high note.
func (a Alternative) High() string { return a.high }

// MarginBelow returns the remaining margin at the low extreme.
func (a Alternative) MarginBelow() int { return a.marginBelow }

// MarginAbove returns the remaining margin at the high extreme.
func (a Alternative) MarginAbove() int { return a.marginAbove }

// Suggestion is a computed transposition rendered for presentation:
// note and key names are strings in the requested notation and spelling.
type Suggestion struct {
	shift            int
	shiftDescription string
	suggestedKey     string
	localizedKey     string
	transposedLow    string
	transposedHigh   string
	marginBelow      int
	marginAbove      int
	fits             bool
	alternatives     []Alternative
}

// Shift returns the suggested shift in semitones.
func (s Suggestion) Shift() int { return s.shift }

// ShiftDescription returns the shift as a human-readable direction.
func (s Suggestion) ShiftDescription() string { return s.shiftDescription }

// SuggestedKey returns the rendered new key, e.g. "D" or "Bbm".
func (s Suggestion) SuggestedKey() string { return s.suggestedKey }

// LocalizedKey returns the Portuguese key name, e.g. "Ré Maior".
func (s Suggestion) LocalizedKey() string { return s.localizedKey }

// TransposedLow returns the rendered transposed low note.
func (s Suggestion) TransposedLow() string { return s.transposedLow }

// TransposedHigh returns the rendered transposed high note.
func (s Suggestion) TransposedHigh() string { return s.transposedHigh }

// MarginBelow returns the remaining margin at the low extreme; negative
// numbers signal an overflow below the singer's comfortable range.
func (s Suggestion) MarginBelow() int { return s.marginBelow }

// MarginAbove returns the remaining margin at the high extreme; negative
// numbers signal an overflow above the singer's comfortable range.
func (s Suggestion) MarginAbove() int { return s.marginAbove }

// Fits reports whether the transposed song sits entirely inside the
// margin-adjusted singer range.
func (s Suggestion) Fits() bool { return s.fits }

// Alternatives returns up to three additional fitting transpositions,
// best first.
func (s Suggestion) Alternatives() []Alternative {
	out := make([]Alternative, len(s.alternatives))
	copy(out, s.alternatives)
	return out
}

// Transposition computes key suggestions. It is stateless: every call is
// an independent pure computation over its parameters.
type Transposition struct {
	logger *slog.Logger
}

// NewTransposition creates a Transposition service.
func NewTransposition(logger *slog.Logger) *Transposition {
	if logger == nil {
		logger = slog.Default()
	}
	return &Transposition{logger: logger}
}

// Compute parses the note-name inputs, runs the transposition engine, and
// renders the result in the requested notation and spelling. It either
// returns a complete Suggestion or one of the named error kinds; there is
// no partial success.
func (t *Transposition) Compute(ctx context.Context, params ComputeParams) (Suggestion, error) {
	singer, err := pitch.ParseRange(params.SingerLow, params.SingerHigh)
	if err != nil {
		return Suggestion{}, err
	}
	song, err := pitch.ParseRange(params.SongLow, params.SongHigh)
	if err != nil {
		return Suggestion{}, err
	}
	mode, err := key.ParseMode(params.SongMode)
	if err != nil {
		return Suggestion{}, err
	}
	songKey, err := key.ParseRoot(params.SongRoot, mode)
	if err != nil {
		return Suggestion{}, err
	}

	result, err := transpose.Suggest(singer, song, songKey, params.ComfortMargin)
	if err != nil {
		return Suggestion{}, err
	}
	candidates, err := transpose.Alternatives(singer, song, songKey, params.ComfortMargin)
	if err != nil {
		return Suggestion{}, err
	}

	spelling := pitch.SpellingFor(params.PreferFlats)
	notation := params.Notation
	if notation == "" {
		notation = pitch.NotationLetter
	}

	alternatives := make([]Alternative, 0, len(candidates))
	for _, c := range candidates {
		alternatives = append(alternatives, Alternative{
			shift:       c.Shift(),
			keyName:     c.Key().Name(spelling),
			low:         c.Range().Low().Render(notation, spelling),
			high:        c.Range().High().Render(notation, spelling),
			marginBelow: c.MarginBelow(),
			marginAbove: c.MarginAbove(),
		})
	}

	t.logger.DebugContext(ctx, "computed transposition",
		"singer", singer.String(),
		"song", song.String(),
		"margin", params.ComfortMargin,
		"shift", result.Shift(),
		"fits", result.Fits(),
	)

	return Suggestion{
		shift:            result.Shift(),
		shiftDescription: transpose.DescribeShift(result.Shift()),
		suggestedKey:     result.Key().Name(spelling),
		localizedKey:     result.Key().LocalizedName(spelling),
		transposedLow:    result.Range().Low().Render(notation, spelling),
		transposedHigh:   result.Range().High().Render(notation, spelling),
		marginBelow:      result.MarginBelow(),
		marginAbove:      result.MarginAbove(),
		fits:             result.Fits(),
		alternatives:     alternatives,
	}, nil
}
