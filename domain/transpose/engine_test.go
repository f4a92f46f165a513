package transpose

import (
	"errors"
	"testing"

	"github.com/iagovirgilio/vocal-app/domain/key"
	"github.com/iagovirgilio/vocal-app/domain/pitch"
)

func mustRange(t *testing.T, low, high string) pitch.Range {
	t.Helper()
	r, err := pitch.ParseRange(low, high)
	if err != nil {
		t.Fatalf("ParseRange(%q, %q): %v", low, high, err)
	}
	return r
}

func TestSuggest_PerfectFit(t *testing.T) {
	// Singer range identical to the song range with no margin: nothing to
	// shift, everything fits exactly.
	singer := mustRange(t, "G3", "D4")
	song := mustRange(t, "G3", "D4")

	res, err := Suggest(singer, song, key.New(0, key.ModeMajor), 0)
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}

	if res.Shift() != 0 {
		t.Errorf("Shift() = %d, want 0", res.Shift())
	}
	if !res.Fits() {
		t.Error("Fits() = false, want true")
	}
	if res.MarginBelow() != 0 || res.MarginAbove() != 0 {
		t.Errorf("margins = %d/%d, want 0/0", res.MarginBelow(), res.MarginAbove())
	}
	if res.Key() != key.New(0, key.ModeMajor) {
		t.Errorf("Key() = %v, want C major", res.Key())
	}
}

func TestSuggest_ExampleScenario(t *testing.T) {
	// Singer C3-C5 (24 semitones) with margin 2 gives the effective range
	// D3-A#4 centered at 48. Song G3-D4 is centered at 46.5, so the ideal
	// shift is round(1.5) = 2 and C major becomes D major.
	singer := mustRange(t, "C3", "C5")
	song := mustRange(t, "G3", "D4")

	res, err := Suggest(singer, song, key.New(0, key.ModeMajor), 2)
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}

	if res.Shift() != 2 {
		t.Errorf("Shift() = %d, want 2", res.Shift())
	}
	if got := res.Range().String(); got != "A3-E4" {
		t.Errorf("Range() = %q, want A3-E4", got)
	}
	if res.MarginBelow() != 7 {
		t.Errorf("MarginBelow() = %d, want 7", res.MarginBelow())
	}
	if res.MarginAbove() != 6 {
		t.Errorf("MarginAbove() = %d, want 6", res.MarginAbove())
	}
	if !res.Fits() {
		t.Error("Fits() = false, want true")
	}
	if got := res.Key().Name(pitch.SpellingSharps); got != "D" {
		t.Errorf("Key() = %q, want D", got)
	}
}

func TestSuggest_RoundsHalfAwayFromZero(t *testing.T) {
	tests := []struct {
		name      string
		songLow   string
		songHigh  string
		wantShift int
	}{
		// Singer C3-C4 (margin 0) is centered at 42.
		{"half rounds up", "D3", "A3", 1},    // song center 41.5, diff +0.5
		{"half rounds down", "E3", "A3", -1}, // song center 42.5, diff -0.5
		{"exact center", "F3", "G3", 0},
	}

	singer := mustRange(t, "C3", "C4")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			song := mustRange(t, tt.songLow, tt.songHigh)
			res, err := Suggest(singer, song, key.New(0, key.ModeMajor), 0)
			if err != nil {
				t.Fatalf("Suggest: %v", err)
			}
			if res.Shift() != tt.wantShift {
				t.Errorf("Shift() = %d, want %d", res.Shift(), tt.wantShift)
			}
		})
	}
}

func TestSuggest_SongWiderThanSinger(t *testing.T) {
	// The song overflows in both directions; the shift stays centered and
	// both margins go negative instead of being forced to fit.
	singer := mustRange(t, "C4", "E4")
	song := mustRange(t, "C3", "C5")

	res, err := Suggest(singer, song, key.New(7, key.ModeMajor), 0)
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}

	if res.Shift() != 2 {
		t.Errorf("Shift() = %d, want 2", res.Shift())
	}
	if res.MarginBelow() != -10 {
		t.Errorf("MarginBelow() = %d, want -10", res.MarginBelow())
	}
	if res.MarginAbove() != -10 {
		t.Errorf("MarginAbove() = %d, want -10", res.MarginAbove())
	}
	if res.Fits() {
		t.Error("Fits() = true, want false")
	}
}

func TestSuggest_MarginExceedsRange(t *testing.T) {
	// A range spanning exactly 2*margin semitones leaves no usable span.
	singer := mustRange(t, "C4", "E4") // 4 semitones
	song := mustRange(t, "C4", "D4")

	_, err := Suggest(singer, song, key.New(0, key.ModeMajor), 2)
	if !errors.Is(err, ErrMarginExceedsRange) {
		t.Errorf("Suggest = %v, want ErrMarginExceedsRange", err)
	}

	_, err = Suggest(singer, song, key.New(0, key.ModeMajor), 5)
	if !errors.Is(err, ErrMarginExceedsRange) {
		t.Errorf("Suggest = %v, want ErrMarginExceedsRange", err)
	}
}

func TestSuggest_NegativeMargin(t *testing.T) {
	singer := mustRange(t, "C3", "C5")
	song := mustRange(t, "G3", "D4")

	_, err := Suggest(singer, song, key.New(0, key.ModeMajor), -1)
	if !errors.Is(err, ErrNegativeMargin) {
		t.Errorf("Suggest = %v, want ErrNegativeMargin", err)
	}
}

func TestSuggest_DownwardShift(t *testing.T) {
	// A song sitting far above the singer's range is shifted down.
	singer := mustRange(t, "C3", "C4")
	song := mustRange(t, "C5", "G5")

	res, err := Suggest(singer, song, key.New(9, key.ModeMinor), 0)
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}

	// Singer center 42, song center 63.5, shift round(-21.5) = -22.
	if res.Shift() != -22 {
		t.Errorf("Shift() = %d, want -22", res.Shift())
	}
	if got := res.Key().Name(pitch.SpellingSharps); got != "Bm" {
		t.Errorf("Key() = %q, want Bm", got)
	}
	if !res.Fits() {
		t.Error("Fits() = false, want true")
	}
}

func TestDescribeShift(t *testing.T) {
	tests := []struct {
		shift int
		want  string
	}{
		{2, "+2 semitones (higher)"},
		{-3, "-3 semitones (lower)"},
		{0, "original key (no transposition)"},
	}

	for _, tt := range tests {
		if got := DescribeShift(tt.shift); got != tt.want {
			t.Errorf("DescribeShift(%d) = %q, want %q", tt.shift, got, tt.want)
		}
	}
}
