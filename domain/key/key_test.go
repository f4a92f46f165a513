package key

import (
	"errors"
	"testing"

	"github.com/iagovirgilio/vocal-app/domain/pitch"
)

func TestKey_Transpose(t *testing.T) {
	tests := []struct {
		name  string
		key   Key
		shift int
		want  Key
	}{
		{"zero shift", New(0, ModeMajor), 0, New(0, ModeMajor)},
		{"up a tone", New(0, ModeMajor), 2, New(2, ModeMajor)},
		{"wraps upward", New(10, ModeMajor), 4, New(2, ModeMajor)},
		{"wraps downward", New(1, ModeMinor), -3, New(10, ModeMinor)},
		{"full octave", New(7, ModeMinor), 12, New(7, ModeMinor)},
		{"large negative", New(0, ModeMajor), -25, New(11, ModeMajor)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.key.Transpose(tt.shift); got != tt.want {
				t.Errorf("Transpose(%d) = %v, want %v", tt.shift, got, tt.want)
			}
		})
	}
}

func TestKey_TransposeZeroIsIdentity(t *testing.T) {
	for root := 0; root < 12; root++ {
		for _, mode := range []Mode{ModeMajor, ModeMinor} {
			k := New(root, mode)
			if k.Transpose(0) != k {
				t.Errorf("Transpose(0) changed %v", k)
			}
		}
	}
}

func TestKey_TransposePreservesMode(t *testing.T) {
	k := New(9, ModeMinor) // Am
	for shift := -13; shift <= 13; shift++ {
		if got := k.Transpose(shift).Mode(); got != ModeMinor {
			t.Fatalf("Transpose(%d) changed mode to %v", shift, got)
		}
	}
}

func TestParseRoot(t *testing.T) {
	tests := []struct {
		input string
		mode  Mode
		root  int
	}{
		{"C", ModeMajor, 0},
		{"F#", ModeMinor, 6},
		{"Bb", ModeMajor, 10},
		{"Cb", ModeMajor, 11},
		{"Sol", ModeMajor, 7},
	}

	for _, tt := range tests {
		k, err := ParseRoot(tt.input, tt.mode)
		if err != nil {
			t.Fatalf("ParseRoot(%q): %v", tt.input, err)
		}
		if k.Root() != tt.root || k.Mode() != tt.mode {
			t.Errorf("ParseRoot(%q, %v) = %v, want root %d", tt.input, tt.mode, k, tt.root)
		}
	}
}

func TestParseRoot_RejectsOctave(t *testing.T) {
	if _, err := ParseRoot("C4", ModeMajor); !errors.Is(err, pitch.ErrInvalidNoteFormat) {
		t.Errorf("ParseRoot(\"C4\") = %v, want ErrInvalidNoteFormat", err)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		root  int
		mode  Mode
	}{
		{"C", 0, ModeMajor},
		{"Am", 9, ModeMinor},
		{"F#m", 6, ModeMinor},
		{"Bbm", 10, ModeMinor},
		{"Eb", 3, ModeMajor},
	}

	for _, tt := range tests {
		k, err := Parse(tt.input)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tt.input, err)
		}
		if k.Root() != tt.root || k.Mode() != tt.mode {
			t.Errorf("Parse(%q) = %v, want root %d mode %v", tt.input, k, tt.root, tt.mode)
		}
	}
}

func TestKey_Name_Enharmonic(t *testing.T) {
	// C major up one semitone has root pitch class 1: C# with sharps,
	// Db with flats, major in both spellings.
	k := New(0, ModeMajor).Transpose(1)

	if k.Root() != 1 {
		t.Fatalf("Root() = %d, want 1", k.Root())
	}
	if got := k.Name(pitch.SpellingSharps); got != "C#" {
		t.Errorf("Name(sharps) = %q, want C#", got)
	}
	if got := k.Name(pitch.SpellingFlats); got != "Db" {
		t.Errorf("Name(flats) = %q, want Db", got)
	}
	if k.Mode() != ModeMajor {
		t.Errorf("Mode() = %v, want major", k.Mode())
	}
}

func TestKey_Name_Minor(t *testing.T) {
	k := New(9, ModeMinor)
	if got := k.Name(pitch.SpellingSharps); got != "Am" {
		t.Errorf("Name() = %q, want Am", got)
	}
}

func TestKey_LocalizedName(t *testing.T) {
	tests := []struct {
		key      Key
		spelling pitch.Spelling
		want     string
	}{
		{New(0, ModeMajor), pitch.SpellingSharps, "Dó Maior"},
		{New(9, ModeMinor), pitch.SpellingSharps, "Lá menor"},
		{New(10, ModeMajor), pitch.SpellingFlats, "Sib Maior"},
		{New(1, ModeMajor), pitch.SpellingSharps, "Dó# Maior"},
	}

	for _, tt := range tests {
		if got := tt.key.LocalizedName(tt.spelling); got != tt.want {
			t.Errorf("LocalizedName(%v) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input string
		want  Mode
	}{
		{"major", ModeMajor},
		{"MAJOR", ModeMajor},
		{"maj", ModeMajor},
		{"minor", ModeMinor},
		{"Min", ModeMinor},
	}

	for _, tt := range tests {
		mode, err := ParseMode(tt.input)
		if err != nil {
			t.Fatalf("ParseMode(%q): %v", tt.input, err)
		}
		if mode != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.input, mode, tt.want)
		}
	}

	if _, err := ParseMode("dorian"); !errors.Is(err, ErrInvalidMode) {
		t.Errorf("ParseMode(\"dorian\") = %v, want ErrInvalidMode", err)
	}
}
