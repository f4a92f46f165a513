// Package key provides the musical key (tonality) value object.
package key

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iagovirgilio/vocal-app/domain/pitch"
)

// ErrInvalidMode indicates a mode string that is neither major nor minor.
var ErrInvalidMode = errors.New("invalid mode")

// Mode is the tonal quality of a key.
type Mode string

// Mode values.
const (
	ModeMajor Mode = "major"
	ModeMinor Mode = "minor"
)

// ParseMode parses a mode name, case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "major", "maj":
		return ModeMajor, nil
	case "minor", "min":
		return ModeMinor, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// Key is a tonal center: a root pitch class 0-11 plus a mode.
type Key struct {
	root int
	mode Mode
}

// New creates a Key, wrapping the root into 0-11.
func New(root int, mode Mode) Key {
	return Key{root: ((root % pitch.SemitonesPerOctave) + pitch.SemitonesPerOctave) % pitch.SemitonesPerOctave, mode: mode}
}

// ParseRoot parses a root note name such as "C", "F#", or "Bb" into a Key
// with the given mode. An octave digit on the root is rejected: a key has
// no octave, and silently dropping one would hide a caller mistake.
func ParseRoot(name string, mode Mode) (Key, error) {
	class, err := pitch.ParseClass(name)
	if err != nil {
		return Key{}, err
	}
	return New(class, mode), nil
}

// Parse parses a compact key name where a trailing "m" marks minor,
// e.g. "C", "F#m", "Bbm".
func Parse(s string) (Key, error) {
	name := strings.TrimSpace(s)
	mode := ModeMajor
	if strings.HasSuffix(name, "m") && len(name) > 1 {
		mode = ModeMinor
		name = name[:len(name)-1]
	}
	return ParseRoot(name, mode)
}

// Root returns the root pitch class 0-11.
func (k Key) Root() int { return k.root }

// Mode returns the tonal quality.
func (k Key) Mode() Mode { return k.mode }

// Transpose shifts the tonal center by n semitones, wrapping modulo 12.
// The mode is preserved: transposition moves a key, it does not change
// its major/minor quality.
func (k Key) Transpose(n int) Key {
	return New(k.root+n, k.mode)
}

// Name renders the key compactly, with "m" marking minor: "C#", "Dbm".
func (k Key) Name(spelling pitch.Spelling) string {
	name := pitch.ClassName(k.root, spelling)
	if k.mode == ModeMinor {
		name += "m"
	}
	return name
}

// LocalizedName renders the key in Portuguese, e.g. "Dó# Maior", "Lá menor".
func (k Key) LocalizedName(spelling pitch.Spelling) string {
	quality := " Maior"
	if k.mode == ModeMinor {
		quality = " menor"
	}
	return pitch.SolfegeClassName(k.root, spelling) + quality
}

// String renders the key with sharp spelling.
func (k Key) String() string { return k.Name(pitch.SpellingSharps) }
