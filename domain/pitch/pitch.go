// Package pitch provides twelve-tone pitch and range value objects.
//
// A Pitch is canonicalised to a single absolute semitone index with C0 = 0,
// so C4 = 48 and A4 = 57. Enharmonic spellings (C# vs Db) map to the same
// index; spelling is chosen only when a pitch is rendered back to a name.
package pitch

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidNoteFormat indicates a note name that cannot be parsed into
// letter, accidental, and octave.
var ErrInvalidNoteFormat = errors.New("invalid note format")

// SemitonesPerOctave is the number of semitones in one octave.
const SemitonesPerOctave = 12

// Spelling selects between enharmonic spellings when rendering a pitch.
type Spelling string

// Spelling values.
const (
	SpellingSharps Spelling = "sharps"
	SpellingFlats  Spelling = "flats"
)

// SpellingFor returns the flat spelling when preferFlats is true, otherwise
// the sharp spelling.
func SpellingFor(preferFlats bool) Spelling {
	if preferFlats {
		return SpellingFlats
	}
	return SpellingSharps
}

// Notation selects the naming system used when rendering a pitch.
type Notation string

// Notation values.
const (
	NotationLetter  Notation = "letter"
	NotationSolfege Notation = "solfege"
)

// Semitone offsets of the natural note letters within an octave (C=0 .. B=11).
var letterClasses = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// Solfège syllables accepted on input, accent-stripped and lowercased.
var solfegeLetters = map[string]byte{
	"do": 'C', "re": 'D', "mi": 'E', "fa": 'F', "sol": 'G', "la": 'A', "si": 'B',
}

var (
	sharpNames = [SemitonesPerOctave]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
	flatNames  = [SemitonesPerOctave]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

	sharpSolfege = [SemitonesPerOctave]string{"Dó", "Dó#", "Ré", "Ré#", "Mi", "Fá", "Fá#", "Sol", "Sol#", "Lá", "Lá#", "Si"}
	flatSolfege  = [SemitonesPerOctave]string{"Dó", "Réb", "Ré", "Mib", "Mi", "Fá", "Solb", "Sol", "Láb", "Lá", "Sib", "Si"}
)

// Pitch is an immutable musical pitch identified by its absolute semitone
// index. Comparison, ordering, and arithmetic use the index alone.
type Pitch struct {
	semitone int
}

// FromSemitone creates a Pitch from an absolute semitone index (C0 = 0).
func FromSemitone(index int) Pitch {
	return Pitch{semitone: index}
}

// Parse parses a note name such as "C4", "F#3", "Bb2", "B##4", or the
// solfège forms "Dó4", "Sol#3", "Sib2". The octave is mandatory: a name
// without an octave digit fails with ErrInvalidNoteFormat rather than
// assuming a default.
func Parse(name string) (Pitch, error) {
	letter, rest, err := splitLetter(name)
	if err != nil {
		return Pitch{}, err
	}

	shift, rest, err := splitAccidentals(name, rest)
	if err != nil {
		return Pitch{}, err
	}

	if rest == "" {
		return Pitch{}, fmt.Errorf("%w: %q is missing an octave", ErrInvalidNoteFormat, name)
	}
	octave, err := strconv.Atoi(rest)
	if err != nil || octave < 0 {
		return Pitch{}, fmt.Errorf("%w: %q has a malformed octave", ErrInvalidNoteFormat, name)
	}

	return Pitch{semitone: octave*SemitonesPerOctave + letterClasses[letter] + shift}, nil
}

// ParseClass parses a note name without an octave (such as "C#", "Bb", or
// "Sol") into a pitch class 0-11. A trailing octave digit is rejected.
func ParseClass(name string) (int, error) {
	letter, rest, err := splitLetter(name)
	if err != nil {
		return 0, err
	}

	shift, rest, err := splitAccidentals(name, rest)
	if err != nil {
		return 0, err
	}

	if rest != "" {
		return 0, fmt.Errorf("%w: %q must not carry an octave", ErrInvalidNoteFormat, name)
	}

	return mod12(letterClasses[letter] + shift), nil
}

// splitLetter consumes the note letter or solfège syllable and returns the
// equivalent letter plus the unconsumed remainder.
func splitLetter(name string) (byte, string, error) {
	s := strings.TrimSpace(name)
	if s == "" {
		return 0, "", fmt.Errorf("%w: empty note name", ErrInvalidNoteFormat)
	}

	folded := foldSolfege(s)
	// Longest syllable first so "Sol" is not cut short at "So".
	for _, syl := range []string{"sol", "do", "re", "mi", "fa", "la", "si"} {
		if strings.HasPrefix(folded, syl) {
			return solfegeLetters[syl], s[len(sylRaw(s, syl)):], nil
		}
	}

	letter := s[0]
	if letter >= 'a' && letter <= 'g' {
		letter -= 'a' - 'A'
	}
	if _, ok := letterClasses[letter]; !ok {
		return 0, "", fmt.Errorf("%w: %q does not start with a note letter A-G", ErrInvalidNoteFormat, name)
	}
	return letter, s[1:], nil
}

// splitAccidentals consumes sharp or flat markers. Up to two markers of the
// same direction are allowed; mixing directions is malformed.
func splitAccidentals(name, rest string) (int, string, error) {
	shift := 0
	count := 0
	for rest != "" {
		var step int
		var width int
		switch {
		case rest[0] == '#':
			step, width = 1, 1
		case rest[0] == 'b':
			step, width = -1, 1
		case strings.HasPrefix(rest, "♯"):
			step, width = 1, len("♯")
		case strings.HasPrefix(rest, "♭"):
			step, width = -1, len("♭")
		default:
			return shift, rest, nil
		}
		if (step > 0 && shift < 0) || (step < 0 && shift > 0) {
			return 0, "", fmt.Errorf("%w: %q mixes sharp and flat markers", ErrInvalidNoteFormat, name)
		}
		count++
		if count > 2 {
			return 0, "", fmt.Errorf("%w: %q carries more than a double accidental", ErrInvalidNoteFormat, name)
		}
		shift += step
		rest = rest[width:]
	}
	return shift, rest, nil
}

// foldSolfege lowercases a name and strips the Portuguese accents so "Dó",
// "Do", and "dó" all fold to "do".
func foldSolfege(s string) string {
	s = strings.ToLower(s)
	replacer := strings.NewReplacer("ó", "o", "é", "e", "á", "a")
	return replacer.Replace(s)
}

// sylRaw returns the prefix of s whose folded form is syl, so the remainder
// is sliced at the right byte offset even when the input carries accents.
func sylRaw(s string, syl string) string {
	runes := []rune(s)
	return string(runes[:len(syl)])
}

// Semitone returns the absolute semitone index (C0 = 0).
func (p Pitch) Semitone() int { return p.semitone }

// Class returns the pitch class 0-11 within the octave.
func (p Pitch) Class() int { return mod12(p.semitone) }

// Octave returns the octave number, using floor division so indices below
// C0 land in negative octaves rather than wrapping.
func (p Pitch) Octave() int {
	oct := p.semitone / SemitonesPerOctave
	if p.semitone < 0 && p.semitone%SemitonesPerOctave != 0 {
		oct--
	}
	return oct
}

// Transpose returns the pitch shifted by n semitones.
func (p Pitch) Transpose(n int) Pitch {
	return Pitch{semitone: p.semitone + n}
}

// Name renders the pitch as letter + accidental + octave, choosing the
// sharp or flat spelling for the five ambiguous pitch classes.
func (p Pitch) Name(spelling Spelling) string {
	return ClassName(p.Class(), spelling) + strconv.Itoa(p.Octave())
}

// SolfegeName renders the pitch in solfège notation, e.g. "Sol#3".
func (p Pitch) SolfegeName(spelling Spelling) string {
	return SolfegeClassName(p.Class(), spelling) + strconv.Itoa(p.Octave())
}

// Render renders the pitch in the requested notation.
func (p Pitch) Render(notation Notation, spelling Spelling) string {
	if notation == NotationSolfege {
		return p.SolfegeName(spelling)
	}
	return p.Name(spelling)
}

// String renders the pitch with sharp spelling.
func (p Pitch) String() string { return p.Name(SpellingSharps) }

// ClassName renders a pitch class 0-11 as a letter name.
func ClassName(class int, spelling Spelling) string {
	if spelling == SpellingFlats {
		return flatNames[mod12(class)]
	}
	return sharpNames[mod12(class)]
}

// SolfegeClassName renders a pitch class 0-11 as a solfège name.
func SolfegeClassName(class int, spelling Spelling) string {
	if spelling == SpellingFlats {
		return flatSolfege[mod12(class)]
	}
	return sharpSolfege[mod12(class)]
}

func mod12(n int) int {
	return ((n % SemitonesPerOctave) + SemitonesPerOctave) % SemitonesPerOctave
}
