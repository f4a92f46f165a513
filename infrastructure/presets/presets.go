// Package presets provides named voice-type ranges so callers can say
// "tenor" instead of spelling out two notes.
package presets

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/iagovirgilio/vocal-app/domain/pitch"
)

// Voice is a named vocal range preset.
type Voice struct {
	name string
	low  string
	high string
}

// New creates a Voice preset.
func New(name, low, high string) Voice {
	return Voice{name: name, low: low, high: high}
}

// Name returns the preset name, e.g. "tenor".
func (v Voice) Name() string { return v.name }

// Low returns the note name of the lowest comfortable pitch.
func (v Voice) Low() string { return v.low }

// High returns the note name of the highest comfortable pitch.
func (v Voice) High() string { return v.high }

// Range parses the preset into a pitch range.
func (v Voice) Range() (pitch.Range, error) {
	return pitch.ParseRange(v.low, v.high)
}

// Builtin returns the standard voice classifications.
func Builtin() []Voice {
	return []Voice{
		New("soprano", "C4", "C6"),
		New("mezzo-soprano", "A3", "A5"),
		New("alto", "F3", "F5"),
		New("tenor", "C3", "C5"),
		New("baritone", "G2", "G4"),
		New("bass", "E2", "E4"),
	}
}

// fileVoice is the YAML shape of one preset entry.
type fileVoice struct {
	Low  string `yaml:"low"`
	High string `yaml:"high"`
}

// Load returns the builtin presets merged with overrides from a YAML file.
// The file maps preset names to low/high note names:
//
//	tenor:
//	  low: B2
//	  high: B4
//	contralto:
//	  low: E3
//	  high: E5
//
// Entries override builtins of the same name (case-insensitive); new names
// are appended in alphabetical order. An empty path returns the builtins.
func Load(path string) ([]Voice, error) {
	voices := Builtin()
	if path == "" {
		return voices, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read voice presets: %w", err)
	}

	var entries map[string]fileVoice
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse voice presets: %w", err)
	}

	var added []Voice
	for name, entry := range entries {
		v := New(strings.ToLower(strings.TrimSpace(name)), entry.Low, entry.High)
		if _, err := v.Range(); err != nil {
			return nil, fmt.Errorf("voice preset %q: %w", name, err)
		}
		if i := indexOf(voices, v.Name()); i >= 0 {
			voices[i] = v
		} else {
			added = append(added, v)
		}
	}

	sort.Slice(added, func(i, j int) bool { return added[i].Name() < added[j].Name() })
	return append(voices, added...), nil
}

// Find returns the preset with the given name, case-insensitively.
func Find(voices []Voice, name string) (Voice, bool) {
	i := indexOf(voices, strings.ToLower(strings.TrimSpace(name)))
	if i < 0 {
		return Voice{}, false
	}
	return voices[i], true
}

func indexOf(voices []Voice, name string) int {
	for i, v := range voices {
		if v.Name() == name {
			return i
		}
	}
	return -1
}
