package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/iagovirgilio/vocal-app/infrastructure/presets"
)

// Voice exposes the configured voice-type presets.
type Voice struct {
	voices []presets.Voice
	logger *slog.Logger
}

// NewVoice creates a Voice service over the given presets.
func NewVoice(voices []presets.Voice, logger *slog.Logger) *Voice {
	if logger == nil {
		logger = slog.Default()
	}
	return &Voice{voices: voices, logger: logger}
}

// List returns every configured preset.
func (v *Voice) List(_ context.Context) []presets.Voice {
	out := make([]presets.Voice, len(v.voices))
	copy(out, v.voices)
	return out
}

// Resolve returns the preset with the given name, or ErrUnknownVoice.
func (v *Voice) Resolve(_ context.Context, name string) (presets.Voice, error) {
	voice, ok := presets.Find(v.voices, name)
	if !ok {
		return presets.Voice{}, fmt.Errorf("%w: %q", ErrUnknownVoice, name)
	}
	return voice, nil
}
