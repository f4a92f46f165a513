package service

import (
	"errors"

	"github.com/iagovirgilio/vocal-app/domain/key"
	"github.com/iagovirgilio/vocal-app/domain/pitch"
	"github.com/iagovirgilio/vocal-app/domain/transpose"
)

// Domain error kinds re-exported so callers can match them with errors.Is
// without importing every domain package.
var (
	ErrInvalidNoteFormat  = pitch.ErrInvalidNoteFormat
	ErrInvertedRange      = pitch.ErrInvertedRange
	ErrInvalidMode        = key.ErrInvalidMode
	ErrMarginExceedsRange = transpose.ErrMarginExceedsRange
	ErrNegativeMargin     = transpose.ErrNegativeMargin
)

// ErrUnknownVoice indicates a voice preset name with no matching preset.
var ErrUnknownVoice = errors.New("unknown voice type")
