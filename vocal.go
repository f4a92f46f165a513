// Package vocal provides a library for finding the best key to sing a
// song in, given the singer's comfortable range and the song's range.
//
// Basic usage:
//
//	client, err := vocal.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	suggestion, err := client.Transpositions.Compute(ctx, service.ComputeParams{
//	    SingerLow:     "C3",
//	    SingerHigh:    "C5",
//	    SongLow:       "G3",
//	    SongHigh:      "D4",
//	    SongRoot:      "C",
//	    SongMode:      "major",
//	    ComfortMargin: 2,
//	})
//
//	fmt.Println(suggestion.SuggestedKey(), suggestion.ShiftDescription())
package vocal

import (
	"log/slog"

	"github.com/iagovirgilio/vocal-app/application/service"
	"github.com/iagovirgilio/vocal-app/infrastructure/presets"
)

// Client is the main entry point for the vocal library.
//
// Access operations via struct fields:
//
//	client.Transpositions.Compute(ctx, params)
//	client.Voices.List(ctx)
type Client struct {
	Transpositions *service.Transposition
	Voices         *service.Voice

	logger        *slog.Logger
	defaultMargin int
	preferFlats   bool
}

// New creates a Client.
func New(opts ...Option) (*Client, error) {
	cfg := newClientConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	voices, err := presets.Load(cfg.presetsFile)
	if err != nil {
		return nil, err
	}

	return &Client{
		Transpositions: service.NewTransposition(cfg.logger),
		Voices:         service.NewVoice(voices, cfg.logger),
		logger:         cfg.logger,
		defaultMargin:  cfg.defaultMargin,
		preferFlats:    cfg.preferFlats,
	}, nil
}

// Logger returns the client's logger.
func (c *Client) Logger() *slog.Logger { return c.logger }

// DefaultComfortMargin returns the margin applied when a request does not
// specify one.
func (c *Client) DefaultComfortMargin() int { return c.defaultMargin }

// PreferFlats returns the default spelling preference.
func (c *Client) PreferFlats() bool { return c.preferFlats }
