package main

import (
	"fmt"

	"github.com/spf13/cobra"

	vocal "github.com/iagovirgilio/vocal-app"
	"github.com/iagovirgilio/vocal-app/application/service"
	"github.com/iagovirgilio/vocal-app/domain/pitch"
	"github.com/iagovirgilio/vocal-app/internal/log"
)

func suggestCmd() *cobra.Command {
	var (
		envFile    string
		singerLow  string
		singerHigh string
		voiceName  string
		songLow    string
		songHigh   string
		songKey    string
		songMode   string
		margin     int
		flats      bool
		solfege    bool
	)

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest the best key for a song",
		Long: `Suggest the best key for a song given the singer's comfortable
range and the song's range in its original key.

The singer's range comes either from --singer-low and --singer-high or
from a named voice preset via --voice.`,
		Example: `  vocalapp suggest --singer-low C3 --singer-high C5 --song-low G3 --song-high D4 --key C
  vocalapp suggest --voice tenor --song-low G3 --song-high D4 --key Am --mode minor --flats`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(envFile)
			if err != nil {
				return err
			}
			logger := log.NewLogger(cfg)

			client, err := vocal.New(
				vocal.WithLogger(logger.Slog()),
				vocal.WithVoicePresetsFile(cfg.VoicePresetsFile()),
			)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if voiceName != "" {
				voice, err := client.Voices.Resolve(ctx, voiceName)
				if err != nil {
					return err
				}
				singerLow, singerHigh = voice.Low(), voice.High()
			}

			if !cmd.Flags().Changed("margin") {
				margin = cfg.ComfortMargin()
			}
			if !cmd.Flags().Changed("flats") {
				flats = cfg.PreferFlats()
			}

			notation := pitch.NotationLetter
			if solfege {
				notation = pitch.NotationSolfege
			}

			suggestion, err := client.Transpositions.Compute(ctx, service.ComputeParams{
				SingerLow:     singerLow,
				SingerHigh:    singerHigh,
				SongLow:       songLow,
				SongHigh:      songHigh,
				SongRoot:      songKey,
				SongMode:      songMode,
				ComfortMargin: margin,
				PreferFlats:   flats,
				Notation:      notation,
			})
			if err != nil {
				return err
			}

			printSuggestion(cmd, suggestion)
			return nil
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.Flags().StringVar(&singerLow, "singer-low", "", "Singer's lowest comfortable note, e.g. C3")
	cmd.Flags().StringVar(&singerHigh, "singer-high", "", "Singer's highest comfortable note, e.g. C5")
	cmd.Flags().StringVar(&voiceName, "voice", "", "Voice-type preset for the singer's range, e.g. tenor")
	cmd.Flags().StringVar(&songLow, "song-low", "", "Song's lowest note in the original key")
	cmd.Flags().StringVar(&songHigh, "song-high", "", "Song's highest note in the original key")
	cmd.Flags().StringVar(&songKey, "key", "", "Song's original key root, e.g. C or F#")
	cmd.Flags().StringVar(&songMode, "mode", "major", "Song's mode: major or minor")
	cmd.Flags().IntVar(&margin, "margin", 0, "Comfort margin in semitones")
	cmd.Flags().BoolVar(&flats, "flats", false, "Spell notes and keys with flats")
	cmd.Flags().BoolVar(&solfege, "solfege", false, "Print notes with solfège names")

	_ = cmd.MarkFlagRequired("song-low")
	_ = cmd.MarkFlagRequired("song-high")
	_ = cmd.MarkFlagRequired("key")

	return cmd
}

func printSuggestion(cmd *cobra.Command, s service.Suggestion) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Suggested key:    %s (%s)\n", s.SuggestedKey(), s.LocalizedKey())
	fmt.Fprintf(out, "Transposition:    %s\n", s.ShiftDescription())
	fmt.Fprintf(out, "Transposed range: %s-%s\n", s.TransposedLow(), s.TransposedHigh())
	fmt.Fprintf(out, "Margins:          %d below, %d above\n", s.MarginBelow(), s.MarginAbove())

	if !s.Fits() {
		fmt.Fprintln(out, "Warning: the song does not fit the singer's comfortable range in any key.")
		return
	}

	if alts := s.Alternatives(); len(alts) > 0 {
		fmt.Fprintln(out, "Alternatives:")
		for _, a := range alts {
			fmt.Fprintf(out, "  %+d semitones: %s (%s-%s)\n", a.Shift(), a.Key(), a.Low(), a.High())
		}
	}
}
