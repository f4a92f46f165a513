// Package main is the entry point for the vocalapp CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iagovirgilio/vocal-app/internal/config"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vocalapp",
		Short: "Vocal range and key transposition calculator",
		Long:  `Vocalapp suggests the best key to sing a song in, given the singer's comfortable range and the song's range in its original key.`,
	}

	cmd.AddCommand(serveCmd())
	cmd.AddCommand(suggestCmd())
	cmd.AddCommand(versionCmd())

	return cmd
}

// loadConfig loads configuration from .env file and environment variables.
func loadConfig(envFile string) (config.AppConfig, error) {
	cfg, err := config.LoadConfig(envFile)
	if err != nil {
		return config.AppConfig{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
