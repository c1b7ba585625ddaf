package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/kirksw/ezorg/internal/config"
)

var rootCmd = &cobra.Command{
	Use:           "ezorg",
	Short:         "List a GitHub organization's repositories",
	Long:          `ezorg reads GitHub organization metadata and lists its repositories, optionally filtered by license, with an on-disk cache and an interactive browser.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = newLogger(verbose)
		return config.LoadEnv(envPath)
	},
}

var (
	verbose    bool
	configPath string
	envPath    string

	logger = slog.New(slog.DiscardHandler)
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file path (default: ./config.toml, ~/.config/ezorg/config.toml, or ~/.ezorg.toml)")
	rootCmd.PersistentFlags().StringVar(&envPath, "env-file", ".env", "dotenv file loaded before reading config")
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
