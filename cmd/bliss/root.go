package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose     bool
	datasetFile string
	datasetURL  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bliss",
	Short: "A gloss resolver and symbol composer for Blissymbolics palettes",
	Long: `Bliss resolves short text labels (glosses) to numeric BCI-AV symbol
identifiers and composes them into compound symbols. It can also build
static palette files from 2-D label layouts.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&datasetFile, "dataset-file", "", "Load the gloss dataset from a local JSON file")
	rootCmd.PersistentFlags().StringVar(&datasetURL, "dataset-url", "", "Fetch the gloss dataset from an alternate URL")
}
