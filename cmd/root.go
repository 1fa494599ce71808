// Package cmd implements the CLI commands using Cobra.
package cmd

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ditra-consulting/html-to-ricos-converter/core/config"
	"github.com/ditra-consulting/html-to-ricos-converter/core/extract"
	"github.com/ditra-consulting/html-to-ricos-converter/core/parse"
	"github.com/ditra-consulting/html-to-ricos-converter/core/pipeline"
	"github.com/ditra-consulting/html-to-ricos-converter/core/sanitize"
)

var (
	flagConfig  string
	flagVerbose bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "ricos",
	Short: "ricos: convert HTML into rich-content document JSON",
	Long: `ricos converts sanitized HTML into the rich-content node tree used by the
editor: paragraphs, headings, lists, tables and decorated text runs.

Usage:
  ricos convert <file|url|-> [flags]
  ricos serve [flags]`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogging(flagVerbose)
		c, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		cfg = c
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Verbose logging")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("ricos failed")
		os.Exit(1)
	}
}

func setupLogging(verbose bool) {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// newPipeline builds the conversion pipeline from the loaded configuration.
func newPipeline(c *config.Config, seed int64, sanitizeInput bool) *pipeline.Pipeline {
	p := &pipeline.Pipeline{
		Extractor: extract.New(),
		Parser:    parse.New(),
		NewIDs:    pipeline.RandomIDs(seed),
		Options:   c.ConvertOptions(),
	}
	if sanitizeInput {
		p.Sanitizer = sanitize.New()
	}
	return p
}
