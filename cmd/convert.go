// Package cmd: convert command.
// This is the main command that orchestrates the pipeline:
// read → extract → sanitize → parse → convert → render → write.
//
// It handles flag validation, renderer selection and the choice of source
// (file, URL or stdin).
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ditra-consulting/html-to-ricos-converter/core"
	"github.com/ditra-consulting/html-to-ricos-converter/core/config"
	"github.com/ditra-consulting/html-to-ricos-converter/core/fetch"
	"github.com/ditra-consulting/html-to-ricos-converter/core/output"
	"github.com/ditra-consulting/html-to-ricos-converter/core/render"
)

// Flag variables.
var (
	flagPDF       bool
	flagMarkdown  bool
	flagJSON      bool
	flagPretty    bool
	flagStdout    bool
	flagRaw       bool
	flagSeed      int64
	flagOutputDir string
)

var convertCmd = &cobra.Command{
	Use:   "convert <file|url|->",
	Short: "Convert an HTML file, URL or stdin to a rich-content document",
	Long: `Convert reads HTML, keeps the main content of full pages, sanitizes it to the
supported tags and converts it to rich-content JSON (or a Markdown/PDF preview).

Examples:
  ricos convert page.html
  ricos convert https://example.com --output_dir ./out
  cat fragment.html | ricos convert - --stdout --pretty
  ricos convert page.html --pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	// Output format flags (mutually exclusive).
	convertCmd.Flags().BoolVar(&flagJSON, "json", false, "Output document JSON (default)")
	convertCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Output a Markdown preview")
	convertCmd.Flags().BoolVar(&flagPDF, "pdf", false, "Output a PDF preview")

	convertCmd.Flags().BoolVar(&flagPretty, "pretty", false, "Indent JSON output")
	convertCmd.Flags().BoolVar(&flagStdout, "stdout", false, "Write to stdout instead of a file")
	convertCmd.Flags().BoolVar(&flagRaw, "raw", false, "Skip sanitization (input is already sanitized)")
	convertCmd.Flags().Int64Var(&flagSeed, "seed", 0, "Seed for node identifiers (0 = random)")

	// Output directory.
	convertCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: current directory)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	source := args[0]

	// --- Validate flags ---
	if err := validateFlags(); err != nil {
		return err
	}

	renderer, err := selectRenderer(cfg)
	if err != nil {
		return err
	}

	html, err := readSource(cmd.Context(), source, cmd.InOrStdin())
	if err != nil {
		return err
	}

	seed := cfg.IDs.Seed
	if cmd.Flags().Changed("seed") {
		seed = flagSeed
	}
	p := newPipeline(cfg, seed, cfg.SanitizeEnabled() && !flagRaw)

	res, err := p.Run(source, html)
	if err != nil {
		return fmt.Errorf("convert: %w", err)
	}

	data, err := renderer.Render(res)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if flagStdout {
		return output.WriteTo(cmd.OutOrStdout(), data)
	}

	dir := cfg.Output.Dir
	if flagOutputDir != "" {
		dir = flagOutputDir
	}
	writer, err := output.New(dir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}
	path, err := writer.Write(source, data, renderer.Extension())
	if err != nil {
		return err
	}
	log.Info().Str("path", path).Int("nodes", len(res.Document.Nodes)).Msg("written")
	return nil
}

// readSource loads HTML from a URL, stdin ("-") or a file.
func readSource(ctx context.Context, source string, stdin io.Reader) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	switch {
	case source == "-":
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(b), nil
	case output.IsURL(source):
		fetcher := fetch.New(
			fetch.WithTimeout(cfg.Fetch.Timeout),
			fetch.WithMaxBodyBytes(cfg.Fetch.MaxBodyBytes),
			fetch.WithUserAgent(cfg.Fetch.UserAgent),
		)
		result, err := fetcher.Fetch(ctx, source)
		if err != nil {
			return "", fmt.Errorf("fetch: %w", err)
		}
		return result.HTML, nil
	default:
		b, err := os.ReadFile(source)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", source, err)
		}
		return string(b), nil
	}
}

// validateFlags checks that at most one output format is chosen.
func validateFlags() error {
	formatCount := 0
	if flagPDF {
		formatCount++
	}
	if flagMarkdown {
		formatCount++
	}
	if flagJSON {
		formatCount++
	}
	if formatCount > 1 {
		return fmt.Errorf("only one output format allowed per run (got %d)", formatCount)
	}
	return nil
}

// selectRenderer creates the Renderer chosen by flags, falling back to the
// configured format.
func selectRenderer(c *config.Config) (core.Renderer, error) {
	pretty := flagPretty || c.Output.Pretty
	switch {
	case flagMarkdown:
		return render.NewMarkdownRenderer(), nil
	case flagPDF:
		return render.NewPDFRenderer(), nil
	case flagJSON:
		return render.NewJSONRenderer(pretty), nil
	}

	switch c.Output.Format {
	case "", "json":
		return render.NewJSONRenderer(pretty), nil
	case "markdown":
		return render.NewMarkdownRenderer(), nil
	case "pdf":
		return render.NewPDFRenderer(), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", c.Output.Format)
	}
}
