// Package output handles file naming and writing for converted documents.
// URL sources are named after the domain and path (e.g. example_com_docs.json),
// file sources after the file, stdin after "document".
package output

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// StdinName is the base name used for documents read from stdin.
const StdinName = "document"

// Writer writes rendered output to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	// Ensure the output directory exists.
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir}, nil
}

// Write stores data for the given source and returns the written path.
func (w *Writer) Write(source string, data []byte, ext string) (string, error) {
	path := filepath.Join(w.OutputDir, NameFor(source)+ext)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// WriteTo copies data to out, for stdout output.
func WriteTo(out io.Writer, data []byte) error {
	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// NameFor derives a flat base filename from a source.
// Example: https://example.com/docs/intro → example_com_docs_intro
// Example: pages/about.html → about
func NameFor(source string) string {
	if source == "" || source == "-" {
		return StdinName
	}
	if IsURL(source) {
		return filenameFromURL(source)
	}
	base := filepath.Base(source)
	return sanitize(strings.TrimSuffix(base, filepath.Ext(base)))
}

// IsURL reports whether source is an http(s) URL.
func IsURL(source string) bool {
	parsed, err := url.Parse(source)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

func filenameFromURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		// Fallback: sanitize the raw string.
		return sanitize(rawURL)
	}

	parts := []string{sanitize(parsed.Host)}
	path := strings.Trim(parsed.Path, "/")
	if path != "" {
		for _, seg := range strings.Split(path, "/") {
			parts = append(parts, sanitize(strings.TrimSuffix(seg, filepath.Ext(seg))))
		}
	}
	return strings.Join(parts, "_")
}

// sanitize replaces non-alphanumeric characters with underscores.
func sanitize(s string) string {
	var b strings.Builder
	for _, ch := range s {
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') {
			b.WriteRune(ch)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}
