// Package config loads the optional YAML configuration file. Command-line
// flags take precedence over anything set here.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	yaml "gopkg.in/yaml.v3"

	"github.com/ditra-consulting/html-to-ricos-converter/core/convert"
	"github.com/ditra-consulting/html-to-ricos-converter/core/fetch"
)

// Config is the file schema. Nested sections map onto flag groups.
type Config struct {
	// Sanitize toggles the allow-list; nil means enabled.
	Sanitize *bool `yaml:"sanitize"`

	Output struct {
		Dir    string `yaml:"dir"`
		Format string `yaml:"format"`
		Pretty bool   `yaml:"pretty"`
	} `yaml:"output"`

	IDs struct {
		Seed int64 `yaml:"seed"`
	} `yaml:"ids"`

	Fetch struct {
		Timeout      time.Duration `yaml:"timeout"`
		MaxBodyBytes int64         `yaml:"maxBodyBytes"`
		UserAgent    string        `yaml:"userAgent"`
	} `yaml:"fetch"`

	Server struct {
		Addr          string `yaml:"addr"`
		MaxBodyBytes  int64  `yaml:"maxBodyBytes"`
		AllowedOrigin string `yaml:"allowedOrigin"`
	} `yaml:"server"`

	Layout struct {
		ColWidthRatio int    `yaml:"colWidthRatio"`
		ColMinWidth   int    `yaml:"colMinWidth"`
		RowHeight     int    `yaml:"rowHeight"`
		BorderColor   string `yaml:"borderColor"`
		BorderWidth   int    `yaml:"borderWidth"`
		BorderStyle   string `yaml:"borderStyle"`
	} `yaml:"layout"`

	Image struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"image"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	c := &Config{}
	c.Output.Format = "json"
	c.Fetch.Timeout = fetch.DefaultTimeout
	c.Fetch.MaxBodyBytes = fetch.DefaultMaxBodyBytes
	c.Fetch.UserAgent = fetch.DefaultUserAgent
	c.Server.Addr = ":8080"
	c.Server.MaxBodyBytes = 2 << 20
	c.Server.AllowedOrigin = "*"
	return c
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// Validate rejects values that cannot work.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "", "json", "markdown", "pdf":
	default:
		return fmt.Errorf("unknown output format %q", c.Output.Format)
	}
	if c.Fetch.MaxBodyBytes < 0 || c.Server.MaxBodyBytes < 0 {
		return errors.New("maxBodyBytes must not be negative")
	}
	return nil
}

// SanitizeEnabled reports whether input should pass the allow-list.
func (c *Config) SanitizeEnabled() bool {
	return c.Sanitize == nil || *c.Sanitize
}

// ConvertOptions turns the layout and image sections into converter options.
// Unset fields keep the converter defaults.
func (c *Config) ConvertOptions() []convert.Option {
	l := convert.DefaultLayout
	if c.Layout.ColWidthRatio > 0 {
		l.ColWidthRatio = c.Layout.ColWidthRatio
	}
	if c.Layout.ColMinWidth > 0 {
		l.ColMinWidth = c.Layout.ColMinWidth
	}
	if c.Layout.RowHeight > 0 {
		l.RowHeight = c.Layout.RowHeight
	}
	if c.Layout.BorderColor != "" {
		l.BorderColor = c.Layout.BorderColor
	}
	if c.Layout.BorderWidth > 0 {
		l.BorderWidth = c.Layout.BorderWidth
	}
	if c.Layout.BorderStyle != "" {
		l.BorderStyle = c.Layout.BorderStyle
	}
	return []convert.Option{
		convert.WithLayout(l),
		convert.WithImageSize(c.Image.Width, c.Image.Height),
	}
}
