// Package config holds the sketchpad settings, loaded from an optional
// YAML file over built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the top-level sketchpad configuration.
type Config struct {
	Title       string   `yaml:"title"`
	CanvasSize  int      `yaml:"canvas_size"`
	ExportScale float64  `yaml:"export_scale"`
	ExportName  string   `yaml:"export_name"`
	ThinWidth   float64  `yaml:"thin_width"`
	ThickWidth  float64  `yaml:"thick_width"`
	Color       string   `yaml:"color"`
	Stickers    []string `yaml:"stickers"`
	FontPath    string   `yaml:"font_path"`       // empty: Go Regular
	EmojiFont   string   `yaml:"emoji_font_path"` // optional fallback for stickers
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Title:       "Draw",
		CanvasSize:  256,
		ExportScale: 4,
		ExportName:  "drawing.png",
		ThinWidth:   1,
		ThickWidth:  10,
		Color:       "#000000",
		Stickers:    []string{"🐻", "🐱", "🦄"},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks that sizes are positive and the colour is #rrggbb.
func (c *Config) Validate() error {
	if c.CanvasSize <= 0 {
		return errors.New("canvas_size must be > 0")
	}
	if c.ExportScale <= 0 {
		return errors.New("export_scale must be > 0")
	}
	if c.ThinWidth <= 0 || c.ThickWidth <= 0 {
		return errors.New("marker widths must be > 0")
	}
	if !IsHexColor(c.Color) {
		return fmt.Errorf("color %q is not #rrggbb", c.Color)
	}
	for i, s := range c.Stickers {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("stickers[%d] is empty", i)
		}
	}
	if c.ExportName == "" {
		c.ExportName = "drawing.png"
	}
	return nil
}

// IsHexColor reports whether s has the form #rrggbb.
func IsHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
