// Package config holds the data-source and chart layout settings shared by the
// viewer and the reader CLI.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mcgradyjason/udacity-data-analyst/src/passengers"
	"github.com/mcgradyjason/udacity-data-analyst/src/scene"
)

// Config is the full configuration.
type Config struct {
	Data   DataConfig   `yaml:"data"`
	Layout LayoutConfig `yaml:"layout"`
}

// DataConfig locates the passenger CSV.
type DataConfig struct {
	Path string `yaml:"path"`
}

// LayoutConfig sizes the chart canvas in pixels.
type LayoutConfig struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	Margin       int `yaml:"margin"`
	LegendWidth  int `yaml:"legend_width"`
	LegendHeight int `yaml:"legend_height"`
}

// Default returns the built-in settings.
func Default() *Config {
	l := scene.DefaultLayout()
	return &Config{
		Data: DataConfig{Path: passengers.DefaultPath},
		Layout: LayoutConfig{
			Width:        int(l.Width),
			Height:       int(l.Height),
			Margin:       int(l.Margin),
			LegendWidth:  int(l.LegendWidth),
			LegendHeight: int(l.LegendHeight),
		},
	}
}

// Load reads a YAML file on top of Default. Fields the file omits keep their
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// LoadOrDefault is Load for an optional path: empty means Default.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks that the layout leaves room for a plot.
func (c *Config) Validate() error {
	if c.Data.Path == "" {
		return fmt.Errorf("data.path is required")
	}
	l := c.Layout
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("layout: width and height must be > 0 (got %dx%d)", l.Width, l.Height)
	}
	if l.Margin < 0 || l.LegendWidth < 0 || l.LegendHeight < 0 {
		return fmt.Errorf("layout: margin and legend sizes must be >= 0")
	}
	if l.LegendWidth+l.Margin >= l.Width {
		return fmt.Errorf("layout: legend_width %d leaves no plot area in width %d", l.LegendWidth, l.Width)
	}
	if 2*l.Margin >= l.Height {
		return fmt.Errorf("layout: margin %d leaves no plot area in height %d", l.Margin, l.Height)
	}
	return nil
}

// SceneLayout converts the layout section for scene.Render.
func (c *Config) SceneLayout() scene.Layout {
	return scene.Layout{
		Width:        float64(c.Layout.Width),
		Height:       float64(c.Layout.Height),
		Margin:       float64(c.Layout.Margin),
		LegendWidth:  float64(c.Layout.LegendWidth),
		LegendHeight: float64(c.Layout.LegendHeight),
	}
}
