package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tatjam/direct-rf/internal/render"
)

const (
	DefaultWidth   = 100
	DefaultHeight  = 30
	DefaultPalette = "viridis"
	DefaultScale   = "db"
	DefaultStyle   = "line"
)

// Config holds plot defaults that CLI flags override.
type Config struct {
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Palette string `yaml:"palette"`
	Scale   string `yaml:"scale"`
	Style   string `yaml:"style"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		Palette: DefaultPalette,
		Scale:   DefaultScale,
		Style:   DefaultStyle,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// RenderOptions maps the config to plot geometry and colormap.
func (c *Config) RenderOptions() render.Options {
	opts := render.DefaultOptions()
	if c.Width > 0 {
		opts.Width = c.Width
	}
	if c.Height > 0 {
		opts.Height = c.Height
	}
	opts.Palette = render.GetPalette(c.Palette)
	return opts
}
