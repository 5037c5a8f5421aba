// Package config holds the display and animation parameters read by the engine every frame.
//
// The record is plain data: hosts mutate it from their controls (keyboard, file watcher)
// through a Store, and the frame loop takes a snapshot once per frame.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/gridsketch/palette"
)

// ErrNoPath is returned when saving without a destination
var ErrNoPath = errors.New("config path is empty")

// Color is the YAML-friendly form of palette.RGB
type Color struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

// RGB converts to the engine color type
func (c Color) RGB() palette.RGB {
	return palette.RGB{R: c.R, G: c.G, B: c.B}
}

// Config is the parameter record consumed once per frame
type Config struct {
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`
	// CellSizePercent is the cell edge as a percentage of the smaller surface side
	CellSizePercent float64 `yaml:"cell_size_percent"`

	ShowCircle  bool  `yaml:"show_circle"`
	CircleColor Color `yaml:"circle_color"`

	CrosshairOpacityMin     float64 `yaml:"crosshair_opacity_min"`
	CrosshairOpacityMax     float64 `yaml:"crosshair_opacity_max"`
	CrosshairAnimationSpeed float64 `yaml:"crosshair_animation_speed"`
	CrosshairSpeedVariation float64 `yaml:"crosshair_speed_variation"`
}

// Default returns the control panel's initial values
func Default() Config {
	return Config{
		Columns:                 40,
		Rows:                    24,
		CellSizePercent:         3,
		ShowCircle:              true,
		CircleColor:             Color{R: 100, G: 150, B: 255},
		CrosshairOpacityMin:     0.3,
		CrosshairOpacityMax:     1.0,
		CrosshairAnimationSpeed: 5.0,
		CrosshairSpeedVariation: 0.3,
	}
}

// Load reads a YAML config on top of the defaults
// A missing file is not an error and yields the defaults
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as YAML, creating parent directories
func Save(path string, cfg Config) error {
	if path == "" {
		return ErrNoPath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
