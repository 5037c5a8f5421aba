package config

import (
	"github.com/lixenwraith/gridsketch/parameter"
	"github.com/lixenwraith/gridsketch/vmath"
)

// Slider-style adjustments for hosts without a control panel
// Each clamps to the bounds the UI sliders enforce

func StepColumns(d int) func(*Config) {
	return func(c *Config) {
		c.Columns = clampInt(c.Columns+d, parameter.ColumnsMin, parameter.ColumnsMax)
	}
}

func StepRows(d int) func(*Config) {
	return func(c *Config) {
		c.Rows = clampInt(c.Rows+d, parameter.RowsMin, parameter.RowsMax)
	}
}

func StepCellSize(d float64) func(*Config) {
	return func(c *Config) {
		c.CellSizePercent = vmath.Clamp(c.CellSizePercent+d, parameter.CellSizeMin, parameter.CellSizeMax)
	}
}

func StepCrosshairSpeed(d float64) func(*Config) {
	return func(c *Config) {
		c.CrosshairAnimationSpeed = vmath.Clamp(c.CrosshairAnimationSpeed+d, 0, parameter.CrosshairSpeedMax)
	}
}

func ToggleCircle() func(*Config) {
	return func(c *Config) {
		c.ShowCircle = !c.ShowCircle
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
