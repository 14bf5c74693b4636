// Package config implements the §4.9 Configuration component: typed
// startup options for cell calibration, zoom bounds, and theme selection.
// Grounded on the teacher's constructor-with-defaults idiom
// (cli.Options / Terminal.New(opts Options)) rather than a config-file
// library — the surface here is small enough that a plain struct with an
// ApplyDefaults method is the idiomatic choice.
package config

import "github.com/inkwell-dev/pdfgrid/theme"

// Config holds the startup options for the viewer.
type Config struct {
	// CellWidth and CellHeight are page units per monospace cell, the
	// calibration point pinned in spec §9.
	CellWidth, CellHeight float64

	// MinZoom/MaxZoom/ZoomStep bound the viewer's UI zoom multiplier
	// (spec §4.6: clamp 0.8x-1.2x with a 1.05 step).
	MinZoom, MaxZoom, ZoomStep float64

	DefaultRowWidth int

	ScrollbackVisibleHeight int

	Theme theme.Theme

	ExportLineNumbers bool
}

// ApplyDefaults fills any zero-valued field with its default, returning the
// completed Config. Safe to call on an already-populated Config: it never
// overwrites a non-zero field.
func (c Config) ApplyDefaults() Config {
	if c.CellWidth == 0 {
		c.CellWidth = 6.0
	}
	if c.CellHeight == 0 {
		c.CellHeight = 12.0
	}
	if c.MinZoom == 0 {
		c.MinZoom = 0.8
	}
	if c.MaxZoom == 0 {
		c.MaxZoom = 1.2
	}
	if c.ZoomStep == 0 {
		c.ZoomStep = 1.05
	}
	if c.DefaultRowWidth == 0 {
		c.DefaultRowWidth = 80
	}
	if c.ScrollbackVisibleHeight == 0 {
		c.ScrollbackVisibleHeight = 10
	}
	if c.Theme.Name == "" {
		c.Theme = theme.Default()
	}
	return c
}
