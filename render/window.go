// Package render is the ebiten front end: window configuration, the
// camera and sprite components, and the game adapter that drives the app
// from ebiten's loop.
package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/kiln/config"
	"github.com/plus3/kiln/errs"
)

// WindowConfig describes the host window. Zero min/max values mean
// unconstrained.
type WindowConfig struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	Resizable  bool
	VSync      bool
	MinWidth   int
	MinHeight  int
	MaxWidth   int
	MaxHeight  int
}

// DefaultWindowConfig returns a resizable 1280x720 window with vsync.
func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Title:     "kiln",
		Width:     1280,
		Height:    720,
		Resizable: true,
		VSync:     true,
	}
}

// WindowConfigFrom maps the loaded config file section onto a window
// config.
func WindowConfigFrom(section config.WindowSection) WindowConfig {
	return WindowConfig{
		Title:      section.Title,
		Width:      section.Width,
		Height:     section.Height,
		Fullscreen: section.Fullscreen,
		Resizable:  section.Resizable,
		VSync:      section.VSync,
	}
}

func (c WindowConfig) WithTitle(title string) WindowConfig {
	c.Title = title
	return c
}

func (c WindowConfig) WithSize(width, height int) WindowConfig {
	c.Width = width
	c.Height = height
	return c
}

func (c WindowConfig) WithFullscreen(fullscreen bool) WindowConfig {
	c.Fullscreen = fullscreen
	return c
}

func (c WindowConfig) WithResizable(resizable bool) WindowConfig {
	c.Resizable = resizable
	return c
}

func (c WindowConfig) WithVSync(vsync bool) WindowConfig {
	c.VSync = vsync
	return c
}

func (c WindowConfig) WithMinSize(width, height int) WindowConfig {
	c.MinWidth = width
	c.MinHeight = height
	return c
}

func (c WindowConfig) WithMaxSize(width, height int) WindowConfig {
	c.MaxWidth = width
	c.MaxHeight = height
	return c
}

// Validate rejects configurations ebiten cannot open a window for.
func (c WindowConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errs.Window(fmt.Sprintf("window size must be positive, got %dx%d", c.Width, c.Height))
	}
	if c.MinWidth < 0 || c.MinHeight < 0 || c.MaxWidth < 0 || c.MaxHeight < 0 {
		return errs.Window("window size limits must not be negative")
	}
	if c.MaxWidth > 0 && c.MinWidth > c.MaxWidth {
		return errs.Window("window min width exceeds max width")
	}
	if c.MaxHeight > 0 && c.MinHeight > c.MaxHeight {
		return errs.Window("window min height exceeds max height")
	}
	return nil
}

// Apply validates the config and pushes it onto the ebiten window.
func (c WindowConfig) Apply() error {
	if err := c.Validate(); err != nil {
		return err
	}

	ebiten.SetWindowTitle(c.Title)
	ebiten.SetWindowSize(c.Width, c.Height)
	ebiten.SetFullscreen(c.Fullscreen)
	ebiten.SetVsyncEnabled(c.VSync)

	if c.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}

	if c.MinWidth > 0 || c.MinHeight > 0 || c.MaxWidth > 0 || c.MaxHeight > 0 {
		limit := func(v int) int {
			if v <= 0 {
				return -1
			}
			return v
		}
		ebiten.SetWindowSizeLimits(limit(c.MinWidth), limit(c.MinHeight), limit(c.MaxWidth), limit(c.MaxHeight))
	}

	return nil
}

// WindowState is a world resource mirroring the live window, refreshed
// every layout pass.
type WindowState struct {
	Width       int
	Height      int
	ScaleFactor float64
	Focused     bool
	Minimized   bool
}

// RenderConfig is a world resource holding frame-loop settings.
type RenderConfig struct {
	ClearColor color.RGBA
	TargetTPS  int
}

// DefaultRenderConfig clears to black at 60 ticks per second.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		ClearColor: color.RGBA{A: 255},
		TargetTPS:  60,
	}
}

// ParseHexColor decodes "#rrggbb" or "#rrggbbaa" into an RGBA color.
func ParseHexColor(s string) (color.RGBA, error) {
	var c color.RGBA
	c.A = 255

	var err error
	switch len(s) {
	case 7:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B)
	case 9:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A)
	default:
		return c, errs.Render(fmt.Sprintf("invalid hex color %q", s))
	}
	if err != nil {
		return c, errs.Render(fmt.Sprintf("invalid hex color %q", s))
	}
	return c, nil
}
