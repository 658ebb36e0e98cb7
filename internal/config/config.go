// Package config provides YAML-based user configuration for the frontend,
// color mode and logging. Game rules (board size, win tile, spawn odds)
// are fixed and deliberately not configurable.
package config

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

// ErrInvalid is returned by Validate for unknown option values.
var ErrInvalid = errors.New("config: invalid value")

// Frontend selects which game loop runs.
type Frontend string

const (
	FrontendAuto Frontend = "auto"
	FrontendTUI  Frontend = "tui"
	FrontendLine Frontend = "line"
)

// ColorMode selects whether tiles are colorized.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Config is the top-level user configuration.
type Config struct {
	Frontend Frontend  `yaml:"frontend"`
	Color    ColorMode `yaml:"color"`
	Log      LogConfig `yaml:"log"`
}

// LogConfig defines logging parameters.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Empty = frontend-dependent default
}

// Validate checks enum fields and the log level.
func (c Config) Validate() error {
	switch c.Frontend {
	case FrontendAuto, FrontendTUI, FrontendLine:
	default:
		return fmt.Errorf("%w: frontend %q (want auto, tui or line)", ErrInvalid, c.Frontend)
	}

	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: color %q (want auto, always or never)", ErrInvalid, c.Color)
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.Log.Level)
	}

	return nil
}

// ResolveColor turns the color mode into a concrete decision.
// Auto enables color only on a terminal when NO_COLOR is not set.
func (c Config) ResolveColor(isTTY, noColorEnv bool) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isTTY && !noColorEnv
	}
}

// ResolveFrontend turns the frontend option into a concrete frontend ID.
// Auto picks the TUI only when both stdin and stdout are terminals.
func (c Config) ResolveFrontend(isTTY bool) Frontend {
	if c.Frontend == FrontendAuto {
		if isTTY {
			return FrontendTUI
		}
		return FrontendLine
	}
	return c.Frontend
}
