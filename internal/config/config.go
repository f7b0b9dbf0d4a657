// Package config provides YAML-based game configuration loading and
// difficulty management for padtris.
package config

import (
	"errors"
	"fmt"
)

// TetrisConfig contains all configuration for the falling-block game.
type TetrisConfig struct {
	Arena      ArenaConfig      `yaml:"arena"`
	Gravity    GravityConfig    `yaml:"gravity"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Controls   ControlsConfig   `yaml:"controls"`
	Gamepad    GamepadConfig    `yaml:"gamepad"`
	Difficulty DifficultyPreset `yaml:"difficulty"`
}

// ArenaConfig defines the playfield size in cells.
type ArenaConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GravityConfig defines how fast pieces fall.
type GravityConfig struct {
	BaseIntervalMs float64   `yaml:"base_interval_ms"`
	Ramp           SpeedRamp `yaml:"ramp"`
}

// ScoringConfig defines the line-clear award. The first row of a single drop
// is worth LinePoints, each further row doubles the previous award.
type ScoringConfig struct {
	LinePoints int `yaml:"line_points"`
}

// ControlsConfig defines auto-repeat timing for held controls, in ticks.
type ControlsConfig struct {
	RepeatDelayTicks  int `yaml:"repeat_delay_ticks"`   // ticks before a held shift repeats
	RepeatRateTicks   int `yaml:"repeat_rate_ticks"`    // ticks between repeated shifts
	SoftDropRateTicks int `yaml:"soft_drop_rate_ticks"` // ticks between held soft drops
}

// GamepadConfig defines the input filter and the control-to-action bindings.
// Binding keys are standard control names (e.g. "dpad_left", "face_1"),
// values are action names (e.g. "left", "rotate_cw").
type GamepadConfig struct {
	Deadzone float64           `yaml:"deadzone"`
	Maximize float64           `yaml:"maximize"`
	Bindings map[string]string `yaml:"bindings"`
}

// Validate reports the first setting that would break the simulation.
func (c TetrisConfig) Validate() error {
	var errs []error
	if c.Arena.Width < 4 || c.Arena.Height < 4 {
		errs = append(errs, fmt.Errorf("arena must be at least 4x4, got %dx%d", c.Arena.Width, c.Arena.Height))
	}
	if c.Gravity.BaseIntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("gravity.base_interval_ms must be positive, got %v", c.Gravity.BaseIntervalMs))
	}
	if c.Gravity.Ramp.Floor <= 0 || c.Gravity.Ramp.Floor > 1 {
		errs = append(errs, fmt.Errorf("gravity.ramp.floor must be in (0, 1], got %v", c.Gravity.Ramp.Floor))
	}
	if c.Scoring.LinePoints < 0 {
		errs = append(errs, fmt.Errorf("scoring.line_points must not be negative, got %d", c.Scoring.LinePoints))
	}
	if c.Gamepad.Deadzone < 0 || c.Gamepad.Maximize > 1 || c.Gamepad.Deadzone >= c.Gamepad.Maximize {
		errs = append(errs, fmt.Errorf("gamepad: need 0 <= deadzone < maximize <= 1, got %v/%v", c.Gamepad.Deadzone, c.Gamepad.Maximize))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid tetris config: %w", errors.Join(errs...))
	}
	return nil
}
