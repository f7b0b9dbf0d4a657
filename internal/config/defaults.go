package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the hardcoded default configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Arena: ArenaConfig{
			Width:  12,
			Height: 20,
		},
		Gravity: GravityConfig{
			BaseIntervalMs: 1000,
			Ramp: SpeedRamp{
				Enabled:   true,
				Step:      30,
				Cap:       300,
				Decrement: 0.1,
				Floor:     0.1,
			},
		},
		Scoring: ScoringConfig{
			LinePoints: 10,
		},
		Controls: ControlsConfig{
			RepeatDelayTicks:  10,
			RepeatRateTicks:   3,
			SoftDropRateTicks: 3,
		},
		Gamepad: GamepadConfig{
			Deadzone: 0.03,
			Maximize: 0.97,
			Bindings: DefaultBindings(),
		},
		Difficulty: DifficultyNormal,
	}
}

// DefaultBindings returns the standard control -> action bindings.
// An axis name with a "-" or "+" suffix binds one half of the stick.
func DefaultBindings() map[string]string {
	return map[string]string{
		"dpad_left":          "left",
		"dpad_right":         "right",
		"dpad_down":          "down",
		"dpad_up":            "drop",
		"face_1":             "rotate_cw",
		"face_2":             "rotate_ccw",
		"face_3":             "drop",
		"left_top_shoulder":  "rotate_ccw",
		"right_top_shoulder": "rotate_cw",
		"start_forward":      "pause",
		"select_back":        "toggle_mode",
		"home":               "restart",
		"left_stick_x-":      "left",
		"left_stick_x+":      "right",
		"left_stick_y+":      "down",
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "tetris", "tetris_fill":
		return defaultTetrisYAML
	default:
		return nil
	}
}
