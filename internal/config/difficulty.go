package config

import "math"

// SpeedRamp shortens the gravity interval as the score grows.
// Every Step points (counted up to Cap) take Decrement off the interval
// multiplier, which never drops below Floor.
type SpeedRamp struct {
	Enabled   bool    `yaml:"enabled"`
	Step      int     `yaml:"step"`
	Cap       int     `yaml:"cap"`
	Decrement float64 `yaml:"decrement"`
	Floor     float64 `yaml:"floor"`
}

// Multiplier returns the gravity interval multiplier for a score.
func (r SpeedRamp) Multiplier(score int) float64 {
	if !r.Enabled || r.Step <= 0 {
		return 1.0
	}
	if score < 0 {
		score = 0
	}
	if r.Cap > 0 && score > r.Cap {
		score = r.Cap
	}
	steps := score / r.Step
	return clampF(1.0-float64(steps)*r.Decrement, r.Floor, 1.0)
}

// Interval returns the gravity interval in milliseconds for a score.
func (g GravityConfig) Interval(score int) float64 {
	return g.BaseIntervalMs * g.Ramp.Multiplier(score)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficulty validates a preset name. Empty means normal.
func ParseDifficulty(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// IntervalScaleForPreset returns the base interval scale for a preset.
func IntervalScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 1.5
	case DifficultyHard:
		return 0.6
	default:
		return 1.0
	}
}

// ApplyTetrisPreset modifies the config based on a difficulty preset.
// Fixed keeps the base interval and disables the ramp. The other presets
// scale the interval and leave gravity.ramp.enabled as loaded.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	cfg.Difficulty = preset
	if preset == DifficultyFixed {
		cfg.Gravity.Ramp.Enabled = false
		return
	}
	cfg.Gravity.BaseIntervalMs *= IntervalScaleForPreset(preset)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
