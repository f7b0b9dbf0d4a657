package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := load("missing-file.yaml", "", defaultTetrisYAML, DefaultTetrisConfig)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	def := DefaultTetrisConfig()

	if cfg.Arena != def.Arena {
		t.Errorf("arena = %+v, expected %+v", cfg.Arena, def.Arena)
	}
	if cfg.Gravity != def.Gravity {
		t.Errorf("gravity = %+v, expected %+v", cfg.Gravity, def.Gravity)
	}
	if cfg.Scoring != def.Scoring || cfg.Controls != def.Controls {
		t.Error("scoring/controls should match hardcoded defaults")
	}
	if len(cfg.Gamepad.Bindings) != len(def.Gamepad.Bindings) {
		t.Errorf("bindings = %d entries, expected %d", len(cfg.Gamepad.Bindings), len(def.Gamepad.Bindings))
	}
	for k, v := range def.Gamepad.Bindings {
		if cfg.Gamepad.Bindings[k] != v {
			t.Errorf("binding %s = %q, expected %q", k, cfg.Gamepad.Bindings[k], v)
		}
	}
}

func TestLoadTetrisCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	data := []byte("arena:\n  width: 10\n  height: 22\ndifficulty: fixed\ngamepad:\n  bindings:\n    face_4: restart\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTetris(path)
	if err != nil {
		t.Fatalf("LoadTetris: %v", err)
	}
	if cfg.Arena.Width != 10 || cfg.Arena.Height != 22 {
		t.Errorf("arena = %+v, expected 10x22", cfg.Arena)
	}
	if cfg.Gravity.BaseIntervalMs != 1000 {
		t.Errorf("unset values should keep defaults, got interval %v", cfg.Gravity.BaseIntervalMs)
	}
	if cfg.Gravity.Ramp.Enabled {
		t.Error("fixed difficulty should disable the ramp")
	}
	if cfg.Gamepad.Bindings["face_4"] != "restart" || cfg.Gamepad.Bindings["face_1"] != "rotate_cw" {
		t.Errorf("bindings should merge over defaults, got %v", cfg.Gamepad.Bindings)
	}
}

func TestLoadTetrisPresetOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	if err := os.WriteFile(path, []byte("difficulty: fixed\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTetrisPreset(path, DifficultyHard)
	if err != nil {
		t.Fatalf("LoadTetrisPreset: %v", err)
	}
	if cfg.Difficulty != DifficultyHard {
		t.Errorf("difficulty = %q, expected hard", cfg.Difficulty)
	}
	if !cfg.Gravity.Ramp.Enabled {
		t.Error("hard difficulty keeps the ramp")
	}
	if cfg.Gravity.BaseIntervalMs != 600 {
		t.Errorf("interval = %v, expected a single 0.6 scale", cfg.Gravity.BaseIntervalMs)
	}
}

func TestLoadTetrisErrors(t *testing.T) {
	if _, err := LoadTetris(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing custom path should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(bad, []byte("arena: [1, 2"), 0o644)
	if _, err := LoadTetris(bad); err == nil {
		t.Error("malformed YAML should fail")
	}

	small := filepath.Join(t.TempDir(), "small.yaml")
	os.WriteFile(small, []byte("arena:\n  width: 2\n  height: 2\n"), 0o644)
	if _, err := LoadTetris(small); err == nil {
		t.Error("tiny arena should fail validation")
	}

	unknown := filepath.Join(t.TempDir(), "unknown.yaml")
	os.WriteFile(unknown, []byte("difficulty: insane\n"), 0o644)
	if _, err := LoadTetris(unknown); err == nil {
		t.Error("unknown difficulty should fail")
	}
}

func TestSpeedRampMultiplier(t *testing.T) {
	ramp := DefaultTetrisConfig().Gravity.Ramp

	tests := []struct {
		score int
		want  float64
	}{
		{0, 1.0},
		{29, 1.0},
		{30, 0.9},
		{150, 0.5},
		{270, 0.1},
		{300, 0.1},
		{5000, 0.1},
	}
	for _, tt := range tests {
		got := ramp.Multiplier(tt.score)
		if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("Multiplier(%d) = %v, expected %v", tt.score, got, tt.want)
		}
	}

	ramp.Enabled = false
	if ramp.Multiplier(300) != 1.0 {
		t.Error("disabled ramp should keep the base interval")
	}
}

func TestApplyTetrisPreset(t *testing.T) {
	cfg := DefaultTetrisConfig()
	ApplyTetrisPreset(&cfg, DifficultyHard)
	if cfg.Gravity.BaseIntervalMs != 600 {
		t.Errorf("hard interval = %v, expected 600", cfg.Gravity.BaseIntervalMs)
	}

	cfg = DefaultTetrisConfig()
	ApplyTetrisPreset(&cfg, DifficultyEasy)
	if cfg.Gravity.BaseIntervalMs != 1500 {
		t.Errorf("easy interval = %v, expected 1500", cfg.Gravity.BaseIntervalMs)
	}

	if _, ok := ParseDifficulty("medium"); ok {
		t.Error("ParseDifficulty should reject unknown presets")
	}
	if p, ok := ParseDifficulty(""); !ok || p != DifficultyNormal {
		t.Error("empty difficulty should mean normal")
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultTetrisConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}

	cfg.Gamepad.Deadzone = 0.99
	if err := cfg.Validate(); err == nil {
		t.Error("deadzone above maximize should fail")
	}
}

func TestLoadTetrisRampDisabledByFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	if err := os.WriteFile(path, []byte("gravity:\n  ramp:\n    enabled: false\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, preset := range []DifficultyPreset{"", DifficultyEasy, DifficultyHard} {
		cfg, err := LoadTetrisPreset(path, preset)
		if err != nil {
			t.Fatalf("LoadTetrisPreset(%q): %v", preset, err)
		}
		if cfg.Gravity.Ramp.Enabled {
			t.Errorf("preset %q re-enabled the ramp", preset)
		}
		if m := cfg.Gravity.Ramp.Multiplier(150); m != 1.0 {
			t.Errorf("preset %q: multiplier(150) = %v, expected 1", preset, m)
		}
	}
}

func TestGetDefaultYAML(t *testing.T) {
	for _, id := range []string{"tetris", "tetris_fill"} {
		if len(GetDefaultYAML(id)) == 0 {
			t.Errorf("GetDefaultYAML(%q) is empty", id)
		}
	}
	if GetDefaultYAML("snake") != nil {
		t.Error("unknown game should have no default YAML")
	}
}
