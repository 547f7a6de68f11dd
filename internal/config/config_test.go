package config

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Lattice != "square" {
		t.Errorf("expected lattice square, got %s", cfg.Lattice)
	}
	if cfg.Path.N <= 0 {
		t.Error("path.n should be positive")
	}
	if cfg.DOS.Steps <= 0 {
		t.Error("dos.steps should be positive")
	}
	if cfg.Grid.Enabled() {
		t.Error("grid should be off by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	cfg := DefaultConfig()
	cfg.Lattice = "dice"
	cfg.Path = PathConfig{N: 42, Points: "GKMG"}
	cfg.DOS.Singularity = true
	cfg.Grid = GridConfig{N1: 8, N2: 6}
	cfg.Output.Format = "json"
	cfg.Output.Dir = "out"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if *got != *cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", *got, *cfg)
	}
}

func TestParseFillsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("lattice: triangular\npath:\n  n: 7\n"))
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Lattice != "triangular" || cfg.Path.N != 7 {
		t.Errorf("unexpected values %+v", cfg)
	}
	if cfg.DOS.Steps != DefaultEnergySteps {
		t.Errorf("expected default steps %d, got %d", DefaultEnergySteps, cfg.DOS.Steps)
	}
	if cfg.Output.Format != DefaultFormat {
		t.Errorf("expected default format, got %q", cfg.Output.Format)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty lattice", func(c *Config) { c.Lattice = "" }},
		{"zero n", func(c *Config) { c.Path.N = 0 }},
		{"zero steps", func(c *Config) { c.DOS.Steps = 0 }},
		{"negative grid", func(c *Config) { c.Grid.N1 = -1 }},
		{"bad format", func(c *Config) { c.Output.Format = "xml" }},
		{"zero plot", func(c *Config) { c.Output.Width = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	if _, err := Parse([]byte("dos:\n  steps: -3\n")); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
	if _, err := Parse([]byte("path: [")); err == nil {
		t.Error("expected yaml error")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("square", "vanhove")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if !cfg.DOS.Singularity {
		t.Error("expected singularity on")
	}

	cfg.Path.N = 1
	if again := GetPreset("square", "vanhove"); again.Path.N == 1 {
		t.Error("GetPreset returned a shared value")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("square", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "default"); cfg != nil {
		t.Error("expected nil for nonexistent lattice")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("dice")
	want := []string{"default", "flatband", "grid"}
	if len(presets) != len(want) {
		t.Fatalf("got %v, want %v", presets, want)
	}
	for i := range want {
		if presets[i] != want[i] {
			t.Errorf("presets[%d] = %q, want %q", i, presets[i], want[i])
		}
	}

	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent lattice")
	}
}

func TestPresetsValidate(t *testing.T) {
	for lattice, set := range Presets {
		for name, cfg := range set {
			if cfg.Lattice != lattice {
				t.Errorf("%s/%s: lattice %q", lattice, name, cfg.Lattice)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("%s/%s: %v", lattice, name, err)
			}
		}
	}
}
