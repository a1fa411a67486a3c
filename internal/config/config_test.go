package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	tests := []struct {
		id       string
		hardcode PonponConfig
	}{
		{"ponpon", DefaultPonponConfig()},
		{"ponpon_blitz", DefaultBlitzConfig()},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			cfg, err := Load(tt.id, "")
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if cfg.Board != tt.hardcode.Board {
				t.Errorf("Board = %+v, expected %+v", cfg.Board, tt.hardcode.Board)
			}
			if cfg.Round != tt.hardcode.Round {
				t.Errorf("Round = %+v, expected %+v", cfg.Round, tt.hardcode.Round)
			}
			if cfg.Fever != tt.hardcode.Fever {
				t.Errorf("Fever = %+v, expected %+v", cfg.Fever, tt.hardcode.Fever)
			}
			if cfg.Bonus != tt.hardcode.Bonus {
				t.Errorf("Bonus = %+v, expected %+v", cfg.Bonus, tt.hardcode.Bonus)
			}
			if len(cfg.Scoring.ComboSteps) != len(tt.hardcode.Scoring.ComboSteps) {
				t.Errorf("ComboSteps = %v, expected %v", cfg.Scoring.ComboSteps, tt.hardcode.Scoring.ComboSteps)
			}
		})
	}
}

func TestDefaultsAreValid(t *testing.T) {
	for _, cfg := range []PonponConfig{DefaultPonponConfig(), DefaultBlitzConfig()} {
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate() = %v, expected nil", err)
		}
	}
}

func TestLoadUnknownGame(t *testing.T) {
	if _, err := Load("snake", ""); err == nil {
		t.Error("Load(snake) should fail")
	}
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "round:\n  duration: 45\nfever:\n  enabled: false\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPonpon(path)
	if err != nil {
		t.Fatalf("LoadPonpon() error = %v", err)
	}
	if cfg.RoundDuration() != 45*time.Second {
		t.Errorf("RoundDuration() = %v, expected 45s", cfg.RoundDuration())
	}
	if cfg.Fever.Enabled {
		t.Error("Fever.Enabled = true, expected false")
	}
	// Keys absent from the file keep their defaults
	if cfg.Board.Width != 7 || cfg.Round.Ready != 3 {
		t.Errorf("defaults lost: board %+v, round %+v", cfg.Board, cfg.Round)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadPonpon(filepath.Join(dir, "missing.yaml")); err == nil || !strings.Contains(err.Error(), "failed to read config") {
		t.Errorf("missing file error = %v", err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPonpon(bad); err == nil || !strings.Contains(err.Error(), "failed to parse config") {
		t.Errorf("malformed file error = %v", err)
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("chain:\n  min_length: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPonpon(invalid); err == nil || !strings.Contains(err.Error(), "min_length") {
		t.Errorf("invalid file error = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PonponConfig)
		want   string
	}{
		{"zero width", func(c *PonponConfig) { c.Board.Width = 0 }, "invalid size"},
		{"no tile types", func(c *PonponConfig) { c.Board.TileTypes = 0 }, "tile_types"},
		{"too many tile types", func(c *PonponConfig) { c.Board.TileTypes = 257 }, "tile_types"},
		{"zero duration", func(c *PonponConfig) { c.Round.Duration = 0 }, "duration"},
		{"negative ready", func(c *PonponConfig) { c.Round.Ready = -1 }, "ready"},
		{"short chain", func(c *PonponConfig) { c.Chain.MinLength = 1 }, "min_length"},
		{"zero combo window", func(c *PonponConfig) { c.Combo.Window = 0 }, "window"},
		{"unsorted combo steps", func(c *PonponConfig) {
			c.Scoring.ComboSteps = []ComboStep{{MinCount: 5, Multiplier: 1}, {MinCount: 5, Multiplier: 2}}
		}, "sorted"},
		{"zero fever threshold", func(c *PonponConfig) { c.Fever.Threshold = 0 }, "threshold"},
		{"negative settle", func(c *PonponConfig) { c.Settle.DropMS = -1 }, "settle"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultPonponConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %q, expected mention of %q", err, tt.want)
			}
		})
	}
}

func TestValidateIgnoresDisabledFever(t *testing.T) {
	cfg := DefaultPonponConfig()
	cfg.Fever = FeverConfig{Enabled: false}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, expected nil", err)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"insane", "", true},
	}

	for _, tt := range tests {
		got, err := ParsePreset(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultPonponConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.Level != 0.7 {
		t.Errorf("hard preset = %+v", cfg.Difficulty)
	}

	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable scaling")
	}
}

func TestDifficultyManagerApply(t *testing.T) {
	base := DefaultPonponConfig()

	tests := []struct {
		preset    DifficultyPreset
		window    float64
		threshold int
		tileTypes int
	}{
		{DifficultyEasy, 2.5, 20, 4},
		{DifficultyNormal, 2.0, 30, 5},
		{DifficultyHard, 1.3, 44, 6},
		{DifficultyFixed, 2.0, 30, 5},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := base
			ApplyPreset(&cfg, tt.preset)
			got := NewDifficultyManager(cfg.Difficulty).Apply(cfg)

			if math.Abs(got.Combo.Window-tt.window) > 1e-9 {
				t.Errorf("Combo.Window = %v, expected %v", got.Combo.Window, tt.window)
			}
			if got.Fever.Threshold != tt.threshold {
				t.Errorf("Fever.Threshold = %d, expected %d", got.Fever.Threshold, tt.threshold)
			}
			if got.Board.TileTypes != tt.tileTypes {
				t.Errorf("Board.TileTypes = %d, expected %d", got.Board.TileTypes, tt.tileTypes)
			}
		})
	}
}

func TestDifficultyManagerFloors(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled: true,
		Level:   1.0,
		Scaling: ScalingConfig{ComboWindowReduction: 10, ExtraTileTypes: 1000},
	})

	if got := d.ComboWindow(2); got != minComboWindow {
		t.Errorf("ComboWindow(2) = %v, expected floor %v", got, minComboWindow)
	}
	// A window already below the floor is left alone
	if got := d.ComboWindow(0.25); got != 0.25 {
		t.Errorf("ComboWindow(0.25) = %v, expected 0.25", got)
	}
	if got := d.TileTypes(5); got != maxTileTypes {
		t.Errorf("TileTypes(5) = %d, expected %d", got, maxTileTypes)
	}


	easiest := NewDifficultyManager(DifficultyConfig{
		Enabled: true,
		Level:   -3,
		Scaling: ScalingConfig{FeverThresholdIncrease: 100, ExtraTileTypes: 10},
	})
	if easiest.Level() != -1.0 {
		t.Errorf("Level() = %v, expected clamp to -1.0", easiest.Level())
	}
	if got := easiest.FeverThreshold(30); got != 1 {
		t.Errorf("FeverThreshold(30) = %d, expected floor 1", got)
	}
	if got := easiest.TileTypes(5); got != minTileTypes {
		t.Errorf("TileTypes(5) = %d, expected floor %d", got, minTileTypes)
	}

	off := NewDifficultyManager(DifficultyConfig{Enabled: false, Level: 1.0})
	if off.Level() != 0 || off.IsEnabled() {
		t.Error("disabled manager should report level 0")
	}
}

func TestNormalPresetKeepsFileValues(t *testing.T) {
	for _, gameID := range []string{"ponpon", "ponpon_blitz"} {
		t.Run(gameID, func(t *testing.T) {
			cfg, err := Load(gameID, "")
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			ApplyPreset(&cfg, DifficultyNormal)
			got := NewDifficultyManager(cfg.Difficulty).Apply(cfg)

			if got.Combo != cfg.Combo || got.Fever != cfg.Fever || got.Board != cfg.Board {
				t.Errorf("normal preset changed tuning: %+v -> %+v", cfg, got)
			}
		})
	}
}
