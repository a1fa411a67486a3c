// Package config provides YAML-based round configuration loading and
// difficulty presets for ponpon.
package config

import (
	"errors"
	"fmt"
	"time"
)

// PonponConfig contains all configuration for one ponpon mode.
type PonponConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Round      RoundConfig      `yaml:"round"`
	Chain      ChainConfig      `yaml:"chain"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Combo      ComboConfig      `yaml:"combo"`
	Fever      FeverConfig      `yaml:"fever"`
	Settle     SettleConfig     `yaml:"settle"`
	Bonus      BonusConfig      `yaml:"bonus"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the grid.
type BoardConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TileTypes int `yaml:"tile_types"`
}

// RoundConfig defines round timing in seconds.
type RoundConfig struct {
	Duration float64 `yaml:"duration"`
	Ready    float64 `yaml:"ready"` // countdown before play starts
}

// ChainConfig defines chain selection rules.
type ChainConfig struct {
	MinLength int `yaml:"min_length"`
}

// ScoringConfig defines how chains are scored.
type ScoringConfig struct {
	BasePerTile       int         `yaml:"base_per_tile"`
	ChainBonusPerTile int         `yaml:"chain_bonus_per_tile"`
	ScaleBonusByTiles bool        `yaml:"scale_bonus_by_tiles"`
	ComboSteps        []ComboStep `yaml:"combo_steps"`
}

// ComboStep maps a combo count threshold to a score multiplier.
type ComboStep struct {
	MinCount   int     `yaml:"min_count"`
	Multiplier float64 `yaml:"multiplier"`
}

// ComboConfig defines the combo window in seconds.
type ComboConfig struct {
	Window float64 `yaml:"window"`
}

// FeverConfig defines the fever gauge.
type FeverConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Threshold  int     `yaml:"threshold"`
	PerTile    int     `yaml:"per_tile"`
	Duration   float64 `yaml:"duration"`
	Multiplier float64 `yaml:"multiplier"`
}

// SettleConfig defines the pop/drop/fill waits in milliseconds.
type SettleConfig struct {
	PopMS  int `yaml:"pop_ms"`
	DropMS int `yaml:"drop_ms"`
	FillMS int `yaml:"fill_ms"`
}

// BonusConfig rewards long chains with extra time and points.
// A zero ChainLength disables the bonus.
type BonusConfig struct {
	ChainLength int     `yaml:"chain_length"`
	Time        float64 `yaml:"time"` // seconds
	Points      int     `yaml:"points"`
}

// DifficultyConfig defines how presets scale the round.
type DifficultyConfig struct {
	Enabled bool          `yaml:"enabled"`
	Level   float64       `yaml:"level"` // -1.0 = easiest, 0 = file values, 1.0 = hardest
	Scaling ScalingConfig `yaml:"scaling"`
}

// ScalingConfig defines the magnitude of difficulty changes at level 1.0.
// Negative levels apply the same changes in the easier direction.
type ScalingConfig struct {
	ComboWindowReduction   float64 `yaml:"combo_window_reduction"`   // Seconds removed from the combo window
	FeverThresholdIncrease int     `yaml:"fever_threshold_increase"` // Extra tiles needed to fill the gauge
	ExtraTileTypes         int     `yaml:"extra_tile_types"`         // Tile types added to the board
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// LevelForPreset returns the difficulty level for a preset.
// Normal is level 0 and keeps the configured tuning.
func LevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return -0.5
	case DifficultyNormal:
		return 0.0
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset leaves file values untouched.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// RoundDuration returns the round length.
func (c PonponConfig) RoundDuration() time.Duration { return seconds(c.Round.Duration) }

// ReadyDelay returns the countdown before play.
func (c PonponConfig) ReadyDelay() time.Duration { return seconds(c.Round.Ready) }

// ComboWindow returns the combo window.
func (c PonponConfig) ComboWindow() time.Duration { return seconds(c.Combo.Window) }

// FeverDuration returns how long fever lasts.
func (c PonponConfig) FeverDuration() time.Duration { return seconds(c.Fever.Duration) }

// BonusTime returns the time added by a long chain.
func (c PonponConfig) BonusTime() time.Duration { return seconds(c.Bonus.Time) }

// Validate reports every setting that would make a round unplayable.
func (c PonponConfig) Validate() error {
	var errs []error
	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		errs = append(errs, fmt.Errorf("board: invalid size %dx%d", c.Board.Width, c.Board.Height))
	}
	if c.Board.TileTypes < 1 || c.Board.TileTypes > 256 {
		errs = append(errs, fmt.Errorf("board: tile_types %d out of range [1, 256]", c.Board.TileTypes))
	}
	if c.Round.Duration <= 0 {
		errs = append(errs, fmt.Errorf("round: duration must be positive, got %v", c.Round.Duration))
	}
	if c.Round.Ready < 0 {
		errs = append(errs, fmt.Errorf("round: ready must not be negative, got %v", c.Round.Ready))
	}
	if c.Chain.MinLength < 2 {
		errs = append(errs, fmt.Errorf("chain: min_length must be at least 2, got %d", c.Chain.MinLength))
	}
	if c.Combo.Window <= 0 {
		errs = append(errs, fmt.Errorf("combo: window must be positive, got %v", c.Combo.Window))
	}
	for i, step := range c.Scoring.ComboSteps {
		if i > 0 && step.MinCount <= c.Scoring.ComboSteps[i-1].MinCount {
			errs = append(errs, fmt.Errorf("scoring: combo_steps must be sorted by min_count (step %d)", i))
		}
		if step.Multiplier <= 0 {
			errs = append(errs, fmt.Errorf("scoring: combo step %d has non-positive multiplier", i))
		}
	}
	if c.Fever.Enabled {
		if c.Fever.Threshold <= 0 {
			errs = append(errs, fmt.Errorf("fever: threshold must be positive, got %d", c.Fever.Threshold))
		}
		if c.Fever.Duration <= 0 {
			errs = append(errs, fmt.Errorf("fever: duration must be positive, got %v", c.Fever.Duration))
		}
	}
	if c.Settle.PopMS < 0 || c.Settle.DropMS < 0 || c.Settle.FillMS < 0 {
		errs = append(errs, errors.New("settle: waits must not be negative"))
	}
	return errors.Join(errs...)
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
