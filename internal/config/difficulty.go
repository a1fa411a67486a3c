package config

import "math"

// Bounds that keep a scaled round playable.
const (
	minComboWindow = 0.5 // seconds
	minTileTypes   = 2
	maxTileTypes   = 256
)

// DifficultyManager derives round parameters from a difficulty level.
// The level is fixed for the whole round: it is applied once when the
// round is built.
type DifficultyManager struct {
	cfg   DifficultyConfig
	level float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:   cfg,
		level: clampF(cfg.Level, -1.0, 1.0),
	}
}

// IsEnabled returns whether difficulty scaling is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Level returns the current difficulty level, 0 when scaling is off.
func (d *DifficultyManager) Level() float64 {
	if !d.cfg.Enabled {
		return 0
	}
	return d.level
}

// ComboWindow returns the combo window in seconds for the current level.
func (d *DifficultyManager) ComboWindow(base float64) float64 {
	// Window shrinks as difficulty increases
	result := base - d.Level()*d.cfg.Scaling.ComboWindowReduction
	return math.Max(result, math.Min(base, minComboWindow))
}

// FeverThreshold returns the gauge size for the current level, at least 1.
func (d *DifficultyManager) FeverThreshold(base int) int {
	return max(base+int(math.Round(d.Level()*float64(d.cfg.Scaling.FeverThresholdIncrease))), 1)
}

// TileTypes returns the number of tile types for the current level.
func (d *DifficultyManager) TileTypes(base int) int {
	result := base + int(math.Round(d.Level()*float64(d.cfg.Scaling.ExtraTileTypes)))
	// Easier levels never go below two kinds, or below the base when it already is
	return min(max(result, min(base, minTileTypes)), maxTileTypes)
}

// Apply returns a copy of cfg with every scaled parameter resolved.
func (d *DifficultyManager) Apply(cfg PonponConfig) PonponConfig {
	if !d.IsEnabled() {
		return cfg
	}
	cfg.Combo.Window = d.ComboWindow(cfg.Combo.Window)
	cfg.Fever.Threshold = d.FeverThreshold(cfg.Fever.Threshold)
	cfg.Board.TileTypes = d.TileTypes(cfg.Board.TileTypes)
	return cfg
}

// clampF restricts a float64 to [lo, hi].
func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
