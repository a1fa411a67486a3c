package config

import (
	_ "embed"
)

//go:embed defaults/ponpon.yaml
var defaultPonponYAML []byte

//go:embed defaults/ponpon_blitz.yaml
var defaultBlitzYAML []byte

// DefaultPonponConfig returns the classic 60 second configuration.
func DefaultPonponConfig() PonponConfig {
	return PonponConfig{
		Board: BoardConfig{
			Width:     7,
			Height:    9,
			TileTypes: 5,
		},
		Round: RoundConfig{
			Duration: 60,
			Ready:    3,
		},
		Chain: ChainConfig{
			MinLength: 3,
		},
		Scoring: ScoringConfig{
			BasePerTile:       10,
			ChainBonusPerTile: 5,
			ScaleBonusByTiles: true,
			ComboSteps: []ComboStep{
				{MinCount: 0, Multiplier: 1.0},
				{MinCount: 5, Multiplier: 1.5},
				{MinCount: 10, Multiplier: 2.0},
				{MinCount: 20, Multiplier: 3.0},
			},
		},
		Combo: ComboConfig{
			Window: 2,
		},
		Fever: FeverConfig{
			Enabled:    true,
			Threshold:  30,
			PerTile:    1,
			Duration:   10,
			Multiplier: 2,
		},
		Settle: SettleConfig{
			PopMS:  300,
			DropMS: 200,
			FillMS: 300,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Level:   0.0,
			Scaling: ScalingConfig{
				ComboWindowReduction:   1.0,
				FeverThresholdIncrease: 20,
				ExtraTileTypes:         1,
			},
		},
	}
}

// DefaultBlitzConfig returns the 30 second blitz configuration.
// Blitz plays on four tile types and rewards long chains with time.
func DefaultBlitzConfig() PonponConfig {
	cfg := DefaultPonponConfig()
	cfg.Board.TileTypes = 4
	cfg.Round.Duration = 30
	cfg.Fever.Threshold = 25
	cfg.Fever.Duration = 6
	cfg.Bonus = BonusConfig{
		ChainLength: 7,
		Time:        1,
		Points:      100,
	}
	return cfg
}

// GetDefaultYAML returns the embedded default YAML for a mode.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "ponpon":
		return defaultPonponYAML
	case "ponpon_blitz":
		return defaultBlitzYAML
	default:
		return nil
	}
}
