package ponpon

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ponpon/internal/config"
	"github.com/vovakirdan/ponpon/internal/games/ponpon/core"
	"github.com/vovakirdan/ponpon/internal/storage"
)

// Package-level variables for configuration, set by the CLI before a
// game is created.
var (
	configPath       string
	difficultyPreset = config.DifficultyNormal
	scoreStore       *storage.Store
	logger           = log.New(io.Discard)
)

// SetConfigPath sets a custom YAML config file for every mode.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the preset applied at round start.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// GetDifficultyPreset returns the currently selected preset.
func GetDifficultyPreset() config.DifficultyPreset {
	return difficultyPreset
}

// SetStore sets the database used for high scores and round statistics.
// A nil store keeps everything in memory.
func SetStore(s *storage.Store) {
	scoreStore = s
}

// SetLogger sets the logger that receives round events.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// LoadConfig loads the YAML config for a mode and resolves the current
// difficulty preset into it.
func LoadConfig(gameID string) (config.PonponConfig, error) {
	cfg, err := config.Load(gameID, configPath)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, difficultyPreset)
	return config.NewDifficultyManager(cfg.Difficulty).Apply(cfg), nil
}

// CoreConfig converts a YAML config into the round configuration.
func CoreConfig(cfg config.PonponConfig) core.Config {
	table := make([]core.ComboStep, len(cfg.Scoring.ComboSteps))
	for i, s := range cfg.Scoring.ComboSteps {
		table[i] = core.ComboStep{MinCount: s.MinCount, Multiplier: s.Multiplier}
	}
	if len(table) == 0 {
		table = core.DefaultComboTable
	}

	feverMult := cfg.Fever.Multiplier
	if feverMult <= 0 {
		feverMult = 1
	}

	return core.Config{
		Width:         cfg.Board.Width,
		Height:        cfg.Board.Height,
		TileTypes:     cfg.Board.TileTypes,
		RoundDuration: cfg.RoundDuration(),
		ReadyDelay:    cfg.ReadyDelay(),
		ComboWindow:   cfg.ComboWindow(),
		Score: core.ScoreRules{
			BasePerTile:       cfg.Scoring.BasePerTile,
			ChainBonusPerTile: cfg.Scoring.ChainBonusPerTile,
			MinChain:          cfg.Chain.MinLength,
			FeverMultiplier:   feverMult,
			ScaleBonusByTiles: cfg.Scoring.ScaleBonusByTiles,
			Combo:             table,
		},
		Fever: core.FeverConfig{
			Enabled:   cfg.Fever.Enabled,
			Threshold: cfg.Fever.Threshold,
			PerTile:   cfg.Fever.PerTile,
			Duration:  cfg.FeverDuration(),
		},
		Settle: core.SettleTimings{
			Pop:  time.Duration(cfg.Settle.PopMS) * time.Millisecond,
			Drop: time.Duration(cfg.Settle.DropMS) * time.Millisecond,
			Fill: time.Duration(cfg.Settle.FillMS) * time.Millisecond,
		},
		Bonus: core.TimeBonus{
			ChainLength: cfg.Bonus.ChainLength,
			Time:        cfg.BonusTime(),
			Points:      cfg.Bonus.Points,
		},
	}
}
