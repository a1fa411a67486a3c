package core

import (
	"fmt"
	"time"
)

// TimeBonus rewards long chains with extra round time and flat points.
// A zero ChainLength disables it.
type TimeBonus struct {
	ChainLength int
	Time        time.Duration
	Points      int
}

// Config is everything a round needs. It is fixed when the round starts.
type Config struct {
	Width     int
	Height    int
	TileTypes int

	RoundDuration time.Duration
	ReadyDelay    time.Duration
	ComboWindow   time.Duration

	Score  ScoreRules
	Fever  FeverConfig
	Settle SettleTimings
	Bonus  TimeBonus
}

// DefaultConfig returns the classic 60 second round on a 7×9 board.
func DefaultConfig() Config {
	return Config{
		Width:         7,
		Height:        9,
		TileTypes:     5,
		RoundDuration: 60 * time.Second,
		ReadyDelay:    3 * time.Second,
		ComboWindow:   2 * time.Second,
		Score:         DefaultScoreRules(),
		Fever: FeverConfig{
			Enabled:   true,
			Threshold: 30,
			PerTile:   1,
			Duration:  10 * time.Second,
		},
		Settle: DefaultSettleTimings(),
	}
}

// MinChain returns the shortest chain that clears.
func (c Config) MinChain() int {
	return c.Score.MinChain
}

// Validate returns an error when a round cannot be built from c.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, c.Width, c.Height)
	}
	if c.TileTypes <= 0 || c.TileTypes > MaxTileTypes {
		return fmt.Errorf("%w: %d", ErrInvalidTileTypes, c.TileTypes)
	}
	if c.Score.MinChain < 2 {
		return fmt.Errorf("%w: %d", ErrInvalidMinChain, c.Score.MinChain)
	}
	if c.RoundDuration <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidDuration, c.RoundDuration)
	}
	if c.Fever.Enabled && (c.Fever.Threshold <= 0 || c.Fever.Duration <= 0) {
		return fmt.Errorf("%w: threshold %d, duration %v", ErrInvalidFever, c.Fever.Threshold, c.Fever.Duration)
	}
	return nil
}
