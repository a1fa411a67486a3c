package core

import "math"

// ScoreRules holds the constants of the scoring formula.
type ScoreRules struct {
	BasePerTile       int
	ChainBonusPerTile int
	MinChain          int
	FeverMultiplier   float64
	// ScaleBonusByTiles multiplies the chain bonus by the tile count.
	ScaleBonusByTiles bool
	Combo             []ComboStep
}

// DefaultScoreRules returns the stock scoring constants.
func DefaultScoreRules() ScoreRules {
	return ScoreRules{
		BasePerTile:       10,
		ChainBonusPerTile: 5,
		MinChain:          3,
		FeverMultiplier:   2.0,
		ScaleBonusByTiles: true,
		Combo:             DefaultComboTable,
	}
}

// Calculate returns the points for one cleared chain:
//
//	base       = tiles × BasePerTile
//	chainBonus = (length − MinChain) × ChainBonusPerTile [× tiles], when length > MinChain
//	total      = round((base + chainBonus) × combo × fever)
//
// Rounding is to the nearest integer, halves to even.
func Calculate(rules ScoreRules, tileCount, chainLength, comboCount int, feverActive bool) int {
	base := tileCount * rules.BasePerTile
	bonus := 0
	if chainLength > rules.MinChain {
		bonus = (chainLength - rules.MinChain) * rules.ChainBonusPerTile
		if rules.ScaleBonusByTiles {
			bonus *= tileCount
		}
	}
	mult := ComboMultiplier(rules.Combo, comboCount)
	if feverActive {
		mult *= rules.FeverMultiplier
	}
	return int(math.RoundToEven(float64(base+bonus) * mult))
}

// ScoreKeeper holds the running score for a round and latches the
// new-record flag the first time the score passes the stored high score.
type ScoreKeeper struct {
	score     int
	high      int
	startHigh int
	newRecord bool
}

// NewScoreKeeper starts a round at zero against the stored high score.
func NewScoreKeeper(highScore int) *ScoreKeeper {
	return &ScoreKeeper{high: highScore, startHigh: highScore}
}

// Add adds points to the running score. firstRecord is true only on the
// call where the score first exceeds the high score read at round start;
// later calls keep raising the high score without reporting it again.
func (k *ScoreKeeper) Add(points int) (highChanged, firstRecord bool) {
	if points <= 0 {
		return false, false
	}
	k.score += points
	if k.score <= k.high {
		return false, false
	}
	k.high = k.score
	if !k.newRecord {
		k.newRecord = true
		return true, true
	}
	return true, false
}

// AddBonus adds flat points that bypass the chain formula.
func (k *ScoreKeeper) AddBonus(points int) (highChanged, firstRecord bool) {
	return k.Add(points)
}

// Score returns the running score.
func (k *ScoreKeeper) Score() int {
	return k.score
}

// HighScore returns the larger of the stored high score and the running score.
func (k *ScoreKeeper) HighScore() int {
	return k.high
}

// PreviousHighScore returns the high score read at round start.
func (k *ScoreKeeper) PreviousHighScore() int {
	return k.startHigh
}

// NewRecord reports whether the round has beaten the stored high score.
func (k *ScoreKeeper) NewRecord() bool {
	return k.newRecord
}
