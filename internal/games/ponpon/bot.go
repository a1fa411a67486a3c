package ponpon

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/ponpon/internal/games/ponpon/core"
	"github.com/vovakirdan/ponpon/internal/storage"
)

// DefaultThink is how long the bot waits between chains.
const DefaultThink = 500 * time.Millisecond

// Bot plays a round by clearing the longest chain it can find, one chain
// at a time.
type Bot struct {
	round *core.Round
	think time.Duration
	wait  time.Duration
}

// NewBot creates a bot for r. A non-positive think uses DefaultThink.
func NewBot(r *core.Round, think time.Duration) *Bot {
	if think <= 0 {
		think = DefaultThink
	}
	return &Bot{round: r, think: think}
}

// Step lets the bot act once. It returns the length of the chain it
// played, or 0 when it waited.
func (b *Bot) Step(dt time.Duration) int {
	if b.wait > 0 {
		b.wait -= dt
		return 0
	}
	if !b.round.AcceptingInput() || b.round.Selecting() {
		return 0
	}

	chain := core.LongestChain(b.round.Grid(), 0, 0)
	if len(chain) < b.round.Config().MinChain() {
		return 0
	}

	b.wait = b.think
	if err := b.play(chain); err != nil {
		logger.Warn("bot chain rejected", "len", len(chain), "err", err)
		return 0
	}
	return len(chain)
}

// play traces chain on the round as one press, drag and release.
func (b *Bot) play(chain []core.Coord) error {
	if err := b.round.PointerDown(chain[0]); err != nil {
		return err
	}
	for _, c := range chain[1:] {
		if err := b.round.PointerMove(c); err != nil {
			return err
		}
	}
	return b.round.PointerUp()
}

// SimulateRound plays one headless round with a bot and returns its summary.
// The round is abandoned with an error once limit of game time has passed.
func SimulateRound(cfg core.Config, seed int64, tickRate int, think, limit time.Duration) (core.Summary, error) {
	round, err := core.NewRound(cfg, rand.New(rand.NewSource(seed)), nil)
	if err != nil {
		return core.Summary{}, err
	}

	bot := NewBot(round, think)
	dt := tickDuration(tickRate)
	var elapsed time.Duration
	for round.State() != core.StateResult {
		if limit > 0 && elapsed >= limit {
			return round.Summary(), fmt.Errorf("round still running after %v", limit)
		}
		bot.Step(dt)
		round.Tick(dt)
		elapsed += dt
	}
	return round.Summary(), nil
}

// roundStats converts a summary into a storage row.
func roundStats(gameID string, s core.Summary) storage.RoundStats {
	return storage.RoundStats{
		GameID:       gameID,
		Score:        s.Score,
		MaxCombo:     s.MaxCombo,
		TilesCleared: s.TilesCleared,
		FeverCount:   s.FeverCount,
		Chains:       s.Chains,
		LongestChain: s.LongestChain,
		Duration:     s.Duration,
	}
}
