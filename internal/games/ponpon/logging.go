package ponpon

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ponpon/internal/games/ponpon/core"
)

// newEventLogger returns a listener that writes notable round events to l.
// Tile-level events are left out; they fire several times per chain.
func newEventLogger(l *log.Logger) core.Listener {
	return func(ev core.Event) {
		switch e := ev.(type) {
		case core.StateChangedEvent:
			l.Debug("state changed", "from", e.From, "to", e.To)
		case core.ChainClearedEvent:
			l.Debug("chain cleared", "length", e.Length, "points", e.Points, "combo", e.ComboCount, "fever", e.Fever)
		case core.ComboBrokenEvent:
			l.Debug("combo broken", "count", e.Count)
		case core.TimeAddedEvent:
			l.Debug("time added", "added", e.Added, "remaining", e.Remaining)
		case core.FeverStartedEvent:
			l.Info("fever started", "duration", e.Duration)
		case core.FeverEndedEvent:
			l.Info("fever ended")
		case core.NewRecordEvent:
			l.Info("new record", "score", e.Score, "previous", e.Previous)
		case core.RoundEndedEvent:
			s := e.Summary
			l.Info("round ended",
				"score", s.Score,
				"high", s.HighScore,
				"record", s.NewRecord,
				"chains", s.Chains,
				"longest", s.LongestChain,
				"max_combo", s.MaxCombo,
				"fevers", s.FeverCount,
			)
		case core.StoreFailedEvent:
			l.Warn("high score store failed", "op", e.Op, "err", e.Err)
		}
	}
}
