package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RoundStats is the summary of one finished round.
type RoundStats struct {
	ID           string
	GameID       string
	Score        int
	MaxCombo     int
	TilesCleared int
	FeverCount   int
	Chains       int
	LongestChain int
	Duration     time.Duration
	CreatedAt    time.Time
}

const roundColumns = `id, game_id, score, max_combo, tiles_cleared, fever_count,
	chains, longest_chain, duration_ms, created_at`

// SaveRoundStats stores a round summary. A random UUID is assigned when
// stats.ID is empty. Returns the ID of the stored row.
func (s *Store) SaveRoundStats(stats RoundStats) (string, error) {
	if stats.ID == "" {
		stats.ID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO round_stats
		 (id, game_id, score, max_combo, tiles_cleared, fever_count, chains, longest_chain, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		stats.ID,
		stats.GameID,
		stats.Score,
		stats.MaxCombo,
		stats.TilesCleared,
		stats.FeverCount,
		stats.Chains,
		stats.LongestChain,
		stats.Duration.Milliseconds(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save round stats: %w", err)
	}

	return stats.ID, nil
}

// RecentRounds retrieves the most recent rounds for the given game.
func (s *Store) RecentRounds(gameID string, limit int) ([]RoundStats, error) {
	return s.queryRounds(`ORDER BY created_at DESC, rowid DESC`, gameID, limit)
}

// TopRounds retrieves the highest scoring rounds for the given game.
// Ties go to the round stored first.
func (s *Store) TopRounds(gameID string, limit int) ([]RoundStats, error) {
	return s.queryRounds(`ORDER BY score DESC, rowid ASC`, gameID, limit)
}

func (s *Store) queryRounds(order, gameID string, limit int) ([]RoundStats, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+roundColumns+`
		 FROM round_stats
		 WHERE game_id = ?
		 `+order+`
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var results []RoundStats
	for rows.Next() {
		r, err := scanRound(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// BestRound returns the highest scoring round for the given game,
// or nil if none has been stored.
func (s *Store) BestRound(gameID string) (*RoundStats, error) {
	row := s.db.QueryRow(
		`SELECT `+roundColumns+`
		 FROM round_stats
		 WHERE game_id = ?
		 ORDER BY score DESC, rowid ASC
		 LIMIT 1`,
		gameID,
	)

	r, err := scanRound(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// RoundByID retrieves one round by its UUID, or nil if it does not exist.
func (s *Store) RoundByID(id string) (*RoundStats, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("storage: invalid round id %q: %w", id, err)
	}

	r, err := scanRound(s.db.QueryRow(
		`SELECT `+roundColumns+` FROM round_stats WHERE id = ?`,
		id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRound(row rowScanner) (RoundStats, error) {
	var r RoundStats
	var durationMS int64
	var createdAt any

	err := row.Scan(
		&r.ID,
		&r.GameID,
		&r.Score,
		&r.MaxCombo,
		&r.TilesCleared,
		&r.FeverCount,
		&r.Chains,
		&r.LongestChain,
		&durationMS,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return r, err
	}
	if err != nil {
		return r, fmt.Errorf("storage: cannot scan round: %w", err)
	}

	r.Duration = time.Duration(durationMS) * time.Millisecond
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}
