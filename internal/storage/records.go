package storage

import (
	"database/sql"
	"fmt"
)

// HighScore returns the best score for the given game, taking the larger
// of the stored record and every finished round. Returns 0 if neither exists.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		`SELECT MAX(high) FROM (
			SELECT MAX(score) AS high FROM scores WHERE game_id = ?
			UNION ALL
			SELECT high_score FROM records WHERE game_id = ?
		)`,
		gameID, gameID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// SetHighScore upserts the record for the given game. The stored value
// never decreases.
func (s *Store) SetHighScore(gameID string, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO records (game_id, high_score) VALUES (?, ?)
		 ON CONFLICT(game_id) DO UPDATE SET
			high_score = MAX(records.high_score, excluded.high_score),
			updated_at = CURRENT_TIMESTAMP`,
		gameID, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}

// Records binds a Store to one game so a round can read and write its
// high score without knowing the game id.
type Records struct {
	store  *Store
	gameID string
}

// Records returns the high score adapter for gameID.
func (s *Store) Records(gameID string) *Records {
	return &Records{store: s, gameID: gameID}
}

// GameID returns the bound game id.
func (r *Records) GameID() string { return r.gameID }

// HighScore returns the stored high score.
func (r *Records) HighScore() (int, error) {
	return r.store.HighScore(r.gameID)
}

// SetHighScore stores a new high score.
func (r *Records) SetHighScore(score int) error {
	return r.store.SetHighScore(r.gameID, score)
}
