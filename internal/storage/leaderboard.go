package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/snake-arena/internal/games/snake"
)

// HighScoreRank is the worst rank that still counts as a high score.
const HighScoreRank = 10

// LeaderboardEntry is one row of the online leaderboard.
type LeaderboardEntry struct {
	ID       string     `json:"id"`
	Rank     int        `json:"rank"`
	UserID   string     `json:"userId"`
	Username string     `json:"username"`
	Score    int        `json:"score"`
	Mode     snake.Mode `json:"mode"`
	Date     time.Time  `json:"date"`
}

// SubmitScore stores a finished game for userID and reports where it
// placed. Rank counts strictly higher scores across every mode, so ties
// share a rank.
func (s *Store) SubmitScore(ctx context.Context, userID string, score int, mode snake.Mode) (rank int, isHighScore bool, err error) {
	if !mode.Valid() {
		return 0, false, fmt.Errorf("storage: unknown mode %q", mode)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE id = ?`, userID).Scan(&exists); err != nil {
		return 0, false, fmt.Errorf("storage: cannot query user: %w", err)
	}
	if exists == 0 {
		return 0, false, ErrUserNotFound
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO leaderboard (id, user_id, score, mode, created_at) VALUES (?, ?, ?, ?, ?)`,
		uuid.NewString(), userID, score, string(mode), time.Now().UTC().Format(sqliteTime),
	)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot save score: %w", err)
	}

	var higher int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM leaderboard WHERE score > ?`, score).Scan(&higher); err != nil {
		return 0, false, fmt.Errorf("storage: cannot rank score: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, false, fmt.Errorf("storage: cannot commit score: %w", err)
	}

	rank = higher + 1
	return rank, rank <= HighScoreRank, nil
}

// Leaderboard returns the best scores, optionally restricted to one mode.
// An empty mode means every mode. Ranks are 1-based positions in the result.
func (s *Store) Leaderboard(ctx context.Context, mode snake.Mode, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `SELECT l.id, l.user_id, u.username, l.score, l.mode, l.created_at
		 FROM leaderboard l
		 JOIN users u ON u.id = l.user_id`
	args := []any{}
	if mode != "" {
		query += ` WHERE l.mode = ?`
		args = append(args, string(mode))
	}
	query += ` ORDER BY l.score DESC, l.created_at ASC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query leaderboard: %w", err)
	}
	defer rows.Close()

	entries := []LeaderboardEntry{}
	for rows.Next() {
		var (
			e         LeaderboardEntry
			m         string
			createdAt any
		)
		if err := rows.Scan(&e.ID, &e.UserID, &e.Username, &e.Score, &m, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Mode = snake.Mode(m)
		e.Date = parseTime(createdAt)
		e.Rank = len(entries) + 1
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}
