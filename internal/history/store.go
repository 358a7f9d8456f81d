// Package history records finished rounds per player.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/robalobadob/hangman/internal/game"
)

// Entry is one finished round.
type Entry struct {
	RoundID       string    `json:"roundId"`
	Owner         string    `json:"-"`
	Word          string    `json:"word"`
	Difficulty    string    `json:"difficulty"`
	Status        string    `json:"status"`
	Score         int       `json:"score"`
	WrongAttempts int       `json:"wrongAttempts"`
	MaxAttempts   int       `json:"maxAttempts"`
	Stars         int       `json:"stars"`
	FinishedAt    time.Time `json:"finishedAt"`
}

// FromState builds an Entry from a terminal round.
func FromState(owner string, s game.State, at time.Time) Entry {
	return Entry{
		RoundID:       s.ID,
		Owner:         owner,
		Word:          s.Word,
		Difficulty:    string(s.Difficulty),
		Status:        string(s.Status),
		Score:         s.Score,
		WrongAttempts: s.WrongAttempts,
		MaxAttempts:   s.MaxAttempts,
		Stars:         s.Stars,
		FinishedAt:    at.UTC(),
	}
}

// Store reads and writes the rounds table.
type Store struct{ db *sql.DB }

// NewStore wraps an open, migrated database.
func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Insert writes e. A round is recorded at most once.
func (s *Store) Insert(ctx context.Context, e Entry) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT OR IGNORE INTO rounds
            (id, owner, word, difficulty, status, score, wrong_attempts, max_attempts, stars, finished_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.RoundID, e.Owner, e.Word, e.Difficulty, e.Status, e.Score,
		e.WrongAttempts, e.MaxAttempts, e.Stars, e.FinishedAt.Format(time.RFC3339Nano),
	)
	return err
}

// Recent returns owner's latest rounds, newest first. Default limit is 20.
func (s *Store) Recent(ctx context.Context, owner string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, owner, word, difficulty, status, score, wrong_attempts, max_attempts, stars, finished_at
        FROM rounds
        WHERE owner=?
        ORDER BY finished_at DESC
        LIMIT ?`, owner, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Entry, 0, limit)
	for rows.Next() {
		var (
			e        Entry
			finished string
		)
		if err := rows.Scan(&e.RoundID, &e.Owner, &e.Word, &e.Difficulty, &e.Status, &e.Score,
			&e.WrongAttempts, &e.MaxAttempts, &e.Stars, &finished); err != nil {
			return nil, err
		}
		at, err := time.Parse(time.RFC3339Nano, finished)
		if err != nil {
			return nil, fmt.Errorf("round %s finished_at: %w", e.RoundID, err)
		}
		e.FinishedAt = at
		out = append(out, e)
	}
	return out, rows.Err()
}
