package store

import (
	"context"
	"fmt"
	"time"
)

// Attempt kinds.
const (
	KindDrill = "drill"
	KindExam  = "exam"
)

// Attempt is one finished drill or exam session, kept as append-only
// history for the stats output.
type Attempt struct {
	ID         string
	VocabPath  string
	Kind       string
	Level      int
	Total      int  // words in the block
	Correct    int  // words answered correctly
	Passed     bool // exam outcome; always true for a completed drill
	StartedAt  time.Time
	FinishedAt time.Time
}

// LogAttempt appends an attempt row.
func (s *Store) LogAttempt(ctx context.Context, a Attempt) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO attempt (id, vocab_path, kind, level, total, correct, passed, started_at, finished_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.VocabPath, a.Kind, a.Level, a.Total, a.Correct, a.Passed,
		a.StartedAt.UTC().Format(time.RFC3339), a.FinishedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("log attempt: %w", err)
	}
	return nil
}

// RecentAttempts returns the most recent attempts, newest first.
func (s *Store) RecentAttempts(ctx context.Context, limit int) ([]Attempt, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, vocab_path, kind, level, total, correct, passed, started_at, finished_at
		 FROM attempt ORDER BY finished_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var attempts []Attempt
	for rows.Next() {
		var a Attempt
		var started, finished string
		if err := rows.Scan(&a.ID, &a.VocabPath, &a.Kind, &a.Level,
			&a.Total, &a.Correct, &a.Passed, &started, &finished); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		if a.StartedAt, err = time.Parse(time.RFC3339, started); err != nil {
			return nil, fmt.Errorf("parse started_at: %w", err)
		}
		if a.FinishedAt, err = time.Parse(time.RFC3339, finished); err != nil {
			return nil, fmt.Errorf("parse finished_at: %w", err)
		}
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}

// DeleteVocab removes all stored progress, corrections, and attempt
// history for one vocabulary path.
func (s *Store) DeleteVocab(ctx context.Context, path string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete: %w", err)
	}
	defer tx.Rollback()

	stmts := []string{
		`DELETE FROM vocab_state WHERE path = ?`,
		`DELETE FROM correction WHERE vocab_path = ?`,
		`DELETE FROM attempt WHERE vocab_path = ?`,
	}
	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt, path); err != nil {
			return fmt.Errorf("delete vocab %q: %w", path, err)
		}
	}
	return tx.Commit()
}
