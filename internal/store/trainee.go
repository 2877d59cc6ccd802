package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/esvanberg/voctrain/internal/trainee"
)

const currentVocabKey = "current_vocab"

// Load reads the full trainee aggregate. A fresh database yields an
// empty state.
func (s *Store) Load(ctx context.Context) (*trainee.State, error) {
	state := trainee.NewState()

	var current string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM meta WHERE key = ?`, currentVocabKey).Scan(&current)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("load current vocabulary: %w", err)
	}
	state.Current = current

	rows, err := s.db.QueryContext(ctx,
		`SELECT path, level, qualified FROM vocab_state`)
	if err != nil {
		return nil, fmt.Errorf("load vocab states: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var path string
		var level int
		var qualified bool
		if err := rows.Scan(&path, &level, &qualified); err != nil {
			return nil, fmt.Errorf("scan vocab state: %w", err)
		}
		vs := state.StateFor(path)
		vs.Level = level
		vs.Qualified = qualified
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load vocab states: %w", err)
	}

	if err := s.loadCorrections(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

func (s *Store) loadCorrections(ctx context.Context, state *trainee.State) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT vocab_path, word, added, removed FROM correction`)
	if err != nil {
		return fmt.Errorf("load corrections: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var path, word, addedJSON, removedJSON string
		if err := rows.Scan(&path, &word, &addedJSON, &removedJSON); err != nil {
			return fmt.Errorf("scan correction: %w", err)
		}
		var added, removed []string
		if err := json.Unmarshal([]byte(addedJSON), &added); err != nil {
			return fmt.Errorf("decode additions for %q: %w", word, err)
		}
		if err := json.Unmarshal([]byte(removedJSON), &removed); err != nil {
			return fmt.Errorf("decode removals for %q: %w", word, err)
		}
		state.StateFor(path).Corrections.Restore(word, added, removed)
	}
	return rows.Err()
}

// Save rewrites the persisted aggregate from scratch in a single
// transaction. Attempt history rows are append-only and untouched.
func (s *Store) Save(ctx context.Context, state *trainee.State) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"meta", "vocab_state", "correction"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	if state.Current != "" {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO meta (key, value) VALUES (?, ?)`,
			currentVocabKey, state.Current)
		if err != nil {
			return fmt.Errorf("save current vocabulary: %w", err)
		}
	}

	for path, vs := range state.Vocabs {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO vocab_state (path, level, qualified) VALUES (?, ?, ?)`,
			path, vs.Level, vs.Qualified)
		if err != nil {
			return fmt.Errorf("save vocab state %q: %w", path, err)
		}

		for _, word := range vs.Corrections.ModifiedWords() {
			added, err := json.Marshal(emptyAsList(vs.Corrections.Added(word)))
			if err != nil {
				return fmt.Errorf("encode additions for %q: %w", word, err)
			}
			removed, err := json.Marshal(emptyAsList(vs.Corrections.Removed(word)))
			if err != nil {
				return fmt.Errorf("encode removals for %q: %w", word, err)
			}
			_, err = tx.ExecContext(ctx,
				`INSERT INTO correction (vocab_path, word, added, removed) VALUES (?, ?, ?, ?)`,
				path, word, string(added), string(removed))
			if err != nil {
				return fmt.Errorf("save correction %q/%q: %w", path, word, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

// emptyAsList keeps nil slices encoding as [] rather than null.
func emptyAsList(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
