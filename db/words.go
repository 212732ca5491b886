package db

import (
	"context"
	"fmt"

	"sumpus.exe.dev/thai"
)

// WordRepo stores lexicon words indexed by rhyme class.
type WordRepo struct{ DB *DB }

func NewWordRepo(d *DB) *WordRepo { return &WordRepo{DB: d} }

// Upsert stores entries, replacing the pronunciation of words already present.
// It returns the number of entries written.
func (r *WordRepo) Upsert(ctx context.Context, entries []thai.Entry) (int, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, r.DB.Rebind(`
INSERT INTO words (word, pronunciation, sara, marttra)
VALUES (?, ?, ?, ?)
ON CONFLICT (word)
DO UPDATE SET pronunciation = excluded.pronunciation, sara = excluded.sara, marttra = excluded.marttra`))
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	n := 0
	for _, e := range entries {
		if e.Word == "" {
			continue
		}
		pron := e.Pronunciation
		if pron == "" {
			pron = e.Word
		}
		c := thai.RhymeClassOf(pron)
		if _, err := stmt.ExecContext(ctx, e.Word, pron, c.Sara, c.Marttra); err != nil {
			return 0, fmt.Errorf("upsert %q: %w", e.Word, err)
		}
		n++
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return n, nil
}

// RhymeMembers returns the stored words sharing the rhyme class of a spelled
// syllable, in lexical order.
func (r *WordRepo) RhymeMembers(ctx context.Context, syllable string) ([]string, error) {
	c := thai.RhymeClassOf(syllable)
	rows, err := r.DB.QueryContext(ctx,
		r.DB.Rebind("SELECT word FROM words WHERE sara = ? AND marttra = ? ORDER BY word"),
		c.Sara, c.Marttra)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []string{}
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

// Count returns the number of stored words.
func (r *WordRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM words").Scan(&n)
	return n, err
}

// All returns every stored word with its pronunciation, ordered by word.
func (r *WordRepo) All(ctx context.Context) ([]thai.Entry, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT word, pronunciation FROM words ORDER BY word")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []thai.Entry
	for rows.Next() {
		var e thai.Entry
		if err := rows.Scan(&e.Word, &e.Pronunciation); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Seed fills an empty store from lex. It returns the number of words written, which
// is zero when the store already has words.
func (r *WordRepo) Seed(ctx context.Context, lex *thai.Lexicon) (int, error) {
	n, err := r.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}
	return r.Upsert(ctx, lex.Entries())
}
