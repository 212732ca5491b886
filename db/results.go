package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"sumpus.exe.dev/klon"
)

// CheckResult is a saved, shareable check.
type CheckResult struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Text      string       `json:"text"`
	Report    *klon.Report `json:"report,omitempty"`
	Failures  int          `json:"failures"`
	CreatedAt time.Time    `json:"createdAt"`
}

// ResultRepo persists check results.
type ResultRepo struct{ DB *DB }

func NewResultRepo(d *DB) *ResultRepo { return &ResultRepo{DB: d} }

// Save stores res, assigning an ID and creation time when they are unset.
func (r *ResultRepo) Save(ctx context.Context, res *CheckResult) error {
	if res.Report == nil {
		return errors.New("save result: missing report")
	}
	if res.ID == "" {
		res.ID = uuid.NewString()
	}
	if res.CreatedAt.IsZero() {
		res.CreatedAt = time.Now().UTC()
	}
	res.Failures = len(res.Report.Failures)
	reportJSON, err := json.Marshal(res.Report)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	_, err = r.DB.ExecContext(ctx, r.DB.Rebind(
		`INSERT INTO check_results (id, title, text, report_json, failures, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`),
		res.ID, res.Title, res.Text, string(reportJSON), res.Failures, res.CreatedAt,
	)
	return err
}

// Find loads a result by ID. It returns ErrNotFound for unknown IDs.
func (r *ResultRepo) Find(ctx context.Context, id string) (*CheckResult, error) {
	var (
		res       CheckResult
		reportStr string
	)
	err := r.DB.QueryRowContext(ctx, r.DB.Rebind(
		`SELECT id, title, text, report_json, failures, created_at
		 FROM check_results WHERE id = ?`), id,
	).Scan(&res.ID, &res.Title, &res.Text, &reportStr, &res.Failures, &res.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	res.Report = &klon.Report{}
	if err := json.Unmarshal([]byte(reportStr), res.Report); err != nil {
		return nil, fmt.Errorf("decode report %s: %w", id, err)
	}
	return &res, nil
}

// Recent returns the newest results, newest first, without their reports.
func (r *ResultRepo) Recent(ctx context.Context, limit int) ([]CheckResult, error) {
	rows, err := r.DB.QueryContext(ctx, r.DB.Rebind(
		`SELECT id, title, text, failures, created_at
		 FROM check_results ORDER BY created_at DESC LIMIT ?`), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []CheckResult
	for rows.Next() {
		var res CheckResult
		if err := rows.Scan(&res.ID, &res.Title, &res.Text, &res.Failures, &res.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

// DeleteBefore removes results created before cutoff and reports how many went.
func (r *ResultRepo) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.DB.ExecContext(ctx, r.DB.Rebind(
		`DELETE FROM check_results WHERE created_at < ?`), cutoff.UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
