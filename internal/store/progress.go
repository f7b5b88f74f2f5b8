package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/asandhu/theoryprep/internal/progress"
)

// ProgressRepo persists the per-category progress map. Each save
// writes a complete snapshot row; the newest row wins on load.
type ProgressRepo interface {
	// Save writes a new snapshot of the full progress map.
	Save(ctx context.Context, entries map[string]progress.Entry) error

	// Latest returns the most recent persisted progress map. A
	// missing or unreadable snapshot yields (nil, nil): persistence
	// problems degrade to a fresh start, never to a fatal error.
	Latest(ctx context.Context) (map[string]progress.Entry, error)

	// Prune deletes all but the newest keep snapshots.
	Prune(ctx context.Context, keep int) error

	// Reset deletes all persisted progress.
	Reset(ctx context.Context) error
}

type progressRepo struct {
	db *sql.DB
}

func (r *progressRepo) Save(ctx context.Context, entries map[string]progress.Entry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}

	const stmt = `INSERT INTO progress_snapshots (created_at, data) VALUES (?, ?)`
	_, err = r.db.ExecContext(ctx, stmt, time.Now().UTC().Format(time.RFC3339), string(data))
	if err != nil {
		return fmt.Errorf("save progress snapshot: %w", err)
	}
	return nil
}

func (r *progressRepo) Latest(ctx context.Context) (map[string]progress.Entry, error) {
	const query = `SELECT data FROM progress_snapshots ORDER BY id DESC LIMIT 1`

	var data string
	err := r.db.QueryRowContext(ctx, query).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}

	var entries map[string]progress.Entry
	if err := json.Unmarshal([]byte(data), &entries); err != nil {
		// Corrupt blob: treat as empty rather than failing startup.
		return nil, nil
	}
	return entries, nil
}

func (r *progressRepo) Prune(ctx context.Context, keep int) error {
	const stmt = `
DELETE FROM progress_snapshots
WHERE id NOT IN (
  SELECT id FROM progress_snapshots ORDER BY id DESC LIMIT ?
)`
	if _, err := r.db.ExecContext(ctx, stmt, keep); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

func (r *progressRepo) Reset(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM progress_snapshots`); err != nil {
		return fmt.Errorf("reset progress: %w", err)
	}
	return nil
}
