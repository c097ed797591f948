// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/lunacal/internal/dateutil"
	"github.com/javiermolinar/lunacal/internal/schedule"
)

// SQLite implements schedule.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Open creates the parent directory of path if needed and opens the repository.
func Open(path string) (*SQLite, error) {
	if path == "" {
		return nil, fmt.Errorf("db path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return New(path)
}

// AddEntry stores an entry after the existing entries of its date.
func (s *SQLite) AddEntry(ctx context.Context, e *schedule.Entry) error {
	label, err := schedule.ValidateLabel(e.Label)
	if err != nil {
		return err
	}
	if _, err := dateutil.ParseDateKey(e.DateKey); err != nil {
		return err
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var position int
	err = tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(position) + 1, 0) FROM schedules WHERE date_key = ?`,
		e.DateKey,
	).Scan(&position)
	if err != nil {
		return fmt.Errorf("querying next position: %w", err)
	}

	query := `
		INSERT INTO schedules (date_key, label, position, created_at)
		VALUES (?, ?, ?, ?)
	`
	result, err := tx.ExecContext(ctx, query,
		e.DateKey,
		label,
		position,
		e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting schedule entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	e.ID = id
	e.Label = label
	e.Position = position
	return nil
}

// GetEntry retrieves an entry by ID.
func (s *SQLite) GetEntry(ctx context.Context, id int64) (*schedule.Entry, error) {
	query := `
		SELECT id, date_key, label, position, created_at
		FROM schedules
		WHERE id = ?
	`

	e, err := scanEntry(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("entry %d: %w", id, schedule.ErrEntryNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying schedule entry: %w", err)
	}
	return e, nil
}

// RemoveEntry deletes an entry.
func (s *SQLite) RemoveEntry(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM schedules WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting schedule entry: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("entry %d: %w", id, schedule.ErrEntryNotFound)
	}

	return nil
}

// RenameEntry replaces an entry's label.
func (s *SQLite) RenameEntry(ctx context.Context, id int64, label string) error {
	label, err := schedule.ValidateLabel(label)
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `UPDATE schedules SET label = ? WHERE id = ?`, label, id)
	if err != nil {
		return fmt.Errorf("renaming schedule entry: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("entry %d: %w", id, schedule.ErrEntryNotFound)
	}

	return nil
}

// ListEntries returns entries dated within [start, end] (inclusive).
func (s *SQLite) ListEntries(ctx context.Context, start, end time.Time) ([]*schedule.Entry, error) {
	query := `
		SELECT id, date_key, label, position, created_at
		FROM schedules
		WHERE date_key >= ? AND date_key <= ?
		ORDER BY date_key, position, id
	`

	rows, err := s.db.QueryContext(ctx, query, dateutil.KeyOf(start), dateutil.KeyOf(end))
	if err != nil {
		return nil, fmt.Errorf("querying schedule entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []*schedule.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning schedule entry: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating schedule entries: %w", err)
	}

	return entries, nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*schedule.Entry, error) {
	var (
		e         schedule.Entry
		createdAt string
	)

	if err := row.Scan(&e.ID, &e.DateKey, &e.Label, &e.Position, &createdAt); err != nil {
		return nil, err
	}

	t, err := parseTimestamp(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created at: %w", err)
	}
	e.CreatedAt = t

	return &e, nil
}

// parseTimestamp parses the timestamp formats SQLite might return.
func parseTimestamp(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05Z",
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp format: %s", s)
}
