package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS schedules (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			date_key   TEXT NOT NULL CHECK(length(date_key) = 10),
			label      TEXT NOT NULL CHECK(length(trim(label)) > 0),
			position   INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_schedules_date ON schedules(date_key, position);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating schedules table: %w", err)
	}

	return nil
}
