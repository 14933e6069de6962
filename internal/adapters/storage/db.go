package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLDB is the database interface used by all stores. *sql.DB satisfies it;
// tests can substitute their own implementation.
type SQLDB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Compile-time check that *sql.DB satisfies SQLDB.
var _ SQLDB = (*sql.DB)(nil)

// InitDB initializes the database schema.
// PRE: db is a valid database connection
// POST: All tables are created, WAL mode enabled
func InitDB(db *sql.DB) error {
	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	// Enable foreign key enforcement
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Create tables
	schema := `
	CREATE TABLE IF NOT EXISTS student_card (
		id TEXT PRIMARY KEY,
		card_number TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL DEFAULT '',
		department TEXT NOT NULL DEFAULT '',
		active INTEGER NOT NULL DEFAULT 1,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS course (
		id TEXT PRIMARY KEY,
		code TEXT NOT NULL,
		title_ar TEXT NOT NULL DEFAULT '',
		title_en TEXT NOT NULL DEFAULT '',
		department TEXT NOT NULL DEFAULT '',
		is_general INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS semester (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS result (
		id TEXT PRIMARY KEY,
		student_id TEXT NOT NULL,
		course_id TEXT NOT NULL,
		semester_id TEXT NOT NULL,
		grade TEXT NOT NULL DEFAULT '',
		date_recorded TEXT NOT NULL,
		FOREIGN KEY (student_id) REFERENCES student_card(id),
		FOREIGN KEY (course_id) REFERENCES course(id),
		FOREIGN KEY (semester_id) REFERENCES semester(id)
	);

	CREATE UNIQUE INDEX IF NOT EXISTS idx_result_student_course_semester
		ON result(student_id, course_id, semester_id);

	CREATE TABLE IF NOT EXISTS schedule_entry (
		id TEXT PRIMARY KEY,
		department TEXT NOT NULL,
		day TEXT NOT NULL,
		time_from TEXT NOT NULL DEFAULT '',
		time_to TEXT NOT NULL DEFAULT '',
		room TEXT NOT NULL DEFAULT '',
		course_id TEXT NOT NULL,
		FOREIGN KEY (course_id) REFERENCES course(id)
	);

	CREATE TABLE IF NOT EXISTS news (
		id TEXT PRIMARY KEY,
		title_ar TEXT NOT NULL DEFAULT '',
		content_ar TEXT NOT NULL DEFAULT '',
		title_en TEXT NOT NULL DEFAULT '',
		content_en TEXT NOT NULL DEFAULT '',
		published INTEGER NOT NULL DEFAULT 1,
		created_at TEXT NOT NULL
	);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}
