package schedule

import (
	"context"
	"database/sql"

	"portal/internal/adapters/storage"
	domain "portal/internal/domain/schedule"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const entryColumns = `id, department, day, time_from, time_to, room, course_id`

// GetByID retrieves a schedule entry by ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Entry, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+entryColumns+` FROM schedule_entry WHERE id = ?`, id)
	var e domain.Entry
	err := row.Scan(&e.ID, &e.Department, &e.Day, &e.TimeFrom, &e.TimeTo, &e.Room, &e.CourseID)
	if err != nil {
		return domain.Entry{}, err
	}
	return e, nil
}

// Save inserts or updates a schedule entry.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, e domain.Entry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO schedule_entry (id, department, day, time_from, time_to, room, course_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   department=excluded.department, day=excluded.day,
		   time_from=excluded.time_from, time_to=excluded.time_to,
		   room=excluded.room, course_id=excluded.course_id`,
		e.ID, e.Department, e.Day, e.TimeFrom, e.TimeTo, e.Room, e.CourseID)
	return err
}

// Delete removes a schedule entry by ID.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM schedule_entry WHERE id = ?`, id)
	return err
}

// ListByDepartment returns entries whose department exactly matches.
// Matching is string equality only; display ordering is the caller's concern.
// PRE: department is non-empty
// POST: Returns only entries with the given department
func (s *SQLiteStore) ListByDepartment(ctx context.Context, department string) ([]domain.Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+entryColumns+` FROM schedule_entry WHERE department = ?`, department)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEntries(rows)
}

// List returns all schedule entries.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+entryColumns+` FROM schedule_entry`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]domain.Entry, error) {
	var entries []domain.Entry
	for rows.Next() {
		var e domain.Entry
		if err := rows.Scan(&e.ID, &e.Department, &e.Day, &e.TimeFrom, &e.TimeTo, &e.Room, &e.CourseID); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
