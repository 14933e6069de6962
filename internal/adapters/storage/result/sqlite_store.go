package result

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"portal/internal/adapters/storage"
	domain "portal/internal/domain/result"
)

const timeLayout = "2006-01-02T15:04:05Z07:00"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const resultColumns = `id, student_id, course_id, semester_id, grade, date_recorded`

// GetByID retrieves a result by ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Result, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+resultColumns+` FROM result WHERE id = ?`, id)
	var r domain.Result
	var recorded string
	err := row.Scan(&r.ID, &r.StudentID, &r.CourseID, &r.SemesterID, &r.Grade, &recorded)
	if err != nil {
		return domain.Result{}, err
	}
	r.DateRecorded = parseTime(recorded, r.ID)
	return r, nil
}

// Save inserts or updates a result.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, r domain.Result) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO result (id, student_id, course_id, semester_id, grade, date_recorded)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   student_id=excluded.student_id, course_id=excluded.course_id,
		   semester_id=excluded.semester_id, grade=excluded.grade,
		   date_recorded=excluded.date_recorded`,
		r.ID, r.StudentID, r.CourseID, r.SemesterID, r.Grade,
		r.DateRecorded.Format(timeLayout))
	return err
}

// Delete removes a result by ID.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM result WHERE id = ?`, id)
	return err
}

// ListByStudentID returns all results for a student ordered by recorded
// date descending (most recent first).
// PRE: studentID is non-empty
// POST: Returns only results belonging to the given student
func (s *SQLiteStore) ListByStudentID(ctx context.Context, studentID string) ([]domain.Result, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+resultColumns+` FROM result
		 WHERE student_id = ? ORDER BY date_recorded DESC`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanResults(rows)
}

// ExistsFor reports whether a result already links the given student, course,
// and semester.
func (s *SQLiteStore) ExistsFor(ctx context.Context, studentID, courseID, semesterID string) (bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM result
		 WHERE student_id = ? AND course_id = ? AND semester_id = ?`,
		studentID, courseID, semesterID)
	var count int
	if err := row.Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func scanResults(rows *sql.Rows) ([]domain.Result, error) {
	var results []domain.Result
	for rows.Next() {
		var r domain.Result
		var recorded string
		if err := rows.Scan(&r.ID, &r.StudentID, &r.CourseID, &r.SemesterID, &r.Grade, &recorded); err != nil {
			return nil, err
		}
		r.DateRecorded = parseTime(recorded, r.ID)
		results = append(results, r)
	}
	return results, rows.Err()
}

// parseTime parses a stored time string, logging a warning on failure.
func parseTime(raw, resultID string) time.Time {
	t, err := time.Parse(timeLayout, raw)
	if err != nil {
		slog.Warn("result: failed to parse time", "result_id", resultID, "raw", raw, "error", err)
	}
	return t
}
