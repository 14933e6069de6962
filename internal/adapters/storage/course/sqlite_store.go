package course

import (
	"context"
	"database/sql"

	"portal/internal/adapters/storage"
	domain "portal/internal/domain/course"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const courseColumns = `id, code, title_ar, title_en, department, is_general`

// GetByID retrieves a course by ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Course, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+courseColumns+` FROM course WHERE id = ?`, id)
	var c domain.Course
	var isGeneral int
	err := row.Scan(&c.ID, &c.Code, &c.TitleAR, &c.TitleEN, &c.Department, &isGeneral)
	if err != nil {
		return domain.Course{}, err
	}
	c.IsGeneral = isGeneral != 0
	return c, nil
}

// Save inserts or updates a course.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, c domain.Course) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO course (id, code, title_ar, title_en, department, is_general)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   code=excluded.code, title_ar=excluded.title_ar, title_en=excluded.title_en,
		   department=excluded.department, is_general=excluded.is_general`,
		c.ID, c.Code, c.TitleAR, c.TitleEN, c.Department, boolToInt(c.IsGeneral))
	return err
}

// Delete removes a course by ID.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM course WHERE id = ?`, id)
	return err
}

// List returns all courses ordered by code.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Course, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+courseColumns+` FROM course ORDER BY code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCourses(rows)
}

func scanCourses(rows *sql.Rows) ([]domain.Course, error) {
	var courses []domain.Course
	for rows.Next() {
		var c domain.Course
		var isGeneral int
		if err := rows.Scan(&c.ID, &c.Code, &c.TitleAR, &c.TitleEN, &c.Department, &isGeneral); err != nil {
			return nil, err
		}
		c.IsGeneral = isGeneral != 0
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
