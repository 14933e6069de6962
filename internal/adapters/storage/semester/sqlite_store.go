package semester

import (
	"context"

	"portal/internal/adapters/storage"
	domain "portal/internal/domain/semester"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves a semester by ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Semester, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name FROM semester WHERE id = ?`, id)
	var sem domain.Semester
	if err := row.Scan(&sem.ID, &sem.Name); err != nil {
		return domain.Semester{}, err
	}
	return sem, nil
}

// Save inserts or updates a semester.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, sem domain.Semester) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO semester (id, name) VALUES (?, ?)
		 ON CONFLICT(id) DO UPDATE SET name=excluded.name`,
		sem.ID, sem.Name)
	return err
}

// Delete removes a semester by ID.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM semester WHERE id = ?`, id)
	return err
}

// List returns all semesters ordered by name.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Semester, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM semester ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var semesters []domain.Semester
	for rows.Next() {
		var sem domain.Semester
		if err := rows.Scan(&sem.ID, &sem.Name); err != nil {
			return nil, err
		}
		semesters = append(semesters, sem)
	}
	return semesters, rows.Err()
}
