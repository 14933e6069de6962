package news

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"portal/internal/adapters/storage"
	domain "portal/internal/domain/news"
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

const newsColumns = `id, title_ar, content_ar, title_en, content_en, published, created_at`

// GetByID retrieves a news item by ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Item, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+newsColumns+` FROM news WHERE id = ?`, id)
	var n domain.Item
	var published int
	var createdAt string
	err := row.Scan(&n.ID, &n.TitleAR, &n.ContentAR, &n.TitleEN, &n.ContentEN, &published, &createdAt)
	if err != nil {
		return domain.Item{}, err
	}
	n.Published = published != 0
	n.CreatedAt = parseTime(createdAt, n.ID)
	return n, nil
}

// Save inserts or updates a news item.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, n domain.Item) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO news (id, title_ar, content_ar, title_en, content_en, published, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   title_ar=excluded.title_ar, content_ar=excluded.content_ar,
		   title_en=excluded.title_en, content_en=excluded.content_en,
		   published=excluded.published, created_at=excluded.created_at`,
		n.ID, n.TitleAR, n.ContentAR, n.TitleEN, n.ContentEN,
		boolToInt(n.Published), n.CreatedAt.Format(timeLayout))
	return err
}

// Delete removes a news item by ID.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM news WHERE id = ?`, id)
	return err
}

// ListPublished returns published items ordered by creation date descending,
// capped at limit. Unpublished items are never returned.
// PRE: limit > 0
// POST: Returns at most limit published items, newest first
func (s *SQLiteStore) ListPublished(ctx context.Context, limit int) ([]domain.Item, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+newsColumns+` FROM news
		 WHERE published = 1 ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanItems(rows)
}

// List returns every news item ordered by creation date descending,
// including unpublished items.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Item, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+newsColumns+` FROM news ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanItems(rows)
}

func scanItems(rows *sql.Rows) ([]domain.Item, error) {
	var items []domain.Item
	for rows.Next() {
		var n domain.Item
		var published int
		var createdAt string
		if err := rows.Scan(&n.ID, &n.TitleAR, &n.ContentAR, &n.TitleEN, &n.ContentEN, &published, &createdAt); err != nil {
			return nil, err
		}
		n.Published = published != 0
		n.CreatedAt = parseTime(createdAt, n.ID)
		items = append(items, n)
	}
	return items, rows.Err()
}

// parseTime parses a stored time string, logging a warning on failure.
func parseTime(raw, newsID string) time.Time {
	t, err := time.Parse(timeLayout, raw)
	if err != nil {
		slog.Warn("news: failed to parse time", "news_id", newsID, "raw", raw, "error", err)
	}
	return t
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
