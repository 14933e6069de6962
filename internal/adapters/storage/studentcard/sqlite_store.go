package studentcard

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"portal/internal/adapters/storage"
	domain "portal/internal/domain/studentcard"
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

const cardColumns = `id, card_number, name, department, active, created_at`

// GetByID retrieves a card by ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Card, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+cardColumns+` FROM student_card WHERE id = ?`, id)
	return scanCard(row)
}

// GetByCardNumber retrieves a card by its unique card number.
// PRE: cardNumber is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByCardNumber(ctx context.Context, cardNumber string) (domain.Card, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+cardColumns+` FROM student_card WHERE card_number = ?`, cardNumber)
	return scanCard(row)
}

// Save inserts or updates a card.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, c domain.Card) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO student_card (id, card_number, name, department, active, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   card_number=excluded.card_number, name=excluded.name,
		   department=excluded.department, active=excluded.active,
		   created_at=excluded.created_at`,
		c.ID, c.CardNumber, c.Name, c.Department, boolToInt(c.Active),
		c.CreatedAt.Format(timeLayout))
	return err
}

// Delete removes a card by ID.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM student_card WHERE id = ?`, id)
	return err
}

// List returns all cards ordered by card number.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Card, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+cardColumns+` FROM student_card ORDER BY card_number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCards(rows)
}

func scanCard(row *sql.Row) (domain.Card, error) {
	var c domain.Card
	var active int
	var createdAt string
	err := row.Scan(&c.ID, &c.CardNumber, &c.Name, &c.Department, &active, &createdAt)
	if err != nil {
		return domain.Card{}, err
	}
	c.Active = active != 0
	c.CreatedAt = parseTime(createdAt, c.ID)
	return c, nil
}

func scanCards(rows *sql.Rows) ([]domain.Card, error) {
	var cards []domain.Card
	for rows.Next() {
		var c domain.Card
		var active int
		var createdAt string
		if err := rows.Scan(&c.ID, &c.CardNumber, &c.Name, &c.Department, &active, &createdAt); err != nil {
			return nil, err
		}
		c.Active = active != 0
		c.CreatedAt = parseTime(createdAt, c.ID)
		cards = append(cards, c)
	}
	return cards, rows.Err()
}

// parseTime parses a stored time string, logging a warning on failure.
func parseTime(raw, cardID string) time.Time {
	t, err := time.Parse(timeLayout, raw)
	if err != nil {
		slog.Warn("student_card: failed to parse time", "card_id", cardID, "raw", raw, "error", err)
	}
	return t
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
