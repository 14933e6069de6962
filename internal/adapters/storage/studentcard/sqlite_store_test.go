package studentcard

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"portal/internal/adapters/storage"
	domain "portal/internal/domain/studentcard"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	if err := storage.InitDB(db); err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}
	return NewSQLiteStore(db)
}

func TestSQLiteStore_SaveAndGet(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	card := domain.Card{
		ID:         "card-1",
		CardNumber: "S100",
		Name:       "Sara Ahmed",
		Department: "Computer Science",
		Active:     true,
		CreatedAt:  time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC),
	}
	if err := store.Save(ctx, card); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := store.GetByID(ctx, "card-1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.CardNumber != "S100" || got.Name != "Sara Ahmed" || !got.Active {
		t.Errorf("unexpected card: %+v", got)
	}
	if !got.CreatedAt.Equal(card.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, card.CreatedAt)
	}

	byNumber, err := store.GetByCardNumber(ctx, "S100")
	if err != nil {
		t.Fatalf("GetByCardNumber failed: %v", err)
	}
	if byNumber.ID != "card-1" {
		t.Errorf("expected card-1, got %q", byNumber.ID)
	}
}

func TestSQLiteStore_SaveUpdatesExisting(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	card := domain.Card{ID: "card-1", CardNumber: "S100", Active: true,
		CreatedAt: time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)}
	if err := store.Save(ctx, card); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	card.Active = false
	card.Name = "Renamed"
	if err := store.Save(ctx, card); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	got, err := store.GetByID(ctx, "card-1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Active {
		t.Error("expected card to be inactive after update")
	}
	if got.Name != "Renamed" {
		t.Errorf("expected updated name, got %q", got.Name)
	}
}

func TestSQLiteStore_GetMissing(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.GetByID(context.Background(), "nope"); err == nil {
		t.Error("expected error for missing card")
	}
	if _, err := store.GetByCardNumber(context.Background(), "NOPE"); err == nil {
		t.Error("expected error for missing card number")
	}
}

func TestSQLiteStore_ListOrderedByCardNumber(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	created := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)

	for _, c := range []domain.Card{
		{ID: "c2", CardNumber: "S200", Active: true, CreatedAt: created},
		{ID: "c1", CardNumber: "S100", Active: true, CreatedAt: created},
		{ID: "c3", CardNumber: "S300", Active: false, CreatedAt: created},
	} {
		if err := store.Save(ctx, c); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	cards, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	want := []string{"S100", "S200", "S300"}
	if len(cards) != len(want) {
		t.Fatalf("expected %d cards, got %d", len(want), len(cards))
	}
	for i, number := range want {
		if cards[i].CardNumber != number {
			t.Errorf("card[%d] = %q, want %q", i, cards[i].CardNumber, number)
		}
	}
}

func TestSQLiteStore_Delete(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	card := domain.Card{ID: "card-1", CardNumber: "S100", Active: true,
		CreatedAt: time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)}
	if err := store.Save(ctx, card); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Delete(ctx, "card-1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.GetByID(ctx, "card-1"); err == nil {
		t.Error("expected card to be gone after delete")
	}
}
