package orchestrators

import (
	"context"
	"errors"
	"testing"
	"time"

	"portal/internal/domain/studentcard"
)

// mockCardStoreForManage is a mock implementation of CardStoreForManage.
type mockCardStoreForManage struct {
	cards map[string]studentcard.Card
	saved []studentcard.Card
}

// GetByID retrieves a card by ID.
// PRE: id is the primary key
// POST: Returns the card or an error if not found
func (m *mockCardStoreForManage) GetByID(ctx context.Context, id string) (studentcard.Card, error) {
	c, ok := m.cards[id]
	if !ok {
		return studentcard.Card{}, errors.New("card not found")
	}
	return c, nil
}

// GetByCardNumber retrieves a card by its card number.
// PRE: cardNumber is the lookup key
// POST: Returns the card or an error if not found
func (m *mockCardStoreForManage) GetByCardNumber(ctx context.Context, cardNumber string) (studentcard.Card, error) {
	for _, c := range m.cards {
		if c.CardNumber == cardNumber {
			return c, nil
		}
	}
	return studentcard.Card{}, errors.New("card not found")
}

// Save persists a card.
// PRE: c has been validated
// POST: Card is stored and recorded in saved
func (m *mockCardStoreForManage) Save(ctx context.Context, c studentcard.Card) error {
	m.cards[c.ID] = c
	m.saved = append(m.saved, c)
	return nil
}

var fixedNow = time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)

func fixedID() string { return "fixed-id-1" }

func TestExecuteCreateStudentCard_Success(t *testing.T) {
	store := &mockCardStoreForManage{cards: map[string]studentcard.Card{}}
	deps := CreateStudentCardDeps{
		CardStore:  store,
		GenerateID: fixedID,
		Now:        func() time.Time { return fixedNow },
	}

	card, err := ExecuteCreateStudentCard(context.Background(),
		CreateStudentCardInput{CardNumber: " S300 ", Name: " Lina ", Department: "Physics"}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if card.ID != "fixed-id-1" {
		t.Errorf("expected generated ID, got %q", card.ID)
	}
	if card.CardNumber != "S300" {
		t.Errorf("expected trimmed card number, got %q", card.CardNumber)
	}
	if !card.Active {
		t.Error("expected new card to start active")
	}
	if !card.CreatedAt.Equal(fixedNow) {
		t.Errorf("expected CreatedAt %v, got %v", fixedNow, card.CreatedAt)
	}
	if len(store.saved) != 1 {
		t.Errorf("expected one save, got %d", len(store.saved))
	}
}

func TestExecuteCreateStudentCard_DuplicateCardNumber(t *testing.T) {
	store := &mockCardStoreForManage{cards: map[string]studentcard.Card{
		"card-1": {ID: "card-1", CardNumber: "S100", Active: true},
	}}
	deps := CreateStudentCardDeps{
		CardStore:  store,
		GenerateID: fixedID,
		Now:        func() time.Time { return fixedNow },
	}

	_, err := ExecuteCreateStudentCard(context.Background(),
		CreateStudentCardInput{CardNumber: "S100"}, deps)
	if err != ErrDuplicateCardNumber {
		t.Errorf("expected ErrDuplicateCardNumber, got %v", err)
	}
	if len(store.saved) != 0 {
		t.Errorf("expected no saves, got %d", len(store.saved))
	}
}

func TestExecuteCreateStudentCard_InvalidInput(t *testing.T) {
	store := &mockCardStoreForManage{cards: map[string]studentcard.Card{}}
	deps := CreateStudentCardDeps{
		CardStore:  store,
		GenerateID: fixedID,
		Now:        func() time.Time { return fixedNow },
	}

	_, err := ExecuteCreateStudentCard(context.Background(),
		CreateStudentCardInput{CardNumber: "  "}, deps)
	if err != studentcard.ErrEmptyCardNumber {
		t.Errorf("expected ErrEmptyCardNumber, got %v", err)
	}
}

func TestExecuteSetStudentCardActive_Deactivate(t *testing.T) {
	store := &mockCardStoreForManage{cards: map[string]studentcard.Card{
		"card-1": {ID: "card-1", CardNumber: "S100", Active: true},
	}}

	err := ExecuteSetStudentCardActive(context.Background(),
		SetStudentCardActiveInput{CardID: "card-1", Active: false},
		SetStudentCardActiveDeps{CardStore: store})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.cards["card-1"].Active {
		t.Error("expected card to be inactive after deactivation")
	}
}

func TestExecuteSetStudentCardActive_AlreadyInactive(t *testing.T) {
	store := &mockCardStoreForManage{cards: map[string]studentcard.Card{
		"card-1": {ID: "card-1", CardNumber: "S100", Active: false},
	}}

	err := ExecuteSetStudentCardActive(context.Background(),
		SetStudentCardActiveInput{CardID: "card-1", Active: false},
		SetStudentCardActiveDeps{CardStore: store})
	if err != studentcard.ErrAlreadyInactive {
		t.Errorf("expected ErrAlreadyInactive, got %v", err)
	}
}

func TestExecuteSetStudentCardActive_UnknownCard(t *testing.T) {
	store := &mockCardStoreForManage{cards: map[string]studentcard.Card{}}

	err := ExecuteSetStudentCardActive(context.Background(),
		SetStudentCardActiveInput{CardID: "nope", Active: true},
		SetStudentCardActiveDeps{CardStore: store})
	if err == nil {
		t.Error("expected error for unknown card")
	}
}
