package orchestrators

import (
	"context"
	"errors"
	"testing"

	"portal/internal/domain/studentcard"
)

// mockCardStoreForLogin is a mock implementation of CardStoreForLogin.
type mockCardStoreForLogin struct {
	cards map[string]studentcard.Card
}

// GetByCardNumber retrieves a card by its card number.
// PRE: cardNumber is the lookup key
// POST: Returns the card or an error if not found
func (m *mockCardStoreForLogin) GetByCardNumber(ctx context.Context, cardNumber string) (studentcard.Card, error) {
	card, ok := m.cards[cardNumber]
	if !ok {
		return studentcard.Card{}, errors.New("card not found")
	}
	return card, nil
}

func loginDeps() StudentLoginDeps {
	return StudentLoginDeps{
		CardStore: &mockCardStoreForLogin{
			cards: map[string]studentcard.Card{
				"S100": {ID: "card-1", CardNumber: "S100", Name: "Sara Ahmed", Department: "CS", Active: true},
				"S200": {ID: "card-2", CardNumber: "S200", Name: "Omar Khalil", Department: "CS", Active: false},
			},
		},
	}
}

func TestExecuteStudentLogin_Success(t *testing.T) {
	got, err := ExecuteStudentLogin(context.Background(),
		StudentLoginInput{CardNumber: "S100", Lang: "en"}, loginDeps())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.StudentID != "card-1" {
		t.Errorf("expected StudentID card-1, got %q", got.StudentID)
	}
	if got.StudentName != "Sara Ahmed" {
		t.Errorf("expected StudentName Sara Ahmed, got %q", got.StudentName)
	}
	if got.Lang != "en" {
		t.Errorf("expected Lang en, got %q", got.Lang)
	}
}

func TestExecuteStudentLogin_TrimsCardNumber(t *testing.T) {
	got, err := ExecuteStudentLogin(context.Background(),
		StudentLoginInput{CardNumber: "  S100  "}, loginDeps())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.StudentID != "card-1" {
		t.Errorf("expected StudentID card-1, got %q", got.StudentID)
	}
}

func TestExecuteStudentLogin_LangDefaultsToArabic(t *testing.T) {
	got, err := ExecuteStudentLogin(context.Background(),
		StudentLoginInput{CardNumber: "S100"}, loginDeps())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Lang != "ar" {
		t.Errorf("expected Lang ar, got %q", got.Lang)
	}
}

func TestExecuteStudentLogin_EmptyCard(t *testing.T) {
	_, err := ExecuteStudentLogin(context.Background(),
		StudentLoginInput{CardNumber: "   "}, loginDeps())
	if err != ErrEmptyCard {
		t.Errorf("expected ErrEmptyCard, got %v", err)
	}
}

// Unknown and inactive cards must fail with the same error so a failed login
// never reveals whether a card number exists.
func TestExecuteStudentLogin_UnknownAndInactiveIndistinguishable(t *testing.T) {
	_, unknownErr := ExecuteStudentLogin(context.Background(),
		StudentLoginInput{CardNumber: "NOPE"}, loginDeps())
	if unknownErr != ErrCardRejected {
		t.Errorf("expected ErrCardRejected for unknown card, got %v", unknownErr)
	}

	_, inactiveErr := ExecuteStudentLogin(context.Background(),
		StudentLoginInput{CardNumber: "S200"}, loginDeps())
	if inactiveErr != ErrCardRejected {
		t.Errorf("expected ErrCardRejected for inactive card, got %v", inactiveErr)
	}

	if unknownErr != inactiveErr {
		t.Error("expected identical errors for unknown and inactive cards")
	}
}
