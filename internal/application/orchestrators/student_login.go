package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"portal/internal/domain/studentcard"
)

// CardStoreForLogin defines the store interface needed by StudentLogin.
type CardStoreForLogin interface {
	GetByCardNumber(ctx context.Context, cardNumber string) (studentcard.Card, error)
}

// StudentLoginInput carries input for the student login orchestrator.
type StudentLoginInput struct {
	CardNumber string
	Lang       string
}

// StudentLoginResult carries the result of a successful student login.
type StudentLoginResult struct {
	StudentID   string
	StudentName string
	Lang        string
}

// StudentLoginDeps holds dependencies for StudentLogin.
type StudentLoginDeps struct {
	CardStore CardStoreForLogin
}

var (
	ErrEmptyCard = errors.New("enter a card number")
	// ErrCardRejected deliberately covers both unknown and inactive cards so
	// a failed login never reveals whether a card number exists.
	ErrCardRejected = errors.New("card number not registered or not active")
)

// ExecuteStudentLogin validates a card number and returns the identity for
// session creation. The card number is trimmed before lookup; the language
// code defaults to Arabic.
// PRE: input carries the raw form values
// POST: Returns the card identity on success; unknown and inactive cards
// fail with the same error
func ExecuteStudentLogin(ctx context.Context, input StudentLoginInput, deps StudentLoginDeps) (StudentLoginResult, error) {
	cardNumber := strings.TrimSpace(input.CardNumber)
	if cardNumber == "" {
		return StudentLoginResult{}, ErrEmptyCard
	}

	card, err := deps.CardStore.GetByCardNumber(ctx, cardNumber)
	if err != nil {
		slog.Info("auth_event", "event", "student_login_failed", "card_number", cardNumber, "reason", "not_found")
		return StudentLoginResult{}, ErrCardRejected
	}

	if !card.CanAuthenticate() {
		slog.Info("auth_event", "event", "student_login_failed", "card_number", cardNumber, "reason", "inactive")
		return StudentLoginResult{}, ErrCardRejected
	}

	lang := input.Lang
	if lang == "" {
		lang = "ar"
	}

	slog.Info("auth_event", "event", "student_login_success", "card_number", cardNumber)

	return StudentLoginResult{
		StudentID:   card.ID,
		StudentName: card.Name,
		Lang:        lang,
	}, nil
}
