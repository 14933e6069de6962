package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"portal/internal/domain/studentcard"
)

// CardStoreForManage defines the store interface needed by the card
// management orchestrators.
type CardStoreForManage interface {
	GetByID(ctx context.Context, id string) (studentcard.Card, error)
	GetByCardNumber(ctx context.Context, cardNumber string) (studentcard.Card, error)
	Save(ctx context.Context, c studentcard.Card) error
}

// CreateStudentCardInput carries input for creating a student card.
type CreateStudentCardInput struct {
	CardNumber string
	Name       string
	Department string
}

// CreateStudentCardDeps holds dependencies for CreateStudentCard.
type CreateStudentCardDeps struct {
	CardStore  CardStoreForManage
	GenerateID func() string
	Now        func() time.Time
}

// ErrDuplicateCardNumber is returned when the card number is already taken.
var ErrDuplicateCardNumber = errors.New("card number is already registered")

// ExecuteCreateStudentCard registers a new student card. New cards start
// active.
// PRE: caller is an authenticated admin
// POST: Card is persisted with a unique card number
func ExecuteCreateStudentCard(ctx context.Context, input CreateStudentCardInput, deps CreateStudentCardDeps) (studentcard.Card, error) {
	card := studentcard.Card{
		ID:         deps.GenerateID(),
		CardNumber: strings.TrimSpace(input.CardNumber),
		Name:       strings.TrimSpace(input.Name),
		Department: strings.TrimSpace(input.Department),
		Active:     true,
		CreatedAt:  deps.Now(),
	}
	if err := card.Validate(); err != nil {
		return studentcard.Card{}, err
	}

	if existing, err := deps.CardStore.GetByCardNumber(ctx, card.CardNumber); err == nil && existing.ID != "" {
		return studentcard.Card{}, ErrDuplicateCardNumber
	}

	if err := deps.CardStore.Save(ctx, card); err != nil {
		return studentcard.Card{}, err
	}

	slog.Info("admin_event", "event", "student_card_created", "card_number", card.CardNumber)
	return card, nil
}

// SetStudentCardActiveInput carries input for toggling a card's active flag.
type SetStudentCardActiveInput struct {
	CardID string
	Active bool
}

// SetStudentCardActiveDeps holds dependencies for SetStudentCardActive.
type SetStudentCardActiveDeps struct {
	CardStore CardStoreForManage
}

// ExecuteSetStudentCardActive activates or deactivates a card. A
// deactivated card can no longer establish a student session.
// PRE: CardID references an existing card
// POST: Card's active flag matches input.Active
func ExecuteSetStudentCardActive(ctx context.Context, input SetStudentCardActiveInput, deps SetStudentCardActiveDeps) error {
	card, err := deps.CardStore.GetByID(ctx, input.CardID)
	if err != nil {
		return err
	}

	if input.Active {
		err = card.Activate()
	} else {
		err = card.Deactivate()
	}
	if err != nil {
		return err
	}

	if err := deps.CardStore.Save(ctx, card); err != nil {
		return err
	}

	slog.Info("admin_event", "event", "student_card_active_changed",
		"card_number", card.CardNumber, "active", input.Active)
	return nil
}
