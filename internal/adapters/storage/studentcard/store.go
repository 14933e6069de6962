package studentcard

import (
	"context"

	domain "portal/internal/domain/studentcard"
)

// Store persists StudentCard state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Card, error)
	GetByCardNumber(ctx context.Context, cardNumber string) (domain.Card, error)
	Save(ctx context.Context, value domain.Card) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Card, error)
}
