package news

import (
	"context"

	domain "portal/internal/domain/news"
)

// Store persists News state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Item, error)
	Save(ctx context.Context, value domain.Item) error
	Delete(ctx context.Context, id string) error
	// ListPublished returns published items newest-first, capped at limit.
	ListPublished(ctx context.Context, limit int) ([]domain.Item, error)
	// List returns every item (published or not) newest-first.
	List(ctx context.Context) ([]domain.Item, error)
}
