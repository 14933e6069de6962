package schedule

import (
	"context"

	domain "portal/internal/domain/schedule"
)

// Store persists ScheduleEntry state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Entry, error)
	Save(ctx context.Context, value domain.Entry) error
	Delete(ctx context.Context, id string) error
	// ListByDepartment returns entries whose department exactly matches.
	ListByDepartment(ctx context.Context, department string) ([]domain.Entry, error)
	List(ctx context.Context) ([]domain.Entry, error)
}
