package result

import (
	"context"

	domain "portal/internal/domain/result"
)

// Store persists Result state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Result, error)
	Save(ctx context.Context, value domain.Result) error
	Delete(ctx context.Context, id string) error
	// ListByStudentID returns a student's results, most recently recorded first.
	ListByStudentID(ctx context.Context, studentID string) ([]domain.Result, error)
	// ExistsFor reports whether a result already links the given student,
	// course, and semester.
	ExistsFor(ctx context.Context, studentID, courseID, semesterID string) (bool, error)
}
