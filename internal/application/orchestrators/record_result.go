package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"portal/internal/domain/result"
)

// ResultStoreForRecord defines the store interface needed by RecordResult.
type ResultStoreForRecord interface {
	Save(ctx context.Context, r result.Result) error
	ExistsFor(ctx context.Context, studentID, courseID, semesterID string) (bool, error)
}

// RecordResultInput carries input for recording a grade.
type RecordResultInput struct {
	StudentID  string
	CourseID   string
	SemesterID string
	Grade      string
}

// RecordResultDeps holds dependencies for RecordResult.
type RecordResultDeps struct {
	ResultStore ResultStoreForRecord
	GenerateID  func() string
	Now         func() time.Time
}

// ErrDuplicateResult is returned when the student already has a result for
// the course in that semester.
var ErrDuplicateResult = errors.New("a result for this student, course and semester already exists")

// ExecuteRecordResult records a grade for a student. One result per
// (student, course, semester) combination.
// PRE: caller is an authenticated admin
// POST: Result is persisted with the recording date set to now
func ExecuteRecordResult(ctx context.Context, input RecordResultInput, deps RecordResultDeps) (result.Result, error) {
	r := result.Result{
		ID:           deps.GenerateID(),
		StudentID:    input.StudentID,
		CourseID:     input.CourseID,
		SemesterID:   input.SemesterID,
		Grade:        strings.TrimSpace(input.Grade),
		DateRecorded: deps.Now(),
	}
	if err := r.Validate(); err != nil {
		return result.Result{}, err
	}

	exists, err := deps.ResultStore.ExistsFor(ctx, r.StudentID, r.CourseID, r.SemesterID)
	if err != nil {
		return result.Result{}, err
	}
	if exists {
		return result.Result{}, ErrDuplicateResult
	}

	if err := deps.ResultStore.Save(ctx, r); err != nil {
		return result.Result{}, err
	}

	slog.Info("admin_event", "event", "result_recorded",
		"student_id", r.StudentID, "course_id", r.CourseID, "grade", r.Grade)
	return r, nil
}
