package result

import (
	"errors"
	"time"
)

// Domain errors
var (
	ErrMissingStudent  = errors.New("result must reference a student card")
	ErrMissingCourse   = errors.New("result must reference a course")
	ErrMissingSemester = errors.New("result must reference a semester")
	ErrGradeTooLong    = errors.New("grade cannot exceed 20 characters")
)

// Result is a grade record linking one student to one course in one
// semester. The grade is a free-form string (letter grade or numeric).
// Results are immutable from the student's perspective.
type Result struct {
	ID           string
	StudentID    string
	CourseID     string
	SemesterID   string
	Grade        string
	DateRecorded time.Time
}

// Validate checks if the Result has valid data.
// PRE: Result struct is populated
// POST: Returns nil if valid, error otherwise
func (r *Result) Validate() error {
	if r.StudentID == "" {
		return ErrMissingStudent
	}
	if r.CourseID == "" {
		return ErrMissingCourse
	}
	if r.SemesterID == "" {
		return ErrMissingSemester
	}
	if len(r.Grade) > 20 {
		return ErrGradeTooLong
	}
	return nil
}
