package result

import (
	"strings"
	"testing"
)

func validResult() Result {
	return Result{
		ID:         "r1",
		StudentID:  "card-1",
		CourseID:   "course-1",
		SemesterID: "sem-1",
		Grade:      "A",
	}
}

func TestValidate(t *testing.T) {
	r := validResult()
	if err := r.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	r = validResult()
	r.StudentID = ""
	if err := r.Validate(); err != ErrMissingStudent {
		t.Errorf("expected ErrMissingStudent, got %v", err)
	}

	r = validResult()
	r.CourseID = ""
	if err := r.Validate(); err != ErrMissingCourse {
		t.Errorf("expected ErrMissingCourse, got %v", err)
	}

	r = validResult()
	r.SemesterID = ""
	if err := r.Validate(); err != ErrMissingSemester {
		t.Errorf("expected ErrMissingSemester, got %v", err)
	}

	r = validResult()
	r.Grade = strings.Repeat("9", 21)
	if err := r.Validate(); err != ErrGradeTooLong {
		t.Errorf("expected ErrGradeTooLong, got %v", err)
	}

	// An empty grade is allowed; it is free-form.
	r = validResult()
	r.Grade = ""
	if err := r.Validate(); err != nil {
		t.Errorf("unexpected error for empty grade: %v", err)
	}
}
