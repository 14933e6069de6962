package schedule

import (
	"errors"
	"strings"
)

// Day labels used by schedule entries. Entries carry free-form day strings;
// these constants cover the teaching week and drive display ordering.
const (
	DaySunday    = "sunday"
	DayMonday    = "monday"
	DayTuesday   = "tuesday"
	DayWednesday = "wednesday"
	DayThursday  = "thursday"
	DayFriday    = "friday"
	DaySaturday  = "saturday"
)

// DayOrder maps day labels to their position in the teaching week
// (Sunday-first, as the university week runs). Unknown labels sort last.
var DayOrder = map[string]int{
	DaySunday:    0,
	DayMonday:    1,
	DayTuesday:   2,
	DayWednesday: 3,
	DayThursday:  4,
	DayFriday:    5,
	DaySaturday:  6,
}

// Domain errors
var (
	ErrEmptyDepartment = errors.New("schedule entry department cannot be empty")
	ErrEmptyDay        = errors.New("schedule entry day cannot be empty")
	ErrMissingCourse   = errors.New("schedule entry must reference a course")
)

// Entry is a recurring class-meeting slot. Entries are matched to students
// purely by department string equality; there is no per-student or
// per-section schedule. Times are string-formatted, not structured values.
type Entry struct {
	ID         string
	Department string
	Day        string
	TimeFrom   string
	TimeTo     string
	Room       string
	CourseID   string
}

// Validate checks if the Entry has valid data.
// PRE: Entry struct is populated
// POST: Returns nil if valid, error otherwise
func (e *Entry) Validate() error {
	if strings.TrimSpace(e.Department) == "" {
		return ErrEmptyDepartment
	}
	if strings.TrimSpace(e.Day) == "" {
		return ErrEmptyDay
	}
	if e.CourseID == "" {
		return ErrMissingCourse
	}
	return nil
}

// DayRank returns the sort position of the entry's day within the teaching
// week. Labels are matched case-insensitively; unknown labels rank last.
func (e *Entry) DayRank() int {
	if rank, ok := DayOrder[strings.ToLower(strings.TrimSpace(e.Day))]; ok {
		return rank
	}
	return len(DayOrder)
}
