package semester

import (
	"errors"
	"strings"
)

// ErrEmptyName is returned when a semester has no name.
var ErrEmptyName = errors.New("semester name cannot be empty")

// Semester is a named academic term. Results reference it for grouping.
type Semester struct {
	ID   string
	Name string
}

// Validate checks if the Semester has valid data.
func (s *Semester) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrEmptyName
	}
	if len(s.Name) > 80 {
		return errors.New("semester name cannot exceed 80 characters")
	}
	return nil
}
