package course

import (
	"errors"
	"strings"
)

// Domain errors
var (
	ErrEmptyCode   = errors.New("course code cannot be empty")
	ErrCodeTooLong = errors.New("course code cannot exceed 30 characters")
	ErrEmptyTitle  = errors.New("course needs a title in at least one language")
)

// Course is a catalog entry with a bilingual title. General courses are
// cross-department electives and are not tied to the owning department.
type Course struct {
	ID         string
	Code       string
	TitleAR    string
	TitleEN    string
	Department string
	IsGeneral  bool
}

// Validate checks if the Course has valid data.
// PRE: Course struct is populated
// POST: Returns nil if valid, error otherwise
func (c *Course) Validate() error {
	if strings.TrimSpace(c.Code) == "" {
		return ErrEmptyCode
	}
	if len(c.Code) > 30 {
		return ErrCodeTooLong
	}
	if strings.TrimSpace(c.TitleAR) == "" && strings.TrimSpace(c.TitleEN) == "" {
		return ErrEmptyTitle
	}
	return nil
}

// Title returns the title for the given language code, falling back to the
// other language when the requested one is empty. Value receiver so
// templates can call it on ranged rows.
func (c Course) Title(lang string) string {
	if lang == "en" {
		if c.TitleEN != "" {
			return c.TitleEN
		}
		return c.TitleAR
	}
	if c.TitleAR != "" {
		return c.TitleAR
	}
	return c.TitleEN
}
