package studentcard

import (
	"errors"
	"strings"
	"time"
)

// Max length constants for admin-editable fields, matching the schema.
const (
	MaxCardNumberLength = 64
	MaxNameLength       = 150
	MaxDepartmentLength = 100
)

// Domain errors
var (
	ErrEmptyCardNumber   = errors.New("card number cannot be empty")
	ErrCardNumberTooLong = errors.New("card number cannot exceed 64 characters")
	ErrNameTooLong       = errors.New("student name cannot exceed 150 characters")
	ErrAlreadyActive     = errors.New("card is already active")
	ErrAlreadyInactive   = errors.New("card is already inactive")
)

// Card is a student's identity record. The card number is the sole student
// credential: unique, presented at login, no password.
type Card struct {
	ID         string
	CardNumber string
	Name       string
	Department string
	Active     bool
	CreatedAt  time.Time
}

// Validate checks if the Card has valid data.
// PRE: Card struct is populated
// POST: Returns nil if valid, error otherwise
func (c *Card) Validate() error {
	if strings.TrimSpace(c.CardNumber) == "" {
		return ErrEmptyCardNumber
	}
	if len(c.CardNumber) > MaxCardNumberLength {
		return ErrCardNumberTooLong
	}
	if len(c.Name) > MaxNameLength {
		return ErrNameTooLong
	}
	if len(c.Department) > MaxDepartmentLength {
		return errors.New("department cannot exceed 100 characters")
	}
	return nil
}

// CanAuthenticate reports whether this card may establish a student session.
// INVARIANT: an inactive card never authenticates
func (c *Card) CanAuthenticate() bool {
	return c.Active
}

// Deactivate marks the card inactive so it can no longer log in.
// PRE: card is active
// POST: Active is false
func (c *Card) Deactivate() error {
	if !c.Active {
		return ErrAlreadyInactive
	}
	c.Active = false
	return nil
}

// Activate re-enables a previously deactivated card.
// PRE: card is inactive
// POST: Active is true
func (c *Card) Activate() error {
	if c.Active {
		return ErrAlreadyActive
	}
	c.Active = true
	return nil
}
