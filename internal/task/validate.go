package task

import (
	"errors"
	"strings"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 1000
)

var (
	ErrTitleRequired      = errors.New("title cannot be empty or whitespace only")
	ErrTitleTooLong       = errors.New("title must be at most 200 characters")
	ErrDescriptionTooLong = errors.New("description must be at most 1000 characters")
)

// ValidateTitle trims the title and enforces the 1-200 character bound.
// Returns the trimmed value that gets stored.
func ValidateTitle(title string) (string, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return "", ErrTitleRequired
	}
	if len([]rune(trimmed)) > maxTitleLen {
		return "", ErrTitleTooLong
	}
	return trimmed, nil
}

// ValidateDescription enforces the 1000 character bound. A nil description
// is valid.
func ValidateDescription(description *string) error {
	if description == nil {
		return nil
	}
	if len([]rune(*description)) > maxDescriptionLen {
		return ErrDescriptionTooLong
	}
	return nil
}
