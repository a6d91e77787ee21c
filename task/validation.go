package task

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	// ErrEmptyTitle is returned when a task title is empty.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrTitleTooLong is returned when a task title exceeds MaxTitleLength.
	ErrTitleTooLong = errors.New("title exceeds maximum length")

	// ErrInvalidStatus is returned when a status is not one of the three stages.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrTaskNotFound is returned when no task matches an ID.
	ErrTaskNotFound = errors.New("task not found")

	// ErrAmbiguousIDPrefix is returned when an ID prefix matches several tasks.
	ErrAmbiguousIDPrefix = errors.New("ambiguous task ID prefix")

	// ErrDuplicateID is returned when a collection holds two tasks with one ID.
	ErrDuplicateID = errors.New("duplicate task ID")
)

// ValidateTitle checks if the title is valid for a new task.
// Only an empty title is refused; length is an input concern.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	return nil
}

// ValidateTitleInput checks a title typed by a user: it must be valid for
// a new task and at most MaxTitleLength runes.
func ValidateTitleInput(title string) error {
	if err := ValidateTitle(title); err != nil {
		return err
	}
	if n := utf8.RuneCountInString(title); n > MaxTitleLength {
		return fmt.Errorf("%w: %d > %d", ErrTitleTooLong, n, MaxTitleLength)
	}
	return nil
}

// ValidateTask checks a task read back from storage.
// Stored titles may be empty because edits do not re-validate them.
func ValidateTask(t *Task) error {
	if t.ID == "" {
		return fmt.Errorf("task id cannot be empty")
	}
	if !t.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, t.Status)
	}
	if t.CreationDate.IsZero() {
		return fmt.Errorf("task %s has no creation date", t.ID)
	}
	return nil
}

// ValidateCollection checks every task and ID uniqueness.
func ValidateCollection(c Collection) error {
	seen := make(map[string]bool, len(c))
	for i := range c {
		if err := ValidateTask(&c[i]); err != nil {
			return fmt.Errorf("task %d: %w", i, err)
		}
		if seen[c[i].ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateID, c[i].ID)
		}
		seen[c[i].ID] = true
	}
	return nil
}
