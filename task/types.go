// Package task defines the task board's entity model.
//
// A Task moves between three fixed workflow stages. Tasks are plain
// values: construction goes through New, and every later change is a
// whole-field replacement performed by the board store.
package task

import (
	internalstrings "github.com/amonks/kaban/internal/strings"
	"github.com/amonks/kaban/internal/validation"
)

// Status is the workflow stage of a task.
// The string values are the persisted wire values.
type Status string

const (
	// StatusToDo is the initial stage of every task.
	StatusToDo Status = "To Do"

	// StatusInProgress indicates the task is being worked on.
	StatusInProgress Status = "In Progress"

	// StatusDone indicates the task is finished.
	StatusDone Status = "Done"
)

// Statuses returns every status in board order.
func Statuses() []Status {
	return []Status{StatusToDo, StatusInProgress, StatusDone}
}

// IsValid returns true if the status is one of the three stages.
func (s Status) IsValid() bool {
	for _, valid := range Statuses() {
		if s == valid {
			return true
		}
	}
	return false
}

// Slug returns a lowercase, space-free spelling for flags and keys.
func (s Status) Slug() string {
	switch s {
	case StatusToDo:
		return "todo"
	case StatusInProgress:
		return "in-progress"
	case StatusDone:
		return "done"
	default:
		return "unknown"
	}
}

var statusAliases = map[string]Status{
	"to do":       StatusToDo,
	"todo":        StatusToDo,
	"to-do":       StatusToDo,
	"to_do":       StatusToDo,
	"in progress": StatusInProgress,
	"in-progress": StatusInProgress,
	"in_progress": StatusInProgress,
	"inprogress":  StatusInProgress,
	"doing":       StatusInProgress,
	"done":        StatusDone,
}

// ParseStatus converts user input to a Status.
// It accepts the wire values and the common command-line spellings.
func ParseStatus(value string) (Status, error) {
	key := internalstrings.NormalizeKey(value)
	if status, ok := statusAliases[key]; ok {
		return status, nil
	}
	slugs := make([]string, 0, len(Statuses()))
	for _, status := range Statuses() {
		slugs = append(slugs, status.Slug())
	}
	return "", validation.FormatInvalidValueError(ErrInvalidStatus, value, slugs)
}

// MaxTitleLength is the longest title the CLI and the board form accept,
// in runes. The store itself does not enforce it.
const MaxTitleLength = 500
