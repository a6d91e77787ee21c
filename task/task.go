package task

import (
	"strings"
	"time"

	"github.com/amonks/kaban/internal/ids"
	internalstrings "github.com/amonks/kaban/internal/strings"
)

// Task is a single card on the board.
type Task struct {
	// ID is an opaque identifier, assigned at creation and never changed.
	ID string `json:"id"`

	// Title is the short summary of the task.
	Title string `json:"title"`

	// Description provides additional context. May be empty.
	Description string `json:"description"`

	// Status is the task's current stage.
	Status Status `json:"status"`

	// CreationDate is when the task was created.
	CreationDate time.Time `json:"creationDate"`
}

// New builds a task in the To Do stage.
// The title is trimmed and must not be empty. Invalid UTF-8 in either text
// field becomes U+FFFD and the description goes through CleanText. The
// creation date is stored in UTC without a monotonic reading
// so it survives a round trip intact.
func New(title, description string, now time.Time) (Task, error) {
	title = strings.TrimSpace(internalstrings.ValidUTF8(title))
	if err := ValidateTitle(title); err != nil {
		return Task{}, err
	}

	return Task{
		ID:           NewID(),
		Title:        title,
		Description:  CleanText(description),
		Status:       StatusToDo,
		CreationDate: now.Round(0).UTC(),
	}, nil
}

// CleanText makes a description storable: invalid UTF-8 becomes U+FFFD and
// line endings become LF, so the stored copy matches the in-memory one.
func CleanText(value string) string {
	return internalstrings.NormalizeNewlines(internalstrings.ValidUTF8(value))
}

// NewID generates a task ID.
func NewID() string {
	return ids.New()
}
