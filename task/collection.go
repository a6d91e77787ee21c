package task

import (
	"fmt"

	"github.com/amonks/kaban/internal/ids"
)

// Collection is the board's tasks in creation order.
type Collection []Task

// Clone returns a copy that shares no backing array with c.
func (c Collection) Clone() Collection {
	if c == nil {
		return Collection{}
	}
	out := make(Collection, len(c))
	copy(out, c)
	return out
}

// IndexOf returns the position of the task with the given ID, or -1.
func (c Collection) IndexOf(id string) int {
	for i := range c {
		if c[i].ID == id {
			return i
		}
	}
	return -1
}

// Find returns the task with the given ID.
func (c Collection) Find(id string) (Task, bool) {
	i := c.IndexOf(id)
	if i < 0 {
		return Task{}, false
	}
	return c[i], true
}

// IDIndex indexes task IDs for prefix matching and display.
type IDIndex struct {
	ids []string
}

// NewIDIndex builds an IDIndex from a collection.
func NewIDIndex(c Collection) IDIndex {
	taskIDs := make([]string, 0, len(c))
	for _, t := range c {
		taskIDs = append(taskIDs, t.ID)
	}
	return IDIndex{ids: ids.NormalizeUniqueIDs(taskIDs)}
}

// Resolve returns the full task ID for a prefix.
func (index IDIndex) Resolve(prefix string) (string, error) {
	if prefix == "" {
		return "", ErrTaskNotFound
	}

	match, found, ambiguous := ids.MatchPrefix(index.ids, prefix)
	if !found {
		return "", fmt.Errorf("%w: %s", ErrTaskNotFound, prefix)
	}
	if ambiguous {
		return "", fmt.Errorf("%w: %s", ErrAmbiguousIDPrefix, prefix)
	}

	return match, nil
}

// PrefixLengths returns the shortest unique prefix length for each ID.
func (index IDIndex) PrefixLengths() map[string]int {
	return ids.UniquePrefixLengths(index.ids)
}
