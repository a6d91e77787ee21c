// Package view derives what each board column shows.
//
// Everything here is a pure function of its arguments: the collection,
// the column's status, the sort specification and the hidden set. Sort and
// visibility state are transient and start from their defaults on every
// load.
package view

import (
	"errors"
	"fmt"
	"slices"

	"github.com/amonks/kaban/internal/validation"
	"github.com/amonks/kaban/task"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the field tasks are ordered by.
type SortKey string

const (
	// SortByCreationDate orders by creation timestamp.
	SortByCreationDate SortKey = "creationDate"

	// SortByTitle orders by title using locale-aware collation.
	SortByTitle SortKey = "title"
)

// SortOrder is the direction of a sort.
type SortOrder string

const (
	// Ascending puts the oldest or alphabetically first task on top.
	Ascending SortOrder = "asc"

	// Descending reverses the ascending result.
	Descending SortOrder = "desc"
)

// SortSpec is a column's sort setting.
type SortSpec struct {
	Key   SortKey
	Order SortOrder
}

// DefaultSort is newest first.
func DefaultSort() SortSpec {
	return SortSpec{Key: SortByCreationDate, Order: Descending}
}

// DefaultLocale is used for title collation when none is configured.
var DefaultLocale = language.English

// SortOption is one entry of a column's sort menu.
type SortOption struct {
	SortSpec
	Label string
}

// SortOptions lists the sort menu in display order.
func SortOptions() []SortOption {
	return []SortOption{
		{SortSpec{SortByCreationDate, Descending}, "Newest First"},
		{SortSpec{SortByCreationDate, Ascending}, "Oldest First"},
		{SortSpec{SortByTitle, Ascending}, "Title (A-Z)"},
		{SortSpec{SortByTitle, Descending}, "Title (Z-A)"},
	}
}

// Label returns the menu label for spec.
func (spec SortSpec) Label() string {
	for _, opt := range SortOptions() {
		if opt.SortSpec == spec {
			return opt.Label
		}
	}
	return fmt.Sprintf("%s %s", spec.Key, spec.Order)
}

// Next returns the menu entry after spec, wrapping around.
func (spec SortSpec) Next() SortSpec {
	options := SortOptions()
	for i, opt := range options {
		if opt.SortSpec == spec {
			return options[(i+1)%len(options)].SortSpec
		}
	}
	return options[0].SortSpec
}

var (
	// ErrInvalidSortKey is returned for an unknown sort key.
	ErrInvalidSortKey = errors.New("invalid sort key")

	// ErrInvalidSortOrder is returned for an unknown sort order.
	ErrInvalidSortOrder = errors.New("invalid sort order")
)

// ParseSortSpec reads command-line spellings of a key and order.
func ParseSortSpec(key, order string) (SortSpec, error) {
	var spec SortSpec
	switch key {
	case "created", "creationDate", "date", "":
		spec.Key = SortByCreationDate
	case "title":
		spec.Key = SortByTitle
	default:
		return SortSpec{}, validation.FormatInvalidValueError(ErrInvalidSortKey, key, []string{"created", "title"})
	}
	switch order {
	case "asc":
		spec.Order = Ascending
	case "desc", "":
		spec.Order = Descending
	default:
		return SortSpec{}, validation.FormatInvalidValueError(ErrInvalidSortOrder, order, []string{"asc", "desc"})
	}
	return spec, nil
}

// SortTasks returns a sorted copy of tasks using DefaultLocale.
func SortTasks(tasks []task.Task, spec SortSpec) []task.Task {
	return SortTasksLocale(tasks, spec, DefaultLocale)
}

// SortTasksLocale returns a sorted copy of tasks, collating titles for tag.
//
// The ascending order is computed with a stable sort, and Descending is the
// reverse of that result. Tied elements therefore keep one fixed relative
// order per direction: storage order ascending, reversed descending.
func SortTasksLocale(tasks []task.Task, spec SortSpec, tag language.Tag) []task.Task {
	sorted := slices.Clone(tasks)
	if sorted == nil {
		sorted = []task.Task{}
	}

	switch spec.Key {
	case SortByTitle:
		collator := collate.New(tag)
		slices.SortStableFunc(sorted, func(a, b task.Task) int {
			return collator.CompareString(a.Title, b.Title)
		})
	default:
		slices.SortStableFunc(sorted, func(a, b task.Task) int {
			return a.CreationDate.Compare(b.CreationDate)
		})
	}

	if spec.Order == Descending {
		slices.Reverse(sorted)
	}
	return sorted
}
